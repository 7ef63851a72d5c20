package render

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"

	"docgen/pkg/models"
)

var oneHundred = decimal.NewFromInt(100)

// buildTotals draws the amounts column on the right and the disclosure
// block (tax sentence, skonto terms, payment terms, proof symbol) on the
// left, returning the offset below whichever column runs longer.
func (c *Composer) buildTotals(s Surface, data *models.DocumentData, y float64) float64 {
	leftY := c.buildDisclosure(s, data, y)
	rightY := c.buildAmounts(s, data, y)

	if leftY > rightY {
		return leftY + 10
	}
	return rightY + 10
}

func (c *Composer) buildDisclosure(s Surface, data *models.DocumentData, y float64) float64 {
	s.SetFont("", 10)
	s.SetTextColor(0, 0, 0)

	// The small-business flag overrides whatever rule code the record
	// carries: VAT disclosure is replaced by the exemption sentence.
	rule := data.TaxRule
	if data.IsSmallBusiness {
		rule = models.TaxRuleDESmallBusiness
	}

	if rule != "" {
		s.SetFont("B", 10)
		s.Text(pageLeft, y, "Steuerregel:")
		s.SetFont("", 10)
		lines := s.SplitText(TaxRuleText(rule), 80)
		for i, line := range lines {
			s.Text(pageLeft+25, y+float64(i)*4, line)
		}
		y += float64(len(lines))*4 + 2
	}

	if data.SkontoEnabled && (data.SkontoText != "" || data.SkontoDays > 0 || data.SkontoPercentage.IsPositive()) {
		s.SetFont("B", 10)
		s.Text(pageLeft, y, "Skonto:")
		s.SetFont("", 10)
		text := data.SkontoText
		if data.SkontoDays > 0 {
			text += fmt.Sprintf(" Bei Zahlung binnen %d Tagen", data.SkontoDays)
		}
		if data.SkontoPercentage.IsPositive() {
			text += " " + data.SkontoPercentage.String() + "%"
		}
		s.Text(pageLeft+25, y, CleanLine(text))
		y += 6
	}

	if data.PaymentTerms != "" {
		s.SetFont("B", 10)
		s.Text(pageLeft, y, "Zahlungsziel:")
		s.SetFont("", 10)
		s.Text(pageLeft+25, y, data.PaymentTerms)
		y += 6
	}

	if data.Proof != nil && data.Proof.ID != "" {
		y = c.buildProofBlock(s, data.Proof, y)
	}

	return y
}

// buildProofBlock renders the e-invoice metadata and the scannable proof
// symbol. Encoding failures degrade to a visible placeholder box: the
// regulatory proof region must stay evident even in a degraded render.
func (c *Composer) buildProofBlock(s Surface, proof *models.ProofRecord, y float64) float64 {
	y += 5

	s.SetFont("B", 10)
	s.Text(pageLeft, y, "E-Rechnung")
	y += 5

	field := func(label, value string) {
		s.SetFont("B", 10)
		s.Text(pageLeft, y, label+":")
		s.SetFont("", 10)
		s.Text(pageLeft+25, y, value)
		y += 4
	}

	format := proof.Format
	if format == "" {
		format = "zugferd"
	}
	version := proof.Version
	if version == "" {
		version = "1.0"
	}
	field("Format", format)
	field("Version", version)

	s.SetFont("B", 10)
	s.Text(pageLeft, y, "Status:")
	s.SetFont("", 10)
	switch proof.ValidationStatus {
	case "valid":
		s.SetTextColor(34, 197, 94)
		s.Text(pageLeft+25, y, "gültig")
	case "invalid":
		s.SetTextColor(220, 53, 69)
		s.Text(pageLeft+25, y, "ungültig")
	default:
		s.SetTextColor(251, 191, 36)
		s.Text(pageLeft+25, y, "ausstehend")
	}
	s.SetTextColor(0, 0, 0)
	y += 4

	s.SetFont("B", 10)
	s.Text(pageLeft, y, "ID:")
	s.SetFont("", 8)
	s.Text(pageLeft+25, y, proof.ID)
	s.SetFont("", 10)
	y += 4

	y += 5
	const qrSize = 25.0
	if !c.placeProofImage(s, proof.ID, y, qrSize) {
		// Placeholder box so the proof region stays visible.
		s.SetDrawColor(200, 200, 200)
		s.SetLineWidth(0.5)
		s.Rect(pageLeft, y, qrSize, qrSize, false)
		s.SetFont("", 6)
		s.SetTextColor(150, 150, 150)
		s.Text(pageLeft+7, y+8, "QR")
		s.Text(pageLeft+5, y+12, "Code")
		s.SetTextColor(0, 0, 0)
		s.SetFont("", 10)
	}
	return y + qrSize + 5
}

func (c *Composer) placeProofImage(s Surface, proofID string, y, size float64) bool {
	url, err := ProofURL(c.cfg.ProofBaseURL, proofID)
	if err != nil {
		c.log.Warn().Err(err).Msg("Could not build proof URL")
		return false
	}
	img, err := EncodeProofImage(url)
	if err != nil {
		c.log.Warn().Err(err).Msg("Could not encode proof symbol")
		return false
	}
	if err := s.Image(bytes.NewReader(img), "PNG", pageLeft, y, size, size); err != nil {
		c.log.Warn().Err(err).Msg("Could not place proof symbol")
		return false
	}
	return true
}

func (c *Composer) buildAmounts(s Surface, data *models.DocumentData, y float64) float64 {
	s.SetFont("", 10)
	s.SetTextColor(0, 0, 0)

	s.Text(metaColX, y, "Zwischensumme:")
	s.TextRight(pageRight, y, FormatEUR(data.Subtotal))
	y += 6

	if data.TaxRate.IsPositive() {
		s.Text(metaColX, y, fmt.Sprintf("Umsatzsteuer (%s%%):", data.TaxRate.String()))
		s.TextRight(pageRight, y, FormatEUR(data.TaxAmount))
		y += 6
	}

	if data.DocumentType == models.DocumentTypeReminder && data.ReminderFee.IsPositive() {
		s.Text(metaColX, y, "Mahngebühr:")
		s.TextRight(pageRight, y, FormatEUR(data.ReminderFee))
		y += 6
	}

	s.SetDrawColor(100, 100, 100)
	s.SetLineWidth(0.5)
	s.Line(metaColX, y, pageRight, y)
	y += 4

	s.SetFont("B", 12)
	s.Text(metaColX, y, TotalLabel(data.DocumentType)+":")
	s.TextRight(pageRight, y, FormatEUR(data.Total))
	s.SetFont("", 10)
	y += 8

	if data.SkontoEnabled && data.SkontoPercentage.IsPositive() && data.SkontoDays > 0 {
		s.SetDrawColor(200, 200, 200)
		s.SetLineWidth(0.3)
		s.Line(metaColX, y-2, pageRight, y-2)
		y += 4

		skontoAmount := data.Total.Mul(data.SkontoPercentage).Div(oneHundred)

		s.SetTextColor(220, 53, 69)
		s.Text(metaColX, y, fmt.Sprintf("Skonto %s%% bei Zahlung binnen %d Tagen:",
			data.SkontoPercentage.String(), data.SkontoDays))
		s.TextRight(pageRight, y, "- "+FormatEUR(skontoAmount))
		y += 5

		s.SetTextColor(34, 197, 94)
		s.SetFont("B", 10)
		s.Text(metaColX, y, "Zahlbetrag bei Skonto:")
		s.TextRight(pageRight, y, FormatEUR(data.Total.Sub(skontoAmount)))
		s.SetTextColor(0, 0, 0)
		s.SetFont("", 10)
		y += 5
	}

	return y
}
