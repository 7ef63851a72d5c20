package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"docgen/pkg/models"
)

// buildLogo places the company letterhead logo centered at the top of the
// page. An unset or unreadable logo is a degradable failure: the section is
// elided and composition continues.
func (c *Composer) buildLogo(s Surface, data *models.DocumentData, y float64) float64 {
	path := strings.TrimSpace(data.Company.Logo)
	if path == "" {
		return y
	}

	format := ""
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		format = "PNG"
	case ".jpg", ".jpeg":
		format = "JPG"
	default:
		c.log.Warn().Str("logo", path).Msg("Unsupported logo format, section elided")
		return y
	}

	f, err := os.Open(path)
	if err != nil {
		c.log.Warn().Err(err).Str("logo", path).Msg("Could not load logo, section elided")
		return y
	}
	defer f.Close()

	const logoW, logoH = 40.0, 18.0
	center := s.PageWidth() / 2
	if err := s.Image(f, format, center-logoW/2, y, logoW, logoH); err != nil {
		c.log.Warn().Err(err).Str("logo", path).Msg("Could not place logo, section elided")
		return y
	}
	return y + logoH + 7
}

// buildTitle draws the document title resolved from the document type.
func (c *Composer) buildTitle(s Surface, data *models.DocumentData, y float64) float64 {
	s.SetFont("B", 18)
	s.SetTextColor(0, 0, 0)
	s.Text(pageLeft, y, DocumentTitle(data.DocumentType))
	return y + 15
}

// buildHeader draws the two-column header: issuing company line and
// recipient address on the left, document metadata on the right.
func (c *Composer) buildHeader(s Surface, data *models.DocumentData, y float64) float64 {
	leftY := y

	s.SetFont("", 10)
	s.SetTextColor(0, 0, 0)

	company := data.Company
	if company.Name != "" && company.Address.Street != "" {
		line := fmt.Sprintf("%s | %s | %s %s",
			company.Name,
			CleanLine(company.Address.Street),
			company.Address.ZipCode,
			company.Address.City)
		s.Text(pageLeft, leftY, line)
		leftY += 8
	}

	customer := data.Customer
	if customer.Name != "" {
		leftY += 5
		s.SetFont("B", 10)
		s.Text(pageLeft, leftY, customer.Name)
		leftY += 5

		s.SetFont("", 10)
		if customer.Address.Street != "" {
			s.Text(pageLeft, leftY, CleanLine(customer.Address.Street))
			leftY += 4
		}
		if customer.Address.ZipCode != "" && customer.Address.City != "" {
			s.Text(pageLeft, leftY, customer.Address.ZipCode+" "+customer.Address.City)
			leftY += 4
		}
		country := customer.Address.Country
		if country == "" {
			country = "Deutschland"
		}
		s.Text(pageLeft, leftY, country)
		leftY += 4

		if customer.VATID != "" || customer.TaxNumber != "" {
			var taxInfo []string
			if customer.VATID != "" {
				taxInfo = append(taxInfo, "VAT: "+customer.VATID)
			}
			if customer.TaxNumber != "" {
				taxInfo = append(taxInfo, "Steuernummer: "+customer.TaxNumber)
			}
			s.SetFont("", 9)
			s.SetTextColor(100, 100, 100)
			s.Text(pageLeft, leftY, strings.Join(taxInfo, " / "))
			s.SetTextColor(0, 0, 0)
			s.SetFont("", 10)
			leftY += 4
		}
	}

	rightY := y
	row := func(label, value string) {
		s.SetFont("B", 10)
		s.Text(metaColX, rightY, label+":")
		s.SetFont("", 10)
		s.Text(metaColX+40, rightY, value)
		rightY += 5
	}

	row(NumberLabel(data.DocumentType), data.DocumentNumber)
	row(DateLabel(data.DocumentType), FormatDate(data.Date))

	if data.DueDate != "" && ShowsDueDate(data.DocumentType) {
		row(DueDateLabel(data.DocumentType), FormatDate(data.DueDate))
	}

	if data.ServicePeriod != "" {
		row("Lieferzeitraum", data.ServicePeriod)
	} else if data.ServiceDate != "" {
		row("Lieferdatum", FormatDate(data.ServiceDate))
	}

	if data.ContactPersonName != "" {
		row("Kontaktperson", data.ContactPersonName)
	}
	if data.DeliveryTerms != "" {
		row("Lieferbedingung", data.DeliveryTerms)
	}

	if data.IsSmallBusiness {
		s.SetFont("B", 10)
		s.Text(metaColX, rightY, "Kleinunternehmerregelung (§19 UStG)")
		rightY += 5
	}

	if data.Reference != "" {
		row("Referenz", data.Reference)
	}

	if leftY > rightY {
		return leftY + 10
	}
	return rightY + 10
}

// buildIntro draws the free text above the items table.
func (c *Composer) buildIntro(s Surface, data *models.DocumentData, y float64) float64 {
	text := Sanitize(data.IntroText)
	if text == "" {
		return y
	}

	s.SetFont("", 12)
	s.SetTextColor(0, 0, 0)
	lines := s.SplitText(text, contentW)
	for i, line := range lines {
		s.Text(pageLeft, y+float64(i)*5, line)
	}
	return y + float64(len(lines))*5 + 10
}
