package render_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docgen/internal/render"
	"docgen/pkg/models"
)

// recordingSurface captures drawing calls so section output can be asserted
// without decoding PDF bytes.
type recordingSurface struct {
	texts  []string
	rects  int
	lines  int
	images int
}

func (r *recordingSurface) SetFont(style string, size float64) {}
func (r *recordingSurface) SetTextColor(x, y, z int)           {}
func (r *recordingSurface) SetDrawColor(x, y, z int)           {}
func (r *recordingSurface) SetFillColor(x, y, z int)           {}
func (r *recordingSurface) SetLineWidth(w float64)             {}

func (r *recordingSurface) Text(x, y float64, s string)       { r.texts = append(r.texts, s) }
func (r *recordingSurface) TextRight(x, y float64, s string)  { r.texts = append(r.texts, s) }
func (r *recordingSurface) TextCenter(x, y float64, s string) { r.texts = append(r.texts, s) }

func (r *recordingSurface) Line(x1, y1, x2, y2 float64)        { r.lines++ }
func (r *recordingSurface) Rect(x, y, w, h float64, fill bool) { r.rects++ }

func (r *recordingSurface) Image(rd io.Reader, format string, x, y, w, h float64) error {
	r.images++
	return nil
}

func (r *recordingSurface) SplitText(s string, w float64) []string {
	return strings.Split(s, "\n")
}

func (r *recordingSurface) PageWidth() float64 { return 210 }

func (r *recordingSurface) allText() string { return strings.Join(r.texts, "\n") }

func minimalInvoice() *models.DocumentData {
	return &models.DocumentData{
		DocumentType:   models.DocumentTypeInvoice,
		DocumentNumber: "RE-2026-001",
		Date:           "2026-03-15",
		Company: models.Company{
			Name:    "Muster GmbH",
			Address: models.Address{Street: "Musterstraße 1", ZipCode: "10115", City: "Berlin"},
		},
		Customer: models.Customer{
			Name:    "Kunde AG",
			Address: models.Address{Street: "Kundenweg 2", ZipCode: "20095", City: "Hamburg"},
		},
		Items: []models.LineItem{
			{
				Description: "Beratungsleistung",
				Quantity:    decimal.NewFromInt(10),
				Unit:        "Std.",
				UnitPrice:   decimal.NewFromInt(100),
			},
		},
		Subtotal:  decimal.NewFromInt(1000),
		TaxRate:   decimal.NewFromInt(19),
		TaxAmount: decimal.NewFromInt(190),
		Total:     decimal.NewFromInt(1190),
		TaxRule:   models.TaxRuleDETaxable,
	}
}

func newTestComposer() *render.Composer {
	return render.NewComposer(render.Config{ProofBaseURL: "https://app.example.com"})
}

func TestComposeMinimalInvoice(t *testing.T) {
	s := &recordingSurface{}
	require.NoError(t, newTestComposer().Compose(s, minimalInvoice()))

	text := s.allText()
	assert.Contains(t, text, "Rechnung")
	assert.Contains(t, text, "Rechnungsnummer:")
	assert.Contains(t, text, "RE-2026-001")
	assert.Contains(t, text, "15.03.2026")
	assert.Contains(t, text, "1.190,00 €")
	assert.Contains(t, text, "Steuerpflichtiger Umsatz (Regelsteuersatz 19 %, § 1 Abs. 1 Nr. 1 i.V.m. § 12 Abs. 1 UStG)")
	assert.Zero(t, s.images, "no logo and no proof record were supplied")
}

func TestGenerateProducesPDFBytes(t *testing.T) {
	out, err := newTestComposer().Generate(minimalInvoice())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "expected a PDF header")
	assert.Greater(t, len(out), 500)
}

func TestReminderRendersDueDateAndFee(t *testing.T) {
	data := minimalInvoice()
	data.DocumentType = models.DocumentTypeReminder
	data.DueDate = "2026-04-01"
	data.ReminderFee = decimal.NewFromInt(10)
	data.Total = decimal.NewFromInt(1200)

	s := &recordingSurface{}
	require.NoError(t, newTestComposer().Compose(s, data))

	text := s.allText()
	assert.Contains(t, text, "Mahnung")
	assert.Contains(t, text, "Fälligkeitsdatum:")
	assert.Contains(t, text, "01.04.2026")
	assert.Contains(t, text, "Mahngebühr:")
	assert.Contains(t, text, "1.200,00 €")
}

func TestQuoteSuppressesDueDate(t *testing.T) {
	data := minimalInvoice()
	data.DocumentType = models.DocumentTypeQuote
	data.DueDate = "2026-04-01"

	s := &recordingSurface{}
	require.NoError(t, newTestComposer().Compose(s, data))

	text := s.allText()
	assert.Contains(t, text, "Angebot")
	assert.NotContains(t, text, "Fälligkeitsdatum:")
	assert.NotContains(t, text, "01.04.2026")
}

func TestInputDefectsFailFast(t *testing.T) {
	composer := newTestComposer()

	data := minimalInvoice()
	data.DocumentNumber = "   "
	_, err := composer.Generate(data)
	assert.ErrorIs(t, err, render.ErrMissingDocumentNumber)
	assert.True(t, render.IsInputDefect(err))

	data = minimalInvoice()
	data.Items = nil
	_, err = composer.Generate(data)
	assert.ErrorIs(t, err, render.ErrNoLineItems)
	assert.True(t, render.IsInputDefect(err))
}

func TestUnknownTaxRuleRendersCode(t *testing.T) {
	data := minimalInvoice()
	data.TaxRule = models.TaxRule("XX_FUTURE_RULE")

	s := &recordingSurface{}
	require.NoError(t, newTestComposer().Compose(s, data))
	assert.Contains(t, s.allText(), "XX_FUTURE_RULE")
}

func TestSmallBusinessOverridesTaxSentence(t *testing.T) {
	data := minimalInvoice()
	data.IsSmallBusiness = true
	data.TaxRate = decimal.Zero
	data.TaxAmount = decimal.Zero
	data.Total = data.Subtotal

	s := &recordingSurface{}
	require.NoError(t, newTestComposer().Compose(s, data))

	text := s.allText()
	assert.Contains(t, text, "Umsatzsteuerbefreit nach § 19 UStG (Kleinunternehmerregelung)")
	assert.NotContains(t, text, "Regelsteuersatz")
}

func TestProofRecordRendersBlockAndSymbol(t *testing.T) {
	data := minimalInvoice()
	data.Proof = &models.ProofRecord{
		ID:               "9f2d1c3a",
		Format:           "xrechnung",
		Version:          "2.3",
		ValidationStatus: "valid",
	}

	s := &recordingSurface{}
	require.NoError(t, newTestComposer().Compose(s, data))

	text := s.allText()
	assert.Contains(t, text, "E-Rechnung")
	assert.Contains(t, text, "xrechnung")
	assert.Contains(t, text, "9f2d1c3a")
	assert.Contains(t, text, "gültig")
	assert.Equal(t, 1, s.images, "proof symbol should be placed")
}

func TestUnreachableLogoDegradesSilently(t *testing.T) {
	data := minimalInvoice()
	data.Company.Logo = "/nonexistent/logo.png"

	s := &recordingSurface{}
	require.NoError(t, newTestComposer().Compose(s, data))
	assert.Zero(t, s.images)

	out, err := newTestComposer().Generate(data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestFooterTextSubstitutesTokens(t *testing.T) {
	data := minimalInvoice()
	data.FooterText = "Bitte überweisen Sie [%GESAMTBETRAG%] unter Angabe von [%RECHNUNGSNUMMER%]."

	s := &recordingSurface{}
	require.NoError(t, newTestComposer().Compose(s, data))

	assert.Contains(t, s.allText(), "Bitte überweisen Sie 1.190,00 € unter Angabe von RE-2026-001.")
}

func TestDiscountedItemsTable(t *testing.T) {
	data := minimalInvoice()
	data.Items = append(data.Items, models.LineItem{
		Description:     "Rabattierte Leistung",
		Quantity:        decimal.NewFromInt(2),
		Unit:            "Stk.",
		UnitPrice:       decimal.NewFromInt(50),
		DiscountPercent: decimal.NewFromInt(10),
	})

	s := &recordingSurface{}
	require.NoError(t, newTestComposer().Compose(s, data))

	text := s.allText()
	assert.Contains(t, text, "Rabatt")
	assert.Contains(t, text, "10%")
	// 2 * 50 minus 10 % discount
	assert.Contains(t, text, "90,00 €")
}

func TestItemsTableLegacyDiscountField(t *testing.T) {
	data := minimalInvoice()
	data.Items = append(data.Items, models.LineItem{
		Description: "Rabattierte Leistung",
		Quantity:    decimal.NewFromInt(2),
		Unit:        "Stk.",
		UnitPrice:   decimal.NewFromInt(50),
		Discount:    decimal.NewFromInt(10),
	})

	s := &recordingSurface{}
	require.NoError(t, newTestComposer().Compose(s, data))

	text := s.allText()
	assert.Contains(t, text, "Rabatt")
	assert.Contains(t, text, "10%")
	assert.Contains(t, text, "90,00 €")
}
