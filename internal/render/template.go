package render

import (
	"regexp"

	"docgen/pkg/models"
)

// TemplateToken names a placeholder usable in footer notice templates,
// written as [%TOKEN%] in the stored text.
type TemplateToken string

const (
	TokenTotalAmount    TemplateToken = "GESAMTBETRAG"
	TokenDocumentNumber TemplateToken = "RECHNUNGSNUMMER"
	TokenPaymentTerms   TemplateToken = "ZAHLUNGSZIEL"
	TokenDocumentDate   TemplateToken = "RECHNUNGSDATUM"
	TokenContactPerson  TemplateToken = "KONTAKTPERSON"
)

var tokenPattern = regexp.MustCompile(`\[%([A-ZÄÖÜ_]+)%\]`)

// ExpandTemplate substitutes every known [%TOKEN%] placeholder in a single
// pass. Unknown tokens stay literal so the template author can spot the
// mismatch on the rendered document instead of losing text silently.
func ExpandTemplate(tpl string, values map[TemplateToken]string) string {
	return tokenPattern.ReplaceAllStringFunc(tpl, func(match string) string {
		name := tokenPattern.FindStringSubmatch(match)[1]
		if value, ok := values[TemplateToken(name)]; ok {
			return value
		}
		return match
	})
}

// footerTemplateValues collects the substitution values for a document.
func footerTemplateValues(data *models.DocumentData) map[TemplateToken]string {
	contact := data.ContactPersonName
	if contact == "" {
		contact = data.Company.Name
	}
	return map[TemplateToken]string{
		TokenTotalAmount:    FormatEUR(data.Total),
		TokenDocumentNumber: data.DocumentNumber,
		TokenPaymentTerms:   data.PaymentTerms,
		TokenDocumentDate:   FormatDate(data.Date),
		TokenContactPerson:  contact,
	}
}
