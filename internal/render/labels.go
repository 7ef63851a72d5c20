package render

import "docgen/pkg/models"

// Every document type carries its own complete header vocabulary. The
// switches below are the single place this vocabulary lives; an unknown
// type falls back to the neutral "Dokument" wording rather than failing.

// DocumentTitle returns the page title for a document type.
func DocumentTitle(t models.DocumentType) string {
	switch t {
	case models.DocumentTypeQuote:
		return "Angebot"
	case models.DocumentTypeInvoice:
		return "Rechnung"
	case models.DocumentTypeStorno:
		return "STORNO-RECHNUNG"
	case models.DocumentTypeReminder:
		return "Mahnung"
	case models.DocumentTypeVoucher:
		return "Gutschein"
	case models.DocumentTypeDeliveryNote:
		return "Lieferschein"
	case models.DocumentTypeProforma:
		return "Proforma-Rechnung"
	case models.DocumentTypeCreditNote:
		return "Gutschrift"
	case models.DocumentTypeOrderConfirmation:
		return "Auftragsbestätigung"
	case models.DocumentTypeCostEstimate:
		return "Kostenvoranschlag"
	default:
		return "Dokument"
	}
}

// NumberLabel returns the caption for the document-number row.
func NumberLabel(t models.DocumentType) string {
	switch t {
	case models.DocumentTypeQuote:
		return "Angebotsnummer"
	case models.DocumentTypeInvoice:
		return "Rechnungsnummer"
	case models.DocumentTypeStorno:
		return "Storno-Nummer"
	case models.DocumentTypeReminder:
		return "Mahnungsnummer"
	case models.DocumentTypeVoucher:
		return "Gutscheinnummer"
	case models.DocumentTypeDeliveryNote:
		return "Lieferscheinnummer"
	case models.DocumentTypeProforma:
		return "Proforma-Nummer"
	case models.DocumentTypeCreditNote:
		return "Gutschriftsnummer"
	case models.DocumentTypeOrderConfirmation:
		return "Auftragsnummer"
	case models.DocumentTypeCostEstimate:
		return "Kostenvoranschlagsnummer"
	default:
		return "Dokumentennummer"
	}
}

// DateLabel returns the caption for the document-date row.
func DateLabel(t models.DocumentType) string {
	switch t {
	case models.DocumentTypeQuote:
		return "Angebotsdatum"
	case models.DocumentTypeInvoice:
		return "Rechnungsdatum"
	case models.DocumentTypeStorno:
		return "Storno-Datum"
	case models.DocumentTypeReminder:
		return "Mahnungsdatum"
	case models.DocumentTypeVoucher:
		return "Gutscheindatum"
	case models.DocumentTypeDeliveryNote:
		return "Lieferscheindatum"
	case models.DocumentTypeProforma:
		return "Proforma-Datum"
	case models.DocumentTypeCreditNote:
		return "Gutschriftsdatum"
	case models.DocumentTypeOrderConfirmation:
		return "Auftragsdatum"
	case models.DocumentTypeCostEstimate:
		return "Kostenvoranschlagsdatum"
	default:
		return "Dokumentendatum"
	}
}

// ShowsDueDate reports whether a due-date row is rendered at all for the
// given type. Documents without payment obligations omit the row entirely
// instead of showing an empty label.
func ShowsDueDate(t models.DocumentType) bool {
	switch t {
	case models.DocumentTypeInvoice, models.DocumentTypeReminder, models.DocumentTypeStorno:
		return true
	default:
		return false
	}
}

// DueDateLabel returns the caption for the due-date row.
func DueDateLabel(t models.DocumentType) string {
	return "Fälligkeitsdatum"
}

// TotalLabel returns the caption next to the final amount.
func TotalLabel(t models.DocumentType) string {
	switch t {
	case models.DocumentTypeQuote:
		return "Angebotssumme"
	case models.DocumentTypeInvoice:
		return "Rechnungsbetrag"
	case models.DocumentTypeStorno:
		return "Stornobetrag"
	case models.DocumentTypeReminder:
		return "Mahnungsbetrag"
	case models.DocumentTypeVoucher:
		return "Gutscheinwert"
	case models.DocumentTypeCreditNote:
		return "Gutschriftsbetrag"
	case models.DocumentTypeCostEstimate:
		return "Geschätzte Kosten"
	default:
		return "Gesamtbetrag"
	}
}
