package models

import "github.com/shopspring/decimal"

// DocumentType identifies the kind of business document being rendered.
// It drives every label and terminology decision during composition.
type DocumentType string

const (
	DocumentTypeQuote             DocumentType = "quote"
	DocumentTypeInvoice           DocumentType = "invoice"
	DocumentTypeStorno            DocumentType = "storno"
	DocumentTypeReminder          DocumentType = "reminder"
	DocumentTypeVoucher           DocumentType = "voucher"
	DocumentTypeDeliveryNote      DocumentType = "delivery_note"
	DocumentTypeProforma          DocumentType = "proforma"
	DocumentTypeCreditNote        DocumentType = "credit_note"
	DocumentTypeOrderConfirmation DocumentType = "order_confirmation"
	DocumentTypeCostEstimate      DocumentType = "cost_estimate"
)

// DocumentTypes lists every supported document type.
var DocumentTypes = []DocumentType{
	DocumentTypeQuote,
	DocumentTypeInvoice,
	DocumentTypeStorno,
	DocumentTypeReminder,
	DocumentTypeVoucher,
	DocumentTypeDeliveryNote,
	DocumentTypeProforma,
	DocumentTypeCreditNote,
	DocumentTypeOrderConfirmation,
	DocumentTypeCostEstimate,
}

// TaxRule is an internal code selecting the statutory disclosure sentence
// printed on the document. The code is the sole key; nothing is inferred
// from other fields.
type TaxRule string

const (
	TaxRuleDETaxable          TaxRule = "DE_TAXABLE"            // standard rate 19 %
	TaxRuleDETaxableReduced   TaxRule = "DE_TAXABLE_REDUCED"    // reduced rate 7 %
	TaxRuleDEReduced          TaxRule = "DE_REDUCED"            // reduced rate, long form
	TaxRuleDEExempt           TaxRule = "DE_EXEMPT"             // § 4 UStG exemption
	TaxRuleDEExempt4UStG      TaxRule = "DE_EXEMPT_4_USTG"      // alias kept for stored documents
	TaxRuleDESmallBusiness    TaxRule = "DE_SMALL_BUSINESS"     // § 19 UStG
	TaxRuleDEReverseCharge    TaxRule = "DE_REVERSE_CHARGE"     // § 13b UStG
	TaxRuleDEReverse13B       TaxRule = "DE_REVERSE_13B"        // alias kept for stored documents
	TaxRuleEUReverse18B       TaxRule = "EU_REVERSE_18B"        // Art. 196 MwStSystRL
	TaxRuleEUIntraCommunity   TaxRule = "EU_INTRACOMMUNITY_SUPPLY"
	TaxRuleEUOSS              TaxRule = "EU_OSS"                // one-stop-shop scheme
	TaxRuleNonEUExport        TaxRule = "NON_EU_EXPORT"         // § 4 Nr. 1a UStG
	TaxRuleNonEUOutOfScope    TaxRule = "NON_EU_OUT_OF_SCOPE"   // place of supply abroad
	TaxRuleDEIntraCommunity   TaxRule = "DE_INTRACOMMUNITY"     // legacy spelling
	TaxRuleDEExport           TaxRule = "DE_EXPORT"             // legacy spelling
)

// Address is a postal address.
type Address struct {
	Street  string `json:"street"`
	ZipCode string `json:"zipCode"`
	City    string `json:"city"`
	Country string `json:"country,omitempty"` // defaults to Deutschland when rendered
}

// BankDetails holds the payment connection printed in the legal footer.
type BankDetails struct {
	IBAN          string `json:"iban"`
	BIC           string `json:"bic"`
	BankName      string `json:"bankName,omitempty"`
	AccountHolder string `json:"accountHolder,omitempty"`
}

// Director is one entry of a company's managing-directors list.
type Director struct {
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Name           string `json:"name,omitempty"` // combined form used by older records
	IsMainDirector bool   `json:"isMainDirector,omitempty"`
}

// PersonalData carries the account holder's own name as collected during
// onboarding. Used as a fallback when no director list exists.
type PersonalData struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// OnboardingData is the nested shape older company records persisted their
// registration step under. Kept so documents for those tenants still render
// the legally required footer.
type OnboardingData struct {
	ManagingDirectors []Director   `json:"managingDirectors,omitempty"`
	PersonalData      PersonalData `json:"personalData,omitempty"`
}

// Company describes the issuing company, including the optional legal facts
// that feed the footer. Absent fields simply shorten the footer; they are
// never replaced by placeholder values.
type Company struct {
	Name    string  `json:"name"`
	Suffix  string  `json:"suffix,omitempty"` // legal-form suffix appended to the name
	Address Address `json:"address"`

	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
	Logo    string `json:"logo,omitempty"` // file path of the letterhead logo

	BankDetails *BankDetails `json:"bankDetails,omitempty"`

	LegalForm          string `json:"legalForm,omitempty"`
	RegistrationCourt  string `json:"registrationCourt,omitempty"` // e.g. "Amtsgericht München"
	RegistrationNumber string `json:"registrationNumber,omitempty"` // e.g. "HRB 123456"
	TaxNumber          string `json:"taxNumber,omitempty"`
	VATID              string `json:"vatId,omitempty"`

	// Director/owner name sources, checked in exactly this priority order.
	ManagingDirectors []Director      `json:"managingDirectors,omitempty"`
	Onboarding        *OnboardingData `json:"onboarding,omitempty"`
	FirstName         string          `json:"firstName,omitempty"`
	LastName          string          `json:"lastName,omitempty"`
}

// Customer is the document recipient.
type Customer struct {
	Name      string  `json:"name"`
	Address   Address `json:"address"`
	VATID     string  `json:"vatId,omitempty"`
	TaxNumber string  `json:"taxNumber,omitempty"`
}

// LineItem is one row of the items table. Older records persisted the
// discount percentage under "discount" instead of "discountPercent"; both
// keys are accepted so legacy documents keep rendering their discounts.
type LineItem struct {
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	DiscountPercent decimal.Decimal `json:"discountPercent,omitempty"` // percentage of quantity*unitPrice
	Discount        decimal.Decimal `json:"discount,omitempty"`        // legacy name for the same percentage
}

// EffectiveDiscount returns the discount percentage for the line, preferring
// the current field and falling back to the legacy one when it is unset.
func (li LineItem) EffectiveDiscount() decimal.Decimal {
	if li.DiscountPercent.IsPositive() {
		return li.DiscountPercent
	}
	return li.Discount
}

// Total derives the line total: unitPrice * quantity - discount, where the
// discount is a percentage of the undiscounted line amount.
func (li LineItem) Total() decimal.Decimal {
	gross := li.UnitPrice.Mul(li.Quantity)
	if pct := li.EffectiveDiscount(); pct.IsPositive() {
		discount := gross.Mul(pct).Div(decimal.NewFromInt(100))
		return gross.Sub(discount)
	}
	return gross
}

// ProofRecord identifies the document's machine-verifiable e-invoice
// counterpart. Its presence triggers the scannable proof block.
type ProofRecord struct {
	ID               string `json:"id"`
	Format           string `json:"format,omitempty"`  // e.g. "zugferd", "xrechnung"
	Version          string `json:"version,omitempty"`
	ValidationStatus string `json:"validationStatus,omitempty"` // valid, invalid, pending
}

// DocumentData is the normalized input for one composition call. It is
// constructed fresh per generation request from persisted business records,
// consumed once, and discarded; the engine never mutates it.
//
// The composer trusts the supplied totals: total = subtotal + taxAmount
// (plus the reminder fee for reminders). It formats these numbers, it does
// not recompute them.
type DocumentData struct {
	DocumentType   DocumentType `json:"documentType"`
	DocumentNumber string       `json:"documentNumber"`
	Date           string       `json:"date"`
	DueDate        string       `json:"dueDate,omitempty"`
	ServicePeriod  string       `json:"servicePeriod,omitempty"`
	ServiceDate    string       `json:"serviceDate,omitempty"`
	Reference      string       `json:"reference,omitempty"`

	ContactPersonName string `json:"contactPersonName,omitempty"`
	DeliveryTerms     string `json:"deliveryTerms,omitempty"`

	Company  Company  `json:"company"`
	Customer Customer `json:"customer"`

	IntroText string     `json:"introText,omitempty"` // free text above the items table
	Items     []LineItem `json:"items"`

	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	Total       decimal.Decimal `json:"total"`
	ReminderFee decimal.Decimal `json:"reminderFee,omitempty"` // only meaningful for reminders

	TaxRule         TaxRule `json:"taxRule,omitempty"`
	IsSmallBusiness bool    `json:"isSmallBusiness,omitempty"`

	PaymentTerms string `json:"paymentTerms,omitempty"`

	SkontoEnabled    bool            `json:"skontoEnabled,omitempty"`
	SkontoPercentage decimal.Decimal `json:"skontoPercentage,omitempty"`
	SkontoDays       int             `json:"skontoDays,omitempty"`
	SkontoText       string          `json:"skontoText,omitempty"`

	Proof *ProofRecord `json:"proof,omitempty"`

	FooterText string `json:"footerText,omitempty"` // free-text template with [%TOKEN%] placeholders
}
