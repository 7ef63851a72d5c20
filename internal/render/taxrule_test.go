package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"docgen/internal/render"
	"docgen/pkg/models"
)

// Golden-value table: the statutory sentences are legally fixed and must
// match exactly.
func TestTaxRuleTextGoldenValues(t *testing.T) {
	tests := []struct {
		code models.TaxRule
		want string
	}{
		{models.TaxRuleDETaxable, "Steuerpflichtiger Umsatz (Regelsteuersatz 19 %, § 1 Abs. 1 Nr. 1 i.V.m. § 12 Abs. 1 UStG)"},
		{models.TaxRuleDETaxableReduced, "Steuerpflichtiger Umsatz (ermäßigter Steuersatz 7 %, § 12 Abs. 2 UStG)"},
		{models.TaxRuleDEReduced, "Steuerpflichtiger Umsatz (ermäßigter Steuersatz 7 %, § 1 Abs. 1 Nr. 1 i.V.m. § 12 Abs. 2 UStG)"},
		{models.TaxRuleDEExempt, "Steuerfreie Lieferung/Leistung gemäß § 4 UStG"},
		{models.TaxRuleDEExempt4UStG, "Steuerfreie Lieferung/Leistung gemäß § 4 UStG"},
		{models.TaxRuleDESmallBusiness, "Umsatzsteuerbefreit nach § 19 UStG (Kleinunternehmerregelung)"},
		{models.TaxRuleDEReverseCharge, "Steuerschuldnerschaft des Leistungsempfängers (§ 13b UStG)"},
		{models.TaxRuleDEReverse13B, "Steuerschuldnerschaft des Leistungsempfängers (§ 13b UStG)"},
		{models.TaxRuleEUReverse18B, "Steuerschuldnerschaft des Leistungsempfängers (Art. 196 MwStSystRL, § 18b UStG)"},
		{models.TaxRuleEUIntraCommunity, "Innergemeinschaftliche Lieferung, steuerfrei gemäß § 4 Nr. 1b i.V.m. § 6a UStG"},
		{models.TaxRuleEUOSS, "Fernverkauf über das OSS-Verfahren (§ 18j UStG)"},
		{models.TaxRuleNonEUExport, "Steuerfreie Ausfuhrlieferung (§ 4 Nr. 1a UStG)"},
		{models.TaxRuleNonEUOutOfScope, "Nicht im Inland steuerbare Leistung (Leistungsort außerhalb Deutschlands, § 3a Abs. 2 UStG)"},
		{models.TaxRuleDEIntraCommunity, "Innergemeinschaftliche Lieferung (§ 4 Nr. 1b UStG)"},
		{models.TaxRuleDEExport, "Ausfuhrlieferung (§ 4 Nr. 1a UStG)"},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, render.TaxRuleText(tt.code))
		})
	}
}

// Unknown codes pass through unchanged: approximate text on the document
// beats a failed generation.
func TestTaxRuleTextUnknownPassthrough(t *testing.T) {
	assert.Equal(t, "XX_FUTURE_RULE", render.TaxRuleText(models.TaxRule("XX_FUTURE_RULE")))
	assert.Equal(t, "", render.TaxRuleText(models.TaxRule("")))
}
