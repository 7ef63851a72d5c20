package render

import "docgen/pkg/models"

// taxRuleTexts maps each tax-rule code to the exact statutory disclosure
// sentence required on the printed document. The wording is legally fixed;
// do not rephrase entries without checking the underlying statute.
var taxRuleTexts = map[models.TaxRule]string{
	models.TaxRuleDETaxable:        "Steuerpflichtiger Umsatz (Regelsteuersatz 19 %, § 1 Abs. 1 Nr. 1 i.V.m. § 12 Abs. 1 UStG)",
	models.TaxRuleDETaxableReduced: "Steuerpflichtiger Umsatz (ermäßigter Steuersatz 7 %, § 12 Abs. 2 UStG)",
	models.TaxRuleDEReduced:        "Steuerpflichtiger Umsatz (ermäßigter Steuersatz 7 %, § 1 Abs. 1 Nr. 1 i.V.m. § 12 Abs. 2 UStG)",
	models.TaxRuleDEExempt:         "Steuerfreie Lieferung/Leistung gemäß § 4 UStG",
	models.TaxRuleDEExempt4UStG:    "Steuerfreie Lieferung/Leistung gemäß § 4 UStG",
	models.TaxRuleDESmallBusiness:  "Umsatzsteuerbefreit nach § 19 UStG (Kleinunternehmerregelung)",
	models.TaxRuleDEReverseCharge:  "Steuerschuldnerschaft des Leistungsempfängers (§ 13b UStG)",
	models.TaxRuleDEReverse13B:     "Steuerschuldnerschaft des Leistungsempfängers (§ 13b UStG)",
	models.TaxRuleEUReverse18B:     "Steuerschuldnerschaft des Leistungsempfängers (Art. 196 MwStSystRL, § 18b UStG)",
	models.TaxRuleEUIntraCommunity: "Innergemeinschaftliche Lieferung, steuerfrei gemäß § 4 Nr. 1b i.V.m. § 6a UStG",
	models.TaxRuleEUOSS:            "Fernverkauf über das OSS-Verfahren (§ 18j UStG)",
	models.TaxRuleNonEUExport:      "Steuerfreie Ausfuhrlieferung (§ 4 Nr. 1a UStG)",
	models.TaxRuleNonEUOutOfScope:  "Nicht im Inland steuerbare Leistung (Leistungsort außerhalb Deutschlands, § 3a Abs. 2 UStG)",
	models.TaxRuleDEIntraCommunity: "Innergemeinschaftliche Lieferung (§ 4 Nr. 1b UStG)",
	models.TaxRuleDEExport:         "Ausfuhrlieferung (§ 4 Nr. 1a UStG)",
}

// TaxRuleText resolves a tax-rule code to its statutory disclosure sentence.
// Unknown codes resolve to the code string itself: the text is advisory and
// must never block document production, so the raw code stays visible on the
// document instead of failing the composition.
func TaxRuleText(code models.TaxRule) string {
	if text, ok := taxRuleTexts[code]; ok {
		return text
	}
	return string(code)
}
