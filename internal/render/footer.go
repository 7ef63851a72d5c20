package render

import (
	"strings"

	"docgen/pkg/models"
)

// buildFooterText renders the free-text footer notice on a light background,
// with placeholder tokens substituted. Elided when no template is set.
func (c *Composer) buildFooterText(s Surface, data *models.DocumentData, y float64) float64 {
	if data.FooterText == "" {
		return y
	}

	text := Sanitize(ExpandTemplate(data.FooterText, footerTemplateValues(data)))
	if text == "" {
		return y
	}

	s.SetFillColor(249, 250, 251)
	s.Rect(pageLeft-2, y-2, contentW+4, 25, true)

	s.SetFont("", 8)
	s.SetTextColor(55, 65, 81)
	lines := s.SplitText(text, contentW-4)
	for i, line := range lines {
		s.Text(pageLeft+2, y+3+float64(i)*3.5, line)
	}
	s.SetTextColor(0, 0, 0)

	height := float64(len(lines)) * 3.5
	if height < 20 {
		height = 20
	}
	return y + height + 5
}

// buildFooterLegal renders the company registration facts centered at the
// bottom of the content, joined into a single separator-delimited run.
func (c *Composer) buildFooterLegal(s Surface, data *models.DocumentData, y float64) float64 {
	fragments := FooterFragments(data.Company)
	if len(fragments) == 0 {
		return y + 10
	}

	s.SetFont("", 9)
	s.SetTextColor(55, 65, 81)

	lines := s.SplitText(strings.Join(fragments, " | "), contentW)
	const lineHeight = 4.0
	center := s.PageWidth() / 2
	for i, line := range lines {
		s.TextCenter(center, y+10+float64(i)*lineHeight, line)
	}
	s.SetTextColor(0, 0, 0)

	return y + float64(len(lines))*lineHeight + 15
}

// FooterFragments assembles the ordered legal-footer fragments from company
// data. A fragment is emitted only when its backing fields are non-empty
// after trimming; missing data shortens the footer, it never produces a
// placeholder. The order is legally deliberate: name, address, contact,
// registration, tax identifiers, bank connection, director/owner.
func FooterFragments(company models.Company) []string {
	var fragments []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			fragments = append(fragments, s)
		}
	}

	name := strings.TrimSpace(company.Name)
	if suffix := strings.TrimSpace(company.Suffix); suffix != "" && name != "" {
		name += " " + suffix
	}
	add(name)

	street := strings.TrimSpace(CleanLine(company.Address.Street))
	cityLine := strings.TrimSpace(strings.TrimSpace(company.Address.ZipCode) + " " + strings.TrimSpace(company.Address.City))
	switch {
	case street != "" && cityLine != "":
		add(street + ", " + cityLine)
	case street != "":
		add(street)
	case cityLine != "":
		add(cityLine)
	}

	if phone := strings.TrimSpace(company.Phone); phone != "" {
		add("Tel: " + phone)
	}
	if email := strings.TrimSpace(company.Email); email != "" {
		add("E-Mail: " + email)
	}
	if website := strings.TrimSpace(company.Website); website != "" {
		add("Web: " + website)
	}

	court := strings.TrimSpace(company.RegistrationCourt)
	register := strings.TrimSpace(company.RegistrationNumber)
	if court != "" && register != "" {
		add(court + " " + register)
	}

	if taxNumber := strings.TrimSpace(company.TaxNumber); taxNumber != "" {
		add("Steuernummer: " + taxNumber)
	}
	if vatID := strings.TrimSpace(company.VATID); vatID != "" {
		add("USt-ID: " + vatID)
	}

	if company.BankDetails != nil {
		if iban := strings.TrimSpace(company.BankDetails.IBAN); iban != "" {
			add("IBAN: " + iban)
		}
		if bic := strings.TrimSpace(company.BankDetails.BIC); bic != "" {
			add("BIC: " + bic)
		}
	}

	if director := DirectorName(company); director != "" {
		if requiresManagementDisclosure(company.LegalForm) {
			add("Geschäftsführer: " + director)
		} else {
			add("Inhaber: " + director)
		}
	}

	return fragments
}

// DirectorName resolves the director/owner name through the historical data
// shapes company records were persisted under, in fixed priority order:
// the explicit managing-directors list, the onboarding-step directors list,
// onboarding personal data, then top-level personal data. The first link
// with a usable name wins; changing this precedence could silently alter
// legally required footer text on existing documents.
func DirectorName(company models.Company) string {
	if name := directorFromList(company.ManagingDirectors); name != "" {
		return name
	}
	if company.Onboarding != nil {
		if name := directorFromList(company.Onboarding.ManagingDirectors); name != "" {
			return name
		}
		pd := company.Onboarding.PersonalData
		if pd.FirstName != "" && pd.LastName != "" {
			return pd.FirstName + " " + pd.LastName
		}
	}
	if company.FirstName != "" && company.LastName != "" {
		return company.FirstName + " " + company.LastName
	}
	return ""
}

// directorFromList picks the entry flagged as primary, falling back to the
// first entry, and returns its name from either the split or combined form.
func directorFromList(directors []models.Director) string {
	if len(directors) == 0 {
		return ""
	}
	chosen := directors[0]
	for _, d := range directors {
		if d.IsMainDirector {
			chosen = d
			break
		}
	}
	if chosen.FirstName != "" && chosen.LastName != "" {
		return chosen.FirstName + " " + chosen.LastName
	}
	return strings.TrimSpace(chosen.Name)
}

// Limited-liability legal forms must disclose their management on business
// letters; everyone else renders the owner wording.
func requiresManagementDisclosure(legalForm string) bool {
	lf := strings.ToLower(legalForm)
	return strings.Contains(lf, "gmbh") ||
		strings.Contains(lf, "ug") ||
		strings.Contains(lf, "ag") ||
		strings.Contains(lf, "kg")
}
