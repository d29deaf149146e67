package curation

import (
	"strings"
	"unicode"

	"curator/core/domain"
)

// =============================================================================
// Presentation helpers (brand name, menu navigation)
// =============================================================================

// menuItems holds the industry-specific middle section of the navigation
// structure. Every menu starts with Home and ends with About | Contact.
var menuItems = map[domain.IndustryCategory][]string{
	domain.IndustryITSoftware:    {"Solutions", "Products", "Pricing", "Resources", "Developers"},
	domain.IndustryManufacturing: {"Products", "Solutions", "Industries", "Resources"},
	domain.IndustryHealthcare:    {"Services", "Solutions", "Resources", "Patients"},
	domain.IndustryEngineering:   {"Services", "Projects", "Solutions", "Resources"},
	domain.IndustryHRRecruitment: {"Jobs", "Employers", "Candidates", "Resources"},
	domain.IndustryAnalytics:     {"Platform", "Solutions", "Insights", "Resources"},
	domain.IndustryCybersecurity: {"Solutions", "Services", "Resources", "Partners"},
	domain.IndustryWellnessEdu:   {"Courses", "Programs", "Resources", "Community"},
}

const maxMenuItems = 7

// MenuNavigation returns the industry's navigation structure as a
// pipe-separated string.
func MenuNavigation(industry domain.IndustryCategory) string {
	middle, ok := menuItems[industry]
	if !ok {
		middle = []string{"Products", "Services", "Resources"}
	}

	items := make([]string, 0, len(middle)+3)
	items = append(items, "Home")
	items = append(items, middle...)
	items = append(items, "About", "Contact")
	if len(items) > maxMenuItems {
		items = items[:maxMenuItems]
	}
	return strings.Join(items, " | ")
}

// BrandName derives a presentable brand name from the domain label:
// separators and digits become spaces, each remaining word of more than two
// characters is capitalized.
func BrandName(record domain.RawDomainRecord) string {
	label := record.Label()
	cleaned := strings.Map(func(r rune) rune {
		if r == '-' || r == '_' || unicode.IsDigit(r) {
			return ' '
		}
		return r
	}, label)

	words := strings.Fields(cleaned)
	var brand string
	switch len(words) {
	case 0:
		brand = ""
	case 1:
		brand = capitalize(words[0])
	default:
		kept := make([]string, 0, len(words))
		for _, w := range words {
			if len(w) > 2 {
				kept = append(kept, capitalize(w))
			}
		}
		brand = strings.Join(kept, " ")
	}

	if len(brand) < 3 {
		brand = capitalize(label)
	}
	return brand
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
