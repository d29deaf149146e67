// Package domain holds the record types shared by the curation core.
package domain

import (
	"strings"
	"time"
)

// IndustryCategory represents the industry bucket assigned to a domain.
type IndustryCategory string

const (
	IndustryITSoftware    IndustryCategory = "IT / Software"
	IndustryManufacturing IndustryCategory = "Manufacturing"
	IndustryHealthcare    IndustryCategory = "Healthcare"
	IndustryEngineering   IndustryCategory = "Engineering"
	IndustryHRRecruitment IndustryCategory = "HR / Recruitment"
	IndustryAnalytics     IndustryCategory = "Analytics"
	IndustryCybersecurity IndustryCategory = "Cybersecurity"
	IndustryWellnessEdu   IndustryCategory = "Wellness / Education Tech"

	// IndustryOther is the fallback when no keyword table matches.
	IndustryOther IndustryCategory = "Other"
)

// RawDomainRecord is a single auction row as produced by the CSV adapters.
// Missing numeric fields are zero; a zero RegistrationDate means unknown.
type RawDomainRecord struct {
	Domain           string    `json:"domain"`
	BrandName        string    `json:"brand_name,omitempty"`
	RegistrationDate time.Time `json:"registration_date,omitempty"`
	Price            float64   `json:"price"`
	TrustFlow        int       `json:"trust_flow"`
	CitationFlow     int       `json:"citation_flow"`
	Backlinks        int       `json:"backlinks"`
	Traffic          int       `json:"traffic"`
	MenuNavigation   string    `json:"menu_navigation,omitempty"`
}

// Label returns the lowercased domain name with its TLD stripped.
// "CloudPeak.com" -> "cloudpeak".
func (r RawDomainRecord) Label() string {
	name := strings.ToLower(strings.TrimSpace(r.Domain))
	if i := strings.LastIndex(name, "."); i > 0 {
		return name[:i]
	}
	return name
}

// TLD returns the lowercased trailing label including the dot ("" if none).
func (r RawDomainRecord) TLD() string {
	name := strings.ToLower(strings.TrimSpace(r.Domain))
	if i := strings.LastIndex(name, "."); i > 0 {
		return name[i:]
	}
	return ""
}

// AgeYearsAt returns the whole years between the registration date and now.
// Unknown or future registration dates count as age 0.
func (r RawDomainRecord) AgeYearsAt(now time.Time) int {
	if r.RegistrationDate.IsZero() || r.RegistrationDate.After(now) {
		return 0
	}
	years := now.Year() - r.RegistrationDate.Year()
	anniversary := r.RegistrationDate.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// ScoredDomainRecord is a raw record after classification and scoring.
type ScoredDomainRecord struct {
	RawDomainRecord

	Industry       IndustryCategory `json:"industry"`
	AgeYears       int              `json:"age_years"`
	CompositeScore int              `json:"composite_score"`
	Comment        string           `json:"comment"`
}

// ExclusionSet is a case-insensitive set of domain names to drop from selection.
type ExclusionSet map[string]struct{}

// NewExclusionSet builds an ExclusionSet from raw domain names.
func NewExclusionSet(names []string) ExclusionSet {
	set := make(ExclusionSet, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

// Contains reports whether the domain name is excluded.
func (s ExclusionSet) Contains(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// SelectionParams are the scalar inputs to the selection engine.
type SelectionParams struct {
	TargetCount    int
	ITRatioPercent int
	Exclusions     ExclusionSet
}
