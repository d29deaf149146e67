// Package classification implements the keyword-based industry classifier.
//
// Classification is an ordered decision table: categories are evaluated in a
// fixed priority order and the first category with a keyword hit wins, so the
// same domain name always maps to the same category.
package classification

import (
	"strings"

	"curator/core/domain"
)

// =============================================================================
// Industry Classifier
// =============================================================================

// IndustryClassifier maps a domain's lexical content to one industry category.
type IndustryClassifier struct {
	table []industryKeywords
}

type industryKeywords struct {
	industry domain.IndustryCategory
	keywords []string
}

// NewIndustryClassifier creates a classifier with the built-in keyword tables.
func NewIndustryClassifier() *IndustryClassifier {
	c := &IndustryClassifier{}
	c.initTable()
	return c
}

// Name returns the classifier name (for logging).
func (c *IndustryClassifier) Name() string {
	return "industry"
}

// Classify assigns exactly one category to the record. Matching is
// case-insensitive substring containment against the domain label with the
// TLD stripped; no keyword hit yields IndustryOther.
func (c *IndustryClassifier) Classify(record domain.RawDomainRecord) domain.IndustryCategory {
	label := record.Label()
	if label == "" {
		return domain.IndustryOther
	}

	for _, entry := range c.table {
		for _, kw := range entry.keywords {
			if strings.Contains(label, kw) {
				return entry.industry
			}
		}
	}
	return domain.IndustryOther
}

// initTable builds the ordered keyword table. Order is the evaluation
// priority; earlier categories win ties.
func (c *IndustryClassifier) initTable() {
	c.table = []industryKeywords{
		{
			industry: domain.IndustryITSoftware,
			keywords: []string{
				"tech", "software", "digital", "cloud", "web", "system", "dev",
				"app", "platform", "code", "api", "saas", "solution", "cyber",
				"data", "net", "host", "server", "online", "site", "media",
			},
		},
		{
			industry: domain.IndustryManufacturing,
			keywords: []string{
				"manufacture", "factory", "production", "industrial", "machinery",
				"assembly", "plant", "fabrication", "automation",
			},
		},
		{
			industry: domain.IndustryHealthcare,
			keywords: []string{
				"health", "care", "medical", "clinic", "pharma", "bio", "med",
				"hospital", "therapy", "wellness", "diagnostic", "patient", "doctor",
			},
		},
		{
			industry: domain.IndustryEngineering,
			keywords: []string{
				"engineer", "mechanical", "civil", "design", "rd", "cad",
				"construction", "structural", "technical", "consult", "architect",
			},
		},
		{
			industry: domain.IndustryHRRecruitment,
			keywords: []string{
				"hr", "job", "recruit", "talent", "staff", "career", "hire",
				"employment", "workforce", "personnel", "resume",
			},
		},
		{
			industry: domain.IndustryAnalytics,
			keywords: []string{
				"analytics", "insight", "metrics", "intelligence",
				"dashboard", "report", "visualization", "ml", "algorithm",
			},
		},
		{
			industry: domain.IndustryCybersecurity,
			keywords: []string{
				"secure", "shield", "protect", "defense", "security",
				"firewall", "encryption", "audit", "compliance", "risk",
			},
		},
		{
			industry: domain.IndustryWellnessEdu,
			keywords: []string{
				"wellness", "edu", "learn", "school", "fitness", "training",
				"course", "academy", "teaching", "student", "nutrition", "yoga",
			},
		},
	}
}
