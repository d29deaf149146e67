package classification

import (
	"testing"

	"curator/core/domain"
)

// TestIndustryClassifier tests keyword-to-category fixtures for every category.
func TestIndustryClassifier(t *testing.T) {
	classifier := NewIndustryClassifier()

	tests := []struct {
		name         string
		domainName   string
		wantIndustry domain.IndustryCategory
	}{
		{"cloud keyword", "cloudpeak.com", domain.IndustryITSoftware},
		{"saas keyword", "bestsaastools.io", domain.IndustryITSoftware},
		{"api keyword", "rapidapi.net", domain.IndustryITSoftware},
		{"factory keyword", "steelfactory.com", domain.IndustryManufacturing},
		{"automation keyword", "flowautomation.com", domain.IndustryManufacturing},
		{"clinic keyword", "cityclinic.com", domain.IndustryHealthcare},
		{"pharma keyword", "pharmaplus.com", domain.IndustryHealthcare},
		{"structural keyword", "structuralworks.com", domain.IndustryEngineering},
		{"recruit keyword", "recruitwise.com", domain.IndustryHRRecruitment},
		{"talent keyword", "talentforge.com", domain.IndustryHRRecruitment},
		{"insight keyword", "marketinsight.org", domain.IndustryAnalytics},
		{"firewall keyword", "firewallpro.com", domain.IndustryCybersecurity},
		{"shield keyword", "ironshield.com", domain.IndustryCybersecurity},
		{"learn keyword", "learnhub.com", domain.IndustryWellnessEdu},
		{"yoga keyword", "dailyyoga.com", domain.IndustryWellnessEdu},
		{"no keyword match", "bluewhale.com", domain.IndustryOther},
		{"empty domain", "", domain.IndustryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(domain.RawDomainRecord{Domain: tt.domainName})
			if got != tt.wantIndustry {
				t.Errorf("Classify(%q) = %v, want %v", tt.domainName, got, tt.wantIndustry)
			}
		})
	}
}

// TestIndustryClassifierPriorityOrder tests that earlier categories win when
// keywords from several categories appear in one name.
func TestIndustryClassifierPriorityOrder(t *testing.T) {
	classifier := NewIndustryClassifier()

	tests := []struct {
		name         string
		domainName   string
		wantIndustry domain.IndustryCategory
	}{
		// "cyber" (IT) beats "secure" (Cybersecurity).
		{"cyber before security", "cybersecure.com", domain.IndustryITSoftware},
		// "wellness" appears in Healthcare before Wellness / Education Tech.
		{"wellness resolves to healthcare", "purewellness.com", domain.IndustryHealthcare},
		// "dev" (IT) beats "design" (Engineering).
		{"dev before design", "devdesign.com", domain.IndustryITSoftware},
		// "health" (Healthcare) loses to "app" (IT) only via priority, not position.
		{"app before health", "healthapp.com", domain.IndustryITSoftware},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(domain.RawDomainRecord{Domain: tt.domainName})
			if got != tt.wantIndustry {
				t.Errorf("Classify(%q) = %v, want %v", tt.domainName, got, tt.wantIndustry)
			}
		})
	}
}

// TestIndustryClassifierDeterminism tests that repeated calls agree.
func TestIndustryClassifierDeterminism(t *testing.T) {
	classifier := NewIndustryClassifier()

	names := []string{
		"cloudpeak.com", "steelfactory.com", "bluewhale.com",
		"TALENTFORGE.COM", "DailyYoga.net", "cybersecure.io",
	}

	for _, name := range names {
		record := domain.RawDomainRecord{Domain: name}
		first := classifier.Classify(record)
		for i := 0; i < 5; i++ {
			if got := classifier.Classify(record); got != first {
				t.Errorf("Classify(%q) unstable: %v then %v", name, first, got)
			}
		}
	}
}

// TestIndustryClassifierCaseInsensitive tests mixed-case input.
func TestIndustryClassifierCaseInsensitive(t *testing.T) {
	classifier := NewIndustryClassifier()

	upper := classifier.Classify(domain.RawDomainRecord{Domain: "CLOUDPEAK.COM"})
	lower := classifier.Classify(domain.RawDomainRecord{Domain: "cloudpeak.com"})

	if upper != lower || upper != domain.IndustryITSoftware {
		t.Errorf("case sensitivity: upper=%v lower=%v, want both %v", upper, lower, domain.IndustryITSoftware)
	}
}
