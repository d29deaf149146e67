package scoring

import (
	"math"
	"time"

	"curator/core/domain"
)

// =============================================================================
// Scoring Engine
// =============================================================================

// Weights for the composite score. They sum to 1.00 before bonuses.
const (
	WeightIndustry = 0.25
	WeightAge      = 0.20
	WeightSEO      = 0.20
	WeightBacklink = 0.20
	WeightTraffic  = 0.15
)

// Bonus and penalty terms, applied in points after the weighted sum.
const (
	// OtherIndustryRelevance is the industry sub-score for unmatched records.
	// Classification confidence is binary: any named category scores 1.0.
	OtherIndustryRelevance = 0.30

	// ComTLDBonus rewards .com, the most liquid TLD on the secondary market.
	ComTLDBonus = 5.0

	// HealthyTFCFRatio is the minimum TF/CF ratio considered a natural link
	// profile; below it the record takes ProfileHealthPenalty.
	HealthyTFCFRatio = 0.70

	// ProfileHealthPenalty is subtracted when CF dwarfs TF (spammy profile).
	ProfileHealthPenalty = 5.0
)

// Investment comment bands, highest first.
const (
	CommentStrongBuy   = "Strong buy"
	CommentGoodValue   = "Good value"
	CommentSpeculative = "Speculative"
	CommentLowQuality  = "Low quality"
)

// ScoringEngine combines classifier output and normalized sub-scores into a
// composite 0-100 score plus an investment comment.
type ScoringEngine struct {
	now time.Time
}

// NewScoringEngine creates an engine anchored at the run's current date.
func NewScoringEngine(now time.Time) *ScoringEngine {
	return &ScoringEngine{now: now}
}

// Score produces the scored record for one raw record. Pure function of its
// inputs; the raw record is copied, never mutated.
func (e *ScoringEngine) Score(record domain.RawDomainRecord, industry domain.IndustryCategory, sub SubScores) domain.ScoredDomainRecord {
	relevance := 1.0
	if industry == domain.IndustryOther {
		relevance = OtherIndustryRelevance
	}

	weighted := WeightIndustry*relevance +
		WeightAge*sub.Age +
		WeightSEO*sub.SEO +
		WeightBacklink*sub.Backlink +
		WeightTraffic*sub.Traffic

	points := weighted * 100

	if record.TLD() == ".com" {
		points += ComTLDBonus
	}
	if unhealthyProfile(record) {
		points -= ProfileHealthPenalty
	}

	score := int(math.Round(points))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return domain.ScoredDomainRecord{
		RawDomainRecord: record,
		Industry:        industry,
		AgeYears:        record.AgeYearsAt(e.now),
		CompositeScore:  score,
		Comment:         InvestmentComment(score),
	}
}

// unhealthyProfile reports whether Citation Flow dwarfs Trust Flow, the usual
// signature of bought or automated backlinks.
func unhealthyProfile(record domain.RawDomainRecord) bool {
	if record.CitationFlow <= 0 {
		return false
	}
	ratio := float64(record.TrustFlow) / float64(record.CitationFlow)
	return ratio < HealthyTFCFRatio
}

// InvestmentComment maps a composite score onto the fixed comment bands.
func InvestmentComment(score int) string {
	switch {
	case score >= 80:
		return CommentStrongBuy
	case score >= 60:
		return CommentGoodValue
	case score >= 40:
		return CommentSpeculative
	default:
		return CommentLowQuality
	}
}
