// Package scoring implements metric normalization and composite scoring.
package scoring

import (
	"time"

	"curator/core/domain"
)

// =============================================================================
// Metric Normalizer
// =============================================================================

// Normalization constants. Fixed caps are used instead of max-in-batch scaling
// so a record's sub-scores do not move when unrelated records join the batch.
const (
	// AgeCapYears saturates the age sub-score: age >= cap scores 1.0.
	AgeCapYears = 25

	// BacklinkHalfSaturation is the backlink count that scores 0.5 on the
	// saturating curve n / (n + k).
	BacklinkHalfSaturation = 500

	// TrafficHalfSaturation is the monthly traffic that scores 0.5.
	TrafficHalfSaturation = 100
)

// SubScores are the normalized per-metric scores, each in [0,1].
type SubScores struct {
	Age      float64
	SEO      float64
	Backlink float64
	Traffic  float64
}

// BatchStats summarizes the raw pool. The normalizer runs on fixed caps, so
// the stats only feed run logging and the report; they are computed over the
// whole pool before scoring starts.
type BatchStats struct {
	Count        int
	MaxAgeYears  int
	MaxBacklinks int
	MaxTraffic   int
}

// ComputeBatchStats scans the pool once for the batch maxima.
func ComputeBatchStats(records []domain.RawDomainRecord, now time.Time) BatchStats {
	stats := BatchStats{Count: len(records)}
	for _, r := range records {
		if age := r.AgeYearsAt(now); age > stats.MaxAgeYears {
			stats.MaxAgeYears = age
		}
		if r.Backlinks > stats.MaxBacklinks {
			stats.MaxBacklinks = r.Backlinks
		}
		if r.Traffic > stats.MaxTraffic {
			stats.MaxTraffic = r.Traffic
		}
	}
	return stats
}

// MetricNormalizer converts raw per-domain metrics into comparable sub-scores.
type MetricNormalizer struct {
	now time.Time
}

// NewMetricNormalizer creates a normalizer anchored at the run's current date.
func NewMetricNormalizer(now time.Time) *MetricNormalizer {
	return &MetricNormalizer{now: now}
}

// Normalize derives the four sub-scores for a single record. Pure function of
// the record and the run date; stats is reserved for cross-batch strategies.
func (n *MetricNormalizer) Normalize(record domain.RawDomainRecord, stats BatchStats) SubScores {
	return SubScores{
		Age:      n.ageScore(record),
		SEO:      seoScore(record),
		Backlink: saturating(record.Backlinks, BacklinkHalfSaturation),
		Traffic:  saturating(record.Traffic, TrafficHalfSaturation),
	}
}

// ageScore is linear in domain age, capped at AgeCapYears. Unknown or future
// registration dates score 0.
func (n *MetricNormalizer) ageScore(record domain.RawDomainRecord) float64 {
	age := record.AgeYearsAt(n.now)
	if age <= 0 {
		return 0
	}
	if age >= AgeCapYears {
		return 1
	}
	return float64(age) / float64(AgeCapYears)
}

// seoScore averages Trust Flow and Citation Flow, each clamped to [0,100].
func seoScore(record domain.RawDomainRecord) float64 {
	tf := clamp01(float64(record.TrustFlow) / 100)
	cf := clamp01(float64(record.CitationFlow) / 100)
	return (tf + cf) / 2
}

// saturating maps a non-negative count onto [0,1) with diminishing returns:
// 0 at zero, 0.5 at the half-saturation point, asymptotic toward 1.
func saturating(count, half int) float64 {
	if count <= 0 {
		return 0
	}
	return float64(count) / float64(count+half)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
