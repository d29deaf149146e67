// Package selection implements the ratio-constrained selection engine.
package selection

import (
	"math"
	"sort"
	"strings"

	"curator/core/domain"
)

// =============================================================================
// Selection Engine
// =============================================================================

// SelectionEngine picks a fixed-size, ratio-constrained subset of the scored
// pool. It only filters and reorders; records are never mutated.
type SelectionEngine struct{}

// NewSelectionEngine creates a selection engine.
func NewSelectionEngine() *SelectionEngine {
	return &SelectionEngine{}
}

// Select returns at most params.TargetCount records, biased toward the
// IT / Software bucket per the ratio, back-filled across buckets when one
// runs short, and finally ordered by descending composite score.
func (e *SelectionEngine) Select(pool []domain.ScoredDomainRecord, params domain.SelectionParams) []domain.ScoredDomainRecord {
	target := params.TargetCount
	if target <= 0 || len(pool) == 0 {
		return nil
	}

	ratio := params.ITRatioPercent
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 100 {
		ratio = 100
	}

	var itBucket, otherBucket []domain.ScoredDomainRecord
	for _, r := range pool {
		if params.Exclusions.Contains(r.Domain) {
			continue
		}
		if r.Industry == domain.IndustryITSoftware {
			itBucket = append(itBucket, r)
		} else {
			otherBucket = append(otherBucket, r)
		}
	}

	sortByQuality(itBucket)
	sortByQuality(otherBucket)

	itQuota := int(math.Round(float64(target) * float64(ratio) / 100))
	otherQuota := target - itQuota

	itTaken := min(itQuota, len(itBucket))
	otherTaken := min(otherQuota, len(otherBucket))

	selected := make([]domain.ScoredDomainRecord, 0, target)
	selected = append(selected, itBucket[:itTaken]...)
	selected = append(selected, otherBucket[:otherTaken]...)

	// Back-fill a short bucket from the other bucket's remainder,
	// highest score first. A short combined pool is not an error.
	if shortfall := target - len(selected); shortfall > 0 {
		remainder := append(append([]domain.ScoredDomainRecord{}, itBucket[itTaken:]...), otherBucket[otherTaken:]...)
		sortByQuality(remainder)
		if shortfall > len(remainder) {
			shortfall = len(remainder)
		}
		selected = append(selected, remainder[:shortfall]...)
	}

	// Ratio partitioning decides membership only; the output is ordered by
	// quality so higher-scored domains always appear first.
	sortByQuality(selected)
	return selected
}

// sortByQuality orders records by composite score descending, ties broken by
// domain age descending, then by domain name ascending.
func sortByQuality(records []domain.ScoredDomainRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].CompositeScore != records[j].CompositeScore {
			return records[i].CompositeScore > records[j].CompositeScore
		}
		if records[i].AgeYears != records[j].AgeYears {
			return records[i].AgeYears > records[j].AgeYears
		}
		return strings.ToLower(records[i].Domain) < strings.ToLower(records[j].Domain)
	})
}
