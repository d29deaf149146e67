// Package in declares the use-case interfaces consumed by the CLI adapter.
package in

import (
	"context"

	"curator/core/domain"
	"curator/core/service/scoring"
)

// CurateRequest carries one run's parameters from the CLI layer.
type CurateRequest struct {
	InputDir       string
	ExcludeFile    string // optional prior-output CSV; "" skips exclusion
	OutputFile     string
	TargetCount    int
	ITRatioPercent int
}

// CurateSummary reports what a run did, for the CLI report.
type CurateSummary struct {
	RunID string

	FilesRead    int
	RowsLoaded   int
	RowsSkipped  int // malformed rows dropped by the reader
	RowsFiltered int // dropped by TLD/keyword business filters
	RowsExcluded int // dropped by the exclusion set

	Stats    scoring.BatchStats
	Selected []domain.ScoredDomainRecord
}

// CurationService is the core's entry point: score a raw pool, select the
// final subset, or run the whole pipeline end to end.
type CurationService interface {
	// ClassifyAndScore applies classification, normalization and scoring to
	// every record. Order-preserving; re-runs on the same pool are
	// bit-identical.
	ClassifyAndScore(batch []domain.RawDomainRecord) []domain.ScoredDomainRecord

	// Select applies the ratio-constrained selection to a scored pool.
	Select(scored []domain.ScoredDomainRecord, params domain.SelectionParams) []domain.ScoredDomainRecord

	// Curate runs load -> filter -> score -> select -> write.
	Curate(ctx context.Context, req CurateRequest) (*CurateSummary, error)
}
