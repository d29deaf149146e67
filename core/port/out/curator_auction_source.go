// Package out declares the data source/sink interfaces implemented by the
// I/O adapters.
package out

import (
	"context"

	"curator/core/domain"
)

// LoadReport describes one folder ingestion pass.
type LoadReport struct {
	Files       int
	RowsLoaded  int
	RowsSkipped int // structurally malformed rows, dropped before the core
}

// AuctionSource loads raw auction records from an input location.
type AuctionSource interface {
	// LoadFolder reads every CSV file under dir. Malformed rows are skipped
	// and counted, never surfaced as errors.
	LoadFolder(ctx context.Context, dir string) ([]domain.RawDomainRecord, *LoadReport, error)
}

// ExclusionSource loads domain names to exclude, typically a prior run's
// output file.
type ExclusionSource interface {
	// LoadExclusions returns the domain names found in path. An empty path
	// yields an empty set.
	LoadExclusions(ctx context.Context, path string) ([]string, error)
}

// ResultWriter serializes the final ordered record list.
type ResultWriter interface {
	Write(ctx context.Context, path string, records []domain.ScoredDomainRecord) error
}
