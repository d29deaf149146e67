// Package curation orchestrates the scoring and selection pipeline:
// raw records -> classifier -> normalizer -> scoring engine -> selection.
// Data flows one way; no stage feeds back into an earlier one.
package curation

import (
	"context"
	"strings"
	"time"

	"curator/core/domain"
	"curator/core/port/in"
	"curator/core/port/out"
	"curator/core/service/classification"
	"curator/core/service/scoring"
	"curator/core/service/selection"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Config holds the pre-scoring business filters. Both lists are matched
// case-insensitively; empty lists disable the filter.
type Config struct {
	ExcludedTLDs     []string // e.g. ".org"
	ExcludedKeywords []string // substrings of the domain label
}

// Deps holds the collaborators for creating a Service.
type Deps struct {
	Source     out.AuctionSource
	Exclusions out.ExclusionSource
	Writer     out.ResultWriter
}

// Service implements in.CurationService.
type Service struct {
	classifier *classification.IndustryClassifier
	normalizer *scoring.MetricNormalizer
	engine     *scoring.ScoringEngine
	selector   *selection.SelectionEngine

	deps Deps
	cfg  Config
	now  time.Time
	log  zerolog.Logger
}

var _ in.CurationService = (*Service)(nil)

// NewService creates the curation service. The run date anchors age
// derivation for the whole run so repeated scoring stays bit-identical.
func NewService(deps Deps, cfg Config, now time.Time, log zerolog.Logger) *Service {
	return &Service{
		classifier: classification.NewIndustryClassifier(),
		normalizer: scoring.NewMetricNormalizer(now),
		engine:     scoring.NewScoringEngine(now),
		selector:   selection.NewSelectionEngine(),
		deps:       deps,
		cfg:        cfg,
		now:        now,
		log:        log.With().Str("component", "curation").Logger(),
	}
}

// ClassifyAndScore applies the classifier, normalizer and scoring engine to
// every record, in input order. Batch statistics are computed over the whole
// pool first, so streaming/incremental scoring is deliberately not supported.
func (s *Service) ClassifyAndScore(batch []domain.RawDomainRecord) []domain.ScoredDomainRecord {
	if len(batch) == 0 {
		return nil
	}

	stats := scoring.ComputeBatchStats(batch, s.now)
	scored := make([]domain.ScoredDomainRecord, 0, len(batch))
	for _, record := range batch {
		industry := s.classifier.Classify(record)
		sub := s.normalizer.Normalize(record, stats)
		result := s.engine.Score(record, industry, sub)

		if result.BrandName == "" {
			result.BrandName = BrandName(record)
		}
		if result.MenuNavigation == "" {
			result.MenuNavigation = MenuNavigation(industry)
		}
		scored = append(scored, result)
	}
	return scored
}

// Select applies the ratio-constrained selection to an already scored pool.
func (s *Service) Select(scored []domain.ScoredDomainRecord, params domain.SelectionParams) []domain.ScoredDomainRecord {
	return s.selector.Select(scored, params)
}

// Curate runs the whole pipeline: load -> filter -> score -> select -> write.
func (s *Service) Curate(ctx context.Context, req in.CurateRequest) (*in.CurateSummary, error) {
	runID := uuid.NewString()
	log := s.log.With().Str("run_id", runID).Logger()
	started := time.Now()

	exclusionNames, err := s.deps.Exclusions.LoadExclusions(ctx, req.ExcludeFile)
	if err != nil {
		return nil, err
	}
	exclusions := domain.NewExclusionSet(exclusionNames)
	if len(exclusions) > 0 {
		log.Info().Int("count", len(exclusions)).Str("file", req.ExcludeFile).Msg("loaded exclusion set")
	}

	records, report, err := s.deps.Source.LoadFolder(ctx, req.InputDir)
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("files", report.Files).
		Int("rows", report.RowsLoaded).
		Int("skipped", report.RowsSkipped).
		Msg("auction data loaded")

	kept, filtered := s.applyBusinessFilters(records)
	if filtered > 0 {
		log.Info().Int("dropped", filtered).Msg("business filters applied")
	}

	stats := scoring.ComputeBatchStats(kept, s.now)
	scored := s.ClassifyAndScore(kept)

	excluded := 0
	for _, r := range scored {
		if exclusions.Contains(r.Domain) {
			excluded++
		}
	}

	selected := s.selector.Select(scored, domain.SelectionParams{
		TargetCount:    req.TargetCount,
		ITRatioPercent: req.ITRatioPercent,
		Exclusions:     exclusions,
	})
	log.Info().
		Int("pool", len(scored)).
		Int("excluded", excluded).
		Int("selected", len(selected)).
		Dur("elapsed", time.Since(started)).
		Msg("selection complete")

	if req.OutputFile != "" {
		if err := s.deps.Writer.Write(ctx, req.OutputFile, selected); err != nil {
			return nil, err
		}
		log.Info().Str("file", req.OutputFile).Int("rows", len(selected)).Msg("results written")
	}

	return &in.CurateSummary{
		RunID:        runID,
		FilesRead:    report.Files,
		RowsLoaded:   report.RowsLoaded,
		RowsSkipped:  report.RowsSkipped,
		RowsFiltered: filtered,
		RowsExcluded: excluded,
		Stats:        stats,
		Selected:     selected,
	}, nil
}

// applyBusinessFilters drops records whose TLD or label matches the
// configured exclusion lists.
func (s *Service) applyBusinessFilters(records []domain.RawDomainRecord) ([]domain.RawDomainRecord, int) {
	if len(s.cfg.ExcludedTLDs) == 0 && len(s.cfg.ExcludedKeywords) == 0 {
		return records, 0
	}

	kept := make([]domain.RawDomainRecord, 0, len(records))
	dropped := 0
	for _, r := range records {
		if s.dropRecord(r) {
			dropped++
			continue
		}
		kept = append(kept, r)
	}
	return kept, dropped
}

func (s *Service) dropRecord(r domain.RawDomainRecord) bool {
	tld := r.TLD()
	for _, excluded := range s.cfg.ExcludedTLDs {
		if tld == strings.ToLower(strings.TrimSpace(excluded)) {
			return true
		}
	}
	label := r.Label()
	for _, kw := range s.cfg.ExcludedKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(label, kw) {
			return true
		}
	}
	return false
}
