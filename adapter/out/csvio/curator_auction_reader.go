// Package csvio implements the CSV adapters around the curation core:
// auction export ingestion, exclusion lists and result serialization.
package csvio

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"curator/core/domain"
	"curator/core/port/out"
	"curator/pkg/apperr"

	"github.com/go-pkgz/pool"
	"github.com/rs/zerolog"
)

// =============================================================================
// Auction Reader
// =============================================================================

// AuctionReader loads GoDaddy-style auction exports from a folder. Files are
// parsed concurrently; per-file results are flattened in sorted path order so
// ingestion stays deterministic regardless of worker scheduling.
type AuctionReader struct {
	workers int
	now     time.Time
	log     zerolog.Logger
}

var _ out.AuctionSource = (*AuctionReader)(nil)

// NewAuctionReader creates a reader with the given parse concurrency.
func NewAuctionReader(workers int, now time.Time, log zerolog.Logger) *AuctionReader {
	if workers < 1 {
		workers = 1
	}
	return &AuctionReader{
		workers: workers,
		now:     now,
		log:     log.With().Str("component", "auction_reader").Logger(),
	}
}

type fileResult struct {
	records []domain.RawDomainRecord
	skipped int
}

// fileWorker implements pool.Worker for CSV file parsing.
type fileWorker struct {
	reader  *AuctionReader
	mu      sync.Mutex
	results map[string]*fileResult
}

// Do parses one file and stores its result under the file path.
func (w *fileWorker) Do(ctx context.Context, path string) error {
	records, skipped, err := w.reader.parseFile(path)
	if err != nil {
		return err
	}
	w.mu.Lock()
	w.results[path] = &fileResult{records: records, skipped: skipped}
	w.mu.Unlock()
	return nil
}

// LoadFolder reads every *.csv under dir. Malformed rows are skipped and
// counted; a missing folder is an error.
func (r *AuctionReader) LoadFolder(ctx context.Context, dir string) ([]domain.RawDomainRecord, *out.LoadReport, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, apperr.NotFound("input folder not found").WithError(err).WithDetail("dir", dir)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)

	report := &out.LoadReport{Files: len(paths)}
	if len(paths) == 0 {
		return nil, report, nil
	}

	worker := &fileWorker{reader: r, results: make(map[string]*fileResult, len(paths))}
	group := pool.New[string](r.workers, worker).WithContinueOnError()
	if err := group.Go(ctx); err != nil {
		return nil, nil, apperr.Parse("failed to start reader pool").WithError(err)
	}
	for _, p := range paths {
		group.Submit(p)
	}
	if err := group.Close(ctx); err != nil {
		return nil, nil, apperr.Parse("failed to read auction files").WithError(err)
	}

	var records []domain.RawDomainRecord
	for _, p := range paths {
		result, ok := worker.results[p]
		if !ok {
			continue
		}
		records = append(records, result.records...)
		report.RowsSkipped += result.skipped
		r.log.Debug().Str("file", p).Int("rows", len(result.records)).Int("skipped", result.skipped).Msg("file parsed")
	}
	report.RowsLoaded = len(records)
	return records, report, nil
}

// parseFile reads one auction CSV. Rows that fail to parse are skipped.
func (r *AuctionReader) parseFile(path string) ([]domain.RawDomainRecord, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, apperr.Parse("cannot open auction file").WithError(err).WithDetail("file", path)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, 0, nil
		}
		return nil, 0, apperr.Parse("cannot read CSV header").WithError(err).WithDetail("file", path)
	}
	cols := columnIndex(header)
	if _, ok := cols["domain name"]; !ok {
		return nil, 0, apperr.Parse("missing Domain Name column").WithDetail("file", path)
	}

	var records []domain.RawDomainRecord
	skipped := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		record, ok := r.parseRow(cols, row)
		if !ok {
			skipped++
			continue
		}
		records = append(records, record)
	}
	return records, skipped, nil
}

// parseRow converts one CSV row; missing fields default to zero values,
// structurally malformed values reject the row.
func (r *AuctionReader) parseRow(cols map[string]int, row []string) (domain.RawDomainRecord, bool) {
	get := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	domainName := get("domain name")
	if domainName == "" {
		return domain.RawDomainRecord{}, false
	}

	price, ok := parseFloat(get("price"))
	if !ok {
		return domain.RawDomainRecord{}, false
	}
	age, ok := parseInt(get("domain age"))
	if !ok {
		return domain.RawDomainRecord{}, false
	}
	tf, ok := parseInt(get("majestic tf"))
	if !ok {
		return domain.RawDomainRecord{}, false
	}
	cf, ok := parseInt(get("majestic cf"))
	if !ok {
		return domain.RawDomainRecord{}, false
	}
	traffic, ok := parseInt(get("traffic"))
	if !ok {
		return domain.RawDomainRecord{}, false
	}
	backlinks, ok := parseInt(get("backlinks"))
	if !ok {
		return domain.RawDomainRecord{}, false
	}
	referring, ok := parseInt(get("referring domains"))
	if !ok {
		return domain.RawDomainRecord{}, false
	}

	brand := get("suggested brand name based on domain")
	if brand == "" {
		brand = get("brand name")
	}
	menu := get("menu navigation")
	if menu == "" {
		menu = get("menu navigation structure")
	}

	regDate := r.registrationDate(get("domain register date"), get("registration date"), age)

	return domain.RawDomainRecord{
		Domain:           domainName,
		BrandName:        brand,
		RegistrationDate: regDate,
		Price:            price,
		TrustFlow:        tf,
		CitationFlow:     cf,
		Traffic:          traffic,
		Backlinks:        backlinks + referring,
		MenuNavigation:   menu,
	}, true
}

// registrationDate resolves the record's registration date: an explicit date
// column wins; otherwise it is synthesized from the Domain Age column as
// Jan 1 of (current year - age).
func (r *AuctionReader) registrationDate(explicit, alternate string, age int) time.Time {
	for _, raw := range []string{explicit, alternate} {
		if raw == "" {
			continue
		}
		for _, layout := range []string{"2006-01-02", "1/2/2006", "2006"} {
			if t, err := time.Parse(layout, raw); err == nil {
				return t
			}
		}
	}
	if age > 0 {
		return time.Date(r.now.Year()-age, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Time{}
}

// columnIndex maps normalized header names to their positions.
func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

func parseInt(s string) (int, bool) {
	if s == "" {
		return 0, true
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func parseFloat(s string) (float64, bool) {
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(strings.TrimPrefix(s, "$"), 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
