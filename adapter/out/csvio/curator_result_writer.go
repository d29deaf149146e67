package csvio

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"curator/core/domain"
	"curator/core/port/out"
	"curator/pkg/apperr"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// =============================================================================
// Result Writer
// =============================================================================

// outputColumns is the documented output shape, in order.
var outputColumns = []string{
	"Suggested Brand Name Based On Domain",
	"Domain Name",
	"Domain Register Date",
	"Industry",
	"Menu Navigation",
	"Price",
	"Domain Age",
	"Majestic TF",
	"Majestic CF",
	"Traffic",
	"Combined Score",
	"Comment",
}

// ResultWriter serializes the final record list. The file extension picks the
// format: .json writes a JSON array, anything else writes CSV.
type ResultWriter struct {
	log zerolog.Logger
}

var _ out.ResultWriter = (*ResultWriter)(nil)

// NewResultWriter creates a result writer.
func NewResultWriter(log zerolog.Logger) *ResultWriter {
	return &ResultWriter{log: log.With().Str("component", "result_writer").Logger()}
}

// Write serializes records to path.
func (w *ResultWriter) Write(ctx context.Context, path string, records []domain.ScoredDomainRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return apperr.Write("cannot create output file").WithError(err).WithDetail("file", path)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return apperr.Write("cannot encode JSON output").WithError(err).WithDetail("file", path)
		}
		return nil
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(outputColumns); err != nil {
		return apperr.Write("cannot write CSV header").WithError(err).WithDetail("file", path)
	}
	for _, r := range records {
		if err := cw.Write(outputRow(r)); err != nil {
			return apperr.Write("cannot write CSV row").WithError(err).WithDetail("file", path)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return apperr.Write("cannot flush CSV output").WithError(err).WithDetail("file", path)
	}
	return nil
}

func outputRow(r domain.ScoredDomainRecord) []string {
	regDate := ""
	if !r.RegistrationDate.IsZero() {
		regDate = r.RegistrationDate.Format("2006-01-02")
	}
	return []string{
		r.BrandName,
		r.Domain,
		regDate,
		string(r.Industry),
		r.MenuNavigation,
		fmt.Sprintf("$%.2f", r.Price),
		strconv.Itoa(r.AgeYears),
		strconv.Itoa(r.TrustFlow),
		strconv.Itoa(r.CitationFlow),
		strconv.Itoa(r.Traffic),
		strconv.Itoa(r.CompositeScore),
		r.Comment,
	}
}
