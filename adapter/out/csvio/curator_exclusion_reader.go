package csvio

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"curator/core/port/out"
	"curator/pkg/apperr"

	"github.com/rs/zerolog"
)

// =============================================================================
// Exclusion Reader
// =============================================================================

// ExclusionReader loads domain names from a prior output CSV.
type ExclusionReader struct {
	log zerolog.Logger
}

var _ out.ExclusionSource = (*ExclusionReader)(nil)

// NewExclusionReader creates an exclusion reader.
func NewExclusionReader(log zerolog.Logger) *ExclusionReader {
	return &ExclusionReader{log: log.With().Str("component", "exclusion_reader").Logger()}
}

// LoadExclusions returns the Domain Name column of path. An empty path yields
// no exclusions.
func (r *ExclusionReader) LoadExclusions(ctx context.Context, path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.NotFound("exclusion file not found").WithError(err).WithDetail("file", path)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, apperr.Parse("cannot read exclusion header").WithError(err).WithDetail("file", path)
	}

	cols := columnIndex(header)
	idx, ok := cols["domain name"]
	if !ok {
		return nil, apperr.Parse("missing Domain Name column").WithDetail("file", path)
	}

	var names []string
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if idx < len(row) {
			if name := strings.TrimSpace(row[idx]); name != "" {
				names = append(names, name)
			}
		}
	}
	r.log.Debug().Str("file", path).Int("count", len(names)).Msg("exclusions loaded")
	return names, nil
}
