package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"curator/core/domain"
	"curator/core/port/in"
)

// =============================================================================
// Results Report
// =============================================================================

// topPerIndustry caps how many rows each industry section prints.
const topPerIndustry = 10

// Reporter renders the run summary and a per-industry breakdown of the
// selected portfolio.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a reporter writing to the given stream.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{out: w}
}

// Render prints the full report for a completed run.
func (r *Reporter) Render(summary in.CurateSummary) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "=== Selection Report ===")
	fmt.Fprintf(r.out, "Run %s: %d files, %d rows loaded, %d skipped, %d filtered, %d excluded\n",
		summary.RunID, summary.FilesRead, summary.RowsLoaded, summary.RowsSkipped,
		summary.RowsFiltered, summary.RowsExcluded)

	if len(summary.Selected) == 0 {
		fmt.Fprintln(r.out, "No domains selected.")
		return
	}

	r.renderSummary(summary.Selected)
	r.renderBreakdown(summary.Selected)
}

func (r *Reporter) renderSummary(selected []domain.ScoredDomainRecord) {
	var (
		itCount int
		total   int
		lowest  = selected[0].CompositeScore
		highest = selected[0].CompositeScore
	)
	for _, rec := range selected {
		if rec.Industry == domain.IndustryITSoftware {
			itCount++
		}
		total += rec.CompositeScore
		if rec.CompositeScore < lowest {
			lowest = rec.CompositeScore
		}
		if rec.CompositeScore > highest {
			highest = rec.CompositeScore
		}
	}

	n := len(selected)
	fmt.Fprintf(r.out, "Selected: %d domains (%d IT / Software, %.0f%%)\n",
		n, itCount, float64(itCount)/float64(n)*100)
	fmt.Fprintf(r.out, "Scores: avg %.1f, range %d-%d\n", float64(total)/float64(n), lowest, highest)
}

func (r *Reporter) renderBreakdown(selected []domain.ScoredDomainRecord) {
	byIndustry := make(map[domain.IndustryCategory][]domain.ScoredDomainRecord)
	for _, rec := range selected {
		byIndustry[rec.Industry] = append(byIndustry[rec.Industry], rec)
	}

	industries := make([]domain.IndustryCategory, 0, len(byIndustry))
	for industry := range byIndustry {
		industries = append(industries, industry)
	}
	sort.Slice(industries, func(i, j int) bool {
		gi, gj := byIndustry[industries[i]], byIndustry[industries[j]]
		if len(gi) != len(gj) {
			return len(gi) > len(gj)
		}
		return industries[i] < industries[j]
	})

	for _, industry := range industries {
		group := byIndustry[industry]
		fmt.Fprintf(r.out, "\n%s (%d)\n", industry, len(group))

		table := tablewriter.NewWriter(r.out)
		table.SetHeader([]string{"Domain", "Age", "TF", "CF", "Score", "Comment"})
		table.SetBorder(false)

		limit := min(len(group), topPerIndustry)
		for _, rec := range group[:limit] {
			table.Append([]string{
				rec.Domain,
				strconv.Itoa(rec.AgeYears),
				strconv.Itoa(rec.TrustFlow),
				strconv.Itoa(rec.CitationFlow),
				strconv.Itoa(rec.CompositeScore),
				rec.Comment,
			})
		}
		table.Render()

		if len(group) > topPerIndustry {
			fmt.Fprintf(r.out, "  ... and %d more\n", len(group)-topPerIndustry)
		}
	}
}
