package csvio

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"curator/core/domain"

	"github.com/rs/zerolog"
)

var testNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// TestLoadFolder tests header mapping, row parsing and backlink summing.
func TestLoadFolder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "batch1.csv",
		"Domain Name,Price,Domain Age,Majestic TF,Majestic CF,Traffic,Backlinks,Referring Domains\n"+
			"cloudpeak.com,1250.50,12,22,30,45,300,80\n"+
			"bluewhale.net,,,,,,,\n")

	reader := NewAuctionReader(2, testNow, zerolog.Nop())
	records, report, err := reader.LoadFolder(context.Background(), dir)
	if err != nil {
		t.Fatalf("LoadFolder: %v", err)
	}

	if report.Files != 1 || report.RowsLoaded != 2 || report.RowsSkipped != 0 {
		t.Errorf("report = %+v, want 1 file, 2 rows, 0 skipped", report)
	}

	first := records[0]
	if first.Domain != "cloudpeak.com" {
		t.Errorf("domain = %s, want cloudpeak.com", first.Domain)
	}
	if first.Price != 1250.50 {
		t.Errorf("price = %v, want 1250.50", first.Price)
	}
	if first.Backlinks != 380 {
		t.Errorf("backlinks = %d, want 300+80=380", first.Backlinks)
	}
	if first.TrustFlow != 22 || first.CitationFlow != 30 || first.Traffic != 45 {
		t.Errorf("metrics = %d/%d/%d, want 22/30/45", first.TrustFlow, first.CitationFlow, first.Traffic)
	}
	// Age 12 synthesizes a registration date of Jan 1, 2013.
	if got := first.RegistrationDate; got.Year() != 2013 {
		t.Errorf("registration year = %d, want 2013", got.Year())
	}

	// Missing numeric fields default to zero, not an error.
	second := records[1]
	if second.Price != 0 || second.Backlinks != 0 || second.TrustFlow != 0 {
		t.Errorf("missing fields not defaulted: %+v", second)
	}
	if !second.RegistrationDate.IsZero() {
		t.Errorf("registration date = %v, want zero", second.RegistrationDate)
	}
}

// TestLoadFolderSkipsMalformedRows tests that bad rows are counted, not fatal.
func TestLoadFolderSkipsMalformedRows(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "batch.csv",
		"Domain Name,Price,Domain Age,Majestic TF,Majestic CF,Traffic,Backlinks,Referring Domains\n"+
			"good.com,100,5,10,10,0,0,0\n"+
			",100,5,10,10,0,0,0\n"+ // no domain
			"bad.com,not-a-price,5,10,10,0,0,0\n"+ // junk price
			"worse.com,100,-3,10,10,0,0,0\n") // negative age

	reader := NewAuctionReader(1, testNow, zerolog.Nop())
	records, report, err := reader.LoadFolder(context.Background(), dir)
	if err != nil {
		t.Fatalf("LoadFolder: %v", err)
	}

	if len(records) != 1 || records[0].Domain != "good.com" {
		t.Errorf("records = %+v, want only good.com", records)
	}
	if report.RowsSkipped != 3 {
		t.Errorf("skipped = %d, want 3", report.RowsSkipped)
	}
}

// TestLoadFolderDeterministicOrder tests sorted-path flattening across files.
func TestLoadFolderDeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	header := "Domain Name,Price,Domain Age,Majestic TF,Majestic CF,Traffic,Backlinks,Referring Domains\n"
	writeFile(t, dir, "b.csv", header+"from-b.com,0,0,0,0,0,0,0\n")
	writeFile(t, dir, "a.csv", header+"from-a.com,0,0,0,0,0,0,0\n")
	writeFile(t, dir, "c.csv", header+"from-c.com,0,0,0,0,0,0,0\n")

	reader := NewAuctionReader(3, testNow, zerolog.Nop())
	for i := 0; i < 3; i++ {
		records, _, err := reader.LoadFolder(context.Background(), dir)
		if err != nil {
			t.Fatalf("LoadFolder: %v", err)
		}
		want := []string{"from-a.com", "from-b.com", "from-c.com"}
		for j, name := range want {
			if records[j].Domain != name {
				t.Fatalf("run %d: position %d = %s, want %s", i, j, records[j].Domain, name)
			}
		}
	}
}

// TestLoadFolderMissingDir tests the missing-folder error.
func TestLoadFolderMissingDir(t *testing.T) {
	reader := NewAuctionReader(1, testNow, zerolog.Nop())
	if _, _, err := reader.LoadFolder(context.Background(), "/no/such/folder"); err == nil {
		t.Error("expected error for missing folder")
	}
}

// TestLoadExclusions tests exclusion list parsing.
func TestLoadExclusions(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "prior.csv",
		"Suggested Brand Name Based On Domain,Domain Name,Combined Score\n"+
			"Cloudpeak,cloudpeak.com,88\n"+
			"Talentforge,talentforge.com,72\n")

	reader := NewExclusionReader(zerolog.Nop())

	names, err := reader.LoadExclusions(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadExclusions: %v", err)
	}
	if len(names) != 2 || names[0] != "cloudpeak.com" || names[1] != "talentforge.com" {
		t.Errorf("names = %v", names)
	}

	t.Run("empty path", func(t *testing.T) {
		names, err := reader.LoadExclusions(context.Background(), "")
		if err != nil || names != nil {
			t.Errorf("empty path: names=%v err=%v, want nil/nil", names, err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := reader.LoadExclusions(context.Background(), filepath.Join(dir, "nope.csv")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

// TestResultWriter tests the CSV output shape.
func TestResultWriter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	records := []domain.ScoredDomainRecord{
		{
			RawDomainRecord: domain.RawDomainRecord{
				Domain:           "cloudpeak.com",
				BrandName:        "Cloudpeak",
				RegistrationDate: time.Date(2013, 1, 1, 0, 0, 0, 0, time.UTC),
				Price:            1250.5,
				TrustFlow:        22,
				CitationFlow:     30,
				Traffic:          45,
				MenuNavigation:   "Home | Solutions | About | Contact",
			},
			Industry:       domain.IndustryITSoftware,
			AgeYears:       12,
			CompositeScore: 81,
			Comment:        "Strong buy",
		},
	}

	writer := NewResultWriter(zerolog.Nop())
	if err := writer.Write(context.Background(), path, records); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(rows))
	}
	for i, want := range outputColumns {
		if rows[0][i] != want {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], want)
		}
	}

	got := rows[1]
	wantRow := []string{
		"Cloudpeak", "cloudpeak.com", "2013-01-01", "IT / Software",
		"Home | Solutions | About | Contact", "$1250.50", "12", "22", "30", "45", "81", "Strong buy",
	}
	for i := range wantRow {
		if got[i] != wantRow[i] {
			t.Errorf("row[%d] = %q, want %q", i, got[i], wantRow[i])
		}
	}
}

// TestResultWriterJSON tests the JSON export path.
func TestResultWriterJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	records := []domain.ScoredDomainRecord{
		{
			RawDomainRecord: domain.RawDomainRecord{Domain: "cloudpeak.com"},
			Industry:        domain.IndustryITSoftware,
			CompositeScore:  81,
			Comment:         "Strong buy",
		},
	}

	writer := NewResultWriter(zerolog.Nop())
	if err := writer.Write(context.Background(), path, records); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	for _, want := range []string{`"cloudpeak.com"`, `"IT / Software"`, `"composite_score": 81`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("JSON output missing %s:\n%s", want, data)
		}
	}
}
