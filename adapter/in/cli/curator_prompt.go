// Package cli implements the interactive prompt flow and the results report.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"curator/config"
	"curator/core/port/in"
)

// =============================================================================
// Interactive Prompt Flow
// =============================================================================

// Prompter collects run parameters interactively. Reader and writer are
// injected so the flow is testable without a TTY.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter over the given streams.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: w}
}

// Run walks the prompt sequence and returns a complete request. Defaults come
// from configuration; invalid numeric input re-prompts.
func (p *Prompter) Run(cfg *config.Config) (in.CurateRequest, error) {
	fmt.Fprintln(p.out, "Domain Auction Curator")
	fmt.Fprintln(p.out, "----------------------")

	inputDir, err := p.askString(fmt.Sprintf("Input folder path (default: %s): ", cfg.InputDir), cfg.InputDir)
	if err != nil {
		return in.CurateRequest{}, err
	}

	count, err := p.askPositiveInt(fmt.Sprintf("How many domains to select? (default: %d): ", cfg.TargetCount), cfg.TargetCount)
	if err != nil {
		return in.CurateRequest{}, err
	}

	ratio, err := p.askRatio(fmt.Sprintf("IT / Software percentage 0-100 (default: %d): ", cfg.ITRatioPercent), cfg.ITRatioPercent)
	if err != nil {
		return in.CurateRequest{}, err
	}

	excludeFile, err := p.askString("Exclude domains from file (press Enter to skip): ", cfg.ExcludeFile)
	if err != nil {
		return in.CurateRequest{}, err
	}
	if excludeFile != "" {
		if _, statErr := os.Stat(excludeFile); statErr != nil {
			fmt.Fprintf(p.out, "  Warning: file %q not found, continuing without exclusions.\n", excludeFile)
			excludeFile = ""
		}
	}

	defaultOutput := cfg.OutputFile
	if defaultOutput == "" {
		defaultOutput = fmt.Sprintf("filtered_domains_%d.csv", count)
	}
	outputFile, err := p.askString(fmt.Sprintf("Output filename (default: %s): ", defaultOutput), defaultOutput)
	if err != nil {
		return in.CurateRequest{}, err
	}
	outputFile = normalizeOutputName(outputFile)

	return in.CurateRequest{
		InputDir:       inputDir,
		ExcludeFile:    excludeFile,
		OutputFile:     outputFile,
		TargetCount:    count,
		ITRatioPercent: ratio,
	}, nil
}

func (p *Prompter) askString(prompt, defaultValue string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue, nil
	}
	return line, nil
}

func (p *Prompter) askPositiveInt(prompt string, defaultValue int) (int, error) {
	for {
		raw, err := p.askString(prompt, strconv.Itoa(defaultValue))
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			fmt.Fprintln(p.out, "  Please enter a positive number.")
			continue
		}
		return v, nil
	}
}

func (p *Prompter) askRatio(prompt string, defaultValue int) (int, error) {
	for {
		raw, err := p.askString(prompt, strconv.Itoa(defaultValue))
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 || v > 100 {
			fmt.Fprintln(p.out, "  Please enter a value between 0 and 100.")
			continue
		}
		return v, nil
	}
}

// normalizeOutputName appends .csv to bare filenames; .json is kept as-is to
// select the JSON writer.
func normalizeOutputName(name string) string {
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, ".csv") || strings.HasSuffix(lower, ".json") {
		return name
	}
	return name + ".csv"
}
