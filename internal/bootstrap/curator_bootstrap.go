// Package bootstrap wires the adapters and services into a runnable app.
package bootstrap

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"

	"curator/adapter/in/cli"
	"curator/adapter/out/csvio"
	"curator/config"
	"curator/core/port/in"
	"curator/core/service/curation"
)

// Dependencies holds every wired component of the application.
type Dependencies struct {
	Config   *config.Config
	Curation in.CurationService
	Reporter *cli.Reporter
	Log      zerolog.Logger
}

// NewDependencies builds the adapter and service graph.
func NewDependencies(cfg *config.Config, log zerolog.Logger) *Dependencies {
	now := time.Now()

	deps := curation.Deps{
		Source:     csvio.NewAuctionReader(cfg.ReaderWorkers, now, log),
		Exclusions: csvio.NewExclusionReader(log),
		Writer:     csvio.NewResultWriter(log),
	}
	svcCfg := curation.Config{
		ExcludedTLDs:     cfg.ExcludedTLDs,
		ExcludedKeywords: cfg.ExcludedKeywords,
	}

	return &Dependencies{
		Config:   cfg,
		Curation: curation.NewService(deps, svcCfg, now, log),
		Reporter: cli.NewReporter(os.Stdout),
		Log:      log,
	}
}

// Run executes one curation run and renders the report.
func (d *Dependencies) Run(ctx context.Context, req in.CurateRequest) error {
	summary, err := d.Curation.Curate(ctx, req)
	if err != nil {
		return err
	}
	d.Reporter.Render(*summary)

	if req.OutputFile != "" {
		d.Log.Info().Str("output", req.OutputFile).Int("selected", len(summary.Selected)).
			Msg("results written")
	}
	return nil
}
