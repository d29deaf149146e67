package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"curator/adapter/in/cli"
	"curator/config"
	"curator/core/port/in"
	"curator/internal/bootstrap"
	"curator/pkg/logger"
)

func main() {
	// Load .env file if exists (for local development)
	_ = godotenv.Load()

	interactive := flag.Bool("interactive", false, "Prompt for run parameters")
	inputDir := flag.String("input", "", "Folder of auction CSV exports")
	targetCount := flag.Int("count", 0, "Number of domains to select")
	itRatio := flag.Int("ratio", -1, "IT / Software percentage of the selection (0-100)")
	excludeFile := flag.String("exclude", "", "Prior output CSV whose domains are excluded")
	outputFile := flag.String("output", "", "Output file (.csv or .json)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Service: "curator"})

	req, err := buildRequest(cfg, *interactive, *inputDir, *targetCount, *itRatio, *excludeFile, *outputFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read run parameters")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	deps := bootstrap.NewDependencies(cfg, log)
	if err := deps.Run(ctx, req); err != nil {
		log.Fatal().Err(err).Msg("curation run failed")
	}
}

// buildRequest merges config defaults with flags, or defers to the
// interactive prompt flow.
func buildRequest(cfg *config.Config, interactive bool, inputDir string, targetCount, itRatio int, excludeFile, outputFile string) (in.CurateRequest, error) {
	if interactive {
		return cli.NewPrompter(os.Stdin, os.Stdout).Run(cfg)
	}

	req := in.CurateRequest{
		InputDir:       cfg.InputDir,
		ExcludeFile:    cfg.ExcludeFile,
		OutputFile:     cfg.OutputFile,
		TargetCount:    cfg.TargetCount,
		ITRatioPercent: cfg.ITRatioPercent,
	}
	if inputDir != "" {
		req.InputDir = inputDir
	}
	if targetCount > 0 {
		req.TargetCount = targetCount
	}
	if itRatio >= 0 {
		req.ITRatioPercent = itRatio
	}
	if excludeFile != "" {
		req.ExcludeFile = excludeFile
	}
	if outputFile != "" {
		req.OutputFile = outputFile
	}
	return req, nil
}
