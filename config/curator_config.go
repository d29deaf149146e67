package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds run defaults and tuning knobs. CLI flags override env values;
// interactive prompts override both.
type Config struct {
	Environment string
	LogLevel    string

	// Run defaults
	InputDir       string
	OutputFile     string
	ExcludeFile    string
	TargetCount    int
	ITRatioPercent int

	// Business filters
	ExcludedTLDs     []string
	ExcludedKeywords []string

	// Ingestion
	ReaderWorkers int
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	return &Config{
		Environment: getEnv("CURATOR_ENV", "development"),
		LogLevel:    getEnv("CURATOR_LOG_LEVEL", "info"),

		InputDir:       getEnv("CURATOR_INPUT_DIR", "./unfiltered-domains-csv"),
		OutputFile:     getEnv("CURATOR_OUTPUT_FILE", ""),
		ExcludeFile:    getEnv("CURATOR_EXCLUDE_FILE", ""),
		TargetCount:    getEnvInt("CURATOR_TARGET_COUNT", 50),
		ITRatioPercent: getEnvInt("CURATOR_IT_RATIO", 80),

		ExcludedTLDs:     getEnvSlice("CURATOR_EXCLUDED_TLDS", []string{".org"}),
		ExcludedKeywords: getEnvSlice("CURATOR_EXCLUDED_KEYWORDS", nil),

		ReaderWorkers: getEnvInt("CURATOR_READER_WORKERS", 4),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return defaultValue
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
