package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Patterns   PatternsConfig
	Confidence ConfidenceConfig
	Export     ExportConfig
	Logging    LoggingConfig
}

// PatternsConfig points at an optional YAML file overriding the compiled-in
// classifier indicator registry.
type PatternsConfig struct {
	RegistryFile string
}

type ConfidenceConfig struct {
	AcceptThreshold     float64
	ReviewThreshold     float64
	AcceptableThreshold float64
}

type ExportConfig struct {
	Format    string // csv or xlsx
	OutputDir string
}

type LoggingConfig struct {
	Level string
}

// Load reads configuration from environment variables, honouring a .env
// file in the working directory when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Patterns: PatternsConfig{
			RegistryFile: getEnv("DIVPARSE_PATTERNS_FILE", ""),
		},
		Confidence: ConfidenceConfig{
			AcceptThreshold:     getEnvAsFloat("DIVPARSE_ACCEPT_THRESHOLD", 0.80),
			ReviewThreshold:     getEnvAsFloat("DIVPARSE_REVIEW_THRESHOLD", 0.50),
			AcceptableThreshold: getEnvAsFloat("DIVPARSE_ACCEPTABLE_THRESHOLD", 0.60),
		},
		Export: ExportConfig{
			Format:    getEnv("DIVPARSE_EXPORT_FORMAT", "csv"),
			OutputDir: getEnv("DIVPARSE_OUTPUT_DIR", "."),
		},
		Logging: LoggingConfig{
			Level: getEnv("DIVPARSE_LOG_LEVEL", "info"),
		},
	}

	if cfg.Export.Format != "csv" && cfg.Export.Format != "xlsx" {
		return nil, fmt.Errorf("DIVPARSE_EXPORT_FORMAT must be csv or xlsx, got %q", cfg.Export.Format)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
