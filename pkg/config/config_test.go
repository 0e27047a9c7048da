package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "csv", cfg.Export.Format)
	assert.Equal(t, ".", cfg.Export.OutputDir)
	assert.Equal(t, 0.80, cfg.Confidence.AcceptThreshold)
	assert.Equal(t, 0.50, cfg.Confidence.ReviewThreshold)
	assert.Equal(t, 0.60, cfg.Confidence.AcceptableThreshold)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Patterns.RegistryFile)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DIVPARSE_EXPORT_FORMAT", "xlsx")
	t.Setenv("DIVPARSE_ACCEPT_THRESHOLD", "0.9")
	t.Setenv("DIVPARSE_PATTERNS_FILE", "patterns.yaml")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "xlsx", cfg.Export.Format)
	assert.Equal(t, 0.9, cfg.Confidence.AcceptThreshold)
	assert.Equal(t, "patterns.yaml", cfg.Patterns.RegistryFile)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	t.Setenv("DIVPARSE_EXPORT_FORMAT", "pdf")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DIVPARSE_EXPORT_FORMAT")
}
