package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "standard", cfg.Analysis.RegressionMode)
	assert.Equal(t, 5, cfg.Analysis.ForecastPeriods)
	assert.Equal(t, 4, cfg.Analysis.Workers)
	assert.Equal(t, 0.70, cfg.Rda.HardCutoffRatio)
	assert.Equal(t, 0.7, cfg.Rda.IQRCoefficient)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ',', cfg.Delimiter())
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `
analysis:
  regression_mode: advanced
  forecast_periods: 8
rda:
  hard_cutoff_ratio: 0.6
input:
  delimiter: semicolon
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "advanced", cfg.Analysis.RegressionMode)
	assert.Equal(t, 8, cfg.Analysis.ForecastPeriods)
	assert.Equal(t, 0.6, cfg.Rda.HardCutoffRatio)
	assert.Equal(t, 0.7, cfg.Rda.IQRCoefficient)
	assert.Equal(t, ';', cfg.Delimiter())
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PRICEDEV_REGRESSION_MODE", "advanced")
	t.Setenv("PRICEDEV_WORKERS", "9")
	t.Setenv("PRICEDEV_LOG_LEVEL", "warn")

	cfg, err := Load(writeConfig(t, "analysis:\n  workers: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, "advanced", cfg.Analysis.RegressionMode)
	assert.Equal(t, 9, cfg.Analysis.Workers)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_BadWorkersEnv(t *testing.T) {
	t.Setenv("PRICEDEV_WORKERS", "many")
	_, err := Load(writeConfig(t, ""))
	assert.Error(t, err)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cfg, err := Load(writeConfig(t, "analysis:\n  regression_mode: quadratic\n"))
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())

	cfg, err = Load(writeConfig(t, "rda:\n  hard_cutoff_ratio: 1.5\n"))
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())
}

func TestRdaRules_Bounds(t *testing.T) {
	cfg, err := Load(writeConfig(t, "rda:\n  iqr_coefficient: 0\n"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0.7, cfg.Rda.IQRCoefficient)

	cfg, err = Load(writeConfig(t, "rda:\n  iqr_coefficient: -0.5\n"))
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())

	cfg.Rda.IQRCoefficient = 0
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsUnknownDelimiter(t *testing.T) {
	cfg, err := Load(writeConfig(t, "input:\n  delimiter: pipe\n"))
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "analysis: [unclosed"))
	assert.Error(t, err)
}
