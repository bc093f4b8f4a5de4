package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const purchases = `date;price;quantity;item
01/01/2024;10;100;Bolts
08/01/2024;20;80;Bolts
15/01/2024;30;90;Bolts
22/01/2024;40;70;Bolts
01/01/2024;5;10;Nuts
08/01/2024;6;10;Nuts
15/01/2024;8;10;Nuts
22/01/2024;7;10;Nuts
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("input:\n  delimiter: semicolon\nlog:\n  level: disabled\n"), 0o644))
	input := filepath.Join(dir, "purchases.csv")
	require.NoError(t, os.WriteFile(input, []byte(purchases), 0o644))

	current = nil
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", cfg, "--input", input}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestItemsCommand(t *testing.T) {
	out, err := run(t, "items")
	require.NoError(t, err)
	assert.Contains(t, out, "Bolts")
	assert.Contains(t, out, "Nuts")
}

func TestAnalyzeCommand_WithReportAndMetrics(t *testing.T) {
	dir := t.TempDir()
	reportPath := filepath.Join(dir, "report.yaml")
	metricsPath := filepath.Join(dir, "pricedev.prom")

	out, err := run(t, "analyze", "--report", reportPath, "--metrics-file", metricsPath)
	require.NoError(t, err)
	assert.Contains(t, out, "== Bolts |")
	assert.Contains(t, out, "== Nuts |")

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "item: Bolts")

	prom, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "pricedev_analyses_total")
}

func TestAnalyzeCommand_PriceNeedsItem(t *testing.T) {
	_, err := run(t, "analyze", "--price", "3")
	assert.Error(t, err)
}

func TestRdaCommand(t *testing.T) {
	out, err := run(t, "rda", "--item", "Bolts", "--price", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "Verdict: ALERT")

	out, err = run(t, "rda", "--item", "Bolts", "--price", "26", "--expected", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "Verdict: OK")
}

func TestRdaCommand_UnknownItem(t *testing.T) {
	_, err := run(t, "rda", "--item", "Washers", "--price", "1")
	assert.Error(t, err)
}

func TestCorrelateCommand(t *testing.T) {
	out, err := run(t, "correlate", "--a", "Bolts", "--b", "Nuts", "--window", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Bolts vs Nuts")
	assert.Contains(t, out, "Common dates: 4")

	out, err = run(t, "correlate", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Bolts vs Nuts")

	_, err = run(t, "correlate")
	assert.Error(t, err)
}
