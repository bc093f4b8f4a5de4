package report

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/model"
)

func sampleAnalysis() *model.ItemAnalysis {
	newPrice, dev := 12.0, -20.0
	return &model.ItemAnalysis{
		Item: "Bolts",
		Series: &model.ItemTimeSeries{
			Item: "Bolts",
			Points: []model.SeriesPoint{
				{Date: "2024-01-01", Price: 10},
				{Date: "2024-01-08", Price: 15},
			},
			Unordered: []string{"n/a"},
		},
		Stats:      &model.DescriptiveStats{Count: 2, Mean: 12.5},
		Regression: &model.StandardFit{A: 5, B: 5, Predicted: 15, R2: 1},
		NewPrice:   &newPrice,
		Deviation:  &dev,
		Verdict: &model.RdaVerdict{
			Status:  model.StatusOK,
			Reasons: []string{},
			Details: model.VerdictDetails{ExpectedPrice: 15, LowerBoundIQR: math.NaN()},
		},
	}
}

func TestNewSnapshot(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewSnapshot(sampleAnalysis(), now)

	assert.NotEqual(t, [16]byte{}, [16]byte(s.ID))
	assert.Equal(t, now, s.CreatedAt)
	assert.Equal(t, []float64{10, 15}, s.Prices)
	assert.Equal(t, []string{"n/a"}, s.Unordered)
	require.NotNil(t, s.Regression)
	assert.Equal(t, model.ModeStandard, s.Regression.Mode)
	assert.Nil(t, s.Regression.Advanced)

	other := NewSnapshot(sampleAnalysis(), now)
	assert.NotEqual(t, s.ID, other.ID)
}

func TestNewSnapshot_EmptyAnalysis(t *testing.T) {
	s := NewSnapshot(&model.ItemAnalysis{Item: "x"}, time.Now())
	assert.Nil(t, s.Prices)
	assert.Nil(t, s.Regression)
	assert.Nil(t, s.Verdict)
}

func TestFileExporter_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	exp, err := NewFileExporter(path, zerolog.Nop())
	require.NoError(t, err)

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	first := NewSnapshot(sampleAnalysis(), now)
	second := NewSnapshot(&model.ItemAnalysis{Item: "Nuts"}, now)
	require.NoError(t, exp.Export(first))
	require.NoError(t, exp.Export(second))
	require.NoError(t, exp.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	snaps, err := ReadSnapshots(f)
	require.NoError(t, err)
	require.Len(t, snaps, 2)

	got := snaps[0]
	assert.Equal(t, first.ID, got.ID)
	assert.True(t, now.Equal(got.CreatedAt))
	assert.Equal(t, "Bolts", got.Item)
	require.NotNil(t, got.Regression)
	require.NotNil(t, got.Regression.Standard)
	assert.Equal(t, 15.0, got.Regression.Standard.Predicted)
	require.NotNil(t, got.Verdict)
	assert.True(t, math.IsNaN(got.Verdict.Details.LowerBoundIQR))
	require.NotNil(t, got.NewPrice)
	assert.Equal(t, 12.0, *got.NewPrice)

	assert.Equal(t, "Nuts", snaps[1].Item)
}

func TestFileExporter_AppendsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	for i := 0; i < 2; i++ {
		exp, err := NewFileExporter(path, zerolog.Nop())
		require.NoError(t, err)
		require.NoError(t, exp.Export(NewSnapshot(&model.ItemAnalysis{Item: "A"}, time.Now())))
		require.NoError(t, exp.Close())
	}

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	snaps, err := ReadSnapshots(f)
	require.NoError(t, err)
	assert.Len(t, snaps, 2)
}

func TestFileExporter_Closed(t *testing.T) {
	exp, err := NewFileExporter(filepath.Join(t.TempDir(), "r.yaml"), zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, exp.Close())
	require.NoError(t, exp.Close())
	assert.Error(t, exp.Export(&Snapshot{Item: "x"}))
}

func TestNoopExporter(t *testing.T) {
	var e Exporter = NewNoopExporter()
	assert.NoError(t, e.Export(&Snapshot{}))
	assert.NoError(t, e.Close())
}
