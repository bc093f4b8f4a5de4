package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/model"
)

// Snapshot is the bundle handed to the export layer for one item.
type Snapshot struct {
	ID         uuid.UUID               `yaml:"id"`
	CreatedAt  time.Time               `yaml:"created_at"`
	Item       string                  `yaml:"item"`
	Prices     []float64               `yaml:"prices"`
	Stats      *model.DescriptiveStats `yaml:"stats,omitempty"`
	Regression *model.RegressionRecord `yaml:"regression,omitempty"`
	Forecast   *model.ForecastBands    `yaml:"forecast,omitempty"`
	Buckets    []model.DecisionBucket  `yaml:"buckets,omitempty"`
	Dynamics   *model.SeriesDynamics   `yaml:"dynamics,omitempty"`
	NewPrice   *float64                `yaml:"new_price,omitempty"`
	Deviation  *float64                `yaml:"deviation,omitempty"`
	Verdict    *model.RdaVerdict       `yaml:"verdict,omitempty"`
	Unordered  []string                `yaml:"unordered_dates,omitempty"`
}

// NewSnapshot captures an analysis. The clock is injectable for tests.
func NewSnapshot(a *model.ItemAnalysis, now time.Time) *Snapshot {
	s := &Snapshot{
		ID:         uuid.New(),
		CreatedAt:  now.UTC(),
		Item:       a.Item,
		Stats:      a.Stats,
		Regression: model.NewRegressionRecord(a.Regression),
		Forecast:   a.Forecast,
		Buckets:    a.Buckets,
		Dynamics:   a.Dynamics,
		NewPrice:   a.NewPrice,
		Deviation:  a.Deviation,
		Verdict:    a.Verdict,
	}
	if a.Series != nil {
		s.Prices = a.Series.Prices()
		s.Unordered = a.Series.Unordered
	}
	return s
}

// Exporter persists snapshots outside the process.
type Exporter interface {
	Export(snaps ...*Snapshot) error
	Close() error
}
