package collector

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/model"
)

// Collector loads records from a source and drops rows the analysis
// cannot use.
type Collector struct {
	Source Source
	Log    zerolog.Logger
}

// NewCollector creates a new Collector.
func NewCollector(source Source, log zerolog.Logger) *Collector {
	return &Collector{Source: source, Log: log}
}

// Collect loads and validates records.
func (c *Collector) Collect(ctx context.Context) ([]model.PriceRecord, error) {
	raw, err := c.Source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.Source.Name(), err)
	}

	records := make([]model.PriceRecord, 0, len(raw))
	for i, r := range raw {
		if math.IsNaN(r.Price) || math.IsInf(r.Price, 0) {
			c.Log.Warn().Int("index", i).Float64("price", r.Price).Msg("dropping record with non-finite price")
			continue
		}
		if r.Quantity != nil && (math.IsNaN(*r.Quantity) || math.IsInf(*r.Quantity, 0)) {
			c.Log.Warn().Int("index", i).Msg("dropping non-finite quantity")
			r.Quantity = nil
		}
		records = append(records, r)
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	c.Log.Debug().Str("source", c.Source.Name()).Int("records", len(records)).Msg("records collected")
	return records, nil
}
