package collector

import (
	"context"

	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/model"
)

// Source defines the interface for loading purchase records.
type Source interface {
	Load(ctx context.Context) ([]model.PriceRecord, error)
	Name() string
}

// MockSource returns fixed records for development and testing.
type MockSource struct {
	Records []model.PriceRecord
	Err     error
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) Load(ctx context.Context) ([]model.PriceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]model.PriceRecord, len(m.Records))
	copy(out, m.Records)
	return out, nil
}
