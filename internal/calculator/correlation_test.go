package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"

	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/model"
)

func TestPearsonCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	y := []float64{2.1, 3.9, 6.2, 7.8, 10.1, 12.2}

	r := PearsonCorrelation(x, y)
	assert.InDelta(t, stat.Correlation(x, y, nil), r, 1e-12)
	assert.Equal(t, r, PearsonCorrelation(y, x))

	assert.InDelta(t, -1, PearsonCorrelation(x, []float64{6, 5, 4, 3, 2, 1}), 1e-12)
}

func TestPearsonCorrelation_ZeroOnFailure(t *testing.T) {
	assert.Equal(t, 0.0, PearsonCorrelation([]float64{1}, []float64{2}))
	assert.Equal(t, 0.0, PearsonCorrelation([]float64{1, 2, 3}, []float64{1, 2}))
	assert.Equal(t, 0.0, PearsonCorrelation([]float64{1, 2, 3}, []float64{4, 4, 4}))
}

func TestAutoCorrelation(t *testing.T) {
	assert.InDelta(t, 1, AutoCorrelation(weekly, 1), 1e-12)
	assert.Equal(t, 0.0, AutoCorrelation(weekly, 7))
	assert.Equal(t, 0.0, AutoCorrelation(weekly, 0))
	assert.InDelta(t, -1, AutoCorrelation([]float64{1, 3, 1, 3, 1, 3}, 1), 1e-12)
}

func TestVolatility(t *testing.T) {
	assert.InDelta(t, 10, Volatility([]float64{100, 110, 99}), 1e-9)
	// The zero predecessor is skipped, leaving a single return.
	assert.Equal(t, 0.0, Volatility([]float64{0, 10, 20}))
	assert.Equal(t, 0.0, Volatility([]float64{5}))
}

func TestTrendStrength(t *testing.T) {
	assert.InDelta(t, 1, TrendStrength(weekly), 1e-12)
	assert.InDelta(t, -1, TrendStrength([]float64{9, 7, 5, 3}), 1e-12)
}

func TestMomentum(t *testing.T) {
	assert.InDelta(t, 75, Momentum(weekly), 1e-9)
	assert.InDelta(t, 100, Momentum([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}), 1e-9)
	assert.Equal(t, 0.0, Momentum([]float64{3}))
	assert.Equal(t, 0.0, Momentum([]float64{0, 0, 5, 5}))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		r         float64
		strength  model.Strength
		direction model.Direction
	}{
		{0.95, model.StrengthStrong, model.DirectionPositive},
		{-0.7, model.StrengthStrong, model.DirectionNegative},
		{0.69, model.StrengthModerate, model.DirectionPositive},
		{-0.4, model.StrengthModerate, model.DirectionNegative},
		{0.39, model.StrengthWeak, model.DirectionPositive},
		{0, model.StrengthWeak, model.DirectionPositive},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.strength, ClassifyStrength(tt.r), "r=%v", tt.r)
		assert.Equal(t, tt.direction, ClassifyDirection(tt.r), "r=%v", tt.r)
	}
}

func TestDynamics(t *testing.T) {
	d := Dynamics(weekly)
	assert.InDelta(t, 1, d.AutoCorrelation, 1e-12)
	assert.InDelta(t, 1, d.TrendStrength, 1e-12)
	assert.InDelta(t, 75, d.Momentum, 1e-9)
	assert.Equal(t, model.StrengthStrong, d.Strength)
	assert.Equal(t, model.DirectionPositive, d.Direction)
	assert.Greater(t, d.Volatility, 0.0)
}
