package calculator

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/model"
)

// ErrInsufficientData is returned when a series is too short for the
// requested computation.
var ErrInsufficientData = errors.New("insufficient data")

// NormalCDF approximates the standard normal CDF with the Zelen & Severo
// polynomial (Abramowitz-Stegun 26.2.17), absolute error below 7.5e-8.
func NormalCDF(x float64) float64 {
	const (
		p  = 0.2316419
		b1 = 0.319381530
		b2 = -0.356563782
		b3 = 1.781477937
		b4 = -1.821255978
		b5 = 1.330274429
	)
	t := 1 / (1 + p*math.Abs(x))
	d := math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
	tail := d * t * (b1 + t*(b2+t*(b3+t*(b4+t*b5))))
	if x > 0 {
		return 1 - tail
	}
	return tail
}

// DecisionBuckets splits the price line into four ranges around
// predicted ± 2σ, where σ is the sample standard deviation (divisor n-1) of
// the historical prices. The outer ranges extend to the historical min and
// max. Each probability is Φ(zMax) - Φ(zMin) rounded to a percent, then
// renormalized by the sum of the rounded values. That second rounding can
// leave the total one point off 100 for unlucky inputs; the drift is kept.
func DecisionBuckets(historical []float64, predicted float64) ([]model.DecisionBucket, error) {
	if len(historical) < 2 {
		return nil, ErrInsufficientData
	}

	sigma := SampleStd(historical)
	low2 := predicted - 2*sigma
	high2 := predicted + 2*sigma
	histMin := math.Min(Min(historical), low2)
	histMax := math.Max(Max(historical), high2)

	buckets := []model.DecisionBucket{
		{
			Label:       "Well below forecast",
			Min:         histMin,
			Max:         low2,
			Explanation: "More than 2σ under the forecast: unusually cheap, check the offer before accepting it.",
		},
		{
			Label:       "Below forecast",
			Min:         low2,
			Max:         predicted,
			Explanation: "Within 2σ under the forecast: a favourable price consistent with history.",
		},
		{
			Label:       "Above forecast",
			Min:         predicted,
			Max:         high2,
			Explanation: "Within 2σ over the forecast: slightly expensive but consistent with history.",
		},
		{
			Label:       "Well above forecast",
			Min:         high2,
			Max:         histMax,
			Explanation: "More than 2σ over the forecast: unusually expensive, negotiate or look for alternatives.",
		},
	}

	if sigma == 0 {
		buckets[1].Probability = 50
		buckets[2].Probability = 50
		return buckets, nil
	}

	rounded := make([]int, len(buckets))
	total := 0
	for i, b := range buckets {
		zMin := (b.Min - predicted) / sigma
		zMax := (b.Max - predicted) / sigma
		rounded[i] = int(math.Round((NormalCDF(zMax) - NormalCDF(zMin)) * 100))
		total += rounded[i]
	}
	for i := range buckets {
		if total == 0 {
			break
		}
		buckets[i].Probability = int(math.Round(float64(rounded[i]) * 100 / float64(total)))
	}
	return buckets, nil
}

// SampleStd returns the sample standard deviation (divisor n-1) used by
// DecisionBuckets. NaN when len(prices) < 2.
func SampleStd(prices []float64) float64 {
	if len(prices) < 2 {
		return math.NaN()
	}
	return stat.StdDev(prices, nil)
}
