// Package calculator implements the numeric core of the price analysis:
// descriptive statistics, regressions, forecast bands, decision buckets and
// single-series correlation measures. Every function is pure.
//
// Inputs are expected to be finite. Empty slices produce NaN or ±Inf for
// most statistics; callers guard before calling.
package calculator

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/model"
)

// Mean returns the arithmetic mean. NaN for an empty slice.
func Mean(prices []float64) float64 {
	sum := 0.0
	for _, p := range prices {
		sum += p
	}
	return sum / float64(len(prices))
}

// Median returns the median of a sorted copy of prices.
func Median(prices []float64) float64 {
	return medianSorted(sortedCopy(prices))
}

// Variance returns the population variance (divisor n).
func Variance(prices []float64) float64 {
	if len(prices) == 0 {
		return math.NaN()
	}
	_, v := stat.PopMeanVariance(prices, nil)
	return v
}

// Std returns the population standard deviation (divisor n).
func Std(prices []float64) float64 {
	return math.Sqrt(Variance(prices))
}

// Min returns the smallest price, +Inf for an empty slice.
func Min(prices []float64) float64 {
	m := math.Inf(1)
	for _, p := range prices {
		if p < m {
			m = p
		}
	}
	return m
}

// Max returns the largest price, -Inf for an empty slice.
func Max(prices []float64) float64 {
	m := math.Inf(-1)
	for _, p := range prices {
		if p > m {
			m = p
		}
	}
	return m
}

// Quartiles splits the sorted prices at floor(n/2) and ceil(n/2) and returns
// the median of the lower and upper halves. This is the split-half method,
// not percentile interpolation: [10 15 20 25 30 35 40] gives (15, 35).
func Quartiles(prices []float64) (q1, q3 float64) {
	sorted := sortedCopy(prices)
	n := len(sorted)
	lower := sorted[:n/2]
	upper := sorted[(n+1)/2:]
	return medianSorted(lower), medianSorted(upper)
}

// IQR returns q3 - q1 from Quartiles.
func IQR(prices []float64) float64 {
	q1, q3 := Quartiles(prices)
	return q3 - q1
}

// Describe computes every descriptive statistic of prices in one pass.
func Describe(prices []float64) *model.DescriptiveStats {
	q1, q3 := Quartiles(prices)
	v := Variance(prices)
	return &model.DescriptiveStats{
		Count:    len(prices),
		Mean:     Mean(prices),
		Median:   Median(prices),
		Std:      math.Sqrt(v),
		Variance: v,
		Min:      Min(prices),
		Max:      Max(prices),
		Q1:       q1,
		Q3:       q3,
		IQR:      q3 - q1,
	}
}

func sortedCopy(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Float64s(out)
	return out
}

func medianSorted(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}
