package series

import (
	"math"

	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/calculator"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/model"
)

const (
	// MinCommonDates is the fewest shared dates a cross-item correlation needs.
	MinCommonDates = 3
	// SignificantCommonDates and SignificantCorrelation gate IsSignificant.
	SignificantCommonDates = 5
	SignificantCorrelation = 0.3
)

// PearsonCorrelation returns the product-moment correlation of x and y, or
// NaN when the slices differ in length, hold fewer than two values, or either
// has zero variance. Unlike calculator.PearsonCorrelation, failure is NaN so
// that callers can tell "no result" from "uncorrelated".
func PearsonCorrelation(x, y []float64) float64 {
	n := len(x)
	if n < 2 || len(y) != n {
		return math.NaN()
	}
	var sx, sy float64
	for i := 0; i < n; i++ {
		sx += x[i]
		sy += y[i]
	}
	mx, my := sx/float64(n), sy/float64(n)

	var num, dx2, dy2 float64
	for i := 0; i < n; i++ {
		dx := x[i] - mx
		dy := y[i] - my
		num += dx * dy
		dx2 += dx * dx
		dy2 += dy * dy
	}
	den := math.Sqrt(dx2 * dy2)
	if den == 0 {
		return math.NaN()
	}
	return num / den
}

// CorrelateItems correlates the prices of two items over their common
// dates. It returns nil when fewer than MinCommonDates dates are shared or
// the correlation is undefined.
func CorrelateItems(records []model.PriceRecord, itemA, itemB string) *model.CorrelationResult {
	aligned := AlignItemsByDate(records, itemA, itemB)
	return CorrelateAligned(aligned, itemA, itemB)
}

// CorrelateAligned is CorrelateItems over an already aligned pair.
func CorrelateAligned(aligned model.AlignedSeries, itemA, itemB string) *model.CorrelationResult {
	common := aligned.Len()
	if common < MinCommonDates {
		return nil
	}
	r := PearsonCorrelation(aligned.PricesA, aligned.PricesB)
	if math.IsNaN(r) {
		return nil
	}
	return &model.CorrelationResult{
		ItemA:         itemA,
		ItemB:         itemB,
		Correlation:   r,
		Strength:      calculator.ClassifyStrength(r),
		Direction:     calculator.ClassifyDirection(r),
		CommonDates:   common,
		IsSignificant: common >= SignificantCommonDates && math.Abs(r) >= SignificantCorrelation,
	}
}

// RollingCorrelation correlates each sliding window of the aligned series
// and labels it with the window's last date. It returns nil when the window
// is smaller than 2 or longer than the series. Windows whose correlation is
// undefined (a flat stretch) are skipped.
func RollingCorrelation(aligned model.AlignedSeries, window int) []model.RollingPoint {
	n := aligned.Len()
	if window < 2 || n < window {
		return nil
	}
	out := make([]model.RollingPoint, 0, n-window+1)
	for end := window; end <= n; end++ {
		r := PearsonCorrelation(aligned.PricesA[end-window:end], aligned.PricesB[end-window:end])
		if math.IsNaN(r) {
			continue
		}
		out = append(out, model.RollingPoint{Date: aligned.Dates[end-1], Correlation: r})
	}
	return out
}

// AllPairs correlates every unordered pair of items and keeps the pairs
// that produced a result, in item order.
func AllPairs(records []model.PriceRecord) []model.CorrelationResult {
	items := GroupByItem(records).Items()
	var out []model.CorrelationResult
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if res := CorrelateItems(records, items[i], items[j]); res != nil {
				out = append(out, *res)
			}
		}
	}
	return out
}
