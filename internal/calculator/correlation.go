package calculator

import (
	"math"

	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/model"
)

// Correlation strength thresholds shared by every correlation consumer.
const (
	StrongCorrelation   = 0.7
	ModerateCorrelation = 0.4
)

// momentumWindow caps the size of the two windows compared by Momentum.
const momentumWindow = 5

// PearsonCorrelation returns the product-moment correlation of x and y.
// It returns 0 when the slices differ in length, hold fewer than two
// values, or either has zero variance. The cross-item code path in package
// series uses NaN instead; keep the conventions apart.
func PearsonCorrelation(x, y []float64) float64 {
	n := len(x)
	if n < 2 || len(y) != n {
		return 0
	}
	var sx, sy, sxy, sxx, syy float64
	for i := 0; i < n; i++ {
		sx += x[i]
		sy += y[i]
		sxy += x[i] * y[i]
		sxx += x[i] * x[i]
		syy += y[i] * y[i]
	}
	nf := float64(n)
	num := nf*sxy - sx*sy
	den := math.Sqrt((nf*sxx - sx*sx) * (nf*syy - sy*sy))
	if den == 0 || math.IsNaN(den) {
		return 0
	}
	return num / den
}

// AutoCorrelation correlates prices[0:n-lag] with prices[lag:n].
func AutoCorrelation(prices []float64, lag int) float64 {
	n := len(prices)
	if lag <= 0 || lag >= n {
		return 0
	}
	return PearsonCorrelation(prices[:n-lag], prices[lag:])
}

// Volatility is the population standard deviation of period-over-period
// relative returns, in percent. Periods whose previous price is zero are
// skipped.
func Volatility(prices []float64) float64 {
	returns := make([]float64, 0, len(prices))
	for i := 1; i < len(prices); i++ {
		prev := prices[i-1]
		if prev == 0 {
			continue
		}
		returns = append(returns, (prices[i]-prev)/prev)
	}
	if len(returns) == 0 {
		return 0
	}
	return Std(returns) * 100
}

// TrendStrength correlates the time index 1..n with prices.
func TrendStrength(prices []float64) float64 {
	idx := make([]float64, len(prices))
	for i := range idx {
		idx[i] = float64(i + 1)
	}
	return PearsonCorrelation(idx, prices)
}

// Momentum is the percent change between the mean of the last
// min(5, n/2) prices and the mean of the window just before it.
func Momentum(prices []float64) float64 {
	n := len(prices)
	w := n / 2
	if w > momentumWindow {
		w = momentumWindow
	}
	if w < 1 {
		return 0
	}
	recent := Mean(prices[n-w:])
	previous := Mean(prices[n-2*w : n-w])
	if previous == 0 {
		return 0
	}
	return (recent - previous) / previous * 100
}

// ClassifyStrength maps |r| onto strong, moderate or weak.
func ClassifyStrength(r float64) model.Strength {
	a := math.Abs(r)
	switch {
	case a >= StrongCorrelation:
		return model.StrengthStrong
	case a >= ModerateCorrelation:
		return model.StrengthModerate
	default:
		return model.StrengthWeak
	}
}

// ClassifyDirection maps the sign of r onto a direction. Zero is positive.
func ClassifyDirection(r float64) model.Direction {
	if r < 0 {
		return model.DirectionNegative
	}
	return model.DirectionPositive
}

// Dynamics computes the single-item correlation panel figures. Strength
// and direction describe the lag-1 autocorrelation.
func Dynamics(prices []float64) *model.SeriesDynamics {
	ac := AutoCorrelation(prices, 1)
	return &model.SeriesDynamics{
		AutoCorrelation: ac,
		Volatility:      Volatility(prices),
		TrendStrength:   TrendStrength(prices),
		Momentum:        Momentum(prices),
		Strength:        ClassifyStrength(ac),
		Direction:       ClassifyDirection(ac),
	}
}
