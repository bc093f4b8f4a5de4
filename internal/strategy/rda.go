// Package strategy decides whether an offered RDA (purchase request) price
// is in line with the historical series.
package strategy

import (
	"fmt"
	"math"
	"sort"

	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/model"
)

// Evaluator applies a fixed set of Rules. It holds no state between calls.
type Evaluator struct {
	rules Rules
}

// NewEvaluator creates an Evaluator with the given rules.
func NewEvaluator(rules Rules) *Evaluator {
	return &Evaluator{rules: rules}
}

// EvaluateRdaPrice checks rdaPrice against expectedPrice and the IQR fence
// of prices using DefaultRules.
func EvaluateRdaPrice(prices []float64, rdaPrice, expectedPrice float64) model.RdaVerdict {
	return NewEvaluator(DefaultRules()).Evaluate(prices, rdaPrice, expectedPrice)
}

// Evaluate classifies rdaPrice as OK, WARNING or ALERT.
//
//   - fewer than two prices: OK, the fence cannot be computed
//   - rdaPrice < HardCutoffRatio × expectedPrice: ALERT immediately
//   - below expected and below the IQR fence: ALERT
//   - exactly one of the two: WARNING
//   - neither: OK
func (e *Evaluator) Evaluate(prices []float64, rdaPrice, expectedPrice float64) model.RdaVerdict {
	deviation := (rdaPrice - expectedPrice) / expectedPrice * 100

	if len(prices) < 2 {
		return model.RdaVerdict{
			Status:  model.StatusOK,
			Reasons: []string{"Historical series too short to compute the IQR fence."},
			Comment: "Not enough history to assess the price; accepted without checks.",
			Details: model.VerdictDetails{
				ExpectedPrice: expectedPrice,
				LowerBoundIQR: math.NaN(),
				DeviationPerc: deviation,
			},
		}
	}

	lowerBound := e.lowerFence(prices)
	details := model.VerdictDetails{
		ExpectedPrice: expectedPrice,
		LowerBoundIQR: lowerBound,
		DeviationPerc: deviation,
	}

	cutoff := e.rules.HardCutoffRatio * expectedPrice
	if rdaPrice < cutoff {
		return model.RdaVerdict{
			Status: model.StatusAlert,
			Reasons: []string{fmt.Sprintf(
				"Price %.2f is below %.0f%% of the expected price %.2f.",
				rdaPrice, e.rules.HardCutoffRatio*100, expectedPrice)},
			Comment: fmt.Sprintf("Price %.1f%% under the forecast: too low to be credible, verify the offer.", -deviation),
			Details: details,
		}
	}

	belowExpected := rdaPrice < expectedPrice
	belowFence := rdaPrice < lowerBound

	var reasons []string
	if belowExpected {
		reasons = append(reasons, fmt.Sprintf(
			"Price %.2f is below the expected price %.2f (%.1f%%).", rdaPrice, expectedPrice, deviation))
	}
	if belowFence {
		reasons = append(reasons, fmt.Sprintf(
			"Price %.2f is below the IQR lower bound %.2f.", rdaPrice, lowerBound))
	}

	v := model.RdaVerdict{Reasons: reasons, Details: details}
	switch {
	case belowExpected && belowFence:
		v.Status = model.StatusAlert
		v.Comment = "Price under both the forecast and the historical range: anomalous, verify before approving."
	case belowExpected || belowFence:
		v.Status = model.StatusWarning
		v.Comment = "Price lower than usual: acceptable, but worth a check."
	default:
		v.Status = model.StatusOK
		v.Reasons = []string{}
		v.Comment = "Price in line with the forecast and the historical range."
	}
	return v
}

// lowerFence returns q1 - IQRCoefficient × (q3 - q1) where q1 and q3 are
// read by plain rank, sorted[n/4] and sorted[3n/4], without interpolation.
// This differs from calculator.Quartiles on purpose.
func (e *Evaluator) lowerFence(prices []float64) float64 {
	sorted := make([]float64, len(prices))
	copy(sorted, prices)
	sort.Float64s(sorted)

	n := len(sorted)
	q1 := sorted[n/4]
	q3 := sorted[(3*n)/4]
	return q1 - e.rules.IQRCoefficient*(q3-q1)
}
