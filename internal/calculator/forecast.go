package calculator

import "github.com/noobyez/PriceDeviationCalculator-sub000/internal/model"

// DefaultFuturePoints is the forecast horizon used when none is given.
const DefaultFuturePoints = 5

// ForecastBands projects fit over futurePoints periods after the last
// observation and wraps the projection in ±1σ, ±2σ and ±3σ bands, where σ
// is the population standard deviation of the historical residuals. The
// bands assume Gaussian residuals (68/95/99.7% nominal coverage); that is
// not checked against the data.
func ForecastBands(prices []float64, fit *model.StandardFit, futurePoints int) *model.ForecastBands {
	n := len(prices)
	if fit == nil || n == 0 {
		return nil
	}
	if futurePoints <= 0 {
		futurePoints = DefaultFuturePoints
	}

	residuals := make([]float64, n)
	for i, p := range prices {
		residuals[i] = p - fit.At(float64(i+1))
	}
	resMean := Mean(residuals)
	sigma := Std(residuals)

	out := &model.ForecastBands{
		Sigma:        sigma,
		ResidualMean: resMean,
		Periods:      make([]int, futurePoints),
		Predicted:    make([]float64, futurePoints),
		Upper1:       make([]float64, futurePoints),
		Lower1:       make([]float64, futurePoints),
		Upper2:       make([]float64, futurePoints),
		Lower2:       make([]float64, futurePoints),
		Upper3:       make([]float64, futurePoints),
		Lower3:       make([]float64, futurePoints),
	}
	for k := 0; k < futurePoints; k++ {
		t := n + 1 + k
		pred := fit.At(float64(t))
		out.Periods[k] = t
		out.Predicted[k] = pred
		out.Upper1[k] = pred + sigma
		out.Lower1[k] = pred - sigma
		out.Upper2[k] = pred + 2*sigma
		out.Lower2[k] = pred - 2*sigma
		out.Upper3[k] = pred + 3*sigma
		out.Lower3[k] = pred - 3*sigma
	}
	return out
}
