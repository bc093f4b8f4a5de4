package calculator

import "github.com/noobyez/PriceDeviationCalculator-sub000/internal/model"

// LinearRegression fits price = a + b·t by ordinary least squares with the
// implicit time index t = 1..n. It returns nil when n < 2 or the OLS
// denominator is zero.
func LinearRegression(prices []float64) *model.StandardFit {
	n := len(prices)
	if n < 2 {
		return nil
	}

	var sumX, sumY, sumXY, sumX2 float64
	for i, y := range prices {
		x := float64(i + 1)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}

	nf := float64(n)
	den := nf*sumX2 - sumX*sumX
	if den == 0 {
		return nil
	}

	b := (nf*sumXY - sumX*sumY) / den
	a := (sumY - b*sumX) / nf

	fit := &model.StandardFit{A: a, B: b, Predicted: a + b*(nf+1)}

	fitted := make([]float64, n)
	for i := range prices {
		fitted[i] = fit.At(float64(i + 1))
	}
	fit.R2 = rSquared(prices, fitted)
	return fit
}

// rSquared returns 1 - SSres/SStot clamped to [0,1]. A constant series
// (SStot = 0) is a perfect fit by convention.
func rSquared(actual, fitted []float64) float64 {
	mean := Mean(actual)
	var ssRes, ssTot float64
	for i, y := range actual {
		r := y - fitted[i]
		d := y - mean
		ssRes += r * r
		ssTot += d * d
	}
	if ssTot == 0 {
		return 1
	}
	r2 := 1 - ssRes/ssTot
	if r2 < 0 {
		r2 = 0
	}
	if r2 > 1 {
		r2 = 1
	}
	return r2
}
