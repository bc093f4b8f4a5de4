package calculator

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/model"
)

// singularTolerance is the smallest |det| of the normal matrix accepted
// before the system is treated as singular.
const singularTolerance = 1e-10

// MultipleRegression fits price = alpha + betaQ·qty + betaT·t by solving the
// 3×3 normal equations with Cramer's rule. It returns nil when n < 3, the
// slices differ in length, a quantity is not finite, or the normal matrix is
// near-singular (constant quantity, or quantity collinear with time).
func MultipleRegression(prices, quantities []float64) *model.AdvancedFit {
	n := len(prices)
	if n < 3 || len(quantities) != n {
		return nil
	}
	for _, q := range quantities {
		if math.IsNaN(q) || math.IsInf(q, 0) {
			return nil
		}
	}

	var sq, st, sqq, stt, sqt, sy, sqy, sty float64
	for i, y := range prices {
		q := quantities[i]
		t := float64(i + 1)
		sq += q
		st += t
		sqq += q * q
		stt += t * t
		sqt += q * t
		sy += y
		sqy += q * y
		sty += t * y
	}
	nf := float64(n)

	normal := []float64{
		nf, sq, st,
		sq, sqq, sqt,
		st, sqt, stt,
	}
	rhs := []float64{sy, sqy, sty}

	det := mat.Det(mat.NewDense(3, 3, normal))
	if math.Abs(det) < singularTolerance {
		return nil
	}

	coef := make([]float64, 3)
	for col := 0; col < 3; col++ {
		replaced := make([]float64, len(normal))
		copy(replaced, normal)
		for row := 0; row < 3; row++ {
			replaced[row*3+col] = rhs[row]
		}
		coef[col] = mat.Det(mat.NewDense(3, 3, replaced)) / det
	}

	fit := &model.AdvancedFit{
		Alpha:        coef[0],
		BetaQuantity: coef[1],
		BetaTime:     coef[2],
		AvgQuantity:  sq / nf,
	}
	fit.Predicted = fit.At(fit.AvgQuantity, nf+1)

	fitted := make([]float64, n)
	for i := range prices {
		fitted[i] = fit.At(quantities[i], float64(i+1))
	}
	fit.R2 = rSquared(prices, fitted)
	return fit
}
