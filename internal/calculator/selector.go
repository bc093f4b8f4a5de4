package calculator

import (
	"fmt"
	"math"
	"strings"

	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/model"
)

// ParseMode maps a user-supplied mode name to a RegressionMode.
func ParseMode(s string) (model.RegressionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(model.ModeStandard):
		return model.ModeStandard, nil
	case string(model.ModeAdvanced):
		return model.ModeAdvanced, nil
	default:
		return "", fmt.Errorf("unknown regression mode %q", s)
	}
}

// SelectRegression dispatches on mode. Advanced mode with quantities of
// matching length tries MultipleRegression and silently falls back to
// LinearRegression when that yields no result. Returns nil only when the
// standard fit fails too.
func SelectRegression(mode model.RegressionMode, prices, quantities []float64) model.Regression {
	if mode == model.ModeAdvanced && len(quantities) > 0 && len(quantities) == len(prices) {
		if fit := MultipleRegression(prices, quantities); fit != nil {
			return fit
		}
	}
	if fit := LinearRegression(prices); fit != nil {
		return fit
	}
	return nil
}

// HasValidQuantities reports whether quantities can drive advanced mode: at
// least 3 values, all finite and non-negative. SelectRegression does not
// enforce this; callers use it to decide whether to offer advanced mode.
func HasValidQuantities(quantities []float64) bool {
	if len(quantities) < 3 {
		return false
	}
	for _, q := range quantities {
		if math.IsNaN(q) || math.IsInf(q, 0) || q < 0 {
			return false
		}
	}
	return true
}
