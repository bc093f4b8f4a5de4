package model

import "fmt"

// RegressionMode selects the regression model.
type RegressionMode string

const (
	ModeStandard RegressionMode = "standard"
	ModeAdvanced RegressionMode = "advanced"
)

// Regression is the result of a price regression. It is either a
// *StandardFit or an *AdvancedFit; consumers switch on the concrete type.
type Regression interface {
	Mode() RegressionMode
	PredictedPrice() float64
	RSquared() float64
	isRegression()
}

// StandardFit is price = A + B·t with t = 1..n.
type StandardFit struct {
	A         float64 `json:"a" yaml:"a"`
	B         float64 `json:"b" yaml:"b"`
	Predicted float64 `json:"predicted" yaml:"predicted"` // value at t = n+1
	R2        float64 `json:"r2" yaml:"r2"`
}

func (f *StandardFit) Mode() RegressionMode    { return ModeStandard }
func (f *StandardFit) PredictedPrice() float64 { return f.Predicted }
func (f *StandardFit) RSquared() float64       { return f.R2 }
func (f *StandardFit) isRegression()           {}

// At returns the fitted value at time index t.
func (f *StandardFit) At(t float64) float64 {
	return f.A + f.B*t
}

// AdvancedFit is price = Alpha + BetaQuantity·qty + BetaTime·t.
type AdvancedFit struct {
	Alpha        float64 `json:"alpha" yaml:"alpha"`
	BetaQuantity float64 `json:"beta_quantity" yaml:"beta_quantity"`
	BetaTime     float64 `json:"beta_time" yaml:"beta_time"`
	Predicted    float64 `json:"predicted" yaml:"predicted"` // value at (AvgQuantity, n+1)
	R2           float64 `json:"r2" yaml:"r2"`
	AvgQuantity  float64 `json:"avg_quantity" yaml:"avg_quantity"`
}

func (f *AdvancedFit) Mode() RegressionMode    { return ModeAdvanced }
func (f *AdvancedFit) PredictedPrice() float64 { return f.Predicted }
func (f *AdvancedFit) RSquared() float64       { return f.R2 }
func (f *AdvancedFit) isRegression()           {}

// At returns the fitted value for the given quantity and time index.
func (f *AdvancedFit) At(quantity, t float64) float64 {
	return f.Alpha + f.BetaQuantity*quantity + f.BetaTime*t
}

// RegressionRecord flattens a Regression into a serializable shape.
type RegressionRecord struct {
	Mode     RegressionMode `json:"mode" yaml:"mode"`
	Standard *StandardFit   `json:"standard,omitempty" yaml:"standard,omitempty"`
	Advanced *AdvancedFit   `json:"advanced,omitempty" yaml:"advanced,omitempty"`
}

// NewRegressionRecord wraps r for export. A nil r yields nil.
func NewRegressionRecord(r Regression) *RegressionRecord {
	switch fit := r.(type) {
	case nil:
		return nil
	case *StandardFit:
		return &RegressionRecord{Mode: ModeStandard, Standard: fit}
	case *AdvancedFit:
		return &RegressionRecord{Mode: ModeAdvanced, Advanced: fit}
	default:
		panic(fmt.Sprintf("model: unknown regression type %T", r))
	}
}
