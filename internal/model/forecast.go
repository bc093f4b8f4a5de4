package model

// ForecastBands holds future predictions with Gaussian residual bands.
// Band k spans Predicted ± k·Sigma (68%, 95%, 99.7% nominal coverage).
type ForecastBands struct {
	Sigma        float64   `json:"sigma" yaml:"sigma"`
	ResidualMean float64   `json:"residual_mean" yaml:"residual_mean"`
	Periods      []int     `json:"periods" yaml:"periods"`
	Predicted    []float64 `json:"predicted" yaml:"predicted"`
	Upper1       []float64 `json:"upper_1" yaml:"upper_1"`
	Lower1       []float64 `json:"lower_1" yaml:"lower_1"`
	Upper2       []float64 `json:"upper_2" yaml:"upper_2"`
	Lower2       []float64 `json:"lower_2" yaml:"lower_2"`
	Upper3       []float64 `json:"upper_3" yaml:"upper_3"`
	Lower3       []float64 `json:"lower_3" yaml:"lower_3"`
}

// DecisionBucket is one labeled price range with its probability in percent.
type DecisionBucket struct {
	Label       string  `json:"label" yaml:"label"`
	Min         float64 `json:"min" yaml:"min"`
	Max         float64 `json:"max" yaml:"max"`
	Probability int     `json:"probability" yaml:"probability"`
	Explanation string  `json:"explanation" yaml:"explanation"`
}
