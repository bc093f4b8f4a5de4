package model

// DescriptiveStats holds the summary statistics of a price array.
// Std and Variance are population figures (divisor n).
type DescriptiveStats struct {
	Count    int     `json:"count" yaml:"count"`
	Mean     float64 `json:"mean" yaml:"mean"`
	Median   float64 `json:"median" yaml:"median"`
	Std      float64 `json:"std" yaml:"std"`
	Variance float64 `json:"variance" yaml:"variance"`
	Min      float64 `json:"min" yaml:"min"`
	Max      float64 `json:"max" yaml:"max"`
	Q1       float64 `json:"q1" yaml:"q1"`
	Q3       float64 `json:"q3" yaml:"q3"`
	IQR      float64 `json:"iqr" yaml:"iqr"`
}
