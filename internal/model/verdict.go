package model

// VerdictStatus is the outcome of an RDA price evaluation.
type VerdictStatus string

const (
	StatusOK      VerdictStatus = "OK"
	StatusWarning VerdictStatus = "WARNING"
	StatusAlert   VerdictStatus = "ALERT"
)

// VerdictDetails carries the figures the verdict was derived from.
type VerdictDetails struct {
	ExpectedPrice float64 `json:"expected_price" yaml:"expected_price"`
	LowerBoundIQR float64 `json:"lower_bound_iqr" yaml:"lower_bound_iqr"`
	DeviationPerc float64 `json:"deviation_perc" yaml:"deviation_perc"`
}

// RdaVerdict is the result of evaluating an offered price. It is computed
// fresh on every call.
type RdaVerdict struct {
	Status  VerdictStatus  `json:"status" yaml:"status"`
	Reasons []string       `json:"reasons" yaml:"reasons"`
	Comment string         `json:"comment" yaml:"comment"`
	Details VerdictDetails `json:"details" yaml:"details"`
}
