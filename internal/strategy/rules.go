package strategy

// Rules holds the thresholds of the RDA price check.
type Rules struct {
	// HardCutoffRatio: an offer below HardCutoffRatio × expected price is an
	// ALERT whatever the IQR fence says.
	HardCutoffRatio float64 `yaml:"hard_cutoff_ratio" default:"0.70" validate:"gt=0,lte=1"`
	// IQRCoefficient sets the lower fence q1 - IQRCoefficient × IQR. It is
	// tighter than Tukey's 1.5 on purpose. Zero means unset and takes the
	// default, so it must be positive.
	IQRCoefficient float64 `yaml:"iqr_coefficient" default:"0.7" validate:"gt=0"`
}

// DefaultRules returns the thresholds used by EvaluateRdaPrice.
func DefaultRules() Rules {
	return Rules{HardCutoffRatio: 0.70, IQRCoefficient: 0.7}
}
