package model

// Strength classifies the magnitude of a correlation coefficient.
type Strength string

const (
	StrengthStrong   Strength = "strong"
	StrengthModerate Strength = "moderate"
	StrengthWeak     Strength = "weak"
)

// Direction is the sign of a correlation coefficient.
type Direction string

const (
	DirectionPositive Direction = "positive"
	DirectionNegative Direction = "negative"
)

// CorrelationResult compares two items over the dates they share.
type CorrelationResult struct {
	ItemA         string    `json:"item_a" yaml:"item_a"`
	ItemB         string    `json:"item_b" yaml:"item_b"`
	Correlation   float64   `json:"correlation" yaml:"correlation"`
	Strength      Strength  `json:"strength" yaml:"strength"`
	Direction     Direction `json:"direction" yaml:"direction"`
	CommonDates   int       `json:"common_dates" yaml:"common_dates"`
	IsSignificant bool      `json:"is_significant" yaml:"is_significant"`
}

// AlignedSeries holds two items' prices on their common dates.
type AlignedSeries struct {
	Dates   []string  `json:"dates" yaml:"dates"`
	PricesA []float64 `json:"prices_a" yaml:"prices_a"`
	PricesB []float64 `json:"prices_b" yaml:"prices_b"`
}

// Len returns the number of common dates.
func (a AlignedSeries) Len() int { return len(a.Dates) }

// RollingPoint is the correlation of the window ending at Date.
type RollingPoint struct {
	Date        string  `json:"date" yaml:"date"`
	Correlation float64 `json:"correlation" yaml:"correlation"`
}

// SeriesDynamics summarises the behaviour of a single price series.
type SeriesDynamics struct {
	AutoCorrelation float64   `json:"auto_correlation" yaml:"auto_correlation"` // lag 1
	Volatility      float64   `json:"volatility" yaml:"volatility"`             // percent
	TrendStrength   float64   `json:"trend_strength" yaml:"trend_strength"`
	Momentum        float64   `json:"momentum" yaml:"momentum"` // percent
	Strength        Strength  `json:"strength" yaml:"strength"`
	Direction       Direction `json:"direction" yaml:"direction"`
}
