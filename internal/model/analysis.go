package model

// ItemAnalysis is the output of one full analysis pass over an item.
// Optional parts are nil when their step produced no result.
type ItemAnalysis struct {
	Item       string
	Series     *ItemTimeSeries
	Stats      *DescriptiveStats
	Regression Regression
	Forecast   *ForecastBands
	Buckets    []DecisionBucket
	Dynamics   *SeriesDynamics
	NewPrice   *float64
	Deviation  *float64 // percent, NewPrice vs Regression.PredictedPrice()
	Verdict    *RdaVerdict
}
