package model

// PriceRecord is one purchase row as delivered by the upload layer.
type PriceRecord struct {
	Date     string   `json:"date" yaml:"date"`
	Price    float64  `json:"price" yaml:"price"`
	Quantity *float64 `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	Item     string   `json:"item,omitempty" yaml:"item,omitempty"`
}

// SeriesPoint is a single (date, price, quantity) triple of an item series.
// Quantity is 0 when the record carried none; HasQuantity tells the two apart.
type SeriesPoint struct {
	Date        string  `json:"date" yaml:"date"`
	Price       float64 `json:"price" yaml:"price"`
	Quantity    float64 `json:"quantity" yaml:"quantity"`
	HasQuantity bool    `json:"has_quantity" yaml:"has_quantity"`
}

// ItemSummary holds per-item aggregates computed when the series is built.
type ItemSummary struct {
	Count         int     `json:"count" yaml:"count"`
	MinPrice      float64 `json:"min_price" yaml:"min_price"`
	MaxPrice      float64 `json:"max_price" yaml:"max_price"`
	AvgPrice      float64 `json:"avg_price" yaml:"avg_price"`
	TotalQuantity float64 `json:"total_quantity" yaml:"total_quantity"`
	FirstDate     string  `json:"first_date" yaml:"first_date"`
	LastDate      string  `json:"last_date" yaml:"last_date"`
}

// ItemTimeSeries is the chronologically sorted series of one item.
// It is never updated in place; rebuild it when the source records change.
type ItemTimeSeries struct {
	Item    string        `json:"item" yaml:"item"`
	Points  []SeriesPoint `json:"points" yaml:"points"`
	Summary ItemSummary   `json:"summary" yaml:"summary"`

	// Unordered lists dates the tolerant parser could not read. Their
	// records keep their insertion position relative to their neighbours.
	Unordered []string `json:"unordered,omitempty" yaml:"unordered,omitempty"`
}

// Prices returns the price column of the series.
func (s *ItemTimeSeries) Prices() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Price
	}
	return out
}

// Quantities returns the quantity column of the series, or nil when any
// point has no quantity.
func (s *ItemTimeSeries) Quantities() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		if !p.HasQuantity {
			return nil
		}
		out[i] = p.Quantity
	}
	return out
}
