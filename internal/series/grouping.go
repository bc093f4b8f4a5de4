// Package series turns raw purchase records into per-item time series and
// compares items with each other.
package series

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/model"
)

// DefaultItem names records that carry no item.
const DefaultItem = "Default item"

// Groups partitions records by item, keeping insertion order within each item.
type Groups struct {
	byItem map[string][]model.PriceRecord
}

// ItemName returns the trimmed item of r, or DefaultItem when it is empty.
func ItemName(r model.PriceRecord) string {
	name := strings.TrimSpace(r.Item)
	if name == "" {
		return DefaultItem
	}
	return name
}

// GroupByItem partitions records by item name.
func GroupByItem(records []model.PriceRecord) *Groups {
	g := &Groups{byItem: make(map[string][]model.PriceRecord)}
	for _, r := range records {
		name := ItemName(r)
		g.byItem[name] = append(g.byItem[name], r)
	}
	return g
}

// Items returns the item names in alphabetical order.
func (g *Groups) Items() []string {
	names := make([]string, 0, len(g.byItem))
	for name := range g.byItem {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Records returns the records of item in insertion order.
func (g *Groups) Records(item string) []model.PriceRecord {
	return g.byItem[item]
}

// Len returns the number of distinct items.
func (g *Groups) Len() int {
	return len(g.byItem)
}

type datedRecord struct {
	rec    model.PriceRecord
	at     time.Time
	parsed bool
}

// BuildItemTimeSeries selects the records of item and sorts them by date.
// The sort is stable and any pair involving an unparseable date compares as
// equal, so such records are not moved relative to their neighbours. Their
// dates are reported in Unordered for the caller to surface; the order of a
// series containing them is only partially chronological. Returns nil when
// the item has no records.
func BuildItemTimeSeries(records []model.PriceRecord, item string) *model.ItemTimeSeries {
	var selected []datedRecord
	var unordered []string
	for _, r := range records {
		if ItemName(r) != item {
			continue
		}
		at, ok := ParseDate(r.Date)
		if !ok {
			unordered = append(unordered, r.Date)
		}
		selected = append(selected, datedRecord{rec: r, at: at, parsed: ok})
	}
	if len(selected) == 0 {
		return nil
	}

	sort.SliceStable(selected, func(i, j int) bool {
		a, b := selected[i], selected[j]
		if !a.parsed || !b.parsed {
			return false
		}
		return a.at.Before(b.at)
	})

	ts := &model.ItemTimeSeries{
		Item:      item,
		Points:    make([]model.SeriesPoint, len(selected)),
		Unordered: unordered,
	}
	sum := 0.0
	minP, maxP := math.Inf(1), math.Inf(-1)
	for i, d := range selected {
		pt := model.SeriesPoint{Date: d.rec.Date, Price: d.rec.Price}
		if d.rec.Quantity != nil {
			pt.Quantity = *d.rec.Quantity
			pt.HasQuantity = true
		}
		ts.Points[i] = pt
		sum += d.rec.Price
		minP = math.Min(minP, d.rec.Price)
		maxP = math.Max(maxP, d.rec.Price)
		ts.Summary.TotalQuantity += pt.Quantity
	}
	ts.Summary.Count = len(selected)
	ts.Summary.MinPrice = minP
	ts.Summary.MaxPrice = maxP
	ts.Summary.AvgPrice = sum / float64(len(selected))
	ts.Summary.FirstDate = ts.Points[0].Date
	ts.Summary.LastDate = ts.Points[len(ts.Points)-1].Date
	return ts
}

// AlignItemsByDate inner-joins the prices of two items on the calendar day
// of their records (see DateKey). When an item has several records on one
// day the last one wins. Dates are returned as YYYY-MM-DD in ascending order.
func AlignItemsByDate(records []model.PriceRecord, itemA, itemB string) model.AlignedSeries {
	pricesA := make(map[string]float64)
	pricesB := make(map[string]float64)
	for _, r := range records {
		name := ItemName(r)
		if name == itemA {
			pricesA[DateKey(r.Date)] = r.Price
		}
		if name == itemB {
			pricesB[DateKey(r.Date)] = r.Price
		}
	}

	dates := make([]string, 0, len(pricesA))
	for d := range pricesA {
		if _, ok := pricesB[d]; ok {
			dates = append(dates, d)
		}
	}
	sort.Strings(dates)

	out := model.AlignedSeries{
		Dates:   dates,
		PricesA: make([]float64, len(dates)),
		PricesB: make([]float64, len(dates)),
	}
	for i, d := range dates {
		out.PricesA[i] = pricesA[d]
		out.PricesB[i] = pricesB[d]
	}
	return out
}
