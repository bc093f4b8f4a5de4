package analyzer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/calculator"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/metrics"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/model"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/series"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/strategy"
)

// ErrUnknownItem is returned when no record belongs to the requested item.
var ErrUnknownItem = errors.New("unknown item")

// Options configures an Analyzer.
type Options struct {
	Mode            model.RegressionMode
	ForecastPeriods int
	Workers         int
	Rules           strategy.Rules
}

// Analyzer runs complete analysis passes over purchase records.
type Analyzer struct {
	opts    Options
	eval    *strategy.Evaluator
	log     zerolog.Logger
	metrics metrics.Metrics
}

// New creates an Analyzer. A nil m disables metrics.
func New(opts Options, log zerolog.Logger, m metrics.Metrics) *Analyzer {
	if opts.Mode == "" {
		opts.Mode = model.ModeStandard
	}
	if opts.ForecastPeriods <= 0 {
		opts.ForecastPeriods = calculator.DefaultFuturePoints
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Rules == (strategy.Rules{}) {
		opts.Rules = strategy.DefaultRules()
	}
	if m == nil {
		m = metrics.Noop{}
	}
	return &Analyzer{
		opts:    opts,
		eval:    strategy.NewEvaluator(opts.Rules),
		log:     log,
		metrics: m,
	}
}

// AnalyzeItem runs every step for one item. Steps without a result are
// logged and left nil. When newPrice is set, the verdict is computed
// against the regression prediction.
func (a *Analyzer) AnalyzeItem(ctx context.Context, records []model.PriceRecord, item string, newPrice *float64) (*model.ItemAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	defer func() {
		a.metrics.RecordLatency("analyze_item", time.Since(start).Seconds())
	}()
	log := a.log.With().Str("item", item).Logger()

	ts := series.BuildItemTimeSeries(records, item)
	if ts == nil {
		a.metrics.RecordAnalysis("series", metrics.OutcomeNoData)
		return nil, fmt.Errorf("%w: %q", ErrUnknownItem, item)
	}
	if len(ts.Unordered) > 0 {
		log.Warn().Strs("dates", ts.Unordered).Msg("unparseable dates left in insertion order")
	}
	a.metrics.RecordAnalysis("series", metrics.OutcomeOK)

	prices := ts.Prices()
	res := &model.ItemAnalysis{
		Item:     item,
		Series:   ts,
		Stats:    calculator.Describe(prices),
		Dynamics: calculator.Dynamics(prices),
		NewPrice: newPrice,
	}

	// Regression
	var quantities []float64
	if a.opts.Mode == model.ModeAdvanced {
		if q := ts.Quantities(); q != nil && calculator.HasValidQuantities(q) {
			quantities = q
		} else {
			log.Warn().Msg("quantities missing or unusable, advanced mode falls back to standard")
		}
	}
	res.Regression = calculator.SelectRegression(a.opts.Mode, prices, quantities)
	if res.Regression == nil {
		log.Warn().Int("points", len(prices)).Msg("regression has no result")
		a.metrics.RecordAnalysis("regression", metrics.OutcomeNoData)
	} else {
		a.metrics.RecordAnalysis("regression", metrics.OutcomeOK)
	}

	// Forecast bands need the standard-form line
	std, ok := res.Regression.(*model.StandardFit)
	if !ok {
		std = calculator.LinearRegression(prices)
	}
	res.Forecast = calculator.ForecastBands(prices, std, a.opts.ForecastPeriods)
	if res.Forecast == nil {
		a.metrics.RecordAnalysis("forecast", metrics.OutcomeNoData)
	} else {
		a.metrics.RecordAnalysis("forecast", metrics.OutcomeOK)
	}

	if res.Regression == nil {
		return res, nil
	}
	predicted := res.Regression.PredictedPrice()

	// Decision buckets
	buckets, err := calculator.DecisionBuckets(prices, predicted)
	switch {
	case errors.Is(err, calculator.ErrInsufficientData):
		log.Debug().Msg("too few prices for decision buckets")
		a.metrics.RecordAnalysis("buckets", metrics.OutcomeNoData)
	case err != nil:
		a.metrics.RecordAnalysis("buckets", metrics.OutcomeFailure)
		return nil, fmt.Errorf("decision buckets for %q: %w", item, err)
	default:
		res.Buckets = buckets
		a.metrics.RecordAnalysis("buckets", metrics.OutcomeOK)
	}

	// Verdict
	if newPrice != nil {
		if predicted != 0 {
			dev := (*newPrice - predicted) / predicted * 100
			res.Deviation = &dev
		}
		v := a.eval.Evaluate(prices, *newPrice, predicted)
		res.Verdict = &v
		a.metrics.RecordAnalysis("rda", metrics.OutcomeOK)
		a.metrics.RecordVerdict(string(v.Status))
		log.Info().Str("status", string(v.Status)).Float64("rda", *newPrice).Float64("expected", predicted).Msg("price evaluated")
	}

	return res, nil
}

// AnalyzeAll analyzes every item on a bounded pool of workers. Results are
// ordered by item name. The first error cancels the remaining work.
func (a *Analyzer) AnalyzeAll(ctx context.Context, records []model.PriceRecord) ([]*model.ItemAnalysis, error) {
	groups := series.GroupByItem(records)
	items := groups.Items()
	results := make([]*model.ItemAnalysis, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.Workers)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			res, err := a.AnalyzeItem(gctx, groups.Records(item), item, nil)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	a.log.Info().Int("items", len(items)).Int("records", len(records)).Msg("analysis complete")
	return results, nil
}

// Correlate compares two items and, when window is at least 2, adds the
// rolling correlation over their aligned series.
func (a *Analyzer) Correlate(ctx context.Context, records []model.PriceRecord, itemA, itemB string, window int) (*model.CorrelationResult, []model.RollingPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	aligned := series.AlignItemsByDate(records, itemA, itemB)
	res := series.CorrelateAligned(aligned, itemA, itemB)
	if res == nil {
		a.log.Warn().Str("item_a", itemA).Str("item_b", itemB).Int("common_dates", aligned.Len()).
			Msg("too few common dates to correlate")
		a.metrics.RecordAnalysis("correlation", metrics.OutcomeNoData)
		return nil, nil, nil
	}
	a.metrics.RecordAnalysis("correlation", metrics.OutcomeOK)

	var rolling []model.RollingPoint
	if window >= 2 {
		rolling = series.RollingCorrelation(aligned, window)
	}
	return res, rolling, nil
}
