package notifier

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/model"
)

// FormatItemAnalysis formats a full item analysis for terminal output.
func FormatItemAnalysis(a *model.ItemAnalysis, now time.Time) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("== %s | %s ==\n", a.Item, now.Format("2006-01-02 15:04")))

	if a.Series != nil {
		sum := a.Series.Summary
		b.WriteString(fmt.Sprintf("Records: %d (%s .. %s)\n", sum.Count, sum.FirstDate, sum.LastDate))
		if sum.TotalQuantity > 0 {
			b.WriteString(fmt.Sprintf("Total quantity: %.2f\n", sum.TotalQuantity))
		}
		if len(a.Series.Unordered) > 0 {
			b.WriteString(fmt.Sprintf("Unreadable dates: %s\n", strings.Join(a.Series.Unordered, ", ")))
		}
	}

	if s := a.Stats; s != nil {
		b.WriteString(fmt.Sprintf("Mean: %.2f | Median: %.2f | Std: %.2f\n", s.Mean, s.Median, s.Std))
		b.WriteString(fmt.Sprintf("Min: %.2f | Max: %.2f | Q1: %.2f | Q3: %.2f | IQR: %.2f\n",
			s.Min, s.Max, s.Q1, s.Q3, s.IQR))
	}

	b.WriteString("\n")
	b.WriteString(FormatRegression(a.Regression))

	if f := a.Forecast; f != nil && len(f.Predicted) > 0 {
		b.WriteString(fmt.Sprintf("\nForecast (sigma %.2f):\n", f.Sigma))
		for i, p := range f.Periods {
			b.WriteString(fmt.Sprintf("  t=%d: %.2f  [%.2f, %.2f] 95%%\n", p, f.Predicted[i], f.Lower2[i], f.Upper2[i]))
		}
	}

	if len(a.Buckets) > 0 {
		b.WriteString("\nDecision buckets:\n")
		for _, bk := range a.Buckets {
			b.WriteString(fmt.Sprintf("  %-20s %8.2f - %-8.2f %3d%%\n", bk.Label, bk.Min, bk.Max, bk.Probability))
		}
	}

	if d := a.Dynamics; d != nil {
		b.WriteString(fmt.Sprintf("\nAutocorrelation: %+.3f (%s %s)\n", d.AutoCorrelation, d.Strength, d.Direction))
		b.WriteString(fmt.Sprintf("Volatility: %.2f%% | Trend: %.3f | Momentum: %+.2f%%\n",
			d.Volatility, d.TrendStrength, d.Momentum))
	}

	if a.NewPrice != nil {
		b.WriteString(fmt.Sprintf("\nNew price: %.2f", *a.NewPrice))
		if a.Deviation != nil {
			b.WriteString(fmt.Sprintf(" (%+.2f%% vs prediction)", *a.Deviation))
		}
		b.WriteString("\n")
	}
	if a.Verdict != nil {
		b.WriteString(FormatVerdict(a.Verdict))
	}

	return b.String()
}

// FormatRegression formats either regression shape, or notes its absence.
func FormatRegression(r model.Regression) string {
	switch fit := r.(type) {
	case *model.StandardFit:
		return fmt.Sprintf("Regression (standard): price = %.4f %+.4f*t | R2 %.3f | next %.2f\n",
			fit.A, fit.B, fit.R2, fit.Predicted)
	case *model.AdvancedFit:
		return fmt.Sprintf("Regression (advanced): price = %.4f %+.4f*qty %+.4f*t | R2 %.3f | next %.2f at qty %.2f\n",
			fit.Alpha, fit.BetaQuantity, fit.BetaTime, fit.R2, fit.Predicted, fit.AvgQuantity)
	default:
		return "Regression: not enough data\n"
	}
}

// FormatVerdict formats an RDA verdict.
func FormatVerdict(v *model.RdaVerdict) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Verdict: %s\n", v.Status))
	for _, r := range v.Reasons {
		b.WriteString(fmt.Sprintf("  - %s\n", r))
	}
	b.WriteString(fmt.Sprintf("  %s\n", v.Comment))

	fence := "n/a"
	if !math.IsNaN(v.Details.LowerBoundIQR) {
		fence = fmt.Sprintf("%.2f", v.Details.LowerBoundIQR)
	}
	b.WriteString(fmt.Sprintf("  expected %.2f | IQR fence %s | deviation %+.2f%%\n",
		v.Details.ExpectedPrice, fence, v.Details.DeviationPerc))
	return b.String()
}

// FormatCorrelation formats a pairwise correlation and its optional
// rolling series.
func FormatCorrelation(c *model.CorrelationResult, rolling []model.RollingPoint) string {
	var b strings.Builder
	if c == nil {
		return "Correlation: fewer than 3 common dates\n"
	}
	b.WriteString(fmt.Sprintf("%s vs %s: r = %+.3f (%s, %s)\n", c.ItemA, c.ItemB, c.Correlation, c.Strength, c.Direction))
	sig := "not significant"
	if c.IsSignificant {
		sig = "significant"
	}
	b.WriteString(fmt.Sprintf("Common dates: %d, %s\n", c.CommonDates, sig))
	if len(rolling) > 0 {
		b.WriteString("Rolling:\n")
		for _, p := range rolling {
			b.WriteString(fmt.Sprintf("  %s %+.3f\n", p.Date, p.Correlation))
		}
	}
	return b.String()
}

// FormatItems lists items with their record counts.
func FormatItems(items []string, counts map[string]int) string {
	var b strings.Builder
	for _, it := range items {
		b.WriteString(fmt.Sprintf("%-30s %d\n", it, counts[it]))
	}
	return b.String()
}
