package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/notifier"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/series"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/strategy"
)

func newRdaCmd() *cobra.Command {
	var (
		item     string
		price    float64
		expected float64
	)
	cmd := &cobra.Command{
		Use:   "rda",
		Short: "Evaluate an offered price for an item",
		Long: `Evaluate an offered (RDA) price against the item's history. The expected
price defaults to the regression prediction; --expected overrides it.

Examples:
  pricedev rda -i purchases.csv --item "Steel bolts M8" --price 0.31
  pricedev rda -i purchases.csv --item "Steel bolts M8" --price 0.31 --expected 0.45`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			records, err := current.loadRecords(ctx)
			if err != nil {
				return err
			}
			out := notifier.NewWriterNotifier(cmd.OutOrStdout())

			if cmd.Flags().Changed("expected") {
				ts := series.BuildItemTimeSeries(records, item)
				if ts == nil {
					return fmt.Errorf("unknown item %q", item)
				}
				v := strategy.NewEvaluator(current.cfg.Rda).Evaluate(ts.Prices(), price, expected)
				current.metrics.RecordVerdict(string(v.Status))
				return out.Send(notifier.FormatVerdict(&v))
			}

			res, err := current.analyzer.AnalyzeItem(ctx, records, item, &price)
			if err != nil {
				return err
			}
			if res.Verdict == nil {
				return fmt.Errorf("no regression for %q: pass --expected", item)
			}
			return out.Send(notifier.FormatVerdict(res.Verdict))
		},
	}
	cmd.Flags().StringVar(&item, "item", "", "Item to evaluate")
	cmd.Flags().Float64Var(&price, "price", 0, "Offered price")
	cmd.Flags().Float64Var(&expected, "expected", 0, "Expected price (default: regression prediction)")
	_ = cmd.MarkFlagRequired("item")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}
