package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/model"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/notifier"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/report"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		item       string
		price      float64
		reportPath string
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the full analysis for one item or for every item",
		Long: `Run statistics, regression, forecast bands, decision buckets and series
dynamics. With --item and --price the offered price is also evaluated.

Examples:
  pricedev analyze -i purchases.csv
  pricedev analyze -i purchases.csv --item "Steel bolts M8" --price 0.42
  pricedev analyze -i purchases.csv --report out/report.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if reportPath != "" {
				current.cfg.Report.Path = reportPath
			}
			records, err := current.loadRecords(ctx)
			if err != nil {
				return err
			}

			var results []*model.ItemAnalysis
			if item != "" {
				var np *float64
				if cmd.Flags().Changed("price") {
					np = &price
				}
				res, err := current.analyzer.AnalyzeItem(ctx, records, item, np)
				if err != nil {
					return err
				}
				results = []*model.ItemAnalysis{res}
			} else {
				if cmd.Flags().Changed("price") {
					return fmt.Errorf("--price needs --item")
				}
				results, err = current.analyzer.AnalyzeAll(ctx, records)
				if err != nil {
					return err
				}
			}

			exp, err := current.exporter()
			if err != nil {
				return err
			}
			defer exp.Close()

			now := time.Now()
			out := notifier.NewWriterNotifier(cmd.OutOrStdout())
			snaps := make([]*report.Snapshot, len(results))
			for i, r := range results {
				snaps[i] = report.NewSnapshot(r, now)
				if err := out.Send(notifier.FormatItemAnalysis(r, now) + "\n"); err != nil {
					return err
				}
			}
			return exp.Export(snaps...)
		},
	}
	cmd.Flags().StringVar(&item, "item", "", "Analyse only this item")
	cmd.Flags().Float64Var(&price, "price", 0, "Offered price to evaluate (requires --item)")
	cmd.Flags().StringVar(&reportPath, "report", "", "Append YAML snapshots to this file")
	return cmd
}
