package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/notifier"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/series"
)

func newCorrelateCmd() *cobra.Command {
	var (
		itemA, itemB string
		window       int
		all          bool
	)
	cmd := &cobra.Command{
		Use:   "correlate",
		Short: "Correlate the prices of two items on their common dates",
		Long: `Correlate two items, optionally with a rolling window, or every pair of items.

Examples:
  pricedev correlate -i purchases.csv --a "Bolts" --b "Nuts" --window 5
  pricedev correlate -i purchases.csv --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			records, err := current.loadRecords(ctx)
			if err != nil {
				return err
			}
			out := notifier.NewWriterNotifier(cmd.OutOrStdout())

			if all {
				pairs := series.AllPairs(records)
				if len(pairs) == 0 {
					return out.Send("No item pair shares enough dates\n")
				}
				for i := range pairs {
					if err := out.Send(notifier.FormatCorrelation(&pairs[i], nil)); err != nil {
						return err
					}
				}
				return nil
			}

			if itemA == "" || itemB == "" {
				return fmt.Errorf("--a and --b are required unless --all is set")
			}
			if !cmd.Flags().Changed("window") {
				window = current.cfg.Analysis.RollingWindow
			}
			res, rolling, err := current.analyzer.Correlate(ctx, records, itemA, itemB, window)
			if err != nil {
				return err
			}
			return out.Send(notifier.FormatCorrelation(res, rolling))
		},
	}
	cmd.Flags().StringVar(&itemA, "a", "", "First item")
	cmd.Flags().StringVar(&itemB, "b", "", "Second item")
	cmd.Flags().IntVar(&window, "window", 0, "Rolling window size (0 disables)")
	cmd.Flags().BoolVar(&all, "all", false, "Correlate every pair of items")
	return cmd
}
