package main

import (
	"github.com/spf13/cobra"

	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/notifier"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/series"
)

func newItemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "items",
		Short: "List the items found in the input with their record counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := current.loadRecords(cmd.Context())
			if err != nil {
				return err
			}
			groups := series.GroupByItem(records)
			items := groups.Items()
			counts := make(map[string]int, len(items))
			for _, it := range items {
				counts[it] = len(groups.Records(it))
			}
			return notifier.NewWriterNotifier(cmd.OutOrStdout()).Send(notifier.FormatItems(items, counts))
		},
	}
}
