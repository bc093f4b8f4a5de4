package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/collector"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/notifier"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/scheduler"
)

func newWatchCmd() *cobra.Command {
	var (
		cronSpec   string
		runOnStart bool
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run the analysis of the input on a cron schedule",
		Long: `Re-run the full analysis whenever the schedule fires, printing each item
and appending snapshots to the report file. The schedule has six fields with
seconds first, e.g. "0 */15 * * * *". Stop with Ctrl+C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a := current
			if a.cfg.Input.Path == "" {
				return fmt.Errorf("no input file: pass --input or set input.path")
			}
			if cronSpec == "" {
				cronSpec = a.cfg.Schedule.WatchCron
			}

			exp, err := a.exporter()
			if err != nil {
				return err
			}
			defer exp.Close()

			src := collector.NewCSVSource(a.cfg.Input.Path, a.cfg.Delimiter(), a.log)
			sched := scheduler.NewScheduler(ctx,
				collector.NewCollector(src, a.log),
				a.analyzer,
				exp,
				notifier.NewWriterNotifier(cmd.OutOrStdout()),
				a.log,
			)
			sched.AfterRun = func() {
				if err := a.writeMetrics(); err != nil {
					a.log.Error().Err(err).Msg("write metrics")
				}
			}
			if err := sched.RegisterWatch(cronSpec); err != nil {
				return err
			}

			if runOnStart {
				if err := sched.RunNow(); err != nil {
					a.log.Error().Err(err).Msg("initial run failed")
				}
			}

			sched.Start()
			a.log.Info().Str("cron", cronSpec).Str("input", a.cfg.Input.Path).Msg("watching. Press Ctrl+C to stop.")
			<-ctx.Done()
			a.log.Info().Msg("shutdown signal received, stopping")
			sched.Stop()
			return nil
		},
	}
	cmd.Flags().StringVar(&cronSpec, "cron", "", "Cron schedule (default from schedule.watch_cron)")
	cmd.Flags().BoolVar(&runOnStart, "run-on-start", true, "Run once immediately before waiting for the schedule")
	return cmd
}
