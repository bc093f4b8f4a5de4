package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/analyzer"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/calculator"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/collector"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/config"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/logger"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/metrics"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/model"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/report"
)

// Global flags
var (
	configPath  string
	logLevel    string
	metricsFile string
	inputPath   string
)

// app carries everything built from config for one invocation.
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	closer   io.Closer
	metrics  *metrics.Recorder
	analyzer *analyzer.Analyzer
}

var current *app

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pricedev",
		Short: "Procurement price deviation analysis",
		Long: `pricedev analyses historical purchase prices per item: descriptive statistics,
trend regression, forecast bands, decision buckets, cross-item correlation and
the RDA price-alert verdict for a newly offered price.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return teardown()
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "configs/config.yaml", "Path to configuration file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log level (trace|debug|info|warn|error)")
	root.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus textfile metrics here on exit")
	root.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "CSV file with date,price[,quantity][,item] columns")

	root.AddCommand(newItemsCmd(), newAnalyzeCmd(), newRdaCmd(), newCorrelateCmd(), newWatchCmd())
	return root
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if inputPath != "" {
		cfg.Input.Path = inputPath
	}
	if metricsFile != "" {
		cfg.Metrics.File = metricsFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closer, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	mode, err := calculator.ParseMode(cfg.Analysis.RegressionMode)
	if err != nil {
		return err
	}

	rec := metrics.New()
	current = &app{
		cfg:     cfg,
		log:     log,
		closer:  closer,
		metrics: rec,
		analyzer: analyzer.New(analyzer.Options{
			Mode:            mode,
			ForecastPeriods: cfg.Analysis.ForecastPeriods,
			Workers:         cfg.Analysis.Workers,
			Rules:           cfg.Rda,
		}, log, rec),
	}
	log.Debug().Str("config", configPath).Str("mode", string(mode)).Msg("configuration loaded")
	return nil
}

func teardown() error {
	if current == nil {
		return nil
	}
	defer current.closer.Close()
	return current.writeMetrics()
}

func (a *app) writeMetrics() error {
	if a.cfg.Metrics.File == "" {
		return nil
	}
	return a.metrics.WriteTextfile(a.cfg.Metrics.File)
}

func (a *app) loadRecords(ctx context.Context) ([]model.PriceRecord, error) {
	if a.cfg.Input.Path == "" {
		return nil, fmt.Errorf("no input file: pass --input or set input.path")
	}
	src := collector.NewCSVSource(a.cfg.Input.Path, a.cfg.Delimiter(), a.log)
	return collector.NewCollector(src, a.log).Collect(ctx)
}

func (a *app) exporter() (report.Exporter, error) {
	if a.cfg.Report.Path == "" {
		return report.NewNoopExporter(), nil
	}
	return report.NewFileExporter(a.cfg.Report.Path, a.log)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
