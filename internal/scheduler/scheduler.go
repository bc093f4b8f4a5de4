package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/analyzer"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/collector"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/notifier"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/report"
)

// Scheduler re-runs the analysis of the input on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Analyzer  *analyzer.Analyzer
	Exporter  report.Exporter
	Notifier  notifier.Notifier
	Log       zerolog.Logger
	Ctx       context.Context

	// AfterRun, when set, is called at the end of every run while the run
	// lock is still held.
	AfterRun func()

	mu   sync.Mutex
	runs int
	now  func() time.Time
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, an *analyzer.Analyzer, exp report.Exporter, n notifier.Notifier, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Analyzer:  an,
		Exporter:  exp,
		Notifier:  n,
		Log:       log,
		Ctx:       ctx,
		now:       time.Now,
	}
}

// RegisterWatch registers the watch task on spec (six fields, seconds first).
func (s *Scheduler) RegisterWatch(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.watchTask); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Log.Info().Int("entries", len(s.Cron.Entries())).Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for a running task to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Log.Info().Msg("scheduler stopped")
}

// RunNow executes the watch task immediately.
func (s *Scheduler) RunNow() error {
	return s.run()
}

// Runs returns the number of completed runs.
func (s *Scheduler) Runs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runs
}

func (s *Scheduler) watchTask() {
	if err := s.run(); err != nil {
		s.Log.Error().Err(err).Msg("watch run failed")
	}
}

func (s *Scheduler) run() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.AfterRun != nil {
		defer s.AfterRun()
	}

	s.Log.Info().Msg("running watch task")
	records, err := s.Collector.Collect(s.Ctx)
	if err != nil {
		s.trySend(fmt.Sprintf("collect failed: %v\n", err))
		return fmt.Errorf("collect: %w", err)
	}

	results, err := s.Analyzer.AnalyzeAll(s.Ctx, records)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	now := s.now()
	snaps := make([]*report.Snapshot, len(results))
	for i, r := range results {
		snaps[i] = report.NewSnapshot(r, now)
		s.trySend(notifier.FormatItemAnalysis(r, now))
	}
	if err := s.Exporter.Export(snaps...); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	s.runs++
	return nil
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Send(text); err != nil {
		s.Log.Error().Err(err).Msg("send notification")
	}
}
