package scheduler

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/analyzer"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/collector"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/model"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/notifier"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/report"
)

func newTestScheduler(t *testing.T, src collector.Source, exp report.Exporter, out *bytes.Buffer) *Scheduler {
	t.Helper()
	log := zerolog.Nop()
	s := NewScheduler(
		context.Background(),
		collector.NewCollector(src, log),
		analyzer.New(analyzer.Options{Workers: 2}, log, nil),
		exp,
		notifier.NewWriterNotifier(out),
		log,
	)
	s.now = func() time.Time { return time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC) }
	return s
}

var sample = []model.PriceRecord{
	{Date: "2024-01-01", Price: 10, Item: "A"},
	{Date: "2024-01-02", Price: 12, Item: "A"},
	{Date: "2024-01-03", Price: 11, Item: "A"},
	{Date: "2024-01-01", Price: 5, Item: "B"},
}

func TestRunNow_ExportsAndNotifies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watch.yaml")
	exp, err := report.NewFileExporter(path, zerolog.Nop())
	require.NoError(t, err)

	var out bytes.Buffer
	s := newTestScheduler(t, &collector.MockSource{Records: sample}, exp, &out)

	called := 0
	s.AfterRun = func() { called++ }

	require.NoError(t, s.RunNow())
	require.NoError(t, s.RunNow())
	require.NoError(t, exp.Close())

	assert.Equal(t, 2, s.Runs())
	assert.Equal(t, 2, called)
	assert.Contains(t, out.String(), "== A | 2024-06-01 08:00 ==")
	assert.Contains(t, out.String(), "== B |")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	snaps, err := report.ReadSnapshots(f)
	require.NoError(t, err)
	assert.Len(t, snaps, 4)
}

func TestRunNow_CollectFailure(t *testing.T) {
	var out bytes.Buffer
	s := newTestScheduler(t, &collector.MockSource{Err: errors.New("disk gone")}, report.NewNoopExporter(), &out)

	err := s.RunNow()
	require.Error(t, err)
	assert.Contains(t, out.String(), "collect failed")
	assert.Equal(t, 0, s.Runs())
}

func TestRegisterWatch(t *testing.T) {
	var out bytes.Buffer
	s := newTestScheduler(t, &collector.MockSource{Records: sample}, report.NewNoopExporter(), &out)

	assert.Error(t, s.RegisterWatch("not a cron"))
	require.NoError(t, s.RegisterWatch("*/1 * * * * *"))
	assert.Len(t, s.Cron.Entries(), 1)
}

func TestStartStop_RunsOnSchedule(t *testing.T) {
	var out bytes.Buffer
	s := newTestScheduler(t, &collector.MockSource{Records: sample}, report.NewNoopExporter(), &out)
	require.NoError(t, s.RegisterWatch("* * * * * *"))

	s.Start()
	assert.Eventually(t, func() bool { return s.Runs() > 0 }, 5*time.Second, 50*time.Millisecond)
	s.Stop()
}
