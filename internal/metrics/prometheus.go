package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for RecordAnalysis.
const (
	OutcomeOK      = "ok"
	OutcomeNoData  = "no_data"
	OutcomeFailure = "failure"
)

// Metrics is the sink the analyzer reports to.
type Metrics interface {
	RecordAnalysis(operation, outcome string)
	RecordVerdict(status string)
	RecordLatency(operation string, seconds float64)
}

// Recorder implements Metrics using Prometheus. Each Recorder owns its own
// registry so several can coexist in one process.
type Recorder struct {
	registry *prometheus.Registry
	analyses *prometheus.CounterVec
	verdicts *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		analyses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricedev_analyses_total",
				Help: "Total number of analysis steps by outcome",
			},
			[]string{"operation", "outcome"},
		),
		verdicts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricedev_verdicts_total",
				Help: "Total number of RDA verdicts by status",
			},
			[]string{"status"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pricedev_analysis_duration_seconds",
				Help:    "Duration of analysis operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordAnalysis counts one analysis step.
func (r *Recorder) RecordAnalysis(operation, outcome string) {
	r.analyses.WithLabelValues(operation, outcome).Inc()
}

// RecordVerdict counts one RDA verdict.
func (r *Recorder) RecordVerdict(status string) {
	r.verdicts.WithLabelValues(status).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(operation string, seconds float64) {
	r.latency.WithLabelValues(operation).Observe(seconds)
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile dumps the current values in the node-exporter textfile format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}

// Noop discards everything.
type Noop struct{}

func (Noop) RecordAnalysis(string, string) {}
func (Noop) RecordVerdict(string)          {}
func (Noop) RecordLatency(string, float64) {}
