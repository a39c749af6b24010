// Package metrics exposes Prometheus instrumentation for the transcription
// pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Pipeline holds the collectors recorded by transcription runs.
type Pipeline struct {
	runs          *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
	inFlight      prometheus.Gauge
	pollAttempts  prometheus.Histogram
}

// NewPipeline builds the collectors and registers them with the given
// registerer. Pass prometheus.DefaultRegisterer in production.
func NewPipeline(reg prometheus.Registerer) *Pipeline {
	m := &Pipeline{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lecturescribe",
			Name:      "transcription_runs_total",
			Help:      "Transcription runs by outcome.",
		}, []string{"outcome"}),
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lecturescribe",
			Name:      "pipeline_stage_duration_seconds",
			Help:      "Wall time spent in each pipeline stage.",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
		}, []string{"stage"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lecturescribe",
			Name:      "transcription_runs_in_flight",
			Help:      "Transcription runs currently executing.",
		}),
		pollAttempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lecturescribe",
			Name:      "provider_poll_attempts",
			Help:      "Status queries issued per run before completion or timeout.",
			Buckets:   prometheus.LinearBuckets(1, 2, 10),
		}),
	}
	reg.MustRegister(m.runs, m.stageDuration, m.inFlight, m.pollAttempts)
	return m
}

func (m *Pipeline) RunStarted() {
	if m == nil {
		return
	}
	m.inFlight.Inc()
}

func (m *Pipeline) RunFinished(outcome string) {
	if m == nil {
		return
	}
	m.inFlight.Dec()
	m.runs.WithLabelValues(outcome).Inc()
}

func (m *Pipeline) ObserveStage(stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (m *Pipeline) ObservePollAttempts(n int) {
	if m == nil {
		return
	}
	m.pollAttempts.Observe(float64(n))
}
