// Package metrics exposes Prometheus instruments for the aggregation cycle.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "job_aggregator"

// Metrics holds all instruments. A nil *Metrics is valid and records nothing.
type Metrics struct {
	CyclesTotal        *prometheus.CounterVec
	CycleDuration      prometheus.Histogram
	CycleRunning       prometheus.Gauge
	SourceRunsTotal    *prometheus.CounterVec
	PostingsScraped    *prometheus.CounterVec
	PostingsMerged     *prometheus.CounterVec
	AlertsCreatedTotal *prometheus.CounterVec
}

// New creates and registers all metrics on reg, or on the default registerer
// when reg is nil.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		CyclesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "cycles_total",
			Help:      "Total number of aggregation cycles by outcome",
		}, []string{"status"}),
		CycleDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "cycle_duration_seconds",
			Help:      "Duration of aggregation cycles",
			Buckets:   []float64{10, 30, 60, 300, 600, 1800, 3600, 7200},
		}),
		CycleRunning: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "cycle_running",
			Help:      "1 while a cycle is running",
		}),
		SourceRunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "aggregator",
			Name:      "source_runs_total",
			Help:      "Extractor runs by source and outcome",
		}, []string{"source", "status"}),
		PostingsScraped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "aggregator",
			Name:      "postings_scraped_total",
			Help:      "Postings returned by extractors",
		}, []string{"source"}),
		PostingsMerged: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "merge",
			Name:      "postings_total",
			Help:      "Merged postings by outcome (new, updated, failed)",
		}, []string{"outcome"}),
		AlertsCreatedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notify",
			Name:      "alerts_created_total",
			Help:      "Alerts created by kind",
		}, []string{"kind"}),
	}
}

func (m *Metrics) ObserveCycle(status string, d time.Duration) {
	if m == nil {
		return
	}
	m.CyclesTotal.WithLabelValues(status).Inc()
	m.CycleDuration.Observe(d.Seconds())
}

func (m *Metrics) SetCycleRunning(running bool) {
	if m == nil {
		return
	}
	if running {
		m.CycleRunning.Set(1)
		return
	}
	m.CycleRunning.Set(0)
}

func (m *Metrics) ObserveSourceRun(source, status string, found int) {
	if m == nil {
		return
	}
	m.SourceRunsTotal.WithLabelValues(source, status).Inc()
	m.PostingsScraped.WithLabelValues(source).Add(float64(found))
}

func (m *Metrics) ObserveMerge(newCount, updated, failed int) {
	if m == nil {
		return
	}
	m.PostingsMerged.WithLabelValues("new").Add(float64(newCount))
	m.PostingsMerged.WithLabelValues("updated").Add(float64(updated))
	m.PostingsMerged.WithLabelValues("failed").Add(float64(failed))
}

func (m *Metrics) ObserveAlert(kind string) {
	if m == nil {
		return
	}
	m.AlertsCreatedTotal.WithLabelValues(kind).Inc()
}
