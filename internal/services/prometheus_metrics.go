package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	datasetsLoaded  *prometheus.CounterVec
	datasetsDeleted prometheus.Counter
	loadFailures    *prometheus.CounterVec
	rowsSkipped     *prometheus.CounterVec
	datasetRows     *prometheus.HistogramVec
	loadDuration    prometheus.Histogram
	scoringDuration prometheus.Histogram
	completionRatio prometheus.Gauge
	realizedSavings prometheus.Histogram
}

// NewPrometheusMetrics registers the explorer's collectors with reg.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		datasetsLoaded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "datasets_loaded_total",
				Help: "Total number of datasets loaded",
			},
			[]string{"source"},
		),
		datasetsDeleted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "datasets_deleted_total",
				Help: "Total number of datasets deleted",
			},
		),
		loadFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dataset_load_failures_total",
				Help: "Total number of rejected dataset uploads",
			},
			[]string{"reason"},
		),
		rowsSkipped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dataset_rows_skipped_total",
				Help: "Total number of malformed rows skipped while loading",
			},
			[]string{"source"},
		),
		datasetRows: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dataset_rows",
				Help:    "Number of records per loaded dataset",
				Buckets: prometheus.ExponentialBuckets(10, 10, 5),
			},
			[]string{"source"},
		),
		loadDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dataset_load_duration_milliseconds",
				Help:    "Dataset load and store duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		scoringDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dataset_scoring_duration_seconds",
				Help:    "Quality scoring duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		completionRatio: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "dataset_completion_ratio",
				Help: "Completion ratio of the most recently scored dataset",
			},
		),
		realizedSavings: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "realized_savings",
				Help:    "Realized savings per savings calculation in currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 6),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "dataset.loaded":
		if source := tags["source"]; source != "" {
			m.datasetsLoaded.WithLabelValues(source).Inc()
		}
	case "dataset.load.failed":
		m.loadFailures.WithLabelValues(tags["reason"]).Inc()
	case "dataset.deleted":
		m.datasetsDeleted.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "dataset.load":
		m.loadDuration.Observe(float64(duration.Milliseconds()))
	case "dataset.scoring":
		m.scoringDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	source := tags["source"]
	switch name {
	case "dataset.completion_ratio":
		m.completionRatio.Set(value)
	case "dataset.rows":
		if source != "" {
			m.datasetRows.WithLabelValues(source).Observe(value)
		}
	case "dataset.rows_skipped":
		if source != "" {
			m.rowsSkipped.WithLabelValues(source).Add(value)
		}
	case "savings.realized":
		m.realizedSavings.Observe(value)
	}
}
