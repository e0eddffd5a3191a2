package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	expensesIngested     *prometheus.CounterVec
	anomaliesDetected    *prometheus.CounterVec
	expenseAddDuration   prometheus.Histogram
	csvBatchesProcessed  prometheus.Counter
	csvBatchDuration     prometheus.Histogram
	csvLastBatchFailures prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		expensesIngested: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expenses_ingested_total",
				Help: "Total number of expenses persisted",
			},
			[]string{"category"},
		),
		anomaliesDetected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expense_anomalies_detected_total",
				Help: "Total number of expenses flagged as anomalous",
			},
			[]string{"category"},
		),
		expenseAddDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "expense_add_duration_milliseconds",
				Help:    "Single expense ingestion duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		csvBatchesProcessed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "csv_batches_processed_total",
				Help: "Total number of CSV batch uploads processed",
			},
		),
		csvBatchDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "csv_batch_duration_milliseconds",
				Help:    "CSV batch processing duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		csvLastBatchFailures: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "csv_last_batch_failed_rows",
				Help: "Number of failed rows in the most recent CSV batch",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	category := tags["category"]

	switch name {
	case "expense.ingested":
		m.expensesIngested.WithLabelValues(category).Inc()
	case "expense.anomaly_detected":
		m.anomaliesDetected.WithLabelValues(category).Inc()
	case "csv.batch_processed":
		m.csvBatchesProcessed.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "expense.add":
		m.expenseAddDuration.Observe(float64(duration.Milliseconds()))
	case "csv.batch":
		m.csvBatchDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "csv.last_batch_failures":
		m.csvLastBatchFailures.Set(value)
	}
}
