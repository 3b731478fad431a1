// Package metrics метрики Prometheus для проходов по расписанию
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Freeeeeet/class_highlighter/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ScanMetrics метрики проходов и напоминаний
type ScanMetrics struct {
	TicksTotal          prometheus.Counter
	SourceErrorsTotal   prometheus.Counter
	RowsByStatus        *prometheus.GaugeVec
	SkippedRows         prometheus.Gauge
	NotificationsSent   prometheus.Counter
	ScanDurationSeconds prometheus.Histogram

	registry *prometheus.Registry
}

// NewScanMetrics создаёт метрики и регистрирует их в registry
func NewScanMetrics(registry *prometheus.Registry) (*ScanMetrics, error) {
	m := &ScanMetrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, fmt.Errorf("failed to register scan metrics: %w", err)
	}
	return m, nil
}

func (m *ScanMetrics) initMetrics() {
	m.TicksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "class_highlighter_ticks_total",
		Help: "Total number of completed schedule scans",
	})

	m.SourceErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "class_highlighter_source_errors_total",
		Help: "Total number of scans aborted because the class table could not be read",
	})

	m.RowsByStatus = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "class_highlighter_rows",
			Help: "Number of today's rows by status in the last scan",
		},
		[]string{"status"}, // upcoming, ongoing, ended
	)

	m.SkippedRows = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "class_highlighter_skipped_rows",
		Help: "Number of rows skipped in the last scan (short, not today, unparsable time)",
	})

	m.NotificationsSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "class_highlighter_notifications_sent_total",
		Help: "Total number of class reminders sent",
	})

	m.ScanDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "class_highlighter_scan_duration_seconds",
		Help:    "Time taken by a single scan including table fetch and rendering",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 15},
	})
}

// Describe implements prometheus.Collector
func (m *ScanMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.TicksTotal.Describe(ch)
	m.SourceErrorsTotal.Describe(ch)
	m.RowsByStatus.Describe(ch)
	m.SkippedRows.Describe(ch)
	m.NotificationsSent.Describe(ch)
	m.ScanDurationSeconds.Describe(ch)
}

// Collect implements prometheus.Collector
func (m *ScanMetrics) Collect(ch chan<- prometheus.Metric) {
	m.TicksTotal.Collect(ch)
	m.SourceErrorsTotal.Collect(ch)
	m.RowsByStatus.Collect(ch)
	m.SkippedRows.Collect(ch)
	m.NotificationsSent.Collect(ch)
	m.ScanDurationSeconds.Collect(ch)
}

// ObserveScan записывает итоги прохода
func (m *ScanMetrics) ObserveScan(result model.ScanResult, sent int, took time.Duration) {
	m.TicksTotal.Inc()
	for _, kind := range []model.StatusKind{model.StatusUpcoming, model.StatusOngoing, model.StatusEnded} {
		m.RowsByStatus.WithLabelValues(string(kind)).Set(float64(result.Count(kind)))
	}
	m.SkippedRows.Set(float64(result.Skipped))
	if sent > 0 {
		m.NotificationsSent.Add(float64(sent))
	}
	m.ScanDurationSeconds.Observe(took.Seconds())
}

// ObserveSourceError учитывает проход, прерванный ошибкой чтения таблицы
func (m *ScanMetrics) ObserveSourceError() {
	m.SourceErrorsTotal.Inc()
}

// Handler HTTP-обработчик /metrics для registry
func (m *ScanMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
