package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds all Prometheus metrics for the inspection server. Each
// Metrics value carries its own registry so tests can build isolated
// instances without duplicate-registration panics.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	tableLoadsTotal   *prometheus.CounterVec
	tableLoadDuration prometheus.Histogram
	tableRecords      prometheus.Gauge
	tableTombstones   prometheus.Gauge
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fertbase_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fertbase_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		tableLoadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fertbase_table_loads_total",
				Help: "Total number of table load attempts",
			},
			[]string{"status"},
		),

		tableLoadDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fertbase_table_load_duration_seconds",
				Help:    "Table load duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),

		tableRecords: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "fertbase_table_records",
				Help: "Record count of the last loaded table, tombstones included",
			},
		),

		tableTombstones: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "fertbase_table_tombstones",
				Help: "Tombstoned record count of the last loaded table",
			},
		),
	}
}

// RecordTableLoad records one table load attempt
func (m *Metrics) RecordTableLoad(success bool, duration time.Duration) {
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.tableLoadsTotal.WithLabelValues(status).Inc()
	m.tableLoadDuration.Observe(duration.Seconds())
}

// UpdateTableStats updates the table gauges
func (m *Metrics) UpdateTableStats(records, tombstones int) {
	m.tableRecords.Set(float64(records))
	m.tableTombstones.Set(float64(tombstones))
}

// InstrumentHandler instruments an HTTP handler with request metrics
func (m *Metrics) InstrumentHandler(method, endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		handler(rw, r)

		m.httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
