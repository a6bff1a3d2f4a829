// Package metrics provides Prometheus metrics for the equiscore service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the equiscore service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Core business metrics
	evaluationsTotal   prometheus.Counter
	evaluationErrors   prometheus.Counter
	evaluationDuration prometheus.Histogram
	gradesAssigned     *prometheus.CounterVec
	aggregateScore     prometheus.Histogram

	// Report and intake metrics
	exportsTotal     *prometheus.CounterVec
	exportErrors     *prometheus.CounterVec
	intakeTotal      *prometheus.CounterVec
	intakeErrors     *prometheus.CounterVec
	templateRequests *prometheus.CounterVec

	// History metrics
	historySize         prometheus.Gauge
	historyWriteLatency prometheus.Histogram
	historyQueryLatency prometheus.Histogram

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error metrics
	errorsByComponent *prometheus.CounterVec
	errorsByEndpoint  *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "equiscore",
		subsystem:        "scorecard",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.evaluationsTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "evaluations_total",
		Help:      "Total number of scorecard evaluations completed",
	})

	m.evaluationErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "evaluation_errors_total",
		Help:      "Total number of failed scorecard evaluations",
	})

	m.evaluationDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "evaluation_duration_milliseconds",
		Help:      "Histogram of evaluation duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.gradesAssigned = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "grades_assigned_total",
			Help:      "Total number of grades assigned by indicator and grade",
		},
		[]string{"indicator", "grade"},
	)

	m.aggregateScore = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "aggregate_score",
		Help:      "Distribution of aggregate scores across evaluations",
		Buckets:   []float64{1, 1.5, 2, 2.5, 3, 3.5, 4, 4.5, 5},
	})

	m.exportsTotal = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "exports_total",
			Help:      "Total number of report exports by format",
		},
		[]string{"format"},
	)

	m.exportErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "export_errors_total",
			Help:      "Total number of failed report exports by format",
		},
		[]string{"format"},
	)

	m.intakeTotal = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "intake_files_total",
			Help:      "Total number of indicator files parsed by format",
		},
		[]string{"format"},
	)

	m.intakeErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "intake_errors_total",
			Help:      "Total number of indicator file parse failures by format",
		},
		[]string{"format"},
	)

	m.templateRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "template_downloads_total",
			Help:      "Total number of input template downloads by format",
		},
		[]string{"format"},
	)

	m.historySize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "history_size",
		Help:      "Number of evaluations stored in the history repository",
	})

	m.historyWriteLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "history_write_latency_milliseconds",
		Help:      "History store write latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.historyQueryLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "history_query_latency_milliseconds",
		Help:      "History store query latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorsByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_component_total",
			Help:      "Total number of errors by component",
		},
		[]string{"component", "error_type"},
	)

	m.errorsByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total number of errors by endpoint",
		},
		[]string{"endpoint", "method", "error_type"},
	)
}

// RecordEvaluation increments the evaluations counter.
func RecordEvaluation() {
	globalManager.evaluationsTotal.Inc()
}

// RecordEvaluationError increments the failed evaluations counter.
func RecordEvaluationError() {
	globalManager.evaluationErrors.Inc()
}

// RecordEvaluationDuration records evaluation duration in milliseconds.
func RecordEvaluationDuration(durationMs float64) {
	globalManager.evaluationDuration.Observe(durationMs)
}

// RecordGradeAssigned counts one grade assignment for an indicator.
func RecordGradeAssigned(indicator, grade string) {
	globalManager.gradesAssigned.WithLabelValues(indicator, grade).Inc()
}

// RecordAggregateScore records an aggregate score observation.
func RecordAggregateScore(score float64) {
	globalManager.aggregateScore.Observe(score)
}

// RecordExport increments the export counter for a format.
func RecordExport(format string) {
	globalManager.exportsTotal.WithLabelValues(format).Inc()
}

// RecordExportError increments the export error counter for a format.
func RecordExportError(format string) {
	globalManager.exportErrors.WithLabelValues(format).Inc()
}

// RecordIntake increments the intake counter for a format.
func RecordIntake(format string) {
	globalManager.intakeTotal.WithLabelValues(format).Inc()
}

// RecordIntakeError increments the intake error counter for a format.
func RecordIntakeError(format string) {
	globalManager.intakeErrors.WithLabelValues(format).Inc()
}

// RecordTemplateDownload increments the template download counter for a format.
func RecordTemplateDownload(format string) {
	globalManager.templateRequests.WithLabelValues(format).Inc()
}

// UpdateHistorySize sets the current history repository size.
func UpdateHistorySize(size int) {
	globalManager.historySize.Set(float64(size))
}

// RecordHistoryWriteLatency records history store write latency.
func RecordHistoryWriteLatency(latencyMs float64) {
	globalManager.historyWriteLatency.Observe(latencyMs)
}

// RecordHistoryQueryLatency records history store query latency.
func RecordHistoryQueryLatency(latencyMs float64) {
	globalManager.historyQueryLatency.Observe(latencyMs)
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByComponent counts an error for a component.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByEndpoint counts an error for an endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// GetRegistry returns the custom Prometheus registry used by the service.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
