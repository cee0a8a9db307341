// Package metrics provides Prometheus metrics for the champions analytics service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Default bucket layouts. Confidence is reported on a 0-100 scale.
var (
	defaultConfidenceBuckets = []float64{50, 60, 70, 75, 80, 85, 90, 95, 100}  //nolint:gochecknoglobals // bucket layout
	defaultFilterBuckets     = []float64{0, 1, 2, 5, 10, 25, 50, 100, 250, 500} //nolint:gochecknoglobals // bucket layout
)

// Manager manages all Prometheus metrics for the analytics service.
type Manager struct {
	namespace         string
	subsystem         string
	latencyBuckets    []float64
	confidenceBuckets []float64
	filterBuckets     []float64
	enabled           bool
	refreshInterval   time.Duration
	customLabels      map[string]string
	metricPrefix      string
	registry          prometheus.Registerer

	// Model Metrics
	predictionsTotal     *prometheus.CounterVec
	predictionConfidence *prometheus.HistogramVec
	predictionLatency    *prometheus.HistogramVec
	comparisonsTotal     *prometheus.CounterVec

	// Registry Metrics
	registryPlayers      prometheus.Gauge
	registryQueryLatency prometheus.Histogram
	lookupMisses         prometheus.Counter
	filterResults        prometheus.Histogram

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error Metrics
	errorRateByComponent *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// Configure replaces the global manager with one built from opts on a fresh
// custom registry. It must run before any handler captures GetRegistry.
func Configure(opts ...Option) {
	customRegistry = prometheus.NewRegistry()
	globalManager = NewManager(append(opts, WithPrometheusRegistry(customRegistry))...)
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:         "champions",
		subsystem:         "analytics",
		latencyBuckets:    prometheus.DefBuckets,
		confidenceBuckets: defaultConfidenceBuckets,
		filterBuckets:     defaultFilterBuckets,
		enabled:           true,
		refreshInterval:   defaultRefreshInterval,
		customLabels:      make(map[string]string),
		metricPrefix:      "",
		registry:          prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// name applies the configured metric prefix.
func (m *Manager) name(n string) string {
	if m.metricPrefix == "" {
		return n
	}
	return m.metricPrefix + "_" + n
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // long function required for comprehensive metrics initialization
	auto := promauto.With(m.registry)
	constLabels := prometheus.Labels(m.customLabels)

	// Model Metrics - what the service is asked to compute
	m.predictionsTotal = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("predictions_total"),
			Help:        "Total number of model results served by model",
			ConstLabels: constLabels,
		},
		[]string{"model"},
	)

	m.predictionConfidence = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("prediction_confidence"),
			Help:        "Distribution of reported confidence by model",
			Buckets:     m.confidenceBuckets,
			ConstLabels: constLabels,
		},
		[]string{"model"},
	)

	m.predictionLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("prediction_latency_milliseconds"),
			Help:        "Model evaluation latency in milliseconds by model",
			Buckets:     m.latencyBuckets,
			ConstLabels: constLabels,
		},
		[]string{"model"},
	)

	m.comparisonsTotal = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("comparisons_total"),
			Help:        "Total number of comparison requests by outcome",
			ConstLabels: constLabels,
		},
		[]string{"outcome"},
	)

	// Registry Metrics
	m.registryPlayers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("registry_players"),
		Help:        "Number of players held by the registry",
		ConstLabels: constLabels,
	})

	m.registryQueryLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("registry_query_latency_milliseconds"),
		Help:        "Registry lookup latency in milliseconds",
		Buckets:     m.latencyBuckets,
		ConstLabels: constLabels,
	})

	m.lookupMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("lookup_misses_total"),
		Help:        "Total number of lookups for unknown player ids",
		ConstLabels: constLabels,
	})

	m.filterResults = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("filter_results"),
		Help:        "Number of players returned per filtered listing",
		Buckets:     m.filterBuckets,
		ConstLabels: constLabels,
	})

	// HTTP Performance Metrics
	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("http_requests_total"),
			Help:        "Total number of HTTP requests by endpoint and method",
			ConstLabels: constLabels,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("http_request_duration_milliseconds"),
			Help:        "HTTP request duration in milliseconds",
			Buckets:     m.latencyBuckets,
			ConstLabels: constLabels,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	// Error Metrics
	m.errorRateByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("errors_by_component_total"),
			Help:        "Total number of errors by component",
			ConstLabels: constLabels,
		},
		[]string{"component", "error_type"},
	)

	m.errorRateByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("errors_by_endpoint_total"),
			Help:        "Total number of errors by endpoint",
			ConstLabels: constLabels,
		},
		[]string{"endpoint", "method", "error_type"},
	)

	// System Performance Metrics
	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("system_memory_usage_bytes"),
		Help:        "System memory usage in bytes",
		ConstLabels: constLabels,
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("system_goroutine_count"),
		Help:        "Number of goroutines",
		ConstLabels: constLabels,
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("system_gc_pause_time_milliseconds"),
		Help:        "GC pause time in milliseconds",
		Buckets:     []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		ConstLabels: constLabels,
	})
}

// Enabled reports whether collection is switched on.
func (m *Manager) Enabled() bool {
	return m.enabled
}

// RefreshInterval returns how often gauge metrics should be refreshed.
func (m *Manager) RefreshInterval() time.Duration {
	return m.refreshInterval
}

// RefreshInterval returns the refresh interval of the global manager.
func RefreshInterval() time.Duration {
	return globalManager.refreshInterval
}

// Model Metrics Functions.

// RecordPrediction counts a served model result and observes its confidence.
func RecordPrediction(model string, confidence float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.predictionsTotal.WithLabelValues(model).Inc()
	globalManager.predictionConfidence.WithLabelValues(model).Observe(confidence)
}

// RecordPredictionLatency records model evaluation latency in milliseconds.
func RecordPredictionLatency(model string, latencyMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.predictionLatency.WithLabelValues(model).Observe(latencyMs)
}

// RecordComparison counts a comparison request with its outcome.
func RecordComparison(outcome string) {
	if !globalManager.enabled {
		return
	}
	globalManager.comparisonsTotal.WithLabelValues(outcome).Inc()
}

// Registry Metrics Functions.

// UpdateRegistryPlayers sets the registry size.
func UpdateRegistryPlayers(count int) {
	if !globalManager.enabled {
		return
	}
	globalManager.registryPlayers.Set(float64(count))
}

// RecordRegistryQueryLatency records registry lookup latency.
func RecordRegistryQueryLatency(latencyMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.registryQueryLatency.Observe(latencyMs)
}

// RecordLookupMiss increments the unknown-id counter.
func RecordLookupMiss() {
	if !globalManager.enabled {
		return
	}
	globalManager.lookupMisses.Inc()
}

// RecordFilterResults observes the size of a filtered listing.
func RecordFilterResults(count int) {
	if !globalManager.enabled {
		return
	}
	globalManager.filterResults.Observe(float64(count))
}

// HTTP Metrics Functions.

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// Error Metrics Functions.

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// System Performance Metrics Functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
