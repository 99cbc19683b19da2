// Package metrics provides Prometheus metrics for the award readiness service.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "laurel"

// Manager holds every Prometheus collector used by the service.
type Manager struct {
	// Pipeline metrics
	itemsProcessed prometheus.Counter
	itemsDuplicate prometheus.Counter
	itemsFailed    prometheus.Counter

	// Classification metrics
	classifications *prometheus.CounterVec
	unclassified    prometheus.Counter

	// Readiness metrics
	awardReadiness *prometheus.GaugeVec
	readyAwards    prometheus.Gauge
	totalItems     prometheus.Gauge

	// Queue metrics
	queueSize        prometheus.Gauge
	queueCapacity    prometheus.Gauge
	queueUtilization prometheus.Gauge
	queueEnqueues    prometheus.Counter
	queueErrors      prometheus.Counter

	// Worker metrics
	workerCount   prometheus.Gauge
	workerLatency prometheus.Histogram
	workerErrors  prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error metrics
	errorsByComponent *prometheus.CounterVec

	// System metrics
	systemMemory     prometheus.Gauge
	systemGoroutines prometheus.Gauge
}

var (
	mu       sync.Mutex
	registry *prometheus.Registry
	manager  *Manager
)

func newManager(reg prometheus.Registerer) *Manager {
	f := promauto.With(reg)
	return &Manager{
		itemsProcessed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "items_processed_total",
			Help: "Total content items processed through the pipeline.",
		}),
		itemsDuplicate: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "items_duplicate_total",
			Help: "Total content items rejected as duplicates.",
		}),
		itemsFailed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "items_failed_total",
			Help: "Total content items that failed processing.",
		}),
		classifications: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "classifications_total",
			Help: "Total multi-label assignments per award category.",
		}, []string{"category"}),
		unclassified: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "unclassified_total",
			Help: "Total items with no category above the multi-label threshold.",
		}),
		awardReadiness: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "award_readiness_percentage",
			Help: "Current readiness percentage per award category.",
		}, []string{"category"}),
		readyAwards: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "ready_awards",
			Help: "Number of award categories currently ready.",
		}),
		totalItems: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "assigned_items",
			Help: "Sum of item totals across all award categories.",
		}),
		queueSize: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "queue_size",
			Help: "Current number of queued items.",
		}),
		queueCapacity: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "queue_capacity",
			Help: "Configured queue capacity.",
		}),
		queueUtilization: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "queue_utilization",
			Help: "Queue size divided by capacity.",
		}),
		queueEnqueues: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "queue_enqueues_total",
			Help: "Total successful enqueue operations.",
		}),
		queueErrors: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "queue_enqueue_errors_total",
			Help: "Total failed enqueue operations.",
		}),
		workerCount: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "worker_count",
			Help: "Number of running workers.",
		}),
		workerLatency: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "worker_processing_latency_ms",
			Help:    "Item processing latency in milliseconds.",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
		workerErrors: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "worker_errors_total",
			Help: "Total worker processing errors.",
		}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "http_requests_total",
			Help: "Total HTTP requests by endpoint, method and status.",
		}, []string{"endpoint", "method", "status"}),
		httpRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_ms",
			Help:    "HTTP request duration in milliseconds.",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		}, []string{"endpoint", "method", "status"}),
		errorsByComponent: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "errors_total",
			Help: "Total errors by component and reason.",
		}, []string{"component", "reason"}),
		systemMemory: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "system_memory_bytes",
			Help: "Current heap allocation in bytes.",
		}),
		systemGoroutines: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "system_goroutines",
			Help: "Current number of goroutines.",
		}),
	}
}

func get() *Manager {
	mu.Lock()
	defer mu.Unlock()
	if manager == nil {
		registry = prometheus.NewRegistry()
		manager = newManager(registry)
	}
	return manager
}

// GetRegistry returns the registry holding all service metrics.
func GetRegistry() *prometheus.Registry {
	get()
	return registry
}

// Pipeline helpers.

func RecordItemProcessed() { get().itemsProcessed.Inc() }
func RecordItemDuplicate() { get().itemsDuplicate.Inc() }
func RecordItemFailed()    { get().itemsFailed.Inc() }

// Classification helpers.

func RecordClassification(category string) {
	get().classifications.WithLabelValues(category).Inc()
}

func RecordUnclassified() { get().unclassified.Inc() }

// Readiness helpers.

func UpdateAwardReadiness(category string, pct float64) {
	get().awardReadiness.WithLabelValues(category).Set(pct)
}

func UpdateReadyAwards(n int) { get().readyAwards.Set(float64(n)) }
func UpdateTotalItems(n int)  { get().totalItems.Set(float64(n)) }

// Queue helpers.

func UpdateQueueSize(n int)            { get().queueSize.Set(float64(n)) }
func UpdateQueueCapacity(n int)        { get().queueCapacity.Set(float64(n)) }
func UpdateQueueUtilization(u float64) { get().queueUtilization.Set(u) }
func RecordQueueEnqueue()              { get().queueEnqueues.Inc() }
func RecordQueueEnqueueError()         { get().queueErrors.Inc() }

// Worker helpers.

func UpdateWorkerCount(n int)                   { get().workerCount.Set(float64(n)) }
func RecordWorkerProcessingLatency(ms float64)  { get().workerLatency.Observe(ms) }
func RecordWorkerError()                        { get().workerErrors.Inc() }

// HTTP helpers.

func RecordHTTPRequest(endpoint, method, status string) {
	get().httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

func RecordHTTPRequestDuration(endpoint, method, status string, ms float64) {
	get().httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(ms)
}

// Error helpers.

func RecordErrorByComponent(component, reason string) {
	get().errorsByComponent.WithLabelValues(component, reason).Inc()
}

// System helpers.

func UpdateSystemMemoryUsage(bytes uint64) { get().systemMemory.Set(float64(bytes)) }
func UpdateSystemGoroutineCount(n int)     { get().systemGoroutines.Set(float64(n)) }
