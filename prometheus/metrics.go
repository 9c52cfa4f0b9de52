package prometheus

import (
	"time"

	"supplier-portal/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Supplier query metrics
	SupplierOperationsCounter prometheus.CounterVec

	// Annotation mutation metrics
	AnnotationOperationsCounter prometheus.CounterVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Corpus metrics
	CorpusSizeGauge               prometheus.Gauge
	CorpusGenerationDurationGauge prometheus.Gauge
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	SupplierOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_supplier_operations_total",
			Help: "Total number of supplier query operations",
		},
		[]string{"operation"},
	)

	AnnotationOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_annotation_operations_total",
			Help: "Total number of user annotation operations",
		},
		[]string{"operation"},
	)

	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of annotation database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	CorpusSizeGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: prefix + "_corpus_suppliers",
			Help: "Number of suppliers in the generated corpus",
		},
	)

	CorpusGenerationDurationGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: prefix + "_corpus_generation_duration_seconds",
			Help: "Time spent generating the supplier corpus at startup",
		},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordSupplierOperation increments the counter for supplier query operations
func RecordSupplierOperation(operation string) {
	SupplierOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordAnnotationOperation increments the counter for annotation operations
func RecordAnnotationOperation(operation string) {
	AnnotationOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordCorpusGenerated records the corpus size and generation time
func RecordCorpusGenerated(count int, duration time.Duration) {
	CorpusSizeGauge.Set(float64(count))
	CorpusGenerationDurationGauge.Set(duration.Seconds())
}
