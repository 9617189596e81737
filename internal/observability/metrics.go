// Package observability provides Prometheus metrics for the application.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreOperationLatency records store operation latency by operation and collection.
	StoreOperationLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "amica_store_operation_latency_seconds",
		Help:    "Record store operation latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "collection"})

	// StoreErrors counts store failures by collection and kind.
	StoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "amica_store_errors_total",
		Help: "Total number of record store errors by collection and kind",
	}, []string{"collection", "kind"})

	// AuthAttempts counts register/login attempts by outcome.
	AuthAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "amica_auth_attempts_total",
		Help: "Total number of authentication attempts by operation and outcome",
	}, []string{"operation", "outcome"})

	// RedisErrors counts failed Redis commands by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "amica_redis_errors_total",
		Help: "Total number of Redis command errors by command",
	}, []string{"command"})
)

// TrackStoreOp returns a function that records operation latency when called
// (e.g. defer).
func TrackStoreOp(collection, operation string) func() {
	start := time.Now()
	return func() {
		StoreOperationLatency.WithLabelValues(operation, collection).Observe(time.Since(start).Seconds())
	}
}
