// Package observability provides logging, metrics, and tracing.
package observability

import (
	"sync"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ContentCreated counts created content rows by entity type.
	ContentCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glimpse_content_created_total",
		Help: "Total number of created content rows by entity",
	}, []string{"entity"})

	// FollowOperations counts follow graph mutations by action and outcome.
	FollowOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glimpse_follow_operations_total",
		Help: "Total follow/unfollow operations by action",
	}, []string{"action"})

	// FeedBuildLatency records home feed assembly latency.
	FeedBuildLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "glimpse_feed_build_latency_seconds",
		Help:    "Feed assembly latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glimpse_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})
)

var (
	promOnce sync.Once
	promMW   *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the Prometheus HTTP middleware for the given service
// name. The middleware registers collectors with the default registry, so
// repeated calls return the instance created first.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promMW = fiberprometheus.New(serviceName)
	})
	return promMW
}

// ObserveFeedBuild records the latency of a feed assembly that started at start.
func ObserveFeedBuild(start time.Time) {
	FeedBuildLatency.Observe(time.Since(start).Seconds())
}
