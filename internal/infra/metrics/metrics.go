package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "kubenexus"

// Provider call results.
const (
	ResultSuccess     = "success"
	ResultError       = "error"
	ResultNotFound    = "not_found"
	ResultUnavailable = "unavailable"
	ResultThrottled   = "throttled"
)

var httpRequestsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of API requests by route pattern and status code.",
	},
	[]string{"method", "route", "code"},
)

var httpRequestDuration = promauto.With(prometheus.DefaultRegisterer).NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "API request latency by route pattern.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

var providerCallsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provider_calls_total",
		Help:      "Total number of cluster API calls by operation and result.",
	},
	[]string{"operation", "result"},
)

var providerCallDuration = promauto.With(prometheus.DefaultRegisterer).NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "provider_call_duration_seconds",
		Help:      "Cluster API call latency by operation.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

var malformedResourcesSkippedTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "malformed_resources_skipped_total",
		Help: "Total number of listed resources dropped from a response because they lack a uid or name " +
			"(indicates a misbehaving control plane or proxy).",
	},
	[]string{"kind"},
)

var dependencyUp = promauto.With(prometheus.DefaultRegisterer).NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "dependency_up",
		Help:      "Whether the last ping of a dependency succeeded (1) or failed (0).",
	},
	[]string{"name"},
)

var dependencyPingDuration = promauto.With(prometheus.DefaultRegisterer).NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dependency_ping_duration_seconds",
		Help:      "Dependency ping latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	},
	[]string{"name"},
)

// RecordHTTPRequest records one served API request.
func RecordHTTPRequest(method, route string, code int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordProviderCall records one cluster API call and its outcome.
func RecordProviderCall(operation, result string, duration time.Duration) {
	providerCallsTotal.WithLabelValues(operation, result).Inc()
	providerCallDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordMalformedResourceSkipped increments the counter when a listed resource is dropped.
func RecordMalformedResourceSkipped(kind string) {
	malformedResourcesSkippedTotal.WithLabelValues(kind).Inc()
}

// RecordDependencyPing records the outcome of one dependency ping.
func RecordDependencyPing(name string, ok bool, duration time.Duration) {
	up := 0.0
	if ok {
		up = 1
	}

	dependencyUp.WithLabelValues(name).Set(up)
	dependencyPingDuration.WithLabelValues(name).Observe(duration.Seconds())
}
