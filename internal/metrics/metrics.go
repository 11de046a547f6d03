package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sanguine_http_requests_total",
		Help: "HTTP requests served, by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sanguine_http_request_duration_seconds",
		Help:    "HTTP request latency, by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sanguine_cache_hits_total",
		Help: "TTL cache hits, by cache name.",
	}, []string{"cache"})

	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sanguine_cache_misses_total",
		Help: "TTL cache misses, by cache name.",
	}, []string{"cache"})

	UpstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sanguine_upstream_request_duration_seconds",
		Help:    "Upstream API call latency, by service.",
		Buckets: prometheus.DefBuckets,
	}, []string{"service"})

	UpstreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sanguine_upstream_errors_total",
		Help: "Failed upstream API calls, by service.",
	}, []string{"service"})
)

// Handler exposes the default registry for the /metrics route.
func Handler() http.Handler {
	return promhttp.Handler()
}
