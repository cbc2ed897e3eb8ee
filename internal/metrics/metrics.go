package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the service-level collectors: HTTP traffic and the
// product cache hit ratio.
type Metrics struct {
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	cacheHits       *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
	ratelimitedReqs prometheus.Counter
}

// New registers the collectors on the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer allows tests to use an isolated registry.
func NewWithRegisterer(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ordermgmt_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ordermgmt_http_request_duration_seconds",
			Help:    "HTTP request duration by method and route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ordermgmt_cache_hits_total",
			Help: "Cache hits by read path",
		}, []string{"path"}),
		cacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ordermgmt_cache_misses_total",
			Help: "Cache misses by read path",
		}, []string{"path"}),
		ratelimitedReqs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ordermgmt_rate_limited_requests_total",
			Help: "Total number of requests rejected by the rate limiter",
		}),
	}

	registerer.MustRegister(m.httpRequests, m.httpDuration, m.cacheHits, m.cacheMisses, m.ratelimitedReqs)

	return m
}

func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) CacheHit(path string) {
	m.cacheHits.WithLabelValues(path).Inc()
}

func (m *Metrics) CacheMiss(path string) {
	m.cacheMisses.WithLabelValues(path).Inc()
}

func (m *Metrics) RateLimited() {
	m.ratelimitedReqs.Inc()
}
