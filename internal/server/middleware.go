package server

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/menaget/ordermgmt/internal/metrics"
	"github.com/menaget/ordermgmt/internal/service"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger attaches a request-scoped logger to the context and emits
// one event per request. The request id is taken from the inbound header
// when present, generated otherwise.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		reqLog := log.With().Str("request_id", requestID).Logger()
		c.Request = c.Request.WithContext(reqLog.WithContext(c.Request.Context()))

		start := time.Now()
		c.Next()

		reqLog.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

// Observe records request count and duration per route.
func Observe(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterPool holds one token bucket per client. Entries idle for a full
// window are swept out: an idle bucket has refilled completely, so a fresh
// one is indistinguishable from it and the map stays bounded by the set of
// recently active clients.
type limiterPool struct {
	mu       sync.Mutex
	byClient map[string]*clientLimiter

	every rate.Limit
	burst int

	window    time.Duration
	lastSweep time.Time
}

func newLimiterPool(requests int, window time.Duration) *limiterPool {
	return &limiterPool{
		byClient:  make(map[string]*clientLimiter),
		every:     rate.Every(window / time.Duration(requests)),
		burst:     requests,
		window:    window,
		lastSweep: time.Now(),
	}
}

func (p *limiterPool) allow(client string, now time.Time) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if now.Sub(p.lastSweep) >= p.window {
		p.sweepLocked(now)
	}

	cl, ok := p.byClient[client]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(p.every, p.burst)}
		p.byClient[client] = cl
	}
	cl.lastSeen = now

	return cl.limiter.Allow()
}

func (p *limiterPool) sweepLocked(now time.Time) {
	for client, cl := range p.byClient {
		if now.Sub(cl.lastSeen) >= p.window {
			delete(p.byClient, client)
		}
	}
	p.lastSweep = now
}

// RateLimit enforces the per-client quota: requests per window, keyed by
// client IP. Buckets refill continuously at the window rate with a burst of
// the full quota.
func RateLimit(requests int, window time.Duration, m *metrics.Metrics) gin.HandlerFunc {
	pool := newLimiterPool(requests, window)

	return func(c *gin.Context) {
		if !pool.allow(c.ClientIP(), time.Now()) {
			m.RateLimited()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}

// pageParams parses ?page and ?limit, falling back to the defaults on
// absent, malformed or out-of-range values.
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(service.DefaultPage)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultLimit)))

	if page < 1 {
		page = service.DefaultPage
	}
	if limit < 1 || limit > 100 {
		limit = service.DefaultLimit
	}

	return page, limit
}
