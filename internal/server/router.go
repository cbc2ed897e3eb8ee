package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/menaget/ordermgmt/internal/config"
	"github.com/menaget/ordermgmt/internal/metrics"
)

type Handlers struct {
	Users    *UserHandler
	Products *ProductHandler
	Orders   *OrderHandler
}

// NewRouter wires the middleware chain and the API routes. The rate limiter
// guards the API surface only; health and metrics stay unthrottled.
func NewRouter(log zerolog.Logger, m *metrics.Metrics, rl config.RateLimitConfig, h Handlers) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log), Observe(m))

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/", RateLimit(rl.Requests, rl.Window, m))

	api.POST("/users", h.Users.Create)
	api.GET("/users/:id", h.Users.Get)
	api.GET("/users/:id/orders", h.Users.GetOrders)

	api.POST("/products", h.Products.Create)
	api.GET("/products", h.Products.List)
	api.GET("/products/:id", h.Products.Get)

	api.POST("/orders", h.Orders.Create)
	api.GET("/orders", h.Orders.List)
	api.GET("/orders/:id", h.Orders.Get)

	return r
}
