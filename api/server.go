package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"autoPallet/config"
	"autoPallet/metrics"
)

// NewRouter wires the packing endpoints, health and metrics.
func NewRouter(cfg config.Config, log *slog.Logger) *gin.Engine {
	metrics.RegisterDefault()
	h := NewHandler(cfg, log)

	r := gin.New()
	r.Use(gin.Recovery(), logMiddleware(log), RateLimit(cfg.Server.RateLimit, cfg.Server.RateBurst))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	r.POST("/pack", h.HandlePack)
	r.POST("/pack/excel", h.HandlePackExcel)
	r.POST("/pack/chart", h.HandlePackChart)
	return r
}

func logMiddleware(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"remote", c.ClientIP(),
			"took", time.Since(start))
	}
}

// RateLimit rejects requests above limit per second with 429. A limit of 0
// disables it.
func RateLimit(limit float64, burst int) gin.HandlerFunc {
	if limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	l := rate.NewLimiter(rate.Limit(limit), burst)
	return func(c *gin.Context) {
		if !l.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
