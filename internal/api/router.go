package api

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"seo_tracker/internal/metrics"
)

const corsMaxAge = 12 * time.Hour

type RouterConfig struct {
	CORSOrigins []string
	// Metrics is optional. When set, requests are instrumented and /metrics is served.
	Metrics     *metrics.Metrics
	HealthCheck func(ctx context.Context) error
}

func NewRouter(h *Handler, cfg RouterConfig, logger *slog.Logger) *gin.Engine {
	router := gin.New()

	router.Use(corsMiddleware(cfg.CORSOrigins))
	router.Use(requestID())
	router.Use(requestLogger(logger))
	if cfg.Metrics != nil {
		router.Use(instrument(cfg.Metrics))
	}
	router.Use(recovery(logger))

	router.GET("/health", health(cfg.HealthCheck))
	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	websites := router.Group("/api/websites")
	websites.GET("", h.ListWebsites)
	websites.POST("", h.CreateWebsite)
	websites.DELETE("/:id", h.DeleteWebsite)
	websites.GET("/:id/metrics", h.GetMetrics)
	websites.POST("/:id/audit", h.RunAudit)
	websites.GET("/:id/audits", h.ListAudits)

	return router
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        corsMaxAge,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

func health(check func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			if err := check(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
