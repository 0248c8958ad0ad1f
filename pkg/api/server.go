// Package api provides the HTTP surface: health, run triggering, run
// inspection, and Prometheus metrics. Signal presentation to end users
// lives elsewhere; this surface exists for operators.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fourthplaces/rootsignal/pkg/config"
	"github.com/fourthplaces/rootsignal/pkg/database"
	"github.com/fourthplaces/rootsignal/pkg/version"
)

// RunLauncher starts a pipeline run for a region and returns its run ID.
// Implemented by pipeline.Runner; runs execute in the background.
type RunLauncher interface {
	Launch(region string) (string, error)
	Status(ctx context.Context, runID string) (map[string]interface{}, error)
	CancelRun(runID string) bool
}

// Server is the HTTP API server.
type Server struct {
	router   *gin.Engine
	cfg      *config.Config
	dbClient *database.Client
	launcher RunLauncher
	registry *prometheus.Registry
}

// NewServer creates the API server and registers its routes.
func NewServer(cfg *config.Config, dbClient *database.Client, launcher RunLauncher, registry *prometheus.Registry) *Server {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	s := &Server{
		router:   router,
		cfg:      cfg,
		dbClient: dbClient,
		launcher: launcher,
		registry: registry,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(
		promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	runs := s.router.Group("/api/v1/runs")
	runs.POST("", s.handleTriggerRun)
	runs.GET("/:id", s.handleGetRun)
	runs.POST("/:id/cancel", s.handleCancelRun)

	s.router.GET("/api/v1/regions/:region/signals", s.handleListSignals)
}

// Run starts serving on addr and blocks.
func (s *Server) Run(addr string) error {
	slog.Info("HTTP server listening", "addr", addr)
	return s.router.Run(addr)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"version":  version.Version,
			"error":    err.Error(),
		})
		return
	}

	regions := make([]string, 0, len(s.cfg.Regions))
	for slug := range s.cfg.Regions {
		regions = append(regions, slug)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
		"version":  version.Version,
		"regions":  regions,
	})
}

// requestLogger logs one line per request in slog style.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}
