package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MarvinNL046/cutiepawspedia/internal/config"
	"github.com/MarvinNL046/cutiepawspedia/internal/logger"
	"github.com/MarvinNL046/cutiepawspedia/internal/telemetry"
)

const (
	healthCheckTimeout = 2 * time.Second
	serviceVersion     = "1.0.0"
)

// Router assembles the HTTP surface: sitemap documents, the internal
// links API, health, and metrics.
type Router struct {
	cfg      *config.Config
	links    *LinksHandler
	sitemaps *SitemapHandler
	tel      *telemetry.Provider
	dbPing   func(ctx context.Context) error
	logger   logger.Logger
}

// NewRouter creates a Router. dbPing may be nil when no database is
// configured; health then reports the data source as disabled.
func NewRouter(
	cfg *config.Config,
	linksHandler *LinksHandler,
	sitemapHandler *SitemapHandler,
	tel *telemetry.Provider,
	dbPing func(ctx context.Context) error,
	log logger.Logger,
) *Router {
	return &Router{
		cfg:      cfg,
		links:    linksHandler,
		sitemaps: sitemapHandler,
		tel:      tel,
		dbPing:   dbPing,
		logger:   log,
	}
}

// Engine builds the gin engine with all routes registered.
func (r *Router) Engine() *gin.Engine {
	if !r.cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/health", r.health)
	if r.tel != nil {
		engine.GET("/metrics", gin.WrapH(r.tel.Handler()))
	}

	engine.GET("/sitemap.xml", r.sitemaps.GetIndex)
	engine.GET("/sitemaps/:file", r.sitemaps.GetSection)

	v1 := engine.Group("/api/v1")
	v1.GET("/internal-links", r.links.GetInternalLinks)
	v1.GET("/sitemap/status", r.sitemaps.GetStatus)

	return engine
}

// Server builds the http.Server around the engine.
func (r *Router) Server() *http.Server {
	return &http.Server{
		Addr:         r.cfg.Server.Address,
		Handler:      r.Engine(),
		ReadTimeout:  r.cfg.Server.ReadTimeout,
		WriteTimeout: r.cfg.Server.WriteTimeout,
	}
}

func (r *Router) health(c *gin.Context) {
	status := http.StatusOK
	dbStatus := "disabled"

	if r.dbPing != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		if err := r.dbPing(ctx); err != nil {
			dbStatus = "unhealthy"
			status = http.StatusServiceUnavailable
		} else {
			dbStatus = "healthy"
		}
	}

	c.JSON(status, gin.H{
		"service":  "cutiepawspedia",
		"version":  serviceVersion,
		"database": dbStatus,
	})
}
