// Package api exposes the link engine and sitemap documents over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MarvinNL046/cutiepawspedia/internal/cache"
	"github.com/MarvinNL046/cutiepawspedia/internal/domain"
	"github.com/MarvinNL046/cutiepawspedia/internal/links"
	"github.com/MarvinNL046/cutiepawspedia/internal/logger"
	"github.com/MarvinNL046/cutiepawspedia/internal/sitemap"
	"github.com/MarvinNL046/cutiepawspedia/internal/telemetry"
)

const contentTypeXML = "application/xml; charset=utf-8"

// LinksHandler serves internal-link requests for the template layer.
type LinksHandler struct {
	service *links.Service
	tel     *telemetry.Provider
	logger  logger.Logger
}

// NewLinksHandler creates a LinksHandler.
func NewLinksHandler(service *links.Service, tel *telemetry.Provider, log logger.Logger) *LinksHandler {
	return &LinksHandler{service: service, tel: tel, logger: log}
}

// GetInternalLinks handles GET /api/v1/internal-links.
func (h *LinksHandler) GetInternalLinks(c *gin.Context) {
	pctx := domain.PageContext{
		Locale:       domain.Locale(c.DefaultQuery("locale", string(domain.LocaleNL))),
		PageType:     domain.PageType(c.Query("pageType")),
		CountrySlug:  c.Query("countrySlug"),
		ProvinceSlug: c.Query("provinceSlug"),
		CitySlug:     c.Query("citySlug"),
		CategorySlug: c.Query("categorySlug"),
		PlaceSlug:    c.Query("placeSlug"),
		PlaceID:      c.Query("placeId"),
		CityName:     c.Query("cityName"),
		CategoryName: c.Query("categoryName"),
		CountryName:  c.Query("countryName"),
	}

	opts := domain.InternalLinkOptions{}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		opts.Limit = limit
	}

	result, err := h.service.LinksForPage(c.Request.Context(), pctx, opts)
	if err != nil {
		h.logger.Error("failed to build internal links",
			logger.Error(err),
			logger.String("page_type", string(pctx.PageType)),
			logger.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build internal links"})
		return
	}

	if h.tel != nil {
		h.tel.Metrics.LinkRequests.WithLabelValues(string(pctx.PageType)).Inc()
		h.tel.Metrics.LinksReturned.Observe(float64(len(result.Links)))
	}

	c.JSON(http.StatusOK, result)
}

// SitemapHandler serves the sitemap index and section documents,
// cache-first with on-demand generation as fallback.
type SitemapHandler struct {
	generator *sitemap.Generator
	cache     *cache.SitemapCache
	runs      *runReader
	logger    logger.Logger
}

// runReader is satisfied by database.RunRepository; kept private so a
// nil repository is representable.
type runReader struct {
	lastRun func(ctx context.Context) (domain.SitemapRun, error)
}

// NewSitemapHandler creates a SitemapHandler. cacheStore may be nil
// (every request regenerates) and lastRun may be nil (status reports
// no history).
func NewSitemapHandler(
	generator *sitemap.Generator,
	cacheStore *cache.SitemapCache,
	lastRun func(ctx context.Context) (domain.SitemapRun, error),
	log logger.Logger,
) *SitemapHandler {
	h := &SitemapHandler{generator: generator, cache: cacheStore, logger: log}
	if lastRun != nil {
		h.runs = &runReader{lastRun: lastRun}
	}
	return h
}

// GetIndex handles GET /sitemap.xml.
func (h *SitemapHandler) GetIndex(c *gin.Context) {
	h.serveDocument(c, "/sitemap.xml")
}

// GetSection handles GET /sitemaps/:file.
func (h *SitemapHandler) GetSection(c *gin.Context) {
	file := c.Param("file")
	h.serveDocument(c, "/sitemaps/"+file)
}

func (h *SitemapHandler) serveDocument(c *gin.Context, path string) {
	ctx := c.Request.Context()

	if h.cache != nil {
		xml, hit, err := h.cache.Get(ctx, path)
		if err != nil {
			// Cache trouble degrades to regeneration, not an error page.
			h.logger.Warn("sitemap cache read failed", logger.String("path", path), logger.Error(err))
		} else if hit {
			c.Data(http.StatusOK, contentTypeXML, []byte(xml))
			return
		}
	}

	result, err := h.generator.Generate(ctx)
	if err != nil {
		h.logger.Error("sitemap generation failed", logger.String("path", path), logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate sitemap"})
		return
	}

	if h.cache != nil {
		if cacheErr := h.cache.StoreResult(ctx, result); cacheErr != nil {
			h.logger.Warn("sitemap cache write failed", logger.Error(cacheErr))
		}
	}

	if path == "/sitemap.xml" {
		c.Data(http.StatusOK, contentTypeXML, []byte(result.Index))
		return
	}
	for _, s := range result.Sitemaps {
		if s.Section.Path == path {
			c.Data(http.StatusOK, contentTypeXML, []byte(s.XML))
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Unknown sitemap section"})
}

// GetStatus handles GET /api/v1/sitemap/status and reports the most
// recent generation run.
func (h *SitemapHandler) GetStatus(c *gin.Context) {
	if h.runs == nil {
		c.JSON(http.StatusOK, gin.H{"lastRun": nil})
		return
	}

	run, err := h.runs.lastRun(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"lastRun": nil})
			return
		}
		h.logger.Error("failed to read sitemap run history", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read run history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lastRun": gin.H{
			"id":           run.ID,
			"startedAt":    run.StartedAt,
			"durationMs":   run.Duration.Milliseconds(),
			"totalUrls":    run.TotalURLs,
			"sectionCount": run.SectionCount,
			"status":       run.Status,
			"error":        run.Error,
		},
	})
}
