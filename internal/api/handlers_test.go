package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarvinNL046/cutiepawspedia/internal/api"
	"github.com/MarvinNL046/cutiepawspedia/internal/domain"
	"github.com/MarvinNL046/cutiepawspedia/internal/links"
	"github.com/MarvinNL046/cutiepawspedia/internal/logger"
	"github.com/MarvinNL046/cutiepawspedia/internal/sitemap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubProvider returns fixed category stats for every city query.
type stubProvider struct {
	stats []domain.CategoryLinkStats
	err   error
}

func (s *stubProvider) CategoriesForCity(context.Context, string, string, int) ([]domain.CategoryLinkStats, error) {
	return s.stats, s.err
}

func (s *stubProvider) CitiesForCategory(context.Context, string, string, int) ([]domain.CityLinkStats, error) {
	return nil, s.err
}

func (s *stubProvider) RelatedPlaces(context.Context, string, int) ([]domain.RelatedPlaceLink, error) {
	return nil, s.err
}

func (s *stubProvider) TopCategoriesForCountry(context.Context, string, int) ([]domain.CategoryLinkStats, error) {
	return nil, s.err
}

func (s *stubProvider) TopCitiesForCountry(context.Context, string, int) ([]domain.CityLinkStats, error) {
	return nil, s.err
}

// stubSource serves a single country so sitemap sections are non-empty.
type stubSource struct{}

func (stubSource) Countries(context.Context) ([]domain.CountryRow, error) {
	return []domain.CountryRow{{Slug: "netherlands"}}, nil
}
func (stubSource) Provinces(context.Context) ([]domain.ProvinceRow, error)   { return nil, nil }
func (stubSource) Cities(context.Context) ([]domain.CityRow, error)          { return nil, nil }
func (stubSource) Categories(context.Context) ([]domain.CategoryRow, error)  { return nil, nil }
func (stubSource) Places(context.Context) ([]domain.PlaceRow, error)         { return nil, nil }
func (stubSource) CityCategoryPairs(context.Context) ([]domain.CityCategoryPair, error) {
	return nil, nil
}
func (stubSource) CountryCategoryPairs(context.Context) ([]domain.CountryCategoryPair, error) {
	return nil, nil
}

func linksEngine(provider links.StatsProvider) *gin.Engine {
	handler := api.NewLinksHandler(links.NewService(provider), nil, logger.NewNop())
	engine := gin.New()
	engine.GET("/api/v1/internal-links", handler.GetInternalLinks)
	return engine
}

func TestGetInternalLinks_OK(t *testing.T) {
	provider := &stubProvider{
		stats: []domain.CategoryLinkStats{
			{CategorySlug: "dierenarts", CategoryName: "Dierenartsen", PlacesCount: 42},
		},
	}
	engine := linksEngine(provider)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/internal-links?pageType=city&countrySlug=netherlands&citySlug=amsterdam&cityName=Amsterdam", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.InternalLinksResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.Groups, 2)
	assert.Equal(t, "/nl/netherlands/amsterdam/dierenarts", result.Links[0].Href)
	assert.Equal(t, domain.PageCity, result.Context.PageType)
	// Unspecified locale defaults to Dutch.
	assert.Equal(t, domain.LocaleNL, result.Context.Locale)
}

func TestGetInternalLinks_InvalidLimit(t *testing.T) {
	engine := linksEngine(&stubProvider{})

	for _, limit := range []string{"abc", "0", "-3"} {
		t.Run(limit, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/internal-links?pageType=city&limit="+limit, nil)
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "limit must be a positive integer")
		})
	}
}

func TestGetInternalLinks_ProviderError(t *testing.T) {
	engine := linksEngine(&stubProvider{err: assert.AnError})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/internal-links?pageType=city&countrySlug=netherlands&citySlug=amsterdam", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func sitemapEngine(lastRun func(ctx context.Context) (domain.SitemapRun, error)) *gin.Engine {
	cfg := domain.SitemapConfig{
		BaseURL: "https://cutiepawspedia.com",
		Locales: []domain.Locale{domain.LocaleNL, domain.LocaleEN, domain.LocaleDE},
	}
	generator := sitemap.NewGenerator(stubSource{}, cfg, nil, nil, logger.NewNop())
	handler := api.NewSitemapHandler(generator, nil, lastRun, logger.NewNop())

	engine := gin.New()
	engine.GET("/sitemap.xml", handler.GetIndex)
	engine.GET("/sitemaps/:file", handler.GetSection)
	engine.GET("/api/v1/sitemap/status", handler.GetStatus)
	return engine
}

func TestGetIndex_GeneratesOnDemand(t *testing.T) {
	engine := sitemapEngine(nil)

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<sitemapindex")
	assert.Contains(t, rec.Body.String(), "/sitemaps/home.xml")
}

func TestGetSection(t *testing.T) {
	engine := sitemapEngine(nil)

	req := httptest.NewRequest(http.MethodGet, "/sitemaps/countries.xml", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://cutiepawspedia.com/nl/netherlands")
}

func TestGetSection_Unknown(t *testing.T) {
	engine := sitemapEngine(nil)

	req := httptest.NewRequest(http.MethodGet, "/sitemaps/nope.xml", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unknown sitemap section")
}

func TestGetStatus_NoHistory(t *testing.T) {
	tests := []struct {
		name    string
		lastRun func(ctx context.Context) (domain.SitemapRun, error)
	}{
		{
			name:    "no repository wired",
			lastRun: nil,
		},
		{
			name: "no run recorded yet",
			lastRun: func(context.Context) (domain.SitemapRun, error) {
				return domain.SitemapRun{}, domain.ErrNotFound
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			engine := sitemapEngine(tc.lastRun)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/sitemap/status", nil)
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"lastRun":null}`, rec.Body.String())
		})
	}
}

func TestGetStatus_ReportsLastRun(t *testing.T) {
	engine := sitemapEngine(func(context.Context) (domain.SitemapRun, error) {
		return domain.SitemapRun{
			ID:           "run-1",
			TotalURLs:    45,
			SectionCount: 10,
			Status:       domain.RunStatusOK,
		}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sitemap/status", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		LastRun struct {
			ID        string `json:"id"`
			TotalURLs int    `json:"totalUrls"`
			Status    string `json:"status"`
		} `json:"lastRun"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "run-1", body.LastRun.ID)
	assert.Equal(t, 45, body.LastRun.TotalURLs)
	assert.Equal(t, domain.RunStatusOK, body.LastRun.Status)
}
