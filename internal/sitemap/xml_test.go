package sitemap_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarvinNL046/cutiepawspedia/internal/domain"
	"github.com/MarvinNL046/cutiepawspedia/internal/sitemap"
)

func TestBuildSitemapXML_EmptyInput(t *testing.T) {
	xml := sitemap.BuildSitemapXML(nil)

	assert.True(t, strings.HasPrefix(xml, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, xml, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, xml, "</urlset>")
	assert.NotContains(t, xml, "<url>")
}

func TestBuildSitemapXML_FullEntry(t *testing.T) {
	xml := sitemap.BuildSitemapXML([]domain.SitemapURL{
		{
			Loc:         "https://cutiepawspedia.com/nl/netherlands",
			LastMod:     "2026-08-31",
			ChangeFreq:  domain.FreqWeekly,
			Priority:    0.9,
			HasPriority: true,
		},
	})

	assert.Contains(t, xml, "<loc>https://cutiepawspedia.com/nl/netherlands</loc>")
	assert.Contains(t, xml, "<lastmod>2026-08-31</lastmod>")
	assert.Contains(t, xml, "<changefreq>weekly</changefreq>")
	assert.Contains(t, xml, "<priority>0.9</priority>")
}

func TestBuildSitemapXML_OptionalFieldsOmitted(t *testing.T) {
	xml := sitemap.BuildSitemapXML([]domain.SitemapURL{
		{Loc: "https://cutiepawspedia.com/nl"},
	})

	assert.Contains(t, xml, "<loc>https://cutiepawspedia.com/nl</loc>")
	assert.NotContains(t, xml, "<lastmod>")
	assert.NotContains(t, xml, "<changefreq>")
	assert.NotContains(t, xml, "<priority>")
}

func TestBuildSitemapXML_PriorityOneDecimal(t *testing.T) {
	tests := []struct {
		name     string
		priority float64
		expected string
	}{
		{name: "whole number keeps decimal", priority: 1.0, expected: "<priority>1.0</priority>"},
		{name: "single decimal", priority: 0.8, expected: "<priority>0.8</priority>"},
		{name: "zero", priority: 0, expected: "<priority>0.0</priority>"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			xml := sitemap.BuildSitemapXML([]domain.SitemapURL{
				{Loc: "https://cutiepawspedia.com/nl", Priority: tc.priority, HasPriority: true},
			})
			assert.Contains(t, xml, tc.expected)
		})
	}
}

func TestBuildSitemapXML_Escaping(t *testing.T) {
	xml := sitemap.BuildSitemapXML([]domain.SitemapURL{
		{Loc: `https://cutiepawspedia.com/nl?a=1&b=<"x">`},
	})

	assert.Contains(t, xml, "<loc>https://cutiepawspedia.com/nl?a=1&amp;b=&lt;&quot;x&quot;&gt;</loc>")
	assert.NotContains(t, xml, `&b=<`)
}

func TestBuildSitemapIndexXML(t *testing.T) {
	xml := sitemap.BuildSitemapIndexXML("https://cutiepawspedia.com/", []domain.SitemapSection{
		{ID: "cities", Path: "/sitemaps/cities.xml", LastMod: "2026-08-31"},
		{ID: "places", Path: "/sitemaps/places.xml"},
	})

	assert.Contains(t, xml, `<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	// Trailing slash on the base URL must not double up.
	assert.Contains(t, xml, "<loc>https://cutiepawspedia.com/sitemaps/cities.xml</loc>")
	assert.Contains(t, xml, "<loc>https://cutiepawspedia.com/sitemaps/places.xml</loc>")
	assert.Contains(t, xml, "<lastmod>2026-08-31</lastmod>")
	assert.Contains(t, xml, "</sitemapindex>")
}

func TestSplitIntoSitemaps(t *testing.T) {
	urls := make([]domain.SitemapURL, 5)
	for i := range urls {
		urls[i] = domain.SitemapURL{Loc: "https://cutiepawspedia.com/" + string(rune('a'+i))}
	}

	chunks := sitemap.SplitIntoSitemaps(urls, 2)

	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 2)
	assert.Len(t, chunks[1], 2)
	assert.Len(t, chunks[2], 1)

	// Concatenating the chunks reproduces the input order.
	var flat []domain.SitemapURL
	for _, c := range chunks {
		flat = append(flat, c...)
	}
	assert.Equal(t, urls, flat)
}

func TestSplitIntoSitemaps_EdgeCases(t *testing.T) {
	t.Run("empty input yields no chunks", func(t *testing.T) {
		assert.Nil(t, sitemap.SplitIntoSitemaps(nil, 100))
	})

	t.Run("non positive max falls back to default", func(t *testing.T) {
		urls := []domain.SitemapURL{{Loc: "https://cutiepawspedia.com/nl"}}
		chunks := sitemap.SplitIntoSitemaps(urls, 0)
		require.Len(t, chunks, 1)
		assert.Len(t, chunks[0], 1)
	})

	t.Run("exact multiple", func(t *testing.T) {
		urls := make([]domain.SitemapURL, 4)
		chunks := sitemap.SplitIntoSitemaps(urls, 2)
		require.Len(t, chunks, 2)
	})
}

func TestGetSitemapStats(t *testing.T) {
	stats := sitemap.GetSitemapStats([]domain.SitemapURL{
		{Loc: "a", LastMod: "2026-01-01", ChangeFreq: domain.FreqDaily, Priority: 1.0, HasPriority: true},
		{Loc: "b", ChangeFreq: domain.FreqWeekly},
		{Loc: "c", ChangeFreq: domain.FreqWeekly},
	})

	assert.Equal(t, 3, stats.TotalURLs)
	assert.Equal(t, 1, stats.WithLastMod)
	assert.Equal(t, 1, stats.WithPriority)
	assert.Equal(t, 1, stats.ByChangeFreq[domain.FreqDaily])
	assert.Equal(t, 2, stats.ByChangeFreq[domain.FreqWeekly])
}

func TestValidateSitemapURL(t *testing.T) {
	tests := []struct {
		name     string
		url      domain.SitemapURL
		expected []string
	}{
		{
			name:     "valid entry",
			url:      domain.SitemapURL{Loc: "https://cutiepawspedia.com/nl", LastMod: "2026-08-31", Priority: 0.8, HasPriority: true},
			expected: nil,
		},
		{
			name:     "missing loc",
			url:      domain.SitemapURL{},
			expected: []string{"missing loc"},
		},
		{
			name:     "relative url",
			url:      domain.SitemapURL{Loc: "/nl/netherlands"},
			expected: []string{"Invalid URL format: /nl/netherlands"},
		},
		{
			name:     "bad lastmod",
			url:      domain.SitemapURL{Loc: "https://cutiepawspedia.com/nl", LastMod: "31-08-2026"},
			expected: []string{`invalid lastmod "31-08-2026": expected YYYY-MM-DD`},
		},
		{
			name:     "priority above one",
			url:      domain.SitemapURL{Loc: "https://cutiepawspedia.com/nl", Priority: 1.5, HasPriority: true},
			expected: []string{"priority 1.5 out of range [0,1]"},
		},
		{
			name:     "unset priority is not validated",
			url:      domain.SitemapURL{Loc: "https://cutiepawspedia.com/nl", Priority: 9},
			expected: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, sitemap.ValidateSitemapURL(tc.url))
		})
	}
}

func TestValidateSitemap(t *testing.T) {
	report := sitemap.ValidateSitemap([]domain.SitemapURL{
		{Loc: "https://cutiepawspedia.com/nl"},
		{},
	})

	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "url[1]: missing loc", report.Errors[0])
}

func TestValidateSitemap_EmptyInput(t *testing.T) {
	report := sitemap.ValidateSitemap(nil)

	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)
}

func TestValidateSitemap_AllValid(t *testing.T) {
	report := sitemap.ValidateSitemap([]domain.SitemapURL{
		{Loc: "https://cutiepawspedia.com/nl"},
	})

	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)
}
