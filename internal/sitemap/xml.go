package sitemap

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/MarvinNL046/cutiepawspedia/internal/domain"
)

// sitemapNS is the sitemaps.org 0.9 namespace. Element names and the
// xmlns attribute must stay byte-exact for search-engine acceptance.
const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// lastModPattern accepts a YYYY-MM-DD date optionally followed by a
// time component, per the sitemap protocol's W3C datetime subset.
var lastModPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// escapeXML escapes the five XML entities in every user-controlled
// value before it is written into a document.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}

// BuildSitemapXML serializes one <urlset> document. An empty input
// yields a valid, empty urlset. Priority is always formatted to exactly
// one decimal place.
func BuildSitemapXML(urls []domain.SitemapURL) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<urlset xmlns="` + sitemapNS + `">` + "\n")

	for _, u := range urls {
		b.WriteString("<url>\n")
		b.WriteString("<loc>" + escapeXML(u.Loc) + "</loc>\n")
		if u.LastMod != "" {
			b.WriteString("<lastmod>" + escapeXML(u.LastMod) + "</lastmod>\n")
		}
		if u.ChangeFreq != "" {
			b.WriteString("<changefreq>" + string(u.ChangeFreq) + "</changefreq>\n")
		}
		if u.HasPriority {
			b.WriteString(fmt.Sprintf("<priority>%.1f</priority>\n", u.Priority))
		}
		b.WriteString("</url>\n")
	}

	b.WriteString("</urlset>\n")
	return b.String()
}

// BuildSitemapIndexXML serializes one <sitemapindex> document
// referencing the given section files. Section paths are resolved
// against baseURL.
func BuildSitemapIndexXML(baseURL string, sections []domain.SitemapSection) string {
	base := strings.TrimRight(baseURL, "/")

	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<sitemapindex xmlns="` + sitemapNS + `">` + "\n")

	for _, s := range sections {
		b.WriteString("<sitemap>\n")
		b.WriteString("<loc>" + escapeXML(base+s.Path) + "</loc>\n")
		if s.LastMod != "" {
			b.WriteString("<lastmod>" + escapeXML(s.LastMod) + "</lastmod>\n")
		}
		b.WriteString("</sitemap>\n")
	}

	b.WriteString("</sitemapindex>\n")
	return b.String()
}

// SplitIntoSitemaps partitions a flat URL list into chunks of at most
// maxPerSitemap entries. The partition preserves input order with no
// overlap and no reordering; concatenating the chunks reproduces the
// input.
func SplitIntoSitemaps(urls []domain.SitemapURL, maxPerSitemap int) [][]domain.SitemapURL {
	if maxPerSitemap <= 0 {
		maxPerSitemap = DefaultMaxURLsPerSitemap
	}
	if len(urls) == 0 {
		return nil
	}

	chunks := make([][]domain.SitemapURL, 0, (len(urls)+maxPerSitemap-1)/maxPerSitemap)
	for start := 0; start < len(urls); start += maxPerSitemap {
		end := start + maxPerSitemap
		if end > len(urls) {
			end = len(urls)
		}
		chunks = append(chunks, urls[start:end])
	}
	return chunks
}

// Stats summarizes a URL list for diagnostics.
type Stats struct {
	TotalURLs    int                       `json:"totalUrls"`
	WithLastMod  int                       `json:"withLastmod"`
	WithPriority int                       `json:"withPriority"`
	ByChangeFreq map[domain.ChangeFreq]int `json:"byChangefreq"`
}

// GetSitemapStats computes read-only statistics over a URL list.
func GetSitemapStats(urls []domain.SitemapURL) Stats {
	stats := Stats{ByChangeFreq: make(map[domain.ChangeFreq]int)}
	stats.TotalURLs = len(urls)
	for _, u := range urls {
		if u.LastMod != "" {
			stats.WithLastMod++
		}
		if u.HasPriority {
			stats.WithPriority++
		}
		if u.ChangeFreq != "" {
			stats.ByChangeFreq[u.ChangeFreq]++
		}
	}
	return stats
}

// ValidationReport collects validation findings. Validation is
// advisory: callers may ignore an invalid report and publish anyway.
type ValidationReport struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidateSitemapURL checks one entry and returns the violations found:
// loc must be present and a syntactically valid absolute URL, lastmod
// must start with a YYYY-MM-DD date, and priority must lie in [0,1].
func ValidateSitemapURL(u domain.SitemapURL) []string {
	var errs []string

	if u.Loc == "" {
		errs = append(errs, "missing loc")
	} else if parsed, err := url.Parse(u.Loc); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		errs = append(errs, fmt.Sprintf("Invalid URL format: %s", u.Loc))
	}

	if u.LastMod != "" && !lastModPattern.MatchString(u.LastMod) {
		errs = append(errs, fmt.Sprintf("invalid lastmod %q: expected YYYY-MM-DD", u.LastMod))
	}

	if u.HasPriority && (u.Priority < 0 || u.Priority > 1) {
		errs = append(errs, fmt.Sprintf("priority %v out of range [0,1]", u.Priority))
	}

	return errs
}

// ValidateSitemap validates every entry and aggregates the findings.
// Violations are collected, never thrown.
func ValidateSitemap(urls []domain.SitemapURL) ValidationReport {
	report := ValidationReport{Valid: true, Errors: []string{}}
	for i, u := range urls {
		for _, e := range ValidateSitemapURL(u) {
			report.Valid = false
			report.Errors = append(report.Errors, fmt.Sprintf("url[%d]: %s", i, e))
		}
	}
	return report
}
