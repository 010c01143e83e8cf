package sitemap

import (
	"context"
	"strings"
	"time"

	"github.com/MarvinNL046/cutiepawspedia/internal/domain"
	"github.com/MarvinNL046/cutiepawspedia/internal/links"
)

// DefaultMaxURLsPerSitemap is the per-file cap when the config does not
// supply one. The protocol allows 50,000; we split earlier to keep
// files comfortably under the size limit.
const DefaultMaxURLsPerSitemap = 25000

// lastModLayout is the date format written into <lastmod>.
const lastModLayout = "2006-01-02"

// staticPages are the fixed content pages included in the static
// section, one per locale.
var staticPages = []string{
	"about",
	"contact",
	"pricing",
	"for-businesses",
	"privacy",
	"terms",
}

// Source supplies the directory rows the section builders enumerate.
// Implementations must return rows in a stable order so sitemap output
// is deterministic across runs.
type Source interface {
	Countries(ctx context.Context) ([]domain.CountryRow, error)
	Provinces(ctx context.Context) ([]domain.ProvinceRow, error)
	Cities(ctx context.Context) ([]domain.CityRow, error)
	Categories(ctx context.Context) ([]domain.CategoryRow, error)
	Places(ctx context.Context) ([]domain.PlaceRow, error)
	CityCategoryPairs(ctx context.Context) ([]domain.CityCategoryPair, error)
	CountryCategoryPairs(ctx context.Context) ([]domain.CountryCategoryPair, error)
}

// URLBuilder emits SitemapURL records section by section. A nil source
// is a soft-disabled state: every builder returns an empty slice so a
// partially configured environment degrades to empty sections instead
// of failing the whole job.
//
// In every builder the locale loop is the innermost loop, so all
// locales for entity N precede entity N+1 in the output.
type URLBuilder struct {
	src Source
	cfg domain.SitemapConfig
}

// NewURLBuilder creates a URLBuilder for the given source and config.
func NewURLBuilder(src Source, cfg domain.SitemapConfig) *URLBuilder {
	if cfg.MaxURLsPerSitemap <= 0 {
		cfg.MaxURLsPerSitemap = DefaultMaxURLsPerSitemap
	}
	if len(cfg.Locales) == 0 {
		cfg.Locales = domain.SupportedLocales
	}
	return &URLBuilder{src: src, cfg: cfg}
}

// abs resolves a path against the configured base URL.
func (b *URLBuilder) abs(path string) string {
	return strings.TrimRight(b.cfg.BaseURL, "/") + path
}

// entry builds one SitemapURL with table-driven priority/changefreq.
func (b *URLBuilder) entry(path, pageType string, updatedAt time.Time) domain.SitemapURL {
	u := domain.SitemapURL{
		Loc:        b.abs(path),
		ChangeFreq: changeFreqFor(pageType),
	}
	if p, ok := priorityFor(pageType); ok {
		u.Priority = p
		u.HasPriority = true
	}
	if !updatedAt.IsZero() {
		u.LastMod = updatedAt.UTC().Format(lastModLayout)
	}
	return u
}

// BuildHomeURLs emits the locale home pages.
func (b *URLBuilder) BuildHomeURLs(_ context.Context) ([]domain.SitemapURL, error) {
	if b.src == nil {
		return []domain.SitemapURL{}, nil
	}

	urls := make([]domain.SitemapURL, 0, len(b.cfg.Locales))
	for _, locale := range b.cfg.Locales {
		urls = append(urls, b.entry("/"+string(locale), pageHome, time.Time{}))
	}
	return urls, nil
}

// BuildCountryURLs emits one URL per country per locale.
func (b *URLBuilder) BuildCountryURLs(ctx context.Context) ([]domain.SitemapURL, error) {
	if b.src == nil {
		return []domain.SitemapURL{}, nil
	}

	rows, err := b.src.Countries(ctx)
	if err != nil {
		return nil, err
	}

	urls := make([]domain.SitemapURL, 0, len(rows)*len(b.cfg.Locales))
	for _, row := range rows {
		for _, locale := range b.cfg.Locales {
			path := links.BuildLinkURL(links.URLParams{Locale: locale, CountrySlug: row.Slug})
			urls = append(urls, b.entry(path, pageCountry, row.UpdatedAt))
		}
	}
	return urls, nil
}

// BuildProvinceURLs emits province pages. Provinces sit between the
// country and city entries in importance, so the priority is a
// hardcoded 0.85 rather than a table value.
func (b *URLBuilder) BuildProvinceURLs(ctx context.Context) ([]domain.SitemapURL, error) {
	if b.src == nil {
		return []domain.SitemapURL{}, nil
	}

	rows, err := b.src.Provinces(ctx)
	if err != nil {
		return nil, err
	}

	urls := make([]domain.SitemapURL, 0, len(rows)*len(b.cfg.Locales))
	for _, row := range rows {
		for _, locale := range b.cfg.Locales {
			u := domain.SitemapURL{
				Loc:         b.abs("/" + string(locale) + "/" + row.CountrySlug + "/" + row.Slug),
				ChangeFreq:  changeFreqFor(pageCity),
				Priority:    provincePriority,
				HasPriority: true,
			}
			if !row.UpdatedAt.IsZero() {
				u.LastMod = row.UpdatedAt.UTC().Format(lastModLayout)
			}
			urls = append(urls, u)
		}
	}
	return urls, nil
}

// BuildCityURLs emits one URL per city per locale.
func (b *URLBuilder) BuildCityURLs(ctx context.Context) ([]domain.SitemapURL, error) {
	if b.src == nil {
		return []domain.SitemapURL{}, nil
	}

	rows, err := b.src.Cities(ctx)
	if err != nil {
		return nil, err
	}

	urls := make([]domain.SitemapURL, 0, len(rows)*len(b.cfg.Locales))
	for _, row := range rows {
		for _, locale := range b.cfg.Locales {
			path := links.BuildLinkURL(links.URLParams{
				Locale:      locale,
				CountrySlug: row.CountrySlug,
				CitySlug:    row.Slug,
			})
			urls = append(urls, b.entry(path, pageCity, row.UpdatedAt))
		}
	}
	return urls, nil
}

// BuildCategoryURLs emits the country-level category landing pages
// (the /c/ route) for every country x category combination.
func (b *URLBuilder) BuildCategoryURLs(ctx context.Context) ([]domain.SitemapURL, error) {
	if b.src == nil {
		return []domain.SitemapURL{}, nil
	}

	countries, err := b.src.Countries(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := b.src.Categories(ctx)
	if err != nil {
		return nil, err
	}

	urls := make([]domain.SitemapURL, 0, len(countries)*len(categories)*len(b.cfg.Locales))
	for _, country := range countries {
		for _, category := range categories {
			for _, locale := range b.cfg.Locales {
				path := links.BuildLinkURL(links.URLParams{
					Locale:       locale,
					CountrySlug:  country.Slug,
					CategorySlug: category.Slug,
					Type:         domain.RouteCategory,
				})
				urls = append(urls, b.entry(path, pageCategory, category.UpdatedAt))
			}
		}
	}
	return urls, nil
}

// BuildPlaceURLs emits place detail pages. Permanently closed places
// are filtered out before emission. A place carrying several categories
// arrives as one row per category; only the first row forms the
// canonical URL, so such a place emits exactly len(locales) URLs. The
// seen set guards against emitting any full URL twice.
func (b *URLBuilder) BuildPlaceURLs(ctx context.Context) ([]domain.SitemapURL, error) {
	if b.src == nil {
		return []domain.SitemapURL{}, nil
	}

	rows, err := b.src.Places(ctx)
	if err != nil {
		return nil, err
	}

	seenPlace := make(map[string]struct{}, len(rows))
	seenURL := make(map[string]struct{}, len(rows)*len(b.cfg.Locales))

	urls := make([]domain.SitemapURL, 0, len(rows)*len(b.cfg.Locales))
	for _, row := range rows {
		if row.Status == domain.PlaceStatusPermanentlyClosed {
			continue
		}

		placeKey := row.CountrySlug + "/" + row.CitySlug + "/" + row.Slug
		if _, ok := seenPlace[placeKey]; ok {
			continue
		}
		seenPlace[placeKey] = struct{}{}

		pageType := pagePlace
		priority, _ := priorityFor(pagePlace)
		if row.Premium {
			priority = premiumPlacePriority
		}

		for _, locale := range b.cfg.Locales {
			path := links.BuildLinkURL(links.URLParams{
				Locale:       locale,
				CountrySlug:  row.CountrySlug,
				CitySlug:     row.CitySlug,
				CategorySlug: row.CategorySlug,
				PlaceSlug:    row.Slug,
			})
			loc := b.abs(path)
			if _, ok := seenURL[loc]; ok {
				continue
			}
			seenURL[loc] = struct{}{}

			u := domain.SitemapURL{
				Loc:         loc,
				ChangeFreq:  changeFreqFor(pageType),
				Priority:    priority,
				HasPriority: true,
			}
			if !row.UpdatedAt.IsZero() {
				u.LastMod = row.UpdatedAt.UTC().Format(lastModLayout)
			}
			urls = append(urls, u)
		}
	}
	return urls, nil
}

// BuildBestInCityURLs emits the /best route for every (city, category)
// pair with listed places.
func (b *URLBuilder) BuildBestInCityURLs(ctx context.Context) ([]domain.SitemapURL, error) {
	if b.src == nil {
		return []domain.SitemapURL{}, nil
	}

	rows, err := b.src.CityCategoryPairs(ctx)
	if err != nil {
		return nil, err
	}

	urls := make([]domain.SitemapURL, 0, len(rows)*len(b.cfg.Locales))
	for _, row := range rows {
		for _, locale := range b.cfg.Locales {
			path := links.BuildLinkURL(links.URLParams{
				Locale:       locale,
				CountrySlug:  row.CountrySlug,
				CitySlug:     row.CitySlug,
				CategorySlug: row.CategorySlug,
				Type:         domain.RouteBest,
			})
			urls = append(urls, b.entry(path, pageBest, row.UpdatedAt))
		}
	}
	return urls, nil
}

// BuildTopInCountryURLs emits the country-level /top route.
func (b *URLBuilder) BuildTopInCountryURLs(ctx context.Context) ([]domain.SitemapURL, error) {
	return b.buildCountryRankedURLs(ctx, domain.RouteTop, pageTop)
}

// BuildBestInCountryURLs emits the country-level /best route.
func (b *URLBuilder) BuildBestInCountryURLs(ctx context.Context) ([]domain.SitemapURL, error) {
	return b.buildCountryRankedURLs(ctx, domain.RouteBest, pageBest)
}

func (b *URLBuilder) buildCountryRankedURLs(
	ctx context.Context,
	route domain.RouteType,
	pageType string,
) ([]domain.SitemapURL, error) {
	if b.src == nil {
		return []domain.SitemapURL{}, nil
	}

	rows, err := b.src.CountryCategoryPairs(ctx)
	if err != nil {
		return nil, err
	}

	urls := make([]domain.SitemapURL, 0, len(rows)*len(b.cfg.Locales))
	for _, row := range rows {
		for _, locale := range b.cfg.Locales {
			path := links.BuildLinkURL(links.URLParams{
				Locale:       locale,
				CountrySlug:  row.CountrySlug,
				CategorySlug: row.CategorySlug,
				Type:         route,
			})
			urls = append(urls, b.entry(path, pageType, row.UpdatedAt))
		}
	}
	return urls, nil
}

// BuildStaticURLs emits the fixed content pages per locale.
func (b *URLBuilder) BuildStaticURLs(_ context.Context) ([]domain.SitemapURL, error) {
	if b.src == nil {
		return []domain.SitemapURL{}, nil
	}

	urls := make([]domain.SitemapURL, 0, len(staticPages)*len(b.cfg.Locales))
	for _, page := range staticPages {
		for _, locale := range b.cfg.Locales {
			urls = append(urls, b.entry("/"+string(locale)+"/"+page, pageStatic, time.Time{}))
		}
	}
	return urls, nil
}
