package links

import (
	"context"

	"github.com/MarvinNL046/cutiepawspedia/internal/domain"
)

// DefaultLinkLimit is the global cap applied to the flattened link list
// when the caller does not supply one.
const DefaultLinkLimit = 8

// StatsProvider supplies the entity counts and ratings the builders
// consume. It is the seam to the query layer: the engine depends only
// on this interface, never on a storage package. Rows must arrive
// already ranked (descending count or rating); builders do not re-sort.
type StatsProvider interface {
	// CategoriesForCity returns categories ranked by place count for
	// one city.
	CategoriesForCity(ctx context.Context, countrySlug, citySlug string, limit int) ([]domain.CategoryLinkStats, error)

	// CitiesForCategory returns cities ranked by place count for one
	// category.
	CitiesForCategory(ctx context.Context, countrySlug, categorySlug string, limit int) ([]domain.CityLinkStats, error)

	// RelatedPlaces returns places related to the given place, ranked
	// by rating.
	RelatedPlaces(ctx context.Context, placeID string, limit int) ([]domain.RelatedPlaceLink, error)

	// TopCategoriesForCountry returns the country-level top categories.
	TopCategoriesForCountry(ctx context.Context, countrySlug string, limit int) ([]domain.CategoryLinkStats, error)

	// TopCitiesForCountry returns the country-level top cities.
	TopCitiesForCountry(ctx context.Context, countrySlug string, limit int) ([]domain.CityLinkStats, error)
}

// Service is the link orchestrator: a single dispatch keyed on page
// type. It fetches only the stats that page type needs, invokes the
// matching builders in a fixed order, flattens, and truncates.
type Service struct {
	provider StatsProvider
}

// NewService creates a link orchestrator backed by the given provider.
func NewService(provider StatsProvider) *Service {
	return &Service{provider: provider}
}

// LinksForPage assembles the internal links for one page. Missing
// required context fields degrade to an empty result rather than an
// error; provider failures propagate unchanged with no retry and no
// logging here. Empty groups stay in Groups so the template layer sees
// the page structure it asked for.
func (s *Service) LinksForPage(
	ctx context.Context,
	pctx domain.PageContext,
	opts domain.InternalLinkOptions,
) (domain.InternalLinksResult, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLinkLimit
	}

	groups, err := s.groupsForPage(ctx, pctx)
	if err != nil {
		return domain.InternalLinksResult{}, err
	}

	// Flatten after all groups are built; truncation happens only here,
	// so earlier groups are never starved by construction order but
	// later groups can be fully dropped once the cap is reached.
	total := 0
	for _, g := range groups {
		total += len(g.Links)
	}

	flat := make([]domain.InternalLinkItem, 0, total)
	for _, g := range groups {
		flat = append(flat, g.Links...)
	}
	if len(flat) > limit {
		flat = flat[:limit]
	}

	return domain.InternalLinksResult{
		Links:          flat,
		Groups:         groups,
		TotalAvailable: total,
		Context:        pctx,
	}, nil
}

func (s *Service) groupsForPage(ctx context.Context, pctx domain.PageContext) ([]domain.InternalLinkGroup, error) {
	// No data source is the soft-disabled state: empty result, no error.
	if s.provider == nil {
		return []domain.InternalLinkGroup{}, nil
	}

	switch pctx.PageType {
	case domain.PageCity:
		return s.cityGroups(ctx, pctx)
	case domain.PageCategory:
		return s.categoryGroups(ctx, pctx)
	case domain.PagePlace:
		return s.placeGroups(ctx, pctx)
	case domain.PageCountry, domain.PageHome:
		return s.countryGroups(ctx, pctx)
	case domain.PageCombo:
		return s.comboGroups(ctx, pctx)
	case domain.PageBest:
		return s.bestGroups(ctx, pctx)
	case domain.PageTop:
		return s.topGroups(ctx, pctx)
	default:
		return []domain.InternalLinkGroup{}, nil
	}
}

// cityGroups produces at most two groups: categories in the city and
// best-of links, both fed by a single stats query.
func (s *Service) cityGroups(ctx context.Context, pctx domain.PageContext) ([]domain.InternalLinkGroup, error) {
	if pctx.CountrySlug == "" || pctx.CitySlug == "" {
		return []domain.InternalLinkGroup{}, nil
	}

	stats, err := s.provider.CategoriesForCity(ctx, pctx.CountrySlug, pctx.CitySlug, DefaultCategoryLinkLimit)
	if err != nil {
		return nil, err
	}

	return []domain.InternalLinkGroup{
		BuildCategoryLinksForCity(pctx.Locale, pctx.CountrySlug, pctx.CitySlug, cityName(pctx), stats, DefaultCategoryLinkLimit),
		BuildCityBestLinks(pctx.Locale, pctx.CountrySlug, pctx.CitySlug, cityName(pctx), stats, DefaultBestLinkLimit),
	}, nil
}

// categoryGroups fetches only city-for-category stats, never the
// reverse direction.
func (s *Service) categoryGroups(ctx context.Context, pctx domain.PageContext) ([]domain.InternalLinkGroup, error) {
	if pctx.CountrySlug == "" || pctx.CategorySlug == "" {
		return []domain.InternalLinkGroup{}, nil
	}

	stats, err := s.provider.CitiesForCategory(ctx, pctx.CountrySlug, pctx.CategorySlug, DefaultCityLinkLimit)
	if err != nil {
		return nil, err
	}

	return []domain.InternalLinkGroup{
		BuildCityLinksForCategory(pctx.Locale, pctx.CountrySlug, pctx.CategorySlug, categoryName(pctx), stats, DefaultCityLinkLimit),
	}, nil
}

// placeGroups always pushes related places before the context links.
func (s *Service) placeGroups(ctx context.Context, pctx domain.PageContext) ([]domain.InternalLinkGroup, error) {
	if pctx.PlaceID == "" || pctx.CitySlug == "" || pctx.CategorySlug == "" || pctx.CountrySlug == "" {
		return []domain.InternalLinkGroup{}, nil
	}

	related, err := s.provider.RelatedPlaces(ctx, pctx.PlaceID, DefaultRelatedPlaceLimit)
	if err != nil {
		return nil, err
	}

	return []domain.InternalLinkGroup{
		BuildRelatedPlaceLinks(pctx.Locale, pctx.CountrySlug, pctx.CitySlug, pctx.CategorySlug, related, DefaultRelatedPlaceLimit),
		BuildPlaceContextLinks(pctx.Locale, pctx.CountrySlug, countryName(pctx), pctx.CitySlug, cityName(pctx), pctx.CategorySlug, categoryName(pctx)),
	}, nil
}

func (s *Service) countryGroups(ctx context.Context, pctx domain.PageContext) ([]domain.InternalLinkGroup, error) {
	if pctx.CountrySlug == "" {
		return []domain.InternalLinkGroup{}, nil
	}

	cities, err := s.provider.TopCitiesForCountry(ctx, pctx.CountrySlug, DefaultExploreCityLimit)
	if err != nil {
		return nil, err
	}
	categories, err := s.provider.TopCategoriesForCountry(ctx, pctx.CountrySlug, DefaultExploreCatLimit)
	if err != nil {
		return nil, err
	}

	return BuildCountryExploreLinks(
		pctx.Locale, pctx.CountrySlug, countryName(pctx),
		cities, categories,
		DefaultExploreCityLimit, DefaultExploreCatLimit,
	), nil
}

// comboGroups serves the city+category combination page: sibling
// categories in the same city, then the same category in other cities.
func (s *Service) comboGroups(ctx context.Context, pctx domain.PageContext) ([]domain.InternalLinkGroup, error) {
	if pctx.CountrySlug == "" || pctx.CitySlug == "" || pctx.CategorySlug == "" {
		return []domain.InternalLinkGroup{}, nil
	}

	categories, err := s.provider.CategoriesForCity(ctx, pctx.CountrySlug, pctx.CitySlug, DefaultCategoryLinkLimit)
	if err != nil {
		return nil, err
	}
	cities, err := s.provider.CitiesForCategory(ctx, pctx.CountrySlug, pctx.CategorySlug, DefaultCityLinkLimit)
	if err != nil {
		return nil, err
	}

	return []domain.InternalLinkGroup{
		BuildCategoryLinksForCity(pctx.Locale, pctx.CountrySlug, pctx.CitySlug, cityName(pctx), categories, DefaultCategoryLinkLimit),
		BuildCityLinksForCategory(pctx.Locale, pctx.CountrySlug, pctx.CategorySlug, categoryName(pctx), cities, DefaultCityLinkLimit),
	}, nil
}

// bestGroups serves /best pages: city-scoped when a city is present,
// country-scoped otherwise.
func (s *Service) bestGroups(ctx context.Context, pctx domain.PageContext) ([]domain.InternalLinkGroup, error) {
	if pctx.CountrySlug == "" {
		return []domain.InternalLinkGroup{}, nil
	}

	if pctx.CitySlug != "" {
		stats, err := s.provider.CategoriesForCity(ctx, pctx.CountrySlug, pctx.CitySlug, DefaultBestLinkLimit)
		if err != nil {
			return nil, err
		}
		return []domain.InternalLinkGroup{
			BuildCityBestLinks(pctx.Locale, pctx.CountrySlug, pctx.CitySlug, cityName(pctx), stats, DefaultBestLinkLimit),
		}, nil
	}

	stats, err := s.provider.TopCategoriesForCountry(ctx, pctx.CountrySlug, DefaultBestLinkLimit)
	if err != nil {
		return nil, err
	}
	return []domain.InternalLinkGroup{
		BuildCountryBestLinks(pctx.Locale, pctx.CountrySlug, countryName(pctx), stats, DefaultBestLinkLimit),
	}, nil
}

// topGroups cross-links /top pages to the best-of pages for the same
// country.
func (s *Service) topGroups(ctx context.Context, pctx domain.PageContext) ([]domain.InternalLinkGroup, error) {
	if pctx.CountrySlug == "" {
		return []domain.InternalLinkGroup{}, nil
	}

	stats, err := s.provider.TopCategoriesForCountry(ctx, pctx.CountrySlug, DefaultBestLinkLimit)
	if err != nil {
		return nil, err
	}
	return []domain.InternalLinkGroup{
		BuildCountryBestLinks(pctx.Locale, pctx.CountrySlug, countryName(pctx), stats, DefaultBestLinkLimit),
	}, nil
}

// Display-name helpers: pages pass human names through the context when
// they have them; slugs are an acceptable stand-in otherwise.

func cityName(pctx domain.PageContext) string {
	if pctx.CityName != "" {
		return pctx.CityName
	}
	return pctx.CitySlug
}

func categoryName(pctx domain.PageContext) string {
	if pctx.CategoryName != "" {
		return pctx.CategoryName
	}
	return pctx.CategorySlug
}

func countryName(pctx domain.PageContext) string {
	if pctx.CountryName != "" {
		return pctx.CountryName
	}
	return pctx.CountrySlug
}
