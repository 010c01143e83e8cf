package links

import (
	"strconv"

	"github.com/MarvinNL046/cutiepawspedia/internal/domain"
)

// Default per-builder limits. The orchestrator applies its own global
// cap after flattening; these bound the individual groups.
const (
	DefaultCategoryLinkLimit = 6
	DefaultCityLinkLimit     = 6
	DefaultRelatedPlaceLimit = 4
	DefaultExploreCityLimit  = 5
	DefaultExploreCatLimit   = 5
	DefaultBestLinkLimit     = 4
)

// ratingScoreScale converts a 0-5 rating to the common 0-100 relevance
// scale (a 5-star place scores 100).
const ratingScoreScale = 20

// Fixed relevance scores for the four synthesized place-context links.
const (
	scoreAllInCityCategory  = 100
	scoreBestInCityCategory = 90
	scoreAllInCity          = 80
	scoreCategoryInCountry  = 70
)

// BuildCategoryLinksForCity turns ranked category stats for one city
// into a link group. The stats must already be ranked by PlacesCount;
// the builder only slices to limit and sets RelevanceScore from the
// count.
func BuildCategoryLinksForCity(
	locale domain.Locale,
	countrySlug, citySlug, cityName string,
	stats []domain.CategoryLinkStats,
	limit int,
) domain.InternalLinkGroup {
	if limit <= 0 {
		limit = DefaultCategoryLinkLimit
	}
	if len(stats) > limit {
		stats = stats[:limit]
	}

	items := make([]domain.InternalLinkItem, 0, len(stats))
	for _, s := range stats {
		items = append(items, domain.InternalLinkItem{
			Href: BuildLinkURL(URLParams{
				Locale:       locale,
				CountrySlug:  countrySlug,
				CitySlug:     citySlug,
				CategorySlug: s.CategorySlug,
			}),
			Label: s.CategoryName,
			Description: T(locale, "desc.services_in_city", map[string]string{
				"count": strconv.Itoa(s.PlacesCount),
				"city":  cityName,
			}),
			Type:           domain.LinkCategoryInCity,
			RelevanceScore: s.PlacesCount,
		})
	}

	return domain.InternalLinkGroup{
		Title:      T(locale, "group.categories_in_city", map[string]string{"city": cityName}),
		Links:      items,
		MaxDisplay: limit,
	}
}

// BuildCityLinksForCategory is the mirror of BuildCategoryLinksForCity:
// ranked cities for one category.
func BuildCityLinksForCategory(
	locale domain.Locale,
	countrySlug, categorySlug, categoryName string,
	stats []domain.CityLinkStats,
	limit int,
) domain.InternalLinkGroup {
	if limit <= 0 {
		limit = DefaultCityLinkLimit
	}
	if len(stats) > limit {
		stats = stats[:limit]
	}

	items := make([]domain.InternalLinkItem, 0, len(stats))
	for _, s := range stats {
		items = append(items, domain.InternalLinkItem{
			Href: BuildLinkURL(URLParams{
				Locale:       locale,
				CountrySlug:  countrySlug,
				CitySlug:     s.CitySlug,
				CategorySlug: categorySlug,
			}),
			Label: s.CityName,
			Description: T(locale, "desc.category_in_city_count", map[string]string{
				"count":    strconv.Itoa(s.PlacesCount),
				"category": categoryName,
				"city":     s.CityName,
			}),
			Type:           domain.LinkCityInCategory,
			RelevanceScore: s.PlacesCount,
		})
	}

	return domain.InternalLinkGroup{
		Title:      T(locale, "group.cities_for_category", map[string]string{"category": categoryName}),
		Links:      items,
		MaxDisplay: limit,
	}
}

// BuildRelatedPlaceLinks converts related places into a link group.
// The 0-5 rating maps to a 0-100 RelevanceScore; unrated places score
// zero and sort last if the caller re-ranks.
func BuildRelatedPlaceLinks(
	locale domain.Locale,
	countrySlug, citySlug, categorySlug string,
	places []domain.RelatedPlaceLink,
	limit int,
) domain.InternalLinkGroup {
	if limit <= 0 {
		limit = DefaultRelatedPlaceLimit
	}
	if len(places) > limit {
		places = places[:limit]
	}

	items := make([]domain.InternalLinkItem, 0, len(places))
	for _, p := range places {
		items = append(items, domain.InternalLinkItem{
			Href: BuildLinkURL(URLParams{
				Locale:       locale,
				CountrySlug:  countrySlug,
				CitySlug:     citySlug,
				CategorySlug: categorySlug,
				PlaceSlug:    p.PlaceSlug,
			}),
			Label:          p.PlaceName,
			Type:           domain.LinkRelatedPlace,
			RelevanceScore: int(p.Rating * ratingScoreScale),
		})
	}

	return domain.InternalLinkGroup{
		Title:      T(locale, "group.related_places", nil),
		Links:      items,
		MaxDisplay: limit,
	}
}

// BuildPlaceContextLinks synthesizes the four fixed navigational links
// for a place page. Unlike the other builders it consumes no stats:
// these links must always exist regardless of data availability, so
// they carry hardcoded descending relevance scores.
func BuildPlaceContextLinks(
	locale domain.Locale,
	countrySlug, countryName, citySlug, cityName, categorySlug, categoryName string,
) domain.InternalLinkGroup {
	items := []domain.InternalLinkItem{
		{
			Href: BuildLinkURL(URLParams{
				Locale:       locale,
				CountrySlug:  countrySlug,
				CitySlug:     citySlug,
				CategorySlug: categorySlug,
			}),
			Label: T(locale, "label.all_category_in_city", map[string]string{
				"category": categoryName,
				"city":     cityName,
			}),
			Type:           domain.LinkAllInCityCategory,
			RelevanceScore: scoreAllInCityCategory,
		},
		{
			Href: BuildLinkURL(URLParams{
				Locale:       locale,
				CountrySlug:  countrySlug,
				CitySlug:     citySlug,
				CategorySlug: categorySlug,
				Type:         domain.RouteBest,
			}),
			Label: T(locale, "label.best_category_in_scope", map[string]string{
				"category": categoryName,
				"scope":    cityName,
			}),
			Type:           domain.LinkBestInCityCategory,
			RelevanceScore: scoreBestInCityCategory,
		},
		{
			Href: BuildLinkURL(URLParams{
				Locale:      locale,
				CountrySlug: countrySlug,
				CitySlug:    citySlug,
			}),
			Label:          T(locale, "label.all_in_city", map[string]string{"city": cityName}),
			Type:           domain.LinkAllInCity,
			RelevanceScore: scoreAllInCity,
		},
		{
			Href: BuildLinkURL(URLParams{
				Locale:       locale,
				CountrySlug:  countrySlug,
				CategorySlug: categorySlug,
				Type:         domain.RouteCategory,
			}),
			Label: T(locale, "label.category_in_country", map[string]string{
				"category": categoryName,
				"country":  countryName,
			}),
			Type:           domain.LinkCategoryInCountry,
			RelevanceScore: scoreCategoryInCountry,
		},
	}

	return domain.InternalLinkGroup{
		Title: T(locale, "group.place_context", nil),
		Links: items,
	}
}

// BuildCountryExploreLinks returns two groups from one call (the only
// builder with multiplicity above one): popular cities and popular
// categories for a country landing page.
func BuildCountryExploreLinks(
	locale domain.Locale,
	countrySlug, countryName string,
	cities []domain.CityLinkStats,
	categories []domain.CategoryLinkStats,
	cityLimit, categoryLimit int,
) []domain.InternalLinkGroup {
	if cityLimit <= 0 {
		cityLimit = DefaultExploreCityLimit
	}
	if categoryLimit <= 0 {
		categoryLimit = DefaultExploreCatLimit
	}
	if len(cities) > cityLimit {
		cities = cities[:cityLimit]
	}
	if len(categories) > categoryLimit {
		categories = categories[:categoryLimit]
	}

	cityItems := make([]domain.InternalLinkItem, 0, len(cities))
	for _, c := range cities {
		cityItems = append(cityItems, domain.InternalLinkItem{
			Href: BuildLinkURL(URLParams{
				Locale:      locale,
				CountrySlug: countrySlug,
				CitySlug:    c.CitySlug,
			}),
			Label:          c.CityName,
			Type:           domain.LinkCountryCity,
			RelevanceScore: c.PlacesCount,
		})
	}

	categoryItems := make([]domain.InternalLinkItem, 0, len(categories))
	for _, c := range categories {
		categoryItems = append(categoryItems, domain.InternalLinkItem{
			Href: BuildLinkURL(URLParams{
				Locale:       locale,
				CountrySlug:  countrySlug,
				CategorySlug: c.CategorySlug,
				Type:         domain.RouteCategory,
			}),
			Label:          c.CategoryName,
			Type:           domain.LinkCountryCategory,
			RelevanceScore: c.PlacesCount,
		})
	}

	return []domain.InternalLinkGroup{
		{
			Title:      T(locale, "group.explore_cities", map[string]string{"country": countryName}),
			Links:      cityItems,
			MaxDisplay: cityLimit,
		},
		{
			Title:      T(locale, "group.explore_categories", nil),
			Links:      categoryItems,
			MaxDisplay: categoryLimit,
		},
	}
}

// BuildCityBestLinks produces "Best X in city" links using the best
// route type.
func BuildCityBestLinks(
	locale domain.Locale,
	countrySlug, citySlug, cityName string,
	stats []domain.CategoryLinkStats,
	limit int,
) domain.InternalLinkGroup {
	return buildBestLinks(locale, countrySlug, citySlug, cityName, domain.LinkCityBest, stats, limit)
}

// BuildCountryBestLinks is the country-scope twin of BuildCityBestLinks:
// same shape, no city passed into the URL builder.
func BuildCountryBestLinks(
	locale domain.Locale,
	countrySlug, countryName string,
	stats []domain.CategoryLinkStats,
	limit int,
) domain.InternalLinkGroup {
	return buildBestLinks(locale, countrySlug, "", countryName, domain.LinkCountryBest, stats, limit)
}

func buildBestLinks(
	locale domain.Locale,
	countrySlug, citySlug, scopeName string,
	linkType domain.LinkType,
	stats []domain.CategoryLinkStats,
	limit int,
) domain.InternalLinkGroup {
	if limit <= 0 {
		limit = DefaultBestLinkLimit
	}
	if len(stats) > limit {
		stats = stats[:limit]
	}

	titleKey := "group.best_in_city"
	titleVar := "city"
	if citySlug == "" {
		titleKey = "group.best_in_country"
		titleVar = "country"
	}

	items := make([]domain.InternalLinkItem, 0, len(stats))
	for _, s := range stats {
		items = append(items, domain.InternalLinkItem{
			Href: BuildLinkURL(URLParams{
				Locale:       locale,
				CountrySlug:  countrySlug,
				CitySlug:     citySlug,
				CategorySlug: s.CategorySlug,
				Type:         domain.RouteBest,
			}),
			Label: T(locale, "label.best_category_in_scope", map[string]string{
				"category": s.CategoryName,
				"scope":    scopeName,
			}),
			Type:           linkType,
			RelevanceScore: s.PlacesCount,
		})
	}

	return domain.InternalLinkGroup{
		Title:      T(locale, titleKey, map[string]string{titleVar: scopeName}),
		Links:      items,
		MaxDisplay: limit,
	}
}
