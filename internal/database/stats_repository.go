package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/MarvinNL046/cutiepawspedia/internal/domain"
)

// StatsRepository answers the entity-stats and sitemap-source queries.
// It implements links.StatsProvider and sitemap.Source. All reads
// return rows ranked or stably ordered in SQL; consumers never re-sort.
//
// Display names come from the default-locale column (Dutch first,
// English fallback); per-locale name resolution is a rendering concern
// outside this layer.
type StatsRepository struct {
	db *sqlx.DB
}

// NewStatsRepository creates a StatsRepository.
func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// CategoriesForCity returns categories ranked by place count for one
// city.
func (r *StatsRepository) CategoriesForCity(
	ctx context.Context,
	countrySlug, citySlug string,
	limit int,
) ([]domain.CategoryLinkStats, error) {
	query := `
		SELECT c.slug AS category_slug,
		       COALESCE(c.name_nl, c.name_en) AS category_name,
		       COUNT(p.id) AS places_count,
		       COALESCE(AVG(p.rating), 0) AS avg_rating
		FROM categories c
		JOIN place_categories pc ON pc.category_slug = c.slug
		JOIN places p ON p.id = pc.place_id
		WHERE p.country_slug = $1
		  AND p.city_slug = $2
		  AND p.status = 'active'
		GROUP BY c.slug, c.name_nl, c.name_en
		ORDER BY places_count DESC, c.slug ASC
		LIMIT $3
	`

	stats := []domain.CategoryLinkStats{}
	if err := r.db.SelectContext(ctx, &stats, query, countrySlug, citySlug, limit); err != nil {
		return nil, fmt.Errorf("categories for city: %w", err)
	}
	return stats, nil
}

// CitiesForCategory returns cities ranked by place count for one
// category.
func (r *StatsRepository) CitiesForCategory(
	ctx context.Context,
	countrySlug, categorySlug string,
	limit int,
) ([]domain.CityLinkStats, error) {
	query := `
		SELECT ci.slug AS city_slug,
		       ci.name AS city_name,
		       COUNT(p.id) AS places_count
		FROM cities ci
		JOIN places p ON p.city_slug = ci.slug AND p.country_slug = ci.country_slug
		JOIN place_categories pc ON pc.place_id = p.id
		WHERE ci.country_slug = $1
		  AND pc.category_slug = $2
		  AND p.status = 'active'
		GROUP BY ci.slug, ci.name
		ORDER BY places_count DESC, ci.slug ASC
		LIMIT $3
	`

	stats := []domain.CityLinkStats{}
	if err := r.db.SelectContext(ctx, &stats, query, countrySlug, categorySlug, limit); err != nil {
		return nil, fmt.Errorf("cities for category: %w", err)
	}
	return stats, nil
}

// RelatedPlaces returns places sharing a city and category with the
// given place, ranked by rating.
func (r *StatsRepository) RelatedPlaces(
	ctx context.Context,
	placeID string,
	limit int,
) ([]domain.RelatedPlaceLink, error) {
	query := `
		SELECT p.slug AS place_slug,
		       p.name AS place_name,
		       COALESCE(p.rating, 0) AS rating
		FROM places p
		JOIN place_categories pc ON pc.place_id = p.id
		WHERE p.id <> $1
		  AND p.status = 'active'
		  AND p.city_slug = (SELECT city_slug FROM places WHERE id = $1)
		  AND pc.category_slug IN (
		      SELECT category_slug FROM place_categories WHERE place_id = $1
		  )
		GROUP BY p.id, p.slug, p.name, p.rating
		ORDER BY rating DESC, p.slug ASC
		LIMIT $2
	`

	places := []domain.RelatedPlaceLink{}
	if err := r.db.SelectContext(ctx, &places, query, placeID, limit); err != nil {
		return nil, fmt.Errorf("related places: %w", err)
	}
	return places, nil
}

// TopCategoriesForCountry returns the country-level top categories by
// place count.
func (r *StatsRepository) TopCategoriesForCountry(
	ctx context.Context,
	countrySlug string,
	limit int,
) ([]domain.CategoryLinkStats, error) {
	query := `
		SELECT c.slug AS category_slug,
		       COALESCE(c.name_nl, c.name_en) AS category_name,
		       COUNT(p.id) AS places_count,
		       COALESCE(AVG(p.rating), 0) AS avg_rating
		FROM categories c
		JOIN place_categories pc ON pc.category_slug = c.slug
		JOIN places p ON p.id = pc.place_id
		WHERE p.country_slug = $1
		  AND p.status = 'active'
		GROUP BY c.slug, c.name_nl, c.name_en
		ORDER BY places_count DESC, c.slug ASC
		LIMIT $2
	`

	stats := []domain.CategoryLinkStats{}
	if err := r.db.SelectContext(ctx, &stats, query, countrySlug, limit); err != nil {
		return nil, fmt.Errorf("top categories for country: %w", err)
	}
	return stats, nil
}

// TopCitiesForCountry returns the country-level top cities by place
// count.
func (r *StatsRepository) TopCitiesForCountry(
	ctx context.Context,
	countrySlug string,
	limit int,
) ([]domain.CityLinkStats, error) {
	query := `
		SELECT ci.slug AS city_slug,
		       ci.name AS city_name,
		       COUNT(p.id) AS places_count
		FROM cities ci
		JOIN places p ON p.city_slug = ci.slug AND p.country_slug = ci.country_slug
		WHERE ci.country_slug = $1
		  AND p.status = 'active'
		GROUP BY ci.slug, ci.name
		ORDER BY places_count DESC, ci.slug ASC
		LIMIT $2
	`

	stats := []domain.CityLinkStats{}
	if err := r.db.SelectContext(ctx, &stats, query, countrySlug, limit); err != nil {
		return nil, fmt.Errorf("top cities for country: %w", err)
	}
	return stats, nil
}

// Countries returns every country, ordered by slug.
func (r *StatsRepository) Countries(ctx context.Context) ([]domain.CountryRow, error) {
	rows := []domain.CountryRow{}
	err := r.db.SelectContext(ctx, &rows,
		`SELECT slug, name, updated_at FROM countries ORDER BY slug ASC`)
	if err != nil {
		return nil, fmt.Errorf("countries: %w", err)
	}
	return rows, nil
}

// Provinces returns every province, ordered by country then slug.
func (r *StatsRepository) Provinces(ctx context.Context) ([]domain.ProvinceRow, error) {
	rows := []domain.ProvinceRow{}
	err := r.db.SelectContext(ctx, &rows,
		`SELECT slug, country_slug, updated_at FROM provinces ORDER BY country_slug ASC, slug ASC`)
	if err != nil {
		return nil, fmt.Errorf("provinces: %w", err)
	}
	return rows, nil
}

// Cities returns every city, ordered by country then slug.
func (r *StatsRepository) Cities(ctx context.Context) ([]domain.CityRow, error) {
	rows := []domain.CityRow{}
	err := r.db.SelectContext(ctx, &rows,
		`SELECT slug, country_slug, updated_at FROM cities ORDER BY country_slug ASC, slug ASC`)
	if err != nil {
		return nil, fmt.Errorf("cities: %w", err)
	}
	return rows, nil
}

// Categories returns every category, ordered by slug.
func (r *StatsRepository) Categories(ctx context.Context) ([]domain.CategoryRow, error) {
	rows := []domain.CategoryRow{}
	err := r.db.SelectContext(ctx, &rows,
		`SELECT slug, updated_at FROM categories ORDER BY slug ASC`)
	if err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}
	return rows, nil
}

// Places returns one row per place per category, ordered so rows for
// the same place are contiguous and the primary category comes first.
func (r *StatsRepository) Places(ctx context.Context) ([]domain.PlaceRow, error) {
	query := `
		SELECT p.slug,
		       p.city_slug,
		       p.country_slug,
		       pc.category_slug,
		       p.status,
		       p.premium,
		       p.updated_at
		FROM places p
		JOIN place_categories pc ON pc.place_id = p.id
		ORDER BY p.country_slug ASC, p.city_slug ASC, p.slug ASC, pc.is_primary DESC, pc.category_slug ASC
	`

	rows := []domain.PlaceRow{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("places: %w", err)
	}
	return rows, nil
}

// CityCategoryPairs returns every (city, category) combination with at
// least one active place.
func (r *StatsRepository) CityCategoryPairs(ctx context.Context) ([]domain.CityCategoryPair, error) {
	query := `
		SELECT p.city_slug,
		       p.country_slug,
		       pc.category_slug,
		       MAX(p.updated_at) AS updated_at
		FROM places p
		JOIN place_categories pc ON pc.place_id = p.id
		WHERE p.status = 'active'
		GROUP BY p.city_slug, p.country_slug, pc.category_slug
		ORDER BY p.country_slug ASC, p.city_slug ASC, pc.category_slug ASC
	`

	rows := []domain.CityCategoryPair{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("city category pairs: %w", err)
	}
	return rows, nil
}

// CountryCategoryPairs returns every (country, category) combination
// with at least one active place.
func (r *StatsRepository) CountryCategoryPairs(ctx context.Context) ([]domain.CountryCategoryPair, error) {
	query := `
		SELECT p.country_slug,
		       pc.category_slug,
		       MAX(p.updated_at) AS updated_at
		FROM places p
		JOIN place_categories pc ON pc.place_id = p.id
		WHERE p.status = 'active'
		GROUP BY p.country_slug, pc.category_slug
		ORDER BY p.country_slug ASC, pc.category_slug ASC
	`

	rows := []domain.CountryCategoryPair{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("country category pairs: %w", err)
	}
	return rows, nil
}

// Ping verifies database connectivity for health checks.
func (r *StatsRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
