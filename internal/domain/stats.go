package domain

import "time"

// CategoryLinkStats is a read-only projection of one category's
// presence in a city, supplied by the stats provider already ranked by
// PlacesCount. Builders never re-sort these rows.
type CategoryLinkStats struct {
	CategorySlug string  `db:"category_slug"`
	CategoryName string  `db:"category_name"`
	PlacesCount  int     `db:"places_count"`
	AvgRating    float64 `db:"avg_rating"`
}

// CityLinkStats mirrors CategoryLinkStats in the other direction: one
// city's presence for a category.
type CityLinkStats struct {
	CitySlug    string `db:"city_slug"`
	CityName    string `db:"city_name"`
	PlacesCount int    `db:"places_count"`
}

// RelatedPlaceLink is one place related to the place being rendered.
// Rating is on the 0-5 scale; zero means unrated.
type RelatedPlaceLink struct {
	PlaceSlug string  `db:"place_slug"`
	PlaceName string  `db:"place_name"`
	Rating    float64 `db:"rating"`
}

// Rows consumed by the sitemap section builders. Each carries the slugs
// needed to compose a canonical URL plus the freshness timestamp.

// CountryRow is one country in the directory.
type CountryRow struct {
	Slug      string    `db:"slug"`
	Name      string    `db:"name"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ProvinceRow is one province inside a country.
type ProvinceRow struct {
	Slug        string    `db:"slug"`
	CountrySlug string    `db:"country_slug"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// CityRow is one city inside a country.
type CityRow struct {
	Slug        string    `db:"slug"`
	CountrySlug string    `db:"country_slug"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// CategoryRow is one service category.
type CategoryRow struct {
	Slug      string    `db:"slug"`
	UpdatedAt time.Time `db:"updated_at"`
}

// PlaceStatus marks a place's lifecycle state.
type PlaceStatus string

// Place statuses. Permanently closed places are excluded from sitemaps.
const (
	PlaceStatusActive            PlaceStatus = "active"
	PlaceStatusPermanentlyClosed PlaceStatus = "permanently_closed"
)

// PlaceRow is one place joined with its city, country, and one of its
// categories. A place with several categories yields several rows, so
// the place sitemap builder deduplicates by full URL.
type PlaceRow struct {
	Slug         string      `db:"slug"`
	CitySlug     string      `db:"city_slug"`
	CountrySlug  string      `db:"country_slug"`
	CategorySlug string      `db:"category_slug"`
	Status       PlaceStatus `db:"status"`
	Premium      bool        `db:"premium"`
	UpdatedAt    time.Time   `db:"updated_at"`
}

// CityCategoryPair is one (city, category) combination that has at
// least one listed place, used for the best-in-city section.
type CityCategoryPair struct {
	CitySlug     string    `db:"city_slug"`
	CountrySlug  string    `db:"country_slug"`
	CategorySlug string    `db:"category_slug"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// CountryCategoryPair is one (country, category) combination with
// listed places, used for the top-in-country and best-in-country
// sections.
type CountryCategoryPair struct {
	CountrySlug  string    `db:"country_slug"`
	CategorySlug string    `db:"category_slug"`
	UpdatedAt    time.Time `db:"updated_at"`
}
