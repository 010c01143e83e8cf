package links_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarvinNL046/cutiepawspedia/internal/domain"
	"github.com/MarvinNL046/cutiepawspedia/internal/links"
)

func categoryStats(n int) []domain.CategoryLinkStats {
	stats := make([]domain.CategoryLinkStats, 0, n)
	for i := 0; i < n; i++ {
		stats = append(stats, domain.CategoryLinkStats{
			CategorySlug: "cat-" + string(rune('a'+i)),
			CategoryName: "Category " + string(rune('A'+i)),
			PlacesCount:  100 - i,
		})
	}
	return stats
}

func TestBuildCategoryLinksForCity(t *testing.T) {
	group := links.BuildCategoryLinksForCity(
		domain.LocaleNL, "netherlands", "amsterdam", "Amsterdam",
		categoryStats(3), 6,
	)

	require.Len(t, group.Links, 3)
	assert.Equal(t, "Populaire diensten in Amsterdam", group.Title)
	assert.Equal(t, 6, group.MaxDisplay)

	first := group.Links[0]
	assert.Equal(t, "/nl/netherlands/amsterdam/cat-a", first.Href)
	assert.Equal(t, "Category A", first.Label)
	assert.Equal(t, "100+ diensten in Amsterdam", first.Description)
	assert.Equal(t, domain.LinkCategoryInCity, first.Type)
	assert.Equal(t, 100, first.RelevanceScore)
}

func TestBuildCategoryLinksForCity_LimitSlices(t *testing.T) {
	tests := []struct {
		name     string
		stats    int
		limit    int
		expected int
	}{
		{name: "fewer stats than limit", stats: 2, limit: 6, expected: 2},
		{name: "more stats than limit", stats: 10, limit: 6, expected: 6},
		{name: "zero limit uses default", stats: 10, limit: 0, expected: links.DefaultCategoryLinkLimit},
		{name: "negative limit uses default", stats: 10, limit: -1, expected: links.DefaultCategoryLinkLimit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			group := links.BuildCategoryLinksForCity(
				domain.LocaleNL, "netherlands", "amsterdam", "Amsterdam",
				categoryStats(tc.stats), tc.limit,
			)
			assert.Len(t, group.Links, tc.expected)
		})
	}
}

func TestBuildCityLinksForCategory(t *testing.T) {
	stats := []domain.CityLinkStats{
		{CitySlug: "utrecht", CityName: "Utrecht", PlacesCount: 40},
		{CitySlug: "rotterdam", CityName: "Rotterdam", PlacesCount: 35},
	}

	group := links.BuildCityLinksForCategory(
		domain.LocaleEN, "netherlands", "dierenarts", "Vets", stats, 6,
	)

	require.Len(t, group.Links, 2)
	assert.Equal(t, "Vets in other cities", group.Title)
	assert.Equal(t, "/en/netherlands/utrecht/dierenarts", group.Links[0].Href)
	assert.Equal(t, "40 listings for Vets in Utrecht", group.Links[0].Description)
	assert.Equal(t, domain.LinkCityInCategory, group.Links[0].Type)
	assert.Equal(t, 40, group.Links[0].RelevanceScore)
}

func TestBuildRelatedPlaceLinks_RatingScore(t *testing.T) {
	places := []domain.RelatedPlaceLink{
		{PlaceSlug: "happy-paws", PlaceName: "Happy Paws", Rating: 4.5},
		{PlaceSlug: "pet-care", PlaceName: "Pet Care", Rating: 0},
	}

	group := links.BuildRelatedPlaceLinks(
		domain.LocaleNL, "netherlands", "amsterdam", "dierenarts", places, 4,
	)

	require.Len(t, group.Links, 2)
	assert.Equal(t, "/nl/netherlands/amsterdam/dierenarts/happy-paws", group.Links[0].Href)
	assert.Equal(t, 90, group.Links[0].RelevanceScore)
	assert.Equal(t, 0, group.Links[1].RelevanceScore)
	assert.Equal(t, domain.LinkRelatedPlace, group.Links[0].Type)
}

func TestBuildPlaceContextLinks(t *testing.T) {
	group := links.BuildPlaceContextLinks(
		domain.LocaleNL,
		"netherlands", "Nederland",
		"amsterdam", "Amsterdam",
		"dierenarts", "Dierenartsen",
	)

	require.Len(t, group.Links, 4)

	assert.Equal(t, "/nl/netherlands/amsterdam/dierenarts", group.Links[0].Href)
	assert.Equal(t, domain.LinkAllInCityCategory, group.Links[0].Type)
	assert.Equal(t, 100, group.Links[0].RelevanceScore)

	assert.Equal(t, "/nl/netherlands/amsterdam/best/dierenarts", group.Links[1].Href)
	assert.Equal(t, domain.LinkBestInCityCategory, group.Links[1].Type)
	assert.Equal(t, 90, group.Links[1].RelevanceScore)

	assert.Equal(t, "/nl/netherlands/amsterdam", group.Links[2].Href)
	assert.Equal(t, domain.LinkAllInCity, group.Links[2].Type)
	assert.Equal(t, 80, group.Links[2].RelevanceScore)

	assert.Equal(t, "/nl/netherlands/c/dierenarts", group.Links[3].Href)
	assert.Equal(t, domain.LinkCategoryInCountry, group.Links[3].Type)
	assert.Equal(t, 70, group.Links[3].RelevanceScore)
}

func TestBuildCountryExploreLinks_TwoGroups(t *testing.T) {
	cities := []domain.CityLinkStats{
		{CitySlug: "amsterdam", CityName: "Amsterdam", PlacesCount: 120},
	}
	categories := []domain.CategoryLinkStats{
		{CategorySlug: "dierenarts", CategoryName: "Dierenartsen", PlacesCount: 300},
	}

	groups := links.BuildCountryExploreLinks(
		domain.LocaleNL, "netherlands", "Nederland",
		cities, categories, 5, 5,
	)

	require.Len(t, groups, 2)

	assert.Equal(t, "Populaire steden in Nederland", groups[0].Title)
	require.Len(t, groups[0].Links, 1)
	assert.Equal(t, "/nl/netherlands/amsterdam", groups[0].Links[0].Href)
	assert.Equal(t, domain.LinkCountryCity, groups[0].Links[0].Type)

	assert.Equal(t, "Bekijk per dienst", groups[1].Title)
	require.Len(t, groups[1].Links, 1)
	assert.Equal(t, "/nl/netherlands/c/dierenarts", groups[1].Links[0].Href)
	assert.Equal(t, domain.LinkCountryCategory, groups[1].Links[0].Type)
}

func TestBuildCityBestLinks(t *testing.T) {
	group := links.BuildCityBestLinks(
		domain.LocaleEN, "netherlands", "amsterdam", "Amsterdam",
		categoryStats(2), 4,
	)

	require.Len(t, group.Links, 2)
	assert.Equal(t, "Best rated in Amsterdam", group.Title)
	assert.Equal(t, "/en/netherlands/amsterdam/best/cat-a", group.Links[0].Href)
	assert.Equal(t, "Best Category A in Amsterdam", group.Links[0].Label)
	assert.Equal(t, domain.LinkCityBest, group.Links[0].Type)
}

func TestBuildCountryBestLinks(t *testing.T) {
	group := links.BuildCountryBestLinks(
		domain.LocaleEN, "netherlands", "Netherlands",
		categoryStats(2), 4,
	)

	require.Len(t, group.Links, 2)
	assert.Equal(t, "Best rated in Netherlands", group.Title)
	assert.Equal(t, "/en/netherlands/best/cat-a", group.Links[0].Href)
	assert.Equal(t, domain.LinkCountryBest, group.Links[0].Type)
}
