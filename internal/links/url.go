// Package links implements the internal cross-link engine: canonical
// URL composition, localized link-group builders, and the per-page
// orchestrator that assembles them.
package links

import (
	"strings"

	"github.com/MarvinNL046/cutiepawspedia/internal/domain"
)

// URLParams is the input tuple for BuildLinkURL. Slugs are assumed
// pre-validated ASCII-safe; no URL-encoding is performed here.
type URLParams struct {
	Locale       domain.Locale
	CountrySlug  string
	CitySlug     string
	CategorySlug string
	PlaceSlug    string
	Type         domain.RouteType
}

// BuildLinkURL maps a (locale, country, city, category, place, route
// type) tuple to a canonical path. Segments are appended in strict
// order: locale, country, then one of three route-type short-circuits,
// then city, category, place. Each short-circuit returns immediately
// once its prefixed segment is appended, so more specific route types
// win over generic category/place appension. Missing segments simply
// produce a shorter path; the builder never fails.
func BuildLinkURL(p URLParams) string {
	segs := make([]string, 0, 6)
	segs = append(segs, string(p.Locale))

	if p.CountrySlug != "" {
		segs = append(segs, p.CountrySlug)
	}

	// Country-level category landing: /{locale}/{country}/c/{category}.
	if p.Type == domain.RouteCategory && p.CategorySlug != "" {
		segs = append(segs, "c", p.CategorySlug)
		return joinPath(segs)
	}

	// Country-scoped best/top when no city narrows the scope.
	if p.CitySlug == "" && isRankedRoute(p.Type) && p.CategorySlug != "" {
		segs = append(segs, string(p.Type), p.CategorySlug)
		return joinPath(segs)
	}

	if p.CitySlug != "" {
		segs = append(segs, p.CitySlug)
	}

	// City-scoped best/top: /{locale}/{country}/{city}/best/{category}.
	if isRankedRoute(p.Type) && p.CategorySlug != "" {
		segs = append(segs, string(p.Type), p.CategorySlug)
		return joinPath(segs)
	}

	if p.CategorySlug != "" {
		segs = append(segs, p.CategorySlug)
		if p.PlaceSlug != "" {
			segs = append(segs, p.PlaceSlug)
		}
	}

	return joinPath(segs)
}

func isRankedRoute(t domain.RouteType) bool {
	return t == domain.RouteBest || t == domain.RouteTop
}

func joinPath(segs []string) string {
	return "/" + strings.Join(segs, "/")
}
