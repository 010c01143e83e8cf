package links

import (
	"strings"

	"github.com/MarvinNL046/cutiepawspedia/internal/domain"
)

// localizedString holds the three translations of one UI string.
// Placeholders use {name} syntax and are substituted by T.
type localizedString struct {
	en string
	nl string
	de string
}

// stringTable maps string keys to their translations. Constructed once
// at init, never mutated.
var stringTable = map[string]localizedString{
	"group.categories_in_city": {
		en: "Popular services in {city}",
		nl: "Populaire diensten in {city}",
		de: "Beliebte Dienstleistungen in {city}",
	},
	"group.cities_for_category": {
		en: "{category} in other cities",
		nl: "{category} in andere steden",
		de: "{category} in anderen Städten",
	},
	"group.related_places": {
		en: "Similar places nearby",
		nl: "Vergelijkbare plekken in de buurt",
		de: "Ähnliche Orte in der Nähe",
	},
	"group.place_context": {
		en: "Explore more",
		nl: "Ontdek meer",
		de: "Mehr entdecken",
	},
	"group.explore_cities": {
		en: "Popular cities in {country}",
		nl: "Populaire steden in {country}",
		de: "Beliebte Städte in {country}",
	},
	"group.explore_categories": {
		en: "Browse by service",
		nl: "Bekijk per dienst",
		de: "Nach Dienstleistung durchsuchen",
	},
	"group.best_in_city": {
		en: "Best rated in {city}",
		nl: "Best beoordeeld in {city}",
		de: "Am besten bewertet in {city}",
	},
	"group.best_in_country": {
		en: "Best rated in {country}",
		nl: "Best beoordeeld in {country}",
		de: "Am besten bewertet in {country}",
	},
	"desc.services_in_city": {
		en: "{count}+ services in {city}",
		nl: "{count}+ diensten in {city}",
		de: "{count}+ Dienstleistungen in {city}",
	},
	"desc.category_in_city_count": {
		en: "{count} listings for {category} in {city}",
		nl: "{count} vermeldingen voor {category} in {city}",
		de: "{count} Einträge für {category} in {city}",
	},
	"label.best_category_in_scope": {
		en: "Best {category} in {scope}",
		nl: "Beste {category} in {scope}",
		de: "Beste {category} in {scope}",
	},
	"label.all_category_in_city": {
		en: "All {category} in {city}",
		nl: "Alle {category} in {city}",
		de: "Alle {category} in {city}",
	},
	"label.all_in_city": {
		en: "Everything in {city}",
		nl: "Alles in {city}",
		de: "Alles in {city}",
	},
	"label.category_in_country": {
		en: "{category} in {country}",
		nl: "{category} in {country}",
		de: "{category} in {country}",
	},
}

// T resolves a string key for a locale and substitutes {placeholder}
// variables. An unknown locale falls back to English; this is the only
// error recovery in the localization path and must stay explicit.
// An unknown key returns the key itself so a missing translation is
// visible rather than silent.
func T(locale domain.Locale, key string, vars map[string]string) string {
	ls, ok := stringTable[key]
	if !ok {
		return key
	}

	var s string
	switch locale {
	case domain.LocaleNL:
		s = ls.nl
	case domain.LocaleDE:
		s = ls.de
	case domain.LocaleEN:
		s = ls.en
	default:
		// Unknown locale: fall back to English.
		s = ls.en
	}
	if s == "" {
		s = ls.en
	}

	for name, val := range vars {
		s = strings.ReplaceAll(s, "{"+name+"}", val)
	}
	return s
}
