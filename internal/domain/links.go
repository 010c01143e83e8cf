// Package domain defines the core value types for the cutiepawspedia
// link and sitemap engine. All types are plain data: constructed per
// request, consumed, and discarded. Nothing in this package touches
// storage or the network.
package domain

// Locale identifies one of the supported site languages.
type Locale string

// Supported locales. DefaultLocale is Dutch; lookups for anything
// outside this set fall back to English at the i18n layer.
const (
	LocaleNL Locale = "nl"
	LocaleEN Locale = "en"
	LocaleDE Locale = "de"
)

// SupportedLocales lists every locale the site publishes, in the order
// sitemap builders iterate them.
var SupportedLocales = []Locale{LocaleNL, LocaleEN, LocaleDE}

// IsSupported reports whether l is one of the published locales.
func (l Locale) IsSupported() bool {
	switch l {
	case LocaleNL, LocaleEN, LocaleDE:
		return true
	}
	return false
}

// PageType discriminates the page a link request originates from.
// The orchestrator dispatches on this value; adding a variant requires
// extending the dispatch switch.
type PageType string

// Page types.
const (
	PageHome     PageType = "home"
	PageCountry  PageType = "country"
	PageCity     PageType = "city"
	PageCategory PageType = "category"
	PagePlace    PageType = "place"
	PageCombo    PageType = "combo"
	PageBest     PageType = "best"
	PageTop      PageType = "top"
)

// RouteType selects one of the special URL shapes that short-circuit
// normal hierarchical path composition.
type RouteType string

// Route types. RouteNone composes the plain hierarchical path.
const (
	RouteNone     RouteType = ""
	RouteBest     RouteType = "best"
	RouteTop      RouteType = "top"
	RouteCategory RouteType = "category"
)

// LinkType classifies an internal link. The set is closed: consumers
// switch on it for icon selection and analytics bucketing.
type LinkType string

// Link types.
const (
	LinkCategoryInCity     LinkType = "category_in_city"
	LinkCityInCategory     LinkType = "city_in_category"
	LinkRelatedPlace       LinkType = "related_place"
	LinkAllInCityCategory  LinkType = "all_in_city_category"
	LinkBestInCityCategory LinkType = "best_in_city_category"
	LinkAllInCity          LinkType = "all_in_city"
	LinkCategoryInCountry  LinkType = "category_in_country"
	LinkCityBest           LinkType = "city_best"
	LinkCountryBest        LinkType = "country_best"
	LinkCountryCity        LinkType = "country_city"
	LinkCountryCategory    LinkType = "country_category"
	LinkTopInCountry       LinkType = "top_in_country"
	LinkHome               LinkType = "home"
	LinkStatic             LinkType = "static"
)

// InternalLinkItem is one navigational link surfaced on a page.
// Href is always a canonical path, never an absolute URL.
// RelevanceScore is a unitless integer used only for intra-group
// ranking; it is never persisted.
type InternalLinkItem struct {
	Href           string   `json:"href"`
	Label          string   `json:"label"`
	Description    string   `json:"description,omitempty"`
	Type           LinkType `json:"type"`
	RelevanceScore int      `json:"relevanceScore,omitempty"`
	Icon           string   `json:"icon,omitempty"`
}

// InternalLinkGroup is a titled, ordered bucket of links for one page
// section. MaxDisplay is advisory truncation for the consumer; builders
// apply their own slicing independently of it.
type InternalLinkGroup struct {
	Title      string             `json:"title"`
	Links      []InternalLinkItem `json:"links"`
	MaxDisplay int                `json:"maxDisplay,omitempty"`
}

// PageContext describes the page a link request is for. Only the slug
// fields relevant to the page type need to be set; the orchestrator
// silently skips branches whose required fields are absent.
type PageContext struct {
	Locale       Locale   `json:"locale"`
	PageType     PageType `json:"pageType"`
	CountrySlug  string   `json:"countrySlug,omitempty"`
	ProvinceSlug string   `json:"provinceSlug,omitempty"`
	CitySlug     string   `json:"citySlug,omitempty"`
	CategorySlug string   `json:"categorySlug,omitempty"`
	PlaceSlug    string   `json:"placeSlug,omitempty"`
	PlaceID      string   `json:"placeId,omitempty"`
	CityName     string   `json:"cityName,omitempty"`
	CategoryName string   `json:"categoryName,omitempty"`
	CountryName  string   `json:"countryName,omitempty"`
}

// InternalLinkOptions tunes link generation. Only Limit is enforced
// uniformly today; the remaining fields are accepted for forward
// compatibility but not read by any builder.
type InternalLinkOptions struct {
	Limit               int        `json:"limit,omitempty"`
	IncludeDescriptions bool       `json:"includeDescriptions,omitempty"`
	MinRelevanceScore   int        `json:"minRelevanceScore,omitempty"`
	ExcludeTypes        []LinkType `json:"excludeTypes,omitempty"`
	OnlyTypes           []LinkType `json:"onlyTypes,omitempty"`
}

// InternalLinksResult is the envelope returned to the template layer.
// Links is the flattened, globally capped view derived from Groups;
// Groups preserves structure for section rendering.
type InternalLinksResult struct {
	Links          []InternalLinkItem  `json:"links"`
	Groups         []InternalLinkGroup `json:"groups"`
	TotalAvailable int                 `json:"totalAvailable"`
	Context        PageContext         `json:"context"`
}
