// Package sitemap implements sitemap URL enumeration and the
// sitemaps.org 0.9 XML serialization for the directory.
package sitemap

import "github.com/MarvinNL046/cutiepawspedia/internal/domain"

// Page type keys for the lookup tables below.
const (
	pageHome     = "home"
	pageCountry  = "country"
	pageCity     = "city"
	pageCategory = "category"
	pagePlace    = "place"
	pageBest     = "best"
	pageTop      = "top"
	pageStatic   = "static"
)

// Overrides that deliberately bypass the tables: provinces sit between
// country and city pages, and premium places outrank the regular place
// entry.
const (
	provincePriority     = 0.85
	premiumPlacePriority = 0.8
)

// PagePriorities maps page types to crawler priority hints.
// Constructed once at process start and never written afterwards.
var PagePriorities = map[string]float64{
	pageHome:     1.0,
	pageCountry:  0.9,
	pageCity:     0.8,
	pageCategory: 0.75,
	pagePlace:    0.7,
	pageBest:     0.65,
	pageTop:      0.65,
	pageStatic:   0.5,
}

// PageChangeFreq maps page types to crawler change-frequency hints.
var PageChangeFreq = map[string]domain.ChangeFreq{
	pageHome:     domain.FreqDaily,
	pageCountry:  domain.FreqWeekly,
	pageCity:     domain.FreqWeekly,
	pageCategory: domain.FreqWeekly,
	pagePlace:    domain.FreqWeekly,
	pageBest:     domain.FreqWeekly,
	pageTop:      domain.FreqWeekly,
	pageStatic:   domain.FreqMonthly,
}

// priorityFor returns the table priority for a page type, flagged for
// serialization.
func priorityFor(pageType string) (float64, bool) {
	p, ok := PagePriorities[pageType]
	return p, ok
}

// changeFreqFor returns the table change frequency for a page type.
func changeFreqFor(pageType string) domain.ChangeFreq {
	return PageChangeFreq[pageType]
}
