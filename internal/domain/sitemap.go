package domain

import "time"

// ChangeFreq is the sitemap-protocol hint for how often a page changes.
type ChangeFreq string

// The seven values permitted by the sitemaps.org 0.9 schema.
const (
	FreqAlways  ChangeFreq = "always"
	FreqHourly  ChangeFreq = "hourly"
	FreqDaily   ChangeFreq = "daily"
	FreqWeekly  ChangeFreq = "weekly"
	FreqMonthly ChangeFreq = "monthly"
	FreqYearly  ChangeFreq = "yearly"
	FreqNever   ChangeFreq = "never"
)

// SitemapURL is one <url> entry. Priority must lie in [0,1] and LastMod
// must start with a YYYY-MM-DD date when present; the validator reports
// violations but nothing in the engine enforces them at construction.
type SitemapURL struct {
	Loc        string
	LastMod    string
	ChangeFreq ChangeFreq
	Priority   float64
	// HasPriority distinguishes an explicit 0.0 from "unset" so the
	// serializer can omit the element entirely.
	HasPriority bool
}

// SitemapSection is one physical sitemap file referenced from the
// sitemap index.
type SitemapSection struct {
	ID      string
	Path    string
	LastMod string
}

// SitemapRun is the history record of one generation run.
type SitemapRun struct {
	ID           string        `db:"id"`
	StartedAt    time.Time     `db:"started_at"`
	Duration     time.Duration `db:"duration"`
	TotalURLs    int           `db:"total_urls"`
	SectionCount int           `db:"section_count"`
	Status       string        `db:"status"`
	Error        string        `db:"error"`
}

// Run statuses.
const (
	RunStatusOK     = "ok"
	RunStatusFailed = "failed"
)

// SitemapConfig is the process-wide sitemap configuration. It is
// constructed once and passed explicitly to every builder; there is no
// hidden global.
type SitemapConfig struct {
	BaseURL           string
	Locales           []Locale
	DefaultLocale     Locale
	MaxURLsPerSitemap int
}
