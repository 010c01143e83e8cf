package sitemap

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/MarvinNL046/cutiepawspedia/internal/domain"
	"github.com/MarvinNL046/cutiepawspedia/internal/logger"
	"github.com/MarvinNL046/cutiepawspedia/internal/telemetry"
)

// RunRecorder persists generation run history. A nil recorder disables
// history without affecting generation.
type RunRecorder interface {
	RecordRun(ctx context.Context, run domain.SitemapRun) error
}

// GeneratedSitemap is one rendered section file.
type GeneratedSitemap struct {
	Section  domain.SitemapSection
	XML      string
	URLCount int
}

// Result is the output of one full generation run.
type Result struct {
	RunID     string
	Index     string
	Sitemaps  []GeneratedSitemap
	TotalURLs int
	Duration  time.Duration
}

// Generator runs every section builder in a fixed order, splits
// oversized sections at the configured cap, and renders the section
// documents plus the sitemap index. Section builders are independent;
// the generator runs them sequentially and leaves parallelization to
// the host.
type Generator struct {
	builder *URLBuilder
	cfg     domain.SitemapConfig
	runs    RunRecorder
	tel     *telemetry.Provider
	log     logger.Logger
}

// NewGenerator creates a Generator. runs and tel may be nil.
func NewGenerator(
	src Source,
	cfg domain.SitemapConfig,
	runs RunRecorder,
	tel *telemetry.Provider,
	log logger.Logger,
) *Generator {
	if cfg.MaxURLsPerSitemap <= 0 {
		cfg.MaxURLsPerSitemap = DefaultMaxURLsPerSitemap
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Generator{
		builder: NewURLBuilder(src, cfg),
		cfg:     cfg,
		runs:    runs,
		tel:     tel,
		log:     log,
	}
}

// section pairs a stable id with its URL builder. The order of this
// slice is the order sections appear in the index.
type section struct {
	id    string
	build func(context.Context) ([]domain.SitemapURL, error)
}

func (g *Generator) sections() []section {
	return []section{
		{"home", g.builder.BuildHomeURLs},
		{"countries", g.builder.BuildCountryURLs},
		{"provinces", g.builder.BuildProvinceURLs},
		{"cities", g.builder.BuildCityURLs},
		{"categories", g.builder.BuildCategoryURLs},
		{"places", g.builder.BuildPlaceURLs},
		{"best-cities", g.builder.BuildBestInCityURLs},
		{"top-countries", g.builder.BuildTopInCountryURLs},
		{"best-countries", g.builder.BuildBestInCountryURLs},
		{"static", g.builder.BuildStaticURLs},
	}
}

// Generate runs a full sitemap build. Builder errors abort the run and
// propagate to the caller; the failed run is still recorded.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	runID := uuid.NewString()
	started := time.Now()
	today := started.UTC().Format(lastModLayout)

	var span trace.Span
	if g.tel != nil {
		ctx, span = g.tel.Tracer.Start(ctx, "sitemap.generate",
			trace.WithAttributes(attribute.String("run_id", runID)))
		defer span.End()
	}

	result := &Result{RunID: runID}
	var indexSections []domain.SitemapSection

	for _, sec := range g.sections() {
		urls, err := g.buildSection(ctx, sec)
		if err != nil {
			g.recordRun(ctx, runID, started, result, err)
			if g.tel != nil {
				g.tel.Metrics.SitemapGenerations.WithLabelValues("error").Inc()
			}
			return nil, fmt.Errorf("build section %s: %w", sec.id, err)
		}

		result.TotalURLs += len(urls)

		for i, chunk := range SplitIntoSitemaps(urls, g.cfg.MaxURLsPerSitemap) {
			id := sec.id
			if i > 0 {
				id = fmt.Sprintf("%s-%d", sec.id, i+1)
			}
			s := domain.SitemapSection{
				ID:      id,
				Path:    "/sitemaps/" + id + ".xml",
				LastMod: today,
			}
			indexSections = append(indexSections, s)
			result.Sitemaps = append(result.Sitemaps, GeneratedSitemap{
				Section:  s,
				XML:      BuildSitemapXML(chunk),
				URLCount: len(chunk),
			})
		}
	}

	result.Index = BuildSitemapIndexXML(g.cfg.BaseURL, indexSections)
	result.Duration = time.Since(started)

	g.recordRun(ctx, runID, started, result, nil)

	if g.tel != nil {
		g.tel.Metrics.SitemapGenerations.WithLabelValues("ok").Inc()
		g.tel.Metrics.SitemapGenDuration.Observe(result.Duration.Seconds())
	}

	g.log.Info("sitemap generation complete",
		logger.String("run_id", runID),
		logger.Int("sections", len(result.Sitemaps)),
		logger.Int("urls", result.TotalURLs),
		logger.Duration("duration", result.Duration),
	)

	return result, nil
}

func (g *Generator) buildSection(ctx context.Context, sec section) ([]domain.SitemapURL, error) {
	if g.tel != nil {
		var span trace.Span
		ctx, span = g.tel.Tracer.Start(ctx, "sitemap.section",
			trace.WithAttributes(attribute.String("section", sec.id)))
		defer span.End()
	}

	urls, err := sec.build(ctx)
	if err != nil {
		return nil, err
	}

	if g.tel != nil {
		g.tel.Metrics.SitemapURLsEmitted.WithLabelValues(sec.id).Add(float64(len(urls)))
		g.tel.Metrics.SitemapSectionURLs.WithLabelValues(sec.id).Set(float64(len(urls)))
	}
	return urls, nil
}

func (g *Generator) recordRun(ctx context.Context, runID string, started time.Time, result *Result, genErr error) {
	if g.runs == nil {
		return
	}

	run := domain.SitemapRun{
		ID:           runID,
		StartedAt:    started,
		Duration:     time.Since(started),
		TotalURLs:    result.TotalURLs,
		SectionCount: len(result.Sitemaps),
		Status:       domain.RunStatusOK,
	}
	if genErr != nil {
		run.Status = domain.RunStatusFailed
		run.Error = genErr.Error()
	}

	if err := g.runs.RecordRun(ctx, run); err != nil {
		// History is best-effort; generation output is still valid.
		g.log.Warn("failed to record sitemap run",
			logger.String("run_id", runID),
			logger.Error(err),
		)
	}
}
