// Package telemetry provides Prometheus metrics and tracing for the
// directory service.
package telemetry

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "cutiepawspedia"

// Metrics holds the service's Prometheus metrics.
type Metrics struct {
	// Sitemap generation metrics
	SitemapGenerations *prometheus.CounterVec
	SitemapURLsEmitted *prometheus.CounterVec
	SitemapGenDuration prometheus.Histogram
	SitemapSectionURLs *prometheus.GaugeVec

	// Link engine metrics
	LinkRequests  *prometheus.CounterVec
	LinksReturned prometheus.Histogram
}

// Provider wraps the tracer and metrics handed to the rest of the
// service.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

var (
	providerOnce sync.Once
	provider     *Provider
)

// NewProvider initializes telemetry. Metrics register against the
// default registry, so the provider is a process-wide singleton.
func NewProvider() *Provider {
	providerOnce.Do(func() {
		provider = &Provider{
			Tracer:  otel.Tracer(serviceName),
			Metrics: initMetrics(),
		}
	})
	return provider
}

// Handler returns the Prometheus HTTP handler for the /metrics route.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	m := &Metrics{}

	m.SitemapGenerations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sitemap_generations_total",
		Help: "Total sitemap generation runs by outcome (ok, error)",
	}, []string{"outcome"})

	m.SitemapURLsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sitemap_urls_emitted_total",
		Help: "Total sitemap URLs emitted per section",
	}, []string{"section"})

	m.SitemapGenDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sitemap_generation_duration_seconds",
		Help:    "Wall time of a full sitemap generation run",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	})

	m.SitemapSectionURLs = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "sitemap_section_urls",
		Help: "URL count of the most recent generation per section",
	}, []string{"section"})

	m.LinkRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "internal_link_requests_total",
		Help: "Internal link requests by page type",
	}, []string{"page_type"})

	m.LinksReturned = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "internal_links_returned",
		Help:    "Number of links returned per request",
		Buckets: []float64{0, 1, 2, 4, 8, 12, 16},
	})

	return m
}
