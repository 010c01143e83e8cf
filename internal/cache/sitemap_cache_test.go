package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarvinNL046/cutiepawspedia/internal/cache"
	"github.com/MarvinNL046/cutiepawspedia/internal/domain"
	"github.com/MarvinNL046/cutiepawspedia/internal/sitemap"
)

func newTestCache(t *testing.T) (*cache.SitemapCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewSitemapCache(client, time.Hour), mr
}

func TestSitemapCache_MissIsNotAnError(t *testing.T) {
	c, _ := newTestCache(t)

	xml, hit, err := c.Get(context.Background(), "/sitemap.xml")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Empty(t, xml)
}

func TestSitemapCache_SetGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "/sitemaps/cities.xml", "<urlset/>"))

	xml, hit, err := c.Get(ctx, "/sitemaps/cities.xml")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "<urlset/>", xml)
}

func TestSitemapCache_TTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "/sitemap.xml", "<sitemapindex/>"))

	mr.FastForward(2 * time.Hour)

	_, hit, err := c.Get(ctx, "/sitemap.xml")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestSitemapCache_StoreResult(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	result := &sitemap.Result{
		Index: "<sitemapindex/>",
		Sitemaps: []sitemap.GeneratedSitemap{
			{
				Section: domain.SitemapSection{ID: "cities", Path: "/sitemaps/cities.xml"},
				XML:     "<urlset>cities</urlset>",
			},
			{
				Section: domain.SitemapSection{ID: "places", Path: "/sitemaps/places.xml"},
				XML:     "<urlset>places</urlset>",
			},
		},
	}

	require.NoError(t, c.StoreResult(ctx, result))

	index, hit, err := c.Get(ctx, "/sitemap.xml")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "<sitemapindex/>", index)

	section, hit, err := c.Get(ctx, "/sitemaps/places.xml")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "<urlset>places</urlset>", section)
}
