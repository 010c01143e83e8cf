// Package cache provides the Redis-backed store for generated sitemap
// documents, so the serve path never rebuilds XML per request.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MarvinNL046/cutiepawspedia/internal/sitemap"
)

const (
	keyPrefix         = "sitemap:"
	indexPath         = "/sitemap.xml"
	connectionTimeout = 2 * time.Second

	// DefaultTTL outlives one scheduler interval so a missed run does
	// not empty the cache.
	DefaultTTL = 48 * time.Hour
)

// NewClient creates a Redis client and verifies the connection.
func NewClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()

	if pingErr := client.Ping(pingCtx).Err(); pingErr != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", pingErr)
	}
	return client, nil
}

// SitemapCache stores rendered sitemap documents keyed by request path.
type SitemapCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSitemapCache creates a SitemapCache. A non-positive ttl falls back
// to DefaultTTL.
func NewSitemapCache(client *redis.Client, ttl time.Duration) *SitemapCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SitemapCache{client: client, ttl: ttl}
}

// Get returns the cached document for a path. The second return value
// reports a hit; a miss is not an error.
func (c *SitemapCache) Get(ctx context.Context, path string) (string, bool, error) {
	val, err := c.client.Get(ctx, keyPrefix+path).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("cache get %s: %w", path, err)
	}
	return val, true, nil
}

// Set stores one document under a path.
func (c *SitemapCache) Set(ctx context.Context, path, xml string) error {
	if err := c.client.Set(ctx, keyPrefix+path, xml, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", path, err)
	}
	return nil
}

// StoreResult writes a full generation result: the index under
// /sitemap.xml plus every section document under its own path.
func (c *SitemapCache) StoreResult(ctx context.Context, result *sitemap.Result) error {
	if err := c.Set(ctx, indexPath, result.Index); err != nil {
		return err
	}
	for _, s := range result.Sitemaps {
		if err := c.Set(ctx, s.Section.Path, s.XML); err != nil {
			return err
		}
	}
	return nil
}
