// Package scheduler runs periodic sitemap regeneration on a cron
// schedule and refreshes the cache with the result.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/MarvinNL046/cutiepawspedia/internal/cache"
	"github.com/MarvinNL046/cutiepawspedia/internal/logger"
	"github.com/MarvinNL046/cutiepawspedia/internal/sitemap"
)

// Service schedules sitemap generation runs.
type Service struct {
	spec      string
	generator *sitemap.Generator
	store     *cache.SitemapCache
	logger    logger.Logger
	cron      *cron.Cron
}

// New creates a scheduler Service. store may be nil; generation then
// runs for its run-history and metrics side effects only.
func New(spec string, generator *sitemap.Generator, store *cache.SitemapCache, log logger.Logger) *Service {
	return &Service{
		spec:      spec,
		generator: generator,
		store:     store,
		logger:    log,
		cron:      cron.New(),
	}
}

// Start registers the cron entry, runs one generation immediately so
// the cache is warm, and starts the schedule.
func (s *Service) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.run(context.Background()) }); err != nil {
		return fmt.Errorf("invalid cron spec %q: %w", s.spec, err)
	}

	s.run(ctx)
	s.cron.Start()

	s.logger.Info("sitemap scheduler started", logger.String("cron_spec", s.spec))
	return nil
}

// Stop halts the schedule and waits for a running job to finish or the
// context to expire.
func (s *Service) Stop(ctx context.Context) error {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) run(ctx context.Context) {
	result, err := s.generator.Generate(ctx)
	if err != nil {
		s.logger.Error("scheduled sitemap generation failed", logger.Error(err))
		return
	}

	if s.store != nil {
		if cacheErr := s.store.StoreResult(ctx, result); cacheErr != nil {
			s.logger.Error("failed to refresh sitemap cache", logger.Error(cacheErr))
			return
		}
	}

	s.logger.Info("sitemap cache refreshed",
		logger.String("run_id", result.RunID),
		logger.Int("urls", result.TotalURLs),
	)
}
