package cmd

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/MarvinNL046/cutiepawspedia/internal/cache"
	"github.com/MarvinNL046/cutiepawspedia/internal/config"
	"github.com/MarvinNL046/cutiepawspedia/internal/database"
	"github.com/MarvinNL046/cutiepawspedia/internal/links"
	"github.com/MarvinNL046/cutiepawspedia/internal/logger"
	"github.com/MarvinNL046/cutiepawspedia/internal/sitemap"
	"github.com/MarvinNL046/cutiepawspedia/internal/telemetry"
)

// appDeps bundles the shared dependencies behind every command. The
// database and cache are optional: an unconfigured data source
// soft-disables the engine instead of failing startup.
type appDeps struct {
	cfg       *config.Config
	log       logger.Logger
	db        *sqlx.DB
	stats     *database.StatsRepository
	runs      *database.RunRepository
	linksSvc  *links.Service
	generator *sitemap.Generator
	store     *cache.SitemapCache
	tel       *telemetry.Provider
}

// newAppDeps loads configuration and wires the dependency graph.
func newAppDeps() (*appDeps, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if debug {
		cfg.Debug = true
	}

	log, err := logger.New(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	log = log.With(
		logger.String("service", "cutiepawspedia"),
		logger.String("version", version),
	)

	deps := &appDeps{
		cfg: cfg,
		log: log,
		tel: telemetry.NewProvider(),
	}

	if cfg.DatabaseConfigured() {
		db, dbErr := database.NewPostgresConnection(database.Config{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.Name,
			SSLMode:  cfg.Database.SSLMode,
		})
		if dbErr != nil {
			return nil, fmt.Errorf("connect database: %w", dbErr)
		}
		deps.db = db
		deps.stats = database.NewStatsRepository(db)
		deps.runs = database.NewRunRepository(db)
	} else {
		log.Warn("database not configured; link and sitemap data will be empty")
	}

	if cfg.Redis.Enabled {
		client, redisErr := cache.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if redisErr != nil {
			return nil, fmt.Errorf("connect redis: %w", redisErr)
		}
		deps.store = cache.NewSitemapCache(client, cfg.Sitemap.CacheTTL)
	}

	// Keep interface values nil when the repository is absent; a typed
	// nil would defeat the soft-disable checks downstream.
	var statsProvider links.StatsProvider
	var source sitemap.Source
	var runs sitemap.RunRecorder
	if deps.stats != nil {
		statsProvider = deps.stats
		source = deps.stats
	}
	if deps.runs != nil {
		runs = deps.runs
	}

	deps.linksSvc = links.NewService(statsProvider)
	deps.generator = sitemap.NewGenerator(source, cfg.DomainSitemapConfig(), runs, deps.tel, log)

	return deps, nil
}

// close releases held connections.
func (d *appDeps) close() {
	if d.db != nil {
		_ = database.Close(d.db)
	}
	_ = d.log.Sync()
}
