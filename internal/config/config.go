// Package config loads the service configuration from a YAML file,
// environment variables, and defaults, in ascending precedence of
// defaults < file < environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/MarvinNL046/cutiepawspedia/internal/domain"
)

// Default configuration values.
const (
	defaultServerAddress = ":8080"
	defaultReadTimeout   = 10 * time.Second
	defaultWriteTimeout  = 30 * time.Second

	defaultDBHost    = "localhost"
	defaultDBPort    = 5432
	defaultDBUser    = "postgres"
	defaultDBName    = "cutiepawspedia"
	defaultDBSSLMode = "disable"

	defaultRedisAddr = "localhost:6379"

	// DefaultBaseURL is the fallback when APP_BASE_URL is unset.
	DefaultBaseURL = "https://cutiepawspedia.com"

	defaultMaxURLsPerSitemap = 25000
	defaultCacheTTL          = 48 * time.Hour

	// defaultCronSpec regenerates sitemaps nightly at 03:00.
	defaultCronSpec = "0 3 * * *"
)

// Config is the root configuration.
type Config struct {
	Debug     bool            `mapstructure:"debug"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Sitemap   SitemapConfig   `mapstructure:"sitemap"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Address      string        `mapstructure:"address"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// DatabaseConfig holds PostgreSQL configuration. When Host is empty
// the data source is soft-disabled: sitemap sections come out empty
// and link groups have no rows, but nothing crashes.
type DatabaseConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// RedisConfig holds the sitemap cache configuration.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SitemapConfig holds sitemap generation configuration.
type SitemapConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	Locales           []string      `mapstructure:"locales"`
	DefaultLocale     string        `mapstructure:"default_locale"`
	MaxURLsPerSitemap int           `mapstructure:"max_urls_per_sitemap"`
	CacheTTL          time.Duration `mapstructure:"cache_ttl"`
	OutputDir         string        `mapstructure:"output_dir"`
}

// SchedulerConfig holds the cron configuration for periodic
// regeneration.
type SchedulerConfig struct {
	CronSpec string `mapstructure:"cron_spec"`
}

// Load reads configuration. The config file is optional; defaults and
// environment variables cover a bare environment.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// The base URL historically comes from APP_BASE_URL.
	_ = v.BindEnv("sitemap.base_url", "APP_BASE_URL", "SITEMAP_BASE_URL")
	_ = v.BindEnv("debug", "APP_DEBUG")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// No config file is fine; defaults and env cover it.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)

	v.SetDefault("server.address", defaultServerAddress)
	v.SetDefault("server.read_timeout", defaultReadTimeout)
	v.SetDefault("server.write_timeout", defaultWriteTimeout)

	v.SetDefault("database.enabled", true)
	v.SetDefault("database.host", defaultDBHost)
	v.SetDefault("database.port", defaultDBPort)
	v.SetDefault("database.user", defaultDBUser)
	v.SetDefault("database.name", defaultDBName)
	v.SetDefault("database.sslmode", defaultDBSSLMode)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", defaultRedisAddr)
	v.SetDefault("redis.db", 0)

	v.SetDefault("sitemap.base_url", DefaultBaseURL)
	v.SetDefault("sitemap.locales", []string{"nl", "en", "de"})
	v.SetDefault("sitemap.default_locale", "nl")
	v.SetDefault("sitemap.max_urls_per_sitemap", defaultMaxURLsPerSitemap)
	v.SetDefault("sitemap.cache_ttl", defaultCacheTTL)
	v.SetDefault("sitemap.output_dir", "public")

	v.SetDefault("scheduler.cron_spec", defaultCronSpec)
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Sitemap.BaseURL == "" {
		return errors.New("sitemap.base_url is required")
	}
	if c.Sitemap.MaxURLsPerSitemap <= 0 {
		return fmt.Errorf("sitemap.max_urls_per_sitemap must be positive, got %d", c.Sitemap.MaxURLsPerSitemap)
	}
	if len(c.Sitemap.Locales) == 0 {
		return errors.New("sitemap.locales must not be empty")
	}
	for i, l := range c.Sitemap.Locales {
		if !domain.Locale(l).IsSupported() {
			return fmt.Errorf("sitemap.locales[%d]: unsupported locale %q", i, l)
		}
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return errors.New("redis.addr is required when redis.enabled is true")
	}
	return nil
}

// DomainSitemapConfig converts the loaded configuration into the value
// passed to the sitemap builders.
func (c *Config) DomainSitemapConfig() domain.SitemapConfig {
	locales := make([]domain.Locale, 0, len(c.Sitemap.Locales))
	for _, l := range c.Sitemap.Locales {
		locales = append(locales, domain.Locale(l))
	}
	return domain.SitemapConfig{
		BaseURL:           c.Sitemap.BaseURL,
		Locales:           locales,
		DefaultLocale:     domain.Locale(c.Sitemap.DefaultLocale),
		MaxURLsPerSitemap: c.Sitemap.MaxURLsPerSitemap,
	}
}

// DatabaseConfigured reports whether a data source is available. A
// disabled database is the soft-disabled state: sitemap sections come
// out empty instead of the job failing.
func (c *Config) DatabaseConfigured() bool {
	return c.Database.Enabled && c.Database.Host != ""
}
