package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// FunBook specifics
	Catalog CatalogConfig
	Notes   NotesConfig
	Cache   CacheConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// CatalogConfig configures the remote book catalog feed.
type CatalogConfig struct {
	FeedURL        string
	RequestTimeout time.Duration
	RatePerSecond  float64
	RateBurst      int
}

// NotesConfig configures note content fetching from the raw content host.
type NotesConfig struct {
	RawHost        string // host substituted into stored note references
	RequestTimeout time.Duration
	RatePerSecond  float64
	RateBurst      int
}

// CacheConfig configures the response cache controller. A deployment changes
// Generation to invalidate every previously cached entry at once.
type CacheConfig struct {
	Generation  string
	Precache    []string
	Passthrough bool
	OriginURL   string
	Capacity    int
	TTL         time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Catalog feed
	cfg.Catalog.FeedURL = viper.GetString("catalog.feed_url")
	cfg.Catalog.RequestTimeout = viper.GetDuration("catalog.request_timeout")
	cfg.Catalog.RatePerSecond = viper.GetFloat64("catalog.rate_per_second")
	cfg.Catalog.RateBurst = viper.GetInt("catalog.rate_burst")
	if feedURL := viper.GetString("catalog_feed_url"); feedURL != "" {
		cfg.Catalog.FeedURL = feedURL
	}
	if cfg.Catalog.FeedURL == "" {
		return nil, fmt.Errorf("catalog.feed_url is required")
	}

	// Note content host
	cfg.Notes.RawHost = viper.GetString("notes.raw_host")
	cfg.Notes.RequestTimeout = viper.GetDuration("notes.request_timeout")
	cfg.Notes.RatePerSecond = viper.GetFloat64("notes.rate_per_second")
	cfg.Notes.RateBurst = viper.GetInt("notes.rate_burst")

	// Response cache
	cfg.Cache.Generation = viper.GetString("cache.generation")
	cfg.Cache.Passthrough = viper.GetBool("cache.passthrough")
	cfg.Cache.OriginURL = viper.GetString("cache.origin_url")
	cfg.Cache.Capacity = viper.GetInt("cache.capacity")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")
	if gen := viper.GetString("cache_generation"); gen != "" {
		cfg.Cache.Generation = gen
	}

	// Split precache list since viper might not parse an array seamlessly from env
	var paths []string
	for _, p := range viper.GetStringSlice("cache.precache") {
		p = strings.TrimSpace(p)
		if p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		if raw := viper.GetString("cache.precache"); raw != "" {
			for _, p := range strings.Split(raw, ",") {
				p = strings.TrimSpace(p)
				if p != "" {
					paths = append(paths, p)
				}
			}
		}
	}
	cfg.Cache.Precache = paths

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("catalog.request_timeout", "10s")
	viper.SetDefault("catalog.rate_per_second", 5.0)
	viper.SetDefault("catalog.rate_burst", 5)

	viper.SetDefault("notes.raw_host", "raw.githubusercontent.com")
	viper.SetDefault("notes.request_timeout", "10s")
	viper.SetDefault("notes.rate_per_second", 5.0)
	viper.SetDefault("notes.rate_burst", 5)

	viper.SetDefault("cache.generation", "funbook-dev-v1")
	viper.SetDefault("cache.passthrough", false)
	viper.SetDefault("cache.precache", []string{"/", "/index.html", "/manifest.json"})
	viper.SetDefault("cache.capacity", 256)
	viper.SetDefault("cache.ttl", "0s")
}
