package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "NPO_FEED_CONFIG"
	listingURLEnv = "NPO_FEED_URL"
	outputPathEnv = "NPO_FEED_OUTPUT"
	listenAddrEnv = "NPO_FEED_ADDR"
	intervalEnv   = "NPO_FEED_INTERVAL"
	logLevelEnv   = "NPO_FEED_LOG_LEVEL"

	defaultInterval = time.Hour
	defaultTimeout  = 20 * time.Second
)

// Config holds high-level settings required across the application.
type Config struct {
	Source    SourceConfig    `yaml:"source"`
	Feed      FeedConfig      `yaml:"feed"`
	Output    OutputConfig    `yaml:"output"`
	Server    ServerConfig    `yaml:"server"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SourceConfig describes the listing page to scrape.
type SourceConfig struct {
	URL       string `yaml:"url"`
	Origin    string `yaml:"origin"`
	UserAgent string `yaml:"userAgent"`
	Timeout   string `yaml:"timeout"`
	MaxItems  int    `yaml:"maxItems"`
}

// FetchTimeout resolves the timeout string; hung requests must not stall the
// schedule, so an unparseable value reverts to the default.
func (s SourceConfig) FetchTimeout() time.Duration {
	d, err := time.ParseDuration(s.Timeout)
	if err != nil || d <= 0 {
		return defaultTimeout
	}
	return d
}

// FeedConfig carries channel-level metadata for the generated RSS document.
type FeedConfig struct {
	Title       string `yaml:"title"`
	Link        string `yaml:"link"`
	Description string `yaml:"description"`
	Language    string `yaml:"language"`
}

// OutputConfig describes where the rendered feed file is written.
type OutputConfig struct {
	File string `yaml:"file"`
}

// ServerConfig defines the HTTP serving surface.
type ServerConfig struct {
	Addr string `yaml:"addr"`
	Path string `yaml:"path"`
}

// SchedulerConfig defines how often the feed is refreshed.
type SchedulerConfig struct {
	Interval string `yaml:"interval"`
}

// RefreshInterval resolves the interval string, reverting to one hour when it
// is absent or unparseable.
func (s SchedulerConfig) RefreshInterval() time.Duration {
	d, err := time.ParseDuration(s.Interval)
	if err != nil || d <= 0 {
		return defaultInterval
	}
	return d
}

// LoggingConfig controls slog verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(listingURLEnv); v != "" {
		c.Source.URL = v
	}

	if v := os.Getenv(outputPathEnv); v != "" {
		c.Output.File = v
	}

	if v := os.Getenv(listenAddrEnv); v != "" {
		c.Server.Addr = v
	}

	if v := os.Getenv(intervalEnv); v != "" {
		c.Scheduler.Interval = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Source.URL != "" {
		base.Source.URL = override.Source.URL
	}
	if override.Source.Origin != "" {
		base.Source.Origin = override.Source.Origin
	}
	if override.Source.UserAgent != "" {
		base.Source.UserAgent = override.Source.UserAgent
	}
	if override.Source.Timeout != "" {
		base.Source.Timeout = override.Source.Timeout
	}
	if override.Source.MaxItems > 0 {
		base.Source.MaxItems = override.Source.MaxItems
	}

	if override.Feed.Title != "" {
		base.Feed.Title = override.Feed.Title
	}
	if override.Feed.Link != "" {
		base.Feed.Link = override.Feed.Link
	}
	if override.Feed.Description != "" {
		base.Feed.Description = override.Feed.Description
	}
	if override.Feed.Language != "" {
		base.Feed.Language = override.Feed.Language
	}

	if override.Output.File != "" {
		base.Output.File = override.Output.File
	}

	if override.Server.Addr != "" {
		base.Server.Addr = override.Server.Addr
	}
	if override.Server.Path != "" {
		base.Server.Path = override.Server.Path
	}

	if override.Scheduler.Interval != "" {
		base.Scheduler.Interval = override.Scheduler.Interval
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Source: SourceConfig{
			URL:    "https://npo.nl/",
			Origin: "https://npo.nl",
			// Sites reject default-looking clients, so the fetcher has to
			// identify as a regular browser.
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
			Timeout:   "20s",
			MaxItems:  20,
		},
		Feed: FeedConfig{
			Title:       "NPO Nieuwe Programma's",
			Link:        "https://npo.nl/start",
			Description: "Een RSS feed van nieuwe en recente programma's op NPO",
			Language:    "nl",
		},
		Output:    OutputConfig{File: "npo_new_programs.xml"},
		Server:    ServerConfig{Addr: ":8000", Path: "/"},
		Scheduler: SchedulerConfig{Interval: "1h"},
		Logging:   LoggingConfig{Level: "info"},
	}
}
