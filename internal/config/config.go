package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Simulation SimulationConfig `yaml:"simulation"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
	IDs        IDConfig         `yaml:"ids"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port string `yaml:"port" env:"SOCIALDASH_PORT"`
	Mode string `yaml:"mode" env:"SOCIALDASH_MODE"` // debug/release
}

// DatabaseConfig represents the notification history database
type DatabaseConfig struct {
	Type string `yaml:"type" env:"SOCIALDASH_DB_TYPE"` // sqlite
	Path string `yaml:"path" env:"SOCIALDASH_DB_PATH"` // ":memory:" keeps nothing across restarts
}

// SimulationConfig controls the fake scrape and chat timings
type SimulationConfig struct {
	ChatReplyDelay   string `yaml:"chat_reply_delay" env:"SOCIALDASH_CHAT_REPLY_DELAY"`
	ScrapeDelay      string `yaml:"scrape_delay" env:"SOCIALDASH_SCRAPE_DELAY"`
	ScrapeFoundCount int    `yaml:"scrape_found_count" env:"SOCIALDASH_SCRAPE_FOUND_COUNT"`
}

// SchedulerConfig toggles cron-driven scrapes for active rules
type SchedulerConfig struct {
	Enabled bool `yaml:"enabled" env:"SOCIALDASH_SCHEDULER_ENABLED"`
}

// IDConfig selects the identity generator shared by all stores
type IDConfig struct {
	Strategy string `yaml:"strategy" env:"SOCIALDASH_ID_STRATEGY"` // uuid/sequence
}

// LogConfig represents logger configuration
type LogConfig struct {
	Level       string `yaml:"level" env:"SOCIALDASH_LOG_LEVEL"`
	Development bool   `yaml:"development" env:"SOCIALDASH_LOG_DEVELOPMENT"`
}

const (
	defaultChatReplyDelay = time.Second
	defaultScrapeDelay    = 3 * time.Second
)

// LoadConfig loads configuration from a YAML file, then applies
// SOCIALDASH_* environment overrides and defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	config.ApplyDefaults()
	return &config, nil
}

// ApplyDefaults fills every empty field with its default value
func (c *Config) ApplyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "debug"
	}
	if c.Database.Type == "" {
		c.Database.Type = "sqlite"
	}
	if c.Database.Path == "" {
		c.Database.Path = ":memory:"
	}
	if c.Simulation.ChatReplyDelay == "" {
		c.Simulation.ChatReplyDelay = defaultChatReplyDelay.String()
	}
	if c.Simulation.ScrapeDelay == "" {
		c.Simulation.ScrapeDelay = defaultScrapeDelay.String()
	}
	if c.Simulation.ScrapeFoundCount <= 0 {
		c.Simulation.ScrapeFoundCount = 2
	}
	if c.IDs.Strategy == "" {
		c.IDs.Strategy = "uuid"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// ChatReplyDelayDuration parses the chat reply delay, falling back to 1s
func (s SimulationConfig) ChatReplyDelayDuration() time.Duration {
	return parseDuration(s.ChatReplyDelay, defaultChatReplyDelay)
}

// ScrapeDelayDuration parses the scrape completion delay, falling back to 3s
func (s SimulationConfig) ScrapeDelayDuration() time.Duration {
	return parseDuration(s.ScrapeDelay, defaultScrapeDelay)
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}
