package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment overrides.
const (
	EnvConfig = "LOVEWHISPER_CONFIG"
	EnvDB     = "LOVEWHISPER_DB"
	EnvURL    = "LOVEWHISPER_URL"
)

// Config holds all lovewhisper configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Selection SelectionConfig `yaml:"selection"`
	Gate      GateConfig      `yaml:"gate"`
	Notify    NotifyConfig    `yaml:"notify"`
	Share     ShareConfig     `yaml:"share"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Bind string `yaml:"bind"`
	Port int    `yaml:"port"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type SelectionConfig struct {
	SetSize     int  `yaml:"set_size"`
	MixTypes    bool `yaml:"mix_types"`
	RecencyDays int  `yaml:"recency_days"`
}

type GateConfig struct {
	DailyFreeRefreshes int `yaml:"daily_free_refreshes"`
}

type NotifyConfig struct {
	ToastTTLMS int `yaml:"toast_ttl_ms"`
}

type ShareConfig struct {
	// Command is run with the message on stdin. Empty means no native share.
	Command string `yaml:"command"`
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Bind: "127.0.0.1",
			Port: 37778,
		},
		Database: DatabaseConfig{
			Path: "", // resolved at runtime via store.DefaultDBPath()
		},
		Selection: SelectionConfig{
			SetSize:     3,
			MixTypes:    true,
			RecencyDays: 30,
		},
		Gate: GateConfig{
			DailyFreeRefreshes: 1,
		},
		Notify: NotifyConfig{
			ToastTTLMS: 2200,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns ~/.lovewhisper/config.yaml, or LOVEWHISPER_CONFIG if set.
func DefaultPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".lovewhisper", "config.yaml")
}

// Load reads the YAML file at path over the defaults and applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.normalize()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if p := os.Getenv(EnvDB); p != "" {
		c.Database.Path = p
	}
}

// normalize replaces out-of-range values with defaults.
func (c *Config) normalize() {
	def := Default()
	if c.Server.Bind == "" {
		c.Server.Bind = def.Server.Bind
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		c.Server.Port = def.Server.Port
	}
	if c.Selection.SetSize <= 0 {
		c.Selection.SetSize = def.Selection.SetSize
	}
	if c.Selection.RecencyDays <= 0 {
		c.Selection.RecencyDays = def.Selection.RecencyDays
	}
	if c.Gate.DailyFreeRefreshes < 0 {
		c.Gate.DailyFreeRefreshes = def.Gate.DailyFreeRefreshes
	}
	if c.Notify.ToastTTLMS <= 0 {
		c.Notify.ToastTTLMS = def.Notify.ToastTTLMS
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// ListenAddr returns the bind:port address string.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Bind, c.Server.Port)
}

// ServerURL returns the base URL clients use to reach the server.
// LOVEWHISPER_URL wins over the configured address.
func (c *Config) ServerURL() string {
	if u := os.Getenv(EnvURL); u != "" {
		return u
	}
	return "http://" + c.Server.Bind + ":" + strconv.Itoa(c.Server.Port)
}

// RecencyWindow returns the history window as a duration.
func (c *Config) RecencyWindow() time.Duration {
	return time.Duration(c.Selection.RecencyDays) * 24 * time.Hour
}

// ToastTTL returns how long a toast stays visible.
func (c *Config) ToastTTL() time.Duration {
	return time.Duration(c.Notify.ToastTTLMS) * time.Millisecond
}
