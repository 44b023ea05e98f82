package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/domain"
)

// Config holds all application configuration
type Config struct {
	General       GeneralConfig       `toml:"general"`
	Measure       MeasureConfig       `toml:"measure"`
	Notifications NotificationsConfig `toml:"notifications"`
	Web           WebConfig           `toml:"web"`
	Schedule      []ScheduleEntry     `toml:"schedule"`
}

// GeneralConfig holds general settings
type GeneralConfig struct {
	// LogRoot is the directory the CycleLog and CycleLogDetail directories
	// live under. Empty means the process working directory, matching the
	// original tool.
	LogRoot      string `toml:"log_root"`
	DatabasePath string `toml:"database_path"`
}

// MeasureConfig holds measurement settings
type MeasureConfig struct {
	// Strategy is "fixed-window" (default) or "wall-second".
	Strategy string `toml:"strategy"`
	// MaxPause caps the cumulative boundary back-off per cycle. Zero keeps
	// the unbounded historical behavior.
	MaxPause time.Duration `toml:"max_pause"`
}

// NotificationsConfig holds notification settings
type NotificationsConfig struct {
	Desktop      bool   `toml:"desktop"`
	SlackWebhook string `toml:"slack_webhook"`
}

// WebConfig holds live-view server settings
type WebConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// ScheduleEntry is one unattended run cadence
type ScheduleEntry struct {
	Name   string `toml:"name"`
	Cron   string `toml:"cron"`
	Cycles int    `toml:"cycles"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		General: GeneralConfig{
			LogRoot:      "",
			DatabasePath: filepath.Join(home, ".cpustress", "history.db"),
		},
		Measure: MeasureConfig{
			Strategy: string(domain.StrategyFixedWindow),
		},
		Notifications: NotificationsConfig{
			Desktop: false,
		},
		Web: WebConfig{
			Host: "127.0.0.1",
			Port: 8217,
		},
	}
}

// Strategy returns the configured measurement strategy, falling back to the
// fixed monotonic window when the value is unknown.
func (c *Config) Strategy() domain.Strategy {
	s := domain.Strategy(c.Measure.Strategy)
	if !s.Valid() {
		return domain.StrategyFixedWindow
	}
	return s
}

// Load reads configuration from a TOML file, falling back to defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.General.LogRoot = ExpandPath(cfg.General.LogRoot)
	cfg.General.DatabasePath = ExpandPath(cfg.General.DatabasePath)

	return cfg, nil
}

// ExpandPath expands ~ to the user's home directory
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// DefaultConfigPath returns the default config file location
func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cpustress", "config.toml")
}
