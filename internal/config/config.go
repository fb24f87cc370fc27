package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/utils"
)

// EnvPrefix selects the environment variables read by Load. A double
// underscore separates nesting levels: REBILL_SCHEDULER__INTERVAL=1m.
const EnvPrefix = "REBILL_"

type Config struct {
	Store         string              `koanf:"store"`
	Timezone      string              `koanf:"timezone"`
	Debug         bool                `koanf:"debug"`
	Scheduler     SchedulerConfig     `koanf:"scheduler"`
	Reminders     RemindersConfig     `koanf:"reminders"`
	Notifications NotificationsConfig `koanf:"notifications"`
	Server        ServerConfig        `koanf:"server"`
}

type SchedulerConfig struct {
	Interval  time.Duration `koanf:"interval"`
	DueWindow time.Duration `koanf:"due_window"`
}

type RemindersConfig struct {
	DefaultSnooze time.Duration `koanf:"default_snooze"`
}

type NotificationsConfig struct {
	Enabled    bool `koanf:"enabled"`
	Desktop    bool `koanf:"desktop"`
	DurationMs int  `koanf:"duration_ms"`
}

type ServerConfig struct {
	Addr string `koanf:"addr"`
}

// Load merges defaults, the YAML file at configPath (if it exists) and
// REBILL_* environment variables, in that order.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		configPath = utils.ExpandPath(configPath)

		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Store = utils.ExpandPath(cfg.Store)

	return &cfg, nil
}

func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}

func (c *Config) Validate() error {
	if c.Store == "" {
		return fmt.Errorf("store is required")
	}
	if !utils.ValidateTimezone(c.Timezone) {
		return fmt.Errorf("invalid timezone: %s", c.Timezone)
	}
	if c.Scheduler.Interval <= 0 {
		return fmt.Errorf("scheduler.interval must be positive")
	}
	if c.Scheduler.DueWindow <= 0 {
		return fmt.Errorf("scheduler.due_window must be positive")
	}
	// Polls farther apart than the full window could step over a due instant.
	if c.Scheduler.Interval > 2*c.Scheduler.DueWindow {
		return fmt.Errorf("scheduler.interval (%s) must not exceed twice scheduler.due_window (%s)",
			c.Scheduler.Interval, c.Scheduler.DueWindow)
	}
	if c.Reminders.DefaultSnooze <= 0 {
		return fmt.Errorf("reminders.default_snooze must be positive")
	}
	if c.Notifications.DurationMs < 0 {
		return fmt.Errorf("notifications.duration_ms cannot be negative")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	return utils.LoadLocation(c.Timezone)
}
