// Package config provides YAML-based configuration loading for Stride.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level Stride configuration, loaded from stride.yaml.
type Config struct {
	Profile   ProfileConfig   `yaml:"profile"`
	Database  DatabaseConfig  `yaml:"database"`
	Planner   PlannerConfig   `yaml:"planner"`
	Reminders RemindersConfig `yaml:"reminders"`
}

// ProfileConfig seeds the single user profile consumed by planning.
type ProfileConfig struct {
	WeeklyHours float64  `yaml:"weekly_hours"`
	Interests   []string `yaml:"interests"`
}

// DatabaseConfig selects and configures the storage backend.
type DatabaseConfig struct {
	Driver   string `yaml:"driver"` // sqlite or mysql
	Path     string `yaml:"path"`   // sqlite file path
	Host     string `yaml:"host"`   // mysql settings
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
}

// PlannerConfig selects the planning strategy.
type PlannerConfig struct {
	Strategy string       `yaml:"strategy"` // rules or remote
	Remote   RemoteConfig `yaml:"remote"`
}

// RemoteConfig holds settings for the remote-model planning strategy.
// The API key is read from the environment, never from the file.
type RemoteConfig struct {
	BaseURL        string `yaml:"base_url"`
	Model          string `yaml:"model"`
	APIKeyEnv      string `yaml:"api_key_env"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// RemindersConfig controls reminder digest delivery.
type RemindersConfig struct {
	Cron            string `yaml:"cron"`     // 5-field cron expression
	Platform        string `yaml:"platform"` // slack, discord, or command
	Channel         string `yaml:"channel"`
	SlackTokenEnv   string `yaml:"slack_token_env"`
	DiscordTokenEnv string `yaml:"discord_token_env"`
	Command         string `yaml:"command"` // shell template for the command sink
}

// Load reads a YAML config file from path and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals YAML bytes into a validated Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills in derived and default values.
func (c *Config) applyDefaults() {
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Path == "" {
		c.Database.Path = "stride.db"
	}
	if c.Database.Host == "" {
		c.Database.Host = "127.0.0.1"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 3306
	}
	if c.Database.Database == "" {
		c.Database.Database = "stride"
	}
	if c.Database.User == "" {
		c.Database.User = "root"
	}
	if c.Planner.Strategy == "" {
		c.Planner.Strategy = "rules"
	}
	if c.Planner.Remote.BaseURL == "" {
		c.Planner.Remote.BaseURL = "https://api.deepseek.com"
	}
	if c.Planner.Remote.Model == "" {
		c.Planner.Remote.Model = "deepseek-chat"
	}
	if c.Planner.Remote.APIKeyEnv == "" {
		c.Planner.Remote.APIKeyEnv = "STRIDE_API_KEY"
	}
	if c.Planner.Remote.TimeoutSeconds == 0 {
		c.Planner.Remote.TimeoutSeconds = 60
	}
	if c.Reminders.Cron == "" {
		c.Reminders.Cron = "0 9 * * *"
	}
	if c.Reminders.Platform == "" {
		c.Reminders.Platform = "command"
	}
	if c.Reminders.SlackTokenEnv == "" {
		c.Reminders.SlackTokenEnv = "STRIDE_SLACK_TOKEN"
	}
	if c.Reminders.DiscordTokenEnv == "" {
		c.Reminders.DiscordTokenEnv = "STRIDE_DISCORD_TOKEN"
	}
}

// validate checks that all required fields are present and consistent.
func (c *Config) validate() error {
	var errs []string
	if c.Profile.WeeklyHours < 0 {
		errs = append(errs, "profile.weekly_hours must be >= 0")
	}
	switch c.Database.Driver {
	case "sqlite", "mysql":
	default:
		errs = append(errs, fmt.Sprintf("database.driver %q is not supported (sqlite, mysql)", c.Database.Driver))
	}
	switch c.Planner.Strategy {
	case "rules", "remote":
	default:
		errs = append(errs, fmt.Sprintf("planner.strategy %q is not supported (rules, remote)", c.Planner.Strategy))
	}
	switch c.Reminders.Platform {
	case "slack", "discord", "command":
	default:
		errs = append(errs, fmt.Sprintf("reminders.platform %q is not supported (slack, discord, command)", c.Reminders.Platform))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// APIKey resolves the remote strategy API key from the environment.
func (c *Config) APIKey() string {
	return os.Getenv(c.Planner.Remote.APIKeyEnv)
}
