package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/stridehq/stride/internal/config"
	"github.com/stridehq/stride/internal/db"
	"github.com/stridehq/stride/internal/planner"
	"github.com/stridehq/stride/internal/planning"
	"github.com/stridehq/stride/internal/remote"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// connectFromConfig loads the config file and opens the database.
func connectFromConfig(configPath string) (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	gormDB, err := db.Connect(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return cfg, gormDB, nil
}

// strategyFromConfig builds the configured planning strategy.
func strategyFromConfig(cfg *config.Config) planning.Strategy {
	if cfg.Planner.Strategy == "remote" {
		client := remote.NewClient(remote.ClientOpts{
			APIKey:  cfg.APIKey(),
			BaseURL: cfg.Planner.Remote.BaseURL,
			Model:   cfg.Planner.Remote.Model,
			Timeout: time.Duration(cfg.Planner.Remote.TimeoutSeconds) * time.Second,
		})
		return &remote.Strategy{Client: client}
	}
	return &planner.RuleBased{}
}

// serviceFromConfig wires a planning service from a config path.
func serviceFromConfig(configPath string) (*planning.Service, error) {
	cfg, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return nil, err
	}
	return &planning.Service{
		DB:       gormDB,
		Strategy: strategyFromConfig(cfg),
	}, nil
}

// formatDate renders a date, or a dash for the zero time.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}

// formatOptionalDate renders an optional date, or a dash when unset.
func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return formatDate(*t)
}

// checkmark renders a completion flag.
func checkmark(done bool) string {
	if done {
		return "x"
	}
	return " "
}

// configFlag registers the shared --config flag on a command.
func configFlag(cmd *cobra.Command, configPath *string) {
	cmd.Flags().StringVarP(configPath, "config", "c", "stride.yaml", "path to Stride config file")
}
