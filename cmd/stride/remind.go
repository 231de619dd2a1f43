package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/stridehq/stride/internal/config"
	"github.com/stridehq/stride/internal/reminder"
	"github.com/stridehq/stride/internal/reminder/discord"
	"github.com/stridehq/stride/internal/reminder/slack"
	"gorm.io/gorm"
)

func newRemindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Task reminder digests",
	}

	cmd.AddCommand(newRemindOnceCmd())
	cmd.AddCommand(newRemindWatchCmd())
	return cmd
}

func newRemindOnceCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "once",
		Short: "Send the reminder digest now",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemindOnce(cmd, configPath)
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}

func runRemindOnce(cmd *cobra.Command, configPath string) error {
	cfg, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	adapter, err := adapterFromConfig(cfg)
	if err != nil {
		return err
	}
	if err := adapter.Connect(ctx); err != nil {
		return err
	}
	defer adapter.Close()

	w, err := watcherFromConfig(cfg, gormDB, adapter)
	if err != nil {
		return err
	}
	if err := w.SendOnce(ctx); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Reminder digest sent.")
	return nil
}

func newRemindWatchCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the reminder loop on the configured cron cadence",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemindWatch(cmd, configPath)
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}

func runRemindWatch(cmd *cobra.Command, configPath string) error {
	cfg, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	adapter, err := adapterFromConfig(cfg)
	if err != nil {
		return err
	}
	if err := adapter.Connect(ctx); err != nil {
		return err
	}
	defer adapter.Close()

	w, err := watcherFromConfig(cfg, gormDB, adapter)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Reminder loop running (%s via %s). Ctrl-C to stop.\n",
		cfg.Reminders.Cron, cfg.Reminders.Platform)

	if err := w.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

// adapterFromConfig builds the configured reminder adapter. Tokens come
// from the environment, never the config file.
func adapterFromConfig(cfg *config.Config) (reminder.Adapter, error) {
	switch cfg.Reminders.Platform {
	case "slack":
		token := os.Getenv(cfg.Reminders.SlackTokenEnv)
		if token == "" {
			return nil, fmt.Errorf("slack token env %s is not set", cfg.Reminders.SlackTokenEnv)
		}
		return slack.New(slack.AdapterOpts{
			BotToken:  token,
			ChannelID: cfg.Reminders.Channel,
		})
	case "discord":
		token := os.Getenv(cfg.Reminders.DiscordTokenEnv)
		if token == "" {
			return nil, fmt.Errorf("discord token env %s is not set", cfg.Reminders.DiscordTokenEnv)
		}
		return discord.New(discord.AdapterOpts{
			BotToken:  token,
			ChannelID: cfg.Reminders.Channel,
		})
	case "command":
		return reminder.NewCommandAdapter(cfg.Reminders.Command)
	default:
		return nil, fmt.Errorf("unsupported reminder platform %q", cfg.Reminders.Platform)
	}
}

func watcherFromConfig(cfg *config.Config, gormDB *gorm.DB, adapter reminder.Adapter) (*reminder.Watcher, error) {
	return reminder.NewWatcher(reminder.WatcherOpts{
		DB:       gormDB,
		Adapter:  adapter,
		CronExpr: cfg.Reminders.Cron,
		Channel:  cfg.Reminders.Channel,
	})
}
