package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stridehq/stride/internal/config"
	"github.com/stridehq/stride/internal/db"
)

func newDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Database management commands",
	}

	cmd.AddCommand(newDBInitCmd())
	cmd.AddCommand(newDBResetCmd())
	return cmd
}

func newDBInitCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the Stride database",
		Long:  "Migrates all tables and seeds the user profile from configuration.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDBInit(cmd, configPath)
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}

func runDBInit(cmd *cobra.Command, configPath string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	fmt.Fprintf(out, "Loaded config from %s (%s backend)\n", configPath, cfg.Database.Driver)

	gormDB, err := db.Connect(cfg.Database)
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(gormDB); err != nil {
		return err
	}
	fmt.Fprintf(out, "Migrated %d tables\n", len(db.AllModels()))

	if err := db.SeedProfile(gormDB, cfg.Profile); err != nil {
		return err
	}
	fmt.Fprintf(out, "Profile seeded: %.1f weekly hours\n", cfg.Profile.WeeklyHours)

	fmt.Fprintln(out, "\nStride database initialized successfully.")
	return nil
}

func newDBResetCmd() *cobra.Command {
	var (
		configPath string
		yes        bool
	)

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop all Stride tables and re-initialize",
		Long: `Drops every Stride table, then re-creates the schema and re-seeds the
profile from config. All goals, schedules, and history are lost.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDBReset(cmd, configPath, yes)
		},
	}

	configFlag(cmd, &configPath)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation prompt")
	return cmd
}

func runDBReset(cmd *cobra.Command, configPath string, skipConfirm bool) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if !skipConfirm {
		fmt.Fprintln(out, "WARNING: This will permanently delete all goals, schedules, and history.")
		fmt.Fprint(out, "Type \"yes\" to confirm: ")
		scanner := bufio.NewScanner(cmd.InOrStdin())
		if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "yes" {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	gormDB, err := db.Connect(cfg.Database)
	if err != nil {
		return err
	}

	if err := gormDB.Migrator().DropTable(db.AllModels()...); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	fmt.Fprintln(out, "Dropped all tables")

	if err := db.AutoMigrate(gormDB); err != nil {
		return err
	}
	fmt.Fprintf(out, "Migrated %d tables\n", len(db.AllModels()))

	if err := db.SeedProfile(gormDB, cfg.Profile); err != nil {
		return err
	}
	fmt.Fprintf(out, "Profile seeded: %.1f weekly hours\n", cfg.Profile.WeeklyHours)

	fmt.Fprintln(out, "\nStride database reset successfully.")
	return nil
}
