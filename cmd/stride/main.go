package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stride",
		Short: "Stride — turn goals into dated schedules",
		Long:  "Stride expands high-level goals into phased, date-bounded task schedules and keeps them honest as life happens.",
	}

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newDBCmd())
	cmd.AddCommand(newGoalCmd())
	cmd.AddCommand(newPlanCmd())
	cmd.AddCommand(newTaskCmd())
	cmd.AddCommand(newProgressCmd())
	cmd.AddCommand(newSuggestCmd())
	cmd.AddCommand(newCommitmentCmd())
	cmd.AddCommand(newRemindCmd())
	cmd.AddCommand(newDashboardCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "stride %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(newRootCmd()))
}
