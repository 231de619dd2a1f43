package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newSuggestCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "suggest GOAL_ID",
		Short: "Get coaching suggestions for a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd, configPath, args[0])
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}

func runSuggest(cmd *cobra.Command, configPath, goalID string) error {
	svc, err := serviceFromConfig(configPath)
	if err != nil {
		return err
	}

	suggestions := svc.GetSuggestions(context.Background(), goalID)

	out := cmd.OutOrStdout()
	if len(suggestions) == 0 {
		fmt.Fprintln(out, "No suggestions right now.")
		return nil
	}
	for _, s := range suggestions {
		fmt.Fprintf(out, "* %s\n", s)
	}
	return nil
}
