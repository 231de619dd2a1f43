package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stridehq/stride/internal/planning"
)

func newProgressCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "progress GOAL_ID",
		Short: "Analyze progress on a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgress(cmd, configPath, args[0])
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}

func runProgress(cmd *cobra.Command, configPath, goalID string) error {
	svc, err := serviceFromConfig(configPath)
	if err != nil {
		return err
	}

	a, err := svc.AnalyzeProgress(context.Background(), goalID)
	if err != nil {
		if errors.Is(err, planning.ErrNoExistingSchedule) {
			return fmt.Errorf("goal %s has no schedule — run \"stride plan generate %s\" first", goalID, goalID)
		}
		return err
	}

	out := cmd.OutOrStdout()
	status := "behind"
	if a.OnTrack {
		status = "on track"
	}
	fmt.Fprintf(out, "Score: %.0f/100 (%s)\n", a.Score, status)
	fmt.Fprintf(out, "Progress: %.0f%% actual vs %.0f%% expected\n",
		a.ActualProgress*100, a.ExpectedProgress*100)
	if a.ReestimatedCompletion != nil {
		fmt.Fprintf(out, "At this pace you'll finish around %s\n", formatDate(*a.ReestimatedCompletion))
	}

	if len(a.Strengths) > 0 {
		fmt.Fprintln(out, "\nGoing well:")
		for _, s := range a.Strengths {
			fmt.Fprintf(out, "  + %s\n", s)
		}
	}
	if len(a.Improvements) > 0 {
		fmt.Fprintln(out, "\nNeeds attention:")
		for _, s := range a.Improvements {
			fmt.Fprintf(out, "  - %s\n", s)
		}
	}
	if len(a.Recommendations) > 0 {
		fmt.Fprintln(out, "\nRecommendations:")
		for _, s := range a.Recommendations {
			fmt.Fprintf(out, "  * %s\n", s)
		}
	}
	return nil
}
