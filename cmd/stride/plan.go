package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stridehq/stride/internal/planning"
	"github.com/stridehq/stride/internal/schedule"
)

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Schedule generation and adjustment",
	}

	cmd.AddCommand(newPlanGenerateCmd())
	cmd.AddCommand(newPlanAdjustCmd())
	return cmd
}

func newPlanGenerateCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "generate GOAL_ID",
		Short: "Generate (or regenerate) a goal's schedule",
		Long: `Builds a phased, date-bounded schedule for the goal using the configured
planning strategy. Regenerating replaces the previous schedule wholesale;
the adjustment history is preserved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlanGenerate(cmd, configPath, args[0])
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}

func runPlanGenerate(cmd *cobra.Command, configPath, goalID string) error {
	svc, err := serviceFromConfig(configPath)
	if err != nil {
		return err
	}

	s, err := svc.GeneratePlan(context.Background(), goalID)
	if err != nil {
		if errors.Is(err, planning.ErrNoUserProfile) {
			return fmt.Errorf("no user profile found — run \"stride db init\" first")
		}
		if errors.Is(err, planning.ErrAPIKeyMissing) {
			return fmt.Errorf("remote strategy selected but no API key is set")
		}
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generated schedule %s for goal %s\n", s.ID, goalID)
	fmt.Fprintf(out, "Phases: %d   Tasks: %d   Estimated completion: %s\n",
		len(s.Phases), schedule.TotalTasks(s), formatDate(s.EstimatedCompletion))
	for _, p := range s.Phases {
		fmt.Fprintf(out, "  Phase %d: %s (%s → %s, %d tasks)\n",
			p.OrderIndex+1, p.Title, formatDate(p.StartDate), formatDate(p.EndDate), len(p.Tasks))
	}
	return nil
}

func newPlanAdjustCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "adjust GOAL_ID",
		Short: "Reschedule overdue tasks onto upcoming days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlanAdjust(cmd, configPath, args[0])
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}

func runPlanAdjust(cmd *cobra.Command, configPath, goalID string) error {
	svc, err := serviceFromConfig(configPath)
	if err != nil {
		return err
	}

	next, applied, err := svc.AdjustSchedule(context.Background(), goalID)
	if err != nil {
		if errors.Is(err, planning.ErrNoExistingSchedule) {
			return fmt.Errorf("goal %s has no schedule — run \"stride plan generate %s\" first", goalID, goalID)
		}
		return err
	}

	out := cmd.OutOrStdout()
	if len(applied) == 0 {
		fmt.Fprintln(out, "Nothing to adjust.")
		return nil
	}
	fmt.Fprintf(out, "Adjusted schedule for goal %s\n", goalID)
	for _, a := range applied {
		fmt.Fprintf(out, "  %s: %s\n", a.Reason, a.Description)
	}
	fmt.Fprintf(out, "Estimated completion: %s\n", formatDate(next.EstimatedCompletion))
	return nil
}
