package main

import (
	"bufio"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/stridehq/stride/internal/models"
	"github.com/stridehq/stride/internal/schedule"
	"github.com/stridehq/stride/internal/store"
)

func newGoalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Goal management commands",
	}

	cmd.AddCommand(newGoalAddCmd())
	cmd.AddCommand(newGoalListCmd())
	cmd.AddCommand(newGoalShowCmd())
	cmd.AddCommand(newGoalDeleteCmd())
	return cmd
}

func newGoalAddCmd() *cobra.Command {
	var (
		configPath  string
		title       string
		description string
		category    string
		target      string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new goal",
		Long:  "Creates a new goal with an auto-generated ID. Run \"stride plan generate\" afterwards to build its schedule.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGoalAdd(cmd, configPath, title, description, category, target)
		},
	}

	configFlag(cmd, &configPath)
	cmd.Flags().StringVar(&title, "title", "", "goal title (required)")
	cmd.Flags().StringVar(&description, "description", "", "detailed description")
	cmd.Flags().StringVar(&category, "category", "personal",
		"goal category ("+strings.Join(models.Categories, ", ")+")")
	cmd.Flags().StringVar(&target, "target", "", "target date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("title")
	return cmd
}

func runGoalAdd(cmd *cobra.Command, configPath, title, description, category, target string) error {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	opts := store.CreateOpts{
		Title:       title,
		Description: description,
		Category:    category,
	}
	if target != "" {
		t, err := time.ParseInLocation(dateLayout, target, time.Local)
		if err != nil {
			return fmt.Errorf("parse target date %q: %w", target, err)
		}
		opts.TargetDate = &t
	}

	goal, err := store.CreateGoal(gormDB, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created goal %s\n", goal.ID)
	fmt.Fprintf(out, "Category: %s\n", goal.Category)
	if goal.TargetDate != nil {
		fmt.Fprintf(out, "Target: %s\n", formatDate(*goal.TargetDate))
	}
	fmt.Fprintf(out, "Next: stride plan generate %s\n", goal.ID)
	return nil
}

func newGoalListCmd() *cobra.Command {
	var (
		configPath string
		category   string
		all        bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGoalList(cmd, configPath, category, all)
		},
	}

	configFlag(cmd, &configPath)
	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().BoolVar(&all, "all", false, "include inactive goals")
	return cmd
}

func runGoalList(cmd *cobra.Command, configPath, category string, all bool) error {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	goals, err := store.ListGoals(gormDB, store.ListFilters{
		Category:   category,
		ActiveOnly: !all,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(goals) == 0 {
		fmt.Fprintln(out, "No goals found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tPROGRESS\tTARGET")
	for _, g := range goals {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0f%%\t%s\n",
			g.ID, g.Title, g.Category, g.Progress, formatOptionalDate(g.TargetDate))
	}
	return w.Flush()
}

func newGoalShowCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "show GOAL_ID",
		Short: "Show a goal with its schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGoalShow(cmd, configPath, args[0])
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}

func runGoalShow(cmd *cobra.Command, configPath, goalID string) error {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	goal, err := store.GetGoal(gormDB, goalID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  %s\n", goal.ID, goal.Title)
	if goal.Description != "" {
		fmt.Fprintf(out, "  %s\n", goal.Description)
	}
	fmt.Fprintf(out, "Category: %s   Progress: %.0f%%   Target: %s\n",
		goal.Category, goal.Progress, formatOptionalDate(goal.TargetDate))

	if len(goal.Milestones) > 0 {
		fmt.Fprintln(out, "\nMilestones:")
		for _, m := range goal.Milestones {
			fmt.Fprintf(out, "  [%s] %s (%s)\n", checkmark(m.Completed), m.Title, formatDate(m.TargetDate))
		}
	}

	s := goal.Schedule
	if s == nil {
		fmt.Fprintln(out, "\nNo schedule yet. Run: stride plan generate "+goal.ID)
		return nil
	}

	now := time.Now()
	fmt.Fprintf(out, "\nSchedule (generated %s, estimated completion %s)\n",
		formatDate(s.GeneratedAt), formatDate(s.EstimatedCompletion))
	fmt.Fprintf(out, "Tasks: %d/%d done, %d overdue, %d days remaining\n",
		schedule.CompletedTasks(s), schedule.TotalTasks(s),
		len(schedule.OverdueTasks(s, now)), schedule.DaysRemaining(s, now))

	for _, p := range s.Phases {
		fmt.Fprintf(out, "\n[%s] Phase %d: %s (%s → %s)\n",
			checkmark(p.Completed), p.OrderIndex+1, p.Title,
			formatDate(p.StartDate), formatDate(p.EndDate))
		for _, t := range p.Tasks {
			fmt.Fprintf(out, "  [%s] %s  %s (%dm)  %s\n",
				checkmark(t.Completed), t.ID, formatDate(t.ScheduledDate),
				t.DurationMinutes, t.Title)
		}
	}

	if len(s.Adjustments) > 0 {
		fmt.Fprintf(out, "\nAdjustments: %d\n", len(s.Adjustments))
		for _, a := range s.Adjustments {
			fmt.Fprintf(out, "  %s  %s: %s\n", formatDate(a.CreatedAt), a.Reason, a.Description)
		}
	}
	return nil
}

func newGoalDeleteCmd() *cobra.Command {
	var (
		configPath string
		yes        bool
	)

	cmd := &cobra.Command{
		Use:   "delete GOAL_ID",
		Short: "Delete a goal and everything it owns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGoalDelete(cmd, configPath, args[0], yes)
		},
	}

	configFlag(cmd, &configPath)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation prompt")
	return cmd
}

func runGoalDelete(cmd *cobra.Command, configPath, goalID string, skipConfirm bool) error {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !skipConfirm {
		fmt.Fprintf(out, "This will delete goal %s with its schedule, tasks, and history.\n", goalID)
		fmt.Fprint(out, "Type \"yes\" to confirm: ")
		scanner := bufio.NewScanner(cmd.InOrStdin())
		if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "yes" {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if err := store.DeleteGoal(gormDB, goalID); err != nil {
		return err
	}
	fmt.Fprintf(out, "Deleted goal %s\n", goalID)
	return nil
}
