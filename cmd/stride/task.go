package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/stridehq/stride/internal/models"
	"github.com/stridehq/stride/internal/schedule"
	"github.com/stridehq/stride/internal/store"
	"gorm.io/gorm"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Task completion and listing commands",
	}

	cmd.AddCommand(newTaskDoneCmd())
	cmd.AddCommand(newTaskUndoCmd())
	cmd.AddCommand(newTaskTodayCmd())
	cmd.AddCommand(newTaskUpcomingCmd())
	cmd.AddCommand(newTaskOverdueCmd())
	return cmd
}

func newTaskDoneCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "done GOAL_ID TASK_ID",
		Short: "Mark a task complete",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTaskToggle(cmd, configPath, args[0], args[1], true)
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}

func newTaskUndoCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "undo GOAL_ID TASK_ID",
		Short: "Revert a task to pending",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTaskToggle(cmd, configPath, args[0], args[1], false)
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}

func runTaskToggle(cmd *cobra.Command, configPath, goalID, taskID string, complete bool) error {
	svc, err := serviceFromConfig(configPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if complete {
		err = svc.CompleteTask(ctx, goalID, taskID)
	} else {
		err = svc.UncompleteTask(ctx, goalID, taskID)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if complete {
		fmt.Fprintf(out, "Marked task %s complete\n", taskID)
	} else {
		fmt.Fprintf(out, "Reverted task %s to pending\n", taskID)
	}
	return nil
}

// goalTask pairs a task with its goal for cross-goal listings.
type goalTask struct {
	goal models.Goal
	task models.ScheduledTask
}

// collectTasks runs pick over every active goal's schedule.
func collectTasks(gormDB *gorm.DB, pick func(*models.Schedule) []models.ScheduledTask) ([]goalTask, error) {
	goals, err := store.ListGoals(gormDB, store.ListFilters{ActiveOnly: true})
	if err != nil {
		return nil, err
	}

	var out []goalTask
	for _, g := range goals {
		s, err := store.LoadSchedule(gormDB, g.ID)
		if err != nil {
			return nil, err
		}
		if s == nil {
			continue
		}
		for _, t := range pick(s) {
			out = append(out, goalTask{goal: g, task: t})
		}
	}
	return out, nil
}

func printTaskTable(cmd *cobra.Command, tasks []goalTask, emptyMsg string) error {
	out := cmd.OutOrStdout()
	if len(tasks) == 0 {
		fmt.Fprintln(out, emptyMsg)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, " \tTASK\tDATE\tDUR\tTITLE\tGOAL")
	for _, gt := range tasks {
		fmt.Fprintf(w, "[%s]\t%s\t%s\t%dm\t%s\t%s\n",
			checkmark(gt.task.Completed), gt.task.ID,
			formatDate(gt.task.ScheduledDate), gt.task.DurationMinutes,
			gt.task.Title, gt.goal.Title)
	}
	return w.Flush()
}

func newTaskTodayCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "List tasks scheduled today across all active goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, gormDB, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}
			now := time.Now()
			tasks, err := collectTasks(gormDB, func(s *models.Schedule) []models.ScheduledTask {
				return schedule.TasksForToday(s, now)
			})
			if err != nil {
				return err
			}
			return printTaskTable(cmd, tasks, "Nothing scheduled today.")
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}

func newTaskUpcomingCmd() *cobra.Command {
	var (
		configPath string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List upcoming tasks across all active goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, gormDB, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}
			now := time.Now()
			tasks, err := collectTasks(gormDB, func(s *models.Schedule) []models.ScheduledTask {
				return schedule.UpcomingTasks(s, now, limit)
			})
			if err != nil {
				return err
			}
			return printTaskTable(cmd, tasks, "No upcoming tasks.")
		},
	}

	configFlag(cmd, &configPath)
	cmd.Flags().IntVar(&limit, "limit", 10, "max upcoming tasks per goal")
	return cmd
}

func newTaskOverdueCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "overdue",
		Short: "List overdue tasks across all active goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, gormDB, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}
			now := time.Now()
			tasks, err := collectTasks(gormDB, func(s *models.Schedule) []models.ScheduledTask {
				return schedule.OverdueTasks(s, now)
			})
			if err != nil {
				return err
			}
			return printTaskTable(cmd, tasks, "Nothing overdue. Nice.")
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}
