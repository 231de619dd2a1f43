package planning

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/stridehq/stride/internal/models"
	"github.com/stridehq/stride/internal/progress"
	"github.com/stridehq/stride/internal/schedule"
	"github.com/stridehq/stride/internal/store"
	"gorm.io/gorm"
)

// Service is the single entry point for planning operations. All
// dependencies are explicit: the database, the active strategy, and the
// clock. Callers must serialize concurrent mutations to the same goal's
// schedule; the service itself holds no locks and no global state.
type Service struct {
	DB       *gorm.DB
	Strategy Strategy

	// Now is the injected clock. Defaults to time.Now.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// GeneratePlan builds a schedule for the goal via the active strategy,
// replaces any existing schedule wholesale (carrying the adjustment log
// forward), and regenerates one milestone per phase.
func (s *Service) GeneratePlan(ctx context.Context, goalID string) (*models.Schedule, error) {
	goal, err := store.GetGoal(s.DB, goalID)
	if err != nil {
		return nil, err
	}
	profile, err := store.GetProfile(s.DB)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNoUserProfile
	}
	// Commitments are stored at local midnight, so the lower bound must
	// be day-truncated or a commitment dated today slips past the filter.
	now := s.now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	commitments, err := store.ListCommitments(s.DB, from, time.Time{})
	if err != nil {
		return nil, err
	}

	sched, err := s.Strategy.GenerateGoalPlan(ctx, goal, profile, commitments)
	if err != nil {
		return nil, err
	}

	if err := store.ReplaceSchedule(s.DB, goalID, sched); err != nil {
		return nil, err
	}
	if err := store.ReplaceMilestones(s.DB, goalID, milestonesForPhases(sched)); err != nil {
		return nil, err
	}
	if err := store.UpdateGoalProgress(s.DB, goalID, schedule.OverallProgress(sched)*100); err != nil {
		return nil, err
	}
	return sched, nil
}

// milestonesForPhases derives one generated milestone per phase, due at
// the phase's end date.
func milestonesForPhases(sched *models.Schedule) []models.Milestone {
	out := make([]models.Milestone, 0, len(sched.Phases))
	for i, p := range sched.Phases {
		id, err := models.NewID("mile")
		if err != nil {
			continue
		}
		out = append(out, models.Milestone{
			ID:          id,
			Title:       fmt.Sprintf("Complete %s", p.Title),
			TargetDate:  p.EndDate,
			IsGenerated: true,
			OrderIndex:  i,
		})
	}
	return out
}

// CompleteTask marks a task complete, restores the phase invariant, and
// persists the new completion state plus the goal's derived progress.
// Idempotent: completing an already-complete task changes nothing.
func (s *Service) CompleteTask(ctx context.Context, goalID, taskID string) error {
	return s.toggleTask(goalID, taskID, true)
}

// UncompleteTask reverts a task to pending. Idempotent like CompleteTask.
func (s *Service) UncompleteTask(ctx context.Context, goalID, taskID string) error {
	return s.toggleTask(goalID, taskID, false)
}

func (s *Service) toggleTask(goalID, taskID string, complete bool) error {
	sched, err := store.LoadSchedule(s.DB, goalID)
	if err != nil {
		return err
	}
	if sched == nil {
		return ErrNoExistingSchedule
	}

	var changed bool
	if complete {
		changed = schedule.MarkTaskComplete(sched, taskID, s.now())
	} else {
		changed = schedule.MarkTaskIncomplete(sched, taskID)
	}
	if !changed {
		return nil
	}

	pi, ti := schedule.FindTask(sched, taskID)
	if err := store.SaveTaskState(s.DB, &sched.Phases[pi].Tasks[ti], &sched.Phases[pi]); err != nil {
		return err
	}
	return store.UpdateGoalProgress(s.DB, goalID, schedule.OverallProgress(sched)*100)
}

// AdjustSchedule reschedules the goal's overdue tasks onto upcoming days
// via the active strategy and persists the moved dates plus the appended
// adjustment records. The second return value holds only the adjustments
// applied by this call.
func (s *Service) AdjustSchedule(ctx context.Context, goalID string) (*models.Schedule, []models.Adjustment, error) {
	goal, err := store.GetGoal(s.DB, goalID)
	if err != nil {
		return nil, nil, err
	}
	current, err := store.LoadSchedule(s.DB, goalID)
	if err != nil {
		return nil, nil, err
	}
	if current == nil {
		return nil, nil, ErrNoExistingSchedule
	}

	now := s.now()
	var completed []models.ScheduledTask
	for pi := range current.Phases {
		for _, t := range current.Phases[pi].Tasks {
			if t.Completed {
				completed = append(completed, t)
			}
		}
	}
	missed := schedule.OverdueTasks(current, now)

	next, err := s.Strategy.AdjustSchedule(ctx, current, goal, completed, missed)
	if err != nil {
		return nil, nil, err
	}

	if err := store.SaveTaskDates(s.DB, next); err != nil {
		return nil, nil, err
	}
	applied := next.Adjustments[len(current.Adjustments):]
	if err := store.AppendAdjustments(s.DB, next.ID, applied); err != nil {
		return nil, nil, err
	}
	return next, applied, nil
}

// AnalyzeProgress produces the read-only progress report for a goal.
func (s *Service) AnalyzeProgress(ctx context.Context, goalID string) (*progress.Analysis, error) {
	goal, err := store.GetGoal(s.DB, goalID)
	if err != nil {
		return nil, err
	}
	sched, err := store.LoadSchedule(s.DB, goalID)
	if err != nil {
		return nil, err
	}
	if sched == nil {
		return nil, ErrNoExistingSchedule
	}
	return s.Strategy.AnalyzeProgress(ctx, goal, sched)
}

// GetSuggestions returns coaching suggestions for a goal. Load failures
// degrade to an empty list, matching the strategy contract.
func (s *Service) GetSuggestions(ctx context.Context, goalID string) []string {
	goal, err := store.GetGoal(s.DB, goalID)
	if err != nil {
		log.Printf("planning: suggestions: load goal %s: %v", goalID, err)
		return nil
	}
	sched, err := store.LoadSchedule(s.DB, goalID)
	if err != nil {
		log.Printf("planning: suggestions: load schedule %s: %v", goalID, err)
		return nil
	}
	profile, err := store.GetProfile(s.DB)
	if err != nil {
		log.Printf("planning: suggestions: load profile: %v", err)
		return nil
	}
	return s.Strategy.GetSuggestions(ctx, goal, sched, profile)
}
