package planner

import (
	"context"
	"time"

	"github.com/stridehq/stride/internal/catalog"
	"github.com/stridehq/stride/internal/models"
	"github.com/stridehq/stride/internal/planning"
	"github.com/stridehq/stride/internal/progress"
	"github.com/stridehq/stride/internal/schedule"
)

// RuleBased is the deterministic planning strategy. It is a pure function
// of its inputs plus the injected clock: no shared mutable state, safe to
// use concurrently for different goals.
type RuleBased struct {
	// SelectTemplate picks the template for a goal. Defaults to the
	// static catalog.
	SelectTemplate func(category, title string) catalog.GoalTemplate

	// Now is the injected clock. Defaults to time.Now.
	Now func() time.Time
}

var _ planning.Strategy = (*RuleBased)(nil)

func (r *RuleBased) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r *RuleBased) selectTemplate(category, title string) catalog.GoalTemplate {
	if r.SelectTemplate != nil {
		return r.SelectTemplate(category, title)
	}
	return catalog.SelectTemplate(category, title)
}

// GenerateGoalPlan expands the goal's template into date-bounded phases
// and placed tasks. It never fails for a well-formed goal and profile:
// degenerate durations and hours are clamped, not rejected.
func (r *RuleBased) GenerateGoalPlan(ctx context.Context, goal *models.Goal, profile *models.UserProfile, commitments []models.Commitment) (*models.Schedule, error) {
	if profile == nil {
		return nil, planning.ErrNoUserProfile
	}

	now := r.now()
	tmpl := r.selectTemplate(goal.Category, goal.Title)
	totalWeeks := TotalWeeks(TotalDays(now, goal.TargetDate))
	planned := PlanPhases(tmpl, totalWeeks, now)

	scheduleID, err := models.NewID("sched")
	if err != nil {
		return nil, err
	}
	s := &models.Schedule{
		ID:          scheduleID,
		GoalID:      goal.ID,
		GeneratedAt: now,
		WeeklyHours: profile.WeeklyHours,
	}

	for i, pp := range planned {
		phaseID, err := models.NewID("phase")
		if err != nil {
			return nil, err
		}
		tasks, err := PlaceTasks(tmpl.Phases[i], pp.StartDate, pp.EndDate, profile.WeeklyHours, commitments)
		if err != nil {
			return nil, err
		}
		for ti := range tasks {
			tasks[ti].PhaseID = phaseID
		}
		s.Phases = append(s.Phases, models.Phase{
			ID:          phaseID,
			ScheduleID:  scheduleID,
			Title:       pp.Title,
			Description: pp.Description,
			StartDate:   pp.StartDate,
			EndDate:     pp.EndDate,
			OrderIndex:  i,
			Tasks:       tasks,
		})
	}

	s.EstimatedCompletion = planned[len(planned)-1].EndDate
	return s, nil
}

// AdjustSchedule applies the greedy missed-task fan-out.
func (r *RuleBased) AdjustSchedule(ctx context.Context, current *models.Schedule, goal *models.Goal, completed, missed []models.ScheduledTask) (*models.Schedule, error) {
	if current == nil {
		return nil, planning.ErrNoExistingSchedule
	}
	next, _, err := schedule.Adjust(current, goal, completed, missed, r.now())
	return next, err
}

// AnalyzeProgress scores completion against the expected trajectory.
func (r *RuleBased) AnalyzeProgress(ctx context.Context, goal *models.Goal, s *models.Schedule) (*progress.Analysis, error) {
	if s == nil {
		return nil, planning.ErrNoExistingSchedule
	}
	return progress.Analyze(goal, s, r.now()), nil
}

// GetSuggestions produces rule-based suggestions; never errors.
func (r *RuleBased) GetSuggestions(ctx context.Context, goal *models.Goal, s *models.Schedule, profile *models.UserProfile) []string {
	return progress.Suggestions(goal, s, profile, r.now())
}
