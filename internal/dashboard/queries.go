package dashboard

import (
	"time"

	"github.com/stridehq/stride/internal/models"
	"github.com/stridehq/stride/internal/schedule"
	"github.com/stridehq/stride/internal/store"
	"gorm.io/gorm"
)

// GoalRow holds goal data for the list view.
type GoalRow struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Category   string     `json:"category"`
	Active     bool       `json:"active"`
	Progress   float64    `json:"progress"`
	TargetDate *time.Time `json:"target_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// GoalList returns goals matching the optional category filter, newest
// first.
func GoalList(db *gorm.DB, category string, activeOnly bool) ([]GoalRow, error) {
	goals, err := store.ListGoals(db, store.ListFilters{Category: category, ActiveOnly: activeOnly})
	if err != nil {
		return nil, err
	}
	rows := make([]GoalRow, len(goals))
	for i, g := range goals {
		rows[i] = GoalRow{
			ID:         g.ID,
			Title:      g.Title,
			Category:   g.Category,
			Active:     g.Active,
			Progress:   g.Progress,
			TargetDate: g.TargetDate,
			CreatedAt:  g.CreatedAt,
		}
	}
	return rows, nil
}

// PhaseView holds a phase summary for the detail view.
type PhaseView struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Completed  bool      `json:"completed"`
	TaskCount  int       `json:"task_count"`
	DoneCount  int       `json:"done_count"`
	OrderIndex int       `json:"order_index"`
}

// MilestoneView holds a milestone for the detail view.
type MilestoneView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	TargetDate  time.Time `json:"target_date"`
	Completed   bool      `json:"completed"`
	IsGenerated bool      `json:"is_generated"`
}

// GoalDetail holds full goal data for the detail view.
type GoalDetail struct {
	GoalRow
	Description string `json:"description"`

	HasSchedule         bool            `json:"has_schedule"`
	GeneratedAt         *time.Time      `json:"generated_at,omitempty"`
	EstimatedCompletion *time.Time      `json:"estimated_completion,omitempty"`
	WeeklyHours         float64         `json:"weekly_hours,omitempty"`
	TotalTasks          int             `json:"total_tasks"`
	CompletedTasks      int             `json:"completed_tasks"`
	OverdueTasks        int             `json:"overdue_tasks"`
	DaysRemaining       int             `json:"days_remaining"`
	OnTrack             bool            `json:"on_track"`
	CurrentPhase        string          `json:"current_phase,omitempty"`
	Phases              []PhaseView     `json:"phases"`
	Milestones          []MilestoneView `json:"milestones"`
	Adjustments         int             `json:"adjustments"`
}

// GetGoalDetail returns full goal detail with recomputed schedule views.
func GetGoalDetail(db *gorm.DB, id string, now time.Time) (*GoalDetail, error) {
	goal, err := store.GetGoal(db, id)
	if err != nil {
		return nil, err
	}

	detail := &GoalDetail{
		GoalRow: GoalRow{
			ID:         goal.ID,
			Title:      goal.Title,
			Category:   goal.Category,
			Active:     goal.Active,
			Progress:   goal.Progress,
			TargetDate: goal.TargetDate,
			CreatedAt:  goal.CreatedAt,
		},
		Description: goal.Description,
		Phases:      []PhaseView{},
		Milestones:  []MilestoneView{},
	}

	for _, m := range goal.Milestones {
		detail.Milestones = append(detail.Milestones, MilestoneView{
			ID:          m.ID,
			Title:       m.Title,
			TargetDate:  m.TargetDate,
			Completed:   m.Completed,
			IsGenerated: m.IsGenerated,
		})
	}

	s := goal.Schedule
	if s == nil {
		return detail, nil
	}

	detail.HasSchedule = true
	detail.GeneratedAt = &s.GeneratedAt
	detail.EstimatedCompletion = &s.EstimatedCompletion
	detail.WeeklyHours = s.WeeklyHours
	detail.TotalTasks = schedule.TotalTasks(s)
	detail.CompletedTasks = schedule.CompletedTasks(s)
	detail.OverdueTasks = len(schedule.OverdueTasks(s, now))
	detail.DaysRemaining = schedule.DaysRemaining(s, now)
	detail.OnTrack = schedule.IsOnTrack(s, now)
	detail.Adjustments = len(s.Adjustments)
	if p := schedule.CurrentPhase(s); p != nil {
		detail.CurrentPhase = p.Title
	}

	for _, p := range s.Phases {
		done := 0
		for _, t := range p.Tasks {
			if t.Completed {
				done++
			}
		}
		detail.Phases = append(detail.Phases, PhaseView{
			ID:         p.ID,
			Title:      p.Title,
			StartDate:  p.StartDate,
			EndDate:    p.EndDate,
			Completed:  p.Completed,
			TaskCount:  len(p.Tasks),
			DoneCount:  done,
			OrderIndex: p.OrderIndex,
		})
	}

	return detail, nil
}

// TaskView holds a task for the today/upcoming/overdue views.
type TaskView struct {
	ID              string     `json:"id"`
	GoalID          string     `json:"goal_id"`
	GoalTitle       string     `json:"goal_title"`
	Title           string     `json:"title"`
	ScheduledDate   time.Time  `json:"scheduled_date"`
	DurationMinutes int        `json:"duration_minutes"`
	Completed       bool       `json:"completed"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// taskPick selects tasks from one goal's schedule.
type taskPick func(s *models.Schedule) []models.ScheduledTask

// collectTasks runs pick over every active goal's schedule.
func collectTasks(db *gorm.DB, pick taskPick) ([]TaskView, error) {
	goals, err := store.ListGoals(db, store.ListFilters{ActiveOnly: true})
	if err != nil {
		return nil, err
	}

	out := []TaskView{}
	for _, g := range goals {
		s, err := store.LoadSchedule(db, g.ID)
		if err != nil {
			return nil, err
		}
		if s == nil {
			continue
		}
		for _, t := range pick(s) {
			out = append(out, TaskView{
				ID:              t.ID,
				GoalID:          g.ID,
				GoalTitle:       g.Title,
				Title:           t.Title,
				ScheduledDate:   t.ScheduledDate,
				DurationMinutes: t.DurationMinutes,
				Completed:       t.Completed,
				CompletedAt:     t.CompletedAt,
			})
		}
	}
	return out, nil
}

// TodayTasks returns every active goal's tasks scheduled today.
func TodayTasks(db *gorm.DB, now time.Time) ([]TaskView, error) {
	return collectTasks(db, func(s *models.Schedule) []models.ScheduledTask {
		return schedule.TasksForToday(s, now)
	})
}

// UpcomingTasks returns up to limit upcoming tasks per active goal.
func UpcomingTasks(db *gorm.DB, now time.Time, limit int) ([]TaskView, error) {
	return collectTasks(db, func(s *models.Schedule) []models.ScheduledTask {
		return schedule.UpcomingTasks(s, now, limit)
	})
}

// OverdueTasks returns every active goal's overdue tasks.
func OverdueTasks(db *gorm.DB, now time.Time) ([]TaskView, error) {
	return collectTasks(db, func(s *models.Schedule) []models.ScheduledTask {
		return schedule.OverdueTasks(s, now)
	})
}
