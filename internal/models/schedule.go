package models

import "time"

// Schedule is the generated plan for a goal: an ordered set of phases plus
// an append-only adjustment log. A goal has at most one schedule at a time;
// replacing a schedule replaces it wholesale except for the adjustment log.
type Schedule struct {
	ID                  string    `gorm:"primaryKey;size:32" json:"id"`
	GoalID              string    `gorm:"size:32;uniqueIndex;not null" json:"goal_id"`
	GeneratedAt         time.Time `json:"generated_at"`
	EstimatedCompletion time.Time `json:"estimated_completion"`
	WeeklyHours         float64   `json:"weekly_hours"`

	Phases      []Phase      `gorm:"foreignKey:ScheduleID" json:"phases"`
	Adjustments []Adjustment `gorm:"foreignKey:ScheduleID" json:"adjustments,omitempty"`
}

// Phase is a date-bounded stage of a schedule. Completed is true iff every
// task in the phase is completed; it is restored after every task mutation.
type Phase struct {
	ID          string    `gorm:"primaryKey;size:32" json:"id"`
	ScheduleID  string    `gorm:"size:32;index;not null" json:"schedule_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	OrderIndex  int       `gorm:"default:0" json:"order_index"`
	Completed   bool      `gorm:"default:false" json:"completed"`

	Tasks []ScheduledTask `gorm:"foreignKey:PhaseID" json:"tasks"`
}

// ScheduledTask is a single dated, time-boxed activity within a phase.
type ScheduledTask struct {
	ID              string     `gorm:"primaryKey;size:32" json:"id"`
	PhaseID         string     `gorm:"size:32;index;not null" json:"phase_id"`
	Title           string     `gorm:"not null" json:"title"`
	Description     string     `gorm:"type:text" json:"description,omitempty"`
	ScheduledDate   time.Time  `gorm:"index" json:"scheduled_date"`
	DurationMinutes int        `gorm:"default:30" json:"duration_minutes"`
	Completed       bool       `gorm:"default:false;index" json:"completed"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	Resources       StringList `gorm:"type:text" json:"resources,omitempty"`
}

// IsOverdue reports whether the task is incomplete and scheduled before now.
func (t *ScheduledTask) IsOverdue(now time.Time) bool {
	return !t.Completed && t.ScheduledDate.Before(now)
}

// Adjustment reasons.
const (
	ReasonMissedTasks     = "missed_tasks"
	ReasonAheadOfSchedule = "ahead_of_schedule"
	ReasonUserRequested   = "user_requested"
	ReasonTimeConflict    = "time_conflict"
	ReasonGoalChanged     = "goal_changed"
)

// Adjustment is an audit-log entry describing a re-plan event and its
// cause. Rows are append-only: never mutated or deleted once written.
type Adjustment struct {
	ID            string    `gorm:"primaryKey;size:32" json:"id"`
	ScheduleID    string    `gorm:"size:32;index;not null" json:"schedule_id"`
	Reason        string    `gorm:"size:24;not null" json:"reason"`
	Description   string    `gorm:"type:text" json:"description"`
	ChangeSummary string    `gorm:"type:text" json:"change_summary"`
	CreatedAt     time.Time `json:"created_at"`
}
