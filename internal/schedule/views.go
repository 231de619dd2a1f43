package schedule

import (
	"sort"
	"time"

	"github.com/stridehq/stride/internal/models"
)

// Derived values are recomputed on read, never cached on the model.

// TotalTasks counts tasks across all phases.
func TotalTasks(s *models.Schedule) int {
	n := 0
	for i := range s.Phases {
		n += len(s.Phases[i].Tasks)
	}
	return n
}

// CompletedTasks counts completed tasks across all phases.
func CompletedTasks(s *models.Schedule) int {
	n := 0
	for pi := range s.Phases {
		for ti := range s.Phases[pi].Tasks {
			if s.Phases[pi].Tasks[ti].Completed {
				n++
			}
		}
	}
	return n
}

// OverallProgress is completed/total in [0, 1]; 0 when there are no tasks.
func OverallProgress(s *models.Schedule) float64 {
	total := TotalTasks(s)
	if total == 0 {
		return 0
	}
	return float64(CompletedTasks(s)) / float64(total)
}

// CurrentPhase returns the first incomplete phase, or nil when every
// phase is complete.
func CurrentPhase(s *models.Schedule) *models.Phase {
	for i := range s.Phases {
		if !s.Phases[i].Completed {
			return &s.Phases[i]
		}
	}
	return nil
}

// OverdueTasks returns incomplete tasks scheduled before now, ordered by
// scheduled date.
func OverdueTasks(s *models.Schedule, now time.Time) []models.ScheduledTask {
	var out []models.ScheduledTask
	for pi := range s.Phases {
		for _, t := range s.Phases[pi].Tasks {
			if t.IsOverdue(now) {
				out = append(out, t)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledDate.Before(out[j].ScheduledDate) })
	return out
}

// TasksForToday returns tasks scheduled on the same calendar day as now.
func TasksForToday(s *models.Schedule, now time.Time) []models.ScheduledTask {
	var out []models.ScheduledTask
	for pi := range s.Phases {
		for _, t := range s.Phases[pi].Tasks {
			if sameDay(t.ScheduledDate, now) {
				out = append(out, t)
			}
		}
	}
	return out
}

// UpcomingTasks returns up to limit incomplete tasks scheduled after
// today, ordered by scheduled date. A limit <= 0 means no cap.
func UpcomingTasks(s *models.Schedule, now time.Time, limit int) []models.ScheduledTask {
	endOfToday := dateOnly(now).AddDate(0, 0, 1)
	var out []models.ScheduledTask
	for pi := range s.Phases {
		for _, t := range s.Phases[pi].Tasks {
			if !t.Completed && !t.ScheduledDate.Before(endOfToday) {
				out = append(out, t)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledDate.Before(out[j].ScheduledDate) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// IsOnTrack reports whether the schedule has no overdue tasks.
func IsOnTrack(s *models.Schedule, now time.Time) bool {
	for pi := range s.Phases {
		for ti := range s.Phases[pi].Tasks {
			if s.Phases[pi].Tasks[ti].IsOverdue(now) {
				return false
			}
		}
	}
	return true
}

// DaysRemaining is the number of days from now until the estimated
// completion date, floored at zero.
func DaysRemaining(s *models.Schedule, now time.Time) int {
	days := daysBetween(dateOnly(now), dateOnly(s.EstimatedCompletion))
	if days < 0 {
		return 0
	}
	return days
}

// ExpectedProgress is the fraction of the schedule's total duration that
// has elapsed, clamped to [0, 1]. A non-positive total duration means the
// schedule should already be done, so expected progress is 1.
func ExpectedProgress(s *models.Schedule, now time.Time) float64 {
	total := s.EstimatedCompletion.Sub(s.GeneratedAt)
	if total <= 0 {
		return 1.0
	}
	elapsed := now.Sub(s.GeneratedAt)
	frac := float64(elapsed) / float64(total)
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}

// dateOnly truncates a time to midnight in its location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// sameDay reports whether two times fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// daysBetween counts whole days from a to b.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
