// Package schedule holds the mutable-by-replacement schedule aggregate:
// task completion transitions, derived read-only views, and the
// missed-task adjustment engine.
package schedule

import (
	"time"

	"github.com/stridehq/stride/internal/models"
)

// FindTask locates a task by ID across all phases. Returns the owning
// phase index and task index, or (-1, -1) when not found.
func FindTask(s *models.Schedule, taskID string) (int, int) {
	for pi := range s.Phases {
		for ti := range s.Phases[pi].Tasks {
			if s.Phases[pi].Tasks[ti].ID == taskID {
				return pi, ti
			}
		}
	}
	return -1, -1
}

// MarkTaskComplete sets the completion flag and timestamp on a task and
// restores the owning phase's completion invariant. A no-op when the task
// is not found or already complete. Returns whether anything changed.
func MarkTaskComplete(s *models.Schedule, taskID string, now time.Time) bool {
	pi, ti := FindTask(s, taskID)
	if pi < 0 {
		return false
	}
	task := &s.Phases[pi].Tasks[ti]
	if task.Completed {
		return false
	}
	task.Completed = true
	completedAt := now
	task.CompletedAt = &completedAt
	restorePhaseCompletion(&s.Phases[pi])
	return true
}

// MarkTaskIncomplete clears the completion flag and timestamp on a task
// and restores the owning phase's completion invariant. A no-op when the
// task is not found or already incomplete. Returns whether anything changed.
func MarkTaskIncomplete(s *models.Schedule, taskID string) bool {
	pi, ti := FindTask(s, taskID)
	if pi < 0 {
		return false
	}
	task := &s.Phases[pi].Tasks[ti]
	if !task.Completed {
		return false
	}
	task.Completed = false
	task.CompletedAt = nil
	restorePhaseCompletion(&s.Phases[pi])
	return true
}

// restorePhaseCompletion re-derives Completed as "all tasks completed".
// A phase with no tasks is not considered complete.
func restorePhaseCompletion(p *models.Phase) {
	if len(p.Tasks) == 0 {
		p.Completed = false
		return
	}
	for i := range p.Tasks {
		if !p.Tasks[i].Completed {
			p.Completed = false
			return
		}
	}
	p.Completed = true
}

// Clone deep-copies a schedule so adjustment can compute the full new
// value before anything observable changes.
func Clone(s *models.Schedule) *models.Schedule {
	out := *s
	out.Phases = make([]models.Phase, len(s.Phases))
	for pi, p := range s.Phases {
		np := p
		np.Tasks = make([]models.ScheduledTask, len(p.Tasks))
		for ti, t := range p.Tasks {
			nt := t
			if t.CompletedAt != nil {
				at := *t.CompletedAt
				nt.CompletedAt = &at
			}
			if t.Resources != nil {
				nt.Resources = append(models.StringList(nil), t.Resources...)
			}
			np.Tasks[ti] = nt
		}
		out.Phases[pi] = np
	}
	out.Adjustments = append([]models.Adjustment(nil), s.Adjustments...)
	return &out
}
