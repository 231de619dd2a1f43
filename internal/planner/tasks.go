package planner

import (
	"time"

	"github.com/stridehq/stride/internal/catalog"
	"github.com/stridehq/stride/internal/models"
)

// TasksPerWeek derives the weekly task count from available hours.
// Deliberately generous: one short task per available hour rather than a
// literal hours-to-minutes conversion, floored at two so even a zero-hour
// budget yields a minimal cadence.
func TasksPerWeek(hoursPerWeek float64) int {
	n := int(hoursPerWeek / 1.0)
	if n < 2 {
		return 2
	}
	return n
}

// PlaceTasks emits a dated sequence of tasks for one phase, drawn
// cyclically from the blueprint pool. Weekend days are skipped; days
// occupied by an existing commitment are skipped one day at a time.
// Placement stops when the cursor passes the phase end, so the target
// count is not a guarantee.
func PlaceTasks(bp catalog.PhaseBlueprint, phaseStart, phaseEnd time.Time, hoursPerWeek float64, commitments []models.Commitment) ([]models.ScheduledTask, error) {
	if len(bp.TaskPool) == 0 {
		return nil, nil
	}

	busy := make(map[time.Time]bool, len(commitments))
	for _, c := range commitments {
		busy[dateOnly(c.StartDate)] = true
	}

	tasksPerWeek := TasksPerWeek(hoursPerWeek)
	phaseDays := int(phaseEnd.Sub(phaseStart).Hours() / 24)
	totalTasks := (phaseDays/7 + 1) * tasksPerWeek
	if totalTasks < 4 {
		totalTasks = 4
	}
	daysToAdd := 7 / tasksPerWeek
	if daysToAdd < 1 {
		daysToAdd = 1
	}

	tasks := make([]models.ScheduledTask, 0, totalTasks)
	cursor := dateOnly(phaseStart)
	for i := 0; i < totalTasks; i++ {
		cursor = nextFreeDay(cursor, busy)
		if cursor.After(phaseEnd) {
			break
		}

		tpl := bp.TaskPool[i%len(bp.TaskPool)]
		id, err := models.NewID("task")
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, models.ScheduledTask{
			ID:              id,
			Title:           tpl.Title,
			Description:     tpl.Description,
			ScheduledDate:   cursor,
			DurationMinutes: tpl.DurationMinutes,
			Resources:       models.StringList(tpl.Resources),
		})

		cursor = cursor.AddDate(0, 0, daysToAdd)
	}
	return tasks, nil
}

// nextFreeDay advances the cursor past weekends and committed days. A day
// freed by the conflict shift is itself re-checked for both rules.
func nextFreeDay(cursor time.Time, busy map[time.Time]bool) time.Time {
	for {
		for isWeekend(cursor) {
			cursor = cursor.AddDate(0, 0, 1)
		}
		if !busy[cursor] {
			return cursor
		}
		cursor = cursor.AddDate(0, 0, 1)
	}
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
