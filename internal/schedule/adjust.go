package schedule

import (
	"fmt"
	"time"

	"github.com/stridehq/stride/internal/models"
)

// aheadMargin is how far actual progress must exceed expected progress
// before an ahead-of-schedule adjustment is recorded.
const aheadMargin = 0.2

// Adjust produces a new schedule with each missed task moved to the next
// free day. Missed tasks land on consecutive distinct future days starting
// tomorrow, in the order supplied. This is a greedy fan-out, not a
// capacity-aware reschedule. Tasks are never deleted or renamed; only dates change.
//
// The full new value is computed before returning: the input schedule is
// never mutated. Applied adjustments are appended to the new schedule's
// log and also returned.
func Adjust(s *models.Schedule, goal *models.Goal, completed, missed []models.ScheduledTask, now time.Time) (*models.Schedule, []models.Adjustment, error) {
	next := Clone(s)
	var applied []models.Adjustment

	if len(missed) > 0 {
		nextAvailable := dateOnly(now)
		moved := 0
		for _, m := range missed {
			// Every processed task advances the cursor, so N missed
			// tasks spread across N consecutive days.
			nextAvailable = nextAvailable.AddDate(0, 0, 1)
			pi, ti := FindTask(next, m.ID)
			if pi < 0 {
				continue
			}
			next.Phases[pi].Tasks[ti].ScheduledDate = nextAvailable
			moved++
		}

		id, err := models.NewID("adj")
		if err != nil {
			return nil, nil, err
		}
		adj := models.Adjustment{
			ID:            id,
			ScheduleID:    next.ID,
			Reason:        models.ReasonMissedTasks,
			Description:   fmt.Sprintf("Moved %d missed task(s) to upcoming days", moved),
			ChangeSummary: fmt.Sprintf("Rescheduled %d of %d missed tasks starting %s", moved, len(missed), dateOnly(now).AddDate(0, 0, 1).Format("2006-01-02")),
			CreatedAt:     now,
		}
		applied = append(applied, adj)
	}

	actual := OverallProgress(next)
	expected := ExpectedProgress(next, now)
	if actual > expected+aheadMargin {
		id, err := models.NewID("adj")
		if err != nil {
			return nil, nil, err
		}
		adj := models.Adjustment{
			ID:            id,
			ScheduleID:    next.ID,
			Reason:        models.ReasonAheadOfSchedule,
			Description:   "Progress is well ahead of the expected pace",
			ChangeSummary: fmt.Sprintf("Actual progress %.0f%% vs expected %.0f%%", actual*100, expected*100),
			CreatedAt:     now,
		}
		applied = append(applied, adj)
	}

	next.Adjustments = append(next.Adjustments, applied...)
	return next, applied, nil
}
