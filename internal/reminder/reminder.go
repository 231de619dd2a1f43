package reminder

import (
	"fmt"
	"sort"
	"time"

	"github.com/stridehq/stride/internal/models"
	"github.com/stridehq/stride/internal/schedule"
	"github.com/stridehq/stride/internal/store"
	"gorm.io/gorm"
)

// upcomingWindow bounds how far ahead the digest looks for upcoming tasks.
const upcomingWindow = 7 * 24 * time.Hour

// DigestTask is one task in a digest, annotated with its goal.
type DigestTask struct {
	GoalID    string
	GoalTitle string
	Task      models.ScheduledTask
}

// Digest groups pending tasks across all active goals into the three
// buckets a daily reminder cares about.
type Digest struct {
	Overdue  []DigestTask
	DueToday []DigestTask
	Upcoming []DigestTask // within the next seven days
}

// Empty reports whether the digest has nothing to say.
func (d *Digest) Empty() bool {
	return len(d.Overdue) == 0 && len(d.DueToday) == 0 && len(d.Upcoming) == 0
}

// BuildDigest collects pending tasks from every active goal's schedule
// and buckets them by urgency relative to now.
func BuildDigest(db *gorm.DB, now time.Time) (*Digest, error) {
	goals, err := store.ListGoals(db, store.ListFilters{ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("reminder: list goals: %w", err)
	}

	horizon := now.Add(upcomingWindow)
	d := &Digest{}
	for _, g := range goals {
		sched, err := store.LoadSchedule(db, g.ID)
		if err != nil {
			return nil, err
		}
		if sched == nil {
			continue
		}

		for _, t := range schedule.OverdueTasks(sched, now) {
			d.Overdue = append(d.Overdue, DigestTask{GoalID: g.ID, GoalTitle: g.Title, Task: t})
		}
		for _, t := range schedule.TasksForToday(sched, now) {
			if !t.Completed {
				d.DueToday = append(d.DueToday, DigestTask{GoalID: g.ID, GoalTitle: g.Title, Task: t})
			}
		}
		for _, t := range schedule.UpcomingTasks(sched, now, 0) {
			if t.ScheduledDate.Before(horizon) {
				d.Upcoming = append(d.Upcoming, DigestTask{GoalID: g.ID, GoalTitle: g.Title, Task: t})
			}
		}
	}

	sortByDate(d.Overdue)
	sortByDate(d.DueToday)
	sortByDate(d.Upcoming)
	return d, nil
}

func sortByDate(tasks []DigestTask) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Task.ScheduledDate.Before(tasks[j].Task.ScheduledDate)
	})
}
