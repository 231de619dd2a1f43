package progress

import (
	"fmt"
	"time"

	"github.com/stridehq/stride/internal/models"
	"github.com/stridehq/stride/internal/schedule"
)

// maxSuggestions caps the suggestion list.
const maxSuggestions = 5

// Suggestions produces short, actionable suggestions from schedule state
// and the user's profile. It never fails: degenerate inputs yield a
// shorter (possibly empty) list.
func Suggestions(goal *models.Goal, s *models.Schedule, profile *models.UserProfile, now time.Time) []string {
	var out []string
	if s == nil {
		return out
	}

	if overdue := len(schedule.OverdueTasks(s, now)); overdue > 0 {
		out = append(out, fmt.Sprintf("You have %d overdue task(s) — adjust your schedule to catch up", overdue))
	}

	actual := schedule.OverallProgress(s)
	expected := schedule.ExpectedProgress(s, now)
	switch {
	case actual > expected+0.1:
		out = append(out, "You're ahead of schedule — consider raising the bar on your goal")
	case actual < expected-0.1:
		out = append(out, "Progress has slipped behind plan — pick the smallest task and do it today")
	}

	if p := schedule.CurrentPhase(s); p != nil {
		out = append(out, fmt.Sprintf("Current focus: %s — %s", p.Title, p.Description))
	}

	if today := schedule.TasksForToday(s, now); len(today) > 0 {
		out = append(out, fmt.Sprintf("%d task(s) on today's plan — start with %q", len(today), today[0].Title))
	}

	if profile != nil && len(profile.Interests) > 0 {
		out = append(out, fmt.Sprintf("Tie sessions to what you enjoy, like %s, to make them easier to start", profile.Interests[0]))
	}

	if days := schedule.DaysRemaining(s, now); days > 0 && len(out) < maxSuggestions {
		out = append(out, fmt.Sprintf("%d days to your estimated finish for %q", days, goal.Title))
	}

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
