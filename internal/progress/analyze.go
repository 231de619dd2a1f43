// Package progress scores schedule completion against the time-elapsed
// expected trajectory and produces qualitative feedback.
package progress

import (
	"fmt"
	"time"

	"github.com/stridehq/stride/internal/models"
	"github.com/stridehq/stride/internal/schedule"
)

// Analysis is the read-only result of a progress check. It is computed on
// demand and never persisted.
type Analysis struct {
	AnalyzedAt            time.Time  `json:"analyzed_at"`
	Score                 float64    `json:"score"` // 0–100
	OnTrack               bool       `json:"on_track"`
	ActualProgress        float64    `json:"actual_progress"`
	ExpectedProgress      float64    `json:"expected_progress"`
	Strengths             []string   `json:"strengths"`
	Improvements          []string   `json:"improvements"`
	Recommendations       []string   `json:"recommendations"`
	ReestimatedCompletion *time.Time `json:"reestimated_completion,omitempty"`
}

// Score weights.
const (
	overduePenaltyWeight = 30.0
	aheadBonus           = 10.0
	onTrackTolerance     = 0.9 // on track while actual >= expected*0.9
)

// Analyze compares actual completion against the linear expected
// trajectory and produces a 0–100 score with narrative feedback.
func Analyze(goal *models.Goal, s *models.Schedule, now time.Time) *Analysis {
	actual := schedule.OverallProgress(s)
	expected := schedule.ExpectedProgress(s, now)
	total := schedule.TotalTasks(s)
	overdue := len(schedule.OverdueTasks(s, now))

	score := actual * 100
	if total > 0 {
		score -= float64(overdue) / float64(total) * overduePenaltyWeight
	}
	if actual > expected {
		score += aheadBonus
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	a := &Analysis{
		AnalyzedAt:       now,
		Score:            score,
		OnTrack:          overdue == 0 && actual >= expected*onTrackTolerance,
		ActualProgress:   actual,
		ExpectedProgress: expected,
	}

	a.Strengths = buildStrengths(s, actual, expected)
	a.Improvements, a.Recommendations = buildImprovements(goal, overdue, actual, expected)
	a.ReestimatedCompletion = reestimateCompletion(s, actual, now)
	return a
}

// buildStrengths always produces at least one entry.
func buildStrengths(s *models.Schedule, actual, expected float64) []string {
	var out []string
	completed := schedule.CompletedTasks(s)
	if completed > 0 {
		out = append(out, fmt.Sprintf("You've completed %d task(s) so far", completed))
	}
	if actual >= expected && actual > 0 {
		out = append(out, "You're keeping pace with your plan")
	}
	if p := schedule.CurrentPhase(s); p != nil && p.OrderIndex > 0 {
		out = append(out, fmt.Sprintf("You've advanced to the %q phase", p.Title))
	}
	if len(out) == 0 {
		out = append(out, "You're starting your journey — every completed task builds momentum")
	}
	return out
}

// buildImprovements pairs each applicable improvement with a
// recommendation; when none apply, two generic recommendations keep the
// recommendation list non-empty.
func buildImprovements(goal *models.Goal, overdue int, actual, expected float64) ([]string, []string) {
	var improvements, recommendations []string

	if overdue > 0 {
		improvements = append(improvements, fmt.Sprintf("%d task(s) are overdue", overdue))
		recommendations = append(recommendations, "Run an adjustment to move overdue tasks to upcoming days")
	}
	if actual < expected {
		improvements = append(improvements, "Progress is behind the expected pace")
		recommendations = append(recommendations, "Try shorter, more frequent sessions to rebuild the habit")
	}

	if len(improvements) == 0 {
		recommendations = append(recommendations,
			"Keep your current rhythm — consistency beats intensity",
			fmt.Sprintf("Review your %q goal weekly to stay connected to why you started", goal.Title),
		)
	}
	return improvements, recommendations
}

// reestimateCompletion linearly extrapolates the current pace. Only
// meaningful mid-flight: requires 0 < actual < 1.
func reestimateCompletion(s *models.Schedule, actual float64, now time.Time) *time.Time {
	if actual <= 0 || actual >= 1 {
		return nil
	}
	elapsedDays := now.Sub(s.GeneratedAt).Hours() / 24
	if elapsedDays <= 0 {
		return nil
	}
	estimatedTotalDays := elapsedDays / actual
	done := s.GeneratedAt.AddDate(0, 0, int(estimatedTotalDays))
	return &done
}
