package remote

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/stridehq/stride/internal/models"
	"github.com/stridehq/stride/internal/planning"
	"github.com/stridehq/stride/internal/progress"
	"github.com/stridehq/stride/internal/schedule"
)

// Strategy implements planning.Strategy against a chat-completions
// endpoint. Plan generation and suggestions go to the model; adjustment
// and analysis are derived operations with exact local semantics, so they
// stay local rather than paying a network round trip.
type Strategy struct {
	Client *Client

	// Now is the injected clock. Defaults to time.Now.
	Now func() time.Time
}

var _ planning.Strategy = (*Strategy)(nil)

func (s *Strategy) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// GenerateGoalPlan asks the model for a complete dated plan.
func (s *Strategy) GenerateGoalPlan(ctx context.Context, goal *models.Goal, profile *models.UserProfile, commitments []models.Commitment) (*models.Schedule, error) {
	if profile == nil {
		return nil, planning.ErrNoUserProfile
	}
	if !s.Client.IsConfigured() {
		return nil, planning.ErrAPIKeyMissing
	}

	now := s.now()
	content, err := s.Client.Chat(ctx, []Message{
		{Role: "system", Content: planSystemPrompt},
		{Role: "user", Content: buildPlanPrompt(goal, profile, commitments, now)},
	})
	if err != nil {
		return nil, err
	}
	return parsePlanResponse(content, goal, profile, now)
}

// AdjustSchedule applies the same greedy fan-out as the rule-based engine.
func (s *Strategy) AdjustSchedule(ctx context.Context, current *models.Schedule, goal *models.Goal, completed, missed []models.ScheduledTask) (*models.Schedule, error) {
	if current == nil {
		return nil, planning.ErrNoExistingSchedule
	}
	next, _, err := schedule.Adjust(current, goal, completed, missed, s.now())
	return next, err
}

// AnalyzeProgress scores completion against the expected trajectory.
func (s *Strategy) AnalyzeProgress(ctx context.Context, goal *models.Goal, sched *models.Schedule) (*progress.Analysis, error) {
	if sched == nil {
		return nil, planning.ErrNoExistingSchedule
	}
	return progress.Analyze(goal, sched, s.now()), nil
}

const suggestionsPrompt = `You are a goal coach. Reply with 3-5 short suggestions, one per line, no numbering or bullets.`

// GetSuggestions asks the model for coaching suggestions. Failures
// degrade to an empty list, never an error.
func (s *Strategy) GetSuggestions(ctx context.Context, goal *models.Goal, sched *models.Schedule, profile *models.UserProfile) []string {
	if sched == nil || !s.Client.IsConfigured() {
		return nil
	}

	now := s.now()
	var b strings.Builder
	b.WriteString("Goal: " + goal.Title + "\n")
	b.WriteString(progressSummary(sched, now))

	content, err := s.Client.Chat(ctx, []Message{
		{Role: "system", Content: suggestionsPrompt},
		{Role: "user", Content: b.String()},
	})
	if err != nil {
		log.Printf("remote: suggestions failed: %v", err)
		return nil
	}

	var out []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

// progressSummary condenses schedule state for the suggestions prompt.
func progressSummary(s *models.Schedule, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Progress: %d of %d tasks done, %d overdue\n",
		schedule.CompletedTasks(s), schedule.TotalTasks(s), len(schedule.OverdueTasks(s, now)))
	if p := schedule.CurrentPhase(s); p != nil {
		fmt.Fprintf(&b, "Current phase: %s\n", p.Title)
	}
	return b.String()
}
