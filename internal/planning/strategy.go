// Package planning defines the strategy contract shared by the rule-based
// engine and the remote-model engine, and the service that orchestrates them.
package planning

import (
	"context"

	"github.com/stridehq/stride/internal/models"
	"github.com/stridehq/stride/internal/progress"
)

// Strategy is the planning contract. Both the deterministic rule-based
// engine and the remote-model engine implement it; callers depend only on
// this interface, never on which concrete strategy is active.
type Strategy interface {
	// GenerateGoalPlan builds a complete schedule for a goal from the
	// user's weekly time budget and existing commitments.
	GenerateGoalPlan(ctx context.Context, goal *models.Goal, profile *models.UserProfile, commitments []models.Commitment) (*models.Schedule, error)

	// AdjustSchedule produces a new schedule with missed tasks moved to
	// upcoming free days, recording what changed in the adjustment log.
	AdjustSchedule(ctx context.Context, current *models.Schedule, goal *models.Goal, completed, missed []models.ScheduledTask) (*models.Schedule, error)

	// AnalyzeProgress scores actual progress against the expected
	// trajectory and produces qualitative feedback.
	AnalyzeProgress(ctx context.Context, goal *models.Goal, schedule *models.Schedule) (*progress.Analysis, error)

	// GetSuggestions returns short actionable suggestions. It never
	// errors: failures degrade to an empty list.
	GetSuggestions(ctx context.Context, goal *models.Goal, schedule *models.Schedule, profile *models.UserProfile) []string
}
