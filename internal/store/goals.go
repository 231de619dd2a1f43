// Package store persists goals, schedules, and planning inputs through
// GORM. Schedules are replaced wholesale; the adjustment log is carried
// forward append-only; goal deletion cascades explicitly.
package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/stridehq/stride/internal/models"
	"gorm.io/gorm"
)

// ErrGoalNotFound is returned when a goal ID does not exist.
var ErrGoalNotFound = errors.New("store: goal not found")

// CreateOpts holds parameters for creating a new goal.
type CreateOpts struct {
	Title       string
	Description string
	Category    string
	TargetDate  *time.Time
}

// CreateGoal creates a new goal with an auto-generated ID.
func CreateGoal(db *gorm.DB, opts CreateOpts) (*models.Goal, error) {
	if opts.Title == "" {
		return nil, fmt.Errorf("store: title is required")
	}
	if opts.Category == "" {
		opts.Category = models.CategoryPersonal
	}
	if !models.ValidCategory(opts.Category) {
		return nil, fmt.Errorf("store: unknown category %q", opts.Category)
	}

	id, err := models.NewID("goal")
	if err != nil {
		return nil, err
	}
	goal := models.Goal{
		ID:          id,
		Title:       opts.Title,
		Description: opts.Description,
		Category:    opts.Category,
		TargetDate:  opts.TargetDate,
		Active:      true,
	}
	if err := db.Create(&goal).Error; err != nil {
		return nil, fmt.Errorf("store: create goal: %w", err)
	}
	return &goal, nil
}

// GetGoal loads a goal with its schedule (phases, tasks, adjustments,
// all in stable order) and milestones.
func GetGoal(db *gorm.DB, id string) (*models.Goal, error) {
	var goal models.Goal
	err := db.
		Preload("Schedule.Phases", func(tx *gorm.DB) *gorm.DB { return tx.Order("order_index ASC") }).
		Preload("Schedule.Phases.Tasks", func(tx *gorm.DB) *gorm.DB { return tx.Order("scheduled_date ASC, id ASC") }).
		Preload("Schedule.Adjustments", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at ASC, id ASC") }).
		Preload("Milestones", func(tx *gorm.DB) *gorm.DB { return tx.Order("order_index ASC") }).
		Where("id = ?", id).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: load goal %s: %w", id, err)
	}
	return &goal, nil
}

// ListFilters holds optional filters for listing goals.
type ListFilters struct {
	Category   string
	ActiveOnly bool
}

// ListGoals returns goals matching the filters, newest first.
func ListGoals(db *gorm.DB, filters ListFilters) ([]models.Goal, error) {
	q := db.Model(&models.Goal{}).Order("created_at DESC")
	if filters.Category != "" {
		q = q.Where("category = ?", filters.Category)
	}
	if filters.ActiveOnly {
		q = q.Where("active = ?", true)
	}
	var goals []models.Goal
	if err := q.Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("store: list goals: %w", err)
	}
	return goals, nil
}

// UpdateGoalProgress stores the recomputed progress percentage (0–100).
func UpdateGoalProgress(db *gorm.DB, goalID string, progress float64) error {
	if err := db.Model(&models.Goal{}).Where("id = ?", goalID).
		Update("progress", progress).Error; err != nil {
		return fmt.Errorf("store: update goal progress: %w", err)
	}
	return nil
}

// DeleteGoal removes a goal and everything owned by it. The cascade is
// explicit at this boundary: milestones, schedule, phases, tasks, and
// adjustments go by foreign key, then the goal row.
func DeleteGoal(db *gorm.DB, goalID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var goal models.Goal
		if err := tx.Where("id = ?", goalID).First(&goal).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGoalNotFound
			}
			return fmt.Errorf("store: load goal %s: %w", goalID, err)
		}

		if err := deleteScheduleRows(tx, goalID); err != nil {
			return err
		}
		if err := tx.Where("goal_id = ?", goalID).Delete(&models.Milestone{}).Error; err != nil {
			return fmt.Errorf("store: delete milestones: %w", err)
		}
		if err := tx.Delete(&goal).Error; err != nil {
			return fmt.Errorf("store: delete goal: %w", err)
		}
		return nil
	})
}

// ReplaceMilestones swaps the generated milestones for a goal, leaving
// user-created milestones untouched.
func ReplaceMilestones(db *gorm.DB, goalID string, generated []models.Milestone) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("goal_id = ? AND is_generated = ?", goalID, true).
			Delete(&models.Milestone{}).Error; err != nil {
			return fmt.Errorf("store: delete generated milestones: %w", err)
		}
		for i := range generated {
			generated[i].GoalID = goalID
			generated[i].IsGenerated = true
		}
		if len(generated) == 0 {
			return nil
		}
		if err := tx.Create(&generated).Error; err != nil {
			return fmt.Errorf("store: create milestones: %w", err)
		}
		return nil
	})
}
