package store

import (
	"errors"
	"fmt"

	"github.com/stridehq/stride/internal/models"
	"gorm.io/gorm"
)

// LoadSchedule returns the goal's schedule with phases, tasks, and
// adjustments in stable order, or nil when the goal has no schedule.
func LoadSchedule(db *gorm.DB, goalID string) (*models.Schedule, error) {
	var s models.Schedule
	err := db.
		Preload("Phases", func(tx *gorm.DB) *gorm.DB { return tx.Order("order_index ASC") }).
		Preload("Phases.Tasks", func(tx *gorm.DB) *gorm.DB { return tx.Order("scheduled_date ASC, id ASC") }).
		Preload("Adjustments", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at ASC, id ASC") }).
		Where("goal_id = ?", goalID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: load schedule for %s: %w", goalID, err)
	}
	return &s, nil
}

// ReplaceSchedule swaps the goal's schedule wholesale. Phases and tasks
// from any previous schedule are deleted; its adjustment log is carried
// forward onto the new schedule (the log is append-only and survives
// regeneration). The new schedule's own adjustments are appended after
// the carried-over ones.
func ReplaceSchedule(db *gorm.DB, goalID string, next *models.Schedule) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var prior []models.Adjustment
		var old models.Schedule
		err := tx.Where("goal_id = ?", goalID).First(&old).Error
		switch {
		case err == nil:
			if err := tx.Where("schedule_id = ?", old.ID).
				Order("created_at ASC, id ASC").Find(&prior).Error; err != nil {
				return fmt.Errorf("store: load prior adjustments: %w", err)
			}
			if err := deleteScheduleRows(tx, goalID); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// first schedule for this goal
		default:
			return fmt.Errorf("store: load schedule for %s: %w", goalID, err)
		}

		next.GoalID = goalID
		for i := range prior {
			prior[i].ScheduleID = next.ID
		}
		next.Adjustments = append(prior, next.Adjustments...)
		for i := range next.Adjustments {
			next.Adjustments[i].ScheduleID = next.ID
		}

		if err := tx.Create(next).Error; err != nil {
			return fmt.Errorf("store: create schedule: %w", err)
		}
		return nil
	})
}

// SaveTaskState persists one task's completion flag/timestamp and the
// owning phase's restored completion flag.
func SaveTaskState(db *gorm.DB, task *models.ScheduledTask, phase *models.Phase) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ScheduledTask{}).Where("id = ?", task.ID).
			Updates(map[string]interface{}{
				"completed":    task.Completed,
				"completed_at": task.CompletedAt,
			}).Error; err != nil {
			return fmt.Errorf("store: save task %s: %w", task.ID, err)
		}
		if err := tx.Model(&models.Phase{}).Where("id = ?", phase.ID).
			Update("completed", phase.Completed).Error; err != nil {
			return fmt.Errorf("store: save phase %s: %w", phase.ID, err)
		}
		return nil
	})
}

// AppendAdjustments writes new adjustment rows. Existing rows are never
// touched: the log is append-only.
func AppendAdjustments(db *gorm.DB, scheduleID string, adjustments []models.Adjustment) error {
	if len(adjustments) == 0 {
		return nil
	}
	for i := range adjustments {
		adjustments[i].ScheduleID = scheduleID
	}
	if err := db.Create(&adjustments).Error; err != nil {
		return fmt.Errorf("store: append adjustments: %w", err)
	}
	return nil
}

// SaveTaskDates persists rescheduled task dates after an adjustment.
func SaveTaskDates(db *gorm.DB, s *models.Schedule) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for pi := range s.Phases {
			for ti := range s.Phases[pi].Tasks {
				t := &s.Phases[pi].Tasks[ti]
				if err := tx.Model(&models.ScheduledTask{}).Where("id = ?", t.ID).
					Update("scheduled_date", t.ScheduledDate).Error; err != nil {
					return fmt.Errorf("store: save task date %s: %w", t.ID, err)
				}
			}
		}
		return nil
	})
}

// deleteScheduleRows removes the goal's schedule and its owned rows,
// except adjustments, which callers carry forward before calling this.
func deleteScheduleRows(tx *gorm.DB, goalID string) error {
	var old models.Schedule
	err := tx.Where("goal_id = ?", goalID).First(&old).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("store: load schedule for %s: %w", goalID, err)
	}

	var phaseIDs []string
	if err := tx.Model(&models.Phase{}).Where("schedule_id = ?", old.ID).
		Pluck("id", &phaseIDs).Error; err != nil {
		return fmt.Errorf("store: list phases: %w", err)
	}
	if len(phaseIDs) > 0 {
		if err := tx.Where("phase_id IN ?", phaseIDs).Delete(&models.ScheduledTask{}).Error; err != nil {
			return fmt.Errorf("store: delete tasks: %w", err)
		}
	}
	if err := tx.Where("schedule_id = ?", old.ID).Delete(&models.Phase{}).Error; err != nil {
		return fmt.Errorf("store: delete phases: %w", err)
	}
	if err := tx.Where("schedule_id = ?", old.ID).Delete(&models.Adjustment{}).Error; err != nil {
		return fmt.Errorf("store: delete adjustments: %w", err)
	}
	if err := tx.Delete(&old).Error; err != nil {
		return fmt.Errorf("store: delete schedule: %w", err)
	}
	return nil
}
