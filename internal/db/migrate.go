package db

import (
	"fmt"

	"github.com/stridehq/stride/internal/config"
	"github.com/stridehq/stride/internal/models"
	"gorm.io/gorm"
)

// AllModels returns the list of all GORM models for migration.
func AllModels() []interface{} {
	return []interface{}{
		&models.Goal{},
		&models.Milestone{},
		&models.Schedule{},
		&models.Phase{},
		&models.ScheduledTask{},
		&models.Adjustment{},
		&models.UserProfile{},
		&models.Commitment{},
	}
}

// AutoMigrate creates or updates all tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("db: auto-migrate: %w", err)
	}
	return nil
}

// SeedProfile writes or updates the single user profile row from
// configuration. Stride is single-user, so exactly one row exists.
func SeedProfile(db *gorm.DB, pc config.ProfileConfig) error {
	var existing models.UserProfile
	err := db.First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		profile := models.UserProfile{
			WeeklyHours: pc.WeeklyHours,
			Interests:   models.StringList(pc.Interests),
		}
		if err := db.Create(&profile).Error; err != nil {
			return fmt.Errorf("db: seed profile: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("db: load profile: %w", err)
	}

	existing.WeeklyHours = pc.WeeklyHours
	existing.Interests = models.StringList(pc.Interests)
	if err := db.Save(&existing).Error; err != nil {
		return fmt.Errorf("db: update profile: %w", err)
	}
	return nil
}
