package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/stridehq/stride/internal/models"
	"gorm.io/gorm"
)

// GetProfile returns the single user profile, or nil when none is seeded.
func GetProfile(db *gorm.DB) (*models.UserProfile, error) {
	var p models.UserProfile
	err := db.First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: load profile: %w", err)
	}
	return &p, nil
}

// AddCommitment records a calendar day as unavailable for placement.
func AddCommitment(db *gorm.DB, title string, date time.Time) (*models.Commitment, error) {
	id, err := models.NewID("evt")
	if err != nil {
		return nil, err
	}
	c := models.Commitment{
		ID:        id,
		Title:     title,
		StartDate: date,
	}
	if err := db.Create(&c).Error; err != nil {
		return nil, fmt.Errorf("store: create commitment: %w", err)
	}
	return &c, nil
}

// ListCommitments returns commitments with dates in [from, to), ordered
// by date. A zero "to" means no upper bound.
func ListCommitments(db *gorm.DB, from, to time.Time) ([]models.Commitment, error) {
	q := db.Model(&models.Commitment{}).Order("start_date ASC")
	if !from.IsZero() {
		q = q.Where("start_date >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("start_date < ?", to)
	}
	var out []models.Commitment
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("store: list commitments: %w", err)
	}
	return out, nil
}
