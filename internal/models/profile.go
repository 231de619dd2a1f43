package models

import "time"

// UserProfile holds the single user's planning inputs. Stride is
// single-user: exactly one row exists, seeded from configuration.
type UserProfile struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	WeeklyHours float64    `gorm:"default:0" json:"weekly_hours"`
	Interests   StringList `gorm:"type:text" json:"interests,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Commitment is a pre-existing calendar entry. Planning only uses its date:
// a commitment on day D makes D unavailable for task placement.
type Commitment struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Title     string    `json:"title"`
	StartDate time.Time `gorm:"index" json:"start_date"`
	CreatedAt time.Time `json:"created_at"`
}
