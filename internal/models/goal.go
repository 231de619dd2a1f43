package models

import "time"

// Goal is the core entity in Stride: a user-declared ambition that a
// schedule gets generated for.
type Goal struct {
	ID          string     `gorm:"primaryKey;size:32" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	Category    string     `gorm:"size:16;default:personal;index" json:"category"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
	Active      bool       `gorm:"default:true;index" json:"active"`
	Progress    float64    `gorm:"default:0" json:"progress"` // 0–100, recomputed from schedule state
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Schedule   *Schedule   `gorm:"foreignKey:GoalID" json:"schedule,omitempty"`
	Milestones []Milestone `gorm:"foreignKey:GoalID" json:"milestones,omitempty"`
}

// Goal categories.
const (
	CategoryCareer        = "career"
	CategoryHealth        = "health"
	CategoryEducation     = "education"
	CategoryFinance       = "finance"
	CategoryPersonal      = "personal"
	CategoryFitness       = "fitness"
	CategoryCreativity    = "creativity"
	CategoryRelationships = "relationships"
)

// Categories lists every valid goal category.
var Categories = []string{
	CategoryCareer,
	CategoryHealth,
	CategoryEducation,
	CategoryFinance,
	CategoryPersonal,
	CategoryFitness,
	CategoryCreativity,
	CategoryRelationships,
}

// ValidCategory reports whether c is a known goal category.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Milestone is a checkpoint toward a goal, independent of the schedule's
// tasks. Generated milestones are replaced when the plan is regenerated.
type Milestone struct {
	ID          string     `gorm:"primaryKey;size:32" json:"id"`
	GoalID      string     `gorm:"size:32;index;not null" json:"goal_id"`
	Title       string     `gorm:"not null" json:"title"`
	TargetDate  time.Time  `json:"target_date"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	IsGenerated bool       `gorm:"default:false" json:"is_generated"`
	OrderIndex  int        `gorm:"default:0" json:"order_index"`
	CreatedAt   time.Time  `json:"created_at"`
}
