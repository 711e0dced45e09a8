package domain

import "time"

// Days of the week a meal can be planned for.
var ValidDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// IsValidDay reports whether day is one of the seven fixed labels.
func IsValidDay(day string) bool {
	for _, d := range ValidDays {
		if day == d {
			return true
		}
	}
	return false
}

// Meal Model. At most one meal per (user, day); the plan component enforces
// this on create.
type Meal struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	DayOfWeek string    `gorm:"size:20;not null" json:"day_of_week"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Ingredients []Ingredient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"ingredients"`
}
