package domain

// Ingredient Model
type Ingredient struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	MealID   uint   `gorm:"not null;index" json:"meal_id"`
	Name     string `gorm:"size:200;not null" json:"name"`
	Quantity string `gorm:"size:100;not null" json:"quantity"` // Free text, unit-agnostic
}
