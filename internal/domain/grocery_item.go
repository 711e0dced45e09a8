package domain

import "time"

// GroceryItem Model
type GroceryItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Quantity  string    `gorm:"size:100;not null" json:"quantity"`
	Purchased bool      `gorm:"default:false" json:"purchased"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
