package entities

import "time"

// Category is the classification target a segmentation assigns partners to.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey;column:id"`
	Name      string    `json:"name" gorm:"column:name;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}
