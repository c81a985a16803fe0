package entities

import (
	"time"
)

// Answer is one selectable response value, scoped to a single question.
type Answer struct {
	ID         uint      `json:"id" gorm:"primaryKey;column:id"`
	Name       string    `json:"name" gorm:"column:name;not null"`
	QuestionID uint      `json:"question_id" gorm:"column:question_id;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at"`

	// Relations
	Question *Question `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
}
