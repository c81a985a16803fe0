package entities

import (
	"time"
)

// Question is a prompt with a fixed set of candidate answers.
type Question struct {
	ID        uint      `json:"id" gorm:"primaryKey;column:id"`
	Name      string    `json:"name" gorm:"column:name;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`

	// Relations
	Answers        []Answer        `json:"answers,omitempty" gorm:"foreignKey:QuestionID"`
	Questionnaires []Questionnaire `json:"questionnaires,omitempty" gorm:"many2many:questionnaire_questions"`
}
