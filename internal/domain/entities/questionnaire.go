package entities

import (
	"time"
)

// Questionnaire is a named collection of questions used to profile a partner.
type Questionnaire struct {
	ID          uint      `json:"id" gorm:"primaryKey;column:id"`
	Name        string    `json:"name" gorm:"column:name;not null"`
	Description string    `json:"description" gorm:"column:description;type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`

	// Relations
	Questions []Question `json:"questions,omitempty" gorm:"many2many:questionnaire_questions"`
}

// QuestionIDs returns the ids of the questionnaire's questions in load order.
func (q *Questionnaire) QuestionIDs() []uint {
	ids := make([]uint, 0, len(q.Questions))
	for _, question := range q.Questions {
		ids = append(ids, question.ID)
	}
	return ids
}
