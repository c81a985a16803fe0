package entities

import (
	"time"
)

// Partner is the customer/contact record being profiled and segmented.
type Partner struct {
	PartnerID string    `json:"partner_id" gorm:"primaryKey;column:partner_id;type:uuid"`
	Name      string    `json:"name" gorm:"column:name;not null"`
	Email     string    `json:"email" gorm:"column:email"`
	Phone     string    `json:"phone" gorm:"column:phone"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`

	// Relations
	Answers    []Answer   `json:"answers,omitempty" gorm:"many2many:partner_answers;foreignKey:PartnerID;joinForeignKey:PartnerID;References:ID;joinReferences:AnswerID"`
	Categories []Category `json:"categories,omitempty" gorm:"many2many:partner_categories;foreignKey:PartnerID;joinForeignKey:PartnerID;References:ID;joinReferences:CategoryID"`
}

// AnswerIDs returns the ids of the partner's selected answers.
func (p *Partner) AnswerIDs() []uint {
	ids := make([]uint, 0, len(p.Answers))
	for _, answer := range p.Answers {
		ids = append(ids, answer.ID)
	}
	return ids
}
