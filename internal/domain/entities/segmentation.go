package entities

import (
	"time"
)

// Segmentation lifecycle states.
const (
	SegmentationNotRunning = "not_running"
	SegmentationRunning    = "running"
	SegmentationDone       = "done"
)

// Segmentation is a rule that auto-classifies partners into a category based
// on their recorded answers: every answer in AnswersYes must be present and
// no answer in AnswersNo may be present.
type Segmentation struct {
	ID          uint      `json:"id" gorm:"primaryKey;column:id"`
	Name        string    `json:"name" gorm:"column:name;not null"`
	Description string    `json:"description" gorm:"column:description;type:text"`
	Exclusive   bool      `json:"exclusive" gorm:"column:exclusive"`
	Status      string    `json:"status" gorm:"column:status;default:'not_running'"`
	CategoryID  uint      `json:"category_id" gorm:"column:category_id;not null"`
	ParentID    *uint     `json:"parent_id" gorm:"column:parent_id"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`

	// Relations
	Category   *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Parent     *Segmentation  `json:"parent,omitempty" gorm:"foreignKey:ParentID"`
	Children   []Segmentation `json:"children,omitempty" gorm:"foreignKey:ParentID"`
	AnswersYes []Answer       `json:"answers_yes,omitempty" gorm:"many2many:segmentation_answers_yes"`
	AnswersNo  []Answer       `json:"answers_no,omitempty" gorm:"many2many:segmentation_answers_no"`
}

// MatchResult explains a single match decision.
type MatchResult struct {
	Matched    bool   `json:"matched"`
	MissingYes []uint `json:"missing_yes"`
	PresentNo  []uint `json:"present_no"`
}

// Matches reports whether a partner answer set satisfies the rule.
func (s *Segmentation) Matches(partnerAnswerIDs []uint) bool {
	return s.Evaluate(partnerAnswerIDs).Matched
}

// Evaluate applies the rule to a partner answer set and reports which
// required answers are missing and which excluded answers are present.
func (s *Segmentation) Evaluate(partnerAnswerIDs []uint) MatchResult {
	selected := make(map[uint]bool, len(partnerAnswerIDs))
	for _, id := range partnerAnswerIDs {
		selected[id] = true
	}

	result := MatchResult{
		MissingYes: []uint{},
		PresentNo:  []uint{},
	}
	for _, answer := range s.AnswersYes {
		if !selected[answer.ID] {
			result.MissingYes = append(result.MissingYes, answer.ID)
		}
	}
	for _, answer := range s.AnswersNo {
		if selected[answer.ID] {
			result.PresentNo = append(result.PresentNo, answer.ID)
		}
	}
	result.Matched = len(result.MissingYes) == 0 && len(result.PresentNo) == 0
	return result
}
