package repositories

import (
	"fmt"

	"github.com/atlascrm/profiling-api/internal/domain/entities"
	"gorm.io/gorm"
)

// ErrAnswerInUse is returned when a delete would remove an answer that a
// segmentation rule still references.
var ErrAnswerInUse = fmt.Errorf("answer is referenced by a segmentation rule")

type QuestionRepository interface {
	GetQuestions(page, limit int, orderBy string) ([]entities.Question, int64, error)
	GetQuestion(id uint) (entities.Question, error)
	CreateQuestion(question *entities.Question) error
	UpdateQuestion(question *entities.Question) error
	DeleteQuestion(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db}
}

func (r *questionRepository) GetQuestions(page, limit int, orderBy string) ([]entities.Question, int64, error) {
	var questions []entities.Question
	var total int64

	if err := r.db.Model(&entities.Question{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit

	query := r.db.Model(&entities.Question{})
	if orderBy != "" {
		query = query.Order(orderBy)
	}

	result := query.Offset(offset).
		Limit(limit).
		Preload("Answers").
		Find(&questions)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return questions, total, nil
}

func (r *questionRepository) GetQuestion(id uint) (entities.Question, error) {
	var question entities.Question
	err := r.db.Preload("Answers", func(db *gorm.DB) *gorm.DB {
		return db.Order("answers.id")
	}).First(&question, id).Error
	if err != nil {
		return entities.Question{}, err
	}
	return question, nil
}

// CreateQuestion persists the question together with any inline answers.
func (r *questionRepository) CreateQuestion(question *entities.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) UpdateQuestion(question *entities.Question) error {
	result := r.db.Model(&entities.Question{ID: question.ID}).
		Update("name", question.Name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteQuestion removes a question and cascades to its answers. The delete
// is blocked while any of those answers is referenced by a segmentation
// rule, so rules never point at dangling answers.
func (r *questionRepository) DeleteQuestion(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var question entities.Question
		if err := tx.Preload("Answers").First(&question, id).Error; err != nil {
			return err
		}

		answerIDs := make([]uint, 0, len(question.Answers))
		for _, answer := range question.Answers {
			answerIDs = append(answerIDs, answer.ID)
		}

		if len(answerIDs) > 0 {
			referenced, err := segmentationRuleRefCount(tx, answerIDs)
			if err != nil {
				return err
			}
			if referenced > 0 {
				return ErrAnswerInUse
			}

			// Detach the answers from partner answer sets before removing them.
			if err := tx.Exec("DELETE FROM partner_answers WHERE answer_id IN ?", answerIDs).Error; err != nil {
				return err
			}
			if err := tx.Where("question_id = ?", id).Delete(&entities.Answer{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&question).Association("Questionnaires").Clear(); err != nil {
			return err
		}
		return tx.Delete(&question).Error
	})
}

// segmentationRuleRefCount counts references to the given answers from the
// answer_yes and answer_no sets of all segmentations.
func segmentationRuleRefCount(tx *gorm.DB, answerIDs []uint) (int64, error) {
	var yes, no int64
	if err := tx.Table("segmentation_answers_yes").Where("answer_id IN ?", answerIDs).Count(&yes).Error; err != nil {
		return 0, err
	}
	if err := tx.Table("segmentation_answers_no").Where("answer_id IN ?", answerIDs).Count(&no).Error; err != nil {
		return 0, err
	}
	return yes + no, nil
}
