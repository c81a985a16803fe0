package repositories

import (
	"github.com/atlascrm/profiling-api/internal/domain/entities"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	GetAnswers(questionID uint, page, limit int) ([]entities.Answer, int64, error)
	GetAnswer(id uint) (entities.Answer, error)
	CreateAnswer(answer *entities.Answer) error
	UpdateAnswer(answer *entities.Answer) error
	DeleteAnswer(id uint) error
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db}
}

// GetAnswers lists answers, optionally scoped to one question when
// questionID is non-zero.
func (r *answerRepository) GetAnswers(questionID uint, page, limit int) ([]entities.Answer, int64, error) {
	var answers []entities.Answer
	var total int64

	query := r.db.Model(&entities.Answer{})
	if questionID > 0 {
		query = query.Where("question_id = ?", questionID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	result := query.Order("id").
		Offset(offset).
		Limit(limit).
		Find(&answers)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return answers, total, nil
}

func (r *answerRepository) GetAnswer(id uint) (entities.Answer, error) {
	var answer entities.Answer
	if err := r.db.Preload("Question").First(&answer, id).Error; err != nil {
		return entities.Answer{}, err
	}
	return answer, nil
}

func (r *answerRepository) CreateAnswer(answer *entities.Answer) error {
	// An answer belongs to exactly one question.
	if err := r.db.First(&entities.Question{}, answer.QuestionID).Error; err != nil {
		return err
	}
	return r.db.Create(answer).Error
}

func (r *answerRepository) UpdateAnswer(answer *entities.Answer) error {
	result := r.db.Model(&entities.Answer{ID: answer.ID}).
		Update("name", answer.Name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteAnswer removes an answer unless a segmentation rule references it.
// Partner selections of the answer are detached, not blocked.
func (r *answerRepository) DeleteAnswer(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var answer entities.Answer
		if err := tx.First(&answer, id).Error; err != nil {
			return err
		}

		referenced, err := segmentationRuleRefCount(tx, []uint{id})
		if err != nil {
			return err
		}
		if referenced > 0 {
			return ErrAnswerInUse
		}

		if err := tx.Exec("DELETE FROM partner_answers WHERE answer_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&answer).Error
	})
}
