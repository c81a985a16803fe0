package repositories

import (
	"fmt"

	"github.com/atlascrm/profiling-api/internal/domain/entities"
	"gorm.io/gorm"
)

type QuestionnaireRepository interface {
	GetQuestionnaires(page, limit int, orderBy string) ([]entities.Questionnaire, int64, error)
	GetQuestionnaire(id uint) (entities.Questionnaire, error)
	CreateQuestionnaire(questionnaire *entities.Questionnaire) error
	UpdateQuestionnaire(questionnaire *entities.Questionnaire) error
	DeleteQuestionnaire(id uint) error
	AddQuestions(id uint, questionIDs []uint) error
	RemoveQuestion(id uint, questionID uint) error
}

type questionnaireRepository struct {
	db *gorm.DB
}

func NewQuestionnaireRepository(db *gorm.DB) QuestionnaireRepository {
	return &questionnaireRepository{db}
}

func (r *questionnaireRepository) GetQuestionnaires(page, limit int, orderBy string) ([]entities.Questionnaire, int64, error) {
	var questionnaires []entities.Questionnaire
	var total int64

	if err := r.db.Model(&entities.Questionnaire{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit

	query := r.db.Model(&entities.Questionnaire{})
	if orderBy != "" {
		query = query.Order(orderBy)
	}

	result := query.Offset(offset).
		Limit(limit).
		Preload("Questions").
		Find(&questionnaires)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return questionnaires, total, nil
}

// GetQuestionnaire loads a questionnaire with its questions and each
// question's candidate answers.
func (r *questionnaireRepository) GetQuestionnaire(id uint) (entities.Questionnaire, error) {
	var questionnaire entities.Questionnaire

	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.id")
	}).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.id")
		}).
		First(&questionnaire, id).Error
	if err != nil {
		return entities.Questionnaire{}, err
	}

	return questionnaire, nil
}

func (r *questionnaireRepository) CreateQuestionnaire(questionnaire *entities.Questionnaire) error {
	return r.db.Create(questionnaire).Error
}

func (r *questionnaireRepository) UpdateQuestionnaire(questionnaire *entities.Questionnaire) error {
	result := r.db.Model(&entities.Questionnaire{ID: questionnaire.ID}).
		Updates(map[string]interface{}{
			"name":        questionnaire.Name,
			"description": questionnaire.Description,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *questionnaireRepository) DeleteQuestionnaire(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		questionnaire := entities.Questionnaire{ID: id}
		if err := tx.Model(&questionnaire).Association("Questions").Clear(); err != nil {
			return err
		}
		result := tx.Delete(&questionnaire)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// AddQuestions attaches existing questions to the questionnaire. Questions
// already attached are kept; unknown question ids fail the whole call.
func (r *questionnaireRepository) AddQuestions(id uint, questionIDs []uint) error {
	var questionnaire entities.Questionnaire
	if err := r.db.First(&questionnaire, id).Error; err != nil {
		return err
	}

	var questions []entities.Question
	if err := r.db.Where("id IN ?", questionIDs).Find(&questions).Error; err != nil {
		return err
	}
	if len(questions) != len(questionIDs) {
		return fmt.Errorf("some questions do not exist: requested %d, found %d", len(questionIDs), len(questions))
	}

	return r.db.Model(&questionnaire).Association("Questions").Append(&questions)
}

func (r *questionnaireRepository) RemoveQuestion(id uint, questionID uint) error {
	var questionnaire entities.Questionnaire
	if err := r.db.First(&questionnaire, id).Error; err != nil {
		return err
	}
	return r.db.Model(&questionnaire).Association("Questions").Delete(&entities.Question{ID: questionID})
}
