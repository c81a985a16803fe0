package usecases

import (
	"fmt"
	"time"

	"github.com/atlascrm/profiling-api/internal/domain/entities"
	"github.com/atlascrm/profiling-api/internal/domain/repositories"
	gocache "github.com/patrickmn/go-cache"
)

type QuestionnaireUseCase interface {
	GetQuestionnaires(page, limit int, orderBy string) ([]entities.Questionnaire, int64, error)
	GetQuestionnaire(id uint) (entities.Questionnaire, error)
	CreateQuestionnaire(questionnaire *entities.Questionnaire) error
	UpdateQuestionnaire(questionnaire *entities.Questionnaire) error
	DeleteQuestionnaire(id uint) error
	AddQuestions(id uint, questionIDs []uint) error
	RemoveQuestion(id uint, questionID uint) error
}

type questionnaireUseCase struct {
	questionnaireRepo repositories.QuestionnaireRepository
	cache             *gocache.Cache
}

func NewQuestionnaireUseCase(questionnaireRepo repositories.QuestionnaireRepository, cache *gocache.Cache) QuestionnaireUseCase {
	return &questionnaireUseCase{questionnaireRepo, cache}
}

func questionnaireCacheKey(id uint) string {
	return fmt.Sprintf("questionnaire:%d", id)
}

func (uc *questionnaireUseCase) GetQuestionnaires(page, limit int, orderBy string) ([]entities.Questionnaire, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if orderBy == "" {
		orderBy = "created_at desc"
	}
	return uc.questionnaireRepo.GetQuestionnaires(page, limit, orderBy)
}

// GetQuestionnaire serves the full questionnaire (questions and candidate
// answers) from cache when possible; questionnaires change rarely and this
// read backs every open-questionnaire call.
func (uc *questionnaireUseCase) GetQuestionnaire(id uint) (entities.Questionnaire, error) {
	if cached, found := uc.cache.Get(questionnaireCacheKey(id)); found {
		if questionnaire, ok := cached.(entities.Questionnaire); ok {
			return questionnaire, nil
		}
	}

	questionnaire, err := uc.questionnaireRepo.GetQuestionnaire(id)
	if err != nil {
		return entities.Questionnaire{}, err
	}

	uc.cache.Set(questionnaireCacheKey(id), questionnaire, 5*time.Minute)
	return questionnaire, nil
}

func (uc *questionnaireUseCase) CreateQuestionnaire(questionnaire *entities.Questionnaire) error {
	if questionnaire.Name == "" {
		return fmt.Errorf("questionnaire name is required")
	}
	return uc.questionnaireRepo.CreateQuestionnaire(questionnaire)
}

func (uc *questionnaireUseCase) UpdateQuestionnaire(questionnaire *entities.Questionnaire) error {
	if questionnaire.Name == "" {
		return fmt.Errorf("questionnaire name is required")
	}
	if err := uc.questionnaireRepo.UpdateQuestionnaire(questionnaire); err != nil {
		return err
	}
	uc.cache.Delete(questionnaireCacheKey(questionnaire.ID))
	return nil
}

func (uc *questionnaireUseCase) DeleteQuestionnaire(id uint) error {
	if err := uc.questionnaireRepo.DeleteQuestionnaire(id); err != nil {
		return err
	}
	uc.cache.Delete(questionnaireCacheKey(id))
	return nil
}

func (uc *questionnaireUseCase) AddQuestions(id uint, questionIDs []uint) error {
	if len(questionIDs) == 0 {
		return fmt.Errorf("no question ids given")
	}
	if err := uc.questionnaireRepo.AddQuestions(id, questionIDs); err != nil {
		return err
	}
	uc.cache.Delete(questionnaireCacheKey(id))
	return nil
}

func (uc *questionnaireUseCase) RemoveQuestion(id uint, questionID uint) error {
	if err := uc.questionnaireRepo.RemoveQuestion(id, questionID); err != nil {
		return err
	}
	uc.cache.Delete(questionnaireCacheKey(id))
	return nil
}
