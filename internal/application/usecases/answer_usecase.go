package usecases

import (
	"fmt"

	"github.com/atlascrm/profiling-api/internal/domain/entities"
	"github.com/atlascrm/profiling-api/internal/domain/repositories"
	gocache "github.com/patrickmn/go-cache"
)

type AnswerUseCase interface {
	GetAnswers(questionID uint, page, limit int) ([]entities.Answer, int64, error)
	GetAnswer(id uint) (entities.Answer, error)
	CreateAnswer(answer *entities.Answer) error
	UpdateAnswer(answer *entities.Answer) error
	DeleteAnswer(id uint) error
}

type answerUseCase struct {
	answerRepo repositories.AnswerRepository
	cache      *gocache.Cache
}

func NewAnswerUseCase(answerRepo repositories.AnswerRepository, cache *gocache.Cache) AnswerUseCase {
	return &answerUseCase{answerRepo, cache}
}

func (uc *answerUseCase) GetAnswers(questionID uint, page, limit int) ([]entities.Answer, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return uc.answerRepo.GetAnswers(questionID, page, limit)
}

func (uc *answerUseCase) GetAnswer(id uint) (entities.Answer, error) {
	return uc.answerRepo.GetAnswer(id)
}

func (uc *answerUseCase) CreateAnswer(answer *entities.Answer) error {
	if answer.Name == "" {
		return fmt.Errorf("answer name is required")
	}
	if answer.QuestionID == 0 {
		return fmt.Errorf("answer question_id is required")
	}
	if err := uc.answerRepo.CreateAnswer(answer); err != nil {
		return err
	}
	uc.cache.Flush()
	return nil
}

func (uc *answerUseCase) UpdateAnswer(answer *entities.Answer) error {
	if answer.Name == "" {
		return fmt.Errorf("answer name is required")
	}
	if err := uc.answerRepo.UpdateAnswer(answer); err != nil {
		return err
	}
	uc.cache.Flush()
	return nil
}

func (uc *answerUseCase) DeleteAnswer(id uint) error {
	if err := uc.answerRepo.DeleteAnswer(id); err != nil {
		return err
	}
	uc.cache.Flush()
	return nil
}
