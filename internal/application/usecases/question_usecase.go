package usecases

import (
	"fmt"

	"github.com/atlascrm/profiling-api/internal/domain/entities"
	"github.com/atlascrm/profiling-api/internal/domain/repositories"
	gocache "github.com/patrickmn/go-cache"
)

type QuestionUseCase interface {
	GetQuestions(page, limit int, orderBy string) ([]entities.Question, int64, error)
	GetQuestion(id uint) (entities.Question, error)
	CreateQuestion(question *entities.Question) error
	UpdateQuestion(question *entities.Question) error
	DeleteQuestion(id uint) error
}

type questionUseCase struct {
	questionRepo repositories.QuestionRepository
	cache        *gocache.Cache
}

func NewQuestionUseCase(questionRepo repositories.QuestionRepository, cache *gocache.Cache) QuestionUseCase {
	return &questionUseCase{questionRepo, cache}
}

func (uc *questionUseCase) GetQuestions(page, limit int, orderBy string) ([]entities.Question, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if orderBy == "" {
		orderBy = "created_at desc"
	}
	return uc.questionRepo.GetQuestions(page, limit, orderBy)
}

func (uc *questionUseCase) GetQuestion(id uint) (entities.Question, error) {
	return uc.questionRepo.GetQuestion(id)
}

func (uc *questionUseCase) CreateQuestion(question *entities.Question) error {
	if question.Name == "" {
		return fmt.Errorf("question name is required")
	}
	for _, answer := range question.Answers {
		if answer.Name == "" {
			return fmt.Errorf("answer name is required")
		}
	}
	if err := uc.questionRepo.CreateQuestion(question); err != nil {
		return err
	}
	// Questions appear inside cached questionnaire reads.
	uc.cache.Flush()
	return nil
}

func (uc *questionUseCase) UpdateQuestion(question *entities.Question) error {
	if question.Name == "" {
		return fmt.Errorf("question name is required")
	}
	if err := uc.questionRepo.UpdateQuestion(question); err != nil {
		return err
	}
	uc.cache.Flush()
	return nil
}

func (uc *questionUseCase) DeleteQuestion(id uint) error {
	if err := uc.questionRepo.DeleteQuestion(id); err != nil {
		return err
	}
	uc.cache.Flush()
	return nil
}
