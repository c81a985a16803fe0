package usecases

import (
	"errors"
	"fmt"

	"github.com/atlascrm/profiling-api/internal/domain/repositories"
)

// ErrInvalidSubmission marks answer submissions rejected by validation.
var ErrInvalidSubmission = errors.New("invalid answer submission")

// QuestionnaireForm is a questionnaire rendered as an answerable form for
// one partner: every question with its candidate answers, the partner's
// current picks marked.
type QuestionnaireForm struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Questions   []FormQuestion `json:"questions"`
}

type FormQuestion struct {
	ID      uint         `json:"id"`
	Name    string       `json:"name"`
	Answers []FormAnswer `json:"answers"`
}

type FormAnswer struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

type ProfilingUseCase interface {
	OpenQuestionnaire(partnerID string, questionnaireID uint) (QuestionnaireForm, error)
	SubmitAnswers(partnerID string, questionnaireID uint, answerIDs []uint) error
}

type profilingUseCase struct {
	questionnaireUseCase QuestionnaireUseCase
	partnerRepo          repositories.PartnerRepository
}

func NewProfilingUseCase(questionnaireUseCase QuestionnaireUseCase, partnerRepo repositories.PartnerRepository) ProfilingUseCase {
	return &profilingUseCase{questionnaireUseCase, partnerRepo}
}

// OpenQuestionnaire builds the form a client presents when profiling a
// partner with the given questionnaire.
func (uc *profilingUseCase) OpenQuestionnaire(partnerID string, questionnaireID uint) (QuestionnaireForm, error) {
	questionnaire, err := uc.questionnaireUseCase.GetQuestionnaire(questionnaireID)
	if err != nil {
		return QuestionnaireForm{}, err
	}

	answerIDs, err := uc.partnerRepo.GetPartnerAnswerIDs(partnerID)
	if err != nil {
		return QuestionnaireForm{}, err
	}
	selected := make(map[uint]bool, len(answerIDs))
	for _, id := range answerIDs {
		selected[id] = true
	}

	form := QuestionnaireForm{
		ID:          questionnaire.ID,
		Name:        questionnaire.Name,
		Description: questionnaire.Description,
		Questions:   []FormQuestion{},
	}
	for _, question := range questionnaire.Questions {
		formQuestion := FormQuestion{
			ID:      question.ID,
			Name:    question.Name,
			Answers: []FormAnswer{},
		}
		for _, answer := range question.Answers {
			formQuestion.Answers = append(formQuestion.Answers, FormAnswer{
				ID:       answer.ID,
				Name:     answer.Name,
				Selected: selected[answer.ID],
			})
		}
		form.Questions = append(form.Questions, formQuestion)
	}

	return form, nil
}

// SubmitAnswers records a partner's picks for one questionnaire. Every
// submitted answer must belong to a question of that questionnaire;
// previous picks for the questionnaire's questions are replaced, picks for
// unrelated questions are untouched.
func (uc *profilingUseCase) SubmitAnswers(partnerID string, questionnaireID uint, answerIDs []uint) error {
	questionnaire, err := uc.questionnaireUseCase.GetQuestionnaire(questionnaireID)
	if err != nil {
		return err
	}

	valid := make(map[uint]bool)
	for _, question := range questionnaire.Questions {
		for _, answer := range question.Answers {
			valid[answer.ID] = true
		}
	}

	seen := make(map[uint]bool, len(answerIDs))
	for _, id := range answerIDs {
		if !valid[id] {
			return fmt.Errorf("%w: answer %d does not belong to questionnaire %d", ErrInvalidSubmission, id, questionnaireID)
		}
		if seen[id] {
			return fmt.Errorf("%w: answer %d submitted twice", ErrInvalidSubmission, id)
		}
		seen[id] = true
	}

	return uc.partnerRepo.ReplaceAnswersForQuestions(partnerID, questionnaire.QuestionIDs(), answerIDs)
}
