package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/atlascrm/profiling-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubQuestionnaireUseCase struct {
	questionnaires []entities.Questionnaire
	total          int64
	err            error

	created *entities.Questionnaire
}

func (s *stubQuestionnaireUseCase) GetQuestionnaires(page, limit int, orderBy string) ([]entities.Questionnaire, int64, error) {
	return s.questionnaires, s.total, s.err
}

func (s *stubQuestionnaireUseCase) GetQuestionnaire(id uint) (entities.Questionnaire, error) {
	if s.err != nil {
		return entities.Questionnaire{}, s.err
	}
	for _, q := range s.questionnaires {
		if q.ID == id {
			return q, nil
		}
	}
	return entities.Questionnaire{}, gorm.ErrRecordNotFound
}

func (s *stubQuestionnaireUseCase) CreateQuestionnaire(q *entities.Questionnaire) error {
	q.ID = 42
	s.created = q
	return s.err
}

func (s *stubQuestionnaireUseCase) UpdateQuestionnaire(q *entities.Questionnaire) error { return s.err }
func (s *stubQuestionnaireUseCase) DeleteQuestionnaire(id uint) error                   { return s.err }
func (s *stubQuestionnaireUseCase) AddQuestions(id uint, questionIDs []uint) error      { return s.err }
func (s *stubQuestionnaireUseCase) RemoveQuestion(id uint, questionID uint) error       { return s.err }

func newQuestionnaireApp(stub *stubQuestionnaireUseCase) *fiber.App {
	app := fiber.New()
	handler := NewQuestionnaireHandler(stub)
	app.Get("/questionnaires", handler.GetQuestionnaires)
	app.Get("/questionnaires/:id", handler.GetQuestionnaire)
	app.Post("/questionnaires", handler.CreateQuestionnaire)
	return app
}

func decodeBody(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestGetQuestionnairesEnvelope(t *testing.T) {
	stub := &stubQuestionnaireUseCase{
		questionnaires: []entities.Questionnaire{{ID: 1, Name: "Onboarding"}},
		total:          1,
	}
	app := newQuestionnaireApp(stub)

	resp, err := app.Test(httptest.NewRequest("GET", "/questionnaires?page=1&limit=10", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Onboarding", data[0].(map[string]interface{})["name"])

	meta := body["meta"].(map[string]interface{})
	assert.EqualValues(t, 1, meta["total"])
	assert.EqualValues(t, 1, meta["last_page"])
}

func TestGetQuestionnairesEmptyIsArray(t *testing.T) {
	app := newQuestionnaireApp(&stubQuestionnaireUseCase{})

	resp, err := app.Test(httptest.NewRequest("GET", "/questionnaires", nil))
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"data":[]`)
}

func TestGetQuestionnaireNotFound(t *testing.T) {
	app := newQuestionnaireApp(&stubQuestionnaireUseCase{})

	resp, err := app.Test(httptest.NewRequest("GET", "/questionnaires/7", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetQuestionnaireBadID(t *testing.T) {
	app := newQuestionnaireApp(&stubQuestionnaireUseCase{})

	resp, err := app.Test(httptest.NewRequest("GET", "/questionnaires/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateQuestionnaire(t *testing.T) {
	stub := &stubQuestionnaireUseCase{}
	app := newQuestionnaireApp(stub)

	req := httptest.NewRequest("POST", "/questionnaires", strings.NewReader(`{"name":"Onboarding","description":"First contact"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	require.NotNil(t, stub.created)
	assert.Equal(t, "Onboarding", stub.created.Name)

	body := decodeBody(t, resp.Body)
	assert.EqualValues(t, 42, body["data"].(map[string]interface{})["id"])
}
