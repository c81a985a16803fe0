package handlers

import (
	"github.com/atlascrm/profiling-api/internal/application/usecases"
	"github.com/atlascrm/profiling-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
)

type QuestionnaireHandler struct {
	questionnaireUseCase usecases.QuestionnaireUseCase
}

func NewQuestionnaireHandler(questionnaireUseCase usecases.QuestionnaireUseCase) *QuestionnaireHandler {
	return &QuestionnaireHandler{questionnaireUseCase}
}

func (h *QuestionnaireHandler) GetQuestionnaires(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	validSortFields := map[string]string{
		"id":         "id",
		"name":       "name",
		"created_at": "created_at",
	}
	orderBy, sortBy, sortDirection := parseOrderBy(c, validSortFields, "created_at desc")

	questionnaires, total, err := h.questionnaireUseCase.GetQuestionnaires(page, limit, orderBy)
	if err != nil {
		return errorResponse(c, err)
	}
	if questionnaires == nil {
		questionnaires = []entities.Questionnaire{}
	}

	return c.JSON(fiber.Map{
		"data": questionnaires,
		"meta": fiber.Map{
			"total":             total,
			"page":              page,
			"limit":             limit,
			"last_page":         (total + int64(limit) - 1) / int64(limit),
			"sort_by":           sortBy,
			"sort_direction":    sortDirection,
			"valid_sort_fields": getKeys(validSortFields),
		},
	})
}

func (h *QuestionnaireHandler) GetQuestionnaire(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid questionnaire ID format",
		})
	}

	questionnaire, err := h.questionnaireUseCase.GetQuestionnaire(id)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"data": questionnaire,
	})
}

type questionnaireRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *QuestionnaireHandler) CreateQuestionnaire(c *fiber.Ctx) error {
	var req questionnaireRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	questionnaire := entities.Questionnaire{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.questionnaireUseCase.CreateQuestionnaire(&questionnaire); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": questionnaire,
	})
}

func (h *QuestionnaireHandler) UpdateQuestionnaire(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid questionnaire ID format",
		})
	}

	var req questionnaireRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	questionnaire := entities.Questionnaire{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.questionnaireUseCase.UpdateQuestionnaire(&questionnaire); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"data": questionnaire,
	})
}

func (h *QuestionnaireHandler) DeleteQuestionnaire(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid questionnaire ID format",
		})
	}

	if err := h.questionnaireUseCase.DeleteQuestionnaire(id); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

type attachQuestionsRequest struct {
	QuestionIDs []uint `json:"question_ids"`
}

// AddQuestions attaches existing questions to a questionnaire.
func (h *QuestionnaireHandler) AddQuestions(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid questionnaire ID format",
		})
	}

	var req attachQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.questionnaireUseCase.AddQuestions(id, req.QuestionIDs); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *QuestionnaireHandler) RemoveQuestion(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid questionnaire ID format",
		})
	}
	questionID, err := parseUintParam(c, "question_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid question ID format",
		})
	}

	if err := h.questionnaireUseCase.RemoveQuestion(id, questionID); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
