package handlers

import (
	"github.com/atlascrm/profiling-api/internal/application/usecases"
	"github.com/atlascrm/profiling-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
)

type QuestionHandler struct {
	questionUseCase usecases.QuestionUseCase
}

func NewQuestionHandler(questionUseCase usecases.QuestionUseCase) *QuestionHandler {
	return &QuestionHandler{questionUseCase}
}

func (h *QuestionHandler) GetQuestions(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	validSortFields := map[string]string{
		"id":         "id",
		"name":       "name",
		"created_at": "created_at",
	}
	orderBy, sortBy, sortDirection := parseOrderBy(c, validSortFields, "created_at desc")

	questions, total, err := h.questionUseCase.GetQuestions(page, limit, orderBy)
	if err != nil {
		return errorResponse(c, err)
	}
	if questions == nil {
		questions = []entities.Question{}
	}

	return c.JSON(fiber.Map{
		"data": questions,
		"meta": fiber.Map{
			"total":          total,
			"page":           page,
			"limit":          limit,
			"last_page":      (total + int64(limit) - 1) / int64(limit),
			"sort_by":        sortBy,
			"sort_direction": sortDirection,
		},
	})
}

func (h *QuestionHandler) GetQuestion(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid question ID format",
		})
	}

	question, err := h.questionUseCase.GetQuestion(id)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"data": question,
	})
}

type questionRequest struct {
	Name    string   `json:"name"`
	Answers []string `json:"answers"`
}

// CreateQuestion creates a question, optionally with inline answers.
func (h *QuestionHandler) CreateQuestion(c *fiber.Ctx) error {
	var req questionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	question := entities.Question{Name: req.Name}
	for _, name := range req.Answers {
		question.Answers = append(question.Answers, entities.Answer{Name: name})
	}

	if err := h.questionUseCase.CreateQuestion(&question); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": question,
	})
}

func (h *QuestionHandler) UpdateQuestion(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid question ID format",
		})
	}

	var req questionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	question := entities.Question{ID: id, Name: req.Name}
	if err := h.questionUseCase.UpdateQuestion(&question); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"data": question,
	})
}

func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid question ID format",
		})
	}

	if err := h.questionUseCase.DeleteQuestion(id); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
