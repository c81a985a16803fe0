package handlers

import (
	"strconv"

	"github.com/atlascrm/profiling-api/internal/application/usecases"
	"github.com/atlascrm/profiling-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
)

type AnswerHandler struct {
	answerUseCase usecases.AnswerUseCase
}

func NewAnswerHandler(answerUseCase usecases.AnswerUseCase) *AnswerHandler {
	return &AnswerHandler{answerUseCase}
}

// GetAnswers lists answers, filterable by question_id.
func (h *AnswerHandler) GetAnswers(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	questionID, _ := strconv.ParseUint(c.Query("question_id", "0"), 10, 64)

	answers, total, err := h.answerUseCase.GetAnswers(uint(questionID), page, limit)
	if err != nil {
		return errorResponse(c, err)
	}
	if answers == nil {
		answers = []entities.Answer{}
	}

	return c.JSON(fiber.Map{
		"data": answers,
		"meta": fiber.Map{
			"total":       total,
			"page":        page,
			"limit":       limit,
			"last_page":   (total + int64(limit) - 1) / int64(limit),
			"question_id": questionID,
		},
	})
}

func (h *AnswerHandler) GetAnswer(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid answer ID format",
		})
	}

	answer, err := h.answerUseCase.GetAnswer(id)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"data": answer,
	})
}

type answerRequest struct {
	Name       string `json:"name"`
	QuestionID uint   `json:"question_id"`
}

func (h *AnswerHandler) CreateAnswer(c *fiber.Ctx) error {
	var req answerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	answer := entities.Answer{
		Name:       req.Name,
		QuestionID: req.QuestionID,
	}
	if err := h.answerUseCase.CreateAnswer(&answer); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": answer,
	})
}

func (h *AnswerHandler) UpdateAnswer(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid answer ID format",
		})
	}

	var req answerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	answer := entities.Answer{ID: id, Name: req.Name}
	if err := h.answerUseCase.UpdateAnswer(&answer); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"data": answer,
	})
}

func (h *AnswerHandler) DeleteAnswer(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid answer ID format",
		})
	}

	if err := h.answerUseCase.DeleteAnswer(id); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
