package handlers

import (
	"github.com/atlascrm/profiling-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

// ProfilingHandler serves the questionnaire flow: open a questionnaire as
// a form for a partner, then record the partner's picks.
type ProfilingHandler struct {
	profilingUseCase usecases.ProfilingUseCase
}

func NewProfilingHandler(profilingUseCase usecases.ProfilingUseCase) *ProfilingHandler {
	return &ProfilingHandler{profilingUseCase}
}

func (h *ProfilingHandler) OpenQuestionnaire(c *fiber.Ctx) error {
	questionnaireID, err := parseUintParam(c, "questionnaire_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid questionnaire ID format",
		})
	}

	form, err := h.profilingUseCase.OpenQuestionnaire(c.Params("id"), questionnaireID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"data": form,
	})
}

type submitAnswersRequest struct {
	AnswerIDs []uint `json:"answer_ids"`
}

func (h *ProfilingHandler) SubmitAnswers(c *fiber.Ctx) error {
	questionnaireID, err := parseUintParam(c, "questionnaire_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid questionnaire ID format",
		})
	}

	var req submitAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.profilingUseCase.SubmitAnswers(c.Params("id"), questionnaireID, req.AnswerIDs); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
