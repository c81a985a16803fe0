package handlers

import (
	"strconv"

	"github.com/atlascrm/profiling-api/internal/application/usecases"
	"github.com/atlascrm/profiling-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
)

type SegmentationHandler struct {
	segmentationUseCase usecases.SegmentationUseCase
}

func NewSegmentationHandler(segmentationUseCase usecases.SegmentationUseCase) *SegmentationHandler {
	return &SegmentationHandler{segmentationUseCase}
}

func (h *SegmentationHandler) GetSegmentations(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	validSortFields := map[string]string{
		"id":         "id",
		"name":       "name",
		"status":     "status",
		"created_at": "created_at",
	}
	orderBy, sortBy, sortDirection := parseOrderBy(c, validSortFields, "created_at desc")

	segmentations, total, err := h.segmentationUseCase.GetSegmentations(page, limit, orderBy)
	if err != nil {
		return errorResponse(c, err)
	}
	if segmentations == nil {
		segmentations = []entities.Segmentation{}
	}

	return c.JSON(fiber.Map{
		"data": segmentations,
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

func (h *SegmentationHandler) GetSegmentation(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid segmentation ID format",
		})
	}

	segmentation, err := h.segmentationUseCase.GetSegmentation(id)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"data": segmentation,
	})
}

// GetSegmentationTree lists root segmentations, or the children of
// parent_id when given.
func (h *SegmentationHandler) GetSegmentationTree(c *fiber.Ctx) error {
	var parentID *uint
	if raw := c.Query("parent_id"); raw != "" {
		value, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid parent ID format",
			})
		}
		id := uint(value)
		parentID = &id
	}

	segmentations, err := h.segmentationUseCase.GetSegmentationTree(parentID)
	if err != nil {
		return errorResponse(c, err)
	}
	if segmentations == nil {
		segmentations = []entities.Segmentation{}
	}

	return c.JSON(fiber.Map{
		"data": segmentations,
	})
}

type segmentationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Exclusive   bool   `json:"exclusive"`
	CategoryID  uint   `json:"category_id"`
	ParentID    *uint  `json:"parent_id"`
	AnswerYes   []uint `json:"answer_yes"`
	AnswerNo    []uint `json:"answer_no"`
}

func (h *SegmentationHandler) CreateSegmentation(c *fiber.Ctx) error {
	var req segmentationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	segmentation := entities.Segmentation{
		Name:        req.Name,
		Description: req.Description,
		Exclusive:   req.Exclusive,
		CategoryID:  req.CategoryID,
		ParentID:    req.ParentID,
	}
	if err := h.segmentationUseCase.CreateSegmentation(&segmentation, req.AnswerYes, req.AnswerNo); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": segmentation,
	})
}

func (h *SegmentationHandler) UpdateSegmentation(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid segmentation ID format",
		})
	}

	var req segmentationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	segmentation := entities.Segmentation{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Exclusive:   req.Exclusive,
		CategoryID:  req.CategoryID,
		ParentID:    req.ParentID,
	}
	if err := h.segmentationUseCase.UpdateSegmentation(&segmentation); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"data": segmentation,
	})
}

type ruleAnswersRequest struct {
	AnswerYes []uint `json:"answer_yes"`
	AnswerNo  []uint `json:"answer_no"`
}

// ReplaceRuleAnswers swaps both answer sets of the segmentation rule.
func (h *SegmentationHandler) ReplaceRuleAnswers(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid segmentation ID format",
		})
	}

	var req ruleAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.segmentationUseCase.ReplaceRuleAnswers(id, req.AnswerYes, req.AnswerNo); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *SegmentationHandler) DeleteSegmentation(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid segmentation ID format",
		})
	}

	if err := h.segmentationUseCase.DeleteSegmentation(id); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// CheckPartner explains whether one partner matches the segmentation.
func (h *SegmentationHandler) CheckPartner(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid segmentation ID format",
		})
	}

	result, err := h.segmentationUseCase.CheckPartner(c.Params("partner_id"), id)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"data": result,
	})
}

// GetMatchedPartners computes the segmentation's membership live.
func (h *SegmentationHandler) GetMatchedPartners(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid segmentation ID format",
		})
	}

	partners, err := h.segmentationUseCase.MatchedPartners(id)
	if err != nil {
		return errorResponse(c, err)
	}
	if partners == nil {
		partners = []entities.Partner{}
	}

	return c.JSON(fiber.Map{
		"data": partners,
		"meta": fiber.Map{
			"total": len(partners),
		},
	})
}

// Run recomputes category membership for the segmentation.
func (h *SegmentationHandler) Run(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid segmentation ID format",
		})
	}

	result, err := h.segmentationUseCase.Run(id)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"data": result,
	})
}
