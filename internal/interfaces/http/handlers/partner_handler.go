package handlers

import (
	"github.com/atlascrm/profiling-api/internal/application/usecases"
	"github.com/atlascrm/profiling-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
)

type PartnerHandler struct {
	partnerUseCase  usecases.PartnerUseCase
	categoryUseCase usecases.CategoryUseCase
}

func NewPartnerHandler(partnerUseCase usecases.PartnerUseCase, categoryUseCase usecases.CategoryUseCase) *PartnerHandler {
	return &PartnerHandler{partnerUseCase, categoryUseCase}
}

func (h *PartnerHandler) GetPartners(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	validSortFields := map[string]string{
		"name":       "name",
		"email":      "email",
		"created_at": "created_at",
	}
	orderBy, sortBy, sortDirection := parseOrderBy(c, validSortFields, "created_at desc")

	partners, total, err := h.partnerUseCase.GetPartners(page, limit, orderBy)
	if err != nil {
		return errorResponse(c, err)
	}
	if partners == nil {
		partners = []entities.Partner{}
	}

	return c.JSON(fiber.Map{
		"data": partners,
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

func (h *PartnerHandler) GetPartner(c *fiber.Ctx) error {
	partner, err := h.partnerUseCase.GetPartner(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"data": partner,
	})
}

type partnerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (h *PartnerHandler) CreatePartner(c *fiber.Ctx) error {
	var req partnerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	partner := entities.Partner{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if err := h.partnerUseCase.CreatePartner(&partner); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": partner,
	})
}

func (h *PartnerHandler) UpdatePartner(c *fiber.Ctx) error {
	var req partnerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	partner := entities.Partner{
		PartnerID: c.Params("id"),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := h.partnerUseCase.UpdatePartner(&partner); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"data": partner,
	})
}

func (h *PartnerHandler) DeletePartner(c *fiber.Ctx) error {
	if err := h.partnerUseCase.DeletePartner(c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PartnerHandler) GetCategories(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	categories, total, err := h.categoryUseCase.GetCategories(page, limit)
	if err != nil {
		return errorResponse(c, err)
	}
	if categories == nil {
		categories = []entities.Category{}
	}

	return c.JSON(fiber.Map{
		"data": categories,
		"meta": fiber.Map{
			"total":     total,
			"page":      page,
			"limit":     limit,
			"last_page": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

type categoryRequest struct {
	Name string `json:"name"`
}

func (h *PartnerHandler) CreateCategory(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	category := entities.Category{Name: req.Name}
	if err := h.categoryUseCase.CreateCategory(&category); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": category,
	})
}
