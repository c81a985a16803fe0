package handlers

import (
	"errors"
	"strconv"

	"github.com/atlascrm/profiling-api/internal/application/usecases"
	"github.com/atlascrm/profiling-api/internal/domain/repositories"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// getKeys returns the keys of a valid-sort-fields map for response metadata.
func getKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// parsePagination reads page/limit query parameters with sane defaults.
func parsePagination(c *fiber.Ctx) (int, int) {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	return page, limit
}

// parseOrderBy validates sortBy/sortDirection against a whitelist and
// builds the SQL order clause.
func parseOrderBy(c *fiber.Ctx, validSortFields map[string]string, defaultOrder string) (string, string, string) {
	sortBy := c.Query("sortBy", "created_at")
	sortDirection := c.Query("sortDirection", "desc")

	if sortDirection != "asc" && sortDirection != "desc" {
		sortDirection = "desc"
	}

	orderBy := defaultOrder
	if field, ok := validSortFields[sortBy]; ok {
		orderBy = field + " " + sortDirection
	}
	return orderBy, sortBy, sortDirection
}

// parseUintParam parses a numeric path parameter.
func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}

// errorResponse maps repository errors onto HTTP statuses.
func errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "record not found",
		})
	case errors.Is(err, repositories.ErrAnswerInUse):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, usecases.ErrInvalidSubmission):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
