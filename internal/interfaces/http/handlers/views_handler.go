package handlers

import (
	"github.com/atlascrm/profiling-api/internal/domain/viewschema"
	"github.com/gofiber/fiber/v2"
)

// ViewsHandler serves the form documents with the profiling patches
// applied, for clients that render the host forms.
type ViewsHandler struct{}

func NewViewsHandler() *ViewsHandler {
	return &ViewsHandler{}
}

func (h *ViewsHandler) GetPartnerForm(c *fiber.Ctx) error {
	doc, err := viewschema.PartnerForm()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"data": doc,
	})
}

func (h *ViewsHandler) GetSegmentationForm(c *fiber.Ctx) error {
	doc, err := viewschema.SegmentationForm()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"data": doc,
	})
}
