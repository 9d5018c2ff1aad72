package web

import (
	"github.com/gofiber/fiber/v3"
)

func (h *APIHandlers) GetWorkflowCanvas(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Workflow ID must be an integer")
	}

	canvas, err := h.canvasService.FetchByWorkflowID(c.Context(), id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(canvas)
}

// SaveWorkflowCanvas replaces the canvas of a workflow with the request body.
func (h *APIHandlers) SaveWorkflowCanvas(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Workflow ID must be an integer")
	}

	var req SaveCanvasRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	if err := validateCanvasConfigs(req.CanvasItems); err != nil {
		return badRequest(c, err.Error())
	}

	saved, err := h.canvasService.Save(c.Context(), id, req.toModel(id))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(saved)
}
