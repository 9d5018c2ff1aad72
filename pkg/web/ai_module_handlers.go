package web

import (
	"github.com/gofiber/fiber/v3"
)

func (h *APIHandlers) GetAIModules(c fiber.Ctx) error {
	list, err := h.aiModuleService.List(c.Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(list)
}

func (h *APIHandlers) CreateAIModule(c fiber.Ctx) error {
	var req CreateAIModuleRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	created, err := h.aiModuleService.Create(c.Context(), req.Name, req.Type, req.Description, req.Config)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *APIHandlers) GetAIModule(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "AI module ID must be an integer")
	}

	module, err := h.aiModuleService.FetchByID(c.Context(), id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(module)
}

// RunAIModule dispatches the request body, an arbitrary JSON object, to the module.
func (h *APIHandlers) RunAIModule(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "AI module ID must be an integer")
	}

	input := map[string]any{}
	if len(c.Body()) > 0 {
		if err := c.Bind().JSON(&input); err != nil {
			return badRequest(c, "Invalid JSON format")
		}
	}

	result, err := h.dispatcher.Run(c.Context(), id, input)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(RunResponse{Result: result})
}
