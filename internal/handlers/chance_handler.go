package handlers

import (
	"github.com/gofiber/fiber/v2"

	"linku/linku-api/internal/models"
	"linku/linku-api/internal/services"
)

type ChanceHandler struct {
	chance services.ChanceService
}

func NewChanceHandler(chance services.ChanceService) *ChanceHandler {
	return &ChanceHandler{chance: chance}
}

// HandleChanceMe handles POST /api/chance-me
func (h *ChanceHandler) HandleChanceMe(c *fiber.Ctx) error {
	var req models.ChanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ChanceResponse{
			Success: false,
			Error:   "invalid request payload",
		})
	}

	if req.School == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ChanceResponse{
			Success: false,
			Error:   "school is required",
		})
	}
	if req.Program == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ChanceResponse{
			Success: false,
			Error:   "program is required",
		})
	}

	ecs := services.SplitECs(req.ECs)

	prediction, err := h.chance.PredictChance(req.School, req.Program, req.Top6, ecs)
	if err != nil {
		// Upstream data failures surface as explicit errors, never as
		// a successful-looking empty estimate.
		return c.Status(fiber.StatusInternalServerError).JSON(models.ChanceResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	return c.JSON(models.ChanceResponse{
		Success:    true,
		Prediction: prediction,
	})
}
