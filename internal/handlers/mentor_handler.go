package handlers

import (
	"github.com/gofiber/fiber/v2"

	"linku/linku-api/internal/models"
	"linku/linku-api/internal/services"
)

type MentorHandler struct {
	mentors services.MentorService
}

func NewMentorHandler(mentors services.MentorService) *MentorHandler {
	return &MentorHandler{mentors: mentors}
}

// HandleAllMentors handles GET /api/mentors
func (h *MentorHandler) HandleAllMentors(c *fiber.Ctx) error {
	mentors := h.mentors.AllMentors()
	if mentors == nil {
		mentors = []models.Mentor{}
	}
	return c.JSON(mentors)
}

// HandleProgramMentors handles GET /api/program-mentors/*. The key is a
// wildcard because program names may contain slashes.
func (h *MentorHandler) HandleProgramMentors(c *fiber.Ctx) error {
	programKey := c.Params("*")
	if programKey == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "program key is required",
		})
	}

	mentors := h.mentors.ForProgram(programKey)
	if mentors == nil {
		mentors = []models.Mentor{}
	}
	return c.JSON(mentors)
}
