package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"linku/linku-api/internal/models"
	"linku/linku-api/internal/services"
)

type ReportHandler struct {
	report services.ReportService
}

func NewReportHandler(report services.ReportService) *ReportHandler {
	return &ReportHandler{report: report}
}

// HandleDownloadPDF handles POST /api/download-pdf
func (h *ReportHandler) HandleDownloadPDF(c *fiber.Ctx) error {
	var req models.PDFRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}

	if len(req.Results) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "results are required",
		})
	}

	pdfBytes, err := h.report.RenderMatches(req.Results, req.Weights)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	filename := fmt.Sprintf("LinkU_matches_%s.pdf", time.Now().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
