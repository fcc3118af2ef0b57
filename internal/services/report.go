package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"linku/linku-api/internal/models"
)

const reportMaxRows = 100

type ReportService interface {
	// RenderMatches renders ranked results into a landscape PDF table,
	// capped at the top 100 rows.
	RenderMatches(results []models.MatchResult, weights models.PDFWeights) ([]byte, error)
}

type reportService struct{}

func NewReportService() ReportService {
	return &reportService{}
}

func (r *reportService) RenderMatches(results []models.MatchResult, weights models.PDFWeights) ([]byte, error) {
	if len(results) > reportMaxRows {
		results = results[:reportMaxRows]
	}

	pdf := fpdf.New("L", "mm", "Letter", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "LinkU: Your University Program Matches", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Academic Weight: %.2f", weights.Academic), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Campus Life Weight: %.2f", weights.Campus), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Social Weight: %.2f", weights.Social), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Top %d Program Matches", len(results)), "", 1, "L", false, 0, "")
	pdf.Ln(1)

	widths := []float64{14, 55, 90, 20, 20, 20, 20}
	headers := []string{"Rank", "University", "Program", "Academic", "Campus", "Social", "Total"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(173, 216, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for i, match := range results {
		fill := i%2 == 1
		pdf.SetFillColor(211, 211, 211)
		pdf.CellFormat(widths[0], 7, fmt.Sprintf("%d", i+1), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(widths[1], 7, match.School, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(widths[2], 7, match.Program, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(widths[3], 7, fmt.Sprintf("%.3f", match.Academic), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(widths[4], 7, fmt.Sprintf("%.3f", match.Campus), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(widths[5], 7, fmt.Sprintf("%.3f", match.Social), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(widths[6], 7, fmt.Sprintf("%.3f", match.Overall), "1", 0, "R", fill, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render matches PDF: %w", err)
	}
	return buf.Bytes(), nil
}
