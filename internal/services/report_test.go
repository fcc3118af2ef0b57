package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linku/linku-api/internal/models"
)

func sampleMatches(n int) []models.MatchResult {
	results := make([]models.MatchResult, 0, n)
	for i := 0; i < n; i++ {
		results = append(results, models.MatchResult{
			School:   fmt.Sprintf("University %d", i),
			Program:  fmt.Sprintf("Program %d", i),
			Overall:  0.9 - float64(i)*0.001,
			Academic: 0.8,
			Campus:   0.7,
			Social:   0.6,
		})
	}
	return results
}

func TestRenderMatchesProducesPDF(t *testing.T) {
	svc := NewReportService()

	out, err := svc.RenderMatches(sampleMatches(5), models.PDFWeights{Academic: 1, Campus: 0.5, Social: 0.25})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderMatchesCapsRows(t *testing.T) {
	svc := NewReportService()

	capped, err := svc.RenderMatches(sampleMatches(reportMaxRows+50), models.PDFWeights{})
	require.NoError(t, err)
	atCap, err := svc.RenderMatches(sampleMatches(reportMaxRows), models.PDFWeights{})
	require.NoError(t, err)

	// Extra rows beyond the cap must not grow the document.
	assert.InDelta(t, len(atCap), len(capped), float64(len(atCap))*0.05)
}

func TestRenderMatchesEmptyResults(t *testing.T) {
	svc := NewReportService()

	out, err := svc.RenderMatches(nil, models.PDFWeights{})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
