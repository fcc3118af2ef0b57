package handlers

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linku/linku-api/internal/services"
)

func newReportApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/download-pdf", NewReportHandler(services.NewReportService()).HandleDownloadPDF)
	return app
}

func TestHandleDownloadPDF(t *testing.T) {
	app := newReportApp()

	body := `{
		"results": [
			{"school": "Waterloo", "program": "Software Engineering", "academic": 0.9, "campus": 0.8, "social": 0.7, "overall": 0.85}
		],
		"weights": {"wa": 1, "wc": 1, "wso": 1}
	}`
	req := httptest.NewRequest("POST", "/api/download-pdf", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "LinkU_matches_")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.Equal(t, "%PDF", string(raw[:4]))
}

func TestHandleDownloadPDFEmptyResults(t *testing.T) {
	app := newReportApp()

	status, raw := postJSON(t, app, "/api/download-pdf", `{"results": [], "weights": {}}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, string(raw), "results are required")
}
