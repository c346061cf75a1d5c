package ui

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"feedlens/adapters/tabular"
	"feedlens/internal/analysis"
	"feedlens/internal/config"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{Port: "0"},
		Data:   config.DataConfig{UploadDir: t.TempDir()},
	}
	pipeline := analysis.NewPipeline(func(path string) analysis.Loader {
		return tabular.NewDataReader(path)
	})
	app, err := NewApp(cfg, pipeline)
	require.NoError(t, err)
	return app
}

func postAnalyzeCSV(t *testing.T, app *App, csvData, kind string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("dataset", "feedback.csv")
	require.NoError(t, err)
	_, err = io.WriteString(part, csvData)
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("analysis", kind))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)
	return rec
}

const sampleCSV = "customer_id,feedback\n" +
	"C1,Great product and excellent service\n" +
	"C2,Terrible delivery experience\n" +
	"C3,The box contained a manual\n"

func TestIndexPage(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Start Analysis")
	require.Contains(t, rec.Body.String(), "Sentiment Analysis")
}

func TestAnalyzeUploadShowsReport(t *testing.T) {
	app := newTestApp(t)

	rec := postAnalyzeCSV(t, app, sampleCSV, "sentiment")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	require.Contains(t, body, "=== SENTIMENT ANALYSIS RESULTS ===")
	require.Contains(t, body, "Total feedback analyzed: 3")
	require.Contains(t, body, "feedback.csv")
	require.Contains(t, body, "/charts/sentiment_distribution.png")
}

func TestAnalyzeUnknownKind(t *testing.T) {
	app := newTestApp(t)

	rec := postAnalyzeCSV(t, app, sampleCSV, "vibes")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Error: Unknown analysis type.")
}

func TestAnalyzeWithoutAnyFile(t *testing.T) {
	app := newTestApp(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("analysis", "keywords"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Please select a data file first!")
}

func TestExportAfterAnalysis(t *testing.T) {
	app := newTestApp(t)
	postAnalyzeCSV(t, app, sampleCSV, "summary")

	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Disposition"), "feedback-report-")
	require.Contains(t, rec.Body.String(), "=== FEEDBACK SUMMARY ===")
}

func TestExportWithoutResults(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClearDropsResults(t *testing.T) {
	app := newTestApp(t)
	postAnalyzeCSV(t, app, sampleCSV, "topics")

	req := httptest.NewRequest(http.MethodPost, "/clear", nil)
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/export", nil)
	rec = httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChartEndpoints(t *testing.T) {
	app := newTestApp(t)
	postAnalyzeCSV(t, app, sampleCSV, "sentiment")

	req := httptest.NewRequest(http.MethodGet, "/charts/sentiment_distribution.png", nil)
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	require.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte{0x89, 'P', 'N', 'G'}))

	req = httptest.NewRequest(http.MethodGet, "/charts/unknown.png", nil)
	rec = httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/charts.zip", nil)
	rec = httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/zip", rec.Header().Get("Content-Type"))
}

func TestHelpPage(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/help", nil)
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "feedlens"))
}
