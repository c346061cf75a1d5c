// Package ui is the interactive caller of the analysis pipeline: a
// local web app with file upload, analysis selection, a results pane,
// report export and chart downloads. It keeps its own last-run state
// and never shares mutable state with the core.
package ui

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"feedlens/domain/core"
	"feedlens/internal/analysis"
	"feedlens/internal/config"
)

//go:embed templates/*.html help.md
var embeddedFiles embed.FS

// App represents the interactive UI application
type App struct {
	router    *chi.Mux
	templates *template.Template
	pipeline  *analysis.Pipeline
	config    *config.Config

	// Last-run state, local to the app.
	mu       sync.RWMutex
	last     *analysis.Outcome
	lastFile string
	lastID   core.ArtifactID
}

// NewApp creates the UI application around an analysis pipeline.
func NewApp(cfg *config.Config, pipeline *analysis.Pipeline) (*App, error) {
	templates, err := template.New("").ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:    chi.NewRouter(),
		templates: templates,
		pipeline:  pipeline,
		config:    cfg,
	}

	app.setupMiddleware()
	app.setupRoutes()
	return app, nil
}

func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Post("/analyze", a.handleAnalyze)
	a.router.Get("/export", a.handleExport)
	a.router.Post("/clear", a.handleClear)
	a.router.Get("/charts/{name}", a.handleChart)
	a.router.Get("/charts.zip", a.handleChartArchive)
	a.router.Get("/help", a.handleHelp)
}

// Handler exposes the router, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.router
}

// Run starts the HTTP server and blocks.
func (a *App) Run() error {
	addr := ":" + a.config.Server.Port
	log.Printf("[UI] listening on http://localhost%s", addr)
	return http.ListenAndServe(addr, a.router)
}

// setLastRun stores the outcome of the most recent analysis.
func (a *App) setLastRun(out *analysis.Outcome, file string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.last = out
	a.lastFile = file
	a.lastID = core.ArtifactID(core.NewID())
}

// lastRun returns the most recent outcome, if any.
func (a *App) lastRun() (*analysis.Outcome, string, core.ArtifactID) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.last, a.lastFile, a.lastID
}

// clearLastRun drops the stored results.
func (a *App) clearLastRun() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.last = nil
	a.lastFile = ""
	a.lastID = ""
}
