package ui

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/gomarkdown/markdown"

	"feedlens/domain/core"
	"feedlens/domain/feedback"
	"feedlens/internal/analysis"
	"feedlens/internal/charts"
)

const maxUploadBytes = 32 << 20

type kindOption struct {
	Value   string
	Title   string
	Checked bool
}

type indexView struct {
	Kinds       []kindOption
	DefaultFile string
	FileName    string
	Report      string
	ChartNames  []string
	Message     string
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.renderIndex(w, "", "")
}

func (a *App) renderIndex(w http.ResponseWriter, selected, message string) {
	if selected == "" {
		selected = feedback.KindSentiment.String()
	}

	view := indexView{
		DefaultFile: a.config.Data.DefaultFile,
		Message:     message,
	}
	for _, k := range feedback.Kinds() {
		view.Kinds = append(view.Kinds, kindOption{
			Value:   k.String(),
			Title:   k.Title(),
			Checked: k.String() == selected,
		})
	}

	if last, file, _ := a.lastRun(); last != nil {
		view.FileName = file
		view.Report = last.Report
		for _, art := range charts.ForOutcome(last) {
			view.ChartNames = append(view.ChartNames, art.Name)
		}
	}

	if err := a.templates.ExecuteTemplate(w, "index.html", view); err != nil {
		log.Printf("[UI] template error: %v", err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// handleAnalyze receives an uploaded dataset (or a server-side path)
// plus the analysis kind, runs the pipeline once, and shows the report.
func (a *App) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		a.renderIndex(w, "", "Upload failed: "+err.Error())
		return
	}

	kindValue := r.FormValue("analysis")
	kind, err := feedback.ParseKind(kindValue)
	if err != nil {
		a.setLastRun(&analysis.Outcome{Report: analysis.ReportUnknownKind}, "")
		a.renderIndex(w, "", "")
		return
	}

	path, display, err := a.datasetPath(r)
	if err != nil {
		a.renderIndex(w, kindValue, err.Error())
		return
	}

	out := a.pipeline.Run(path, kind)
	a.setLastRun(out, display)
	a.renderIndex(w, kindValue, "")
}

// datasetPath resolves the dataset for this request: an uploaded file
// saved under the upload dir, a pasted server path, or the configured
// default file.
func (a *App) datasetPath(r *http.Request) (path, display string, err error) {
	file, header, formErr := r.FormFile("dataset")
	if formErr == nil {
		defer file.Close()
		name := fmt.Sprintf("%s%s", core.NewID(), filepath.Ext(header.Filename))
		dest := filepath.Join(a.config.Data.UploadDir, name)
		out, createErr := os.Create(dest)
		if createErr != nil {
			return "", "", fmt.Errorf("cannot store upload: %w", createErr)
		}
		defer out.Close()
		if _, copyErr := io.Copy(out, file); copyErr != nil {
			return "", "", fmt.Errorf("cannot store upload: %w", copyErr)
		}
		log.Printf("[UI] stored upload %s as %s", header.Filename, dest)
		return dest, header.Filename, nil
	}

	if p := r.FormValue("path"); p != "" {
		return p, p, nil
	}
	if p := a.config.Data.DefaultFile; p != "" {
		return p, p, nil
	}
	return "", "", fmt.Errorf("Please select a data file first!")
}

// handleExport downloads the last report as a text file.
func (a *App) handleExport(w http.ResponseWriter, r *http.Request) {
	last, _, id := a.lastRun()
	if last == nil || last.Report == "" {
		http.Error(w, "No results to export!", http.StatusNotFound)
		return
	}

	filename := fmt.Sprintf("feedback-report-%s.txt", id)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	fmt.Fprintln(w, last.Report)
}

func (a *App) handleClear(w http.ResponseWriter, r *http.Request) {
	a.clearLastRun()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleChart renders one chart of the last run as a PNG.
func (a *App) handleChart(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	last, _, _ := a.lastRun()
	for _, art := range charts.ForOutcome(last) {
		if art.Name != name {
			continue
		}
		w.Header().Set("Content-Type", "image/png")
		if err := art.WritePNG(w); err != nil {
			log.Printf("[UI] chart render failed for %s: %v", name, err)
		}
		return
	}
	http.NotFound(w, r)
}

// handleChartArchive downloads every chart of the last run as a zip.
func (a *App) handleChartArchive(w http.ResponseWriter, r *http.Request) {
	last, _, id := a.lastRun()
	artifacts := charts.ForOutcome(last)
	if len(artifacts) == 0 {
		http.Error(w, "No charts to export!", http.StatusNotFound)
		return
	}

	filename := fmt.Sprintf("feedback-charts-%s.zip", id)
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := charts.WriteArchive(w, artifacts); err != nil {
		log.Printf("[UI] chart archive failed: %v", err)
	}
}

// handleHelp renders the embedded markdown help page.
func (a *App) handleHelp(w http.ResponseWriter, r *http.Request) {
	src, err := embeddedFiles.ReadFile("help.md")
	if err != nil {
		http.Error(w, "help unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<!doctype html><html><body>%s</body></html>", markdown.ToHTML(src, nil, nil))
}
