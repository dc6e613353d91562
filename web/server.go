// Package web serves a localhost-only single-user UI; it intentionally has no
// auth/CSRF protection in this mode.
package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"punchclock/config"
	"punchclock/output"
	"punchclock/pipeline"
	"punchclock/storage"
	"punchclock/timecard"
)

//go:embed templates/*.html
var templateFS embed.FS

type Server struct {
	store *storage.SQLiteStore
	pipe  *pipeline.Pipeline
	batch string
	mux   *http.ServeMux
}

type pageView struct {
	Title string
}

type entriesRequest struct {
	Entries []timecard.RawEntry `json:"entries"`
}

type entriesResponse struct {
	Validated  []timecard.ValidationResult `json:"validated"`
	Aggregated bool                        `json:"aggregated"`
	Summaries  []timecard.SummaryEntry     `json:"summaries"`
	Projects   []output.ProjectSlice       `json:"projects"`
	Persisted  bool                        `json:"persisted"`
}

type storedResponse struct {
	Entries []timecard.RawEntry `json:"entries"`
}

func NewServer(store *storage.SQLiteStore, cfg config.Config) http.Handler {
	batch := cfg.Storage.Batch
	if batch == "" {
		batch = storage.DefaultBatchName
	}

	server := &Server{
		store: store,
		pipe:  pipeline.New(cfg.ExcludedProjects),
		batch: batch,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", server.handleIndex)
	mux.HandleFunc("GET /api/entries", server.handleEntriesGet)
	mux.HandleFunc("POST /api/entries", server.handleEntriesPost)
	mux.HandleFunc("DELETE /api/entries", server.handleEntriesDelete)
	server.mux = mux

	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if err := renderTemplate(w, "index.html", pageView{Title: "punchclock"}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleEntriesGet(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.LoadBatch(s.batch)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, storedResponse{Entries: entries})
}

func (s *Server) handleEntriesPost(w http.ResponseWriter, r *http.Request) {
	var req entriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("decode request: %v", err), http.StatusBadRequest)
		return
	}

	result, err := s.pipe.Run(req.Entries)
	if err != nil {
		// Normalized entries that fail extraction indicate a defect, not bad input.
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := entriesResponse{
		Validated:  result.Validated,
		Aggregated: result.Aggregated,
		Summaries:  output.SortSummaries(result.Summaries),
		Projects:   output.SumByProject(result.Summaries),
	}

	if entries := result.Entries(); entries != nil {
		if err := s.store.SaveBatch(s.batch, entries); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		resp.Persisted = true
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEntriesDelete(w http.ResponseWriter, r *http.Request) {
	if _, err := s.store.DeleteBatch(s.batch); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func renderTemplate(w http.ResponseWriter, name string, view any) error {
	tmpl, err := template.ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.Execute(w, view)
}
