package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/etnz/positions"
	"github.com/etnz/positions/export"
	"github.com/etnz/positions/pipeline"
	"github.com/etnz/positions/renderer"
	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":   "healthy",
		"analyses": s.store.Len(),
	})
}

// handleCreate runs the pipeline on the uploaded 'file' form field. The optional 'mode'
// field overrides the default mode.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("cannot read upload: %v", err))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "missing spreadsheet in form field 'file'")
		return
	}
	defer file.Close()

	runner := s.runner
	if m := r.FormValue("mode"); m != "" {
		if runner.Mode, err = pipeline.ParseMode(m); err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	a, err := runner.RunReader(file)
	if err != nil {
		s.log.Warn().Err(err).Str("file", header.Filename).Msg("analysis failed")
		s.writeError(w, statusOf(err), err.Error())
		return
	}

	id := s.store.Put(a)
	w.Header().Set("Location", "/api/analyses/"+id)
	s.writeJSON(w, http.StatusCreated, struct {
		ID       string              `json:"id"`
		Analysis *positions.Analysis `json:"analysis"`
	}{id, a})
}

// handleGet returns the analysis as JSON, or the result of the JSONPath query 'q'.
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	a, ok := s.lookup(w, r)
	if !ok {
		return
	}
	q := r.URL.Query().Get("q")
	if q == "" {
		s.writeJSON(w, http.StatusOK, a)
		return
	}
	v, err := a.Query(q)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	a, ok := s.lookup(w, r)
	if !ok {
		return
	}
	html, err := ReportHTML(a)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(html)
}

func (s *Server) handleXLSX(w http.ResponseWriter, r *http.Request) {
	a, ok := s.lookup(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, a); err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeFile(w, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "analisi_portafoglio.xlsx", buf.Bytes())
}

func (s *Server) handlePDF(w http.ResponseWriter, r *http.Request) {
	a, ok := s.lookup(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := export.WritePDF(&buf, a, s.now()); err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeFile(w, "application/pdf", "sintesi_portafoglio.pdf", buf.Bytes())
}

// lookup returns the analysis of the {id} parameter, or writes a 404.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*positions.Analysis, bool) {
	a, ok := s.store.Get(chi.URLParam(r, "id"))
	if !ok {
		s.writeError(w, http.StatusNotFound, "analysis not found or expired")
	}
	return a, ok
}

// statusOf maps pipeline errors to HTTP statuses: input that cannot be analyzed is
// unprocessable, anything else is on the server.
func statusOf(err error) int {
	var se *positions.SchemaError
	switch {
	case errors.As(err, &se), errors.Is(err, positions.ErrNoIdentifier):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// ReportHTML renders the summary and the flagged positions of 'a' as an HTML page.
func ReportHTML(a *positions.Analysis) ([]byte, error) {
	var md bytes.Buffer
	md.WriteString(renderer.SummaryMarkdown(a))
	md.WriteString("\n")
	md.WriteString(renderer.PositionsMarkdown("Positions", a.Positions))
	for _, f := range a.Summary.Flags {
		if len(f.Positions) > 0 {
			md.WriteString("\n")
			md.WriteString(renderer.PositionsMarkdown(f.Name, f.Positions))
		}
	}

	var body bytes.Buffer
	gm := goldmark.New(goldmark.WithExtensions(extension.Table))
	if err := gm.Convert(md.Bytes(), &body); err != nil {
		return nil, fmt.Errorf("cannot render report: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>Portfolio Analysis</title></head><body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body></html>\n")
	return page.Bytes(), nil
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// writeError writes an error response
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{
		"error": message,
	})
}

func (s *Server) writeFile(w http.ResponseWriter, contentType, name string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
