// Package server exposes the generation pipeline over HTTP.
//
// Endpoints:
//
//	GET  /healthz       - liveness probe
//	POST /api/diagram   - render a diagram, returns text and artifacts
//	POST /api/export    - export a diagram as an Archi XML model
//	POST /api/validate  - structural validation without rendering
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/archigen/archigen/pkg/errors"
	"github.com/archigen/archigen/pkg/model"
	"github.com/archigen/archigen/pkg/pipeline"
)

// Server wires the pipeline runner into an HTTP handler.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// New creates a Server. A nil logger falls back to the default logger.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger}
}

// Handler builds the route tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/diagram", s.handleDiagram)
		r.Post("/export", s.handleExport)
		r.Post("/validate", s.handleValidate)
	})
	return r
}

// ListenAndServe runs the server until the context is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// diagramResponse is the body of a successful /api/diagram call.
// Artifact bytes are base64-encoded by the JSON marshaller.
type diagramResponse struct {
	DiagramHash string             `json:"diagram_hash"`
	Text        string             `json:"text"`
	Artifacts   map[string][]byte  `json:"artifacts,omitempty"`
	Warnings    []string           `json:"warnings,omitempty"`
	Stats       pipelineStats      `json:"stats"`
	Cache       pipeline.CacheInfo `json:"cache"`
}

type pipelineStats struct {
	ElementCount      int    `json:"element_count"`
	RelationshipCount int    `json:"relationship_count"`
	RenderTime        string `json:"render_time"`
	ExportTime        string `json:"export_time,omitempty"`
	RasterTime        string `json:"raster_time,omitempty"`
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	req, d, ok := s.decodeDiagram(w, r)
	if !ok {
		return
	}

	result, err := s.runner.Execute(r.Context(), d, req.Options)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, diagramResponse{
		DiagramHash: result.DiagramHash,
		Text:        result.Text,
		Artifacts:   result.Artifacts,
		Warnings:    result.Warnings,
		Stats: pipelineStats{
			ElementCount:      result.Stats.ElementCount,
			RelationshipCount: result.Stats.RelationshipCount,
			RenderTime:        result.Stats.RenderTime.String(),
			ExportTime:        durationOrEmpty(result.Stats.ExportTime),
			RasterTime:        durationOrEmpty(result.Stats.RasterTime),
		},
		Cache: result.CacheInfo,
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	req, d, ok := s.decodeDiagram(w, r)
	if !ok {
		return
	}

	data, err := s.runner.Export(r.Context(), d, req.Options)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	_, d, ok := s.decodeDiagram(w, r)
	if !ok {
		return
	}

	issues := d.Validate()
	writeJSON(w, http.StatusOK, map[string]any{
		"valid":  len(issues) == 0,
		"issues": issues,
	})
}

// decodeDiagram parses and builds the request diagram, writing the
// error response itself on failure.
func (s *Server) decodeDiagram(w http.ResponseWriter, r *http.Request) (*DiagramRequest, *model.Diagram, bool) {
	var req DiagramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed request body"))
		return nil, nil, false
	}

	d, err := req.Diagram()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil, nil, false
	}
	return &req, d, true
}

// statusFor maps error codes onto HTTP statuses. Anything caused by
// the request body is a 400, the rest is a 500.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidID, errors.ErrCodeInvalidLayer,
		errors.ErrCodeInvalidType, errors.ErrCodeInvalidRelation, errors.ErrCodeInvalidDirection,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidTheme, errors.ErrCodeDuplicateID,
		errors.ErrCodeDangling, errors.ErrCodeSelfRelation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}

func durationOrEmpty(d time.Duration) string {
	if d == 0 {
		return ""
	}
	return d.String()
}
