// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/equiscore/equiscore/internal/adapters/intake"
	"github.com/equiscore/equiscore/internal/adapters/report"
	"github.com/equiscore/equiscore/internal/adapters/repository"
	"github.com/equiscore/equiscore/internal/app"
	"github.com/equiscore/equiscore/internal/domain/indicator"
	"github.com/equiscore/equiscore/internal/domain/scorecard"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Evaluate grades a request and persists the result.
	Evaluate(ctx context.Context, req scorecard.Request) (Evaluation, error)

	// EvaluateFile parses an uploaded indicator file and grades it.
	EvaluateFile(ctx context.Context, r io.Reader, format intake.Format) (Evaluation, error)

	// Read operations expose stored evaluations.
	Get(ctx context.Context, id string) (Evaluation, error)
	List(ctx context.Context, limit int) ([]repository.Summary, error)

	// Export renders a stored evaluation as a downloadable report.
	Export(ctx context.Context, id string, format report.Format) (name, contentType string, data []byte, err error)

	// Template returns a blank intake file.
	Template(format intake.Format) (name, contentType string, data []byte, err error)

	// Catalog returns the grading grid definitions.
	Catalog() []indicator.Definition
}

// Evaluation mirrors the read shape returned by evaluation queries.
type Evaluation = app.Evaluation

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	evaluationsHandler *EvaluationsHandler
	catalogHandler     *CatalogHandler
	templateHandler    *TemplateHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLimit int) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		evaluationsHandler: NewEvaluationsHandler(deps, maxLimit),
		catalogHandler:     NewCatalogHandler(deps),
		templateHandler:    NewTemplateHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/catalog", MetricsMiddleware(s.catalogHandler.HandleGetCatalog, "catalog"))
	mux.HandleFunc("/template", MetricsMiddleware(s.templateHandler.HandleGetTemplate, "template"))
	mux.HandleFunc("/evaluations", MetricsMiddleware(s.evaluationsHandler.HandleEvaluations, "evaluations"))
	mux.HandleFunc("/evaluations/", MetricsMiddleware(s.evaluationsHandler.HandleEvaluationByID, "evaluations"))
}

// evaluateRequest mirrors the OpenAPI schema for POST /evaluations.
type evaluateRequest struct {
	Company    string             `json:"company"`
	Year       int                `json:"year"`
	Indicators map[string]float64 `json:"indicators"`
	Ages       agesPayload        `json:"age_distribution"`
}

type agesPayload struct {
	Under30        float64 `json:"under_30"`
	Between30And50 float64 `json:"between_30_50"`
	Over50         float64 `json:"over_50"`
}

func (e evaluateRequest) validate() error {
	switch {
	case strings.TrimSpace(e.Company) == "":
		return errors.New("missing company")
	case e.Year <= 0:
		return errors.New("missing year")
	case len(e.Indicators) == 0:
		return errors.New("missing indicators")
	}
	return nil
}

func (e evaluateRequest) toRequest() scorecard.Request {
	return scorecard.Request{
		Company:    e.Company,
		Year:       e.Year,
		Indicators: e.Indicators,
		Ages: scorecard.AgeDistribution{
			Under30:        e.Ages.Under30,
			Between30And50: e.Ages.Between30And50,
			Over50:         e.Ages.Over50,
		},
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
