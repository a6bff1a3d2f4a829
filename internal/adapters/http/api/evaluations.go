// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/equiscore/equiscore/internal/adapters/intake"
	"github.com/equiscore/equiscore/internal/adapters/report"
	"github.com/equiscore/equiscore/internal/adapters/repository"
	"github.com/equiscore/equiscore/internal/domain/indicator"
	"github.com/equiscore/equiscore/internal/domain/scorecard"
)

// Uploaded indicator files are small; 4 MiB leaves ample headroom.
const maxUploadBytes = 4 << 20

// EvaluationsHandler handles evaluation requests.
type EvaluationsHandler struct {
	deps     Dependencies
	maxLimit int
}

// NewEvaluationsHandler creates a new evaluations handler.
func NewEvaluationsHandler(deps Dependencies, maxLimit int) *EvaluationsHandler {
	return &EvaluationsHandler{
		deps:     deps,
		maxLimit: maxLimit,
	}
}

// HandleEvaluations handles POST /evaluations and GET /evaluations?limit=N.
func (h *EvaluationsHandler) HandleEvaluations(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handleCreate(w, r)
	case http.MethodGet:
		h.handleList(w, r)
	default:
		http.NotFound(w, r)
	}
}

// HandleEvaluationByID handles the /evaluations/ subtree:
// POST /evaluations/import, GET /evaluations/{id} and
// GET /evaluations/{id}/export?format=F.
func (h *EvaluationsHandler) HandleEvaluationByID(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_evaluation"

	path := strings.TrimPrefix(r.URL.Path, "/evaluations/")
	if path == "import" {
		h.handleImport(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	if id, ok := strings.CutSuffix(path, "/export"); ok {
		h.handleExport(w, r, id)
		return
	}
	if path == "" || strings.Contains(path, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	ev, err := h.deps.Get(r.Context(), path)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

func (h *EvaluationsHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_evaluation"

	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	ev, err := h.deps.Evaluate(r.Context(), req.toRequest())
	if err != nil {
		writeEvaluationError(w, op, err)
		return
	}
	writeJSON(w, http.StatusCreated, ev)
}

func (h *EvaluationsHandler) handleImport(w http.ResponseWriter, r *http.Request) {
	const op = "api.import_evaluation"

	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	defer file.Close()

	format, err := intake.FormatForFilename(header.Filename)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown_format", WrapKind(op, ErrBadRequest, err))
		return
	}

	ev, err := h.deps.EvaluateFile(r.Context(), file, format)
	if err != nil {
		if errors.Is(err, intake.ErrMalformedFile) || errors.Is(err, intake.ErrBadValue) {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		writeEvaluationError(w, op, err)
		return
	}
	writeJSON(w, http.StatusCreated, ev)
}

func (h *EvaluationsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_evaluations"

	limitStr := r.URL.Query().Get("limit")
	n, err := strconv.Atoi(limitStr)
	if err != nil || n < 1 {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	if n > h.maxLimit {
		writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
		return
	}
	summaries, err := h.deps.List(r.Context(), n)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (h *EvaluationsHandler) handleExport(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.export_evaluation"

	format, err := report.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown_format", WrapKind(op, ErrBadRequest, err))
		return
	}

	name, contentType, data, err := h.deps.Export(r.Context(), id, format)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// writeEvaluationError translates domain evaluation failures to HTTP codes.
func writeEvaluationError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, indicator.ErrUnknownIndicator):
		writeError(w, http.StatusBadRequest, "unknown_indicator", err)
	case errors.Is(err, scorecard.ErrMissingIndicator):
		writeError(w, http.StatusBadRequest, "missing_indicator", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}
