// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"fmt"
	"net/http"

	"github.com/equiscore/equiscore/internal/adapters/intake"
)

// TemplateHandler handles intake template downloads.
type TemplateHandler struct {
	deps Dependencies
}

// NewTemplateHandler creates a new template handler.
func NewTemplateHandler(deps Dependencies) *TemplateHandler {
	return &TemplateHandler{deps: deps}
}

// HandleGetTemplate handles GET /template?format=F requests.
func (h *TemplateHandler) HandleGetTemplate(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_template"

	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	format, err := intake.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown_format", WrapKind(op, ErrBadRequest, err))
		return
	}

	name, contentType, data, err := h.deps.Template(format)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
