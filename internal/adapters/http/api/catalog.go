// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// catalogEntry mirrors the OpenAPI schema for GET /catalog.
type catalogEntry struct {
	Key        string     `json:"key"`
	Label      string     `json:"label"`
	Direction  string     `json:"direction"`
	Thresholds [4]float64 `json:"thresholds"`
}

// CatalogHandler handles grading grid requests.
type CatalogHandler struct {
	deps Dependencies
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(deps Dependencies) *CatalogHandler {
	return &CatalogHandler{deps: deps}
}

// HandleGetCatalog handles GET /catalog requests.
func (h *CatalogHandler) HandleGetCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	defs := h.deps.Catalog()
	entries := make([]catalogEntry, 0, len(defs))
	for _, d := range defs {
		entries = append(entries, catalogEntry{
			Key:        d.Key,
			Label:      d.Label,
			Direction:  d.Direction.String(),
			Thresholds: d.Cuts,
		})
	}
	writeJSON(w, http.StatusOK, entries)
}
