// Package handler provides HTTP request handlers for the practice
// verifier.
package handler

import (
	"encoding/json"
	"net/http"
	"time"
)

// handleHealth handles GET /health.
//
// @design DS-0301
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeHealth(w, "healthy")
}

// handleReady handles GET /ready.
//
// @design DS-0301
func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	h.writeHealth(w, "ready")
}

// writeHealth writes a plain (single-encoded) health document.
func (h *Handler) writeHealth(w http.ResponseWriter, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(HealthResponse{
		Status: status,
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}
