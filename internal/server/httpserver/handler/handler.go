// Package handler provides HTTP request handlers for the practice
// verifier.
//
// @req RQ-0301
// @design DS-0301
package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/proofgate/proofgate-go/internal/core/domain"
	"github.com/proofgate/proofgate-go/internal/storage"
	"github.com/proofgate/proofgate-go/internal/telemetry/metric"
	"github.com/proofgate/proofgate-go/pkg/proof"
	"github.com/proofgate/proofgate-go/pkg/rot13"
)

// Config configures the verifier handler.
type Config struct {
	// ChallengeText is the plaintext revealed to successful solvers.
	ChallengeText string

	// WindowGrace also accepts digests for the previous window.
	WindowGrace bool

	// Clock supplies the verification time. Nil means SystemClock.
	Clock proof.Clock

	// Journal records verification attempts. Optional.
	Journal storage.Journal

	// Metrics is the telemetry registry. Optional.
	Metrics *metric.Registry

	// Logger for handler logging.
	Logger *slog.Logger
}

// Handler is the main HTTP handler that routes requests to appropriate
// handlers.
//
// @design DS-0301
type Handler struct {
	plaintext   string
	encoded     string
	windowGrace bool
	clock       proof.Clock
	evaluator   *proof.Evaluator
	journal     storage.Journal
	metrics     *metric.Registry
	logger      *slog.Logger
	mux         *http.ServeMux
}

// New creates a new Handler.
//
// @design DS-0301
func New(cfg *Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = proof.SystemClock{}
	}

	h := &Handler{
		plaintext:   cfg.ChallengeText,
		encoded:     encode(cfg.ChallengeText),
		windowGrace: cfg.WindowGrace,
		clock:       clock,
		evaluator:   proof.NewEvaluator(nil),
		journal:     cfg.Journal,
		metrics:     cfg.Metrics,
		logger:      logger,
		mux:         http.NewServeMux(),
	}

	h.registerRoutes()
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// registerRoutes registers all HTTP routes.
func (h *Handler) registerRoutes() {
	// Health endpoints
	h.mux.HandleFunc("GET /health", h.handleHealth)
	h.mux.HandleFunc("GET /ready", h.handleReady)

	// Challenge endpoints
	h.mux.HandleFunc("POST /api/applicant/getChallenge", h.handleGetChallenge)
	h.mux.HandleFunc("POST /api/applicant/checkChallengeSolution", h.handleCheckSolution)
}

// encode runs s through the ROT13 transcoder.
func encode(s string) string {
	var buf bytes.Buffer
	w := rot13.NewWriter(&buf)
	w.Write([]byte(s))
	return buf.String()
}

// writeEnveloped writes a success payload in the upstream wire format:
// the JSON document serialized again as a JSON string.
func (h *Handler) writeEnveloped(w http.ResponseWriter, r *http.Request, status int, payload any) {
	inner, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("failed to marshal payload", "error", err)
		h.writeError(w, r, http.StatusInternalServerError, "PG-SYS-5000", "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(string(inner)); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// writeError writes an error response.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Error-Code", code)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Code: code, Message: message})
}

// handleServiceError converts domain errors to HTTP responses.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if domain.IsDomainError(err, "") {
		code := domain.GetErrorCode(err)
		status := errorCodeToHTTPStatus(code)
		h.writeError(w, r, status, code, err.Error())
		return
	}

	// Generic internal error
	h.logger.Error("internal error", "error", err)
	h.writeError(w, r, http.StatusInternalServerError, "PG-SYS-5000", "internal server error")
}

// errorCodeToHTTPStatus maps error codes to HTTP status codes.
func errorCodeToHTTPStatus(code string) int {
	switch {
	case strings.HasSuffix(code, "-4040"):
		return http.StatusNotFound
	case strings.HasSuffix(code, "-4290"):
		return http.StatusTooManyRequests
	case strings.HasSuffix(code, "-4000"):
		return http.StatusBadRequest
	case strings.HasSuffix(code, "-4010"):
		return http.StatusUnauthorized
	case strings.HasPrefix(code, "PG-ARG-"), strings.HasPrefix(code, "PG-CONF-"):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
