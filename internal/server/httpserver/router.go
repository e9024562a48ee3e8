// Package httpserver provides the HTTP/HTTPS server for the practice
// verifier.
package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/proofgate/proofgate-go/internal/server/httpserver/handler"
	"github.com/proofgate/proofgate-go/internal/storage"
	"github.com/proofgate/proofgate-go/internal/telemetry/metric"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// ChallengeText is the plaintext the verifier encodes and issues.
	ChallengeText string

	// WindowGrace also accepts digests for the previous window.
	WindowGrace bool

	// Journal records verification attempts. Optional.
	Journal storage.Journal

	// Metrics is the telemetry registry. Optional.
	Metrics *metric.Registry

	// Logger for request logging.
	Logger *slog.Logger

	// MetricsEnabled exposes GET /metrics.
	MetricsEnabled bool

	// RateLimit is the per-IP request budget (requests/second).
	// Zero disables limiting.
	RateLimit float64

	// RateBurst is the per-IP burst allowance.
	RateBurst int

	// EnableAudit enables access logging for all requests.
	EnableAudit bool
}

// NewRouter creates and configures the HTTP router with all routes and
// middleware.
//
// @design DS-0301, DS-0302
func NewRouter(cfg *RouterConfig) http.Handler {
	h := handler.New(&handler.Config{
		ChallengeText: cfg.ChallengeText,
		WindowGrace:   cfg.WindowGrace,
		Journal:       cfg.Journal,
		Metrics:       cfg.Metrics,
		Logger:        cfg.Logger,
	})

	// Build middleware chain for the applicant API
	// Order: Recover -> RequestID -> RateLimit -> Audit -> Handler
	apiMiddlewares := []Middleware{
		Recover(cfg.Logger),
		RequestID(),
	}
	if cfg.RateLimit > 0 {
		apiMiddlewares = append(apiMiddlewares, RateLimit(cfg.RateLimit, cfg.RateBurst))
	}
	if cfg.EnableAudit {
		apiMiddlewares = append(apiMiddlewares, Audit(cfg.Logger))
	}
	apiHandler := Chain(h, apiMiddlewares...)

	mux := http.NewServeMux()

	// Challenge endpoints
	mux.Handle("POST /api/applicant/getChallenge", apiHandler)
	mux.Handle("POST /api/applicant/checkChallengeSolution", apiHandler)

	// Health endpoints - never rate limited
	healthHandler := Chain(h, Recover(cfg.Logger), RequestID())
	mux.Handle("GET /health", healthHandler)
	mux.Handle("GET /ready", healthHandler)

	// Metrics endpoint
	if cfg.MetricsEnabled && cfg.Metrics != nil {
		mux.Handle("GET /metrics", Chain(cfg.Metrics.Handler(), Recover(cfg.Logger), RequestID()))
	}

	return mux
}

// DefaultRouterConfig returns default router configuration.
func DefaultRouterConfig() *RouterConfig {
	return &RouterConfig{
		WindowGrace:    true,
		MetricsEnabled: true,
		RateLimit:      5,
		RateBurst:      10,
		EnableAudit:    true,
	}
}
