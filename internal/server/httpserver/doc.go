// Package httpserver provides the HTTP/HTTPS server for the practice
// verifier.
//
// This package implements the applicant-facing API using stdlib net/http:
//
//   - Challenge endpoints: /api/applicant/getChallenge,
//     /api/applicant/checkChallengeSolution
//   - Health endpoints: /health, /ready
//   - Metrics endpoint: /metrics (Prometheus format)
//
// Features:
//
//   - TLS support
//   - Middleware chain: RequestID, Recover, RateLimit
//   - Graceful shutdown with configurable timeout
//
// @req RQ-0301
// @design DS-0301
package httpserver
