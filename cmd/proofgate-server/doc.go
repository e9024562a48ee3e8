// Package main provides the entry point for proofgate-server.
//
// The server is the verifier side of the applicant challenge:
//
//   - HTTP/HTTPS API issuing ROT13-encoded challenges
//   - Windowed BLAKE2b digest verification with previous-window grace
//   - Badger-backed journal of verification attempts
//   - Prometheus metrics and per-client rate limiting
//
// Usage:
//
//	proofgate-server [flags]
//	proofgate-server --config /path/to/config.yaml
//
// The server loads configuration, initializes infrastructure components,
// and starts the configured listener.
//
// @design DS-0501
package main
