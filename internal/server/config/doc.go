// Package config provides server configuration for the practice verifier.
//
// This package defines the server configuration structure and validation:
//
//   - spec.go: ServerConfig struct definition
//   - default.go: Default configuration values
//   - verify.go: Business validation (addresses, paths, window grace)
//   - sanitize.go: Log sanitization (hide the challenge plaintext)
//
// Configuration is loaded via internal/infra/confloader and supports
// multiple sources: files, environment variables, and flags.
//
// @req RQ-0502
// @design DS-0502
package config
