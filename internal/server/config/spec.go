// Package config defines the server configuration structure.
package config

import "time"

// ServerConfig is the root configuration for proofgate-server.
type ServerConfig struct {
	Server    ServerSection    `koanf:"server"`
	Challenge ChallengeSection `koanf:"challenge"`
	Storage   StorageSection   `koanf:"storage"`
	Telemetry TelemetrySection `koanf:"telemetry"`
	Log       LogSection       `koanf:"log"`
}

// ServerSection configures server endpoints.
type ServerSection struct {
	HTTP HTTPConfig `koanf:"http"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Addr        string `koanf:"addr"`
	TLSCertFile string `koanf:"tls_cert_file"`
	TLSKeyFile  string `koanf:"tls_key_file"`
}

// ChallengeSection configures the challenge the verifier issues.
type ChallengeSection struct {
	// Text is the plaintext the server encodes before issuing it.
	// Solvers must submit the digest of this text plus the window.
	Text string `koanf:"text"`

	// WindowGrace also accepts digests computed in the window
	// immediately before the current one, absorbing clock skew and
	// submissions that straddle a window boundary.
	WindowGrace bool `koanf:"window_grace"`
}

// StorageSection configures storage behavior.
type StorageSection struct {
	DataDir string `koanf:"data_dir"`

	// GCInterval is how often the value log garbage collector runs.
	GCInterval time.Duration `koanf:"gc_interval"`
}

// TelemetrySection configures metrics and request limits.
type TelemetrySection struct {
	// MetricsEnabled exposes Prometheus metrics on GET /metrics.
	MetricsEnabled bool `koanf:"metrics_enabled"`

	// RateLimit is the per-client request budget in requests per
	// second. Zero disables limiting.
	RateLimit float64 `koanf:"rate_limit"`

	// RateBurst is the per-client burst allowance.
	RateBurst int `koanf:"rate_burst"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
