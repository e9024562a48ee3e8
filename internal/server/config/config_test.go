// Package config defines the server configuration structure.
package config

import (
	"os"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Check server defaults
	if cfg.Server.HTTP.Addr != DefaultHTTPAddr {
		t.Errorf("HTTP.Addr = %q, want %q", cfg.Server.HTTP.Addr, DefaultHTTPAddr)
	}

	// Check challenge defaults
	if cfg.Challenge.Text != DefaultChallengeText {
		t.Errorf("Challenge.Text = %q, want %q", cfg.Challenge.Text, DefaultChallengeText)
	}
	if !cfg.Challenge.WindowGrace {
		t.Error("WindowGrace should be enabled by default")
	}

	// Check storage defaults
	if cfg.Storage.DataDir != DefaultDataDir {
		t.Errorf("DataDir = %q, want %q", cfg.Storage.DataDir, DefaultDataDir)
	}
	if cfg.Storage.GCInterval != DefaultGCInterval {
		t.Errorf("GCInterval = %v, want %v", cfg.Storage.GCInterval, DefaultGCInterval)
	}

	// Check telemetry defaults
	if !cfg.Telemetry.MetricsEnabled {
		t.Error("Metrics should be enabled by default")
	}
	if cfg.Telemetry.RateLimit != DefaultRateLimit {
		t.Errorf("RateLimit = %v, want %v", cfg.Telemetry.RateLimit, DefaultRateLimit)
	}
	if cfg.Telemetry.RateBurst != DefaultRateBurst {
		t.Errorf("RateBurst = %d, want %d", cfg.Telemetry.RateBurst, DefaultRateBurst)
	}

	// Check log defaults
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, DefaultLogLevel)
	}
	if cfg.Log.Format != DefaultLogFormat {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, DefaultLogFormat)
	}
}

func TestSanitize(t *testing.T) {
	cfg := &ServerConfig{
		Challenge: ChallengeSection{
			Text: "the secret plaintext nobody should see in logs",
		},
	}

	sanitized := Sanitize(cfg)

	// Original should be unchanged
	if cfg.Challenge.Text != "the secret plaintext nobody should see in logs" {
		t.Error("Original config should not be modified")
	}

	// Sanitized should mask the text
	if sanitized.Challenge.Text == cfg.Challenge.Text {
		t.Error("Sanitized config should mask the challenge text")
	}

	// Should preserve first 2 and last 2 characters
	if len(sanitized.Challenge.Text) != len(cfg.Challenge.Text) {
		t.Errorf("Masked text length = %d, want %d", len(sanitized.Challenge.Text), len(cfg.Challenge.Text))
	}
}

func TestSanitize_EmptyText(t *testing.T) {
	cfg := &ServerConfig{}

	sanitized := Sanitize(cfg)

	if sanitized.Challenge.Text != "" {
		t.Error("Empty text should remain empty")
	}
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a", "****"},
		{"ab", "****"},
		{"abc", "****"},
		{"abcd", "****"},
		{"abcde", "ab*de"},
		{"abcdef", "ab**ef"},
		{"1234567890", "12******90"},
	}

	for _, tt := range tests {
		result := maskSecret(tt.input)
		if result != tt.expected {
			t.Errorf("maskSecret(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestVerify_ValidConfig(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	cfg.Storage.DataDir = dir

	if err := Verify(cfg); err != nil {
		t.Errorf("Verify failed: %v", err)
	}
}

func TestVerify_EmptyAddr(t *testing.T) {
	cfg := Default()
	cfg.Storage.DataDir = t.TempDir()
	cfg.Server.HTTP.Addr = ""

	if err := Verify(cfg); err == nil {
		t.Error("Expected error for empty server.http.addr")
	}
}

func TestVerify_MismatchedTLS(t *testing.T) {
	cfg := Default()
	cfg.Storage.DataDir = t.TempDir()
	cfg.Server.HTTP.TLSCertFile = "/path/to/cert.pem"

	if err := Verify(cfg); err == nil {
		t.Error("Expected error for cert without key")
	}
}

func TestVerify_EmptyChallengeText(t *testing.T) {
	cfg := Default()
	cfg.Storage.DataDir = t.TempDir()
	cfg.Challenge.Text = ""

	if err := Verify(cfg); err == nil {
		t.Error("Expected error for empty challenge.text")
	}
}

func TestVerify_EmptyDataDir(t *testing.T) {
	cfg := Default()
	cfg.Storage.DataDir = ""

	if err := Verify(cfg); err == nil {
		t.Error("Expected error for empty data_dir")
	}
}

func TestVerify_NegativeRateLimit(t *testing.T) {
	cfg := Default()
	cfg.Storage.DataDir = t.TempDir()
	cfg.Telemetry.RateLimit = -1

	if err := Verify(cfg); err == nil {
		t.Error("Expected error for negative rate limit")
	}
}

func TestVerify_RateLimitWithoutBurst(t *testing.T) {
	cfg := Default()
	cfg.Storage.DataDir = t.TempDir()
	cfg.Telemetry.RateLimit = 5
	cfg.Telemetry.RateBurst = 0

	if err := Verify(cfg); err == nil {
		t.Error("Expected error for rate limit without burst")
	}
}

func TestVerify_CreateDataDir(t *testing.T) {
	dir := t.TempDir()
	newDir := dir + "/subdir/data"

	cfg := Default()
	cfg.Storage.DataDir = newDir

	if err := Verify(cfg); err != nil {
		t.Errorf("Verify failed: %v", err)
	}

	// Check directory was created
	if _, err := os.Stat(newDir); os.IsNotExist(err) {
		t.Error("Data directory should have been created")
	}
}

func TestConstants(t *testing.T) {
	// Verify constants are as expected
	if DefaultHTTPAddr != "127.0.0.1:5080" {
		t.Errorf("DefaultHTTPAddr = %q", DefaultHTTPAddr)
	}
	if DefaultHTTPSAddr != "127.0.0.1:5443" {
		t.Errorf("DefaultHTTPSAddr = %q", DefaultHTTPSAddr)
	}
	if DefaultLogLevel != "info" {
		t.Errorf("DefaultLogLevel = %q", DefaultLogLevel)
	}
	if DefaultLogFormat != "json" {
		t.Errorf("DefaultLogFormat = %q", DefaultLogFormat)
	}
}
