// Package config defines the server configuration structure.
package config

import "time"

// Default configuration values.
const (
	DefaultHTTPAddr  = "127.0.0.1:5080"
	DefaultHTTPSAddr = "127.0.0.1:5443"

	DefaultChallengeText = "congratulations, you decoded the practice challenge"

	DefaultDataDir    = "/var/lib/proofgate-server/data"
	DefaultGCInterval = 5 * time.Minute

	DefaultRateLimit = 5.0
	DefaultRateBurst = 10

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			HTTP: HTTPConfig{
				Addr: DefaultHTTPAddr,
			},
		},
		Challenge: ChallengeSection{
			Text:        DefaultChallengeText,
			WindowGrace: true,
		},
		Storage: StorageSection{
			DataDir:    DefaultDataDir,
			GCInterval: DefaultGCInterval,
		},
		Telemetry: TelemetrySection{
			MetricsEnabled: true,
			RateLimit:      DefaultRateLimit,
			RateBurst:      DefaultRateBurst,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
