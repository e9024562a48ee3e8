// Package main provides the entry point for proofgate-server.
//
// proofgate-server is a self-hosted verifier for the applicant
// challenge: it issues ROT13-encoded instructions and checks the
// windowed BLAKE2b digests applicants submit.
//
// @design DS-0501
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/proofgate/proofgate-go/internal/infra/buildinfo"
	"github.com/proofgate/proofgate-go/internal/infra/confloader"
	"github.com/proofgate/proofgate-go/internal/infra/shutdown"
	"github.com/proofgate/proofgate-go/internal/infra/tlsroots"
	"github.com/proofgate/proofgate-go/internal/server/config"
	"github.com/proofgate/proofgate-go/internal/server/httpserver"
	"github.com/proofgate/proofgate-go/internal/storage"
	"github.com/proofgate/proofgate-go/internal/telemetry/logger"
	"github.com/proofgate/proofgate-go/internal/telemetry/metric"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse command line flags
	var (
		configFile  = flag.String("config", "", "Path to configuration file")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	// Show version and exit
	if *showVersion {
		fmt.Printf("proofgate-server %s\n", buildinfo.String())
		return nil
	}

	// Load configuration
	cfg, err := loadConfig(*configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Initialize logger
	log, slogLogger, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	log.Info("starting proofgate-server",
		"version", buildinfo.Version,
		"commit", buildinfo.Commit,
		"config", *configFile)

	// Initialize telemetry registry
	metrics := metric.NewRegistry()

	// Open the attempt journal
	journal, err := initJournal(cfg, metrics, slogLogger)
	if err != nil {
		return fmt.Errorf("init journal: %w", err)
	}

	// Build the HTTP router
	router := httpserver.NewRouter(&httpserver.RouterConfig{
		ChallengeText:  cfg.Challenge.Text,
		WindowGrace:    cfg.Challenge.WindowGrace,
		Journal:        journal,
		Metrics:        metrics,
		Logger:         slogLogger,
		MetricsEnabled: cfg.Telemetry.MetricsEnabled,
		RateLimit:      cfg.Telemetry.RateLimit,
		RateBurst:      cfg.Telemetry.RateBurst,
		EnableAudit:    true,
	})

	httpServer := httpserver.New(cfg.Server.HTTP.Addr, router)

	// Watch the certificate pair so rotations are picked up live
	useTLS := cfg.Server.HTTP.TLSCertFile != "" && cfg.Server.HTTP.TLSKeyFile != ""
	var certWatcher *tlsroots.Watcher
	if useTLS {
		certWatcher, err = tlsroots.NewWatcher(cfg.Server.HTTP.TLSCertFile, cfg.Server.HTTP.TLSKeyFile)
		if err != nil {
			return fmt.Errorf("load TLS certificate: %w", err)
		}
		certWatcher.StartAsync()
		httpServer.UseCertificateSource(certWatcher.GetCertificate)
	}

	// Setup graceful shutdown
	shutdownHandler := shutdown.NewHandler(30 * time.Second)

	// Register shutdown hooks (reverse order of startup)
	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down HTTP server")
		return httpServer.Shutdown(ctx)
	})

	if certWatcher != nil {
		shutdownHandler.OnShutdown(func(ctx context.Context) error {
			certWatcher.Stop()
			return nil
		})
	}

	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("closing attempt journal")
		return journal.Close()
	})

	// Start HTTP server in goroutine
	go func() {
		log.Info("HTTP server listening",
			"addr", cfg.Server.HTTP.Addr,
			"tls", useTLS)

		var err error
		if useTLS {
			err = httpServer.ListenAndServeTLS("", "")
		} else {
			err = httpServer.ListenAndServe()
		}

		if err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	// Wait for shutdown signal
	log.Info("server started, press Ctrl+C to stop")
	if err := shutdownHandler.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig loads configuration from file and environment.
func loadConfig(configFile string) (*config.ServerConfig, error) {
	// Start with defaults
	cfg := config.Default()

	// Create loader with optional config file
	opts := []confloader.Option{}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	loader := confloader.NewLoader(opts...)

	// Load and unmarshal
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	// Validate configuration
	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// initLogger initializes the structured logger.
// Returns both the logger interface and slog.Logger for components that need it.
func initLogger(cfg *config.ServerConfig) (logger.Logger, *slog.Logger, error) {
	// Create logger with redaction
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	if err != nil {
		return nil, nil, err
	}

	// Set as default logger
	logger.SetDefault(log)

	// Create a standard slog.Logger for components that need it
	slogLogger := slog.Default()

	return log, slogLogger, nil
}

// initJournal opens the Badger-backed attempt journal and registers its
// metrics with the telemetry registry.
func initJournal(cfg *config.ServerConfig, metrics *metric.Registry, log *slog.Logger) (*storage.BadgerJournal, error) {
	journal, err := storage.NewBadgerJournal(storage.BadgerConfig{
		Dir:        cfg.Storage.DataDir,
		GCInterval: cfg.Storage.GCInterval,
		SyncWrites: true,
		Logger:     log,
	})
	if err != nil {
		return nil, err
	}

	if cfg.Telemetry.MetricsEnabled {
		journal.RegisterMetrics(metrics.Prometheus())
	}
	return journal, nil
}
