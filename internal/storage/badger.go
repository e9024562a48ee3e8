// Package storage provides the attempt journal for proofgate.
//
// @req RQ-0401
// @design DS-0401
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/proofgate/proofgate-go/internal/core/domain"
)

// attemptKeyPrefix prefixes every journal entry key.
const attemptKeyPrefix = "att:"

// DefaultGCInterval is the default value log GC cadence.
const DefaultGCInterval = 5 * time.Minute

// BadgerConfig configures the Badger-backed journal.
type BadgerConfig struct {
	// Dir is the on-disk data directory.
	Dir string

	// GCInterval is the value log GC cadence. Zero means DefaultGCInterval.
	GCInterval time.Duration

	// SyncWrites forces an fsync per write.
	SyncWrites bool

	// Logger is the structured logger.
	Logger *slog.Logger
}

// BadgerJournal implements Journal using Badger v3.
type BadgerJournal struct {
	db     *badger.DB
	logger *slog.Logger

	closed atomic.Bool

	// Prometheus metrics
	metricsRecorded  prometheus.Counter
	metricsLSMSize   prometheus.Gauge
	metricsVlogSize  prometheus.Gauge
	metricsTotalSize prometheus.Gauge

	// Shutdown
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewBadgerJournal opens a Badger-backed journal.
func NewBadgerJournal(cfg BadgerConfig) (*BadgerJournal, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("badger: dir is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.GCInterval <= 0 {
		cfg.GCInterval = DefaultGCInterval
	}

	// Build Badger options. The journal is small and append-mostly, so
	// conflict detection buys nothing.
	opts := badger.DefaultOptions(cfg.Dir)
	opts.Logger = &badgerLogger{logger: cfg.Logger}
	opts.SyncWrites = cfg.SyncWrites
	opts.DetectConflicts = false

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger: open db: %w", err)
	}

	j := &BadgerJournal{
		db:     db,
		logger: cfg.Logger,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}

	// Start background GC loop
	go j.gcLoop(cfg.GCInterval)

	cfg.Logger.Info("attempt journal opened",
		"dir", cfg.Dir,
		"gc_interval", cfg.GCInterval)

	return j, nil
}

// Record persists one attempt under att:{id}.
func (j *BadgerJournal) Record(ctx context.Context, attempt *domain.Attempt) error {
	if j.closed.Load() {
		return ErrClosed
	}
	if attempt == nil || attempt.ID == "" {
		return domain.ErrJournalWrite.WithDetails("attempt without id")
	}

	value, err := json.Marshal(attempt)
	if err != nil {
		return domain.ErrJournalWrite.WithCause(err)
	}

	key := []byte(attemptKeyPrefix + attempt.ID)
	err = j.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		return domain.ErrJournalWrite.WithCause(err)
	}

	if j.metricsRecorded != nil {
		j.metricsRecorded.Inc()
	}
	return nil
}

// List returns up to limit attempts, newest first.
func (j *BadgerJournal) List(ctx context.Context, limit int) ([]*domain.Attempt, error) {
	if j.closed.Load() {
		return nil, ErrClosed
	}

	var attempts []*domain.Attempt
	err := j.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(attemptKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}

			var attempt domain.Attempt
			if err := json.Unmarshal(value, &attempt); err != nil {
				// A corrupt entry must not hide the rest of the journal.
				j.logger.Warn("skipping unreadable journal entry",
					"key", string(it.Item().Key()),
					"error", err)
				continue
			}
			attempts = append(attempts, &attempt)
		}
		return nil
	})
	if err != nil {
		return nil, domain.ErrJournalRead.WithCause(err)
	}

	sort.Slice(attempts, func(a, b int) bool {
		return attempts[a].CreatedAt.After(attempts[b].CreatedAt)
	})

	if limit > 0 && len(attempts) > limit {
		attempts = attempts[:limit]
	}
	return attempts, nil
}

// GC triggers value log garbage collection.
func (j *BadgerJournal) GC(ctx context.Context) error {
	for {
		err := j.db.RunValueLogGC(0.5)
		if err != nil {
			if errors.Is(err, badger.ErrNoRewrite) {
				return nil
			}
			return fmt.Errorf("gc: %w", err)
		}
	}
}

// Close gracefully shuts down the journal.
func (j *BadgerJournal) Close() error {
	if j.closed.Swap(true) {
		return nil
	}

	// Stop GC loop
	close(j.stopCh)
	<-j.doneCh

	if err := j.db.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}

	j.logger.Info("attempt journal closed")
	return nil
}

// RegisterMetrics registers journal metrics with Prometheus.
//
// This should be called once during initialization.
// Returns the journal for method chaining.
func (j *BadgerJournal) RegisterMetrics(registry *prometheus.Registry) *BadgerJournal {
	j.metricsRecorded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "proofgate",
		Subsystem: "journal",
		Name:      "attempts_recorded_total",
		Help:      "Total attempts written to the journal",
	})

	j.metricsLSMSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "proofgate",
		Subsystem: "journal",
		Name:      "lsm_size_bytes",
		Help:      "Badger LSM tree size in bytes",
	})

	j.metricsVlogSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "proofgate",
		Subsystem: "journal",
		Name:      "value_log_size_bytes",
		Help:      "Badger value log size in bytes",
	})

	j.metricsTotalSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "proofgate",
		Subsystem: "journal",
		Name:      "total_size_bytes",
		Help:      "Badger total storage size in bytes (LSM + value log)",
	})

	registry.MustRegister(
		j.metricsRecorded,
		j.metricsLSMSize,
		j.metricsVlogSize,
		j.metricsTotalSize,
	)

	// Start metrics updater
	go j.metricsUpdateLoop()

	return j
}

// metricsUpdateLoop periodically updates Prometheus metrics.
func (j *BadgerJournal) metricsUpdateLoop() {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			lsm, vlog := j.db.Size()
			j.metricsLSMSize.Set(float64(lsm))
			j.metricsVlogSize.Set(float64(vlog))
			j.metricsTotalSize.Set(float64(lsm + vlog))

		case <-j.stopCh:
			return
		}
	}
}

// gcLoop runs periodic garbage collection.
func (j *BadgerJournal) gcLoop(interval time.Duration) {
	defer close(j.doneCh)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			if err := j.GC(ctx); err != nil {
				j.logger.Error("auto gc failed", "error", err)
			}
			cancel()

		case <-j.stopCh:
			return
		}
	}
}

// badgerLogger adapts slog.Logger to Badger's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
