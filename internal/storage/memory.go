// Package storage provides the attempt journal for proofgate.
package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/proofgate/proofgate-go/internal/core/domain"
)

// MemoryJournal implements Journal in process memory.
//
// Used in tests and when no data directory is configured. Nothing
// survives process exit.
type MemoryJournal struct {
	mu       sync.RWMutex
	attempts []*domain.Attempt
	closed   bool
}

// NewMemoryJournal creates an empty in-memory journal.
func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{}
}

// Record persists one attempt.
func (j *MemoryJournal) Record(ctx context.Context, attempt *domain.Attempt) error {
	if attempt == nil || attempt.ID == "" {
		return domain.ErrJournalWrite.WithDetails("attempt without id")
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.closed {
		return ErrClosed
	}

	// Copy so later caller mutations do not reach the journal.
	stored := *attempt
	j.attempts = append(j.attempts, &stored)
	return nil
}

// List returns up to limit attempts, newest first.
func (j *MemoryJournal) List(ctx context.Context, limit int) ([]*domain.Attempt, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if j.closed {
		return nil, ErrClosed
	}

	out := make([]*domain.Attempt, len(j.attempts))
	for i, a := range j.attempts {
		copied := *a
		out[i] = &copied
	}

	sort.Slice(out, func(a, b int) bool {
		return out[a].CreatedAt.After(out[b].CreatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Close marks the journal closed.
func (j *MemoryJournal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.closed = true
	return nil
}
