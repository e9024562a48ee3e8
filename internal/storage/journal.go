// Package storage provides the attempt journal for proofgate.
package storage

import (
	"context"
	"errors"

	"github.com/proofgate/proofgate-go/internal/core/domain"
)

// Common errors
var (
	ErrClosed = errors.New("journal closed")
)

// Journal records solve attempts.
//
// @design DS-0401
type Journal interface {
	// Record persists one attempt.
	Record(ctx context.Context, attempt *domain.Attempt) error

	// List returns up to limit attempts, newest first. A non-positive
	// limit returns all attempts.
	List(ctx context.Context, limit int) ([]*domain.Attempt, error)

	// Close releases the journal's resources.
	Close() error
}
