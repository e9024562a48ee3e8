// Package domain defines the core domain models for proofgate.
package domain

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// AttemptIDPrefix prefixes every attempt ID.
// Format: pga-{ulid_lowercase}, 30 characters total.
const AttemptIDPrefix = "pga-"

// Attempt outcomes.
const (
	// OutcomeAccepted means the service confirmed the secret.
	OutcomeAccepted = "accepted"

	// OutcomeRejected means the service refused the secret.
	OutcomeRejected = "rejected"

	// OutcomeFailed means the solve did not reach a verdict
	// (fetch or submission error).
	OutcomeFailed = "failed"
)

// Attempt is the journaled record of one solve run. Secrets are stored
// so a past window's work can be audited; the journal lives on the
// applicant's own machine.
type Attempt struct {
	ID             string    `json:"id"`
	Fingerprint    string    `json:"fingerprint"`
	Window         int64     `json:"window"`
	Secret         string    `json:"secret"`
	RevealedSecret string    `json:"revealed_secret,omitempty"`
	Outcome        string    `json:"outcome"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewAttemptID generates a new attempt ID.
// Format: pga-{ulid_lowercase}.
func NewAttemptID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return AttemptIDPrefix + strings.ToLower(id.String()), nil
}

// ValidateAttemptID checks the pga-{ulid} format.
func ValidateAttemptID(id string) bool {
	if !strings.HasPrefix(id, AttemptIDPrefix) {
		return false
	}
	ulidPart := strings.ToUpper(id[len(AttemptIDPrefix):])
	_, err := ulid.Parse(ulidPart)
	return err == nil
}
