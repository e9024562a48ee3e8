// Package domain defines the core domain models for proofgate.
package domain

import (
	"fmt"

	"github.com/spaolacci/murmur3"
)

// Challenge carries the ROT13-encoded instruction text fetched from the
// service. The bytes stay encoded until evaluation.
type Challenge struct {
	Instructions string `json:"instructions"`
}

// Validate checks that the challenge carries instructions.
func (c *Challenge) Validate() error {
	if c.Instructions == "" {
		return ErrChallengeMalformed.WithDetails("empty instructions")
	}
	return nil
}

// Fingerprint returns a short non-cryptographic hash of the instruction
// bytes, for journal keys and log fields. Never log the instructions
// themselves; the fingerprint identifies a payload without leaking it.
func (c *Challenge) Fingerprint() string {
	return fmt.Sprintf("%016x", murmur3.Sum64([]byte(c.Instructions)))
}

// Submission is the solution payload sent to the verifying service.
type Submission struct {
	ApplicantName string `json:"applicant_name"`
	Email         string `json:"email"`
	Secret        string `json:"secret"`
}

// Reveal is the service's response to a correct submission.
type Reveal struct {
	Secret string `json:"secret"`
}
