// Package domain defines the core domain models for proofgate.
//
// Domain models are pure value objects without IO dependencies or
// framework coupling. This package contains:
//
//   - Applicant: identity attached to a challenge run
//   - Challenge: encoded instructions fetched from the service
//   - Submission / Reveal: the secret exchange with the service
//   - Attempt: journaled record of one solve
//   - Errors: domain-specific error definitions
//
// @req RQ-0101
// @design DS-0101
package domain
