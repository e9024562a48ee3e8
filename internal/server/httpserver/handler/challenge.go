// Package handler provides HTTP request handlers for the practice
// verifier.
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/proofgate/proofgate-go/internal/core/domain"
	"github.com/proofgate/proofgate-go/pkg/proof"
)

// handleGetChallenge handles POST /api/applicant/getChallenge.
//
// The response carries the ROT13-encoded challenge text, double-encoded
// like the upstream service.
//
// @design DS-0301
func (h *Handler) handleGetChallenge(w http.ResponseWriter, r *http.Request) {
	var applicant domain.Applicant
	if err := json.NewDecoder(r.Body).Decode(&applicant); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "PG-ARG-1001", "invalid request body")
		return
	}

	if err := applicant.Validate(); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	challenge := domain.Challenge{Instructions: h.encoded}

	if h.metrics != nil {
		h.metrics.ChallengesIssued.Inc()
	}
	h.logger.Info("challenge issued",
		"applicant", applicant.Name,
		"fingerprint", challenge.Fingerprint())

	h.writeEnveloped(w, r, http.StatusOK, challenge)
}

// handleCheckSolution handles POST /api/applicant/checkChallengeSolution.
//
// The submitted secret must be the digest of the decoded challenge text
// plus the current window. With window grace enabled, the previous
// window's digest is also accepted.
//
// @design DS-0301
func (h *Handler) handleCheckSolution(w http.ResponseWriter, r *http.Request) {
	var submission domain.Submission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "PG-ARG-1001", "invalid request body")
		return
	}
	if submission.Secret == "" {
		h.writeError(w, r, http.StatusBadRequest, "PG-ARG-1001", "secret is required")
		return
	}

	encoded := []byte(h.encoded)
	now := h.clock.Now()

	// 1. Check the current window
	window := proof.Window(now)
	accepted := h.evaluator.Verify(encoded, submission.Secret, now)

	// 2. Fall back to the previous window when grace is enabled
	if !accepted && h.windowGrace {
		prev := now.Add(-time.Duration(proof.WindowQuantum) * time.Second)
		if h.evaluator.Verify(encoded, submission.Secret, prev) {
			accepted = true
			window = proof.Window(prev)
		}
	}

	// 3. Journal the verdict
	outcome := domain.OutcomeRejected
	if accepted {
		outcome = domain.OutcomeAccepted
	}
	h.record(r, &submission, window, outcome)

	// 4. Respond
	if !accepted {
		if h.metrics != nil {
			h.metrics.SolutionsRejected.Inc()
		}
		h.logger.Info("solution rejected",
			"applicant", submission.ApplicantName,
			"window", window)
		h.writeError(w, r, http.StatusUnauthorized, "PG-SUBM-4010", "solution rejected")
		return
	}

	if h.metrics != nil {
		h.metrics.SolutionsAccepted.Inc()
	}
	h.logger.Info("solution accepted",
		"applicant", submission.ApplicantName,
		"window", window)

	h.writeEnveloped(w, r, http.StatusOK, domain.Reveal{Secret: h.plaintext})
}

// record journals a verification attempt. Failures are logged, never
// surfaced to the client.
func (h *Handler) record(r *http.Request, submission *domain.Submission, window int64, outcome string) {
	if h.journal == nil {
		return
	}

	id, err := domain.NewAttemptID()
	if err != nil {
		h.logger.Warn("failed to generate attempt id", "error", err)
		return
	}

	challenge := domain.Challenge{Instructions: h.encoded}
	attempt := &domain.Attempt{
		ID:          id,
		Fingerprint: challenge.Fingerprint(),
		Window:      window,
		Secret:      submission.Secret,
		Outcome:     outcome,
		CreatedAt:   time.Now().UTC(),
	}

	if err := h.journal.Record(r.Context(), attempt); err != nil {
		h.logger.Warn("failed to journal attempt",
			"attempt_id", id,
			"error", err)
	}
}
