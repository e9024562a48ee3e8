// Package service provides domain services for proofgate.
package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/proofgate/proofgate-go/internal/core/domain"
	"github.com/proofgate/proofgate-go/internal/telemetry/metric"
	"github.com/proofgate/proofgate-go/pkg/proof"
	"github.com/proofgate/proofgate-go/pkg/rot13"
)

// ChallengeAPI defines the transport interface to the verifying service.
//
// @design DS-0103
type ChallengeAPI interface {
	// FetchChallenge retrieves the encoded instructions for the applicant.
	FetchChallenge(ctx context.Context, applicant *domain.Applicant) (*domain.Challenge, error)

	// SubmitSolution delivers the computed secret and returns the reveal.
	SubmitSolution(ctx context.Context, submission *domain.Submission) (*domain.Reveal, error)
}

// AttemptJournal defines the storage interface for solve history.
//
// @design DS-0103
type AttemptJournal interface {
	// Record persists one attempt.
	Record(ctx context.Context, attempt *domain.Attempt) error
}

// SolverService orchestrates a challenge run: fetch, transcode, bind to
// the current window, hash, submit, journal.
//
// @req RQ-0103
// @design DS-0103
type SolverService struct {
	api     ChallengeAPI
	clock   proof.Clock
	journal AttemptJournal
	metrics *metric.Registry
	logger  *slog.Logger
}

// SolverServiceConfig holds optional dependencies for SolverService.
//
// @design DS-0103
type SolverServiceConfig struct {
	// Clock supplies the wall clock (default: proof.SystemClock).
	Clock proof.Clock

	// Journal records attempts. Nil disables journaling.
	Journal AttemptJournal

	// Metrics receives solve counters. Nil disables metrics.
	Metrics *metric.Registry

	// Logger for solve progress (default: slog.Default).
	Logger *slog.Logger
}

// NewSolverService creates a SolverService with the given API client and
// config. A nil config uses defaults throughout.
func NewSolverService(api ChallengeAPI, cfg *SolverServiceConfig) *SolverService {
	if cfg == nil {
		cfg = &SolverServiceConfig{}
	}

	clock := cfg.Clock
	if clock == nil {
		clock = proof.SystemClock{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &SolverService{
		api:     api,
		clock:   clock,
		journal: cfg.Journal,
		metrics: cfg.Metrics,
		logger:  logger,
	}
}

// Solve runs the full challenge pipeline for the applicant and returns
// the secret revealed by the service.
//
// @req RQ-0103
// @design DS-0103
func (s *SolverService) Solve(ctx context.Context, applicant *domain.Applicant) (*domain.Reveal, error) {
	// 1. Validate applicant identity
	if err := applicant.Validate(); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.SolveAttempts.Inc()
	}

	// 2. Fetch the encoded challenge
	challenge, err := s.api.FetchChallenge(ctx, applicant)
	if err != nil {
		if s.metrics != nil {
			s.metrics.FetchErrors.Inc()
		}
		if domain.IsDomainError(err, "") {
			return nil, err
		}
		return nil, domain.ErrChallengeFetch.WithCause(err)
	}
	if err := challenge.Validate(); err != nil {
		return nil, err
	}

	fingerprint := challenge.Fingerprint()
	s.logger.Debug("challenge fetched",
		"fingerprint", fingerprint,
		"size", len(challenge.Instructions))

	// 3. Decode and bind to the current window. The window is pinned here
	// so the journaled value matches the hashed one exactly.
	now := s.clock.Now()
	window := proof.Window(now)

	evaluator := proof.NewEvaluator(proof.FixedClock{T: now})
	digest, err := evaluator.Evaluate([]byte(challenge.Instructions))
	if err != nil {
		return nil, domain.ErrEvaluationSink.WithCause(err)
	}

	s.logger.Debug("secret computed", "fingerprint", fingerprint, "window", window)

	// 4. Submit the solution
	submission := &domain.Submission{
		ApplicantName: applicant.Name,
		Email:         applicant.Email,
		Secret:        digest.Hex(),
	}

	reveal, err := s.api.SubmitSolution(ctx, submission)
	if err != nil {
		outcome := domain.OutcomeFailed
		if domain.IsDomainError(err, "PG-SUBM-4010") {
			outcome = domain.OutcomeRejected
			if s.metrics != nil {
				s.metrics.SolveRejected.Inc()
			}
		} else if s.metrics != nil {
			s.metrics.SubmitErrors.Inc()
		}

		s.record(ctx, fingerprint, window, digest.Hex(), "", outcome, now)

		if domain.IsDomainError(err, "") {
			return nil, err
		}
		return nil, domain.ErrSubmission.WithCause(err)
	}

	if s.metrics != nil {
		s.metrics.SolveAccepted.Inc()
	}

	// 5. Journal the accepted attempt (best-effort, never fails the solve)
	s.record(ctx, fingerprint, window, digest.Hex(), reveal.Secret, domain.OutcomeAccepted, now)

	s.logger.Info("challenge solved",
		"fingerprint", fingerprint,
		"window", window)

	return reveal, nil
}

// Decode streams ROT13-transcoded bytes from r to w. Used by the local
// decode command; shares the exact transform with Solve.
func (s *SolverService) Decode(r io.Reader, w io.Writer) (int64, error) {
	tw := rot13.NewWriter(w)
	n, err := io.Copy(tw, r)
	if err != nil {
		return n, err
	}
	return n, tw.Flush()
}

// record journals an attempt. Journal failures are logged, never
// propagated; history must not jeopardize a live solve.
func (s *SolverService) record(ctx context.Context, fingerprint string, window int64, secret, revealed, outcome string, at time.Time) {
	if s.journal == nil {
		return
	}

	id, err := domain.NewAttemptID()
	if err != nil {
		s.logger.Warn("attempt id generation failed", "error", err)
		return
	}

	attempt := &domain.Attempt{
		ID:             id,
		Fingerprint:    fingerprint,
		Window:         window,
		Secret:         secret,
		RevealedSecret: revealed,
		Outcome:        outcome,
		CreatedAt:      at,
	}

	if err := s.journal.Record(ctx, attempt); err != nil {
		s.logger.Warn("journal write failed",
			"attempt_id", id,
			"error", err)
	}
}
