// Package metric provides Prometheus metrics for proofgate.
package metric

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}
	if r.Prometheus() == nil {
		t.Error("Prometheus() returned nil")
	}
}

func TestRegistry_CountersRegistered(t *testing.T) {
	r := NewRegistry()

	r.SolveAttempts.Inc()
	r.SolveAccepted.Inc()
	r.SolutionsRejected.Inc()

	families, err := r.Prometheus().Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	found := make(map[string]bool)
	for _, f := range families {
		found[f.GetName()] = true
	}

	for _, name := range []string{
		"proofgate_solver_attempts_total",
		"proofgate_solver_accepted_total",
		"proofgate_solver_rejected_total",
		"proofgate_solver_fetch_errors_total",
		"proofgate_solver_submit_errors_total",
		"proofgate_verifier_challenges_issued_total",
		"proofgate_verifier_solutions_accepted_total",
		"proofgate_verifier_solutions_rejected_total",
	} {
		if !found[name] {
			t.Errorf("metric %s not registered", name)
		}
	}
}

func TestRegistry_Handler(t *testing.T) {
	r := NewRegistry()
	r.ChallengesIssued.Inc()

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("GET /metrics status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "proofgate_verifier_challenges_issued_total 1") {
		t.Error("exposition missing incremented counter")
	}
}
