package command

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/proofgate/proofgate-go/internal/client"
	"github.com/proofgate/proofgate-go/internal/core/domain"
)

// mockService emulates the challenge service: it hands out a fixed
// encoded challenge and accepts any well-formed secret.
type mockService struct {
	*httptest.Server

	// instructions is the encoded text returned by getChallenge.
	instructions string

	// rejectAll makes checkChallengeSolution refuse every submission.
	rejectAll bool

	// lastSubmission records the most recent submission body.
	lastSubmission *domain.Submission
}

func newMockService(t *testing.T) *mockService {
	t.Helper()
	m := &mockService{instructions: "Uryyb, Jbeyq!"}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case client.PathGetChallenge:
			writeDoubleEncoded(t, w, domain.Challenge{Instructions: m.instructions})
		case client.PathCheckSolution:
			var sub domain.Submission
			if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
				t.Errorf("decode submission: %v", err)
			}
			m.lastSubmission = &sub

			if m.rejectAll || len(sub.Secret) != 64 {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{
					"code": "PG-SUBM-4010", "message": "solution rejected",
				})
				return
			}
			writeDoubleEncoded(t, w, domain.Reveal{Secret: "the-grand-prize"})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(m.Server.Close)
	return m
}

// writeDoubleEncoded serializes payload the way the upstream service
// does: a JSON document wrapped again as a JSON string.
func writeDoubleEncoded(t *testing.T, w http.ResponseWriter, payload any) {
	t.Helper()
	inner, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal inner: %v", err)
	}
	if err := json.NewEncoder(w).Encode(string(inner)); err != nil {
		t.Fatalf("encode envelope: %v", err)
	}
}

// captureStdout runs fn and returns everything it wrote to stdout.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()

	w.Close()
	os.Stdout = oldStdout

	buf := make([]byte, 0, 4096)
	tmp := make([]byte, 1024)
	for {
		n, readErr := r.Read(tmp)
		buf = append(buf, tmp[:n]...)
		if readErr != nil {
			break
		}
	}
	return string(buf), runErr
}
