// Package client provides the HTTP client for the applicant challenge API.
package client

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/proofgate/proofgate-go/internal/core/domain"
)

var testApplicant = &domain.Applicant{Name: "Ada Lovelace", Email: "ada@example.com"}

// doubleEncode writes a payload the way the upstream service does: the
// JSON document serialized again as a JSON string.
func doubleEncode(t *testing.T, w http.ResponseWriter, payload any) {
	t.Helper()
	inner, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal inner: %v", err)
	}
	if err := json.NewEncoder(w).Encode(string(inner)); err != nil {
		t.Fatalf("encode envelope: %v", err)
	}
}

func TestNewHTTPClient_SchemeDefaulting(t *testing.T) {
	tests := []struct {
		server string
		want   string
	}{
		{"example.com", "https://example.com"},
		{"http://localhost:5080", "http://localhost:5080"},
		{"https://dev.example.app", "https://dev.example.app"},
	}

	for _, tt := range tests {
		c := NewHTTPClient(tt.server)
		if c.BaseURL() != tt.want {
			t.Errorf("NewHTTPClient(%q).BaseURL() = %q, want %q", tt.server, c.BaseURL(), tt.want)
		}
	}
}

func TestFetchChallenge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != PathGetChallenge {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var got domain.Applicant
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		if got.Name != testApplicant.Name {
			t.Errorf("request applicant_name = %q", got.Name)
		}

		doubleEncode(t, w, domain.Challenge{Instructions: "Uryyb, Jbeyq!"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	challenge, err := c.FetchChallenge(context.Background(), testApplicant)
	if err != nil {
		t.Fatalf("FetchChallenge() error = %v", err)
	}
	if challenge.Instructions != "Uryyb, Jbeyq!" {
		t.Errorf("Instructions = %q", challenge.Instructions)
	}
}

func TestFetchChallenge_WithTLSConfig(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		doubleEncode(t, w, domain.Challenge{Instructions: "uryyb"})
	}))
	defer srv.Close()

	pool := x509.NewCertPool()
	pool.AddCert(srv.Certificate())

	c := NewHTTPClient(srv.URL, WithTLSConfig(&tls.Config{RootCAs: pool}))
	challenge, err := c.FetchChallenge(context.Background(), testApplicant)
	if err != nil {
		t.Fatalf("FetchChallenge() over TLS error = %v", err)
	}
	if challenge.Instructions != "uryyb" {
		t.Errorf("Instructions = %q", challenge.Instructions)
	}
}

func TestFetchChallenge_SingleEncoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(domain.Challenge{Instructions: "uryyb"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	challenge, err := c.FetchChallenge(context.Background(), testApplicant)
	if err != nil {
		t.Fatalf("FetchChallenge() error = %v", err)
	}
	if challenge.Instructions != "uryyb" {
		t.Errorf("Instructions = %q", challenge.Instructions)
	}
}

func TestFetchChallenge_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"code": "PG-SYS-5000", "message": "boom"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	_, err := c.FetchChallenge(context.Background(), testApplicant)
	if !errors.Is(err, domain.ErrChallengeFetch) {
		t.Errorf("FetchChallenge() error = %v, want %v", err, domain.ErrChallengeFetch)
	}
}

func TestFetchChallenge_ConnectionRefused(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:1") // nothing listens here

	_, err := c.FetchChallenge(context.Background(), testApplicant)
	if !errors.Is(err, domain.ErrChallengeFetch) {
		t.Errorf("FetchChallenge() error = %v, want wrapped %v", err, domain.ErrChallengeFetch)
	}
}

func TestSubmitSolution(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != PathCheckSolution {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		var got domain.Submission
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		if got.Secret == "" {
			t.Error("submission missing secret")
		}

		doubleEncode(t, w, domain.Reveal{Secret: "the-grand-prize"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	reveal, err := c.SubmitSolution(context.Background(), &domain.Submission{
		ApplicantName: testApplicant.Name,
		Email:         testApplicant.Email,
		Secret:        "abc123",
	})
	if err != nil {
		t.Fatalf("SubmitSolution() error = %v", err)
	}
	if reveal.Secret != "the-grand-prize" {
		t.Errorf("Reveal.Secret = %q", reveal.Secret)
	}
}

func TestSubmitSolution_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"code": "PG-SUBM-4010", "message": "solution rejected"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	_, err := c.SubmitSolution(context.Background(), &domain.Submission{Secret: "wrong"})
	if !errors.Is(err, domain.ErrSolutionRejected) {
		t.Errorf("SubmitSolution() error = %v, want %v", err, domain.ErrSolutionRejected)
	}
}

func TestSubmitSolution_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	_, err := c.SubmitSolution(context.Background(), &domain.Submission{Secret: "x"})
	if !errors.Is(err, domain.ErrRateLimited) {
		t.Errorf("SubmitSolution() error = %v, want %v", err, domain.ErrRateLimited)
	}
}

func TestDecodeEnvelope_Garbage(t *testing.T) {
	var c domain.Challenge
	if err := decodeEnvelope([]byte(`"not json at all"`), &c); !errors.Is(err, domain.ErrChallengeMalformed) {
		t.Errorf("decodeEnvelope() error = %v, want %v", err, domain.ErrChallengeMalformed)
	}
}
