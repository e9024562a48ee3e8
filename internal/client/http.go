// Package client provides the HTTP client for the applicant challenge API.
package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/proofgate/proofgate-go/internal/core/domain"
)

// API paths on the challenge service.
const (
	PathGetChallenge  = "/api/applicant/getChallenge"
	PathCheckSolution = "/api/applicant/checkChallengeSolution"
)

// DefaultTimeout bounds each request round trip.
const DefaultTimeout = 30 * time.Second

// HTTPClient talks to the challenge service.
type HTTPClient struct {
	baseURL   string
	client    *http.Client
	tlsConfig *tls.Config
}

// Option configures the HTTPClient.
type Option func(*HTTPClient)

// WithTLSConfig sets a custom TLS configuration, typically carrying a
// private CA pool from tlsroots.
func WithTLSConfig(cfg *tls.Config) Option {
	return func(c *HTTPClient) {
		c.tlsConfig = cfg
	}
}

// WithTimeout overrides the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		c.client.Timeout = d
	}
}

// NewHTTPClient creates a client for the given server address. A bare
// host gets an https:// prefix; the real service only speaks TLS, and
// local verifiers pass an explicit http:// URL.
func NewHTTPClient(server string, opts ...Option) *HTTPClient {
	baseURL := server
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	c := &HTTPClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.tlsConfig != nil {
		c.client.Transport = &http.Transport{TLSClientConfig: c.tlsConfig}
	}

	return c
}

// BaseURL returns the base URL of the client.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// FetchChallenge retrieves the encoded instructions for the applicant.
// Implements service.ChallengeAPI.
func (c *HTTPClient) FetchChallenge(ctx context.Context, applicant *domain.Applicant) (*domain.Challenge, error) {
	var challenge domain.Challenge
	if err := c.post(ctx, PathGetChallenge, applicant, &challenge); err != nil {
		if domain.IsDomainError(err, "") {
			return nil, err
		}
		return nil, domain.ErrChallengeFetch.WithCause(err)
	}
	return &challenge, nil
}

// SubmitSolution delivers the computed secret and returns the reveal.
// Implements service.ChallengeAPI.
func (c *HTTPClient) SubmitSolution(ctx context.Context, submission *domain.Submission) (*domain.Reveal, error) {
	var reveal domain.Reveal
	if err := c.post(ctx, PathCheckSolution, submission, &reveal); err != nil {
		if domain.IsDomainError(err, "") {
			return nil, err
		}
		return nil, domain.ErrSubmission.WithCause(err)
	}
	return &reveal, nil
}

// post sends a JSON POST and decodes the enveloped response into target.
func (c *HTTPClient) post(ctx context.Context, path string, body, target any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "proofgate-cli/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}

	return parseResponse(resp, path, target)
}

// parseResponse decodes a response body into target, handling error
// statuses and the service's double-encoded success payloads.
func parseResponse(resp *http.Response, path string, target any) error {
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return statusError(resp.StatusCode, path, raw)
	}

	if target == nil {
		return nil
	}
	return decodeEnvelope(raw, target)
}

// statusError maps an error status to the domain taxonomy.
func statusError(status int, path string, raw []byte) error {
	var errResp struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	detail := fmt.Sprintf("status %d", status)
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Message != "" {
		detail = fmt.Sprintf("status %d: [%s] %s", status, errResp.Code, errResp.Message)
	}

	switch {
	case status == http.StatusTooManyRequests:
		return domain.ErrRateLimited.WithDetails(detail)
	case path == PathCheckSolution && status >= 400 && status < 500:
		return domain.ErrSolutionRejected.WithDetails(detail)
	case path == PathCheckSolution:
		return domain.ErrSubmission.WithDetails(detail)
	default:
		return domain.ErrChallengeFetch.WithDetails(detail)
	}
}

// decodeEnvelope unwraps the service's response encoding. The upstream
// returns a JSON string containing JSON; local verifiers may answer
// single-encoded. Both forms decode into target.
func decodeEnvelope(raw []byte, target any) error {
	var inner string
	if err := json.Unmarshal(raw, &inner); err == nil {
		// Double-encoded: the payload is the string's content.
		if err := json.Unmarshal([]byte(inner), target); err != nil {
			return domain.ErrChallengeMalformed.WithDetails("inner document: " + err.Error())
		}
		return nil
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return domain.ErrChallengeMalformed.WithDetails(err.Error())
	}
	return nil
}
