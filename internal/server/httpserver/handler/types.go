// Package handler provides HTTP request handlers for the practice
// verifier.
package handler

// ErrorResponse is the standard error response format.
//
// @design DS-0301
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is the response body for GET /health and GET /ready.
//
// @design DS-0301
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}
