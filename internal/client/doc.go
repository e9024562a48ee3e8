// Package client provides the HTTP client for the applicant challenge API.
//
// The remote service exposes two JSON-over-HTTP endpoints:
//
//   - POST /api/applicant/getChallenge
//   - POST /api/applicant/checkChallengeSolution
//
// Success responses arrive double-encoded: a JSON string whose content
// is the actual JSON document. The client unwraps both layers.
//
// @design DS-0201
package client
