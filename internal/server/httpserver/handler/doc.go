// Package handler provides HTTP request handlers for the practice
// verifier.
//
// The verifier mirrors the upstream challenge service: it issues a
// ROT13-encoded challenge and checks submitted time-windowed digests.
// Success payloads are double-encoded (a JSON string containing JSON)
// to match the upstream wire format the client expects.
//
// @req RQ-0301
// @design DS-0301
package handler
