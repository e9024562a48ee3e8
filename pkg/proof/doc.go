// Package proof computes time-windowed challenge secrets.
//
// A secret binds decoded challenge text to the current 30-second wall
// clock window: the Evaluator transcodes the encoded instructions through
// ROT13, appends the decimal window value, and hashes the result with
// BLAKE2b-256.
//
// Secret Format:
//
//   - 32-byte BLAKE2b digest over decoded_text || decimal_window
//   - Canonical form: 64 lowercase hex characters
//
// Determinism:
//
//   - Same instructions within one window: identical digest
//   - Across a window boundary: different digest
//
// The wall clock is the only impure input and is injectable via Clock,
// so evaluations are fully deterministic under test.
//
// @design DS-0102
// @adr AD-0101
package proof
