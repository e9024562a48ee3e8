// Package metric provides Prometheus metrics for proofgate.
//
// This package implements metrics collection and exposition:
//
//   - Solver counters: attempts, accepted, rejected, transport errors
//   - Verifier counters: challenges issued, solutions accepted/rejected
//
// Metrics are exposed at /metrics by the practice verifier in Prometheus
// format; the CLI registers the same counters when journaling is active.
//
// @req RQ-0403
// @design DS-0402
package metric
