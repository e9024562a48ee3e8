// Package service provides domain services for proofgate.
//
// Domain services contain the solve orchestration and define interfaces
// for their transport and storage dependencies. They hold no IO of their
// own beyond what those interfaces supply.
//
// @req RQ-0103
// @design DS-0103
package service
