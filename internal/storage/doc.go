// Package storage provides the attempt journal for proofgate.
//
// The journal keeps a durable record of every solve attempt: the
// challenge fingerprint, the window it was bound to, the submitted
// secret, and the verdict. Two implementations exist:
//
//   - Badger: durable on-disk journal backed by Badger v3
//   - Memory: volatile journal for tests and journal-less runs
//
// @req RQ-0401
// @design DS-0401
package storage
