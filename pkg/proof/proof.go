// Package proof computes time-windowed challenge secrets.
package proof

import (
	"bytes"
	"crypto/subtle"
	"encoding/hex"
	"strconv"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/proofgate/proofgate-go/pkg/rot13"
)

// WindowQuantum is the width of a validity window in seconds. Every
// window value is a multiple of it.
const WindowQuantum int64 = 30

// Window returns the most recent window boundary at or before t, as Unix
// seconds. Defined for non-negative timestamps only; behavior before the
// epoch is unspecified.
func Window(t time.Time) int64 {
	secs := t.Unix()
	return secs - secs%WindowQuantum
}

// Digest is a 256-bit challenge secret.
type Digest [blake2b.Size256]byte

// Hex returns the canonical lowercase hex form, 64 characters. This is
// the value transmitted to the verifying service.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// String implements fmt.Stringer.
func (d Digest) String() string {
	return d.Hex()
}

// Evaluator turns encoded challenge instructions into a time-windowed
// secret. Stateless across evaluations; safe for concurrent use.
type Evaluator struct {
	clock Clock
}

// NewEvaluator creates an Evaluator. A nil clock means SystemClock.
func NewEvaluator(clock Clock) *Evaluator {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Evaluator{clock: clock}
}

// Evaluate decodes the instructions, binds them to the current window,
// and returns the digest.
//
// The pipeline:
//  1. Write the encoded bytes through a fresh ROT13 writer into a fresh
//     buffer, then flush.
//  2. Append the decimal window value for the clock's current time.
//  3. Hash the complete buffer with BLAKE2b-256.
//
// Only a sink write or flush failure can surface here; with the internal
// in-memory buffer that does not occur, but the error path is kept for
// the contract's sake.
func (e *Evaluator) Evaluate(encoded []byte) (Digest, error) {
	// 1. Transcode into a fresh buffer
	var buf bytes.Buffer
	w := rot13.NewWriter(&buf)
	if _, err := w.Write(encoded); err != nil {
		return Digest{}, err
	}
	if err := w.Flush(); err != nil {
		return Digest{}, err
	}

	// 2. Append the decimal window value. Fresh read on every evaluation,
	// never cached.
	window := Window(e.clock.Now())
	buf.WriteString(strconv.FormatInt(window, 10))

	// 3. Hash decoded text + window digits
	return blake2b.Sum256(buf.Bytes()), nil
}

// Verify reports whether secretHex is the digest of the given encoded
// instructions in the window containing t. Comparison is constant-time.
func (e *Evaluator) Verify(encoded []byte, secretHex string, t time.Time) bool {
	fixed := &Evaluator{clock: FixedClock{T: t}}
	d, err := fixed.Evaluate(encoded)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(d.Hex()), []byte(secretHex)) == 1
}
