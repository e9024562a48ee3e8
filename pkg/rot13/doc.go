// Package rot13 provides a ROT13 transcoding stream writer.
//
// The package implements the classical ROT13 substitution cipher as an
// io.Writer wrapper: every byte written is transformed and forwarded to
// the wrapped sink in order. ROT13 is self-inverse, so the same Writer
// both encodes and decodes.
//
// Transform Rules:
//
//   - a-z: rotated 13 positions within the lowercase range
//   - A-Z: rotated 13 positions within the uppercase range
//   - everything else: passed through unchanged
//
// The Writer holds no state between writes and performs no buffering
// beyond a fixed-size transform batch, so output ordering always matches
// input ordering.
//
// @design DS-0101
// @adr AD-0101
package rot13
