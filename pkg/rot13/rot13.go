// Package rot13 provides a ROT13 transcoding stream writer.
package rot13

import "io"

// Alphabet range bounds as bytes.
const (
	lowerBegin = byte('a')
	lowerEnd   = byte('z')
	upperBegin = byte('A')
	upperEnd   = byte('Z')
)

// alphabetSize is the number of letters per case range.
const alphabetSize = 26

// rotation is the rotation distance. Half the alphabet, which is what
// makes the cipher self-inverse.
const rotation = 13

// batchSize is the size of the internal transform batch. Input is
// transformed and forwarded to the wrapped sink in batches of this many
// bytes. Not observable by callers beyond the granularity of inner writes.
const batchSize = 8

// Flusher is a sink that buffers writes and can be told to finalize them.
// bufio.Writer satisfies it; bytes.Buffer does not need to.
type Flusher interface {
	Flush() error
}

// Writer forwards bytes to an inner sink, applying the ROT13 cipher to
// alphabetic bytes before forwarding.
//
// A Writer is intended for single-use: wrap a sink, write everything,
// Flush, then take the sink back via Inner.
type Writer struct {
	inner io.Writer
}

// NewWriter creates a Writer wrapping the given sink.
func NewWriter(inner io.Writer) *Writer {
	return &Writer{inner: inner}
}

// Inner returns the wrapped sink. Callers read the transcoded result from
// it after Write and Flush complete.
func (w *Writer) Inner() io.Writer {
	return w.inner
}

// Write transforms p and forwards it to the wrapped sink.
//
// The returned count is the total number of bytes accepted by the inner
// sink. An empty p returns (0, nil) without touching the sink. Errors
// from the inner sink propagate unchanged; the Writer has no failure
// modes of its own.
func (w *Writer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	var batch [batchSize]byte
	total := 0

	for off := 0; off < len(p); off += batchSize {
		end := off + batchSize
		if end > len(p) {
			end = len(p)
		}
		chunk := p[off:end]

		for i, c := range chunk {
			switch {
			case c >= lowerBegin && c <= lowerEnd:
				batch[i] = Rotate(c, lowerBegin)
			case c >= upperBegin && c <= upperEnd:
				batch[i] = Rotate(c, upperBegin)
			default:
				batch[i] = c
			}
		}

		n, err := w.inner.Write(batch[:len(chunk)])
		total += n
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// Flush forwards the flush signal to the wrapped sink if it buffers.
// Must be called after all writes to guarantee the transcoded bytes are
// durably available in the sink.
func (w *Writer) Flush() error {
	if f, ok := w.inner.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Rotate rotates an alphabetic byte 13 positions within the 26-letter
// range starting at lower, wrapping around. Invoking it with 'a' or 'A'
// as the bound handles both cases; case is always preserved.
//
// A byte outside [lower, lower+25] is returned unchanged. Write's range
// dispatch never passes such a byte; the guard pins the invariant rather
// than serving as a reachable error path.
func Rotate(c, lower byte) byte {
	if c < lower || c > lower+alphabetSize-1 {
		return c
	}
	return (c-lower+rotation)%alphabetSize + lower
}
