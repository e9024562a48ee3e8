// Package proof computes time-windowed challenge secrets.
package proof

import "time"

// Clock supplies the current wall clock time. It is the single impure
// dependency of the Evaluator; inject a fixed implementation in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock in UTC.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always reports the same instant. Test helper.
type FixedClock struct {
	T time.Time
}

// Now implements Clock.
func (c FixedClock) Now() time.Time {
	return c.T
}
