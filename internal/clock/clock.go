// Package clock provides an abstraction for time operations to improve testability.
// Score reports carry a generation timestamp; routing it through the Clock
// interface keeps evaluation deterministic, since a frozen clock reproduces
// byte-identical reports for identical snapshots.
package clock

import "time"

// Clock is an interface for time operations.
// This allows code to be tested with mock clocks.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the actual system time.
// Times are returned in UTC so serialized reports are timezone-independent.
type RealClock struct{}

// Now returns the current UTC time from the system clock.
func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed implements Clock with a constant time. It is shared by tests and by
// any caller that needs reproducible report timestamps.
type Fixed struct {
	At time.Time
}

// Now returns the fixed time.
func (f Fixed) Now() time.Time {
	return f.At
}

// Ensure both implementations satisfy Clock.
var (
	_ Clock = RealClock{}
	_ Clock = Fixed{}
)
