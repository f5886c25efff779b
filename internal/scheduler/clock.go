package scheduler

import "time"

// Clock abstracts wall-clock time so the engine's "not in the past" rule
// can be exercised deterministically in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the current UTC time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }
