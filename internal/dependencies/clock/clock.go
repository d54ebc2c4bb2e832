package clock

import "time"

// Clock supplies wall time for timestamps and elapsed time for run durations
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// SystemClock reads the system clock
type SystemClock struct{}

// New creates a SystemClock
func New() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time in UTC, dropping the monotonic reading
// so stored timestamps compare equal after a round trip.
func (c *SystemClock) Now() time.Time {
	return time.Now().UTC().Round(0)
}

// Since returns the time elapsed since t
func (c *SystemClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}
