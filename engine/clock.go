package engine

import "time"

// Clock provides the current time with monotonic readings
// Injected so tests can script frame timing
type Clock interface {
	Now() time.Time
}

// SystemClock is the real monotonic clock
type SystemClock struct{}

// Now returns the current time with monotonic clock reading
func (SystemClock) Now() time.Time {
	return time.Now()
}

// MockClock is a manually advanced clock for tests
type MockClock struct {
	t time.Time
}

// NewMockClock starts a mock clock at an arbitrary fixed instant
func NewMockClock() *MockClock {
	return &MockClock{t: time.Unix(1000, 0)}
}

// Now returns the mock's current instant
func (c *MockClock) Now() time.Time {
	return c.t
}

// Advance moves the mock clock forward
func (c *MockClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}
