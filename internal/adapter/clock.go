package adapter

import "time"

// Clock defines an interface for time operations to enable mocking
//
//go:generate mockgen -source=clock.go -destination=../mocks/clock.go -package=mocks -mock_names=Clock=MockClock
type Clock interface {
	Now() time.Time
	// NowMillis is the engine's logical clock: unix milliseconds,
	// monotonically non-decreasing within a process.
	NowMillis() int64
	Since(t time.Time) time.Duration
}

// RealClock implements Clock using the standard time package
type RealClock struct{}

// NewClock creates a new real clock implementation
func NewClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

func (c *RealClock) NowMillis() int64 {
	return time.Now().UnixMilli()
}

func (c *RealClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}
