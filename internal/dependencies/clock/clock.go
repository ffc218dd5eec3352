// Package clock abstracts the wall clock so registration and login
// timestamps can be pinned in tests.
package clock

import "time"

// Clock is the source of the current time
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock
type RealClock struct{}

// New creates a RealClock
func New() *RealClock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}
