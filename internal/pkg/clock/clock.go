package clock

import "time"

// Clocker is the source of "now" for code that measures or stamps time.
type Clocker interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

// New returns the wall clock.
func New() System {
	return System{}
}

// Now implements Clocker.
func (System) Now() time.Time {
	return time.Now()
}

// Func adapts a plain function to Clocker.
type Func func() time.Time

// Now implements Clocker.
func (f Func) Now() time.Time {
	return f()
}
