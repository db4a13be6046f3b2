package interfaces

import "time"

// Clock supplies the current time to components that need a timestamp
// fallback. Isolating the read behind an interface keeps record assembly a
// pure function of its inputs under test.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }
