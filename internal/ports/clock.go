package ports

import "time"

// Clock supplies the current local time. The bulletin triggers, the
// verification window and the idle-read deadline are all sampled through it,
// which keeps every wait condition a plain deadline comparison and makes the
// engine fully testable with a fake clock.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock with the real time.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time { return time.Now() }
