package adapter

import "time"

// Clock abstracts the current time for overdue checks, due-date stamping and
// cycle close, so tests can drive time explicitly.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
