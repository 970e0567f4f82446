// Package clock provides ports.Clock implementations.
package clock

import "time"

// System reads the wall clock in the configured zone.
type System struct {
	loc *time.Location
}

// NewSystem returns a clock reporting times in loc. A nil zone means UTC.
func NewSystem(loc *time.Location) System {
	if loc == nil {
		loc = time.UTC
	}
	return System{loc: loc}
}

func (c System) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed always reports the same instant. Used in tests and for replaying a
// dashboard as of a given time.
type Fixed time.Time

func (c Fixed) Now() time.Time {
	return time.Time(c)
}
