package services

import "time"

// Clock supplies the engine's notion of "today" so derivations stay pure and
// testable. The production clock truncates wall time to a date in the
// configured location.
type Clock interface {
	Today() time.Time
}

type locationClock struct {
	location *time.Location
}

func NewClock(location *time.Location) Clock {
	if location == nil {
		location = time.UTC
	}
	return locationClock{location: location}
}

func (clock locationClock) Today() time.Time {
	return DateAtLocation(time.Now(), clock.location)
}

// FixedClock always reports the same day. Test helper.
type FixedClock struct {
	Day time.Time
}

func (clock FixedClock) Today() time.Time {
	return clock.Day
}
