package timeutil

import (
	"os"
	"time"

	"github.com/nxdevel/nx-misc/internal/errors"
)

// FallbackZone is used when the local timezone cannot be resolved.
const FallbackZone = "America/Detroit"

// LocalZone resolves the process timezone: the TZ environment variable if
// set and loadable, then the system-local zone, then FallbackZone. UTC is
// the zone of last resort so callers always get a usable location.
func LocalZone() *time.Location {
	if name := os.Getenv("TZ"); name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	if loc, err := time.LoadLocation("Local"); err == nil {
		return loc
	}
	if loc, err := time.LoadLocation(FallbackZone); err == nil {
		return loc
	}
	return time.UTC
}

// LoadZone loads a named timezone, returning a structured error suitable
// for surfacing to the user when the name is not in the zone database.
func LoadZone(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Unknown timezone: "+name,
			"Use an IANA zone name like America/New_York or Europe/Berlin")
	}
	return loc, nil
}

// Clock produces localized times for a fixed location.
// The zero value is not usable; construct with NewClock.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// NewClock creates a clock for the given location.
// A nil location falls back to LocalZone.
func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = LocalZone()
	}
	return Clock{loc: loc, now: time.Now}
}

// Location returns the clock's location.
func (c Clock) Location() *time.Location {
	return c.loc
}

// Now returns the current time in the clock's location.
func (c Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Localize reinterprets the wall-clock fields of t in the clock's location.
// This is the treatment for naive stamps: the fields are kept and the zone
// is attached, not converted.
func (c Clock) Localize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), c.loc)
}
