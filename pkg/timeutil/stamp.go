package timeutil

import (
	"time"

	"github.com/nxdevel/nx-misc/internal/errors"
)

// Stamp layouts by input length. Fields absent from the input are filled
// from the current time, which keeps successive stamps monotonically
// increasing when the input only narrows the date or the minute.
const (
	layoutDate   = "2006-01-02"          // 10 chars
	layoutMinute = "2006-01-02T15:04"    // 16 chars
	layoutSecond = "2006-01-02T15:04:05" // full precision
)

// ParseStamp parses a partial-precision stamp in the clock's location.
// An empty stamp returns the current localized time.
//
//	"2026-08-30"          - date only, time of day from now
//	"2026-08-30T14:05"    - to the minute, seconds from now
//	"2026-08-30T14:05:09" - to the second, subseconds from now
func (c Clock) ParseStamp(arg string) (time.Time, error) {
	now := c.Now()
	if arg == "" {
		return now, nil
	}

	layout := layoutSecond
	switch len(arg) {
	case len(layoutDate):
		layout = layoutDate
	case len(layoutMinute):
		layout = layoutMinute
	}

	parsed, err := time.ParseInLocation(layout, arg, c.loc)
	if err != nil {
		return time.Time{}, errors.WrapWithCode(err, errors.ErrParse,
			"'"+arg+"' doesn't look like a valid stamp",
			"Use YYYY-MM-DD, YYYY-MM-DDTHH:MM, or YYYY-MM-DDTHH:MM:SS")
	}

	switch layout {
	case layoutDate:
		return time.Date(parsed.Year(), parsed.Month(), parsed.Day(),
			now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), c.loc), nil
	case layoutMinute:
		return time.Date(parsed.Year(), parsed.Month(), parsed.Day(),
			parsed.Hour(), parsed.Minute(), now.Second(), now.Nanosecond(), c.loc), nil
	default:
		return time.Date(parsed.Year(), parsed.Month(), parsed.Day(),
			parsed.Hour(), parsed.Minute(), parsed.Second(), now.Nanosecond(), c.loc), nil
	}
}
