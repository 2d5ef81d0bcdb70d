package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nxerrors "github.com/nxdevel/nx-misc/internal/errors"
)

func fixedClock(t *testing.T, zone string, at time.Time) Clock {
	t.Helper()
	loc, err := time.LoadLocation(zone)
	require.NoError(t, err)
	c := NewClock(loc)
	c.now = func() time.Time { return at }
	return c
}

func TestLocalZoneNeverNil(t *testing.T) {
	require.NotNil(t, LocalZone())
}

func TestLocalZoneFromEnv(t *testing.T) {
	t.Setenv("TZ", "Europe/Berlin")
	assert.Equal(t, "Europe/Berlin", LocalZone().String())
}

func TestLocalZoneIgnoresBadEnv(t *testing.T) {
	t.Setenv("TZ", "Not/AZone")
	require.NotNil(t, LocalZone())
}

func TestLoadZone(t *testing.T) {
	loc, err := LoadZone("America/New_York")
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())
}

func TestLoadZoneUnknown(t *testing.T) {
	_, err := LoadZone("Mars/OlympusMons")
	require.Error(t, err)
	assert.True(t, nxerrors.IsCode(err, nxerrors.ErrConfig))
}

func TestNewClockNilLocation(t *testing.T) {
	c := NewClock(nil)
	require.NotNil(t, c.Location())
}

func TestClockNow(t *testing.T) {
	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	c := fixedClock(t, "America/Detroit", at)

	now := c.Now()
	assert.Equal(t, "America/Detroit", now.Location().String())
	assert.True(t, now.Equal(at), "Now converts the instant, not the wall clock")
	assert.Equal(t, 8, now.Hour(), "12:00 UTC is 08:00 in Detroit (EDT)")
}

func TestClockLocalize(t *testing.T) {
	loc, err := time.LoadLocation("America/Detroit")
	require.NoError(t, err)
	c := NewClock(loc)

	naive := time.Date(2026, 8, 30, 14, 30, 5, 123, time.UTC)
	local := c.Localize(naive)

	// Wall-clock fields are kept; only the zone changes.
	assert.Equal(t, 14, local.Hour())
	assert.Equal(t, 30, local.Minute())
	assert.Equal(t, 5, local.Second())
	assert.Equal(t, 123, local.Nanosecond())
	assert.Equal(t, "America/Detroit", local.Location().String())
}

func TestParseStampEmpty(t *testing.T) {
	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	c := fixedClock(t, "UTC", at)

	got, err := c.ParseStamp("")
	require.NoError(t, err)
	assert.True(t, got.Equal(at))
}

func TestParseStampDateOnly(t *testing.T) {
	at := time.Date(2026, 8, 30, 14, 35, 7, 900, time.UTC)
	c := fixedClock(t, "UTC", at)

	got, err := c.ParseStamp("2026-01-15")
	require.NoError(t, err)

	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 15, got.Day())
	// Time of day filled from now.
	assert.Equal(t, 14, got.Hour())
	assert.Equal(t, 35, got.Minute())
	assert.Equal(t, 7, got.Second())
	assert.Equal(t, 900, got.Nanosecond())
}

func TestParseStampToMinute(t *testing.T) {
	at := time.Date(2026, 8, 30, 14, 35, 7, 900, time.UTC)
	c := fixedClock(t, "UTC", at)

	got, err := c.ParseStamp("2026-01-15T09:30")
	require.NoError(t, err)

	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 30, got.Minute())
	// Seconds and below filled from now.
	assert.Equal(t, 7, got.Second())
	assert.Equal(t, 900, got.Nanosecond())
}

func TestParseStampToSecond(t *testing.T) {
	at := time.Date(2026, 8, 30, 14, 35, 7, 900, time.UTC)
	c := fixedClock(t, "UTC", at)

	got, err := c.ParseStamp("2026-01-15T09:30:45")
	require.NoError(t, err)

	assert.Equal(t, 45, got.Second())
	assert.Equal(t, 900, got.Nanosecond())
}

func TestParseStampLocalized(t *testing.T) {
	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	c := fixedClock(t, "America/Detroit", at)

	got, err := c.ParseStamp("2026-01-15")
	require.NoError(t, err)
	assert.Equal(t, "America/Detroit", got.Location().String())
}

func TestParseStampInvalid(t *testing.T) {
	c := fixedClock(t, "UTC", time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		name string
		arg  string
	}{
		{"garbage", "not-a-date"},
		{"bad month ten chars", "2026-13-01"},
		{"bad minute sixteen chars", "2026-01-15T09:61"},
		{"truncated", "2026-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.ParseStamp(tt.arg)
			require.Error(t, err)
			assert.True(t, nxerrors.IsCode(err, nxerrors.ErrParse))
		})
	}
}
