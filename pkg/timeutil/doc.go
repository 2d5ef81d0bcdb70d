// Package timeutil provides localized time helpers for nx-misc.
//
// The process timezone is resolved once (TZ environment variable, then the
// system-local zone, then a hard-coded fallback) and carried explicitly in a
// Clock value rather than read from implicit global state. Clock also parses
// partial-precision stamps, filling the missing fields from the current time
// so that successive stamps stay monotonically increasing.
package timeutil
