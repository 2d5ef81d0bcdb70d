// Package status provides a single-line terminal status display for
// long-running operations.
//
// A Display writes to stderr and only renders when stderr is attached to an
// interactive terminal; otherwise every operation is a no-op, so callers can
// use it unconditionally in pipelines and cron jobs.
//
// # Usage
//
//	d := status.New("processing records", len(records))
//	defer d.Close()
//	for range records {
//		// ... do work ...
//		d.Tick()
//	}
//
// With a known total, Tick renders a proportional bar using eighth-block
// glyphs for sub-cell resolution plus a completed/total counter. Without a
// total, Tick shows elapsed time and the message only.
//
// Close is idempotent and restores the terminal cursor; deferring it
// guarantees the cursor comes back on panic paths too. A finalizer emits the
// cursor-show sequence for leaked displays, but Go finalizers are not prompt,
// so the deferred Close is the contract and the finalizer only a safety net.
//
// The layout assumes an 80-column terminal (79 usable); the actual terminal
// width is deliberately not queried. Displays are single-owner: two live
// displays interleave their writes and corrupt each other's line.
package status
