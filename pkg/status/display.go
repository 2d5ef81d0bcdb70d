package status

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
)

// Terminal escape sequences, emitted verbatim.
const (
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
	clearLine  = "\x1b[K"
)

// pendingElapsed is the fixed-width placeholder shown before the first tick.
const pendingElapsed = "[-:--:--.--] "

// barPhases is the eighth-block glyph ramp. Index 0 is blank, 1-8 are
// increasingly full partial blocks; the last is the full-cell glyph used
// for completely filled positions.
var barPhases = []rune{' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉', '█'}

// Layout constants. The terminal is assumed to be 80 columns (79 usable);
// barOverhead covers the elapsed stamp, brackets, separators, and counter.
// Intentionally not derived from the real terminal size.
const (
	assumedColumns = 79
	barOverhead    = 38
	maxMessageLen  = 39
	shortMessage   = 36
)

// Display renders a single in-place status line on stderr.
// Construct with New; the zero value is a permanently closed no-op.
type Display struct {
	origMsg     string
	msg         string
	total       int
	ticks       int
	width       int
	start       time.Time
	out         io.Writer
	now         func() time.Time
	interactive bool
	closed      bool
}

// New creates a status display for the given message. A positive total
// enables the proportional bar and counter; zero means indeterminate.
// Interactivity is probed from the real stderr at construction; when stderr
// is not a terminal the display is inert for its entire life.
func New(message string, total int) *Display {
	return newDisplay(os.Stderr, stderrIsTerminal(), message, total, time.Now)
}

// newDisplay is the injectable constructor used by tests.
func newDisplay(out io.Writer, interactive bool, message string, total int, now func() time.Time) *Display {
	if !interactive {
		return &Display{closed: true}
	}

	d := &Display{
		origMsg:     strings.TrimSpace(message),
		total:       total,
		out:         out,
		now:         now,
		interactive: true,
	}
	d.start = now()

	fmt.Fprint(out, hideCursor+pendingElapsed+d.origMsg)

	d.msg = d.origMsg
	if runes := []rune(d.origMsg); len(runes) > maxMessageLen {
		d.msg = string(runes[:shortMessage]) + "..."
	}
	d.width = assumedColumns - (len([]rune(d.msg)) + barOverhead)

	// Leaked displays would otherwise leave the cursor hidden.
	runtime.SetFinalizer(d, (*Display).finalize)
	return d
}

// Tick records one unit of completed work and redraws the line.
// No-op once closed or when the display was never interactive.
// Ticks past the total are capped, not an error.
func (d *Display) Tick() {
	if d.closed {
		return
	}

	var b strings.Builder
	b.WriteString(hideCursor)
	b.WriteString("\r")
	b.WriteString(clearLine)
	b.WriteString("[")
	b.WriteString(formatElapsed(d.now().Sub(d.start)))
	b.WriteString("] ")

	if d.total > 0 {
		if d.ticks < d.total {
			d.ticks++
		}
		d.renderBar(&b)
	} else {
		// No bar to make room for, so the full message fits.
		b.WriteString(d.origMsg)
	}

	fmt.Fprint(d.out, b.String())
}

// renderBar appends the truncated message, the proportional bar, and the
// counter. When the message leaves no room for a bar, the bar region is
// omitted entirely and only the counter follows the message.
func (d *Display) renderBar(b *strings.Builder) {
	b.WriteString(d.msg)

	if d.width > 0 {
		ramp := len(barPhases) // 9: blank + 8 fill levels
		weighted := d.width * d.ticks
		filled := weighted / d.total
		phase := ramp*weighted/d.total - ramp*filled

		b.WriteString(" |")
		for i := 0; i < filled; i++ {
			b.WriteRune(barPhases[ramp-1])
		}
		partial := 0
		if phase > 0 {
			b.WriteRune(barPhases[phase])
			partial = 1
		}
		if pad := d.width - filled - partial; pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString("|")
	}

	b.WriteString(" ")
	b.WriteString(d.counter())
}

// counter formats the completed/total counter, collapsing to the count
// alone once the total is reached.
func (d *Display) counter() string {
	s := "[" + strconv.Itoa(d.ticks)
	if d.ticks != d.total {
		s += "/" + strconv.Itoa(d.total)
	}
	return s + "]"
}

// Close finalizes the line with the total elapsed time and the full
// original message, and restores the cursor. Idempotent; only the first
// call writes anything.
func (d *Display) Close() {
	if d.closed {
		return
	}
	d.closed = true
	runtime.SetFinalizer(d, nil)

	var b strings.Builder
	b.WriteString("\r")
	b.WriteString(clearLine)
	b.WriteString("[")
	b.WriteString(formatElapsed(d.now().Sub(d.start)))
	b.WriteString("] ")
	b.WriteString(d.origMsg)

	if d.total > 0 && d.ticks > 0 {
		b.WriteString(" ")
		b.WriteString(d.counter())
	}

	b.WriteString(showCursor)
	b.WriteString("\n")
	fmt.Fprint(d.out, b.String())
}

// Done is a named alias for Close, for call sites not using defer.
func (d *Display) Done() {
	d.Close()
}

// finalize is the last-resort cursor restore for displays that were never
// closed. It re-probes stderr because finalization can run long after
// construction. Best-effort only: Go finalizers are not prompt and nothing
// should rely on this instead of Close.
func (d *Display) finalize() {
	if d.closed {
		return
	}
	if stderrIsTerminal() {
		fmt.Fprint(os.Stderr, showCursor)
	}
}

// stderrIsTerminal reports whether stderr is attached to an interactive
// terminal, probed fresh from the real file descriptor.
func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// formatElapsed renders a duration as H:MM:SS.cc (centisecond precision,
// truncated).
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	cs := int64(d / (10 * time.Millisecond))
	secs := cs / 100
	cs %= 100
	return fmt.Sprintf("%d:%02d:%02d.%02d",
		secs/3600, (secs/60)%60, secs%60, cs)
}
