package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/nxdevel/nx-misc/internal/config"
)

// Semantic colors using ANSI codes for broad terminal compatibility.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorMuted   lipgloss.Color = "8" // Gray (bright black)
)

// Unicode status symbols.
const (
	SymbolSuccess = "✓"
	SymbolFail    = "✗"
)

// colorsEnabled is resolved once per invocation by configureColors.
var colorsEnabled = true

// configureColors decides whether styled output is used, from the
// --no-color flag, the config file, NO_COLOR, and the terminal profile.
func configureColors(cfg *config.Config) {
	switch {
	case noColor, cfg.Output.Color == "never", termenv.EnvNoColor():
		colorsEnabled = false
	case cfg.Output.Color == "always":
		colorsEnabled = true
	default:
		colorsEnabled = termenv.ColorProfile() != termenv.Ascii
	}
}

// styled renders s in the given color, or plain when colors are disabled.
func styled(c lipgloss.Color, s string) string {
	if !colorsEnabled {
		return s
	}
	return lipgloss.NewStyle().Foreground(c).Render(s)
}

// renderError formats an error for terminal display. Structured errors
// already carry their own layout; plain errors get the failure symbol.
func renderError(err error) string {
	msg := err.Error()
	if strings.HasPrefix(msg, SymbolFail) {
		return styled(ColorError, msg)
	}
	return styled(ColorError, SymbolFail+" "+msg)
}
