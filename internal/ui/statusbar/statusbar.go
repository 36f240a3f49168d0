package statusbar

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/marquee/internal/types"
	"github.com/riordanpawley/marquee/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode   types.Mode
	route  string
	width  int
	styles *styles.Styles
}

// New creates a new StatusBar with the given mode, current route, width, and styles
func New(mode types.Mode, route string, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		route:  route,
		width:  width,
		styles: styles,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	modeBadge := sb.styles.StatusMode.Render(" " + sb.mode.String() + " ")

	parts := []string{modeBadge}
	if sb.route != "" {
		parts = append(parts, sb.styles.StatusInfo.Render(" "+sb.route+" "))
	}

	hints := GetHints(sb.mode)
	if hints != "" {
		parts = append(parts,
			sb.styles.StatusHint.Render(" │ "),
			sb.styles.StatusHint.Render(hints),
		)
	}

	content := lipgloss.JoinHorizontal(lipgloss.Left, parts...)

	// Apply status bar style and fill width
	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
