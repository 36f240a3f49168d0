package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/marquee/internal/ui/overlay"
	"github.com/riordanpawley/marquee/internal/ui/statusbar"
	"github.com/riordanpawley/marquee/internal/ui/toast"
)

// View renders the current state as a string
func (m Model) View() string {
	if m.faultArmed {
		panic("diagnostic render fault")
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()

	var bottom []string
	if m.notice.Visible() {
		bottom = append(bottom, m.styles.StatusInfo.Render("✓ "+m.notice.Text()))
	}
	if toasts := toast.New(m.styles).Render(m.toasts.Toasts(), m.width); toasts != "" {
		bottom = append(bottom, toasts)
	}
	if m.mode != ModeNormal {
		bottom = append(bottom, m.styles.SearchInput.Width(m.width).Render(m.input.View()))
	}
	bottom = append(bottom, statusbar.New(m.Mode(), m.router.Path(), m.width, m.styles).Render())
	footer := lipgloss.JoinVertical(lipgloss.Left, bottom...)

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	body := fitLines(m.renderPage(), bodyHeight)

	view := header
	if body != "" {
		view += "\n" + body
	}
	view += "\n" + footer

	layer := overlay.Layer{Open: !m.overlays.IsEmpty()}
	if !layer.Open {
		return view
	}
	return layer.Render(view, m.width, m.height, m.renderOverlayBox())
}

// renderOverlayBox frames the top overlay with its title
func (m Model) renderOverlayBox() string {
	current := m.overlays.Current()
	content := current.View()
	if title := current.Title(); title != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, m.styles.OverlayTitle.Render(title), content)
	}
	width, _ := current.Size()
	if width <= 0 {
		return m.styles.Overlay.Render(content)
	}
	// Width includes the frame padding; the overlay's own width is its content
	return m.styles.Overlay.Width(width + m.styles.Overlay.GetHorizontalPadding()).Render(content)
}

// fitLines trims or pads s to exactly n lines
func fitLines(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
