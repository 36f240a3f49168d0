package upload

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/marquee/internal/domain"
	"github.com/riordanpawley/marquee/internal/ui/styles"
)

// Styles holds the widget styles
type Styles struct {
	DropZone       lipgloss.Style
	DropZoneActive lipgloss.Style
	DropZoneError  lipgloss.Style
	FileName       lipgloss.Style
	FileMeta       lipgloss.Style
	Hint           lipgloss.Style
	Key            lipgloss.Style
	ErrorText      lipgloss.Style
	Notice         lipgloss.Style
}

// NewStyles creates the widget styles from the shared palette
func NewStyles() *Styles {
	zone := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Surface2).
		Padding(1, 2).
		Align(lipgloss.Center)

	return &Styles{
		DropZone:       zone,
		DropZoneActive: zone.BorderForeground(styles.Blue).Border(lipgloss.DoubleBorder()),
		DropZoneError:  zone.BorderForeground(styles.Red),
		FileName:       lipgloss.NewStyle().Foreground(styles.Text).Bold(true),
		FileMeta:       lipgloss.NewStyle().Foreground(styles.Subtext0),
		Hint:           lipgloss.NewStyle().Foreground(styles.Overlay1),
		Key:            lipgloss.NewStyle().Foreground(styles.Yellow).Bold(true),
		ErrorText:      lipgloss.NewStyle().Foreground(styles.Red),
		Notice:         lipgloss.NewStyle().Foreground(styles.Base).Background(styles.Green).Padding(0, 1),
	}
}

// View renders the widget for its current state
func (w *Widget) View() string {
	inner := w.width - 6
	var zone string

	switch w.state {
	case StateDragActive:
		zone = w.styles.DropZoneActive.Width(inner).Render(
			w.styles.FileName.Render("Release to upload"),
		)

	case StateHolding:
		d := *w.held
		lines := []string{
			w.styles.FileName.Render(d.Name),
			w.styles.FileMeta.Render(domain.FormatSize(d.SizeBytes) + " · " + d.MimeType),
		}
		if d.PreviewURI != "" {
			lines = append(lines, w.styles.Hint.Render(d.PreviewURI))
		}
		lines = append(lines, w.keyHint("d", "remove"))
		zone = w.styles.DropZone.Width(inner).Render(strings.Join(lines, "\n"))

	case StateError:
		zone = w.styles.DropZoneError.Width(inner).Render(
			w.styles.ErrorText.Render(w.lastErr.Error()) + "\n" +
				w.styles.Hint.Render("Try another file"),
		)

	default:
		zone = w.styles.DropZone.Width(inner).Render(
			"Drag a file here\n" +
				w.keyHint("f", "type a path") + "  " + w.keyHint("v", "paste from clipboard"),
		)
	}

	var b strings.Builder
	b.WriteString(zone)
	if hint := w.constraintsHint(); hint != "" {
		b.WriteString("\n")
		b.WriteString(w.styles.Hint.Render(hint))
	}
	if w.inputActive {
		b.WriteString("\n")
		b.WriteString(w.pathInput.View())
	}
	if w.notice.Visible() {
		b.WriteString("\n")
		b.WriteString(w.styles.Notice.Render(w.notice.Text()))
	}
	return b.String()
}

func (w *Widget) keyHint(key, label string) string {
	return w.styles.Key.Render(key) + " " + w.styles.Hint.Render(label)
}

func (w *Widget) constraintsHint() string {
	var parts []string
	if len(w.constraints.Accept) > 0 {
		parts = append(parts, strings.Join(w.constraints.Accept, ", "))
	}
	if w.constraints.MaxSizeBytes > 0 {
		parts = append(parts, "up to "+domain.FormatSize(w.constraints.MaxSizeBytes))
	}
	return strings.Join(parts, " · ")
}
