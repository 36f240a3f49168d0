package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Layer draws a rendered box centered over base content.
// It is a pure function of Open; the caller owns that flag.
type Layer struct {
	Open bool
}

// Render composites box over base within a width x height screen.
// A closed layer, or a screen with no area, returns base unchanged.
func (l Layer) Render(base string, width, height int, box string) string {
	if !l.Open || width <= 0 || height <= 0 || box == "" {
		return base
	}

	boxLines := strings.Split(box, "\n")
	boxW := 0
	for _, line := range boxLines {
		boxW = max(boxW, lipgloss.Width(line))
	}
	boxW = min(boxW, width)
	if len(boxLines) > height {
		boxLines = boxLines[:height]
	}
	boxH := len(boxLines)

	top := (height - boxH) / 2
	left := (width - boxW) / 2

	baseLines := normalizeLines(base, width, height)
	for i, line := range boxLines {
		lineW := lipgloss.Width(line)
		if lineW > boxW {
			line = ansi.Truncate(line, boxW, "")
			lineW = boxW
		}
		if lineW < boxW {
			line += strings.Repeat(" ", boxW-lineW)
		}

		row := top + i
		baseLine := baseLines[row]
		baseLines[row] = ansi.Cut(baseLine, 0, left) + line + ansi.Cut(baseLine, left+boxW, width)
	}

	return strings.Join(baseLines, "\n")
}

// normalizeLines pads or trims base to exactly height lines of width cells
func normalizeLines(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	out := make([]string, height)
	for i := 0; i < height; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		w := lipgloss.Width(line)
		if w > width {
			line = ansi.Truncate(line, width, "")
		} else if w < width {
			line += strings.Repeat(" ", width-w)
		}
		out[i] = line
	}
	return out
}
