package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayer_ClosedReturnsBase(t *testing.T) {
	base := "line one\nline two"
	assert.Equal(t, base, Layer{Open: false}.Render(base, 20, 5, "box"))
}

func TestLayer_NoAreaReturnsBase(t *testing.T) {
	base := "content"
	assert.Equal(t, base, Layer{Open: true}.Render(base, 0, 0, "box"))
}

func TestLayer_CentersBox(t *testing.T) {
	base := strings.Repeat(strings.Repeat(".", 10)+"\n", 4) + strings.Repeat(".", 10)
	out := Layer{Open: true}.Render(base, 10, 5, "XX\nXX")

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "..........", lines[0])
	assert.Equal(t, "....XX....", lines[1])
	assert.Equal(t, "....XX....", lines[2])
	assert.Equal(t, "..........", lines[3])
	for _, line := range lines {
		assert.Equal(t, 10, lipgloss.Width(line))
	}
}

func TestLayer_PadsShortBase(t *testing.T) {
	out := Layer{Open: true}.Render("", 6, 3, "ab")

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "  ab  ", lines[1])
}

func TestLayer_ClampsOversizedBox(t *testing.T) {
	box := strings.Repeat("#", 20) + "\n" + strings.Repeat("#", 20) + "\n" + strings.Repeat("#", 20)
	out := Layer{Open: true}.Render("", 8, 2, box)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, 8, lipgloss.Width(line))
	}
}
