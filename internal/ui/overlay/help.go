package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding represents a single keybinding entry
type KeyBinding struct {
	Key         string
	Description string
}

// KeyCategory represents a category of keybindings
type KeyCategory struct {
	Name     string
	Bindings []KeyBinding
}

// HelpOverlay displays a scrollable keybinding reference
type HelpOverlay struct {
	categories []KeyCategory
	styles     *Styles
	scroll     int
	viewHeight int
}

// NewHelpOverlay creates a help overlay for the given keymap
func NewHelpOverlay(categories []KeyCategory) *HelpOverlay {
	return &HelpOverlay{
		categories: categories,
		styles:     New(),
		viewHeight: 16,
	}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

func (h *HelpOverlay) lines() []string {
	var lines []string
	for i, cat := range h.categories {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, h.styles.MenuHeader.Render(cat.Name+":"))
		for _, binding := range cat.Bindings {
			key := h.styles.MenuKey.Width(8).Render(binding.Key)
			lines = append(lines, "  "+key+" "+h.styles.MenuItem.Render(binding.Description))
		}
	}
	return lines
}

func (h *HelpOverlay) maxScroll() int {
	return max(0, len(h.lines())-h.viewHeight)
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch keyMsg.String() {
	case "esc", "q", "?":
		return h, func() tea.Msg { return CloseOverlayMsg{} }
	case "j", "down":
		h.scroll = min(h.scroll+1, h.maxScroll())
	case "k", "up":
		h.scroll = max(h.scroll-1, 0)
	case "g":
		h.scroll = 0
	case "G":
		h.scroll = h.maxScroll()
	}
	return h, nil
}

// View renders the visible slice of the keymap
func (h *HelpOverlay) View() string {
	lines := h.lines()
	end := min(h.scroll+h.viewHeight, len(lines))
	result := strings.Join(lines[h.scroll:end], "\n")

	if h.maxScroll() > 0 {
		result += "\n" + h.styles.Footer.Render("j/k: scroll • g/G: jump • esc: close")
	}
	return result
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Keys"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	return 50, min(len(h.lines()), h.viewHeight) + 2
}
