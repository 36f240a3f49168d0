package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/marquee/internal/domain"
	"github.com/riordanpawley/marquee/internal/types"
	"github.com/riordanpawley/marquee/internal/ui/overlay"
)

// sortCycle is the order the s key steps through
var sortCycle = []domain.SortField{domain.SortByDate, domain.SortByName, domain.SortByGuests}

// handleKey processes keyboard input based on current mode
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeSearch:
		return m.handleSearchMode(msg)
	case ModeCommand:
		return m.handleCommandMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

// handleNormalMode processes keyboard input in normal mode
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ids := m.pageIDs()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Row navigation
	case "j", "down":
		m.cursor().Move(ids, 1)
		return m, nil
	case "k", "up":
		m.cursor().Move(ids, -1)
		return m, nil
	case "g", "home":
		m.cursor().JumpToStart(ids)
		return m, nil
	case "G", "end":
		m.cursor().JumpToEnd(ids)
		return m, nil

	// Pages
	case "1", "2", "3", "4":
		routes := m.router.Routes()
		idx := int(msg.Runes[0] - '1')
		if idx < len(routes) {
			m.navigate(routes[idx].Path)
		}
		return m, nil
	case "b", "backspace":
		m.back()
		return m, nil
	case "H":
		m.home()
		return m, nil
	case ":":
		return m, m.enterInput(ModeCommand, ": ", "")

	case "/":
		switch m.router.Path() {
		case PathEvents:
			return m, m.enterInput(ModeSearch, "/ ", m.filter.SearchQuery)
		case PathVendors:
			return m, m.enterInput(ModeSearch, "/ ", m.vendorQuery)
		}
		return m, nil

	// Events page filter and sort
	case "c":
		if m.router.Path() == PathEvents {
			return m, m.overlays.Push(m.categoryPicker())
		}
		return m, nil
	case "t":
		if m.router.Path() == PathEvents {
			return m, m.overlays.Push(m.statusPicker())
		}
		return m, nil
	case "C":
		if m.router.Path() == PathEvents {
			m.filter.Clear()
		}
		return m, nil
	case "s":
		if m.router.Path() == PathEvents {
			m.sort.Toggle(nextSortField(m.sort.Field))
		}
		return m, nil
	case "S":
		if m.router.Path() == PathEvents {
			m.sort.Toggle(m.sort.Field)
		}
		return m, nil

	// Overlays
	case "?":
		return m, m.overlays.Push(overlay.NewHelpOverlay(m.keymap()))
	case "p":
		return m, m.overlays.Push(m.eventPicker())
	case "P":
		return m, m.overlays.Push(m.vendorPicker())
	case "e":
		return m.openEditModal()
	case "enter", "v":
		return m.openDetailsModal()
	case "u":
		return m.openUploadModal()
	case "x":
		return m.openCancelConfirm()

	case "d":
		if u, i, ok := m.currentUpload(); ok {
			m.uploads = append(m.uploads[:i], m.uploads[i+1:]...)
			return m, m.toast(types.ToastInfo, "Removed "+u.File.Name)
		}
		return m, nil

	case "y":
		return m.copySelectedID()

	case "!":
		if m.debug {
			m.logger.Warn("diagnostic render fault armed")
			m.faultArmed = true
		}
		return m, nil
	}

	return m, nil
}

func nextSortField(current domain.SortField) domain.SortField {
	for i, f := range sortCycle {
		if f == current {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}
	return sortCycle[0]
}

// enterInput focuses the shared input for a search or a path prompt
func (m *Model) enterInput(mode Mode, prompt, value string) tea.Cmd {
	m.mode = mode
	m.input.Prompt = prompt
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

// handleSearchMode filters the current list as the query changes
func (m Model) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.applySearch("")
		m.exitInput()
		return m, nil
	case "enter":
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.applySearch(m.input.Value())
	return m, cmd
}

func (m *Model) applySearch(query string) {
	switch m.router.Path() {
	case PathEvents:
		m.filter.SearchQuery = query
	case PathVendors:
		m.vendorQuery = query
	}
}

// handleCommandMode reads a path and navigates on enter
func (m Model) handleCommandMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.exitInput()
		return m, nil
	case "enter":
		path := m.input.Value()
		if path == "" {
			m.exitInput()
			return m, nil
		}
		m.navigate(path)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// keymap feeds the help overlay
func (m Model) keymap() []overlay.KeyCategory {
	categories := []overlay.KeyCategory{
		{
			Name: "Navigation",
			Bindings: []overlay.KeyBinding{
				{Key: "j / k", Description: "Move down / up"},
				{Key: "g / G", Description: "First / last row"},
				{Key: "1-4", Description: "Switch page"},
				{Key: ":", Description: "Go to a path"},
				{Key: "b", Description: "Back"},
				{Key: "H", Description: "Home"},
			},
		},
		{
			Name: "Events",
			Bindings: []overlay.KeyBinding{
				{Key: "/", Description: "Search the list"},
				{Key: "c / C", Description: "Filter by category / clear"},
				{Key: "t", Description: "Filter by status"},
				{Key: "s / S", Description: "Sort field / direction"},
				{Key: "p", Description: "Jump to an event"},
				{Key: "e", Description: "Edit event"},
				{Key: "x", Description: "Cancel event"},
				{Key: "y", Description: "Copy ID"},
			},
		},
		{
			Name: "General",
			Bindings: []overlay.KeyBinding{
				{Key: "enter / v", Description: "Details"},
				{Key: "P", Description: "Shortlist vendors"},
				{Key: "u", Description: "Upload a document"},
				{Key: "d", Description: "Remove document"},
				{Key: "?", Description: "This help"},
				{Key: "q", Description: "Quit"},
			},
		},
	}

	if m.debug {
		categories = append(categories, overlay.KeyCategory{
			Name:     "Debug",
			Bindings: []overlay.KeyBinding{{Key: "!", Description: "Raise a render fault"}},
		})
	}
	return categories
}
