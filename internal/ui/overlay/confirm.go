package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmResult is the Value of the SelectionMsg a ConfirmDialog sends
type ConfirmResult struct {
	Confirmed bool
}

// ConfirmDialog asks a yes/no question. Its answer arrives as a
// SelectionMsg keyed by the dialog ID; the dialog never closes itself.
type ConfirmDialog struct {
	id       string
	title    string
	message  string
	yesLabel string
	styles   *Styles
	yes      bool
}

// NewConfirmDialog creates a confirmation dialog with No preselected
func NewConfirmDialog(id, title, message, yesLabel string) *ConfirmDialog {
	if yesLabel == "" {
		yesLabel = "Yes"
	}
	return &ConfirmDialog{
		id:       id,
		title:    title,
		message:  message,
		yesLabel: yesLabel,
		styles:   New(),
	}
}

// ID returns the key carried by the dialog's SelectionMsg
func (c *ConfirmDialog) ID() string {
	return c.id
}

// Init initializes the dialog
func (c *ConfirmDialog) Init() tea.Cmd {
	return nil
}

func (c *ConfirmDialog) answer(confirmed bool) tea.Cmd {
	id := c.id
	return func() tea.Msg {
		return SelectionMsg{Key: id, Value: ConfirmResult{Confirmed: confirmed}}
	}
}

// Update handles messages
func (c *ConfirmDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		return c, c.answer(true)
	case "n", "N", "esc":
		return c, c.answer(false)
	case "enter":
		return c, c.answer(c.yes)
	case "left", "h", "right", "l", "tab":
		c.yes = !c.yes
	}
	return c, nil
}

// View renders the dialog
func (c *ConfirmDialog) View() string {
	var b strings.Builder

	if c.message != "" {
		b.WriteString(c.styles.MenuItem.Render(c.message))
		b.WriteString("\n\n")
	}

	noStyle, yesStyle := c.styles.ButtonPrimary, c.styles.Button
	if c.yes {
		noStyle, yesStyle = c.styles.Button, c.styles.ButtonPrimary
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		noStyle.Render("n No"),
		"  ",
		yesStyle.Render("y "+c.yesLabel),
	))
	b.WriteString("\n")
	b.WriteString(c.styles.Footer.Render("tab: switch • enter: choose • esc: cancel"))

	return b.String()
}

// Title returns the dialog title
func (c *ConfirmDialog) Title() string {
	return c.title
}

// Size returns the dialog dimensions
func (c *ConfirmDialog) Size() (width, height int) {
	return 48, strings.Count(c.message, "\n") + 6
}
