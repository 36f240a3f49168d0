package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/marquee/internal/ui/styles"
)

// Body is the content rendered inside a modal
type Body interface {
	View() string
}

// InteractiveBody receives the keys the modal shell does not consume
type InteractiveBody interface {
	Body
	Update(msg tea.Msg) tea.Cmd
}

// InputCapturer is implemented by bodies that temporarily own every key,
// such as an active text prompt
type InputCapturer interface {
	CapturingInput() bool
}

// ModalCloseMsg is sent when the user asks to close a modal.
// The modal stays open until its owner pops it.
type ModalCloseMsg struct {
	ID string
}

// ModalConfirmMsg is sent when the user confirms a modal
type ModalConfirmMsg struct {
	ID string
}

// ModalKind distinguishes the edit and details variants
type ModalKind int

const (
	ModalEdit ModalKind = iota
	ModalDetails
)

// Modal is a dialog shell with a header, an arbitrary body and footer actions.
//
// Close and confirm requests are forwarded to the owner as messages; the
// shell never decides what they mean. While busy both are ignored.
type Modal struct {
	id           string
	title        string
	description  string
	kind         ModalKind
	body         Body
	confirmLabel string
	cancelLabel  string
	width        int
	busy         bool
	spinner      spinner.Model
	styles       *Styles
}

// ModalOption configures a Modal
type ModalOption func(*Modal)

// WithConfirm adds a confirm action with the given label
func WithConfirm(label string) ModalOption {
	return func(m *Modal) {
		m.confirmLabel = label
	}
}

// WithCancelLabel overrides the cancel/close button label
func WithCancelLabel(label string) ModalOption {
	return func(m *Modal) {
		m.cancelLabel = label
	}
}

// WithWidth sets the modal content width
func WithWidth(width int) ModalOption {
	return func(m *Modal) {
		m.width = width
	}
}

// NewEditModal creates a modal with Save and Cancel actions
func NewEditModal(id, title, description string, body Body, opts ...ModalOption) *Modal {
	m := newModal(id, title, description, ModalEdit, body)
	m.confirmLabel = "Save"
	m.cancelLabel = "Cancel"
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewDetailsModal creates a read-only modal with a Close action.
// Use WithConfirm to add a primary action.
func NewDetailsModal(id, title, description string, body Body, opts ...ModalOption) *Modal {
	m := newModal(id, title, description, ModalDetails, body)
	m.cancelLabel = "Close"
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func newModal(id, title, description string, kind ModalKind, body Body) *Modal {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = lipgloss.NewStyle().Foreground(styles.Base)

	return &Modal{
		id:          id,
		title:       title,
		description: description,
		kind:        kind,
		body:        body,
		width:       56,
		spinner:     s,
		styles:      New(),
	}
}

// ID returns the identifier carried by the modal's messages
func (m *Modal) ID() string {
	return m.id
}

// Kind returns the modal variant
func (m *Modal) Kind() ModalKind {
	return m.kind
}

// Body returns the modal content
func (m *Modal) Body() Body {
	return m.body
}

// HasConfirm reports whether the footer has a confirm action
func (m *Modal) HasConfirm() bool {
	return m.confirmLabel != ""
}

// Busy reports whether the modal is waiting on its owner
func (m *Modal) Busy() bool {
	return m.busy
}

// SetBusy gates both footer actions and body input.
// Returns the spinner tick when entering the busy state.
func (m *Modal) SetBusy(busy bool) tea.Cmd {
	if m.busy == busy {
		return nil
	}
	m.busy = busy
	if busy {
		return m.spinner.Tick
	}
	return nil
}

// Init initializes the modal and its body
func (m *Modal) Init() tea.Cmd {
	if b, ok := m.body.(interface{ Init() tea.Cmd }); ok {
		return b.Init()
	}
	return nil
}

// Update handles messages
func (m *Modal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		if c, ok := m.body.(InputCapturer); ok && c.CapturingInput() {
			if b, ok := m.body.(InteractiveBody); ok {
				return m, b.Update(msg)
			}
		}
		switch msg.String() {
		case "esc":
			id := m.id
			return m, func() tea.Msg { return ModalCloseMsg{ID: id} }

		case "enter", "ctrl+s":
			id := m.id
			if m.HasConfirm() {
				return m, func() tea.Msg { return ModalConfirmMsg{ID: id} }
			}
			if msg.String() == "enter" {
				return m, func() tea.Msg { return ModalCloseMsg{ID: id} }
			}
			return m, nil
		}

		if b, ok := m.body.(InteractiveBody); ok {
			return m, b.Update(msg)
		}
		return m, nil
	}

	if b, ok := m.body.(InteractiveBody); ok && !m.busy {
		return m, b.Update(msg)
	}
	return m, nil
}

// View renders the modal
func (m *Modal) View() string {
	var b strings.Builder

	closeHint := m.styles.CloseHint.Render("esc ✕")
	if m.description != "" {
		desc := m.styles.Description.Render(m.description)
		gap := max(1, m.width-lipgloss.Width(desc)-lipgloss.Width(closeHint))
		b.WriteString(desc + strings.Repeat(" ", gap) + closeHint)
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Right, closeHint))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Separator.Render(strings.Repeat("─", m.width)))
	b.WriteString("\n\n")

	if m.body != nil {
		b.WriteString(m.body.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.footer())

	return b.String()
}

func (m *Modal) footer() string {
	cancelStyle := m.styles.Button
	confirmStyle := m.styles.ButtonPrimary
	if m.busy {
		cancelStyle = m.styles.ButtonDisabled
	}

	buttons := []string{cancelStyle.Render("esc " + m.cancelLabel)}
	if m.HasConfirm() {
		label := "enter " + m.confirmLabel
		if m.busy {
			label = m.spinner.View() + " " + m.confirmLabel
		}
		buttons = append(buttons, confirmStyle.Render(label))
	}

	return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, strings.Join(buttons, "  "))
}

// Title returns the modal title
func (m *Modal) Title() string {
	return m.title
}

// Size returns the modal dimensions
func (m *Modal) Size() (width, height int) {
	return m.width, lipgloss.Height(m.View())
}
