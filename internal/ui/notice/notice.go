// Package notice provides a short-lived tooltip that dismisses itself.
//
// Every Show schedules a dismiss tick tagged with the notice ID and a
// generation counter. A tick only hides the notice when both still match,
// so a newer Show or a Dispose turns older ticks into no-ops.
package notice

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// DismissMsg is delivered when a notice's display time runs out
type DismissMsg struct {
	ID         string
	Generation int
}

// Notice is an ephemeral message owned by a single component
type Notice struct {
	id         string
	text       string
	visible    bool
	generation int
	disposed   bool
}

// New creates a hidden notice
func New() *Notice {
	return &Notice{id: uuid.NewString()}
}

// ID returns the identifier carried by this notice's dismiss messages
func (n *Notice) ID() string {
	return n.id
}

// Show displays text and returns the tick that hides it after ttl.
// Returns nil once the notice has been disposed.
func (n *Notice) Show(text string, ttl time.Duration) tea.Cmd {
	if n.disposed {
		return nil
	}
	n.generation++
	n.text = text
	n.visible = true

	id, gen := n.id, n.generation
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return DismissMsg{ID: id, Generation: gen}
	})
}

// Update handles dismiss ticks. Ticks for other notices, stale
// generations or a disposed notice leave it untouched.
func (n *Notice) Update(msg tea.Msg) bool {
	m, ok := msg.(DismissMsg)
	if !ok || m.ID != n.id {
		return false
	}
	if n.disposed || m.Generation != n.generation {
		return false
	}
	n.visible = false
	n.text = ""
	return true
}

// Dispose detaches the notice from its owner; pending ticks become no-ops
func (n *Notice) Dispose() {
	n.disposed = true
	n.generation++
	n.visible = false
	n.text = ""
}

// Visible reports whether the notice is showing
func (n *Notice) Visible() bool {
	return n.visible
}

// Text returns the current notice text, empty when hidden
func (n *Notice) Text() string {
	return n.text
}
