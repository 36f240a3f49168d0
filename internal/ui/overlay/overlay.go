// Package overlay provides modal layers drawn above page content.
//
// Overlays never own their visibility. The host pushes and pops them on a
// Stack and every close or confirm request travels back to the host as a
// message.
package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay represents a modal overlay component
type Overlay interface {
	tea.Model
	Title() string
	Size() (width, height int)
}

// Openable is implemented by overlays that reset state when shown or hidden
type Openable interface {
	SetOpen(open bool)
}

// CloseOverlayMsg asks the host to dismiss the top overlay
type CloseOverlayMsg struct{}

// SelectionMsg is sent when an action is selected
type SelectionMsg struct {
	Key   string
	Value any
}
