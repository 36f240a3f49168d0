package overlay

import tea "github.com/charmbracelet/bubbletea"

// Stack manages a stack of overlays with push/pop operations
type Stack struct {
	overlays []Overlay
}

// NewStack creates a new empty overlay stack
func NewStack() *Stack {
	return &Stack{
		overlays: make([]Overlay, 0),
	}
}

// Push opens an overlay on top of the stack
func (s *Stack) Push(o Overlay) tea.Cmd {
	if op, ok := o.(Openable); ok {
		op.SetOpen(true)
	}
	s.overlays = append(s.overlays, o)
	return o.Init()
}

// Pop closes and returns the top overlay.
// Returns nil if the stack is empty
func (s *Stack) Pop() Overlay {
	if len(s.overlays) == 0 {
		return nil
	}

	top := s.overlays[len(s.overlays)-1]
	s.overlays = s.overlays[:len(s.overlays)-1]
	if op, ok := top.(Openable); ok {
		op.SetOpen(false)
	}
	return top
}

// Current returns the top overlay without removing it
// Returns nil if the stack is empty
func (s *Stack) Current() Overlay {
	if len(s.overlays) == 0 {
		return nil
	}
	return s.overlays[len(s.overlays)-1]
}

// IsEmpty returns true if the stack has no overlays
func (s *Stack) IsEmpty() bool {
	return len(s.overlays) == 0
}

// Len returns the number of open overlays
func (s *Stack) Len() int {
	return len(s.overlays)
}

// Clear closes every overlay, top first
func (s *Stack) Clear() {
	for !s.IsEmpty() {
		s.Pop()
	}
}

// Update forwards the message to the current overlay and handles CloseOverlayMsg
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	if s.IsEmpty() {
		return nil
	}

	if _, ok := msg.(CloseOverlayMsg); ok {
		s.Pop()
		return nil
	}

	idx := len(s.overlays) - 1
	newModel, cmd := s.overlays[idx].Update(msg)
	if newOverlay, ok := newModel.(Overlay); ok {
		s.overlays[idx] = newOverlay
	}
	return cmd
}

// Broadcast forwards a non-input message to every open overlay.
// Used for ticks that carry their own target ID.
func (s *Stack) Broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, o := range s.overlays {
		newModel, cmd := o.Update(msg)
		if newOverlay, ok := newModel.(Overlay); ok {
			s.overlays[i] = newOverlay
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}
