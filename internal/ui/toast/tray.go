package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/riordanpawley/marquee/internal/types"
)

// ExpireMsg asks the tray to drop one toast once its time is up
type ExpireMsg struct {
	ID string
}

// Tray holds the toasts currently on screen
type Tray struct {
	toasts []types.Toast
	now    func() time.Time
}

// NewTray creates an empty tray
func NewTray() *Tray {
	return &Tray{now: time.Now}
}

// Add queues a toast and returns the command that expires it after ttl
func (t *Tray) Add(level types.ToastLevel, message string, ttl time.Duration) tea.Cmd {
	id := uuid.NewString()
	t.toasts = append(t.toasts, types.Toast{
		ID:      id,
		Level:   level,
		Message: message,
		Expires: t.now().Add(ttl),
	})
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return ExpireMsg{ID: id}
	})
}

// Expire removes the toast with the given ID.
// Returns false when it was already gone.
func (t *Tray) Expire(id string) bool {
	for i, toast := range t.toasts {
		if toast.ID == id {
			t.toasts = append(t.toasts[:i], t.toasts[i+1:]...)
			return true
		}
	}
	return false
}

// Sweep removes every toast whose expiry has passed
func (t *Tray) Sweep() {
	now := t.now()
	filtered := make([]types.Toast, 0, len(t.toasts))
	for _, toast := range t.toasts {
		if toast.Expires.After(now) {
			filtered = append(filtered, toast)
		}
	}
	t.toasts = filtered
}

// Toasts returns the toasts in insertion order
func (t *Tray) Toasts() []types.Toast {
	return t.toasts
}

// Len returns the number of visible toasts
func (t *Tray) Len() int {
	return len(t.toasts)
}
