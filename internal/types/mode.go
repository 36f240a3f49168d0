// Package types contains shared types used across the application.
package types

// Mode represents what the keyboard is currently driving
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeCommand
	ModeOverlay
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeSearch:
		return "SEARCH"
	case ModeCommand:
		return "GOTO"
	case ModeOverlay:
		return "MODAL"
	default:
		return "UNKNOWN"
	}
}
