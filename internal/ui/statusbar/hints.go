package statusbar

import "github.com/riordanpawley/marquee/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeNormal:
		return "j/k: move  p/P: pick  e: edit  u: upload  :: go  q: quit"
	case types.ModeSearch:
		return "Type to filter  Enter: keep  Esc: clear"
	case types.ModeCommand:
		return "Type a path  Enter: go  Esc: cancel"
	case types.ModeOverlay:
		// Overlays render their own footer hints
		return ""
	default:
		return ""
	}
}
