package overlay

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/marquee/internal/ui/styles"
)

// Styles holds all overlay-specific styles
type Styles struct {
	// Description is the muted line under a modal title
	Description lipgloss.Style
	// CloseHint is the close affordance in a modal header
	CloseHint lipgloss.Style
	// MenuItem is the default menu item style
	MenuItem lipgloss.Style
	// MenuItemActive is the highlighted/selected menu item style
	MenuItemActive lipgloss.Style
	// MenuKey is the style for keybinding hints
	MenuKey lipgloss.Style
	// MenuKeyDisabled is the style for disabled keybinding hints
	MenuKeyDisabled lipgloss.Style
	// Separator is the style for divider lines
	Separator lipgloss.Style
	// Footer is the style for overlay footer text
	Footer lipgloss.Style
	// MenuHeader is the style for menu section headers
	MenuHeader lipgloss.Style
	// MenuCount is the style for count indicators
	MenuCount lipgloss.Style

	Button         lipgloss.Style
	ButtonPrimary  lipgloss.Style
	ButtonDisabled lipgloss.Style

	FieldLabel  lipgloss.Style
	FieldValue  lipgloss.Style
	Empty       lipgloss.Style
	EmptyDetail lipgloss.Style
	Check       lipgloss.Style
}

// New creates a new Styles instance using the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Description: lipgloss.NewStyle().
			Foreground(styles.Subtext0),

		CloseHint: lipgloss.NewStyle().
			Foreground(styles.Overlay1),

		MenuItem: lipgloss.NewStyle().
			Foreground(styles.Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		MenuKey: lipgloss.NewStyle().
			Foreground(styles.Yellow).
			Bold(true),

		MenuKeyDisabled: lipgloss.NewStyle().
			Foreground(styles.Surface2).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(styles.Surface1),

		Footer: lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			MarginTop(1),

		MenuHeader: lipgloss.NewStyle().
			Foreground(styles.Subtext1).
			Bold(true),

		MenuCount: lipgloss.NewStyle().
			Foreground(styles.Green),

		Button: lipgloss.NewStyle().
			Foreground(styles.Text).
			Background(styles.Surface0).
			Padding(0, 2),

		ButtonPrimary: lipgloss.NewStyle().
			Foreground(styles.Base).
			Background(styles.Blue).
			Bold(true).
			Padding(0, 2),

		ButtonDisabled: lipgloss.NewStyle().
			Foreground(styles.Overlay0).
			Background(styles.Surface0).
			Padding(0, 2),

		FieldLabel: lipgloss.NewStyle().
			Foreground(styles.Subtext1).
			Width(12),

		FieldValue: lipgloss.NewStyle().
			Foreground(styles.Text),

		Empty: lipgloss.NewStyle().
			Foreground(styles.Subtext1).
			Bold(true),

		EmptyDetail: lipgloss.NewStyle().
			Foreground(styles.Overlay1),

		Check: lipgloss.NewStyle().
			Foreground(styles.Green).
			Bold(true),
	}
}
