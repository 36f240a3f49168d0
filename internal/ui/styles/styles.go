package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/marquee/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Pages
	Page        lipgloss.Style
	PageTitle   lipgloss.Style
	PageSubtle  lipgloss.Style
	Row         lipgloss.Style
	RowActive   lipgloss.Style
	Stat        lipgloss.Style
	StatLabel   lipgloss.Style
	SearchInput lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Overlays
	Overlay          lipgloss.Style
	OverlayTitle     lipgloss.Style
	MenuItem         lipgloss.Style
	MenuItemActive   lipgloss.Style
	MenuItemDisabled lipgloss.Style
	MenuKey          lipgloss.Style
	Separator        lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style

	// Fault and not-found screens
	FallbackTitle lipgloss.Style
	FallbackBody  lipgloss.Style
	FallbackBox   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Page: lipgloss.NewStyle().
			Padding(1, 2),

		PageTitle: lipgloss.NewStyle().
			Foreground(Lavender).
			Bold(true).
			MarginBottom(1),

		PageSubtle: lipgloss.NewStyle().
			Foreground(Overlay1),

		Row: lipgloss.NewStyle().
			Foreground(Text),

		RowActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		Stat: lipgloss.NewStyle().
			Foreground(Green).
			Bold(true),

		StatLabel: lipgloss.NewStyle().
			Foreground(Subtext0),

		SearchInput: lipgloss.NewStyle().
			Foreground(Text).
			Background(Surface0),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Base).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		MenuItem: lipgloss.NewStyle().
			Foreground(Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		MenuItemDisabled: lipgloss.NewStyle().
			Foreground(Overlay0),

		MenuKey: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(Surface1),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),

		FallbackTitle: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true).
			MarginBottom(1),

		FallbackBody: lipgloss.NewStyle().
			Foreground(Subtext1),

		FallbackBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Padding(1, 3),
	}
}

// CategoryBadge returns the badge style for an event category
func (s *Styles) CategoryBadge(c domain.Category) lipgloss.Style {
	color, ok := CategoryColors[string(c)]
	if !ok {
		color = Overlay1
	}
	return lipgloss.NewStyle().
		Foreground(Base).
		Background(color).
		Padding(0, 1)
}

// EventStatus returns the text style for an event status
func (s *Styles) EventStatus(status domain.EventStatus) lipgloss.Style {
	color, ok := StatusColors[string(status)]
	if !ok {
		color = Subtext0
	}
	return lipgloss.NewStyle().Foreground(color)
}
