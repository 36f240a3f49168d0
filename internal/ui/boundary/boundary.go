// Package boundary isolates render faults in a Bubble Tea subtree.
//
// The child's Init, Update and View run under recover. The first panic
// latches a *domain.RenderFault and the child is not called again until
// the user picks a recovery action on the fallback screen.
package boundary

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/marquee/internal/domain"
	"github.com/riordanpawley/marquee/internal/services/navigation"
	"github.com/riordanpawley/marquee/internal/ui/styles"
)

// Boundary wraps a child model and substitutes a fallback when it panics
type Boundary struct {
	mount  func() tea.Model
	child  tea.Model
	fault  *domain.RenderFault
	reload bool

	size   tea.WindowSizeMsg
	logger *slog.Logger
	styles *styles.Styles
}

// New mounts a child through mount and wraps it
func New(mount func() tea.Model, logger *slog.Logger, st *styles.Styles) *Boundary {
	b := &Boundary{
		mount:  mount,
		logger: logger,
		styles: st,
	}
	b.guard("mount", func() { b.child = mount() })
	return b
}

// Faulted reports whether a fault is latched
func (b *Boundary) Faulted() bool {
	return b.fault != nil
}

// Fault returns the latched fault, or nil while healthy
func (b *Boundary) Fault() *domain.RenderFault {
	return b.fault
}

// ReloadRequested reports whether the user chose to reload the application
func (b *Boundary) ReloadRequested() bool {
	return b.reload
}

// Child returns the mounted child model
func (b *Boundary) Child() tea.Model {
	return b.child
}

// guard runs fn and latches any panic as a fault for phase
func (b *Boundary) guard(phase string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			b.latch(phase, r)
			ok = false
		}
	}()
	fn()
	return true
}

func (b *Boundary) latch(phase string, value any) {
	b.fault = &domain.RenderFault{Phase: phase, Value: value, Stack: debug.Stack()}
	b.logger.Error("render fault",
		"phase", phase,
		"error", b.fault.Error(),
		"stack", string(b.fault.Stack),
	)
}

// Init initializes the child
func (b *Boundary) Init() tea.Cmd {
	if b.Faulted() {
		return nil
	}
	var cmd tea.Cmd
	b.guard("init", func() { cmd = b.child.Init() })
	return cmd
}

// Update forwards messages to the child while healthy and handles the
// recovery keys while faulted
func (b *Boundary) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		b.size = size
	}

	if b.Faulted() {
		return b, b.updateFallback(msg)
	}

	var cmd tea.Cmd
	b.guard("update", func() {
		var next tea.Model
		next, cmd = b.child.Update(msg)
		b.child = next
	})
	if b.Faulted() {
		return b, nil
	}
	return b, cmd
}

func (b *Boundary) updateFallback(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "r":
		b.logger.Info("reload requested after render fault")
		b.reload = true
		return tea.Quit
	case "h", "enter":
		return b.goHome()
	case "q", "ctrl+c":
		return tea.Quit
	}
	return nil
}

// goHome remounts the child, clears the latch and routes to the root
func (b *Boundary) goHome() tea.Cmd {
	b.logger.Info("remounting after render fault")
	b.fault = nil
	if !b.guard("mount", func() { b.child = b.mount() }) {
		return nil
	}

	var cmds []tea.Cmd
	if cmd := b.Init(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if b.size.Width > 0 {
		size := b.size
		cmds = append(cmds, func() tea.Msg { return size })
	}
	cmds = append(cmds, func() tea.Msg { return navigation.NavigateMsg{Path: navigation.HomePath} })
	return tea.Batch(cmds...)
}

// View renders the child, or the fallback once a fault is latched
func (b *Boundary) View() string {
	if b.Faulted() {
		return b.fallbackView()
	}

	var view string
	if !b.guard("view", func() { view = b.child.View() }) {
		return b.fallbackView()
	}
	return view
}

func (b *Boundary) fallbackView() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		b.styles.FallbackTitle.Render("Something went wrong"),
		b.styles.FallbackBody.Render("This screen hit an unexpected error and was stopped."),
		b.styles.FallbackBody.Render(fmt.Sprintf("Details: %v", b.fault.Value)),
		"",
		b.styles.MenuKey.Render("r")+" "+b.styles.MenuItem.Render("reload marquee")+"   "+
			b.styles.MenuKey.Render("h")+" "+b.styles.MenuItem.Render("go home")+"   "+
			b.styles.MenuKey.Render("q")+" "+b.styles.MenuItem.Render("quit"),
	)
	box := b.styles.FallbackBox.Render(body)

	if b.size.Width == 0 || b.size.Height == 0 {
		return box
	}
	return lipgloss.Place(b.size.Width, b.size.Height, lipgloss.Center, lipgloss.Center, box)
}
