// Package upload provides a single-slot file upload widget.
//
// The widget is always in exactly one of four states. Files arrive by
// terminal drag-and-drop (a bracketed paste of the path), a typed path or
// the clipboard; each candidate is validated synchronously against the
// widget's constraints before it is held.
package upload

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/marquee/internal/domain"
	"github.com/riordanpawley/marquee/internal/ui/notice"
)

// State is the visual state of the widget
type State int

const (
	StateEmpty State = iota
	StateDragActive
	StateHolding
	StateError
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateDragActive:
		return "drag-active"
	case StateHolding:
		return "holding"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Inspector turns a path or the clipboard into an upload candidate
type Inspector interface {
	Inspect(ctx context.Context, path string) (domain.FileCandidate, error)
	FromClipboard(ctx context.Context) (domain.FileCandidate, error)
}

// FileAcceptedMsg is sent once for every candidate that passes validation
type FileAcceptedMsg struct {
	WidgetID   string
	Descriptor domain.UploadedFileDescriptor
}

// FileRemovedMsg is sent when the held file is removed
type FileRemovedMsg struct {
	WidgetID string
}

// DragEnterMsg signals a file being dragged over the widget
type DragEnterMsg struct{}

// DragLeaveMsg signals the drag left without dropping
type DragLeaveMsg struct{}

// DropMsg delivers a dropped file path
type DropMsg struct {
	Path string
}

// candidateMsg carries the result of an asynchronous inspection
type candidateMsg struct {
	widgetID  string
	candidate domain.FileCandidate
	err       error
}

const inspectTimeout = 5 * time.Second

// Widget is the file upload widget
type Widget struct {
	id          string
	inspector   Inspector
	constraints domain.UploadConstraints

	state   State
	held    *domain.UploadedFileDescriptor
	lastErr *domain.ValidationError

	pathInput   textinput.Model
	inputActive bool

	notice    *notice.Notice
	noticeTTL time.Duration
	disposed  bool

	styles *Styles
	width  int
}

// Option configures a Widget
type Option func(*Widget)

// WithID sets the identifier carried by the widget's messages
func WithID(id string) Option {
	return func(w *Widget) {
		w.id = id
	}
}

// WithNoticeTTL sets how long the "File ready" notice stays up
func WithNoticeTTL(ttl time.Duration) Option {
	return func(w *Widget) {
		w.noticeTTL = ttl
	}
}

// WithWidth sets the rendered width
func WithWidth(width int) Option {
	return func(w *Widget) {
		w.width = width
	}
}

// New creates an empty widget
func New(inspector Inspector, constraints domain.UploadConstraints, opts ...Option) *Widget {
	ti := textinput.New()
	ti.Placeholder = "/path/to/file"
	ti.Prompt = "path: "
	ti.CharLimit = 500
	ti.Width = 40

	w := &Widget{
		id:          "upload",
		inspector:   inspector,
		constraints: constraints,
		pathInput:   ti,
		notice:      notice.New(),
		noticeTTL:   2 * time.Second,
		styles:      NewStyles(),
		width:       52,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// ID returns the widget identifier
func (w *Widget) ID() string {
	return w.id
}

// State returns the current visual state
func (w *Widget) State() State {
	return w.state
}

// Held returns the held descriptor, if any
func (w *Widget) Held() (domain.UploadedFileDescriptor, bool) {
	if w.held == nil {
		return domain.UploadedFileDescriptor{}, false
	}
	return *w.held, true
}

// Err returns the last validation error. It is kept until the next
// candidate is presented.
func (w *Widget) Err() *domain.ValidationError {
	return w.lastErr
}

// Notice returns the widget's ephemeral notice
func (w *Widget) Notice() *notice.Notice {
	return w.notice
}

// CapturingInput reports whether the path prompt owns the keyboard
func (w *Widget) CapturingInput() bool {
	return w.inputActive
}

// Present validates a candidate. The previous error is cleared first,
// whether or not the new candidate passes. Ignored while a file is held.
func (w *Widget) Present(c domain.FileCandidate) tea.Cmd {
	if w.disposed || w.state == StateHolding {
		return nil
	}
	w.lastErr = nil

	d, err := w.constraints.Validate(c)
	if err != nil {
		w.fail(err)
		return nil
	}

	w.held = &d
	w.state = StateHolding
	id := w.id
	return tea.Batch(
		func() tea.Msg { return FileAcceptedMsg{WidgetID: id, Descriptor: d} },
		w.notice.Show("File ready", w.noticeTTL),
	)
}

// fail moves to the error state with a human-readable message
func (w *Widget) fail(err error) {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		reason := domain.ErrInvalidFile
		msg := "Could not read that file."
		if errors.Is(err, domain.ErrNotFound) {
			msg = "File not found."
		}
		verr = &domain.ValidationError{Message: msg, Reason: fmt.Errorf("%w: %w", reason, err)}
	}
	w.held = nil
	w.lastErr = verr
	w.state = StateError
}

// Remove drops the held file. Returns nil unless a file was held.
func (w *Widget) Remove() tea.Cmd {
	if w.state != StateHolding {
		return nil
	}
	w.held = nil
	w.state = StateEmpty
	id := w.id
	return func() tea.Msg { return FileRemovedMsg{WidgetID: id} }
}

// Dispose is called when the widget is unmounted. Pending notice ticks
// and inspections finishing afterwards leave it untouched.
func (w *Widget) Dispose() {
	w.disposed = true
	w.notice.Dispose()
}

func (w *Widget) inspect(path string) tea.Cmd {
	inspector, id := w.inspector, w.id
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), inspectTimeout)
		defer cancel()
		c, err := inspector.Inspect(ctx, path)
		return candidateMsg{widgetID: id, candidate: c, err: err}
	}
}

func (w *Widget) fromClipboard() tea.Cmd {
	inspector, id := w.inspector, w.id
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), inspectTimeout)
		defer cancel()
		c, err := inspector.FromClipboard(ctx)
		return candidateMsg{widgetID: id, candidate: c, err: err}
	}
}

// Init initializes the widget
func (w *Widget) Init() tea.Cmd {
	return nil
}

// Update handles messages and returns any resulting command
func (w *Widget) Update(msg tea.Msg) tea.Cmd {
	if w.disposed {
		return nil
	}

	switch msg := msg.(type) {
	case notice.DismissMsg:
		w.notice.Update(msg)
		return nil

	case candidateMsg:
		if msg.widgetID != w.id || w.state == StateHolding {
			return nil
		}
		if msg.err != nil {
			w.lastErr = nil
			w.fail(msg.err)
			return nil
		}
		return w.Present(msg.candidate)

	case DragEnterMsg:
		if w.state == StateHolding {
			return nil
		}
		// The error survives until a candidate actually arrives
		w.state = StateDragActive
		return nil

	case DragLeaveMsg:
		if w.state != StateDragActive {
			return nil
		}
		w.state = StateEmpty
		if w.lastErr != nil {
			w.state = StateError
		}
		return nil

	case DropMsg:
		if w.state == StateHolding {
			return nil
		}
		w.state = StateEmpty
		w.lastErr = nil
		return w.inspect(msg.Path)

	case tea.KeyMsg:
		return w.handleKey(msg)
	}

	if w.inputActive {
		var cmd tea.Cmd
		w.pathInput, cmd = w.pathInput.Update(msg)
		return cmd
	}
	return nil
}

func (w *Widget) handleKey(msg tea.KeyMsg) tea.Cmd {
	if w.inputActive {
		return w.handleInputKey(msg)
	}

	if msg.Paste {
		return w.Update(DropMsg{Path: string(msg.Runes)})
	}

	switch msg.String() {
	case "d", "backspace", "delete":
		return w.Remove()

	case "f":
		if w.state == StateHolding {
			return nil
		}
		w.inputActive = true
		w.pathInput.SetValue("")
		return w.pathInput.Focus()

	case "v":
		if w.state == StateHolding {
			return nil
		}
		return w.fromClipboard()
	}
	return nil
}

func (w *Widget) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		w.closeInput()
		return nil

	case "enter":
		path := strings.TrimSpace(w.pathInput.Value())
		if path == "" {
			return nil
		}
		w.closeInput()
		return w.inspect(path)
	}

	var cmd tea.Cmd
	w.pathInput, cmd = w.pathInput.Update(msg)
	return cmd
}

func (w *Widget) closeInput() {
	w.inputActive = false
	w.pathInput.Blur()
	w.pathInput.SetValue("")
}
