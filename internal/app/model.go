// Package app contains the main application model and TEA implementation.
package app

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/riordanpawley/marquee/internal/config"
	"github.com/riordanpawley/marquee/internal/domain"
	"github.com/riordanpawley/marquee/internal/services/navigation"
	"github.com/riordanpawley/marquee/internal/types"
	"github.com/riordanpawley/marquee/internal/ui/notice"
	"github.com/riordanpawley/marquee/internal/ui/overlay"
	"github.com/riordanpawley/marquee/internal/ui/styles"
	"github.com/riordanpawley/marquee/internal/ui/toast"
	"github.com/riordanpawley/marquee/internal/ui/upload"
)

// Re-export Mode type and constants for convenience
type Mode = types.Mode

const (
	ModeNormal  = types.ModeNormal
	ModeSearch  = types.ModeSearch
	ModeCommand = types.ModeCommand
	ModeOverlay = types.ModeOverlay
)

// Route paths
const (
	PathHome    = navigation.HomePath
	PathEvents  = "/events"
	PathVendors = "/vendors"
	PathUploads = "/uploads"
)

// Attachments inspects candidate files and writes to the clipboard
type Attachments interface {
	upload.Inspector
	CopyText(ctx context.Context, text string) error
}

// Options configures a Model
type Options struct {
	Config      *config.Config
	Logger      *slog.Logger
	Attachments Attachments
	Events      []domain.Event
	Vendors     []domain.Vendor
	Debug       bool // enables the diagnostic fault key
}

// attachment is a document held on the uploads page
type attachment struct {
	ID   string
	File domain.UploadedFileDescriptor
}

// Model is the main application state
type Model struct {
	// Core data
	events  []domain.Event
	vendors []domain.Vendor
	uploads []attachment

	// Shortlisted vendor IDs from the multi picker
	shortlist []string

	// Navigation
	router  *navigation.Router
	cursors map[string]*navigation.Cursor

	// Events page filter and sort
	filter      *domain.EventFilter
	sort        domain.Sort
	vendorQuery string

	// Keyboard mode and the shared search/command input
	mode  Mode
	input textinput.Model

	// Overlays and the ids of the records they act on
	overlays  *overlay.Stack
	editingID string
	cancelID  string

	// Transient feedback
	toasts *toast.Tray
	notice *notice.Notice

	// Terminal size
	width  int
	height int

	styles      *styles.Styles
	config      *config.Config
	attachments Attachments
	logger      *slog.Logger

	debug       bool
	faultArmed  bool
	initialPath string
}

// New creates a new application model
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	events := opts.Events
	if events == nil {
		events = domain.SampleEvents()
	}
	vendors := opts.Vendors
	if vendors == nil {
		vendors = domain.SampleVendors()
	}

	ti := textinput.New()
	ti.CharLimit = 100
	ti.Width = 40

	router := navigation.NewRouter(
		navigation.Route{Path: PathHome, Title: "Dashboard"},
		navigation.Route{Path: PathEvents, Title: "Events"},
		navigation.Route{Path: PathVendors, Title: "Vendors"},
		navigation.Route{Path: PathUploads, Title: "Uploads"},
	)

	cursors := make(map[string]*navigation.Cursor)
	for _, r := range router.Routes() {
		cursors[r.Path] = &navigation.Cursor{}
	}

	return Model{
		events:      events,
		vendors:     vendors,
		router:      router,
		cursors:     cursors,
		filter:      domain.NewEventFilter(),
		sort:        domain.Sort{Field: domain.SortByDate, Order: domain.SortAsc},
		mode:        ModeNormal,
		input:       ti,
		overlays:    overlay.NewStack(),
		toasts:      toast.NewTray(),
		notice:      notice.New(),
		styles:      styles.New(),
		config:      cfg,
		attachments: opts.Attachments,
		logger:      logger,
		debug:       opts.Debug,
		initialPath: cfg.UI.StartPath,
	}
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	if m.initialPath == "" || m.initialPath == PathHome {
		return nil
	}
	path := m.initialPath
	return func() tea.Msg { return navigation.NavigateMsg{Path: path} }
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if !m.overlays.IsEmpty() {
			return m, m.overlays.Update(msg)
		}
		return m.handleKey(msg)

	case toast.ExpireMsg:
		// Ticks can arrive late after a suspend, so drop everything overdue
		m.toasts.Expire(msg.ID)
		m.toasts.Sweep()
		return m, nil

	case notice.DismissMsg:
		// The tick may belong to the app notice or to a widget inside an overlay
		if m.notice.Update(msg) {
			return m, nil
		}
		return m, m.overlays.Broadcast(msg)

	case spinner.TickMsg:
		return m, m.overlays.Broadcast(msg)

	case navigation.NavigateMsg:
		m.navigate(msg.Path)
		return m, nil

	case overlay.CloseOverlayMsg:
		m.closeTop()
		return m, nil

	case overlay.PickedMsg:
		return m.handlePicked(msg)

	case overlay.ModalCloseMsg:
		return m.handleModalClose(msg)

	case overlay.ModalConfirmMsg:
		return m.handleModalConfirm(msg)

	case overlay.SelectionMsg:
		return m.handleSelection(msg)

	case upload.FileAcceptedMsg:
		m.logger.Info("file accepted",
			"widget", msg.WidgetID,
			"name", msg.Descriptor.Name,
			"size", msg.Descriptor.SizeBytes,
			"mime", msg.Descriptor.MimeType,
		)
		return m, nil

	case upload.FileRemovedMsg:
		m.logger.Info("file removed", "widget", msg.WidgetID)
		return m, nil

	case eventSavedMsg:
		return m.handleEventSaved(msg)

	case copiedMsg:
		return m.handleCopied(msg)
	}

	// Anything else (inspection results, input blinks) belongs to an overlay
	if !m.overlays.IsEmpty() {
		return m, m.overlays.Broadcast(msg)
	}
	if m.mode != ModeNormal {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Mode returns the keyboard mode shown in the status bar
func (m Model) Mode() Mode {
	if !m.overlays.IsEmpty() {
		return ModeOverlay
	}
	return m.mode
}

// navigate switches pages. Unknown paths render the not-found page.
func (m *Model) navigate(path string) {
	m.exitInput()
	if err := m.router.Navigate(path); err != nil {
		m.logger.Debug("navigate", "error", err)
	}
}

func (m *Model) back() {
	m.exitInput()
	m.router.Back()
}

func (m *Model) home() {
	m.exitInput()
	m.router.Home()
}

func (m *Model) exitInput() {
	m.mode = ModeNormal
	m.input.Blur()
	m.input.SetValue("")
}

// closeTop pops the top overlay and releases anything it owns
func (m *Model) closeTop() {
	top := m.overlays.Pop()
	if modal, ok := top.(*overlay.Modal); ok {
		if w, ok := modal.Body().(*upload.Widget); ok {
			w.Dispose()
		}
	}
}

// topModal returns the top overlay when it is the modal with id
func (m Model) topModal(id string) (*overlay.Modal, bool) {
	modal, ok := m.overlays.Current().(*overlay.Modal)
	if !ok || modal.ID() != id {
		return nil, false
	}
	return modal, true
}

func (m *Model) toast(level types.ToastLevel, message string) tea.Cmd {
	return m.toasts.Add(level, message, m.config.ToastTTL())
}

// cursor returns the cursor for the current page
func (m Model) cursor() *navigation.Cursor {
	c, ok := m.cursors[m.router.Path()]
	if !ok {
		c = &navigation.Cursor{}
		m.cursors[m.router.Path()] = c
	}
	return c
}

func (m *Model) addUpload(d domain.UploadedFileDescriptor) {
	m.uploads = append(m.uploads, attachment{ID: uuid.NewString(), File: d})
}
