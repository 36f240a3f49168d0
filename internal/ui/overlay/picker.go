package overlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/marquee/internal/domain"
)

// PickMode selects single or multi selection
type PickMode int

const (
	// PickSingle finalizes on the first pick
	PickSingle PickMode = iota
	// PickMulti toggles items and requires an explicit confirm
	PickMulti
)

// PickedMsg is sent when a picker finalizes a selection.
// The owner closes the picker on receipt.
type PickedMsg struct {
	PickerID string
	IDs      []string
}

const maxVisibleItems = 10

// Picker is a searchable list of items with single or multi selection
type Picker struct {
	id        string
	title     string
	noun      string
	items     []domain.SelectableItem
	mode      PickMode
	predicate func(domain.SelectableItem) bool
	input     textinput.Model
	selected  map[string]bool
	cursor    int
	open      bool
	styles    *Styles
}

// PickerOption configures a Picker
type PickerOption func(*Picker)

// WithPredicate restricts the list before the search query is applied
func WithPredicate(pred func(domain.SelectableItem) bool) PickerOption {
	return func(p *Picker) {
		p.predicate = pred
	}
}

// WithNoun sets the plural noun used in empty-state messages
func WithNoun(plural string) PickerOption {
	return func(p *Picker) {
		p.noun = plural
	}
}

// NewPicker creates a picker over items
func NewPicker(id, title string, items []domain.SelectableItem, mode PickMode, opts ...PickerOption) *Picker {
	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.Prompt = "/ "
	ti.CharLimit = 100
	ti.Width = 40
	ti.Focus()

	p := &Picker{
		id:       id,
		title:    title,
		noun:     "events",
		items:    items,
		mode:     mode,
		input:    ti,
		selected: make(map[string]bool),
		styles:   New(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ID returns the picker identifier carried by PickedMsg
func (p *Picker) ID() string {
	return p.id
}

// Mode returns the selection mode
func (p *Picker) Mode() PickMode {
	return p.mode
}

// SetOpen performs the open or close transition.
// Both directions clear the query, the selection and the cursor.
func (p *Picker) SetOpen(open bool) {
	p.open = open
	p.reset()
}

// IsOpen reports the visibility last set by the owner
func (p *Picker) IsOpen() bool {
	return p.open
}

func (p *Picker) reset() {
	p.input.SetValue("")
	p.selected = make(map[string]bool)
	p.cursor = 0
}

// Query returns the live search query
func (p *Picker) Query() string {
	return p.input.Value()
}

// SetQuery replaces the search query and moves the cursor to the top
func (p *Picker) SetQuery(q string) {
	p.input.SetValue(q)
	p.cursor = 0
}

// Visible returns the items passing both the predicate and the query
func (p *Picker) Visible() []domain.SelectableItem {
	return domain.Filter(p.items, p.predicate, p.input.Value(), domain.ItemFields)
}

// Toggle flips membership of id in the selection set (multi mode only)
func (p *Picker) Toggle(id string) {
	if p.mode != PickMulti {
		return
	}
	if p.selected[id] {
		delete(p.selected, id)
		return
	}
	p.selected[id] = true
}

// IsSelected reports whether id is in the selection set
func (p *Picker) IsSelected(id string) bool {
	return p.selected[id]
}

// Selected returns the selection set in item order
func (p *Picker) Selected() []string {
	ids := make([]string, 0, len(p.selected))
	for _, item := range p.items {
		if p.selected[item.ID] {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

// CanConfirm reports whether the multi-select confirm action is enabled
func (p *Picker) CanConfirm() bool {
	return p.mode == PickMulti && len(p.selected) > 0
}

// Confirm finalizes a multi selection. Returns nil while nothing is selected.
func (p *Picker) Confirm() tea.Cmd {
	if !p.CanConfirm() {
		return nil
	}
	return p.finish(p.Selected())
}

// Pick finalizes a single selection of id
func (p *Picker) Pick(id string) tea.Cmd {
	if p.mode != PickSingle {
		return nil
	}
	return p.finish([]string{id})
}

// finish emits the selection and performs the close transition locally
func (p *Picker) finish(ids []string) tea.Cmd {
	pickerID := p.id
	p.reset()
	return func() tea.Msg {
		return PickedMsg{PickerID: pickerID, IDs: ids}
	}
}

// Init initializes the picker
func (p *Picker) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	visible := p.Visible()
	switch keyMsg.String() {
	case "esc":
		p.reset()
		return p, func() tea.Msg { return CloseOverlayMsg{} }

	case "down", "ctrl+n":
		if p.cursor < len(visible)-1 {
			p.cursor++
		}
		return p, nil

	case "up", "ctrl+p":
		if p.cursor > 0 {
			p.cursor--
		}
		return p, nil

	case "tab":
		if p.mode == PickMulti && p.cursor < len(visible) {
			p.Toggle(visible[p.cursor].ID)
		}
		return p, nil

	case "enter":
		if p.mode == PickMulti {
			return p, p.Confirm()
		}
		if p.cursor < len(visible) {
			return p, p.Pick(visible[p.cursor].ID)
		}
		return p, nil
	}

	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.cursor = 0
	}
	return p, cmd
}

// View renders the picker
func (p *Picker) View() string {
	var b strings.Builder

	b.WriteString(p.input.View())
	b.WriteString("\n")
	b.WriteString(p.styles.Separator.Render(strings.Repeat("─", 50)))
	b.WriteString("\n")

	visible := p.Visible()
	if len(visible) == 0 {
		b.WriteString(p.emptyView())
	} else {
		start := 0
		if p.cursor >= maxVisibleItems {
			start = p.cursor - maxVisibleItems + 1
		}
		end := min(start+maxVisibleItems, len(visible))
		for i := start; i < end; i++ {
			b.WriteString(p.itemView(visible[i], i == p.cursor))
			b.WriteString("\n")
		}
		if len(visible) > maxVisibleItems {
			b.WriteString(p.styles.MenuCount.Render(fmt.Sprintf("%d of %d", p.cursor+1, len(visible))))
			b.WriteString("\n")
		}
	}

	b.WriteString(p.footerView())
	return b.String()
}

func (p *Picker) itemView(item domain.SelectableItem, active bool) string {
	style := p.styles.MenuItem
	prefix := "  "
	if active {
		style = p.styles.MenuItemActive
		prefix = "▸ "
	}

	check := ""
	if p.mode == PickMulti {
		check = "[ ] "
		if p.selected[item.ID] {
			check = p.styles.Check.Render("[x]") + " "
		}
	}

	line := prefix + check + style.Render(item.Label())
	if detail := item.Detail(); detail != "" {
		line += "  " + p.styles.Footer.UnsetMarginTop().Render(detail)
	}
	return line
}

func (p *Picker) emptyView() string {
	if p.input.Value() != "" {
		return p.styles.Empty.Render(fmt.Sprintf("No %s match your search.", p.noun)) + "\n" +
			p.styles.EmptyDetail.Render("Try adjusting your search.") + "\n"
	}
	return p.styles.Empty.Render(fmt.Sprintf("No %s yet.", p.noun)) + "\n" +
		p.styles.EmptyDetail.Render("Create one to get started.") + "\n"
}

func (p *Picker) footerView() string {
	if p.mode == PickSingle {
		return p.styles.Footer.Render("↑/↓: move • enter: select • esc: close")
	}

	confirm := p.styles.MenuKey.Render(fmt.Sprintf("enter: confirm (%d)", len(p.selected)))
	if !p.CanConfirm() {
		confirm = p.styles.MenuKeyDisabled.Render("enter: confirm")
	}
	return p.styles.Footer.Render("↑/↓: move • tab: toggle • esc: close • ") + confirm
}

// Title returns the picker title
func (p *Picker) Title() string {
	return p.title
}

// Size returns the picker dimensions
func (p *Picker) Size() (width, height int) {
	rows := min(max(len(p.Visible()), 2), maxVisibleItems)
	return 60, rows + 6
}
