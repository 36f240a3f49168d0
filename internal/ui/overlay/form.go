package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Field describes one labelled input in a Form
type Field struct {
	Key         string
	Label       string
	Value       string
	Placeholder string
	CharLimit   int
}

// Form is an interactive modal body with labelled text inputs
type Form struct {
	fields []Field
	inputs []textinput.Model
	focus  int
	styles *Styles
}

// NewForm creates a form with the first field focused
func NewForm(fields ...Field) *Form {
	f := &Form{
		fields: fields,
		inputs: make([]textinput.Model, len(fields)),
		styles: New(),
	}
	for i, field := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = field.Placeholder
		ti.CharLimit = 200
		if field.CharLimit > 0 {
			ti.CharLimit = field.CharLimit
		}
		ti.Width = 38
		ti.SetValue(field.Value)
		f.inputs[i] = ti
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

// Init starts the cursor blink
func (f *Form) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles focus movement and forwards the rest to the focused input
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return f.setFocus((f.focus + 1) % len(f.inputs))
		case "shift+tab", "up":
			return f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs))
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *Form) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[f.focus].Focus()
}

// Focused returns the key of the focused field
func (f *Form) Focused() string {
	if len(f.fields) == 0 {
		return ""
	}
	return f.fields[f.focus].Key
}

// Value returns the current value of a field, or "" if the key is unknown
func (f *Form) Value(key string) string {
	for i, field := range f.fields {
		if field.Key == key {
			return f.inputs[i].Value()
		}
	}
	return ""
}

// Values returns the current value of every field keyed by Field.Key
func (f *Form) Values() map[string]string {
	values := make(map[string]string, len(f.fields))
	for i, field := range f.fields {
		values[field.Key] = f.inputs[i].Value()
	}
	return values
}

// Dirty reports whether any field differs from its initial value
func (f *Form) Dirty() bool {
	for i, field := range f.fields {
		if f.inputs[i].Value() != field.Value {
			return true
		}
	}
	return false
}

// View renders the form
func (f *Form) View() string {
	var b strings.Builder
	for i, field := range f.fields {
		if i > 0 {
			b.WriteString("\n")
		}
		label := f.styles.FieldLabel.Render(field.Label)
		if i == f.focus {
			label = f.styles.MenuItemActive.Width(12).Render(field.Label)
		}
		b.WriteString(label + " " + f.inputs[i].View())
	}
	return b.String()
}
