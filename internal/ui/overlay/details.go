package overlay

import "strings"

// Row is a label/value pair shown by Details
type Row struct {
	Label string
	Value string
}

// Details is a read-only modal body of label/value rows
type Details struct {
	rows   []Row
	styles *Styles
}

// NewDetails creates a details body; rows with empty values show a dash
func NewDetails(rows ...Row) *Details {
	return &Details{rows: rows, styles: New()}
}

// Rows returns the rows in display order
func (d *Details) Rows() []Row {
	return d.rows
}

// View renders the rows
func (d *Details) View() string {
	lines := make([]string, 0, len(d.rows))
	for _, r := range d.rows {
		value := r.Value
		if value == "" {
			value = "-"
		}
		lines = append(lines, d.styles.FieldLabel.Render(r.Label)+" "+d.styles.FieldValue.Render(value))
	}
	return strings.Join(lines, "\n")
}
