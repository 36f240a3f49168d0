package domain

import "strings"

// SelectableItem is one entry of a selection list.
// ID is unique within a single list; Fields[0] doubles as the display label.
type SelectableItem struct {
	ID       string
	Category string
	Fields   []string
}

// Label returns the primary display text
func (i SelectableItem) Label() string {
	if len(i.Fields) == 0 {
		return i.ID
	}
	return i.Fields[0]
}

// Detail returns the secondary fields joined for display
func (i SelectableItem) Detail() string {
	if len(i.Fields) < 2 {
		return ""
	}
	parts := make([]string, 0, len(i.Fields)-1)
	for _, f := range i.Fields[1:] {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, " · ")
}

// ItemFields is the field accessor used when filtering selectable items
func ItemFields(i SelectableItem) []string {
	return i.Fields
}
