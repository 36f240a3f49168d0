package domain

import (
	"sort"
	"strings"
)

// SortField represents a field to sort by
type SortField string

const (
	SortByDate   SortField = "date"
	SortByName   SortField = "name"
	SortByGuests SortField = "guests"
)

// SortOrder represents sort direction
type SortOrder int

const (
	SortAsc SortOrder = iota
	SortDesc
)

// Sort represents sorting state
type Sort struct {
	Field SortField
	Order SortOrder
}

// Toggle toggles the sort field or direction
// If field is different, sets new field with ascending order
// If field is same, toggles between ascending and descending
func (s *Sort) Toggle(field SortField) {
	if s.Field == field {
		if s.Order == SortAsc {
			s.Order = SortDesc
		} else {
			s.Order = SortAsc
		}
	} else {
		s.Field = field
		s.Order = SortAsc
	}
}

// Apply sorts a copy of events; the input slice is left untouched
func (s *Sort) Apply(events []Event) []Event {
	if len(events) == 0 {
		return events
	}

	result := make([]Event, len(events))
	copy(result, events)

	var less func(i, j int) bool
	switch s.Field {
	case SortByDate:
		less = func(i, j int) bool { return result[i].Date.Before(result[j].Date) }
	case SortByName:
		less = func(i, j int) bool {
			return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
		}
	case SortByGuests:
		less = func(i, j int) bool { return result[i].Guests < result[j].Guests }
	default:
		return result
	}

	sort.SliceStable(result, func(i, j int) bool {
		if s.Order == SortDesc {
			return less(j, i)
		}
		return less(i, j)
	})
	return result
}
