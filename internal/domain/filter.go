package domain

import "strings"

// Filter returns the items that satisfy pred and whose fields contain query.
//
// A nil pred accepts every item and an empty query matches every item. The
// match is a case-insensitive substring test against each field; one hit is
// enough. Survivors keep their relative order and items is never modified.
func Filter[T any](items []T, pred func(T) bool, query string, fields func(T) []string) []T {
	result := make([]T, 0, len(items))
	q := strings.ToLower(query)
	for _, item := range items {
		if pred != nil && !pred(item) {
			continue
		}
		if q != "" && !containsFold(fields(item), q) {
			continue
		}
		result = append(result, item)
	}
	return result
}

// MatchesQuery reports whether any field contains query, ignoring case
func MatchesQuery(fields []string, query string) bool {
	if query == "" {
		return true
	}
	return containsFold(fields, strings.ToLower(query))
}

func containsFold(fields []string, lowered string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), lowered) {
			return true
		}
	}
	return false
}

// EventFilter represents event list filtering state
type EventFilter struct {
	Category    map[Category]bool
	Status      map[EventStatus]bool
	SearchQuery string
}

// NewEventFilter creates a new empty filter
func NewEventFilter() *EventFilter {
	return &EventFilter{
		Category: make(map[Category]bool),
		Status:   make(map[EventStatus]bool),
	}
}

// IsActive returns true if any filter is active
func (f *EventFilter) IsActive() bool {
	return len(f.Category) > 0 ||
		len(f.Status) > 0 ||
		f.SearchQuery != ""
}

// Matches reports whether the event passes the category and status filters.
// Uses AND logic between filter types, OR logic within filter types.
// The search query is applied separately by Apply.
func (f *EventFilter) Matches(e Event) bool {
	if len(f.Category) > 0 && !f.Category[e.Category] {
		return false
	}
	if len(f.Status) > 0 && !f.Status[e.Status] {
		return false
	}
	return true
}

// Apply filters a list of events
func (f *EventFilter) Apply(events []Event) []Event {
	if !f.IsActive() {
		return events
	}
	return Filter(events, f.Matches, f.SearchQuery, Event.SearchFields)
}

// Clear resets all filters
func (f *EventFilter) Clear() {
	f.Category = make(map[Category]bool)
	f.Status = make(map[EventStatus]bool)
	f.SearchQuery = ""
}

// ToggleCategory toggles a category filter
func (f *EventFilter) ToggleCategory(c Category) {
	if f.Category[c] {
		delete(f.Category, c)
	} else {
		f.Category[c] = true
	}
}

// ToggleStatus toggles a status filter
func (f *EventFilter) ToggleStatus(s EventStatus) {
	if f.Status[s] {
		delete(f.Status, s)
	} else {
		f.Status[s] = true
	}
}

// CategoryPredicate restricts selectable items to one category.
// An empty category accepts everything.
func CategoryPredicate(c Category) func(SelectableItem) bool {
	if c == "" {
		return nil
	}
	return func(i SelectableItem) bool {
		return i.Category == string(c)
	}
}
