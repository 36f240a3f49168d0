package domain

import (
	"reflect"
	"testing"
)

func weddingAndGala() []SelectableItem {
	return []SelectableItem{
		{ID: "1", Category: "wedding", Fields: []string{"Sarah & John Wedding"}},
		{ID: "2", Category: "corporate", Fields: []string{"Corporate Gala"}},
	}
}

func ids(items []SelectableItem) []string {
	out := make([]string, 0, len(items))
	for _, i := range items {
		out = append(out, i.ID)
	}
	return out
}

func TestFilter_QueryIsCaseInsensitive(t *testing.T) {
	for _, query := range []string{"corp", "CORP", "Corp"} {
		t.Run(query, func(t *testing.T) {
			got := Filter(weddingAndGala(), nil, query, ItemFields)
			if want := []string{"2"}; !reflect.DeepEqual(ids(got), want) {
				t.Errorf("Filter(%q) = %v, want %v", query, ids(got), want)
			}
		})
	}
}

func TestFilter_EmptyQueryKeepsEverything(t *testing.T) {
	got := Filter(weddingAndGala(), nil, "", ItemFields)
	if want := []string{"1", "2"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("Filter() = %v, want %v", ids(got), want)
	}
}

func TestFilter_PredicateAndQueryAreConjoined(t *testing.T) {
	items := []SelectableItem{
		{ID: "1", Category: "wedding", Fields: []string{"Garden Wedding", "Rosewood"}},
		{ID: "2", Category: "corporate", Fields: []string{"Garden Party", "Acme"}},
		{ID: "3", Category: "wedding", Fields: []string{"Beach Wedding", "Garden Hotel"}},
		{ID: "4", Category: "wedding", Fields: []string{"Chapel Wedding", "Downtown"}},
	}

	got := Filter(items, CategoryPredicate(CategoryWedding), "garden", ItemFields)
	if want := []string{"1", "3"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("Filter() = %v, want %v", ids(got), want)
	}
}

func TestFilter_MatchesAnyField(t *testing.T) {
	items := []SelectableItem{
		{ID: "a", Fields: []string{"Launch Party", "Acme", "Pier 39"}},
		{ID: "b", Fields: []string{"Retreat", "Globex", "Lodge"}},
	}

	got := Filter(items, nil, "pier", ItemFields)
	if want := []string{"a"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("Filter() = %v, want %v", ids(got), want)
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	items := weddingAndGala()
	before := make([]SelectableItem, len(items))
	copy(before, items)

	_ = Filter(items, func(i SelectableItem) bool { return i.ID == "2" }, "gala", ItemFields)

	if !reflect.DeepEqual(items, before) {
		t.Errorf("Filter() mutated input: %v", items)
	}
}

func TestFilter_NoMatches(t *testing.T) {
	got := Filter(weddingAndGala(), nil, "picnic", ItemFields)
	if got == nil {
		t.Fatal("Filter() returned nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("Filter() = %v, want empty", ids(got))
	}
}

func TestMatchesQuery(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		query  string
		want   bool
	}{
		{"empty query", []string{"anything"}, "", true},
		{"no fields", nil, "x", false},
		{"second field", []string{"Gala", "Hope Foundation"}, "HOPE", true},
		{"miss", []string{"Gala"}, "wedding", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesQuery(tt.fields, tt.query); got != tt.want {
				t.Errorf("MatchesQuery() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventFilter_IsActive(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(*EventFilter)
		active bool
	}{
		{
			name:   "empty filter is inactive",
			setup:  func(f *EventFilter) {},
			active: false,
		},
		{
			name:   "category filter is active",
			setup:  func(f *EventFilter) { f.ToggleCategory(CategoryGala) },
			active: true,
		},
		{
			name:   "status filter is active",
			setup:  func(f *EventFilter) { f.ToggleStatus(EventPlanning) },
			active: true,
		},
		{
			name:   "search query is active",
			setup:  func(f *EventFilter) { f.SearchQuery = "gala" },
			active: true,
		},
		{
			name: "toggling twice clears",
			setup: func(f *EventFilter) {
				f.ToggleCategory(CategoryGala)
				f.ToggleCategory(CategoryGala)
			},
			active: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewEventFilter()
			tt.setup(f)
			if got := f.IsActive(); got != tt.active {
				t.Errorf("IsActive() = %v, want %v", got, tt.active)
			}
		})
	}
}

func TestEventFilter_Apply(t *testing.T) {
	events := SampleEvents()

	f := NewEventFilter()
	f.ToggleCategory(CategoryCorporate)
	f.SearchQuery = "northwind"

	got := f.Apply(events)
	var gotIDs []string
	for _, e := range got {
		gotIDs = append(gotIDs, e.ID)
	}
	if want := []string{"2", "7"}; !reflect.DeepEqual(gotIDs, want) {
		t.Errorf("Apply() = %v, want %v", gotIDs, want)
	}

	f.Clear()
	if len(f.Apply(events)) != len(events) {
		t.Error("cleared filter should return every event")
	}
}

func TestCategoryPredicate_EmptyAcceptsAll(t *testing.T) {
	if CategoryPredicate("") != nil {
		t.Error("CategoryPredicate(\"\") should be nil")
	}
}
