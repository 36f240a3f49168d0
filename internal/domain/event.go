// Package domain contains core marketplace types for the Marquee client.
package domain

import "time"

// Category groups events by the kind of occasion
type Category string

const (
	CategoryWedding    Category = "wedding"
	CategoryCorporate  Category = "corporate"
	CategoryBirthday   Category = "birthday"
	CategoryGala       Category = "gala"
	CategoryConference Category = "conference"
)

// Categories lists every known category in display order
var Categories = []Category{
	CategoryWedding,
	CategoryCorporate,
	CategoryBirthday,
	CategoryGala,
	CategoryConference,
}

// String returns the display string
func (c Category) String() string {
	return string(c)
}

// EventStatus represents where an event is in its lifecycle
type EventStatus string

const (
	EventPlanning  EventStatus = "planning"
	EventConfirmed EventStatus = "confirmed"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

// EventStatuses lists every status in lifecycle order
var EventStatuses = []EventStatus{
	EventPlanning,
	EventConfirmed,
	EventCompleted,
	EventCancelled,
}

// String returns the display string
func (s EventStatus) String() string {
	return string(s)
}

// Event is a booked or planned occasion in the marketplace
type Event struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Client   string      `json:"client"`
	Venue    string      `json:"venue"`
	Category Category    `json:"category"`
	Status   EventStatus `json:"status"`
	Date     time.Time   `json:"date"`
	Guests   int         `json:"guests"`
	Budget   int64       `json:"budget"` // whole currency units
}

// SearchFields returns the fields the live search matches against
func (e Event) SearchFields() []string {
	return []string{e.Name, e.Client, e.Venue}
}

// Item converts the event into a selectable list entry
func (e Event) Item() SelectableItem {
	return SelectableItem{
		ID:       e.ID,
		Category: string(e.Category),
		Fields:   e.SearchFields(),
	}
}

// EventItems converts events into selectable items, preserving order
func EventItems(events []Event) []SelectableItem {
	items := make([]SelectableItem, 0, len(events))
	for _, e := range events {
		items = append(items, e.Item())
	}
	return items
}

// Vendor is a service provider listed in the marketplace
type Vendor struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Service string  `json:"service"`
	City    string  `json:"city"`
	Rating  float64 `json:"rating"`
}

// SearchFields returns the fields the live search matches against
func (v Vendor) SearchFields() []string {
	return []string{v.Name, v.Service, v.City}
}

// Item converts the vendor into a selectable list entry keyed by service
func (v Vendor) Item() SelectableItem {
	return SelectableItem{
		ID:       v.ID,
		Category: v.Service,
		Fields:   v.SearchFields(),
	}
}

// VendorItems converts vendors into selectable items, preserving order
func VendorItems(vendors []Vendor) []SelectableItem {
	items := make([]SelectableItem, 0, len(vendors))
	for _, v := range vendors {
		items = append(items, v.Item())
	}
	return items
}
