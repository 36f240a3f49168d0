package domain

import "time"

// SampleEvents returns the built-in event catalog shown by the client
func SampleEvents() []Event {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	return []Event{
		{ID: "1", Name: "Sarah & John Wedding", Client: "Sarah Miller", Venue: "Rosewood Estate", Category: CategoryWedding, Status: EventConfirmed, Date: day(2026, time.June, 14), Guests: 150, Budget: 45000},
		{ID: "2", Name: "Corporate Gala", Client: "Northwind Traders", Venue: "Grand Hyatt Ballroom", Category: CategoryCorporate, Status: EventPlanning, Date: day(2026, time.September, 3), Guests: 400, Budget: 120000},
		{ID: "3", Name: "Emma's 30th Birthday", Client: "Emma Clarke", Venue: "The Loft", Category: CategoryBirthday, Status: EventConfirmed, Date: day(2026, time.July, 22), Guests: 60, Budget: 8000},
		{ID: "4", Name: "Winter Charity Gala", Client: "Hope Foundation", Venue: "City Museum", Category: CategoryGala, Status: EventPlanning, Date: day(2026, time.December, 12), Guests: 250, Budget: 75000},
		{ID: "5", Name: "DevSummit 2026", Client: "Contoso Ltd", Venue: "Convention Center Hall B", Category: CategoryConference, Status: EventConfirmed, Date: day(2026, time.October, 8), Guests: 1200, Budget: 300000},
		{ID: "6", Name: "Patel Engagement Party", Client: "Priya Patel", Venue: "Lakeside Pavilion", Category: CategoryWedding, Status: EventCompleted, Date: day(2026, time.March, 28), Guests: 90, Budget: 15000},
		{ID: "7", Name: "Q3 Sales Kickoff", Client: "Northwind Traders", Venue: "Harbor Conference Suites", Category: CategoryCorporate, Status: EventCancelled, Date: day(2026, time.July, 1), Guests: 80, Budget: 12000},
	}
}

// SampleVendors returns the built-in vendor directory
func SampleVendors() []Vendor {
	return []Vendor{
		{ID: "v1", Name: "Bloom & Petal", Service: "Florist", City: "Portland", Rating: 4.8},
		{ID: "v2", Name: "Silver Spoon Catering", Service: "Catering", City: "Seattle", Rating: 4.6},
		{ID: "v3", Name: "Lumen Photo Co.", Service: "Photography", City: "Portland", Rating: 4.9},
		{ID: "v4", Name: "Beat Street DJs", Service: "Entertainment", City: "Tacoma", Rating: 4.3},
		{ID: "v5", Name: "Canvas Tents & Rentals", Service: "Rentals", City: "Salem", Rating: 4.5},
	}
}

// FindEvent returns the event with the given ID
func FindEvent(events []Event, id string) (Event, bool) {
	for _, e := range events {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}
