package app

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/marquee/internal/domain"
)

const (
	nameColumnWidth = 28
	upcomingLimit   = 5
)

// visibleEvents returns the events page list after filter and sort
func (m Model) visibleEvents() []domain.Event {
	return m.sort.Apply(m.filter.Apply(m.events))
}

// upcomingEvents returns the next open events by date for the dashboard
func (m Model) upcomingEvents() []domain.Event {
	var open []domain.Event
	for _, e := range m.events {
		if e.Status == domain.EventPlanning || e.Status == domain.EventConfirmed {
			open = append(open, e)
		}
	}
	byDate := domain.Sort{Field: domain.SortByDate, Order: domain.SortAsc}
	open = byDate.Apply(open)
	if len(open) > upcomingLimit {
		open = open[:upcomingLimit]
	}
	return open
}

// visibleVendors returns the vendors matching the vendor search
func (m Model) visibleVendors() []domain.Vendor {
	return domain.Filter(m.vendors, nil, m.vendorQuery, domain.Vendor.SearchFields)
}

// pageIDs returns the row IDs of the current page in display order
func (m Model) pageIDs() []string {
	var ids []string
	switch m.router.Path() {
	case PathHome:
		for _, e := range m.upcomingEvents() {
			ids = append(ids, e.ID)
		}
	case PathEvents:
		for _, e := range m.visibleEvents() {
			ids = append(ids, e.ID)
		}
	case PathVendors:
		for _, v := range m.visibleVendors() {
			ids = append(ids, v.ID)
		}
	case PathUploads:
		for _, u := range m.uploads {
			ids = append(ids, u.ID)
		}
	}
	return ids
}

// selectedID returns the highlighted row on the current page
func (m Model) selectedID() string {
	return m.cursor().Current(m.pageIDs())
}

// currentEvent returns the highlighted event on the dashboard or events page
func (m Model) currentEvent() (domain.Event, bool) {
	switch m.router.Path() {
	case PathHome, PathEvents:
		return domain.FindEvent(m.events, m.selectedID())
	}
	return domain.Event{}, false
}

// currentVendor returns the highlighted vendor on the vendors page
func (m Model) currentVendor() (domain.Vendor, bool) {
	if m.router.Path() != PathVendors {
		return domain.Vendor{}, false
	}
	id := m.selectedID()
	for _, v := range m.vendors {
		if v.ID == id {
			return v, true
		}
	}
	return domain.Vendor{}, false
}

// currentUpload returns the highlighted document on the uploads page
func (m Model) currentUpload() (attachment, int, bool) {
	if m.router.Path() != PathUploads {
		return attachment{}, -1, false
	}
	id := m.selectedID()
	for i, u := range m.uploads {
		if u.ID == id {
			return u, i, true
		}
	}
	return attachment{}, -1, false
}

func (m Model) isShortlisted(id string) bool {
	return slices.Contains(m.shortlist, id)
}

// renderPage renders the body of the current route
func (m Model) renderPage() string {
	if m.router.NotFound() {
		return m.renderNotFound()
	}
	switch m.router.Path() {
	case PathEvents:
		return m.renderEvents()
	case PathVendors:
		return m.renderVendors()
	case PathUploads:
		return m.renderUploads()
	default:
		return m.renderDashboard()
	}
}

func (m Model) renderHeader() string {
	tabs := make([]string, 0, len(m.router.Routes()))
	for i, r := range m.router.Routes() {
		label := fmt.Sprintf("%d %s", i+1, r.Title)
		if r.Path == m.router.Path() {
			tabs = append(tabs, m.styles.RowActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.PageSubtle.Render(label))
		}
	}
	brand := m.styles.PageTitle.UnsetMarginBottom().Render("marquee")
	header := brand + "  " + strings.Join(tabs, "   ")
	if m.router.CanGoBack() {
		header += "   " + m.styles.StatLabel.Render("b back")
	}
	return header
}

func (m Model) renderDashboard() string {
	confirmed, guests := 0, 0
	var budget int64
	for _, e := range m.events {
		if e.Status == domain.EventConfirmed {
			confirmed++
		}
		if e.Status != domain.EventCancelled {
			guests += e.Guests
			budget += e.Budget
		}
	}

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		m.stat(fmt.Sprint(len(m.events)), "events"), "    ",
		m.stat(fmt.Sprint(confirmed), "confirmed"), "    ",
		m.stat(fmt.Sprint(guests), "guests"), "    ",
		m.stat(formatBudget(budget), "booked"), "    ",
		m.stat(fmt.Sprint(len(m.uploads)), "documents"),
	)

	var b strings.Builder
	b.WriteString(stats)
	b.WriteString("\n\n")
	b.WriteString(m.styles.PageTitle.Render("Upcoming"))
	b.WriteString("\n")

	upcoming := m.upcomingEvents()
	if len(upcoming) == 0 {
		b.WriteString(m.styles.PageSubtle.Render("Nothing scheduled. Press 2 to browse events."))
		return m.styles.Page.Render(b.String())
	}
	b.WriteString(m.renderEventRows(upcoming))
	return m.styles.Page.Render(b.String())
}

func (m Model) stat(value, label string) string {
	return m.styles.Stat.Render(value) + " " + m.styles.StatLabel.Render(label)
}

func (m Model) renderEvents() string {
	var b strings.Builder
	b.WriteString(m.styles.PageTitle.Render("Events"))
	b.WriteString("\n")
	b.WriteString(m.styles.PageSubtle.Render(m.filterSummary()))
	b.WriteString("\n\n")

	events := m.visibleEvents()
	if len(events) == 0 {
		b.WriteString(m.emptyList("events", m.filter.IsActive()))
		return m.styles.Page.Render(b.String())
	}
	b.WriteString(m.renderEventRows(events))
	return m.styles.Page.Render(b.String())
}

func (m Model) renderEventRows(events []domain.Event) string {
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	active := m.cursor().Index(ids)

	rows := make([]string, 0, len(events))
	for i, e := range events {
		rows = append(rows, m.eventRow(e, i == active))
	}
	return strings.Join(rows, "\n")
}

func (m Model) eventRow(e domain.Event, active bool) string {
	prefix, nameStyle := "  ", m.styles.Row
	if active {
		prefix, nameStyle = "▸ ", m.styles.RowActive
	}
	name := nameStyle.Width(nameColumnWidth).Render(ansi.Truncate(e.Name, nameColumnWidth-2, "…"))
	date := m.styles.PageSubtle.Render(e.Date.Format("Jan 02 2006"))
	badge := m.styles.CategoryBadge(e.Category).Render(e.Category.String())
	status := m.styles.EventStatus(e.Status).Render(e.Status.String())
	guests := m.styles.StatLabel.Render(fmt.Sprintf("%d guests", e.Guests))
	return prefix + name + " " + date + "  " + badge + " " + status + "  " + guests
}

func (m Model) filterSummary() string {
	var parts []string
	if len(m.filter.Category) > 0 {
		cats := make([]string, 0, len(m.filter.Category))
		for c := range m.filter.Category {
			cats = append(cats, c.String())
		}
		sort.Strings(cats)
		parts = append(parts, "category: "+strings.Join(cats, ", "))
	}
	if len(m.filter.Status) > 0 {
		statuses := make([]string, 0, len(m.filter.Status))
		for _, s := range domain.EventStatuses {
			if m.filter.Status[s] {
				statuses = append(statuses, s.String())
			}
		}
		parts = append(parts, "status: "+strings.Join(statuses, ", "))
	}
	if m.filter.SearchQuery != "" {
		parts = append(parts, fmt.Sprintf("search: %q", m.filter.SearchQuery))
	}
	arrow := "↑"
	if m.sort.Order == domain.SortDesc {
		arrow = "↓"
	}
	parts = append(parts, fmt.Sprintf("sort: %s %s", m.sort.Field, arrow))
	return strings.Join(parts, " · ")
}

func (m Model) renderVendors() string {
	var b strings.Builder
	b.WriteString(m.styles.PageTitle.Render("Vendors"))
	b.WriteString("\n")
	summary := fmt.Sprintf("%d shortlisted", len(m.shortlist))
	if m.vendorQuery != "" {
		summary += fmt.Sprintf(" · search: %q", m.vendorQuery)
	}
	b.WriteString(m.styles.PageSubtle.Render(summary))
	b.WriteString("\n\n")

	vendors := m.visibleVendors()
	if len(vendors) == 0 {
		b.WriteString(m.emptyList("vendors", m.vendorQuery != ""))
		return m.styles.Page.Render(b.String())
	}

	ids := make([]string, len(vendors))
	for i, v := range vendors {
		ids[i] = v.ID
	}
	active := m.cursor().Index(ids)

	rows := make([]string, 0, len(vendors))
	for i, v := range vendors {
		prefix, nameStyle := "  ", m.styles.Row
		if i == active {
			prefix, nameStyle = "▸ ", m.styles.RowActive
		}
		mark := "  "
		if m.isShortlisted(v.ID) {
			mark = m.styles.Stat.Render("★") + " "
		}
		rows = append(rows, prefix+mark+
			nameStyle.Width(nameColumnWidth).Render(ansi.Truncate(v.Name, nameColumnWidth-2, "…"))+" "+
			m.styles.StatLabel.Render(fmt.Sprintf("%-14s %-10s %.1f", v.Service, v.City, v.Rating)))
	}
	b.WriteString(strings.Join(rows, "\n"))
	return m.styles.Page.Render(b.String())
}

func (m Model) renderUploads() string {
	var b strings.Builder
	b.WriteString(m.styles.PageTitle.Render("Documents"))
	b.WriteString("\n")

	if len(m.uploads) == 0 {
		b.WriteString(m.styles.PageSubtle.Render("No documents yet. Press u to upload one."))
		return m.styles.Page.Render(b.String())
	}

	active := m.cursor().Index(m.pageIDs())
	rows := make([]string, 0, len(m.uploads))
	for i, u := range m.uploads {
		prefix, nameStyle := "  ", m.styles.Row
		if i == active {
			prefix, nameStyle = "▸ ", m.styles.RowActive
		}
		rows = append(rows, prefix+
			nameStyle.Width(nameColumnWidth).Render(ansi.Truncate(u.File.Name, nameColumnWidth-2, "…"))+" "+
			m.styles.StatLabel.Render(domain.FormatSize(u.File.SizeBytes)+"  "+u.File.MimeType))
	}
	b.WriteString(strings.Join(rows, "\n"))
	return m.styles.Page.Render(b.String())
}

func (m Model) renderNotFound() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.FallbackTitle.Render("Page not found"),
		m.styles.FallbackBody.Render(fmt.Sprintf("Nothing lives at %s.", m.router.Path())),
		"",
		m.styles.MenuKey.Render("b")+" "+m.styles.MenuItem.Render("back")+"   "+
			m.styles.MenuKey.Render("H")+" "+m.styles.MenuItem.Render("home"),
	)
	return m.styles.Page.Render(m.styles.FallbackBox.Render(body))
}

// emptyList renders the empty state, distinguishing "no data" from "no matches"
func (m Model) emptyList(noun string, searching bool) string {
	if searching {
		return m.styles.PageSubtle.Render(fmt.Sprintf("No %s match your search.", noun)) + "\n" +
			m.styles.StatLabel.Render("Try adjusting your search.")
	}
	return m.styles.PageSubtle.Render(fmt.Sprintf("No %s yet.", noun)) + "\n" +
		m.styles.StatLabel.Render("Create one to get started.")
}

// formatBudget renders whole currency units with thousands separators
func formatBudget(amount int64) string {
	s := fmt.Sprint(amount)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-$" + b.String()
	}
	return "$" + b.String()
}
