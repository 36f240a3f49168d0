package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/marquee/internal/domain"
	"github.com/riordanpawley/marquee/internal/types"
	"github.com/riordanpawley/marquee/internal/ui/overlay"
	"github.com/riordanpawley/marquee/internal/ui/upload"
)

// Overlay identifiers
const (
	pickerJumpEvent    = "jump-event"
	pickerVendors      = "shortlist-vendors"
	pickerCategories   = "filter-categories"
	pickerStatuses     = "filter-statuses"
	modalEditEvent     = "edit-event"
	modalEventDetails  = "event-details"
	modalVendorDetails = "vendor-details"
	modalFileDetails   = "file-details"
	modalUpload        = "upload"
	confirmCancelEvent = "cancel-event"
)

const copyTimeout = 2 * time.Second

// eventSavedMsg is sent when the simulated save finishes
type eventSavedMsg struct {
	event domain.Event
}

// copiedMsg reports a clipboard write
type copiedMsg struct {
	text string
	err  error
}

// eventPicker lists every event, restricted to the active category filter
func (m Model) eventPicker() *overlay.Picker {
	var pred func(domain.SelectableItem) bool
	if len(m.filter.Category) > 0 {
		cats := make(map[string]bool, len(m.filter.Category))
		for c := range m.filter.Category {
			cats[string(c)] = true
		}
		pred = func(i domain.SelectableItem) bool { return cats[i.Category] }
	}
	return overlay.NewPicker(pickerJumpEvent, "Jump to event",
		domain.EventItems(m.events), overlay.PickSingle, overlay.WithPredicate(pred))
}

func (m Model) vendorPicker() *overlay.Picker {
	return overlay.NewPicker(pickerVendors, "Shortlist vendors",
		domain.VendorItems(m.vendors), overlay.PickMulti, overlay.WithNoun("vendors"))
}

func (m Model) categoryPicker() *overlay.Picker {
	items := make([]domain.SelectableItem, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		items = append(items, domain.SelectableItem{
			ID:       string(c),
			Category: string(c),
			Fields:   []string{c.String()},
		})
	}
	return overlay.NewPicker(pickerCategories, "Filter by category",
		items, overlay.PickMulti, overlay.WithNoun("categories"))
}

func (m Model) statusPicker() *overlay.Picker {
	items := make([]domain.SelectableItem, 0, len(domain.EventStatuses))
	for _, s := range domain.EventStatuses {
		items = append(items, domain.SelectableItem{ID: string(s), Fields: []string{s.String()}})
	}
	return overlay.NewPicker(pickerStatuses, "Filter by status",
		items, overlay.PickMulti, overlay.WithNoun("statuses"))
}

// handlePicked applies a finalized selection and closes the picker
func (m Model) handlePicked(msg overlay.PickedMsg) (tea.Model, tea.Cmd) {
	if p, ok := m.overlays.Current().(*overlay.Picker); ok && p.ID() == msg.PickerID {
		m.closeTop()
	}
	if len(msg.IDs) == 0 {
		return m, nil
	}

	switch msg.PickerID {
	case pickerJumpEvent:
		id := msg.IDs[0]
		m.navigate(PathEvents)
		if !m.eventVisible(id) {
			m.filter.Clear()
		}
		m.cursors[PathEvents].Set(id, 0)
		return m, nil

	case pickerVendors:
		m.shortlist = msg.IDs
		return m, m.toast(types.ToastSuccess, fmt.Sprintf("%d vendors shortlisted", len(msg.IDs)))

	case pickerCategories:
		m.filter.Category = make(map[domain.Category]bool, len(msg.IDs))
		for _, id := range msg.IDs {
			m.filter.ToggleCategory(domain.Category(id))
		}
		return m, nil

	case pickerStatuses:
		m.filter.Status = make(map[domain.EventStatus]bool, len(msg.IDs))
		for _, id := range msg.IDs {
			m.filter.ToggleStatus(domain.EventStatus(id))
		}
		return m, nil
	}
	return m, nil
}

func (m Model) eventVisible(id string) bool {
	for _, e := range m.visibleEvents() {
		if e.ID == id {
			return true
		}
	}
	return false
}

// openEditModal opens the edit form for the highlighted event
func (m Model) openEditModal() (tea.Model, tea.Cmd) {
	e, ok := m.currentEvent()
	if !ok {
		return m, nil
	}

	form := overlay.NewForm(
		overlay.Field{Key: "name", Label: "Name", Value: e.Name, CharLimit: 80},
		overlay.Field{Key: "client", Label: "Client", Value: e.Client, CharLimit: 80},
		overlay.Field{Key: "venue", Label: "Venue", Value: e.Venue, CharLimit: 80},
		overlay.Field{Key: "guests", Label: "Guests", Value: strconv.Itoa(e.Guests), CharLimit: 6},
	)
	m.editingID = e.ID
	modal := overlay.NewEditModal(modalEditEvent, "Edit event",
		fmt.Sprintf("#%s · %s", e.ID, e.Category), form)
	return m, m.overlays.Push(modal)
}

// applyForm returns e updated with the form values
func applyForm(e domain.Event, values map[string]string) (domain.Event, error) {
	name := strings.TrimSpace(values["name"])
	if name == "" {
		return e, errors.New("name is required")
	}
	guests, err := strconv.Atoi(strings.TrimSpace(values["guests"]))
	if err != nil || guests < 0 {
		return e, fmt.Errorf("guests must be a whole number, got %q", values["guests"])
	}

	e.Name = name
	e.Client = strings.TrimSpace(values["client"])
	e.Venue = strings.TrimSpace(values["venue"])
	e.Guests = guests
	return e, nil
}

func saveEventCmd(e domain.Event, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return eventSavedMsg{event: e}
	})
}

// openDetailsModal shows the highlighted record read-only
func (m Model) openDetailsModal() (tea.Model, tea.Cmd) {
	if e, ok := m.currentEvent(); ok {
		details := overlay.NewDetails(
			overlay.Row{Label: "ID", Value: e.ID},
			overlay.Row{Label: "Client", Value: e.Client},
			overlay.Row{Label: "Venue", Value: e.Venue},
			overlay.Row{Label: "Category", Value: e.Category.String()},
			overlay.Row{Label: "Status", Value: e.Status.String()},
			overlay.Row{Label: "Date", Value: e.Date.Format("Mon, Jan 2 2006")},
			overlay.Row{Label: "Guests", Value: strconv.Itoa(e.Guests)},
			overlay.Row{Label: "Budget", Value: formatBudget(e.Budget)},
		)
		return m, m.overlays.Push(overlay.NewDetailsModal(modalEventDetails, e.Name, "Event details", details))
	}

	if v, ok := m.currentVendor(); ok {
		shortlisted := "no"
		if m.isShortlisted(v.ID) {
			shortlisted = "yes"
		}
		details := overlay.NewDetails(
			overlay.Row{Label: "ID", Value: v.ID},
			overlay.Row{Label: "Service", Value: v.Service},
			overlay.Row{Label: "City", Value: v.City},
			overlay.Row{Label: "Rating", Value: fmt.Sprintf("%.1f / 5", v.Rating)},
			overlay.Row{Label: "Shortlisted", Value: shortlisted},
		)
		return m, m.overlays.Push(overlay.NewDetailsModal(modalVendorDetails, v.Name, "Vendor details", details))
	}

	if u, _, ok := m.currentUpload(); ok {
		details := overlay.NewDetails(
			overlay.Row{Label: "Size", Value: domain.FormatSize(u.File.SizeBytes)},
			overlay.Row{Label: "Type", Value: u.File.MimeType},
			overlay.Row{Label: "Preview", Value: u.File.PreviewURI},
		)
		return m, m.overlays.Push(overlay.NewDetailsModal(modalFileDetails, u.File.Name, "Document", details))
	}

	return m, nil
}

// openUploadModal hosts a fresh upload widget in a modal
func (m Model) openUploadModal() (tea.Model, tea.Cmd) {
	if m.attachments == nil {
		return m, m.toast(types.ToastError, "File uploads are unavailable")
	}
	w := upload.New(m.attachments, m.config.UploadConstraints(),
		upload.WithID("documents"),
		upload.WithNoticeTTL(m.config.NoticeTTL()),
	)
	modal := overlay.NewDetailsModal(modalUpload, "Upload document", "Attach a contract or photo", w,
		overlay.WithConfirm("Attach"),
		overlay.WithCancelLabel("Cancel"),
	)
	return m, m.overlays.Push(modal)
}

// openCancelConfirm asks before cancelling the highlighted event
func (m Model) openCancelConfirm() (tea.Model, tea.Cmd) {
	e, ok := m.currentEvent()
	if !ok {
		return m, nil
	}
	if e.Status == domain.EventCancelled || e.Status == domain.EventCompleted {
		return m, m.toast(types.ToastInfo, fmt.Sprintf("%s is already %s", e.Name, e.Status))
	}
	m.cancelID = e.ID
	dialog := overlay.NewConfirmDialog(confirmCancelEvent, "Cancel event",
		fmt.Sprintf("Cancel %s?\nThis cannot be undone.", e.Name), "Cancel event")
	return m, m.overlays.Push(dialog)
}

// handleModalClose closes a modal unless it is busy
func (m Model) handleModalClose(msg overlay.ModalCloseMsg) (tea.Model, tea.Cmd) {
	modal, ok := m.topModal(msg.ID)
	if !ok || modal.Busy() {
		return m, nil
	}
	if msg.ID == modalEditEvent {
		m.editingID = ""
	}
	m.closeTop()
	return m, nil
}

// handleModalConfirm runs the primary action of the modal with msg.ID
func (m Model) handleModalConfirm(msg overlay.ModalConfirmMsg) (tea.Model, tea.Cmd) {
	modal, ok := m.topModal(msg.ID)
	if !ok || modal.Busy() {
		return m, nil
	}

	switch msg.ID {
	case modalEditEvent:
		form, ok := modal.Body().(*overlay.Form)
		if !ok {
			return m, nil
		}
		e, found := domain.FindEvent(m.events, m.editingID)
		if !found {
			m.closeTop()
			return m, m.toast(types.ToastError, "That event no longer exists")
		}
		if !form.Dirty() {
			m.closeTop()
			m.editingID = ""
			return m, m.toast(types.ToastInfo, "No changes")
		}
		updated, err := applyForm(e, form.Values())
		if err != nil {
			return m, m.toast(types.ToastError, err.Error())
		}
		m.logger.Debug("saving event", "id", updated.ID)
		return m, tea.Batch(modal.SetBusy(true), saveEventCmd(updated, m.config.SaveDelay()))

	case modalUpload:
		w, ok := modal.Body().(*upload.Widget)
		if !ok {
			return m, nil
		}
		held, ok := w.Held()
		if !ok {
			return m, m.toast(types.ToastWarning, "Choose a file first")
		}
		m.addUpload(held)
		m.closeTop()
		return m, m.toast(types.ToastSuccess, "Attached "+held.Name)
	}
	return m, nil
}

// handleEventSaved stores the saved event and closes the edit modal
func (m Model) handleEventSaved(msg eventSavedMsg) (tea.Model, tea.Cmd) {
	for i := range m.events {
		if m.events[i].ID == msg.event.ID {
			m.events[i] = msg.event
		}
	}
	if modal, ok := m.topModal(modalEditEvent); ok {
		modal.SetBusy(false)
		m.closeTop()
	}
	m.editingID = ""
	m.logger.Info("event saved", "id", msg.event.ID)
	return m, m.toast(types.ToastSuccess, "Event saved")
}

// handleSelection receives confirm dialog answers
func (m Model) handleSelection(msg overlay.SelectionMsg) (tea.Model, tea.Cmd) {
	if msg.Key != confirmCancelEvent {
		return m, nil
	}
	if d, ok := m.overlays.Current().(*overlay.ConfirmDialog); ok && d.ID() == msg.Key {
		m.closeTop()
	}

	id := m.cancelID
	m.cancelID = ""
	res, ok := msg.Value.(overlay.ConfirmResult)
	if !ok || !res.Confirmed {
		return m, nil
	}
	for i := range m.events {
		if m.events[i].ID == id {
			m.events[i].Status = domain.EventCancelled
			m.logger.Info("event cancelled", "id", id)
			return m, m.toast(types.ToastWarning, m.events[i].Name+" cancelled")
		}
	}
	return m, nil
}

// copySelectedID writes the highlighted event or vendor ID to the clipboard
func (m Model) copySelectedID() (tea.Model, tea.Cmd) {
	if m.attachments == nil {
		return m, nil
	}
	var id string
	if e, ok := m.currentEvent(); ok {
		id = e.ID
	} else if v, ok := m.currentVendor(); ok {
		id = v.ID
	} else {
		return m, nil
	}

	svc := m.attachments
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), copyTimeout)
		defer cancel()
		return copiedMsg{text: id, err: svc.CopyText(ctx, id)}
	}
}

func (m Model) handleCopied(msg copiedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Error("clipboard write failed", "error", msg.err)
		return m, m.toast(types.ToastError, "Could not copy to the clipboard")
	}
	return m, m.notice.Show("Copied "+msg.text, m.config.NoticeTTL())
}
