package overlay

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingBody counts the messages forwarded by the shell
type recordingBody struct {
	received []tea.Msg
}

func (b *recordingBody) View() string { return "body content" }

func (b *recordingBody) Update(msg tea.Msg) tea.Cmd {
	b.received = append(b.received, msg)
	return nil
}

func TestNewEditModal(t *testing.T) {
	m := NewEditModal("edit-1", "Edit Event", "Update the details", NewDetails())
	require.NotNil(t, m)
	assert.Equal(t, "edit-1", m.ID())
	assert.Equal(t, "Edit Event", m.Title())
	assert.Equal(t, ModalEdit, m.Kind())
	assert.True(t, m.HasConfirm())
	assert.False(t, m.Busy())
}

func TestNewDetailsModal(t *testing.T) {
	m := NewDetailsModal("view-1", "Event Details", "", NewDetails())
	assert.Equal(t, ModalDetails, m.Kind())
	assert.False(t, m.HasConfirm())

	withConfirm := NewDetailsModal("view-2", "Event Details", "", NewDetails(), WithConfirm("Open"))
	assert.True(t, withConfirm.HasConfirm())
}

func TestModal_EscForwardsClose(t *testing.T) {
	m := NewEditModal("edit-1", "Edit", "", NewDetails())

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, ModalCloseMsg{ID: "edit-1"}, cmd())
	assert.Same(t, m, model, "shell should not replace itself")
	assert.False(t, m.Busy())
}

func TestModal_EnterForwardsConfirm(t *testing.T) {
	for _, key := range []tea.KeyMsg{{Type: tea.KeyEnter}, {Type: tea.KeyCtrlS}} {
		m := NewEditModal("edit-1", "Edit", "", NewDetails())
		_, cmd := m.Update(key)
		require.NotNil(t, cmd, key.String())
		assert.Equal(t, ModalConfirmMsg{ID: "edit-1"}, cmd(), key.String())
	}
}

func TestModal_EnterOnCloseOnlyFooterCloses(t *testing.T) {
	m := NewDetailsModal("view-1", "Details", "", NewDetails())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, ModalCloseMsg{ID: "view-1"}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
}

func TestModal_BusyGatesActionsAndBody(t *testing.T) {
	body := &recordingBody{}
	m := NewEditModal("edit-1", "Edit", "", body)

	tick := m.SetBusy(true)
	assert.NotNil(t, tick, "entering busy should start the spinner")
	assert.True(t, m.Busy())

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyEnter},
		{Type: tea.KeyRunes, Runes: []rune{'a'}},
	} {
		_, cmd := m.Update(key)
		assert.Nil(t, cmd, "busy modal should ignore %s", key.String())
	}
	assert.Empty(t, body.received)

	assert.Nil(t, m.SetBusy(true), "repeated SetBusy should be a no-op")
	m.SetBusy(false)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, ModalCloseMsg{ID: "edit-1"}, cmd())
}

func TestModal_SpinnerTicksOnlyWhileBusy(t *testing.T) {
	m := NewEditModal("edit-1", "Edit", "", NewDetails())

	_, cmd := m.Update(spinner.TickMsg{})
	assert.Nil(t, cmd)

	m.SetBusy(true)
	assert.Contains(t, m.View(), "Save")
}

func TestModal_ForwardsOtherKeysToInteractiveBody(t *testing.T) {
	body := &recordingBody{}
	m := NewEditModal("edit-1", "Edit", "", body)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m.Update(tea.KeyMsg{Type: tea.KeyTab})

	assert.Len(t, body.received, 2)
}

func TestModal_View(t *testing.T) {
	m := NewEditModal("edit-1", "Edit", "Update the event", &recordingBody{})
	view := m.View()

	assert.Contains(t, view, "Update the event")
	assert.Contains(t, view, "body content")
	assert.Contains(t, view, "Cancel")
	assert.Contains(t, view, "Save")

	w, h := m.Size()
	assert.Equal(t, 56, w)
	assert.Greater(t, h, 3)
}

func TestDetails_View(t *testing.T) {
	d := NewDetails(Row{Label: "Client", Value: "Northwind"}, Row{Label: "Venue"})
	view := d.View()

	assert.Contains(t, view, "Client")
	assert.Contains(t, view, "Northwind")
	assert.Contains(t, view, "-")
	assert.Len(t, d.Rows(), 2)
}

// capturingBody owns every key while capturing is set
type capturingBody struct {
	recordingBody
	capturing bool
}

func (b *capturingBody) CapturingInput() bool { return b.capturing }

func TestModal_CapturingBodyReceivesEsc(t *testing.T) {
	body := &capturingBody{capturing: true}
	m := NewDetailsModal("upload", "Upload", "", body)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd, "esc belongs to the body while it captures input")
	assert.Len(t, body.received, 1)

	body.capturing = false
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, ModalCloseMsg{ID: "upload"}, cmd())
}
