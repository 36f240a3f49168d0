package upload

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/marquee/internal/domain"
	"github.com/riordanpawley/marquee/internal/ui/notice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInspector struct {
	files     map[string]domain.FileCandidate
	clipboard *domain.FileCandidate
}

func (f *fakeInspector) Inspect(_ context.Context, path string) (domain.FileCandidate, error) {
	c, ok := f.files[path]
	if !ok {
		return domain.FileCandidate{}, &domain.AttachmentError{Op: "inspect", Path: path, Err: domain.ErrNotFound}
	}
	return c, nil
}

func (f *fakeInspector) FromClipboard(context.Context) (domain.FileCandidate, error) {
	if f.clipboard == nil {
		return domain.FileCandidate{}, &domain.AttachmentError{Op: "clipboard", Err: domain.ErrNotFound}
	}
	return *f.clipboard, nil
}

var (
	contract = domain.FileCandidate{Name: "contract.pdf", Path: "/docs/contract.pdf", SizeBytes: 2048, MimeType: "application/pdf"}
	photo    = domain.FileCandidate{Name: "venue.png", Path: "/docs/venue.png", SizeBytes: 500, MimeType: "image/png", PreviewURI: "file:///docs/venue.png"}
	huge     = domain.FileCandidate{Name: "video.pdf", Path: "/docs/video.pdf", SizeBytes: 5_242_880, MimeType: "application/pdf"}
	sheet    = domain.FileCandidate{Name: "budget.xlsx", Path: "/docs/budget.xlsx", SizeBytes: 100, MimeType: "application/vnd.ms-excel"}
)

func newTestWidget() (*Widget, *fakeInspector) {
	insp := &fakeInspector{files: map[string]domain.FileCandidate{
		contract.Path: contract,
		photo.Path:    photo,
		huge.Path:     huge,
	}}
	w := New(insp, domain.UploadConstraints{
		Accept:       []string{".pdf", "image/*"},
		MaxSizeBytes: 1024 * 1024,
	}, WithID("docs"), WithNoticeTTL(time.Millisecond))
	return w, insp
}

// collect runs cmd and every command it batches, returning the messages
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

// run feeds msg to the widget and then every message its commands produce
func run(w *Widget, msg tea.Msg) []tea.Msg {
	var out []tea.Msg
	for _, m := range collect(w.Update(msg)) {
		out = append(out, m)
		if _, ok := m.(candidateMsg); ok {
			out = append(out, collect(w.Update(m))...)
		}
	}
	return out
}

func accepted(msgs []tea.Msg) []FileAcceptedMsg {
	var out []FileAcceptedMsg
	for _, m := range msgs {
		if a, ok := m.(FileAcceptedMsg); ok {
			out = append(out, a)
		}
	}
	return out
}

func TestNew(t *testing.T) {
	w, _ := newTestWidget()
	assert.Equal(t, StateEmpty, w.State())
	assert.Equal(t, "docs", w.ID())
	_, held := w.Held()
	assert.False(t, held)
	assert.Nil(t, w.Err())
	assert.Nil(t, w.Init())
}

func TestPresent_ValidFileAcceptedOnce(t *testing.T) {
	w, _ := newTestWidget()

	msgs := collect(w.Present(contract))
	acc := accepted(msgs)

	require.Len(t, acc, 1)
	assert.Equal(t, "docs", acc[0].WidgetID)
	assert.Equal(t, contract.SizeBytes, acc[0].Descriptor.SizeBytes)
	assert.Equal(t, "contract.pdf", acc[0].Descriptor.Name)
	assert.Equal(t, StateHolding, w.State())
	assert.True(t, w.Notice().Visible())
	assert.Equal(t, "File ready", w.Notice().Text())
}

func TestPresent_TooLargeNeverAccepted(t *testing.T) {
	w, _ := newTestWidget()

	msgs := collect(w.Present(huge))

	assert.Empty(t, accepted(msgs))
	assert.Equal(t, StateError, w.State())
	require.NotNil(t, w.Err())
	assert.ErrorIs(t, w.Err(), domain.ErrFileTooLarge)
	assert.Contains(t, w.View(), "Try another file")
}

func TestPresent_UnsupportedType(t *testing.T) {
	w, _ := newTestWidget()

	assert.Empty(t, accepted(collect(w.Present(sheet))))
	assert.Equal(t, StateError, w.State())
	assert.ErrorIs(t, w.Err(), domain.ErrUnsupportedType)
}

func TestPresent_NewCandidateClearsError(t *testing.T) {
	w, _ := newTestWidget()
	w.Present(huge)
	first := w.Err()
	require.NotNil(t, first)

	w.Present(sheet)
	assert.NotSame(t, first, w.Err(), "old error must not survive a new candidate")
	assert.ErrorIs(t, w.Err(), domain.ErrUnsupportedType)

	collect(w.Present(photo))
	assert.Nil(t, w.Err())
	assert.Equal(t, StateHolding, w.State())
}

func TestPresent_IgnoredWhileHolding(t *testing.T) {
	w, _ := newTestWidget()
	collect(w.Present(contract))

	assert.Nil(t, w.Present(photo))
	d, ok := w.Held()
	require.True(t, ok)
	assert.Equal(t, "contract.pdf", d.Name)
}

func TestRemove(t *testing.T) {
	w, _ := newTestWidget()
	collect(w.Present(contract))

	msgs := collect(w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}))
	require.Len(t, msgs, 1)
	assert.Equal(t, FileRemovedMsg{WidgetID: "docs"}, msgs[0])
	assert.Equal(t, StateEmpty, w.State())

	assert.Nil(t, w.Remove(), "removing again must not fire a second FileRemovedMsg")
	assert.Nil(t, w.Update(tea.KeyMsg{Type: tea.KeyBackspace}))
}

func TestRemove_NotHolding(t *testing.T) {
	w, _ := newTestWidget()
	assert.Nil(t, w.Remove())

	w.Present(huge)
	assert.Nil(t, w.Remove())
	assert.Equal(t, StateError, w.State())
}

func TestDragAndDrop(t *testing.T) {
	w, _ := newTestWidget()

	w.Update(DragEnterMsg{})
	assert.Equal(t, StateDragActive, w.State())
	assert.Contains(t, w.View(), "Release to upload")

	w.Update(DragLeaveMsg{})
	assert.Equal(t, StateEmpty, w.State())

	w.Update(DragEnterMsg{})
	msgs := run(w, DropMsg{Path: photo.Path})

	acc := accepted(msgs)
	require.Len(t, acc, 1)
	assert.Equal(t, photo.PreviewURI, acc[0].Descriptor.PreviewURI)
	assert.Equal(t, StateHolding, w.State())
}

func TestDragWithoutDropKeepsError(t *testing.T) {
	w, _ := newTestWidget()
	w.Present(huge)
	require.Equal(t, StateError, w.State())

	w.Update(DragEnterMsg{})
	assert.Equal(t, StateDragActive, w.State())
	assert.NotNil(t, w.Err())

	w.Update(DragLeaveMsg{})
	assert.Equal(t, StateError, w.State())
	require.NotNil(t, w.Err())
	assert.Contains(t, w.View(), "Try another file")

	// A real drop clears it
	w.Update(DragEnterMsg{})
	msgs := run(w, DropMsg{Path: contract.Path})
	assert.Len(t, accepted(msgs), 1)
	assert.Nil(t, w.Err())
	assert.Equal(t, StateHolding, w.State())
}

func TestDragIgnoredWhileHolding(t *testing.T) {
	w, _ := newTestWidget()
	collect(w.Present(contract))

	w.Update(DragEnterMsg{})
	assert.Equal(t, StateHolding, w.State())
	assert.Nil(t, w.Update(DropMsg{Path: photo.Path}))
}

func TestDrop_MissingFileShowsError(t *testing.T) {
	w, _ := newTestWidget()

	msgs := run(w, DropMsg{Path: "/nowhere.pdf"})

	assert.Empty(t, accepted(msgs))
	assert.Equal(t, StateError, w.State())
	assert.ErrorIs(t, w.Err(), domain.ErrNotFound)
	assert.Equal(t, "File not found.", w.Err().Message)
}

func TestBracketedPasteIsADrop(t *testing.T) {
	w, _ := newTestWidget()

	msgs := run(w, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(contract.Path), Paste: true})

	require.Len(t, accepted(msgs), 1)
	assert.Equal(t, StateHolding, w.State())
}

func TestPathPrompt(t *testing.T) {
	w, _ := newTestWidget()

	w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	require.True(t, w.CapturingInput())

	for _, r := range contract.Path {
		w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	assert.Equal(t, StateEmpty, w.State(), "typing 'd' into the prompt must not act as remove")

	msgs := run(w, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, w.CapturingInput())
	require.Len(t, accepted(msgs), 1)
}

func TestPathPrompt_EscCancels(t *testing.T) {
	w, _ := newTestWidget()

	w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	w.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, w.CapturingInput())
	assert.Equal(t, StateEmpty, w.State())
	assert.Nil(t, w.Update(tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestClipboard(t *testing.T) {
	w, insp := newTestWidget()
	insp.clipboard = &photo

	msgs := run(w, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})
	require.Len(t, accepted(msgs), 1)
	assert.Equal(t, StateHolding, w.State())
}

func TestNoticeDismisses(t *testing.T) {
	w, _ := newTestWidget()
	msgs := collect(w.Present(contract))

	var dismiss notice.DismissMsg
	for _, m := range msgs {
		if d, ok := m.(notice.DismissMsg); ok {
			dismiss = d
		}
	}
	require.Equal(t, w.Notice().ID(), dismiss.ID)

	w.Update(dismiss)
	assert.False(t, w.Notice().Visible())
	assert.Equal(t, StateHolding, w.State())
}

func TestDispose_LateMessagesAreNoOps(t *testing.T) {
	w, _ := newTestWidget()
	msgs := collect(w.Present(contract))
	w.Dispose()

	for _, m := range msgs {
		assert.Nil(t, w.Update(m))
	}
	assert.Nil(t, w.Update(candidateMsg{widgetID: "docs", candidate: photo}))
	assert.Nil(t, w.Present(photo))
	assert.False(t, w.Notice().Visible())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "empty", StateEmpty.String())
	assert.Equal(t, "drag-active", StateDragActive.String())
	assert.Equal(t, "holding", StateHolding.String())
	assert.Equal(t, "error", StateError.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestView(t *testing.T) {
	w, _ := newTestWidget()
	view := w.View()
	assert.Contains(t, view, "Drag a file here")
	assert.Contains(t, view, ".pdf, image/*")
	assert.Contains(t, view, "up to 1.0 MB")

	collect(w.Present(contract))
	view = w.View()
	assert.Contains(t, view, "contract.pdf")
	assert.Contains(t, view, "2.0 KB")
}
