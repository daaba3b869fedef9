package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/dialpick/internal/core/catalog"
	"github.com/colonyops/dialpick/internal/core/selection"
	"github.com/colonyops/dialpick/pkg/tuitest"
)

var (
	albania = catalog.Entry{Name: "Albania", Code: "AL", DialCode: "+355", Image: "al.svg"}
	algeria = catalog.Entry{Name: "Algeria", Code: "DZ", DialCode: "+213", Image: "dz.svg"}
	brazil  = catalog.Entry{Name: "Brazil", Code: "BR", DialCode: "+55", Image: "br.svg"}
	canada  = catalog.Entry{Name: "Canada", Code: "CA", DialCode: "+1", Image: "ca.svg"}
)

func testOptions() Options {
	return Options{
		Entries:     []catalog.Entry{albania, algeria, brazil, canada},
		Session:     selection.Options{Placeholder: "Choose country"},
		SearchHint:  "Search for a country",
		InputHint:   "Enter phone number",
		Display:     Display{ShowName: true, AlphabetBar: true},
		OpenOnStart: true,
		Logger:      zerolog.Nop(),
	}
}

func newModel(t *testing.T, opts Options, w, h int) Model {
	t.Helper()
	m, ok := tuitest.Send(New(opts), tuitest.WindowSize(w, h)).(Model)
	require.True(t, ok)
	return m
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	out, ok := tuitest.Send(m, msgs...).(Model)
	require.True(t, ok)
	return out
}

// update runs one message and then the message its command produces, the
// way the runtime would deliver a scroll.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Msg) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	if cmd == nil {
		return out, nil
	}
	return out, cmd()
}

func TestModel_OpenOnStart(t *testing.T) {
	m := newModel(t, testOptions(), 80, 24)

	require.True(t, m.Session().IsOpen())
	assert.Equal(t, 1, m.cursor, "cursor skips the first header")
	assert.Equal(t, 3, m.Session().Offsets().Len())
	assert.Equal(t, "A", m.Session().State().HighlightedHeader)

	view := tuitest.StripANSI(m.View())
	assert.Contains(t, view, "Search for a country")
	assert.Contains(t, view, "Albania")
	assert.Contains(t, view, "Canada")
}

func TestModel_Geometry(t *testing.T) {
	m := newModel(t, testOptions(), 80, 24)

	g := m.geometry()
	assert.Equal(t, 48, g.width)
	assert.Equal(t, 22, g.height)
	assert.Equal(t, 42, g.listW)
	assert.Equal(t, 17, g.listH)
	assert.Equal(t, 16, g.left)
	assert.Equal(t, 1, g.top)
	assert.Equal(t, 4, g.listY)
	assert.Equal(t, 61, g.barX)

	assert.Equal(t, g.listW, m.list.Width)
	assert.Equal(t, g.listH, m.list.Height)
}

func TestModel_TypingNarrows(t *testing.T) {
	m := newModel(t, testOptions(), 80, 24)
	m = send(t, m, tuitest.Type("br")...)

	assert.Equal(t, "br", m.Session().Query())
	assert.Equal(t, []catalog.Entry{brazil}, m.Session().Visible())
	assert.Equal(t, []string{"B"}, m.Session().Plan().Headers())
	assert.Equal(t, 1, m.cursor)

	view := tuitest.StripANSI(m.View())
	assert.Contains(t, view, "Brazil")
	assert.NotContains(t, view, "Albania")
}

func TestModel_NoMatches(t *testing.T) {
	m := newModel(t, testOptions(), 80, 24)
	m = send(t, m, tuitest.Type("zz")...)

	assert.Contains(t, tuitest.StripANSI(m.View()), "No matches")

	m = send(t, m, tuitest.KeyEnter())
	assert.True(t, m.Session().IsOpen(), "nothing to pick")
}

func TestModel_ClearQuery(t *testing.T) {
	m := newModel(t, testOptions(), 80, 24)
	m = send(t, m, tuitest.Type("ca")...)
	require.Len(t, m.Session().Visible(), 1)

	m = send(t, m, tuitest.Key(tea.KeyCtrlU))
	assert.Empty(t, m.search.Value())
	assert.Len(t, m.Session().Visible(), 4)
}

func TestModel_BarClickJumps(t *testing.T) {
	m := newModel(t, testOptions(), 80, 24)
	g := m.geometry()

	// C sits on bar line 11 of 17
	m, msg := update(t, m, tuitest.Click(g.barX, g.listY+11))
	require.IsType(t, scrollMsg{}, msg)

	m, _ = update(t, m, msg)
	assert.Equal(t, 6, m.cursor)
	assert.Equal(t, "C", m.Session().State().HighlightedHeader)

	// dragging within the same letter does not re-issue
	_, msg = update(t, m, tuitest.Drag(g.barX, g.listY+12))
	assert.Nil(t, msg)
}

func TestModel_StaleJumpDropped(t *testing.T) {
	m := newModel(t, testOptions(), 80, 24)
	g := m.geometry()

	m, msg := update(t, m, tuitest.Click(g.barX, g.listY+11))
	require.NotNil(t, msg)

	m = send(t, m, tuitest.Type("br")...)
	m, _ = update(t, m, msg)

	assert.Equal(t, 1, m.cursor)
	assert.Equal(t, 0, m.list.YOffset)
}

func TestModel_TabStepsSections(t *testing.T) {
	m := newModel(t, testOptions(), 80, 24)

	m, msg := update(t, m, tuitest.Key(tea.KeyTab))
	m, _ = update(t, m, msg)
	assert.Equal(t, 4, m.cursor)

	m, msg = update(t, m, tuitest.Key(tea.KeyTab))
	m, _ = update(t, m, msg)
	assert.Equal(t, 6, m.cursor)

	m, msg = update(t, m, tuitest.Key(tea.KeyShiftTab))
	m, _ = update(t, m, msg)
	assert.Equal(t, 4, m.cursor)
	assert.Equal(t, "B", m.Session().State().HighlightedHeader)
}

func TestModel_CursorSkipsHeaders(t *testing.T) {
	m := newModel(t, testOptions(), 80, 24)

	m = send(t, m, tuitest.KeyDown(), tuitest.KeyDown())
	assert.Equal(t, 4, m.cursor, "Algeria then over the B header to Brazil")

	m = send(t, m, tuitest.KeyUp())
	assert.Equal(t, 2, m.cursor)

	m = send(t, m, tuitest.Key(tea.KeyEnd))
	assert.Equal(t, 6, m.cursor)

	m = send(t, m, tuitest.Key(tea.KeyHome))
	assert.Equal(t, 1, m.cursor)
}

func TestModel_WheelTracksSection(t *testing.T) {
	m := newModel(t, testOptions(), 80, 10)
	require.Equal(t, 4, m.list.Height)

	m = send(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Equal(t, 3, m.list.YOffset)
	assert.Equal(t, "B", m.Session().State().HighlightedHeader)
}

func TestModel_PickExits(t *testing.T) {
	opts := testOptions()
	opts.ExitOnPick = true

	var picked []catalog.Entry
	opts.Session.OnSelection = func(e catalog.Entry) { picked = append(picked, e) }

	m := newModel(t, opts, 80, 24)
	m = send(t, m, tuitest.KeyDown())

	m, msg := update(t, m, tuitest.KeyEnter())
	assert.IsType(t, tea.QuitMsg{}, msg)

	res := m.Result()
	assert.Equal(t, algeria, res.Entry)
	assert.Equal(t, "+213", res.DialCode)
	assert.True(t, res.Picked)
	assert.True(t, res.Confirmed)
	assert.Equal(t, []catalog.Entry{algeria}, picked)
	assert.Empty(t, m.View())
}

func TestModel_ClickRowPicks(t *testing.T) {
	m := newModel(t, testOptions(), 80, 24)
	g := m.geometry()

	m = send(t, m, tuitest.Click(g.listX+3, g.listY+4))
	assert.False(t, m.Session().IsOpen())
	assert.Equal(t, brazil, m.Session().Selected())
}

func TestModel_DismissReturnsToHost(t *testing.T) {
	m := newModel(t, testOptions(), 80, 24)

	m = send(t, m, tuitest.Key(tea.KeyEsc))
	assert.False(t, m.Session().IsOpen())
	assert.False(t, m.Result().Picked)

	view := tuitest.StripANSI(m.View())
	assert.Contains(t, view, "Choose country")

	m = send(t, m, tuitest.KeyEnter())
	assert.True(t, m.Session().IsOpen(), "enter reopens the list")
}

func TestModel_DismissExitsWhenExitOnPick(t *testing.T) {
	opts := testOptions()
	opts.ExitOnPick = true
	m := newModel(t, opts, 80, 24)

	m, msg := update(t, m, tuitest.Key(tea.KeyEsc))
	assert.IsType(t, tea.QuitMsg{}, msg)
	assert.False(t, m.Result().Confirmed)
}

func TestModel_HostShowsSelection(t *testing.T) {
	opts := testOptions()
	opts.OpenOnStart = false
	opts.Session.DefaultCode = "BR"
	m := newModel(t, opts, 80, 24)

	assert.Contains(t, tuitest.StripANSI(m.View()), "Brazil")
	assert.Equal(t, brazil, m.Result().Entry)

	_, msg := update(t, m, tuitest.KeyPress('q'))
	assert.IsType(t, tea.QuitMsg{}, msg)
}

func TestModel_Phone(t *testing.T) {
	opts := testOptions()
	opts.Variant = VariantPhone
	opts.OpenOnStart = false
	opts.Session.DefaultCode = "AL"
	opts.Session.Dismiss = selection.DismissReconfirm

	m := newModel(t, opts, 80, 24)
	assert.Equal(t, "+355", m.Result().DialCode)

	m = send(t, m, tuitest.Type("55x5")...)
	assert.Equal(t, "555", m.Result().Number)
	assert.Contains(t, tuitest.StripANSI(m.View()), "+355")

	m = send(t, m, tuitest.Key(tea.KeyTab))
	require.True(t, m.Session().IsOpen())

	m = send(t, m, tuitest.Type("bra")...)
	m = send(t, m, tuitest.KeyEnter())
	require.False(t, m.Session().IsOpen())
	assert.Equal(t, "+55", m.Result().DialCode)
	assert.Equal(t, "+55 555", m.Result().Combined())

	m, msg := update(t, m, tuitest.KeyEnter())
	assert.IsType(t, tea.QuitMsg{}, msg)
	assert.True(t, m.Result().Confirmed)
	assert.True(t, m.Result().Picked)
}

func TestModel_PhonePlaceholder(t *testing.T) {
	opts := testOptions()
	opts.Variant = VariantPhone
	opts.OpenOnStart = false

	m := newModel(t, opts, 80, 24)
	view := tuitest.StripANSI(m.View())
	assert.Contains(t, view, "Choose country")
	assert.Contains(t, view, "Enter phone number")
}

func TestFlag(t *testing.T) {
	assert.Equal(t, "\U0001F1EE\U0001F1F3", Flag("in"))
	assert.Equal(t, "  ", Flag("X1"))
	assert.Equal(t, "  ", Flag(""))
}

func TestRenderBar(t *testing.T) {
	bar := ansi.Strip(renderBar([]string{"A", "B", "C"}, 1, 6))
	assert.Equal(t, " A\n  \n B\n  \n C\n  ", bar)
}
