// Package picker is the interactive host for a selection session: a summary
// of the current choice that opens an overlay with a searchable, lettered
// list and a jump bar.
package picker

import (
	"math"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/colonyops/dialpick/internal/core/catalog"
	"github.com/colonyops/dialpick/internal/core/selection"
	"github.com/colonyops/dialpick/internal/core/styles"
)

// Variant selects the host layout around the list.
type Variant int

const (
	// VariantPicker shows only the selected entry.
	VariantPicker Variant = iota
	// VariantPhone pairs the entry's dial code with a number field.
	VariantPhone
)

func (v Variant) String() string {
	if v == VariantPhone {
		return "phone"
	}
	return "picker"
}

// Display toggles what rows and the host summary show.
type Display struct {
	ShowFlag     bool
	ShowName     bool
	ShowDialCode bool
	ShowCode     bool
	AlphabetBar  bool
	// Height is the overlay height as a fraction of the terminal.
	Height float64
}

// Options configures a Model.
type Options struct {
	Variant Variant
	Entries []catalog.Entry
	// Session is passed to selection.New. Presenter and Logger are replaced;
	// OnSelection and OnDefault are still called.
	Session    selection.Options
	SearchHint string
	InputHint  string
	Display    Display
	// OpenOnStart shows the overlay immediately.
	OpenOnStart bool
	// ExitOnPick ends the program after a pick or a dismiss from the
	// overlay. Only applies to VariantPicker.
	ExitOnPick bool
	Logger     zerolog.Logger
}

// Result is the state the program ends with.
type Result struct {
	Entry    catalog.Entry
	DialCode string
	Number   string
	// Picked is true when the user chose an entry during the run.
	Picked bool
	// Confirmed is true when the program ended by choice rather than by
	// quitting.
	Confirmed bool
}

// Combined is the dial code and number joined by a space, skipping an empty
// side.
func (r Result) Combined() string {
	return strings.TrimSpace(r.DialCode + " " + r.Number)
}

// scrollMsg carries a jump computed on one event and delivered on a later
// one.
type scrollMsg struct {
	req selection.ScrollRequest
}

// overlay is the Presenter the session drives. The model applies the change
// after each update.
type overlay struct {
	open    bool
	changed bool
}

func (o *overlay) OpenOverlay()  { o.open, o.changed = true, true }
func (o *overlay) CloseOverlay() { o.open, o.changed = false, true }

// Model is the bubbletea model for both variants.
type Model struct {
	variant    Variant
	display    Display
	exitOnPick bool
	keys       KeyMap
	help       help.Model
	logger     zerolog.Logger

	session *selection.Session
	phone   *selection.PhoneField
	ov      *overlay
	result  *Result

	search textinput.Model
	number textinput.Model
	list   viewport.Model
	cursor int

	width    int
	height   int
	quitting bool
}

// New creates the model and its selection session.
func New(opts Options) Model {
	if opts.Display.Height <= 0 || opts.Display.Height > 1 {
		opts.Display.Height = 0.95
	}

	m := Model{
		variant:    opts.Variant,
		display:    opts.Display,
		exitOnPick: opts.ExitOnPick && opts.Variant == VariantPicker,
		keys:       DefaultKeyMap(opts.Variant),
		help:       help.New(),
		logger:     opts.Logger,
		ov:         &overlay{},
		result:     &Result{},
		list:       viewport.New(0, 0),
	}

	res := m.result
	var phone *selection.PhoneField
	if opts.Variant == VariantPhone {
		phone = selection.NewPhoneField(func(dial, number string) {
			res.DialCode, res.Number = dial, number
		})
		m.phone = phone
	}

	sopts := opts.Session
	onSelection, onDefault := sopts.OnSelection, sopts.OnDefault
	sopts.Presenter = m.ov
	sopts.Logger = opts.Logger
	sopts.OnDefault = func(e catalog.Entry) {
		res.Entry, res.DialCode = e, e.DialCode
		if phone != nil {
			phone.SetEntry(e)
		}
		if onDefault != nil {
			onDefault(e)
		}
	}
	sopts.OnSelection = func(e catalog.Entry) {
		res.Entry, res.Picked = e, true
		if phone != nil {
			phone.SelectionChanged(e)
		} else {
			res.DialCode = e.DialCode
		}
		if onSelection != nil {
			onSelection(e)
		}
	}
	m.session = selection.New(opts.Entries, sopts)
	m.logger = opts.Logger.With().Str("session_id", m.session.ID()).Str("variant", opts.Variant.String()).Logger()

	m.search = textinput.New()
	m.search.Prompt = styles.IconSearch + " "
	m.search.Placeholder = opts.SearchHint
	m.search.CharLimit = 64

	m.number = textinput.New()
	m.number.Prompt = ""
	m.number.Placeholder = opts.InputHint
	m.number.CharLimit = 20
	m.number.Width = numberWidth
	if m.phone != nil {
		m.number.Focus()
	}

	if opts.OpenOnStart {
		m.session.Open()
		m.applyOverlay()
	}

	return m
}

// Session returns the selection session the model drives.
func (m Model) Session() *selection.Session { return m.session }

// Result returns the current outcome.
func (m Model) Result() Result { return *m.result }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case scrollMsg:
		m.deliver(msg.req)
		return m, nil
	case tea.MouseMsg:
		if m.session.IsOpen() {
			return m.handleMouse(msg)
		}
		return m, nil
	case tea.KeyMsg:
		if m.session.IsOpen() {
			return m.updateOverlay(msg)
		}
		return m.updateHost(msg)
	}

	var cmd tea.Cmd
	switch {
	case m.session.IsOpen():
		m.search, cmd = m.search.Update(msg)
	case m.phone != nil:
		m.number, cmd = m.number.Update(msg)
	}
	return m, cmd
}

func (m Model) updateHost(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit(false)
	case key.Matches(msg, m.keys.Confirm):
		return m.quit(true)
	case key.Matches(msg, m.keys.Open):
		m.session.Open()
		return m, m.applyOverlay()
	}

	if m.phone == nil || !numberKey(msg) {
		return m, nil
	}

	var cmd tea.Cmd
	before := m.number.Value()
	m.number, cmd = m.number.Update(msg)
	if v := m.number.Value(); v != before {
		m.phone.SetNumber(v)
	}
	return m, cmd
}

func (m Model) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m.quit(false)
	case key.Matches(msg, m.keys.Dismiss):
		m.session.Dismiss()
		m.logger.Debug().Msg("overlay dismissed")
		if m.exitOnPick {
			return m.quit(m.result.Picked)
		}
		return m, m.applyOverlay()
	case key.Matches(msg, m.keys.Pick):
		return m.pickRow(m.cursor)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-max(m.list.Height-1, 1))
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(max(m.list.Height-1, 1))
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(-m.session.Plan().Len())
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(m.session.Plan().Len())
		return m, nil
	case key.Matches(msg, m.keys.NextSection):
		return m, m.step(1)
	case key.Matches(msg, m.keys.PrevSection):
		return m, m.step(-1)
	case key.Matches(msg, m.keys.Clear):
		m.search.SetValue("")
		m.session.ClearQuery()
		m.afterRebuild()
		return m, nil
	}

	var cmd tea.Cmd
	before := m.search.Value()
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		gen := m.session.Plan().Generation()
		m.session.OnQueryChange(m.search.Value())
		if m.session.Plan().Generation() != gen {
			m.afterRebuild()
		}
	}
	return m, cmd
}

func (m Model) pickRow(row int) (tea.Model, tea.Cmd) {
	if !m.session.PickRow(row) {
		return m, nil
	}
	m.logger.Debug().Str("code", m.result.Entry.Code).Msg("entry picked")
	if m.exitOnPick {
		return m.quit(true)
	}
	return m, m.applyOverlay()
}

func (m Model) quit(confirmed bool) (tea.Model, tea.Cmd) {
	m.result.Confirmed = confirmed
	if m.phone != nil {
		m.result.Number = m.number.Value()
	}
	m.quitting = true
	return m, tea.Quit
}

// numberKey reports whether msg may edit the phone number: digits and common
// separators, or an editing key.
func numberKey(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace {
		return true
	}
	for _, r := range msg.Runes {
		if !unicode.IsDigit(r) && r != ' ' && r != '-' && r != '(' && r != ')' {
			return false
		}
	}
	return true
}

// applyOverlay moves focus after the session opened or closed the overlay.
func (m *Model) applyOverlay() tea.Cmd {
	if !m.ov.changed {
		return nil
	}
	m.ov.changed = false

	if m.ov.open {
		m.search.SetValue("")
		m.number.Blur()
		m.afterRebuild()
		return m.search.Focus()
	}

	m.search.Blur()
	if m.phone != nil {
		return m.number.Focus()
	}
	return nil
}

// afterRebuild resets the list for a new plan: cursor on the first pickable
// row, scrolled to the top, bar positions reported again.
func (m *Model) afterRebuild() {
	m.cursor = firstSelectable(m.session.Plan())
	m.reportOffsets()
	m.scrollTo(0)
}

// nearestSelectable returns the first pickable row from i in direction step,
// or failing that in the opposite direction.
func nearestSelectable(plan selection.RowPlan, i, step int) int {
	for j := i; j >= 0 && j < plan.Len(); j += step {
		if row, _ := plan.Row(j); row.Selectable() {
			return j
		}
	}
	for j := i; j >= 0 && j < plan.Len(); j -= step {
		if row, _ := plan.Row(j); row.Selectable() {
			return j
		}
	}
	return i
}

func firstSelectable(plan selection.RowPlan) int {
	for i, row := range plan.Rows() {
		if row.Selectable() {
			return i
		}
	}
	return 0
}

// moveCursor moves by delta rows, skipping headers, and keeps the cursor on
// screen.
func (m *Model) moveCursor(delta int) {
	plan := m.session.Plan()
	if plan.Len() == 0 {
		return
	}

	step := 1
	if delta < 0 {
		step = -1
	}
	target := nearestSelectable(plan, min(max(m.cursor+delta, 0), plan.Len()-1), step)
	m.cursor = target

	top := m.list.YOffset
	switch {
	case m.cursor < top:
		top = m.cursor
		if row, ok := plan.Row(m.cursor - 1); ok && row.Kind == selection.RowHeader {
			top--
		}
	case m.list.Height > 0 && m.cursor >= top+m.list.Height:
		top = m.cursor - m.list.Height + 1
	}
	m.scrollTo(top)
}

// scrollTo sets the first visible row and lets the session track the
// section on screen.
func (m *Model) scrollTo(top int) {
	m.list.SetContent(renderRows(m.session.Plan(), m.cursor, m.list.Width, m.display))
	m.list.SetYOffset(max(top, 0))
	m.session.TrackScroll(m.list.YOffset)
}

// ScrollToRow implements selection.Scroller. The section header above the
// row stays visible.
func (m *Model) ScrollToRow(row int) error {
	m.cursor = row
	top := row
	if r, ok := m.session.Plan().Row(row - 1); ok && r.Kind == selection.RowHeader {
		top--
	}
	m.scrollTo(top)
	return nil
}

func (m *Model) step(delta int) tea.Cmd {
	req, ok := m.session.StepSection(delta)
	if !ok {
		return nil
	}
	return scrollCmd(req)
}

func scrollCmd(req selection.ScrollRequest) tea.Cmd {
	return func() tea.Msg { return scrollMsg{req: req} }
}

func (m *Model) deliver(req selection.ScrollRequest) {
	if !m.session.Deliver(req, m) {
		return
	}
	// TrackScroll may have picked the section above; the jump wins
	m.session.TrackScroll(req.Row)
}

// reportOffsets tells the session where each bar letter is drawn.
func (m *Model) reportOffsets() {
	if !m.display.AlphabetBar {
		return
	}
	headers := m.session.Plan().Headers()
	h := max(m.list.Height, 1)
	for k := range headers {
		m.session.ReportOffset(k, float64(barLine(k, len(headers), h))+0.5)
	}
}

// geometry is where the overlay's parts land on screen.
type geometry struct {
	width, height int // overlay outer size
	left, top     int
	inner         int // content width inside border and padding
	listX, listY  int
	listW, listH  int
	barX          int
}

const (
	barWidth     = 2
	minOverlayW  = 36
	chromeHeight = 5 // border, search line and its rule, help line
	numberWidth  = 21
)

func (m Model) geometry() geometry {
	g := geometry{}

	g.width = min(max(m.width*6/10, minOverlayW), m.width)
	g.height = min(max(int(float64(m.height)*m.display.Height), chromeHeight+1), m.height)
	g.inner = max(g.width-4, 1)

	g.listW = g.inner
	if m.display.AlphabetBar {
		g.listW = max(g.inner-barWidth, 1)
	}
	g.listH = max(g.height-chromeHeight, 1)

	g.left = centreOffset(m.width - g.width)
	g.top = centreOffset(m.height - g.height)
	g.listX = g.left + 2
	g.listY = g.top + 3
	g.barX = g.listX + g.listW + 1
	return g
}

// centreOffset matches how lipgloss.Place splits a gap around centred
// content.
func centreOffset(gap int) int {
	if gap <= 0 {
		return 0
	}
	return gap - int(math.Round(float64(gap)*0.5))
}

func (m *Model) layout() {
	g := m.geometry()
	m.list.Width = g.listW
	m.list.Height = g.listH
	m.search.Width = max(g.inner-3, 1)

	m.reportOffsets()
	m.moveCursor(0)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	g := m.geometry()

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollTo(m.list.YOffset - 3)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scrollTo(m.list.YOffset + 3)
		return m, nil
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}

	if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionMotion {
		return m, nil
	}
	if msg.Y < g.listY || msg.Y >= g.listY+g.listH {
		return m, nil
	}

	if m.display.AlphabetBar && msg.X >= g.barX-1 && msg.X <= g.barX+1 {
		req, ok := m.session.PointerAt(float64(msg.Y-g.listY) + 0.5)
		if !ok {
			return m, nil
		}
		return m, scrollCmd(req)
	}

	if msg.Action == tea.MouseActionPress && msg.X >= g.listX && msg.X < g.listX+g.listW {
		return m.pickRow(m.list.YOffset + msg.Y - g.listY)
	}
	return m, nil
}
