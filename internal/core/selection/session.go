// Package selection is the picker engine: it narrows a catalog into the rows
// a list renders, resolves jump-bar positions into scroll targets and tracks
// what the user picked.
package selection

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonyops/dialpick/internal/core/catalog"
)

// DismissMode decides what closing the overlay without a pick reports.
type DismissMode int

const (
	// DismissSilent closes without calling back.
	DismissSilent DismissMode = iota
	// DismissReconfirm calls back with the current selection when the user
	// already picked something in this session.
	DismissReconfirm
)

func (m DismissMode) String() string {
	if m == DismissReconfirm {
		return "reconfirm"
	}
	return "silent"
}

// MarshalText implements encoding.TextMarshaler.
func (m DismissMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *DismissMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "silent":
		*m = DismissSilent
	case "reconfirm":
		*m = DismissReconfirm
	default:
		return fmt.Errorf("unknown dismiss mode %q (want silent or reconfirm)", text)
	}
	return nil
}

// Presenter shows and hides the overlay panel holding the list.
type Presenter interface {
	OpenOverlay()
	CloseOverlay()
}

type nopPresenter struct{}

func (nopPresenter) OpenOverlay()  {}
func (nopPresenter) CloseOverlay() {}

// Options configures a Session.
type Options struct {
	Policy      catalog.Policy
	DefaultCode string
	Placeholder string
	// Fallback replaces USFallback when the default code is not found.
	Fallback *catalog.Entry
	Dismiss  DismissMode

	Presenter Presenter
	// OnSelection receives every pick, and re-confirmations under
	// DismissReconfirm.
	OnSelection func(catalog.Entry)
	// OnDefault receives the resolved default once, during New.
	OnDefault func(catalog.Entry)

	// Logger defaults to a disabled logger.
	Logger zerolog.Logger
}

// State is the selection visible to the host.
type State struct {
	// HighlightedIndex is the highlighted jump-bar section, -1 when none.
	HighlightedIndex  int
	HighlightedHeader string
	Selected          catalog.Entry
}

// Session holds one picker's state: the working set, the current query and
// the rows derived from them, the jump bar and the selection. Every event is
// a method call; nothing recomputes behind the caller's back.
//
// A Session is not safe for concurrent use.
type Session struct {
	id        string
	opts      Options
	presenter Presenter
	logger    zerolog.Logger

	working []catalog.Entry
	visible []catalog.Entry
	query   string

	generation uint64
	plan       RowPlan
	offsets    *OffsetMap
	nav        *Navigator

	state  State
	open   bool
	picked bool
}

// New filters entries with opts.Policy, resolves the default selection and
// builds the initial rows.
func New(entries []catalog.Entry, opts Options) *Session {
	id := uuid.NewString()
	logger := opts.Logger.With().Str("session_id", id).Logger()

	s := &Session{
		id:        id,
		opts:      opts,
		presenter: opts.Presenter,
		logger:    logger,
		offsets:   NewOffsetMap(),
		nav:       NewNavigator(logger),
	}
	if s.presenter == nil {
		s.presenter = nopPresenter{}
	}

	s.working = catalog.Apply(entries, opts.Policy)

	fallback := USFallback()
	if opts.Fallback != nil {
		fallback = *opts.Fallback
	}
	def, err := ResolveDefault(s.working, opts.DefaultCode, opts.Placeholder, fallback)
	if err != nil {
		s.logger.Debug().Err(err).Str("code", opts.DefaultCode).Str("fallback", fallback.Code).Msg("using fallback entry")
	}
	s.state = State{HighlightedIndex: -1, Selected: def}

	s.rebuild()

	s.logger.Debug().
		Str("policy", opts.Policy.Kind.String()).
		Int("catalog", len(entries)).
		Int("working", len(s.working)).
		Str("default", def.Code).
		Msg("picker session started")

	if opts.OnDefault != nil {
		opts.OnDefault(def)
	}
	return s
}

// rebuild recomputes the visible set and row plan for the current query and
// invalidates everything positioned against the previous plan.
func (s *Session) rebuild() {
	s.visible = catalog.Search(s.working, s.query)

	var pinned *catalog.Entry
	if s.query == "" && s.state.Selected.HasImage() {
		sel := s.state.Selected
		pinned = &sel
	}

	s.generation++
	s.plan = Build(s.visible, pinned)
	s.plan.generation = s.generation

	s.offsets.Reset(s.generation)
	s.nav.Reset()
	s.state.HighlightedIndex = -1
	s.state.HighlightedHeader = ""

	if n := s.plan.Unheaded(); n > 0 {
		s.logger.Debug().Err(ErrEmptyName).Int("count", n).Msg("entries listed without a section header")
	}
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// State returns the current selection state.
func (s *Session) State() State { return s.state }

// Selected returns the selected entry.
func (s *Session) Selected() catalog.Entry { return s.state.Selected }

// Plan returns the rows for the current visible set.
func (s *Session) Plan() RowPlan { return s.plan }

// Working returns the filtered catalog.
func (s *Session) Working() []catalog.Entry { return s.working }

// Visible returns the working set narrowed by the query.
func (s *Session) Visible() []catalog.Entry { return s.visible }

// Query returns the normalised query.
func (s *Session) Query() string { return s.query }

// IsOpen reports whether the overlay is showing.
func (s *Session) IsOpen() bool { return s.open }

// Offsets returns the jump-bar positions known for the current plan.
func (s *Session) Offsets() *OffsetMap { return s.offsets }

// Open starts a fresh pass through the list: the query is cleared and the
// overlay shown. Opening an open session does nothing.
func (s *Session) Open() {
	if s.open {
		return
	}
	s.query = ""
	s.rebuild()
	s.open = true
	s.presenter.OpenOverlay()
}

// OnQueryChange applies a new search query. The rows are rebuilt and every
// jump-bar position and pending scroll for the old rows becomes stale. The
// selection is kept.
func (s *Session) OnQueryChange(q string) {
	q = catalog.NormalizeQuery(q)
	if q == s.query {
		return
	}
	s.query = q
	s.rebuild()
	s.logger.Debug().Str("query", q).Int("visible", len(s.visible)).Msg("query changed")
}

// ClearQuery resets the search.
func (s *Session) ClearQuery() {
	s.OnQueryChange("")
}

// ReportOffset records where the jump bar laid out section k.
func (s *Session) ReportOffset(k int, y float64) {
	if k < 0 || k >= len(s.plan.Headers()) {
		s.logger.Debug().Int("section", k).Msg("ignoring position for unknown section")
		return
	}
	s.offsets.Set(k, y)
}

// PointerAt resolves a tap or drag on the jump bar. It returns a request when
// the pointer moved onto a different section; deliver it with Deliver.
func (s *Session) PointerAt(y float64) (ScrollRequest, bool) {
	req, ok := s.nav.Request(y, s.offsets, s.plan)
	if ok {
		s.highlight(req.Section)
	}
	return req, ok
}

// StepSection requests a jump delta sections away from the highlighted one.
// With nothing highlighted it targets the first section.
func (s *Session) StepSection(delta int) (ScrollRequest, bool) {
	n := len(s.plan.Headers())
	if n == 0 {
		return ScrollRequest{}, false
	}

	k := 0
	if h := s.state.HighlightedIndex; h >= 0 {
		k = min(max(h+delta, 0), n-1)
		if k == h {
			return ScrollRequest{}, false
		}
	}

	// steps move from the highlight, which scrolling updates, so they skip
	// the pointer debounce
	req, ok := s.nav.Target(k, s.plan)
	if ok {
		s.highlight(req.Section)
	}
	return req, ok
}

// Deliver hands a request to the scrollable view if it still applies to the
// current rows. It reports whether a scroll was issued.
func (s *Session) Deliver(req ScrollRequest, scroller Scroller) bool {
	return s.nav.Apply(req, s.plan, scroller)
}

// Jump is PointerAt followed by Deliver, for hosts that scroll synchronously.
func (s *Session) Jump(y float64, scroller Scroller) bool {
	req, ok := s.PointerAt(y)
	if !ok {
		return false
	}
	return s.Deliver(req, scroller)
}

// TrackScroll updates the highlight from the list's first visible row.
func (s *Session) TrackScroll(firstVisibleRow int) {
	k, ok := s.plan.SectionAt(firstVisibleRow)
	if !ok {
		return
	}
	s.highlight(k)
}

func (s *Session) highlight(k int) {
	s.state.HighlightedIndex = k
	s.state.HighlightedHeader = s.plan.Headers()[k]
}

// Pick selects e, closes the overlay and reports e once.
func (s *Session) Pick(e catalog.Entry) {
	s.state.Selected = e
	s.picked = true
	s.close()

	s.logger.Debug().Str("code", e.Code).Msg("entry picked")
	if s.opts.OnSelection != nil {
		s.opts.OnSelection(e)
	}
}

// PickRow picks the entry rendered at row i. Header rows and rows outside the
// plan are ignored.
func (s *Session) PickRow(i int) bool {
	row, ok := s.plan.Row(i)
	if !ok || !row.Selectable() {
		return false
	}
	s.Pick(row.Entry)
	return true
}

// Dismiss closes the overlay without picking.
func (s *Session) Dismiss() {
	s.close()
	if s.opts.Dismiss == DismissReconfirm && s.picked && s.opts.OnSelection != nil {
		s.opts.OnSelection(s.state.Selected)
	}
}

func (s *Session) close() {
	s.open = false
	s.presenter.CloseOverlay()
}
