package selection

import (
	"math"

	"github.com/rs/zerolog"
)

// Scroller is the scrollable list view a jump is delivered to. The navigator
// only requests positions; the view owns them.
type Scroller interface {
	ScrollToRow(row int) error
}

// ScrollerFunc adapts a function to Scroller.
type ScrollerFunc func(row int) error

func (f ScrollerFunc) ScrollToRow(row int) error { return f(row) }

// ScrollRequest is a jump target computed against one row plan. It is
// delivered later, possibly after the plan has changed, so it carries the
// plan generation and a sequence number that Apply checks.
type ScrollRequest struct {
	Row        int
	Section    int
	Header     string
	Generation uint64
	Seq        uint64
}

// Navigator turns pointer positions on the jump bar into scroll requests.
type Navigator struct {
	logger      zerolog.Logger
	lastSection int
	seq         uint64
}

// NewNavigator creates a navigator with no resolved section.
func NewNavigator(logger zerolog.Logger) *Navigator {
	return &Navigator{logger: logger, lastSection: -1}
}

// Reset forgets the last resolved section so the next resolution scrolls
// even if it lands on the same index. Called whenever the plan is rebuilt.
func (n *Navigator) Reset() {
	n.lastSection = -1
}

// LastSection returns the most recently resolved section, or -1.
func (n *Navigator) LastSection() int {
	return n.lastSection
}

// Resolve returns the section whose recorded position is closest to y. Ties
// go to the lower section index. ok is false when no position is known.
func (n *Navigator) Resolve(y float64, offsets *OffsetMap) (int, bool) {
	best, bestDist := -1, math.Inf(1)
	for _, k := range offsets.Keys() {
		pos, _ := offsets.Get(k)
		if d := math.Abs(pos - y); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best, best >= 0
}

// Request resolves y and, when it lands on a section different from the
// previous resolution, returns the scroll request for it. The previous
// resolution survives organic scrolling: pointing again at the section
// jumped to last does nothing until the pointer lands elsewhere or the plan
// is rebuilt.
func (n *Navigator) Request(y float64, offsets *OffsetMap, plan RowPlan) (ScrollRequest, bool) {
	if offsets.Generation() != plan.Generation() {
		n.logger.Debug().
			Uint64("offsets_generation", offsets.Generation()).
			Uint64("plan_generation", plan.Generation()).
			Msg("jump bar positions belong to an older plan")
		return ScrollRequest{}, false
	}

	k, ok := n.Resolve(y, offsets)
	if !ok {
		return ScrollRequest{}, false
	}
	return n.RequestSection(k, plan)
}

// RequestSection returns the scroll request for section k, unless k is the
// section resolved last time.
func (n *Navigator) RequestSection(k int, plan RowPlan) (ScrollRequest, bool) {
	if k == n.lastSection {
		return ScrollRequest{}, false
	}
	return n.Target(k, plan)
}

// Target returns the scroll request for section k without the pointer
// debounce. It still records k as the last resolved section.
func (n *Navigator) Target(k int, plan RowPlan) (ScrollRequest, bool) {
	n.lastSection = k

	row, err := plan.SectionTarget(k)
	if err != nil {
		n.logger.Debug().Err(err).Int("section", k).Msg("jump skipped")
		return ScrollRequest{}, false
	}

	n.seq++
	return ScrollRequest{
		Row:        row,
		Section:    k,
		Header:     plan.Headers()[k],
		Generation: plan.Generation(),
		Seq:        n.seq,
	}, true
}

// Apply delivers req to scroller if it still describes plan and no newer
// request has been issued since. Stale, superseded and out-of-range requests
// are dropped, as are scroller failures; none of them is an error for the
// caller. It reports whether the scroll was issued.
func (n *Navigator) Apply(req ScrollRequest, plan RowPlan, scroller Scroller) bool {
	switch {
	case req.Generation != plan.Generation():
		n.logger.Debug().Err(ErrStaleIndex).
			Int("row", req.Row).
			Uint64("seq", req.Seq).
			Msg("scroll dropped: plan changed")
		return false
	case req.Seq != n.seq:
		n.logger.Debug().
			Int("row", req.Row).
			Uint64("seq", req.Seq).
			Uint64("latest", n.seq).
			Msg("scroll dropped: superseded")
		return false
	case req.Row < 0 || req.Row >= plan.Len():
		n.logger.Debug().Err(ErrStaleIndex).
			Int("row", req.Row).
			Uint64("seq", req.Seq).
			Int("rows", plan.Len()).
			Msg("scroll dropped: out of range")
		return false
	}

	if err := scroller.ScrollToRow(req.Row); err != nil {
		n.logger.Debug().Err(err).Int("row", req.Row).Msg("scroll failed")
		return false
	}
	return true
}
