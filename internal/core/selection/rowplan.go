package selection

import "github.com/colonyops/dialpick/internal/core/catalog"

// RowKind identifies what a row of the plan renders.
type RowKind int

const (
	RowEntry RowKind = iota
	RowHeader
	RowPinned
)

func (k RowKind) String() string {
	switch k {
	case RowHeader:
		return "header"
	case RowPinned:
		return "pinned"
	default:
		return "entry"
	}
}

// Row is one rendered line of the picker list.
type Row struct {
	Kind RowKind
	// Header is the section letter. Empty for pinned rows and for entries
	// without a name.
	Header string
	// Section indexes RowPlan.Headers, or is -1 when the row belongs to no
	// section.
	Section int
	// Entry is set for entry and pinned rows.
	Entry catalog.Entry
}

// Selectable reports whether picking the row yields an entry.
func (r Row) Selectable() bool {
	return r.Kind != RowHeader
}

// RowPlan is the flat list of rows for a visible set together with its
// section index. Both the list renderer and the Navigator read it, so the
// mapping from a section to a row position lives here and nowhere else.
type RowPlan struct {
	generation uint64
	headers    []string
	rows       []Row
	targets    []int
	unheaded   int
}

// Build lays out visible (assumed sorted by name) into rows. When pinned is
// non-nil it is rendered first, ahead of every section.
//
// A header row is emitted whenever an entry's header differs from the last
// header emitted, so an unsorted set can repeat a letter; Headers still lists
// each letter once, in first-occurrence order. Entries with an empty name get
// an entry row but no header and do not reset the running header.
func Build(visible []catalog.Entry, pinned *catalog.Entry) RowPlan {
	plan := RowPlan{
		headers: []string{},
		rows:    make([]Row, 0, len(visible)+len(visible)/4+1),
		targets: []int{},
	}

	if pinned != nil {
		plan.rows = append(plan.rows, Row{Kind: RowPinned, Section: -1, Entry: *pinned})
	}

	index := make(map[string]int)
	current := ""
	for _, e := range visible {
		header, ok := e.Header()
		if !ok {
			plan.unheaded++
			plan.rows = append(plan.rows, Row{Kind: RowEntry, Section: -1, Entry: e})
			continue
		}

		section, seen := index[header]
		if !seen {
			section = len(plan.headers)
			index[header] = section
			plan.headers = append(plan.headers, header)
			plan.targets = append(plan.targets, -1)
		}

		if header != current {
			current = header
			plan.rows = append(plan.rows, Row{Kind: RowHeader, Header: header, Section: section})
		}

		if plan.targets[section] < 0 {
			plan.targets[section] = len(plan.rows)
		}
		plan.rows = append(plan.rows, Row{Kind: RowEntry, Header: header, Section: section, Entry: e})
	}

	return plan
}

// Generation identifies the visible set the plan was built from. Plans built
// by a Session get a new generation on every rebuild.
func (p RowPlan) Generation() uint64 { return p.generation }

// Headers returns the distinct section letters in first-occurrence order.
func (p RowPlan) Headers() []string { return p.headers }

// Rows returns every row in render order.
func (p RowPlan) Rows() []Row { return p.rows }

// Len returns the number of rows.
func (p RowPlan) Len() int { return len(p.rows) }

// Row returns the row at index i.
func (p RowPlan) Row(i int) (Row, bool) {
	if i < 0 || i >= len(p.rows) {
		return Row{}, false
	}
	return p.rows[i], true
}

// Pinned reports whether the plan starts with a pinned selection row.
func (p RowPlan) Pinned() bool {
	return len(p.rows) > 0 && p.rows[0].Kind == RowPinned
}

// Unheaded returns how many entries were listed without a header because
// their name was empty.
func (p RowPlan) Unheaded() int { return p.unheaded }

// SectionTarget returns the row a jump to section k scrolls to: the first
// entry row of that section.
//
// For a sorted visible set without a pinned row this is
// firstEntryIndex(k) + k + 1, where firstEntryIndex is the section's first
// position in the visible set and the k + 1 counts the header rows up to and
// including its own. A pinned row adds one more leading row.
func (p RowPlan) SectionTarget(k int) (int, error) {
	if k < 0 || k >= len(p.targets) {
		return -1, ErrStaleIndex
	}
	return p.targets[k], nil
}

// SectionAt returns the section owning row i. Pinned rows belong to the
// first section and unheaded entries to the nearest section above them.
func (p RowPlan) SectionAt(i int) (int, bool) {
	if i < 0 || i >= len(p.rows) || len(p.headers) == 0 {
		return -1, false
	}
	if p.rows[i].Kind == RowPinned {
		return 0, true
	}
	for j := i; j >= 0; j-- {
		if s := p.rows[j].Section; s >= 0 {
			return s, true
		}
	}
	return -1, false
}
