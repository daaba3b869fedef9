package picker

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/dialpick/internal/core/catalog"
	"github.com/colonyops/dialpick/internal/core/selection"
	"github.com/colonyops/dialpick/internal/core/styles"
)

// Flag returns the regional indicator pair for a two letter code, which
// terminals with emoji support draw as the country flag.
func Flag(code string) string {
	if len(code) != 2 {
		return "  "
	}
	var b strings.Builder
	for _, c := range strings.ToUpper(code) {
		if c < 'A' || c > 'Z' {
			return "  "
		}
		b.WriteRune(0x1F1E6 + c - 'A')
	}
	return b.String()
}

// entryLabel renders the parts of e enabled in d. With everything disabled
// the name is shown.
func entryLabel(e catalog.Entry, d Display) string {
	parts := make([]string, 0, 4)
	if d.ShowFlag {
		parts = append(parts, Flag(e.Code))
	}
	if d.ShowName || (!d.ShowCode && !d.ShowDialCode) {
		parts = append(parts, e.Name)
	}
	if d.ShowCode && e.Code != "" {
		parts = append(parts, styles.CodeStyle.Render(e.Code))
	}
	if d.ShowDialCode && e.DialCode != "" {
		parts = append(parts, styles.DialCodeStyle.Render(e.DialCode))
	}
	return strings.Join(parts, " ")
}

// renderRows renders every row of the plan as one line of width w.
func renderRows(plan selection.RowPlan, cursor, w int, d Display) string {
	if plan.Len() == 0 {
		return styles.EmptyStyle.Render("No matches")
	}

	lines := make([]string, 0, plan.Len())
	for i, row := range plan.Rows() {
		if row.Kind == selection.RowHeader {
			lines = append(lines, ansi.Truncate(styles.HeaderRowStyle.Render(row.Header), w, "…"))
			continue
		}

		label := entryLabel(row.Entry, d)
		if row.Kind == selection.RowPinned {
			label = styles.PinnedRowStyle.Render(styles.IconCheck) + " " + label
		}

		if i == cursor {
			plain := ansi.Truncate(styles.IconCaret+" "+ansi.Strip(label), w, "…")
			lines = append(lines, styles.CursorRowStyle.Width(w).Render(plain))
			continue
		}
		lines = append(lines, ansi.Truncate("  "+label, w, "…"))
	}
	return strings.Join(lines, "\n")
}

// barLine is the line of a bar h lines tall that section k of n sits on.
func barLine(k, n, h int) int {
	if n <= 0 || h <= 0 {
		return 0
	}
	return k * h / n
}

// renderBar draws the jump bar: each letter on its barLine, the highlighted
// one inverted. When sections outnumber lines the first letter on a line
// wins.
func renderBar(headers []string, highlighted, h int) string {
	lines := make([]string, h)
	taken := make([]bool, h)
	for k, header := range headers {
		l := barLine(k, len(headers), h)
		if l >= h || taken[l] {
			if k == highlighted && l < h {
				lines[l] = styles.BarActiveStyle.Render(header)
			}
			continue
		}
		taken[l] = true
		if k == highlighted {
			lines[l] = styles.BarActiveStyle.Render(header)
		} else {
			lines[l] = styles.BarLetterStyle.Render(header)
		}
	}
	for i := range lines {
		lines[i] = " " + lipgloss.NewStyle().Width(1).Render(lines[i])
	}
	return strings.Join(lines, "\n")
}
