package picker

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/dialpick/internal/core/styles"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.session.IsOpen() && m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.overlayView())
	}
	return m.hostView()
}

func (m Model) overlayView() string {
	g := m.geometry()

	search := styles.SearchStyle.Width(g.inner).Render(m.search.View())

	body := m.list.View()
	if m.display.AlphabetBar {
		bar := renderBar(m.session.Plan().Headers(), m.session.State().HighlightedIndex, g.listH)
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, bar)
	}

	helpLine := ansi.Truncate(m.help.ShortHelpView(m.keys.overlayHelp()), g.inner, "…")

	content := lipgloss.JoinVertical(lipgloss.Left, search, body, helpLine)
	return styles.OverlayStyle.Render(content)
}

func (m Model) hostView() string {
	selected := m.session.Selected()

	var summary string
	switch {
	case !selected.HasImage():
		// nothing resolved yet; the entry is the placeholder
		summary = styles.EmptyStyle.Render(selected.Name)
	case m.variant == VariantPhone:
		summary = Flag(selected.Code) + " " + styles.HostValueStyle.Render(selected.DialCode)
	default:
		summary = styles.HostValueStyle.Render(entryLabel(selected, m.display))
	}
	summary += " " + styles.HostLabelStyle.Render("▾")

	var b strings.Builder
	if m.variant == VariantPhone {
		b.WriteString(styles.HostLabelStyle.Render(styles.IconPhone + " Phone number"))
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
			styles.HostStyle.Render(summary),
			" ",
			// the input draws one cell past Width for the cursor
			styles.HostFocusedStyle.Width(m.number.Width+3).Render(m.number.View()),
		))
	} else {
		b.WriteString(styles.HostLabelStyle.Render(styles.IconGlobe + " Country"))
		b.WriteString("\n")
		b.WriteString(styles.HostFocusedStyle.Render(summary))
	}
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.hostHelp()))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
