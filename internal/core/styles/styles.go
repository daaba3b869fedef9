// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	CommandStyle       lipgloss.Style
	DividerStyle       lipgloss.Style
	ErrorStyle         lipgloss.Style

	// Host view.
	HostStyle        lipgloss.Style
	HostLabelStyle   lipgloss.Style
	HostValueStyle   lipgloss.Style
	HostFocusedStyle lipgloss.Style

	// Overlay.
	OverlayStyle      lipgloss.Style
	OverlayTitleStyle lipgloss.Style
	OverlayHelpStyle  lipgloss.Style
	SearchStyle       lipgloss.Style

	// Rows.
	HeaderRowStyle lipgloss.Style
	EntryRowStyle  lipgloss.Style
	CursorRowStyle lipgloss.Style
	PinnedRowStyle lipgloss.Style
	DialCodeStyle  lipgloss.Style
	CodeStyle      lipgloss.Style
	EmptyStyle     lipgloss.Style

	// Jump bar.
	BarLetterStyle lipgloss.Style
	BarActiveStyle lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	CommandStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	DividerStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	ErrorStyle = lipgloss.NewStyle().
		Foreground(p.Error)

	HostStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Muted).
		Padding(0, 1)
	HostLabelStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	HostValueStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Bold(true)
	HostFocusedStyle = HostStyle.
		BorderForeground(p.Primary)

	OverlayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(0, 1)
	OverlayTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Foreground)
	OverlayHelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	SearchStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(p.Surface)

	HeaderRowStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	EntryRowStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	CursorRowStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Background(p.Surface).
		Bold(true)
	PinnedRowStyle = lipgloss.NewStyle().
		Foreground(p.Success)
	DialCodeStyle = lipgloss.NewStyle().
		Foreground(p.Secondary)
	CodeStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	EmptyStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	BarLetterStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	BarActiveStyle = lipgloss.NewStyle().
		Foreground(p.Background).
		Background(p.Primary).
		Bold(true)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

func hexPtr(c lipgloss.Color) *string {
	if !ValidHex(string(c)) {
		return nil
	}
	hex := string(c)
	return &hex
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() ansi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig
	p := CurrentPalette

	fg := hexPtr(p.Foreground)
	primary := hexPtr(p.Primary)
	secondary := hexPtr(p.Secondary)
	muted := hexPtr(p.Muted)
	surface := hexPtr(p.Surface)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = fg
	cfg.H1.BackgroundColor = surface
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Link.Color = secondary
	cfg.LinkText.Color = secondary

	cfg.Code.Color = secondary
	cfg.CodeBlock.Color = muted

	cfg.Table.Color = fg

	return cfg
}
