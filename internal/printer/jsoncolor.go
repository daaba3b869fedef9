package printer

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/dialpick/internal/core/styles"
)

// jsonTheme colors the token kinds of a JSON document.
type jsonTheme struct {
	key, str, num, literal, null, punct, delim lipgloss.Style
}

func newJSONTheme(p styles.Palette) jsonTheme {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	return jsonTheme{
		key:     fg(p.Primary),
		str:     fg(p.Success),
		num:     fg(p.Warning),
		literal: fg(p.Secondary),
		null:    fg(p.Error),
		punct:   fg(p.Muted),
		delim:   fg(p.Foreground),
	}
}

// ColorizeJSON pretty-prints data with the active theme's colors. Invalid
// JSON is returned unchanged.
func ColorizeJSON(data []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return string(data)
	}

	theme := newJSONTheme(styles.CurrentPalette)
	raw := buf.String()

	var out strings.Builder
	for i := 0; i < len(raw); {
		ch := raw[i]
		switch {
		case ch == '"':
			end := stringEnd(raw, i)
			str := raw[i : end+1]
			if rest := strings.TrimLeft(raw[end+1:], " \t"); strings.HasPrefix(rest, ":") {
				out.WriteString(theme.key.Render(str))
			} else {
				out.WriteString(theme.str.Render(str))
			}
			i = end + 1

		case ch == ':' || ch == ',':
			out.WriteString(theme.punct.Render(string(ch)))
			i++

		case ch == '-' || ch >= '0' && ch <= '9':
			end := i + 1
			for end < len(raw) && strings.IndexByte("0123456789.eE+-", raw[end]) >= 0 {
				end++
			}
			out.WriteString(theme.num.Render(raw[i:end]))
			i = end

		case strings.HasPrefix(raw[i:], "true"), strings.HasPrefix(raw[i:], "false"):
			word := "true"
			if ch == 'f' {
				word = "false"
			}
			out.WriteString(theme.literal.Render(word))
			i += len(word)

		case strings.HasPrefix(raw[i:], "null"):
			out.WriteString(theme.null.Render("null"))
			i += 4

		case strings.IndexByte("{}[]", ch) >= 0:
			out.WriteString(theme.delim.Render(string(ch)))
			i++

		default:
			out.WriteByte(ch)
			i++
		}
	}

	return out.String()
}

// stringEnd returns the index of the quote closing the JSON string that
// starts at pos.
func stringEnd(s string, pos int) int {
	for i := pos + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return len(s) - 1
}
