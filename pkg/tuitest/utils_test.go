package tuitest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	in := "\x1b[1mA\x1b[0m   \n  \x1b[31mAlbania\x1b[0m  \n\n"
	assert.Equal(t, "A\n  Albania", StripANSI(in))
}

func TestType(t *testing.T) {
	msgs := Type("in")
	assert.Len(t, msgs, 2)
	assert.Equal(t, "i", msgs[0].(tea.KeyMsg).String())
	assert.Equal(t, "n", msgs[1].(tea.KeyMsg).String())
}

type counter struct{ n int }

func (c counter) Init() tea.Cmd { return nil }
func (c counter) Update(tea.Msg) (tea.Model, tea.Cmd) {
	c.n++
	return c, nil
}
func (c counter) View() string { return "" }

func TestSend(t *testing.T) {
	m := Send(counter{}, KeyUp(), KeyDown(), KeyEnter())
	assert.Equal(t, 3, m.(counter).n)
}
