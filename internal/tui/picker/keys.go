package picker

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings for the host view and the overlay.
type KeyMap struct {
	// host
	Open    key.Binding
	Confirm key.Binding
	Quit    key.Binding

	// overlay
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Top         key.Binding
	Bottom      key.Binding
	Pick        key.Binding
	Dismiss     key.Binding
	Clear       key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	ForceQuit   key.Binding
}

// DefaultKeyMap returns the bindings for variant. The phone host keeps enter
// for confirming the number, so the list opens on tab instead.
func DefaultKeyMap(v Variant) KeyMap {
	km := KeyMap{
		Open:    key.NewBinding(key.WithKeys("enter", " ", "tab"), key.WithHelp("enter", "choose")),
		Confirm: key.NewBinding(key.WithDisabled()),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),

		Up:          key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑/↓", "move")),
		Down:        key.NewBinding(key.WithKeys("down", "ctrl+n")),
		PageUp:      key.NewBinding(key.WithKeys("pgup")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown")),
		Top:         key.NewBinding(key.WithKeys("home")),
		Bottom:      key.NewBinding(key.WithKeys("end")),
		Pick:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick")),
		Dismiss:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Clear:       key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
		NextSection: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next letter")),
		PrevSection: key.NewBinding(key.WithKeys("shift+tab")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
	}

	if v == VariantPhone {
		km.Open = key.NewBinding(key.WithKeys("tab", "ctrl+o"), key.WithHelp("tab", "country"))
		km.Confirm = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done"))
		km.Quit = key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit"))
	}

	return km
}

func (k KeyMap) hostHelp() []key.Binding {
	return []key.Binding{k.Open, k.Confirm, k.Quit}
}

func (k KeyMap) overlayHelp() []key.Binding {
	return []key.Binding{k.Up, k.Pick, k.NextSection, k.Clear, k.Dismiss}
}
