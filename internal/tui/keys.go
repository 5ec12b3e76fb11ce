package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Open     key.Binding
	Close    key.Binding
	Next     key.Binding
	Prev     key.Binding
	Theme    key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑↓←→", "move"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup/pgdn", "scroll"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "open"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "x"),
		key.WithHelp("esc", "close"),
	),
	Next: key.NewBinding(
		key.WithKeys("n", "right", "l"),
		key.WithHelp("n/p", "next/prev"),
	),
	Prev: key.NewBinding(
		key.WithKeys("p", "left", "h"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// boardHints are shown while browsing the strings.
func (k keyMap) boardHints() []key.Binding {
	return []key.Binding{k.Up, k.Open, k.PageUp, k.Theme, k.Quit}
}

// lightboxHints are shown while a photo is open.
func (k keyMap) lightboxHints() []key.Binding {
	return []key.Binding{k.Next, k.Close, k.Quit}
}
