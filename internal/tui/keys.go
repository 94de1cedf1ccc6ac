package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keyboard shortcuts of the board
type keyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Promote  key.Binding
	Complete key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Add      key.Binding
	Grab     key.Binding
	Cancel   key.Binding
	Submit   key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/→", "lane"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/↓", "card"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
	),
	MoveUp: key.NewBinding(
		key.WithKeys("K", "shift+up"),
		key.WithHelp("K/J", "move"),
	),
	MoveDown: key.NewBinding(
		key.WithKeys("J", "shift+down"),
	),
	Promote: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "promote"),
	),
	Complete: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "complete"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add"),
	),
	Grab: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "grab/drop"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{
		k.Left, k.Up, k.MoveUp, k.Promote, k.Complete,
		k.Edit, k.Delete, k.Add, k.Grab, k.Cancel, k.Quit,
	}
}
