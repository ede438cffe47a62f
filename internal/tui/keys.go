package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Grab   key.Binding
	Drop   key.Binding
	Cancel key.Binding
	Open   key.Binding
	Copy   key.Binding
	Jump   key.Binding
	Reset  key.Binding
	Export key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Grab:   key.NewBinding(key.WithKeys(" ", "m"), key.WithHelp("space/m", "grab")),
		Drop:   key.NewBinding(key.WithKeys(" ", "m", "enter"), key.WithHelp("enter", "drop")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Copy:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy out")),
		Jump:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "jump")),
		Reset:  key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset order")),
		Export: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "write seed")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Grab, k.Open, k.Copy, k.Jump, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Grab, k.Drop, k.Cancel},
		{k.Open, k.Copy, k.Jump},
		{k.Reset, k.Export, k.Help, k.Quit},
	}
}
