package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down  key.Binding
	Focus     key.Binding
	Submit    key.Binding
	Toggle    key.Binding
	Delete    key.Binding
	All       key.Binding
	Completed key.Binding
	Pending   key.Binding
	Cycle     key.Binding
	Theme     key.Binding
	Refresh   key.Binding
	Copy      key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Focus:     key.NewBinding(key.WithKeys("tab", "esc"), key.WithHelp("tab", "input/list")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "done")),
		Delete:    key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
		All:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		Completed: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "completed")),
		Pending:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "pending")),
		Cycle:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Submit, k.Toggle, k.Delete, k.Cycle, k.Theme, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Focus, k.Submit},
		{k.Toggle, k.Delete, k.Copy, k.Refresh},
		{k.All, k.Completed, k.Pending, k.Cycle},
		{k.Theme, k.Help, k.Quit},
	}
}
