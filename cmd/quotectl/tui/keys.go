package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Prev       key.Binding
	Next       key.Binding
	Switch     key.Binding
	Submit     key.Binding
	Cancel     key.Binding
	Delete     key.Binding
	Export     key.Binding
	Reload     key.Binding
	ToggleDark key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Prev:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev product")),
		Next:       key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next product")),
		Switch:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save / edit")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "new quotation")),
		Delete:     key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Export:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export PDF")),
		Reload:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		ToggleDark: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "dark mode")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Prev, k.Next, k.Submit, k.Delete, k.Export, k.ToggleDark, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Switch, k.Prev, k.Next, k.Submit, k.Cancel},
		{k.Up, k.Down, k.Delete, k.Export, k.Reload, k.ToggleDark, k.Quit},
	}
}
