package console

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit   key.Binding
	Complete key.Binding
	Prev     key.Binding
	Next     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "run")),
		Complete: key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "complete")),
		Prev:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑↓", "history")),
		Next:     key.NewBinding(key.WithKeys("down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("PgUp/PgDn", "scroll")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"), key.WithHelp("^C", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Complete, k.Prev, k.PageUp, k.Quit}
}
