package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	add, edit, advance, remove key.Binding
	status, label, refresh     key.Binding
	quit                       key.Binding
}

func newKeyMap() *keyMap {
	return &keyMap{
		add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		advance: key.NewBinding(key.WithKeys(" ", "s"), key.WithHelp("space", "mark complete")),
		remove:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		status:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "status filter")),
		label:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "label filter")),
		refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		quit:    key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k *keyMap) short() []key.Binding {
	return []key.Binding{k.add, k.edit, k.advance, k.remove, k.status}
}

func (k *keyMap) full() []key.Binding {
	return []key.Binding{k.add, k.edit, k.advance, k.remove, k.status, k.label, k.refresh}
}
