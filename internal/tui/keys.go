package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Clear    key.Binding
	Duration key.Binding
	Enter    key.Binding
	Escape   key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "earlier")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "later")),
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev task")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next task")),
	Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
	Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit task")),
	Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Clear:    key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all")),
	Duration: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "duration")),
	Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}
