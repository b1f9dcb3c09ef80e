package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Send         key.Binding
	Quit         key.Binding
	Next         key.Binding
	Prev         key.Binding
	Clear        key.Binding
	AddHeader    key.Binding
	RemoveHeader key.Binding
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	Enter        key.Binding
}

var keys = keyMap{
	Send: key.NewBinding(
		key.WithKeys("ctrl+s", "f5"),
		key.WithHelp("ctrl+s", "send"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear response"),
	),
	AddHeader: key.NewBinding(
		key.WithKeys("ctrl+n"),
		key.WithHelp("ctrl+n", "add header"),
	),
	RemoveHeader: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "remove header"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
	),
}

// helpFor returns the bindings worth showing while section has focus.
func (k keyMap) helpFor(s section) []key.Binding {
	bindings := []key.Binding{k.Send, k.Next}
	switch s {
	case sectionMethod:
		bindings = append(bindings, key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "method")))
	case sectionHeaders:
		bindings = append(bindings, k.AddHeader, k.RemoveHeader,
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "name/value")))
	case sectionCatalog:
		bindings = append(bindings, key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "try it")))
	}
	return append(bindings, k.Clear, k.Quit)
}
