package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	backtab     key.Binding
	quit        key.Binding
	forceQuit   key.Binding
	upload      key.Binding
	process     key.Binding
	refresh     key.Binding
	downloadAll key.Binding
	letter      key.Binding
	appendix    key.Binding
	pair        key.Binding
	copy        key.Binding
	about       key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab")),
	quit:        key.NewBinding(key.WithKeys("q")),
	forceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
	upload:      key.NewBinding(key.WithKeys("ctrl+u")),
	process:     key.NewBinding(key.WithKeys("ctrl+g")),
	refresh:     key.NewBinding(key.WithKeys("ctrl+r")),
	downloadAll: key.NewBinding(key.WithKeys("ctrl+o")),
	letter:      key.NewBinding(key.WithKeys("l")),
	appendix:    key.NewBinding(key.WithKeys("p")),
	pair:        key.NewBinding(key.WithKeys("b")),
	copy:        key.NewBinding(key.WithKeys("c")),
	about:       key.NewBinding(key.WithKeys("f1")),
}
