package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	pageUp    key.Binding
	pageDown  key.Binding
	left      key.Binding
	right     key.Binding
	tab       key.Binding
	backtab   key.Binding
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	refresh   key.Binding
	remove    key.Binding
	search    key.Binding
	rescan    key.Binding
	startTask key.Binding
	copy      key.Binding
	filter    key.Binding
	yes       key.Binding
	no        key.Binding
	forceQuit key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	pageUp:    key.NewBinding(key.WithKeys("pgup")),
	pageDown:  key.NewBinding(key.WithKeys("pgdown")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	remove:    key.NewBinding(key.WithKeys("d")),
	search:    key.NewBinding(key.WithKeys("s")),
	rescan:    key.NewBinding(key.WithKeys("u")),
	startTask: key.NewBinding(key.WithKeys("t")),
	copy:      key.NewBinding(key.WithKeys("c")),
	filter:    key.NewBinding(key.WithKeys("/")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
}
