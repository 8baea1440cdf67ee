package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	refresh   key.Binding
	filters   key.Binding
	reset     key.Binding
	favorite  key.Binding
	copyEmail key.Binding
	profile   key.Binding
	edit      key.Binding
	delete    key.Binding
	toggle    key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("l")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	filters:   key.NewBinding(key.WithKeys("f")),
	reset:     key.NewBinding(key.WithKeys("ctrl+r")),
	favorite:  key.NewBinding(key.WithKeys("s", " ")),
	copyEmail: key.NewBinding(key.WithKeys("c")),
	profile:   key.NewBinding(key.WithKeys("p")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("ctrl+d")),
	toggle:    key.NewBinding(key.WithKeys("ctrl+t")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
