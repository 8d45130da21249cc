package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	search   key.Binding
	upload   key.Binding
	share    key.Binding
	copyLink key.Binding
	delete   key.Binding
	redeem   key.Binding
	logout   key.Binding
	quit     key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left")),
	right:    key.NewBinding(key.WithKeys("right")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	search:   key.NewBinding(key.WithKeys("/")),
	upload:   key.NewBinding(key.WithKeys("u")),
	share:    key.NewBinding(key.WithKeys("s")),
	copyLink: key.NewBinding(key.WithKeys("c")),
	delete:   key.NewBinding(key.WithKeys("d")),
	redeem:   key.NewBinding(key.WithKeys("r")),
	logout:   key.NewBinding(key.WithKeys("l")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
}
