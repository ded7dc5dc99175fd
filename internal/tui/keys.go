package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter      key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	background key.Binding
	foreground key.Binding
	lockNow    key.Binding
}

var keys = keyMap{
	enter:      key.NewBinding(key.WithKeys("enter")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
	background: key.NewBinding(key.WithKeys("b")),
	foreground: key.NewBinding(key.WithKeys("f")),
	lockNow:    key.NewBinding(key.WithKeys("L")),
}
