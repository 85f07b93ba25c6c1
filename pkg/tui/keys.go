package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Open           key.Binding
	Quit           key.Binding
	Up             key.Binding
	Down           key.Binding
	CaptureDefault key.Binding
	CaptureAlt     key.Binding
	ToggleAutorun  key.Binding
	Save           key.Binding
	Cancel         key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open:           key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "settings")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		CaptureDefault: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "use current colours as default")),
		CaptureAlt:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "use current colours as alternative")),
		ToggleAutorun:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "toggle autostart")),
		Save:           key.NewBinding(key.WithKeys("ctrl+s", "enter"), key.WithHelp("enter", "save")),
		Cancel:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
