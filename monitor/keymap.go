package monitor

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	quit key.Binding
}

var defaultKeymap = keymap{
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "save and quit"),
	),
}
