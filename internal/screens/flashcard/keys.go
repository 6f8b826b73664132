package flashcard

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/wordflash/internal/ui/layout"
)

type keyMap struct {
	GotIt key.Binding
	Help  key.Binding
	Back  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		GotIt: key.NewBinding(
			key.WithKeys("space", "enter"),
			key.WithHelp("Space", "Got it"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "1"),
			key.WithHelp("H", "Need help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Menu"),
		),
	}
}

func (k keyMap) hints() []layout.KeyHint {
	return layout.HintsFromBindings(k.GotIt, k.Help, k.Back)
}
