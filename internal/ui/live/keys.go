package live

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap lists the bindings used across screens.
type keyMap struct {
	Start   key.Binding
	Options key.Binding
	Up      key.Binding
	Down    key.Binding
	Choose  key.Binding
	Back    key.Binding
	Restart key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Start:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "begin")),
		Options: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "answer")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Choose:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose")),
		Back:    key.NewBinding(key.WithKeys("b", "left", "backspace"), key.WithHelp("b", "back")),
		Restart: key.NewBinding(key.WithKeys("r", "enter"), key.WithHelp("r", "take again")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// optionIndex maps a digit key to a 0-based option.
func optionIndex(keyName string) (int, bool) {
	if len(keyName) != 1 || keyName[0] < '1' || keyName[0] > '5' {
		return 0, false
	}
	return int(keyName[0] - '1'), true
}
