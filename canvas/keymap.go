package canvas

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the canvas key bindings. Keys reach the canvas only while
// no properties dialog is open.
type KeyMap struct {
	Up, Down  key.Binding
	Configure key.Binding
	Remove    key.Binding
	// Add drops an unbound field; the digit selects the type.
	Add key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Configure: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "properties")),
		Remove:    key.NewBinding(key.WithKeys("delete", "x"), key.WithHelp("x", "remove")),
		Add:       key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "add field")),
	}
}

func (km KeyMap) bindings() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Configure, km.Remove, km.Add}
}
