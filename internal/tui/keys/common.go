package keys

import "github.com/charmbracelet/bubbles/key"

// Common key bindings used across TUI commands
type CommonKeys struct {
	Quit key.Binding
	Help key.Binding
}

func NewCommonKeys() CommonKeys {
	return CommonKeys{
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

// Picker key bindings for the port selection table
type PickerKeys struct {
	CommonKeys
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

func NewPickerKeys() PickerKeys {
	return PickerKeys{
		CommonKeys: NewCommonKeys(),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select port"),
		),
	}
}

func (k PickerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

func (k PickerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Help, k.Quit},
	}
}
