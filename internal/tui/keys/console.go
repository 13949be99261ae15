package keys

import "github.com/charmbracelet/bubbles/key"

// Console key bindings for the live output view
type ConsoleKeys struct {
	CommonKeys
	NextPattern key.Binding
	PrevPattern key.Binding
	LevelUp     key.Binding
	LevelDown   key.Binding
	Faster      key.Binding
	Slower      key.Binding
	Blackout    key.Binding
	Full        key.Binding
}

func NewConsoleKeys() ConsoleKeys {
	return ConsoleKeys{
		CommonKeys: NewCommonKeys(),
		NextPattern: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next pattern"),
		),
		PrevPattern: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous pattern"),
		),
		LevelUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "level up"),
		),
		LevelDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "level down"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "slower"),
		),
		Blackout: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "blackout"),
		),
		Full: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "full level"),
		),
	}
}

func (k ConsoleKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPattern, k.LevelUp, k.LevelDown, k.Blackout, k.Quit}
}

func (k ConsoleKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPattern, k.PrevPattern, k.LevelUp, k.LevelDown},
		{k.Faster, k.Slower, k.Blackout, k.Full},
		{k.Help, k.Quit},
	}
}
