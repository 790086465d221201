package update

import "github.com/charmbracelet/bubbles/key"

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func paletteHelpKeys() helpKeyMap {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "lists")),
		key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "board")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
	return helpKeyMap{short: bindings, full: [][]key.Binding{bindings}}
}
