package browse

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Search   key.Binding
	Hashtag  key.Binding
	Username key.Binding
	Sort     key.Binding
	Next     key.Binding
	Prev     key.Binding
	Back     key.Binding
	Forward  key.Binding
	Refresh  key.Binding
	Clear    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Hashtag:  key.NewBinding(key.WithKeys("#"), key.WithHelp("#", "hashtag")),
		Username: key.NewBinding(key.WithKeys("@"), key.WithHelp("@", "author")),
		Sort:     key.NewBinding(key.WithKeys("tab", "s"), key.WithHelp("tab", "sort")),
		Next:     key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→", "next page")),
		Prev:     key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←", "prev page")),
		Back:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "back")),
		Forward:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "forward")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear filters")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Sort, k.Prev, k.Next, k.Open, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.Search, k.Hashtag, k.Username, k.Clear},
		{k.Sort, k.Prev, k.Next},
		{k.Back, k.Forward, k.Refresh},
		{k.Help, k.Quit},
	}
}
