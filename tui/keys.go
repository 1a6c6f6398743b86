package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the browser's key bindings.
type KeyMap struct {
	Quit   key.Binding
	Select key.Binding

	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding

	Activate    key.Binding
	Expand      key.Binding
	Collapse    key.Binding
	ExpandAll   key.Binding
	CollapseAll key.Binding

	Search     key.Binding
	ExitSearch key.Binding

	Copy      key.Binding
	SortKey   key.Binding
	Reverse   key.Binding
	DirsFirst key.Binding
}

// DefaultKeyMap returns the bindings used in Browsing mode. While searching
// only the keys that cannot be typed into a query stay active.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Select: key.NewBinding(key.WithKeys("o", "ctrl+o"), key.WithHelp("o", "print path and quit")),

		Up:       key.NewBinding(key.WithKeys("up", "k", "ctrl+p"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j", "ctrl+n"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),

		Activate:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open/toggle")),
		Expand:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "expand")),
		Collapse:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "collapse")),
		ExpandAll:   key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "expand all")),
		CollapseAll: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "collapse all")),

		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		ExitSearch: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "end search")),

		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy path")),
		SortKey:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort key")),
		Reverse:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reverse")),
		DirsFirst: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dirs first")),
	}
}

// searchKeys narrows the map to what works while a query is being typed.
func (k KeyMap) searchKeys() KeyMap {
	return KeyMap{
		Quit:       key.NewBinding(key.WithKeys("ctrl+c")),
		Select:     key.NewBinding(key.WithKeys("ctrl+o")),
		Up:         key.NewBinding(key.WithKeys("up", "ctrl+p")),
		Down:       key.NewBinding(key.WithKeys("down", "ctrl+n")),
		PageUp:     k.PageUp,
		PageDown:   k.PageDown,
		Top:        key.NewBinding(key.WithKeys("home")),
		Bottom:     key.NewBinding(key.WithKeys("end")),
		Activate:   k.Activate,
		Expand:     key.NewBinding(key.WithKeys("right")),
		Collapse:   key.NewBinding(key.WithKeys("left")),
		ExitSearch: k.ExitSearch,
	}
}

func (k KeyMap) helpLine() []key.Binding {
	return []key.Binding{k.Activate, k.Search, k.Select, k.Copy, k.SortKey, k.Reverse, k.DirsFirst, k.Quit}
}
