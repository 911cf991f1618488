package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	back       key.Binding
	like       key.Binding
	open       key.Binding
	artist     key.Binding
	expand     key.Binding
	sortTime   key.Binding
	sortRating key.Binding
	search     key.Binding
	profile    key.Binding
	settings   key.Binding
	collection key.Binding
	add        key.Binding
	remove     key.Binding
	filter     key.Binding
	clear      key.Binding
	quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		like:       key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "like")),
		open:       key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open in player")),
		artist:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view artist")),
		expand:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "expand bio")),
		sortTime:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "sort by date")),
		sortRating: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "sort by rating")),
		search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		profile:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "profile")),
		settings:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		collection: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "collection")),
		add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		remove:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
		filter:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "cycle format filter")),
		clear:      key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "clear filters")),
		quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter, k.back},
		{k.like, k.open, k.artist, k.expand},
		{k.search, k.profile, k.settings, k.collection},
		{k.add, k.remove, k.filter, k.quit},
	}
}
