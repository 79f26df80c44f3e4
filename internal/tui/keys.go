package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Open        key.Binding
	Wishlist    key.Binding
	NextCat     key.Binding
	PrevCat     key.Binding
	CycleSort   key.Binding
	SortNewest  key.Binding
	SortLow     key.Binding
	SortHigh    key.Binding
	SortRating  key.Binding
	Search      key.Binding
	AddToCart   key.Binding
	CloseDetail key.Binding
	Help        key.Binding
	Quit        key.Binding
}

var keys = keyMap{
	Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Open:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	Wishlist:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "wishlist")),
	NextCat:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next category")),
	PrevCat:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev category")),
	CycleSort:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
	SortNewest:  key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "newest")),
	SortLow:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "price ↑")),
	SortHigh:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "price ↓")),
	SortRating:  key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "rating")),
	Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	AddToCart:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add to cart")),
	CloseDetail: key.NewBinding(key.WithKeys("esc", "c"), key.WithHelp("esc/c", "close")),
	Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Wishlist, k.NextCat, k.CycleSort, k.Search, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Wishlist},
		{k.NextCat, k.PrevCat, k.Search},
		{k.CycleSort, k.SortNewest, k.SortLow, k.SortHigh, k.SortRating},
		{k.AddToCart, k.CloseDetail, k.Help, k.Quit},
	}
}

// detailKeyMap is the footer help while the detail overlay is open.
type detailKeyMap struct{ k keyMap }

func (d detailKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{d.k.AddToCart, d.k.Wishlist, d.k.CloseDetail}
}

func (d detailKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{d.ShortHelp()} }
