// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/custodia-labs/hnsearch/internal/core/domain"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Search submits the query in the input box.
	Search key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select confirms a selection.
	Select key.Binding

	// NewSearch focuses the query input from the results list.
	NewSearch key.Binding

	// LoadMore requests the next page for the active query.
	LoadMore key.Binding

	// Dismiss hides the selected story from the cached results.
	Dismiss key.Binding

	// Filter edits the fuzzy title filter.
	Filter key.Binding

	SortTitle    key.Binding
	SortAuthor   key.Binding
	SortComments key.Binding
	SortPoints   key.Binding

	// ClearSort returns results to fetch order.
	ClearSort key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Search: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
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
			key.WithHelp("enter", "select"),
		),
		NewSearch: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new search"),
		),
		LoadMore: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "more"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dismiss"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		SortTitle: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "sort title"),
		),
		SortAuthor: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "sort author"),
		),
		SortComments: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "sort comments"),
		),
		SortPoints: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "sort points"),
		),
		ClearSort: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "fetch order"),
		),
	}
}

// SortKeyFor maps a key press to the sort key it selects.
// The boolean is false when the key is not a sort binding.
func (k *KeyMap) SortKeyFor(keyStr string) (domain.SortKey, bool) {
	switch {
	case Matches(keyStr, k.SortTitle):
		return domain.SortTitle, true
	case Matches(keyStr, k.SortAuthor):
		return domain.SortAuthor, true
	case Matches(keyStr, k.SortComments):
		return domain.SortComments, true
	case Matches(keyStr, k.SortPoints):
		return domain.SortPoints, true
	case Matches(keyStr, k.ClearSort):
		return domain.SortNone, true
	default:
		return domain.SortNone, false
	}
}

// ShortHelp returns a short list of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Help}
}

// ResultsHelp returns keybindings for the results view.
func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.NewSearch, k.LoadMore, k.Dismiss, k.Filter, k.SortPoints, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Search, k.NewSearch, k.LoadMore, k.Dismiss},
		{k.SortTitle, k.SortAuthor, k.SortComments, k.SortPoints, k.ClearSort},
		{k.Filter, k.Back},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
