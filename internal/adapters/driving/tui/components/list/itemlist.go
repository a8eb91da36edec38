// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"net/url"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/hnsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hnsearch/internal/core/domain"
)

// ItemList displays search hits in a navigable list.
type ItemList struct {
	items    []domain.Item
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewItemList creates a new item list component.
func NewItemList(s *styles.Styles) *ItemList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ItemList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the item list.
func (l *ItemList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *ItemList) Update(msg tea.Msg) (*ItemList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		case "home", "g":
			l.selected = 0
		case "end", "G":
			if len(l.items) > 0 {
				l.selected = len(l.items) - 1
			}
		}
	}
	return l, nil
}

// View renders the visible window of items.
func (l *ItemList) View() string {
	if len(l.items) == 0 {
		return l.styles.Muted.Render("No results")
	}

	// Each item renders as a title line and a meta line.
	visible := (l.height - 1) / 2
	if visible < 1 {
		visible = 1
	}

	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.items) {
		end = len(l.items)
	}

	lines := make([]string, 0, (end-start)*2)
	for i := start; i < end; i++ {
		lines = append(lines, l.renderItem(i, l.items[i]))
	}
	return strings.Join(lines, "\n")
}

func (l *ItemList) renderItem(index int, item domain.Item) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	title := item.Title
	if title == "" {
		title = "(untitled)"
	}

	maxLen := l.width - 8
	if maxLen < 10 {
		maxLen = 10
	}

	host := hostOf(item.URL)
	if host != "" && len(title)+len(host)+3 <= maxLen {
		host = " (" + host + ")"
	} else {
		host = ""
	}
	title = truncate(title, maxLen)

	line := fmt.Sprintf("%s%3d. %s", indicator, index+1, title)
	if index == l.selected {
		line = l.styles.Selected.Render(line)
	} else {
		line = l.styles.Normal.Render(line)
	}
	if host != "" {
		line += l.styles.Host.Render(host)
	}

	meta := fmt.Sprintf("%d points by %s | %d comments", item.Points, item.Author, item.NumComments)
	return line + "\n" + l.styles.Meta.Render(meta)
}

// SetItems replaces the displayed items. The selection is kept where it
// was, clamped to the new length, so refreshing after a page load does not
// jump back to the top.
func (l *ItemList) SetItems(items []domain.Item) {
	l.items = items
	if l.selected >= len(items) {
		l.selected = len(items) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
}

// Items returns the current items.
func (l *ItemList) Items() []domain.Item {
	return l.items
}

// ResetSelection moves the selection to the first item.
func (l *ItemList) ResetSelection() {
	l.selected = 0
}

// Selected returns the index of the selected item.
func (l *ItemList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *ItemList) SetSelected(index int) {
	if index >= 0 && index < len(l.items) {
		l.selected = index
	}
}

// SelectedItem returns the currently selected item, or nil if none.
func (l *ItemList) SelectedItem() *domain.Item {
	if len(l.items) == 0 || l.selected < 0 || l.selected >= len(l.items) {
		return nil
	}
	return &l.items[l.selected]
}

// MoveUp moves selection up.
func (l *ItemList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *ItemList) MoveDown() {
	if l.selected < len(l.items)-1 {
		l.selected++
	}
}

// AtEnd reports whether the last item is selected.
func (l *ItemList) AtEnd() bool {
	return len(l.items) > 0 && l.selected == len(l.items)-1
}

// SetDimensions sets the component dimensions.
func (l *ItemList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the current width.
func (l *ItemList) Width() int {
	return l.width
}

// Height returns the current height.
func (l *ItemList) Height() int {
	return l.height
}

// Count returns the number of items.
func (l *ItemList) Count() int {
	return len(l.items)
}

// IsEmpty returns whether the list is empty.
func (l *ItemList) IsEmpty() bool {
	return len(l.items) == 0
}

// hostOf returns the host of a story link without a leading "www.".
func hostOf(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
