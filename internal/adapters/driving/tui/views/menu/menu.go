// Package menu provides the main navigation menu view for the TUI.
package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/hnsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hnsearch/internal/adapters/driving/tui/styles"
)

// maxRecent caps the cached queries listed under the actions.
const maxRecent = 9

// Item represents a single menu option.
type Item struct {
	Label string
	View  messages.ViewType
	Quit  bool // If true, selecting this item quits the app

	// Cached is set for recent queries; Query may then be empty.
	Cached bool
	Query  string
}

// View represents the main menu view.
type View struct {
	styles   *styles.Styles
	actions  []Item
	recent   []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		actions: []Item{
			{Label: "Search", View: messages.ViewSearch},
			{Label: "Help", View: messages.ViewHelp},
			{Label: "Quit", Quit: true},
		},
		width:  80,
		height: 24,
	}
}

// SetRecent lists queries that are already cached. Selecting one returns
// to its results without a request.
func (v *View) SetRecent(queries []string) {
	if len(queries) > maxRecent {
		queries = queries[:maxRecent]
	}

	v.recent = v.recent[:0]
	for _, q := range queries {
		label := q
		if strings.TrimSpace(label) == "" {
			label = "(empty query)"
		}
		v.recent = append(v.recent, Item{Label: label, Query: q, Cached: true})
	}

	if v.selected >= v.count() {
		v.selected = v.count() - 1
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < v.count()-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			return v, v.choose(v.item(v.selected))

		case "q":
			return v, quit
		}
	}

	return v, nil
}

func (v *View) choose(item Item) tea.Cmd {
	switch {
	case item.Quit:
		return quit
	case item.Cached:
		return func() tea.Msg { return messages.QuerySelected{Query: item.Query} }
	default:
		return func() tea.Msg { return messages.ViewChanged{View: item.View} }
	}
}

// quit asks the app to shut down so it can dispose the controller first.
func quit() tea.Msg {
	return messages.Quit{}
}

func (v *View) count() int {
	return len(v.actions) + len(v.recent)
}

func (v *View) item(i int) Item {
	if i < len(v.actions) {
		return v.actions[i]
	}
	return v.recent[i-len(v.actions)]
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Hacker News Search"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("Stories via the Algolia search API"))
	b.WriteString("\n\n")

	for i := range v.actions {
		v.writeItem(&b, i)
	}

	if len(v.recent) > 0 {
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Cached queries (%d)", len(v.recent))))
		b.WriteString("\n")
		for i := range v.recent {
			v.writeItem(&b, len(v.actions)+i)
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [q] Quit"))

	return b.String()
}

func (v *View) writeItem(b *strings.Builder, i int) {
	label := v.item(i).Label
	if i == v.selected {
		b.WriteString("> " + v.styles.Title.Render(label))
	} else {
		b.WriteString("  " + v.styles.Normal.Render(label))
	}
	b.WriteString("\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Recent returns the cached queries currently listed.
func (v *View) Recent() []string {
	out := make([]string, len(v.recent))
	for i, item := range v.recent {
		out[i] = item.Query
	}
	return out
}
