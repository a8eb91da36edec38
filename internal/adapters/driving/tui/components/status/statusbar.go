// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/hnsearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/hnsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hnsearch/internal/core/domain"
)

// State represents the current application state for display.
type State string

const (
	StateReady   State = "ready"
	StateLoading State = "loading"
	StateError   State = "error"
	StateHelp    State = "help"
	StateResults State = "results"
)

// Bar displays fetch status, result counts and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	spinner spinner.Model
	state   State
	message string
	shown   int
	total   int
	page    int
	sort    domain.SortState
	filter  string
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(s.Theme().Primary)),
	)

	return &Bar{
		styles:  s,
		keymap:  km,
		spinner: sp,
		state:   StateReady,
		page:    -1,
		width:   80,
	}
}

// Init initialises the status bar.
func (b *Bar) Init() tea.Cmd {
	return nil
}

// Update advances the spinner. Ticks received outside StateLoading are
// dropped, which stops the tick loop.
func (b *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); ok && b.state == StateLoading {
		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)
		return b, cmd
	}
	return b, nil
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	padding := b.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return b.styles.StatusBar.Width(b.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (b *Bar) renderLeft() string {
	switch b.state {
	case StateLoading:
		return b.spinner.View() + b.styles.Muted.Render(" Loading...")
	case StateError:
		if b.message != "" {
			return b.styles.Error.Render(b.message)
		}
		return b.styles.Error.Render("Error")
	case StateHelp:
		return b.styles.Normal.Render("Help")
	case StateReady, StateResults:
	}

	if b.total == 0 {
		return b.styles.Muted.Render("Ready")
	}

	parts := []string{b.styles.Normal.Render(b.counts())}
	if b.sort.Key != "" && b.sort.Key != domain.SortNone {
		label := "sort: " + string(b.sort.Key)
		if b.sort.Reversed {
			label += " (rev)"
		}
		parts = append(parts, b.styles.Badge.Render(label))
	}
	if b.filter != "" {
		parts = append(parts, b.styles.Badge.Render("filter: "+b.filter))
	}
	return strings.Join(parts, " ")
}

func (b *Bar) counts() string {
	text := fmt.Sprintf("%d results", b.total)
	if b.shown != b.total {
		text = fmt.Sprintf("%d of %d results", b.shown, b.total)
	}
	if b.page >= 0 {
		text += fmt.Sprintf(" | page %d", b.page+1)
	}
	return text
}

func (b *Bar) renderRight() string {
	var bindings []key.Binding
	if b.state == StateResults && b.total > 0 {
		bindings = b.keymap.ResultsHelp()
	} else {
		bindings = b.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return b.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state. Entering StateLoading returns the
// command that starts the spinner.
func (b *Bar) SetState(state State) tea.Cmd {
	prev := b.state
	b.state = state
	if state == StateLoading && prev != StateLoading {
		return b.spinner.Tick
	}
	return nil
}

// State returns the current state.
func (b *Bar) State() State {
	return b.state
}

// SetMessage sets a custom message.
func (b *Bar) SetMessage(message string) {
	b.message = message
}

// Message returns the current message.
func (b *Bar) Message() string {
	return b.message
}

// SetSnapshot copies counts, page, sort and filter from a controller snapshot.
func (b *Bar) SetSnapshot(snap domain.Snapshot) {
	b.shown = len(snap.Hits)
	b.total = snap.Total
	b.page = snap.Page
	b.sort = snap.Sort
	b.filter = snap.Filter
}

// ResultCount returns the number of results shown after filtering.
func (b *Bar) ResultCount() int {
	return b.shown
}

// Total returns the number of cached results before filtering.
func (b *Bar) Total() int {
	return b.total
}

// SetWidth sets the status bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Width returns the current width.
func (b *Bar) Width() int {
	return b.width
}

// Clear resets the status bar to default state.
func (b *Bar) Clear() {
	b.state = StateReady
	b.message = ""
	b.shown = 0
	b.total = 0
	b.page = -1
	b.sort = domain.SortState{}
	b.filter = ""
}
