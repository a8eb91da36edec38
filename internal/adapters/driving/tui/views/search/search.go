// Package search provides the main search view for the TUI.
package search

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/hnsearch/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/hnsearch/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/hnsearch/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/hnsearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/hnsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hnsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hnsearch/internal/core/domain"
	"github.com/custodia-labs/hnsearch/internal/core/ports/driving"
	"github.com/custodia-labs/hnsearch/internal/logger"
)

// Mode selects which component receives key presses.
type Mode int

const (
	// ModeInput sends keys to the query input.
	ModeInput Mode = iota
	// ModeResults navigates and acts on the result list.
	ModeResults
	// ModeFilter sends keys to the title filter input.
	ModeFilter
)

// View is the search view: query input, result list and status bar.
//
// Fetches run as commands. Each command executes a request off the event
// loop and returns messages.PageFetched, which the view hands back to the
// controller. The controller decides whether the result is stale.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.TextInput
	filter    *input.TextInput
	list      *list.ItemList
	statusbar *status.Bar

	controller driving.FetchController
	ctx        context.Context

	width  int
	height int
	ready  bool
	mode   Mode
	err    error
}

// NewView creates a new search view.
func NewView(s *styles.Styles, km *keymap.KeyMap, controller driving.FetchController) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	filter := input.NewTextInput(s, "Filter", "Fuzzy match titles...")
	filter.Blur()

	return &View{
		styles:     s,
		keymap:     km,
		input:      input.NewTextInput(s, "Search", "Search stories..."),
		filter:     filter,
		list:       list.NewItemList(s),
		statusbar:  status.NewBar(s, km),
		controller: controller,
		ctx:        context.Background(),
		width:      80,
		height:     24,
		mode:       ModeInput,
	}
}

// WithContext sets the context used for fetches.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init submits the default query and starts the cursor blinking.
func (v *View) Init() tea.Cmd {
	if v.controller == nil {
		return tea.Batch(v.input.Init(), func() tea.Msg {
			return messages.ErrorOccurred{Err: ErrNoController}
		})
	}

	req := v.controller.Start()
	v.input.SetValue(v.controller.State().ActiveQuery)
	v.setMode(ModeResults)
	return tea.Batch(v.input.Init(), v.begin(req))
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.PageFetched:
		return v, v.handlePageFetched(msg)

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	// Spinner ticks and cursor blinks.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	v.statusbar, cmd = v.statusbar.Update(msg)
	cmds = append(cmds, cmd)
	switch v.mode {
	case ModeInput:
		v.input, cmd = v.input.Update(msg)
		cmds = append(cmds, cmd)
	case ModeFilter:
		v.filter, cmd = v.filter.Update(msg)
		cmds = append(cmds, cmd)
	case ModeResults:
	}
	return v, tea.Batch(cmds...)
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch v.mode {
	case ModeInput:
		return v.handleInputKey(msg)
	case ModeFilter:
		return v.handleFilterKey(msg)
	case ModeResults:
	}
	return v.handleResultsKey(msg)
}

func (v *View) handleInputKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		if v.list.IsEmpty() {
			return v, backToMenu
		}
		v.setMode(ModeResults)
		return v, nil
	case tea.KeyEnter:
		return v, v.submit(v.input.Value())
	default:
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
}

func (v *View) handleFilterKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		v.setMode(ModeResults)
		return v, nil
	default:
		var cmd tea.Cmd
		v.filter, cmd = v.filter.Update(msg)
		if v.controller != nil {
			v.controller.SetFilter(v.filter.Value())
			v.list.ResetSelection()
		}
		return v, tea.Batch(cmd, v.refresh())
	}
}

func (v *View) handleResultsKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case msg.Type == tea.KeyEsc:
		return v, backToMenu

	case keymap.Matches(keyStr, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }

	case keymap.Matches(keyStr, v.keymap.Help):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewHelp} }

	case keymap.Matches(keyStr, v.keymap.NewSearch):
		v.input.SetValue("")
		v.setMode(ModeInput)
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Filter):
		v.setMode(ModeFilter)
		return v, nil

	case keymap.Matches(keyStr, v.keymap.LoadMore):
		return v, v.loadMore()

	case keymap.Matches(keyStr, v.keymap.Dismiss):
		if v.controller == nil {
			return v, nil
		}
		if item := v.list.SelectedItem(); item != nil {
			v.controller.DismissItem(item.ObjectID)
		}
		return v, v.refresh()
	}

	if sortKey, ok := v.keymap.SortKeyFor(keyStr); ok {
		if v.controller == nil {
			return v, nil
		}
		v.controller.SetSortKey(sortKey)
		v.list.ResetSelection()
		return v, v.refresh()
	}

	v.list, _ = v.list.Update(msg)
	return v, nil
}

// Search shows term, fetching its first page unless it is cached.
func (v *View) Search(term string) tea.Cmd {
	v.input.SetValue(term)
	return v.submit(term)
}

// submit makes term the active query. A new term starts at the top of the list.
func (v *View) submit(term string) tea.Cmd {
	if v.controller == nil {
		return func() tea.Msg { return messages.ErrorOccurred{Err: ErrNoController} }
	}

	if term != v.controller.State().ActiveQuery {
		v.list.ResetSelection()
	}
	req := v.controller.SubmitQuery(term)
	v.setMode(ModeResults)
	return v.begin(req)
}

func (v *View) loadMore() tea.Cmd {
	if v.controller == nil {
		return nil
	}

	req, err := v.controller.LoadMore()
	if err != nil {
		logger.Debug("load more rejected: %v", err)
		return nil
	}
	return v.begin(req)
}

// begin refreshes the display and schedules req, if any.
func (v *View) begin(req *domain.FetchRequest) tea.Cmd {
	refresh := v.refresh()
	if req == nil {
		return refresh
	}
	return tea.Batch(refresh, v.fetch(*req))
}

// fetch executes req off the event loop. It touches no view state.
func (v *View) fetch(req domain.FetchRequest) tea.Cmd {
	controller := v.controller
	ctx := v.ctx
	return func() tea.Msg {
		return messages.PageFetched{Result: controller.Execute(ctx, req)}
	}
}

func (v *View) handlePageFetched(msg messages.PageFetched) tea.Cmd {
	if v.controller == nil {
		return nil
	}

	err := v.controller.Apply(msg.Result)
	if errors.Is(err, domain.ErrStaleResponse) {
		logger.Debug("discarded stale page %d for %q", msg.Result.Request.Page, msg.Result.Request.Query)
		return nil
	}
	return v.refresh()
}

// refresh copies the controller snapshot into the list and status bar.
func (v *View) refresh() tea.Cmd {
	if v.controller == nil {
		return nil
	}

	snap := v.controller.Snapshot()
	v.list.SetItems(snap.Hits)
	v.statusbar.SetSnapshot(snap)
	v.err = nil
	v.statusbar.SetMessage("")

	switch {
	case snap.IsLoading:
		return v.statusbar.SetState(status.StateLoading)
	case snap.Error != nil:
		v.err = errors.New(snap.Error.Message)
		v.statusbar.SetMessage(snap.Error.Message)
		return v.statusbar.SetState(status.StateError)
	case snap.Cached:
		return v.statusbar.SetState(status.StateResults)
	default:
		return v.statusbar.SetState(status.StateReady)
	}
}

func (v *View) setMode(mode Mode) {
	v.mode = mode
	v.input.Blur()
	v.filter.Blur()
	switch mode {
	case ModeInput:
		v.input.Focus()
	case ModeFilter:
		v.filter.Focus()
	case ModeResults:
	}
}

func backToMenu() tea.Msg {
	return messages.ViewChanged{View: messages.ViewMenu}
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)
	sections = append(sections, v.styles.Title.Render("Hacker News Search"), "", v.input.View())

	if v.mode == ModeFilter || v.filter.Value() != "" {
		sections = append(sections, v.filter.View())
	}
	sections = append(sections, "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render(v.err.Error()), "")
	}

	sections = append(sections, v.list.View(), "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.filter.SetWidth(width)
	// Reserve space for header, inputs and status bar.
	v.list.SetDimensions(width, height-12)
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Mode returns which component currently receives keys.
func (v *View) Mode() Mode {
	return v.mode
}

// InputFocused returns whether the query input has focus.
func (v *View) InputFocused() bool {
	return v.mode == ModeInput
}

// Editing reports whether keys are going to a text input.
func (v *View) Editing() bool {
	return v.mode == ModeInput || v.mode == ModeFilter
}

// Query returns the text in the query input.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the text in the query input.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Items returns the displayed items.
func (v *View) Items() []domain.Item {
	return v.list.Items()
}

// SelectedIndex returns the index of the selected item.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedItem returns the currently selected item.
func (v *View) SelectedItem() *domain.Item {
	return v.list.SelectedItem()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// StatusState returns the status bar state.
func (v *View) StatusState() status.State {
	return v.statusbar.State()
}

// Focus puts the view back into input mode when nothing is displayed,
// otherwise into results mode.
func (v *View) Focus() {
	if v.list.IsEmpty() {
		v.setMode(ModeInput)
		return
	}
	v.setMode(ModeResults)
}
