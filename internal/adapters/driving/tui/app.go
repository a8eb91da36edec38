package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/hnsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hnsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hnsearch/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/hnsearch/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/hnsearch/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// searchView shows the active query's results.
	searchView *search.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
// The app opens on the search view with the default query loading.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		menuView:    menu.NewView(s),
		searchView:  search.NewView(s, nil, ports.Fetch),
		currentView: messages.ViewSearch,
	}, nil
}

// WithContext sets the context for the app and its fetches.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("hnsearch"),
		a.searchView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, a.quit()
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
			a.err = a.searchView.Err()
		case messages.ViewHelp:
			if msg.Type == tea.KeyEsc || msg.String() == "q" {
				a.showMenu()
			}
		}
		return a, cmd

	case messages.PageFetched:
		// Results land on the search view even while another view is showing.
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.ViewChanged:
		switch msg.View {
		case messages.ViewMenu:
			a.showMenu()
		case messages.ViewSearch:
			a.currentView = msg.View
			a.searchView.Focus()
		default:
			a.currentView = msg.View
		}
		return a, nil

	case messages.QuerySelected:
		a.currentView = messages.ViewSearch
		cmd = a.searchView.Search(msg.Query)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, a.quit()
	}

	// Spinner ticks and cursor blinks belong to the search view.
	a.searchView, cmd = a.searchView.Update(msg)
	return a, cmd
}

// showMenu switches to the menu, listing the queries cached so far.
func (a *App) showMenu() {
	a.menuView.SetRecent(a.ports.Fetch.Cache().Queries())
	a.currentView = messages.ViewMenu
}

// quit disposes the controller so in-flight results are dropped, then exits.
func (a *App) quit() tea.Cmd {
	a.ports.Fetch.Dispose()
	logger.Debug("controller disposed, quitting")
	return tea.Quit
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.searchView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString(`

Search:
  (type)      Edit query
  enter       Submit query
  esc         Back to results

Results:
  j/k, ↑/↓    Navigate
  n           New search
  m           Load more
  d           Dismiss story
  /           Filter titles
  1/2/3/4     Sort by title/author/comments/points (again to reverse)
  0           Fetch order
  esc         Back to Menu

Anywhere:
  ctrl+c      Quit
`)

	if a.ports.Settings != nil {
		if settings, err := a.ports.Settings.Get(); err == nil {
			b.WriteString("\n")
			b.WriteString(a.styles.Muted.Render(fmt.Sprintf(
				"API %s | %d hits per page | default query %q",
				settings.API.BaseURL, settings.Search.PageSize, settings.Search.DefaultQuery,
			)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n[esc] back to menu")
	return b.String()
}

// Run starts the TUI application. The controller is disposed on exit.
func (a *App) Run() error {
	defer a.ports.Fetch.Dispose()

	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Query returns the text in the search input.
func (a *App) Query() string {
	return a.searchView.Query()
}

// SelectedIndex returns the currently selected result index.
func (a *App) SelectedIndex() int {
	return a.searchView.SelectedIndex()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and its views.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
}
