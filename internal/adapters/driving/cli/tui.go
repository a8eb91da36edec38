package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/hnsearch/internal/adapters/driving/tui"
	"github.com/custodia-labs/hnsearch/internal/logger"
)

// debugLogName is written to the temp dir when the TUI runs with --verbose.
// Logging to stderr would draw over the alt screen.
const debugLogName = "hnsearch-debug.log"

var tuiQuery string

// runApp starts the program. Tests replace it to avoid taking over the terminal.
var runApp = func(app *tui.App) error {
	return app.Run()
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

The configured default query loads on start. Every query's pages stay
cached for the session, so returning to an earlier query is instant.

Controls:
  ↑/k, ↓/j - Navigate results
  Enter    - Submit query
  n        - New search
  m        - Load more
  d        - Dismiss story
  /        - Filter titles
  1-4, 0   - Sort by title/author/comments/points, fetch order
  Esc      - Back
  ctrl+c   - Quit`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVarP(&tuiQuery, "query", "q", "", "query to load on start (default from settings)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in TUI: %v\n%s", r, debug.Stack())
		}
	}()

	svc, err := loadServices()
	if err != nil {
		return err
	}

	settings, err := svc.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	search := settings.Search
	if tuiQuery != "" {
		search.DefaultQuery = tuiQuery
	}

	if logger.IsVerbose() {
		path := filepath.Join(os.TempDir(), debugLogName)
		f, logErr := tea.LogToFile(path, "hnsearch")
		if logErr != nil {
			return fmt.Errorf("open debug log: %w", logErr)
		}
		logger.SetOutput(f)
		defer func() {
			logger.SetOutput(os.Stderr)
			f.Close() //nolint:errcheck
		}()
		fmt.Fprintf(cmd.ErrOrStderr(), "Debug log: %s\n", path)
	}

	stopWatch := watchConfig(cmd.Context(), svc)
	defer stopWatch()

	controller := svc.NewController(search)
	defer controller.Dispose()

	app, err := tui.NewApp(tui.NewPorts(controller, svc.Settings))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := runApp(app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
