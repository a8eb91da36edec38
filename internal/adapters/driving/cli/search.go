package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/hnsearch/internal/core/domain"
	"github.com/custodia-labs/hnsearch/internal/core/ports/driving"
	"github.com/custodia-labs/hnsearch/internal/logger"
)

// Output formats accepted by --format.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatAtom  = "atom"
	formatRSS   = "rss"
)

// defaultTableWidth is used when stdout is not a terminal.
const defaultTableWidth = 100

var (
	searchPages       int
	searchSorts       []string
	searchFilter      string
	searchDismiss     []string
	searchHitsPerPage int
	searchFormat      string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search Hacker News stories",
	Long: `Searches Hacker News and prints the results.

Without a query the configured default query is used. Additional pages are
appended in order with --pages. Sorting, filtering and dismissal are applied
locally to the fetched results.

Sort keys: none, title, author, comments, points. Repeating a key reverses it:
  hnsearch search redux --sort points --sort points`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchPages, "pages", "p", 1, "number of pages to fetch")
	searchCmd.Flags().StringArrayVarP(&searchSorts, "sort", "s", nil, "sort key (repeat to toggle reverse)")
	searchCmd.Flags().StringVarP(&searchFilter, "filter", "f", "", "only show titles matching this pattern")
	searchCmd.Flags().StringArrayVar(&searchDismiss, "dismiss", nil, "hide the story with this objectID (repeatable)")
	searchCmd.Flags().IntVarP(&searchHitsPerPage, "hits-per-page", "n", 0, "hits per page (default from settings)")
	searchCmd.Flags().StringVar(&searchFormat, "format", formatTable, "output format: table, json, atom, rss")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := validateFormat(searchFormat); err != nil {
		return err
	}
	if searchPages < 1 {
		return fmt.Errorf("%w: --pages must be at least 1", domain.ErrInvalidInput)
	}

	sortKeys := make([]domain.SortKey, 0, len(searchSorts))
	for _, name := range searchSorts {
		key, err := domain.ParseSortKey(name)
		if err != nil {
			return err
		}
		sortKeys = append(sortKeys, key)
	}

	svc, err := loadServices()
	if err != nil {
		return err
	}

	settings, err := svc.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	search := settings.Search
	if searchHitsPerPage != 0 {
		if searchHitsPerPage < 1 || searchHitsPerPage > domain.MaxPageSize {
			return fmt.Errorf("%w: --hits-per-page must be between 1 and %d",
				domain.ErrInvalidInput, domain.MaxPageSize)
		}
		search.PageSize = searchHitsPerPage
	}

	query := search.DefaultQuery
	if len(args) == 1 {
		query = args[0]
	}

	controller := svc.NewController(search)
	defer controller.Dispose()

	logger.Section("Search")
	fetchErr := fetchPages(cmd, controller, query, searchPages)

	for _, id := range searchDismiss {
		controller.DismissItem(id)
	}
	for _, key := range sortKeys {
		controller.SetSortKey(key)
	}
	controller.SetFilter(searchFilter)

	snap := controller.Snapshot()
	if snap.Cached {
		if err := writeSnapshot(cmd, snap, searchFormat); err != nil {
			return err
		}
	}

	if fetchErr != nil {
		return fmt.Errorf("search failed: %w", fetchErr)
	}
	return nil
}

// fetchPages loads up to pages pages of query, stopping early when a page
// comes back empty.
func fetchPages(cmd *cobra.Command, controller driving.FetchController, query string, pages int) error {
	ctx := cmd.Context()

	if err := controller.Fetch(ctx, controller.SubmitQuery(query)); err != nil {
		return err
	}

	for i := 1; i < pages; i++ {
		before := controller.Snapshot().Total

		req, err := controller.LoadMore()
		if err != nil {
			return err
		}
		if err := controller.Fetch(ctx, req); err != nil {
			return err
		}

		if controller.Snapshot().Total == before {
			logger.Debug("Page %d of %q was empty, stopping", req.Page, query)
			break
		}
	}
	return nil
}

func validateFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatAtom, formatRSS:
		return nil
	default:
		return fmt.Errorf("%w: unknown format %q (want table, json, atom or rss)", domain.ErrInvalidInput, format)
	}
}

func writeSnapshot(cmd *cobra.Command, snap domain.Snapshot, format string) error {
	switch format {
	case formatJSON:
		return outputSearchJSON(cmd, snap)
	case formatAtom, formatRSS:
		return outputSearchFeed(cmd, snap, format)
	default:
		return outputSearchTable(cmd, snap)
	}
}

func outputSearchJSON(cmd *cobra.Command, snap domain.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true)
	tableMutedStyle  = lipgloss.NewStyle().Faint(true)
)

func outputSearchTable(cmd *cobra.Command, snap domain.Snapshot) error {
	if len(snap.Hits) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	width := terminalWidth()

	cmd.Println(tableHeaderStyle.Render(fmt.Sprintf("%-4s %6s %6s  %-15s %s", "#", "POINTS", "COMM", "AUTHOR", "TITLE")))
	for i, item := range snap.Hits {
		prefix := fmt.Sprintf("%-4d %6d %6d  %-15s ", i+1, item.Points, item.NumComments, truncate(item.Author, 15))
		title := item.Title
		if title == "" {
			title = "(untitled)"
		}
		cmd.Println(prefix + truncate(title, width-lipgloss.Width(prefix)))
	}

	cmd.Println()
	summary := fmt.Sprintf("%d of %d results for %q (page %d)", len(snap.Hits), snap.Total, snap.Query, snap.Page)
	if snap.Filter != "" {
		summary += fmt.Sprintf(", filter %q", snap.Filter)
	}
	if snap.Sort.Key != "" && snap.Sort.Key != domain.SortNone {
		summary += ", sorted by " + snap.Sort.Key.String()
		if snap.Sort.Reversed {
			summary += " (reversed)"
		}
	}
	cmd.Println(tableMutedStyle.Render(summary))
	return nil
}

// terminalWidth returns the stdout width, or a default when not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultTableWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultTableWidth
	}
	return width
}

// truncate shortens s to at most width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return strings.TrimRight(string(runes), " ") + "…"
}
