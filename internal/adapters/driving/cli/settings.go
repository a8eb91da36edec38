package cli

import (
	"bufio"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hnsearch/internal/core/domain"
	"github.com/custodia-labs/hnsearch/internal/core/ports/driving"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure search settings.

Settings are stored in config.toml inside the configuration directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting.

Keys:
  page_size      - hits requested per page (1-1000)
  default_query  - query submitted on start
  base_url       - search API endpoint`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	RunE:  runSettingsReset,
}

// settingSetters maps `settings set` keys to service calls.
var settingSetters = map[string]func(driving.SettingsService, string) error{
	"page_size": func(s driving.SettingsService, v string) error {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: page_size must be a number", domain.ErrInvalidInput)
		}
		return s.SetPageSize(size)
	},
	"default_query": func(s driving.SettingsService, v string) error {
		return s.SetDefaultQuery(v)
	},
	"base_url": func(s driving.SettingsService, v string) error {
		return s.SetBaseURL(v)
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := loadServices()
	if err != nil {
		return err
	}

	settings, err := svc.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Page size: %d\n", settings.Search.PageSize)
	cmd.Printf("  Default query: %q\n", settings.Search.DefaultQuery)
	cmd.Println()

	cmd.Println("[API]")
	cmd.Printf("  Base URL: %s\n", settings.API.BaseURL)
	cmd.Printf("  Timeout: %s\n", settings.API.Timeout)
	cmd.Printf("  Rate: %.1f req/s (burst %d)\n", settings.API.RequestsPerSecond, settings.API.Burst)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	setter, ok := settingSetters[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q (want %s)",
			domain.ErrInvalidInput, key, strings.Join(settingKeys(), ", "))
	}

	svc, err := loadServices()
	if err != nil {
		return err
	}

	if err := setter(svc.Settings, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s to %q\n", key, value)
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	svc, err := loadServices()
	if err != nil {
		return err
	}

	defaults := svc.Settings.GetDefaults()
	if err := svc.Settings.Save(&defaults); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}

	cmd.Println("Settings restored to defaults.")
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	svc, err := loadServices()
	if err != nil {
		return err
	}

	settings, err := svc.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("hnsearch Settings Wizard")
	cmd.Println("========================")
	cmd.Println("Press enter to keep the current value.")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	cmd.Printf("Step 1: Hits per page [%d]: ", settings.Search.PageSize)
	settings.Search.PageSize = parseNumber(readLine(reader), 1, domain.MaxPageSize, settings.Search.PageSize)

	cmd.Printf("Step 2: Default query [%s]: ", settings.Search.DefaultQuery)
	if input := readLine(reader); input != "" {
		settings.Search.DefaultQuery = input
	}

	cmd.Printf("Step 3: API base URL [%s]: ", settings.API.BaseURL)
	if input := readLine(reader); input != "" {
		settings.API.BaseURL = strings.TrimRight(input, "/")
	}

	cmd.Println()
	if err := svc.Settings.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println("Configuration Complete!")
	return nil
}

// Helper functions.

func settingKeys() []string {
	keys := make([]string, 0, len(settingSetters))
	for k := range settingSetters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// parseNumber parses input within [minVal, maxVal], returning defaultVal
// for empty or out of range input.
func parseNumber(input string, minVal, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < minVal || val > maxVal {
		return defaultVal
	}
	return val
}
