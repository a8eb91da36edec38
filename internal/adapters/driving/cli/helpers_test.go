package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/hnsearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/hnsearch/internal/core/domain"
	"github.com/custodia-labs/hnsearch/internal/core/ports/driving"
	"github.com/custodia-labs/hnsearch/internal/core/services"
)

type apiCall struct {
	query       string
	page        int
	hitsPerPage int
}

// stubAPI implements driven.SearchAPI with canned pages per query.
type stubAPI struct {
	mu    sync.Mutex
	pages map[string][][]domain.Item
	err   error
	calls []apiCall
}

func (s *stubAPI) Search(_ context.Context, query string, page, hitsPerPage int) (*domain.ResultPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, apiCall{query: query, page: page, hitsPerPage: hitsPerPage})
	if s.err != nil {
		return nil, s.err
	}
	pages := s.pages[query]
	if page >= len(pages) {
		return &domain.ResultPage{Hits: []domain.Item{}, Page: page}, nil
	}
	return &domain.ResultPage{Hits: pages[page], Page: page}, nil
}

// testEnv is the service graph behind a test run of the root command.
type testEnv struct {
	api         *stubAPI
	settings    driving.SettingsService
	controllers []*services.FetchController
}

// setupTestServices injects services backed by an in-memory config store
// and a stub search API. They are removed when the test ends.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		api:      &stubAPI{pages: make(map[string][][]domain.Item)},
		settings: services.NewSettingsService(memory.NewConfigStore()),
	}

	SetServices(&Services{
		Settings:      env.settings,
		NewController: controllerFactory(env),
	})
	t.Cleanup(func() { SetServices(nil) })

	return env
}

// controllerFactory builds controllers on the stub API and records them.
func controllerFactory(env *testEnv) func(domain.SearchSettings) driving.FetchController {
	return func(s domain.SearchSettings) driving.FetchController {
		c := services.NewFetchController(env.api, s)
		env.controllers = append(env.controllers, c)
		return c
	}
}

func (e *testEnv) addPage(query string, items ...domain.Item) {
	e.api.pages[query] = append(e.api.pages[query], items)
}

// resetFlags restores every flag to its default. Cobra keeps flag values
// between Execute calls on the same command tree.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithInput(t, "", args...)
}

func executeWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func story(id string, points, comments int) domain.Item {
	return domain.Item{
		ObjectID:    id,
		Title:       "Story " + id,
		URL:         fmt.Sprintf("https://example.com/%s", id),
		Author:      "user" + id,
		Points:      points,
		NumComments: comments,
	}
}

