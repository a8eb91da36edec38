package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hnsearch/internal/adapters/driving/cli"
	"github.com/custodia-labs/hnsearch/internal/core/domain"
)

func TestBootstrap_NoConfig(t *testing.T) {
	svc, err := bootstrap(cli.Options{NoConfig: true})
	require.NoError(t, err)
	require.NotNil(t, svc.Settings)

	settings, err := svc.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)

	assert.Nil(t, svc.WatchConfig)

	controller := svc.NewController(settings.Search)
	require.NotNil(t, controller)
	controller.Dispose()
}

func TestBootstrap_ConfigDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "hn")

	svc, err := bootstrap(cli.Options{ConfigDir: dir})
	require.NoError(t, err)
	assert.NotNil(t, svc.WatchConfig)
	require.NoError(t, svc.Settings.SetDefaultQuery("golang"))

	_, err = os.Stat(filepath.Join(dir, "config.toml"))
	assert.NoError(t, err)

	reopened, err := bootstrap(cli.Options{ConfigDir: dir})
	require.NoError(t, err)
	settings, err := reopened.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, "golang", settings.Search.DefaultQuery)
}

func TestBootstrap_ReloadReconfiguresSearchAPI(t *testing.T) {
	requests := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests <- r.URL.Query().Get("query")
		_, _ = w.Write([]byte(`{"hits": [{"objectID": "1", "title": "Redux"}], "page": 0}`))
	}))
	t.Cleanup(server.Close)

	svc, err := bootstrap(cli.Options{NoConfig: true})
	require.NoError(t, err)
	require.NotNil(t, svc.Reload)
	require.NoError(t, svc.Settings.SetBaseURL(server.URL))
	require.NoError(t, svc.Reload())

	settings, err := svc.Settings.Get()
	require.NoError(t, err)
	controller := svc.NewController(settings.Search)
	t.Cleanup(controller.Dispose)

	require.NoError(t, controller.Fetch(context.Background(), controller.Start()))

	assert.Equal(t, "redux", <-requests)
	assert.Len(t, controller.Snapshot().Hits, 1)
}
