package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hnsearch/internal/adapters/driving/mcp"
)

// stubServeMCP records the address the server would listen on.
func stubServeMCP(t *testing.T, err error) *string {
	t.Helper()
	original := serveMCP
	addr := new(string)
	*addr = "unset"
	serveMCP = func(_ context.Context, server *mcp.Server, a string) error {
		require.NotNil(t, server)
		*addr = a
		return err
	}
	t.Cleanup(func() { serveMCP = original })
	return addr
}

func TestMCPServeCmd_Flags(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPServeCmd_Stdio(t *testing.T) {
	setupTestServices(t)
	addr := stubServeMCP(t, nil)

	_, err := execute(t, "mcp", "serve")

	require.NoError(t, err)
	assert.Equal(t, "", *addr)
}

func TestMCPServeCmd_HTTP(t *testing.T) {
	setupTestServices(t)
	addr := stubServeMCP(t, nil)

	out, err := execute(t, "mcp", "serve", "--port", "8080")

	require.NoError(t, err)
	assert.Equal(t, ":8080", *addr)
	assert.Contains(t, out, "MCP server listening on http://localhost:8080")
}

func TestMCPServeCmd_InvalidPort(t *testing.T) {
	for _, port := range []string{"-1", "70000"} {
		t.Run(port, func(t *testing.T) {
			setupTestServices(t)
			addr := stubServeMCP(t, nil)

			_, err := execute(t, "mcp", "serve", "--port", port)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid port")
			assert.Equal(t, "unset", *addr)
		})
	}
}

func TestMCPServeCmd_ServeErrorAndDispose(t *testing.T) {
	env := setupTestServices(t)
	stubServeMCP(t, errors.New("listen failed"))

	_, err := execute(t, "mcp", "serve")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen failed")
	require.Len(t, env.controllers, 1)
	assert.True(t, env.controllers[0].Disposed())
}

func TestMCPServeCmd_RejectsArgs(t *testing.T) {
	setupTestServices(t)
	stubServeMCP(t, nil)

	_, err := execute(t, "mcp", "serve", "extra")

	require.Error(t, err)
}
