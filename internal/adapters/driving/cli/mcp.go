package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hnsearch/internal/adapters/driving/mcp"
)

var mcpPort int

// serveMCP runs the server until ctx is done. Tests replace it.
var serveMCP = func(ctx context.Context, server *mcp.Server, addr string) error {
	if addr != "" {
		return server.RunHTTP(ctx, addr)
	}
	return server.Run(ctx)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead.

Tools: search, load_more, dismiss, sort, filter. Each returns the current
result set. The resource hnsearch://results holds the same snapshot.

Examples:
  # Stdio mode (default)
  hnsearch mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  hnsearch mcp serve --port 8080

Client configuration:
  {
    "mcpServers": {
      "hnsearch": {
        "command": "/path/to/hnsearch",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if mcpPort < 0 || mcpPort > 65535 {
		return fmt.Errorf("invalid port %d", mcpPort)
	}

	svc, err := loadServices()
	if err != nil {
		return err
	}

	settings, err := svc.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	stopWatch := watchConfig(cmd.Context(), svc)
	defer stopWatch()

	server, err := mcp.NewServer(&mcp.Ports{
		Fetch:    svc.NewController(settings.Search),
		Settings: svc.Settings,
	})
	if err != nil {
		return err
	}
	defer server.Close()

	addr := ""
	if mcpPort > 0 {
		addr = fmt.Sprintf(":%d", mcpPort)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
	}

	return serveMCP(cmd.Context(), server, addr)
}
