// NASA ADS MCP Server - A Model Context Protocol server for the NASA
// Astrophysics Data System. Provides tools for searching papers, exporting
// citations, computing metrics, and managing personal paper libraries.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/adstools/nasa-ads-mcp-server/internal/ads"
	"github.com/adstools/nasa-ads-mcp-server/tools"
	"github.com/adstools/nasa-ads-mcp-server/tracing"
)

const (
	ServerName    = "nasa-ads-mcp-server"
	ServerVersion = "1.0.0"
)

const serverInstructions = `NASA ADS MCP Server provides tools for the NASA Astrophysics Data System.

Available tools:
- search_papers: Search for astronomy/astrophysics papers by topic or fielded query
- get_paper_details: Get full metadata and abstract for a bibcode
- get_author_papers: List papers by a specific author
- export_bibtex: Export BibTeX citations for one or more bibcodes
- get_paper_metrics: Citation and read statistics for specific papers
- get_author_metrics: h-index and career statistics for an author
- list_libraries: List your personal ADS libraries
- get_library_papers: Show the papers in a library
- create_library: Create a new paper library
- add_to_library: Add bibcodes to an existing library

Configure via environment variables:
- ADS_API_TOKEN: NASA ADS API token (required, see https://ui.adsabs.harvard.edu/user/settings/token)
- ADS_API_URL: API base URL override (optional)
- ADS_TIMEOUT: Request timeout (optional, default 30s)`

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Load .env if present; the token usually lives there
	if err := godotenv.Load(); err == nil {
		logger.Info("Loaded environment from .env file")
	}

	// Load configuration from environment
	config, err := ads.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Initialize tracing (no-op unless enabled via environment)
	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	// Create ADS client
	client := ads.NewClient(config, ads.WithLogger(logger))

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: serverInstructions,
	})

	// Register all tools
	registry := tools.NewHandlerRegistry(client, logger)
	registry.RegisterAll(server)

	// Run server on stdio transport
	logger.Info("Starting NASA ADS MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"ads_url", config.BaseURL,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
