// ABOUTME: MCP server setup for the mood tracker.
// ABOUTME: Wraps MCP server with storage Repository and insights engine.
package mcp

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/mood/internal/insights"
	"github.com/harperreed/mood/internal/logging"
	"github.com/harperreed/mood/internal/models"
	"github.com/harperreed/mood/internal/storage"
)

// Version is reported to MCP clients.
const Version = "1.0.0"

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	engine    *insights.Engine
	logger    *log.Logger
}

// NewServer creates a new MCP server with the given storage.
// A nil engine uses the system clock, local timezone and default lexicon.
func NewServer(repo storage.Repository, engine *insights.Engine) (*Server, error) {
	if engine == nil {
		engine = insights.NewEngine()
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "mood",
			Version: Version,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		engine:    engine,
		logger:    logging.Default().With("component", "mcp"),
	}

	s.registerTools()
	s.registerInsightTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("serving over stdio")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// loadEntries reads everything the analyzers need.
func (s *Server) loadEntries(ctx context.Context) (models.Entries, error) {
	entries, err := storage.LoadEntries(ctx, s.repo)
	if err != nil {
		return models.Entries{}, fmt.Errorf("failed to load entries: %w", err)
	}
	s.logger.Debug("loaded entries", "moods", len(entries.Moods), "journals", len(entries.Journals), "sessions", len(entries.Sessions))
	return entries, nil
}
