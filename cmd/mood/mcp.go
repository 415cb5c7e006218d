// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server exposing mood tracking and insight tools.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/mood/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to log moods and read your insights
through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "mood": {
        "command": "mood",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  log_mood              Record a mood with intensity and context
  list_moods            List recent moods
  delete_mood           Delete a mood by ID
  add_journal           Write a journal or gratitude entry
  list_journals         List recent journal entries
  delete_journal        Delete a journal entry by ID
  add_mindfulness       Record a mindfulness session
  list_mindfulness      List recent mindfulness sessions
  get_streak            Current and longest logging streaks
  get_correlations      Mood by weather, exercise, sleep or factor
  get_triggers          Recurring triggers from journals and factors
  get_predictions       Short-term predictions and early warnings
  get_wellness_score    Weighted wellness score (optionally saved)
  get_wellness_history  Saved daily wellness scores

AVAILABLE RESOURCES:

  mood://recent      Recent moods, journal entries and sessions
  mood://today       Today's entries
  mood://wellness    Wellness score, streaks and warnings`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo, engine)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		logger.Debug("starting MCP server", "backend", cfg.GetBackend())
		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
