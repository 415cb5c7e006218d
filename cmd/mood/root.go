// ABOUTME: Root Cobra command for mood CLI.
// ABOUTME: Opens storage and builds the insights engine via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/harperreed/mood/internal/config"
	"github.com/harperreed/mood/internal/insights"
	"github.com/harperreed/mood/internal/logging"
	"github.com/harperreed/mood/internal/storage"
)

var (
	cfg    *config.Config
	repo   storage.Repository
	engine *insights.Engine
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mood",
	Short: "Personal mood tracker with pattern insights",
	Long: `Mood is a CLI tool for tracking how you feel and spotting patterns over time.

WHAT IT TRACKS:

  Moods          ecstatic, happy, neutral, sad, angry with 1-10 intensity
  Context        factors, weather, hours of sleep, exercise
  Journal        free-form reflections and gratitude entries
  Mindfulness    breathing, meditation, body-scan and grounding sessions

QUICK START:

  $ mood log happy 7 -f friends -f sunshine    # Log a mood with factors
  $ mood log sad 3 --sleep 5 --note "Rough"    # Log with sleep and a note
  $ mood journal add "Deadline moved again"    # Write a journal entry
  $ mood mindful add breathing 5               # Record a 5 minute session
  $ mood list                                  # See recent moods

INSIGHTS:

  $ mood insights streak        # Current and longest logging streak
  $ mood insights correlate     # Mood by weather, exercise, sleep, factor
  $ mood insights triggers      # Recurring triggers from journals and factors
  $ mood insights predict       # Short-term mood predictions
  $ mood insights warnings      # Warning signs in recent check-ins
  $ mood insights score         # 0-100 wellness score with suggestions

MCP INTEGRATION:

  Run 'mood mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "mood": { "command": "mood", "args": ["mcp"] }
    }
  }

CONFIGURATION:

  Settings live in ~/.config/mood/config.json and can be overridden with
  MOOD_* environment variables (MOOD_BACKEND, MOOD_DATA_DIR, MOOD_TIMEZONE,
  MOOD_LOG_LEVEL, MOOD_LEXICON_PATH).

DATA STORAGE:

  Entries are stored in SQLite at ~/.local/share/mood/mood.db by default,
  or as markdown files when the backend is set to "markdown".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "help" || cmd.Name() == "install-skill" {
			return nil
		}
		return openRuntime()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeRuntime()
	},
}

// openRuntime loads config and opens storage, logger and engine.
func openRuntime() error {
	if err := closeRuntime(); err != nil {
		return err
	}

	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger = logging.Init(cfg.GetLogLevel())

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	lexicon, err := cfg.LoadLexicon()
	if err != nil {
		return err
	}
	engine = insights.NewEngine(insights.WithLocation(loc), insights.WithLexicon(lexicon))

	repo, err = cfg.OpenStorage()
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	logger.Debug("opened storage", "backend", cfg.GetBackend(), "dir", cfg.GetDataDir(), "timezone", loc.String())
	return nil
}

// closeRuntime releases the storage opened by openRuntime.
func closeRuntime() error {
	if repo == nil {
		return nil
	}
	err := repo.Close()
	repo = nil
	return err
}
