// ABOUTME: CLI command for moving data between storage backends.
// ABOUTME: Copies everything from the active backend into a new sqlite or markdown store.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/mood/internal/config"
	"github.com/harperreed/mood/internal/storage"
)

var (
	migrateTo      string
	migrateDataDir string
	migrateDryRun  bool
	migrateUse     bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate data to another storage backend",
	Long: `Copy all mood data from the active backend into another one.

Moods, journal entries, mindfulness sessions and saved wellness scores
are copied. The source is never modified.

IMPORTANT:

  - The destination directory must be empty or not exist yet
  - Run with --dry-run first to see what would be migrated
  - Pass --use to switch config.json to the new backend afterwards

USAGE:

  mood migrate --to markdown --data-dir ~/mood-notes --dry-run
  mood migrate --to markdown --data-dir ~/mood-notes --use
  mood migrate --to sqlite --data-dir ~/.local/share/mood-db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateTo != "sqlite" && migrateTo != "markdown" {
			return fmt.Errorf("invalid --to backend: %q (use sqlite or markdown)", migrateTo)
		}
		if migrateDataDir == "" {
			return fmt.Errorf("--data-dir is required")
		}

		dest := &config.Config{
			Backend:     migrateTo,
			DataDir:     migrateDataDir,
			Timezone:    cfg.Timezone,
			LogLevel:    cfg.LogLevel,
			LexiconPath: cfg.LexiconPath,
		}
		destDir := dest.GetDataDir()
		if destDir == cfg.GetDataDir() {
			return fmt.Errorf("destination %s is the current data directory", destDir)
		}

		nonEmpty, err := storage.IsDirNonEmpty(destDir)
		if err != nil {
			return err
		}
		if nonEmpty {
			return fmt.Errorf("destination %s is not empty", destDir)
		}

		if migrateDryRun {
			color.Yellow("Dry run mode - no changes will be made")
			fmt.Println()
			data, err := repo.GetAllData()
			if err != nil {
				return fmt.Errorf("failed to read data: %w", err)
			}
			fmt.Printf("Would migrate to %s at %s:\n", migrateTo, destDir)
			printMigrateCounts(&storage.MigrateSummary{
				Moods:     len(data.Moods),
				Journals:  len(data.Journals),
				Sessions:  len(data.Sessions),
				Snapshots: len(data.WellnessHistory),
			})
			return nil
		}

		dst, err := dest.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open destination: %w", err)
		}
		defer func() { _ = dst.Close() }()

		logger.Info("migrating", "from", cfg.GetBackend(), "to", migrateTo, "dir", destDir)
		summary, err := storage.MigrateData(repo, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migrated to %s at %s", migrateTo, destDir)
		printMigrateCounts(summary)

		if migrateUse {
			cfg.Backend = dest.Backend
			cfg.DataDir = dest.DataDir
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			color.Green("✓ Config now uses the %s backend", migrateTo)
		}
		return nil
	},
}

func printMigrateCounts(s *storage.MigrateSummary) {
	fmt.Printf("  Moods:                %d\n", s.Moods)
	fmt.Printf("  Journal entries:      %d\n", s.Journals)
	fmt.Printf("  Mindfulness sessions: %d\n", s.Sessions)
	fmt.Printf("  Wellness scores:      %d\n", s.Snapshots)
}

func init() {
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination backend (sqlite or markdown)")
	migrateCmd.Flags().StringVar(&migrateDataDir, "data-dir", "", "destination data directory")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	migrateCmd.Flags().BoolVar(&migrateUse, "use", false, "switch config to the new backend after migrating")
	rootCmd.AddCommand(migrateCmd)
}
