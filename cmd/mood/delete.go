// ABOUTME: CLI command for deleting mood entries.
// ABOUTME: Supports deletion by full ID or ID prefix.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a mood entry",
	Long: `Delete a mood entry by its ID or ID prefix.

You can use either the full UUID or just the first few characters (prefix).
The ID prefix is shown in the first column of 'mood list' output.

EXAMPLES:

  mood delete abc12345                    # Delete by 8-char prefix
  mood delete abc12345-1234-1234-...     # Delete by full UUID
  mood rm abc1                            # Short prefix (if unique)

CAUTION:

  This permanently deletes the entry. There is no undo.
  If the prefix matches multiple entries, an error is returned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idOrPrefix := args[0]

		// First, get the entry to show what we're deleting
		m, err := repo.GetMood(idOrPrefix)
		if err != nil {
			return err
		}

		if err := repo.DeleteMood(m.ID.String()); err != nil {
			return fmt.Errorf("failed to delete mood: %w", err)
		}

		color.Yellow("✗ Deleted %s", m.Mood)
		fmt.Printf("  %s %d/10 %s\n",
			color.New(color.Faint).Sprint(m.ID.String()[:8]),
			m.Intensity,
			m.RecordedAt.In(engine.Location()).Format("2006-01-02 15:04"))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
