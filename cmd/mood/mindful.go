// ABOUTME: CLI commands for mindfulness sessions.
// ABOUTME: Provides mindful add, list, and delete subcommands.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/mood/internal/models"
)

var (
	mindfulNotes string
	mindfulAt    string
	mindfulLimit int
)

var mindfulCmd = &cobra.Command{
	Use:     "mindful",
	Aliases: []string{"m"},
	Short:   "Manage mindfulness sessions",
	Long: `Record breathing, meditation, body-scan and grounding sessions.

Sessions count toward the Mindfulness Practice metric of the wellness score.

EXAMPLES:

  mood mindful add breathing 5
  mood mindful add meditation 20 --notes "Guided, evening"
  mood mindful list
  mood mindful delete abc123`,
}

var mindfulAddCmd = &cobra.Command{
	Use:   "add <practice> [minutes]",
	Short: "Record a mindfulness session",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes := 0
		if len(args) == 2 {
			var err error
			minutes, err = strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid minutes: %s", args[1])
			}
		}

		s := models.NewMindfulnessSession(args[0], minutes)
		if mindfulNotes != "" {
			s.WithNotes(mindfulNotes)
		}
		if mindfulAt != "" {
			t, err := parseTime(mindfulAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", mindfulAt)
			}
			s.WithRecordedAt(t)
		}

		if err := s.Validate(); err != nil {
			return err
		}
		if err := repo.CreateSession(s); err != nil {
			return fmt.Errorf("failed to record session: %w", err)
		}

		color.Green("✓ Recorded %s session", s.Practice)
		fmt.Printf("  %s %d min\n",
			color.New(color.Faint).Sprint(s.ID.String()[:8]),
			s.DurationMinutes)

		return nil
	},
}

var mindfulListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List mindfulness sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := repo.ListSessions(mindfulLimit)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No mindfulness sessions found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, s := range sessions {
			notes := ""
			if s.Notes != nil && *s.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(*s.Notes, 30))
			}
			fmt.Printf("%s %s %s %d min%s\n",
				faint.Sprint(s.ID.String()[:8]),
				faint.Sprint(s.RecordedAt.In(engine.Location()).Format("2006-01-02 15:04")),
				padRight(s.Practice, 12),
				s.DurationMinutes,
				notes)
		}

		return nil
	},
}

var mindfulDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a mindfulness session",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteSession(args[0]); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}

		color.Yellow("✗ Deleted session %s", args[0])
		return nil
	},
}

func init() {
	mindfulAddCmd.Flags().StringVar(&mindfulNotes, "notes", "", "session notes")
	mindfulAddCmd.Flags().StringVar(&mindfulAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	mindfulListCmd.Flags().IntVarP(&mindfulLimit, "limit", "n", 20, "max number of results")

	mindfulCmd.AddCommand(mindfulAddCmd)
	mindfulCmd.AddCommand(mindfulListCmd)
	mindfulCmd.AddCommand(mindfulDeleteCmd)
	rootCmd.AddCommand(mindfulCmd)
}
