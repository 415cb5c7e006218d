// ABOUTME: CLI commands for journal and gratitude entries.
// ABOUTME: Provides journal add, list, show, and delete subcommands.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/mood/internal/models"
)

var (
	journalGratitude bool
	journalTitle     string
	journalAt        string
	journalKind      string
	journalLimit     int
)

var journalCmd = &cobra.Command{
	Use:     "journal",
	Aliases: []string{"j"},
	Short:   "Manage journal and gratitude entries",
	Long: `Write and review journal reflections and gratitude entries.

Journal text feeds trigger recognition: words like "deadline" or "lonely"
are matched against the trigger lexicon when you run 'mood insights triggers'.

EXAMPLES:

  mood journal add "Deadline moved again, feeling the pressure"
  mood journal add --gratitude "Coffee with Sam"
  mood journal add --title "Sunday" "Quiet day, long walk"
  mood journal list --kind gratitude
  mood journal show abc123
  mood journal delete abc123`,
}

var journalAddCmd = &cobra.Command{
	Use:   "add <text...>",
	Short: "Write a journal entry",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := models.JournalReflection
		if journalGratitude {
			kind = models.JournalGratitude
		}

		j := models.NewJournalEntry(kind, strings.Join(args, " "))
		if journalTitle != "" {
			j.WithTitle(journalTitle)
		}
		if journalAt != "" {
			t, err := parseTime(journalAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", journalAt)
			}
			j.WithRecordedAt(t)
		}

		if err := j.Validate(); err != nil {
			return err
		}
		if err := repo.CreateJournal(j); err != nil {
			return fmt.Errorf("failed to save journal entry: %w", err)
		}

		color.Green("✓ Saved %s entry", j.Kind)
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(j.ID.String()[:8]),
			truncate(j.Content, 50))

		return nil
	},
}

var journalListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List journal entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		var kind *models.JournalKind
		if journalKind != "" {
			if !models.IsValidJournalKind(journalKind) {
				return fmt.Errorf("unknown journal kind: %s (use journal or gratitude)", journalKind)
			}
			k := models.JournalKind(journalKind)
			kind = &k
		}

		journals, err := repo.ListJournals(kind, journalLimit)
		if err != nil {
			return fmt.Errorf("failed to list journal entries: %w", err)
		}

		if len(journals) == 0 {
			fmt.Println("No journal entries found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, j := range journals {
			title := ""
			if j.Title != nil && *j.Title != "" {
				title = color.New(color.Bold).Sprint(*j.Title) + " "
			}
			fmt.Printf("%s %s %s %s%s\n",
				faint.Sprint(j.ID.String()[:8]),
				faint.Sprint(j.RecordedAt.In(engine.Location()).Format("2006-01-02 15:04")),
				padRight(string(j.Kind), 10),
				title,
				truncate(strings.ReplaceAll(j.Content, "\n", " "), 50))
		}

		return nil
	},
}

var journalShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a journal entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := repo.GetJournal(args[0])
		if err != nil {
			return err
		}

		heading := string(j.Kind)
		if j.Title != nil && *j.Title != "" {
			heading = *j.Title
		}
		color.Cyan("%s", heading)
		fmt.Printf("  ID:   %s\n", j.ID.String()[:8])
		fmt.Printf("  Kind: %s\n", j.Kind)
		fmt.Printf("  Date: %s\n", j.RecordedAt.In(engine.Location()).Format("2006-01-02 15:04"))
		fmt.Println()
		fmt.Println(j.Content)

		return nil
	},
}

var journalDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a journal entry",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := repo.GetJournal(args[0])
		if err != nil {
			return err
		}

		if err := repo.DeleteJournal(j.ID.String()); err != nil {
			return fmt.Errorf("failed to delete journal entry: %w", err)
		}

		color.Yellow("✗ Deleted %s entry", j.Kind)
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(j.ID.String()[:8]),
			truncate(j.Content, 50))

		return nil
	},
}

func init() {
	journalAddCmd.Flags().BoolVarP(&journalGratitude, "gratitude", "g", false, "save as a gratitude entry")
	journalAddCmd.Flags().StringVar(&journalTitle, "title", "", "entry title")
	journalAddCmd.Flags().StringVar(&journalAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")

	journalListCmd.Flags().StringVarP(&journalKind, "kind", "k", "", "filter by kind (journal, gratitude)")
	journalListCmd.Flags().IntVarP(&journalLimit, "limit", "n", 20, "max number of results")

	journalCmd.AddCommand(journalAddCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalShowCmd)
	journalCmd.AddCommand(journalDeleteCmd)
	rootCmd.AddCommand(journalCmd)
}
