// ABOUTME: CLI command for listing mood entries.
// ABOUTME: Shows newest first with relative times and an optional limit.
package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/mood/internal/models"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List mood entries",
	Long: `List recent mood entries, newest first.

OUTPUT FORMAT:

  Each line shows: ID  TIMESTAMP  MOOD  INTENSITY  FACTORS  (NOTE)

  The ID is an 8-character prefix you can use with delete commands.

EXAMPLES:

  mood list            # Show last 20 moods
  mood list -n 50      # Show last 50 moods`,
	RunE: func(cmd *cobra.Command, args []string) error {
		moods, err := repo.ListMoods(listLimit)
		if err != nil {
			return fmt.Errorf("failed to list moods: %w", err)
		}

		if len(moods) == 0 {
			fmt.Println("No moods found.")
			return nil
		}

		faint := color.New(color.Faint)
		loc := engine.Location()
		for _, m := range moods {
			note := ""
			if m.Note != nil && *m.Note != "" {
				note = faint.Sprintf(" (%s)", truncate(*m.Note, 30))
			}
			fmt.Printf("%s %s %s %s %s %s%s\n",
				faint.Sprint(m.ID.String()[:8]),
				faint.Sprint(m.RecordedAt.In(loc).Format("2006-01-02 15:04")),
				padRight(faint.Sprint(humanize.Time(m.RecordedAt)), 16),
				padRight(moodColor(m.Mood).Sprint(m.Mood), 10),
				padRight(fmt.Sprintf("%d/10", m.Intensity), 6),
				strings.Join(m.Factors, ", "),
				note)
		}

		return nil
	},
}

// moodColor picks a display color for a mood label.
func moodColor(label models.MoodLabel) *color.Color {
	switch label {
	case models.MoodEcstatic, models.MoodHappy:
		return color.New(color.FgGreen)
	case models.MoodSad:
		return color.New(color.FgBlue)
	case models.MoodAngry:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")
	rootCmd.AddCommand(listCmd)
}
