// ABOUTME: CLI commands for behavioral insights and wellness scoring.
// ABOUTME: Renders streaks, correlations, triggers, predictions and the wellness score.
package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/mood/internal/insights"
	"github.com/harperreed/mood/internal/storage"
)

var (
	correlateFactor string
	triggersDelay   time.Duration
	scoreSave       bool
	historyLimit    int
)

var insightsCmd = &cobra.Command{
	Use:     "insights",
	Aliases: []string{"i"},
	Short:   "Analyze mood patterns",
	Long: `Analyze your entries for streaks, correlations, triggers and trends.

All analysis runs locally on your own data. Days are counted in the
configured timezone (see 'timezone' in config.json or MOOD_TIMEZONE).

SUBCOMMANDS:

  streak       Current and longest run of days with a mood logged
  correlate    Average mood by weather, exercise, sleep or factor
  triggers     Recurring triggers from journal text and low-mood factors
  predict      Short-term predictions from the last two weeks
  warnings     Early warning signs in the last five check-ins
  score        Weighted 0-100 wellness score with suggestions
  history      Saved daily wellness scores`,
}

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show logging streaks",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := storage.LoadEntries(cmd.Context(), repo)
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}

		mood := engine.Streak(entries.Moods)
		activity := engine.ActivityStreak(entries)

		color.Cyan("Streaks")
		fmt.Printf("  Mood logging   %s (longest %d)\n", dayCount(mood.Current), mood.Longest)
		fmt.Printf("  Any activity   %s (longest %d)\n", dayCount(activity.Current), activity.Longest)
		if mood.Current == 0 && mood.LastDay != "" {
			fmt.Printf("  %s\n", color.New(color.Faint).Sprintf("Last mood logged on %s. Log one today to start a new streak.", mood.LastDay))
		}
		return nil
	},
}

var correlateCmd = &cobra.Command{
	Use:       "correlate [weather|exercise|sleep|factor]",
	Short:     "Show how context relates to mood",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"weather", "exercise", "sleep", "factor"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var dims []insights.Dimension
		switch {
		case correlateFactor != "":
			dims = append(dims, insights.FactorPresence(correlateFactor))
		case len(args) == 1:
			dim, err := insights.DimensionByName(args[0])
			if err != nil {
				return err
			}
			dims = append(dims, dim)
		default:
			dims = append(dims,
				insights.WeatherDimension(),
				insights.ExerciseDimension(),
				insights.SleepDimension(),
				insights.FactorDimension(),
			)
		}

		moods, err := repo.ListMoods(0)
		if err != nil {
			return fmt.Errorf("failed to list moods: %w", err)
		}

		for i, dim := range dims {
			if i > 0 {
				fmt.Println()
			}
			printCorrelation(engine.Correlate(moods, dim))
		}
		return nil
	},
}

func printCorrelation(insight insights.CorrelationInsight) {
	faint := color.New(color.Faint)
	color.Cyan("%s", capitalize(insight.Dimension))

	for _, r := range insight.Results {
		fmt.Printf("  %s %s %s\n",
			padRight(r.Group, 16),
			padRight(fmt.Sprintf("%.1f", r.AverageIntensity), 5),
			faint.Sprintf("(%d entries)", r.SampleCount))
	}

	switch insight.Status {
	case insights.StatusFound:
		color.Green("  %s", insight.Message)
	default:
		fmt.Printf("  %s\n", faint.Sprint(insight.Message))
	}
}

var triggersCmd = &cobra.Command{
	Use:   "triggers",
	Short: "Find recurring mood triggers",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := storage.LoadEntries(cmd.Context(), repo)
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}

		if triggersDelay > 0 {
			fmt.Println(color.New(color.Faint).Sprint("Analyzing your entries..."))
			select {
			case <-time.After(triggersDelay):
			case <-cmd.Context().Done():
				return cmd.Context().Err()
			}
		}

		triggers, err := engine.Triggers(entries.Journals, entries.Moods)
		if errors.Is(err, insights.ErrInsufficientData) {
			fmt.Printf("Not enough data yet. Log at least %d moods or %d journal entries.\n",
				insights.MinMoodsForTriggers, insights.MinJournalsForTriggers)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to analyze triggers: %w", err)
		}

		if len(triggers) == 0 {
			fmt.Println("No recurring triggers found.")
			return nil
		}

		faint := color.New(color.Faint)
		color.Cyan("Triggers")
		for _, t := range triggers {
			fmt.Printf("  %s %s %s %s\n",
				padRight(t.Trigger, 16),
				severityColor(t.Severity).Sprint(padRight(string(t.Severity), 7)),
				faint.Sprintf("%dx (%d recent)", t.Frequency, t.RecentOccurrences),
				faint.Sprintf("avg mood %.1f", t.AverageMoodImpact))
			if len(t.AssociatedFactors) > 0 {
				fmt.Printf("    %s\n", faint.Sprintf("with: %s", insights.FormatFactors(t.AssociatedFactors)))
			}
		}
		return nil
	},
}

func severityColor(s insights.Severity) *color.Color {
	switch s {
	case insights.SeverityHigh:
		return color.New(color.FgRed)
	case insights.SeverityMedium:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict short-term mood trends",
	RunE: func(cmd *cobra.Command, args []string) error {
		moods, err := repo.ListMoods(0)
		if err != nil {
			return fmt.Errorf("failed to list moods: %w", err)
		}

		predictions := engine.Predict(moods)
		if len(predictions) == 0 {
			fmt.Printf("No predictions yet. Predictions need at least %d mood entries with a clear pattern.\n",
				insights.MinEntriesForPrediction)
			return nil
		}

		faint := color.New(color.Faint)
		for _, p := range predictions {
			kind := color.New(color.FgGreen)
			if p.Kind == insights.PredictionRisk {
				kind = color.New(color.FgRed)
			}
			fmt.Printf("%s %s %s\n",
				kind.Sprint(strings.ToUpper(string(p.Kind))),
				faint.Sprint(p.Timeframe),
				faint.Sprintf("(%d%% confidence)", p.Confidence))
			fmt.Printf("  %s\n", p.Description)
			if len(p.Factors) > 0 {
				fmt.Printf("  %s\n", faint.Sprintf("factors: %s", insights.FormatFactors(p.Factors)))
			}
			fmt.Printf("  → %s\n", p.Recommendation)
		}
		return nil
	},
}

var warningsCmd = &cobra.Command{
	Use:   "warnings",
	Short: "Check recent entries for warning signs",
	RunE: func(cmd *cobra.Command, args []string) error {
		moods, err := repo.ListMoods(0)
		if err != nil {
			return fmt.Errorf("failed to list moods: %w", err)
		}

		warnings := engine.EarlyWarnings(moods)
		if len(warnings) == 0 {
			color.Green("✓ No warning signs in your recent check-ins.")
			return nil
		}

		for _, w := range warnings {
			severityColor(w.Severity).Printf("! %s\n", w.Title)
			fmt.Printf("  %s\n", w.Message)
			fmt.Printf("  → %s\n", w.Recommendation)
		}
		return nil
	},
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute the wellness score",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := storage.LoadEntries(cmd.Context(), repo)
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}

		score := engine.Wellness(entries)
		faint := color.New(color.Faint)

		color.Cyan("Wellness score: %d/100", score.Overall)
		fmt.Printf("  %s\n", faint.Sprintf("%s engagement, %s streak", score.Engagement, dayCount(score.Streak)))
		fmt.Println()
		for _, m := range score.Metrics {
			fmt.Printf("  %s %s %s %s\n",
				padRight(m.Name, 22),
				padRight(fmt.Sprintf("%.0f", m.Value), 4),
				trendArrow(m.Trend),
				faint.Sprintf("(weight %.0f%%)", m.Weight*100))
		}

		if len(score.Strengths) > 0 {
			fmt.Println()
			color.Green("Strengths")
			for _, s := range score.Strengths {
				fmt.Printf("  • %s\n", s)
			}
		}
		if len(score.Improvements) > 0 {
			fmt.Println()
			color.Yellow("Suggestions")
			for _, s := range score.Improvements {
				fmt.Printf("  • %s\n", s)
			}
		}

		if scoreSave {
			snap := score.Snapshot(engine.Now())
			if err := repo.SaveWellnessSnapshot(&snap); err != nil {
				return fmt.Errorf("failed to save wellness snapshot: %w", err)
			}
			fmt.Println()
			color.Green("✓ Saved score for %s", snap.Date)
		}
		return nil
	},
}

func trendArrow(t insights.Trend) string {
	switch t {
	case insights.TrendUp:
		return color.GreenString("↑")
	case insights.TrendDown:
		return color.RedString("↓")
	default:
		return color.New(color.Faint).Sprint("→")
	}
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show saved wellness scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		history, err := repo.ListWellnessHistory(historyLimit)
		if err != nil {
			return fmt.Errorf("failed to list wellness history: %w", err)
		}

		if len(history) == 0 {
			fmt.Println("No saved scores. Run 'mood insights score --save' to record one.")
			return nil
		}

		for _, h := range history {
			bar := strings.Repeat("█", h.Overall/5)
			fmt.Printf("%s %s %s\n", h.Date, padRight(fmt.Sprintf("%d", h.Overall), 4), bar)
		}
		return nil
	},
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func dayCount(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

func init() {
	correlateCmd.Flags().StringVar(&correlateFactor, "factor", "", "compare entries with and without this factor")
	triggersCmd.Flags().DurationVar(&triggersDelay, "delay", 0, "pause before showing results (e.g. 2s)")
	scoreCmd.Flags().BoolVar(&scoreSave, "save", false, "save the score as today's snapshot")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "max number of days (default all)")

	insightsCmd.AddCommand(streakCmd)
	insightsCmd.AddCommand(correlateCmd)
	insightsCmd.AddCommand(triggersCmd)
	insightsCmd.AddCommand(predictCmd)
	insightsCmd.AddCommand(warningsCmd)
	insightsCmd.AddCommand(scoreCmd)
	insightsCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(insightsCmd)
}
