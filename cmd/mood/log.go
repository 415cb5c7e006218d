// ABOUTME: CLI command for logging a mood check-in.
// ABOUTME: Accepts factors, note, weather, sleep and exercise context via flags.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/mood/internal/models"
)

var (
	logAt       string
	logNote     string
	logFactors  []string
	logWeather  string
	logTemp     float64
	logHumidity int
	logSleep    float64
	logExercise bool
)

var logCmd = &cobra.Command{
	Use:     "log <mood> <intensity>",
	Aliases: []string{"add", "a"},
	Short:   "Log a mood",
	Long: `Log how you feel right now (or at --at) with an intensity from 1 to 10.

MOODS:

  ecstatic, happy, neutral, sad, angry

CONTEXT:

  --factor, -f    Tag what is going on (repeatable): work, friends, caffeine
  --weather       Weather condition: sunny, rainy, cloudy, ...
  --temp          Temperature in Celsius
  --humidity      Relative humidity percent
  --sleep         Hours slept last night
  --exercise      Whether you exercised today (use --exercise=false for no)

Examples:
  mood log happy 8 -f friends -f sunshine
  mood log sad 3 --sleep 5 --note "Bad night"
  mood log neutral 5 --weather rainy --exercise=false
  mood log angry 6 --at "2024-12-14 18:30"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		label, err := models.ParseMoodLabel(args[0])
		if err != nil {
			return err
		}

		intensity, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid intensity: %s", args[1])
		}

		m := models.NewMoodEntry(label, intensity).WithFactors(logFactors...)

		if logAt != "" {
			t, err := parseTime(logAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", logAt)
			}
			m.WithRecordedAt(t)
		}
		if logNote != "" {
			m.WithNote(logNote)
		}

		flags := cmd.Flags()
		if logWeather != "" || flags.Changed("temp") || flags.Changed("humidity") {
			w := models.Weather{Condition: logWeather}
			if flags.Changed("temp") {
				temp := logTemp
				w.TemperatureC = &temp
			}
			if flags.Changed("humidity") {
				humidity := logHumidity
				w.Humidity = &humidity
			}
			m.WithWeather(w)
		}
		if flags.Changed("sleep") {
			m.WithSleep(logSleep)
		}
		if flags.Changed("exercise") {
			m.WithExercise(logExercise)
		}

		if err := m.Validate(); err != nil {
			return err
		}
		if err := repo.CreateMood(m); err != nil {
			return fmt.Errorf("failed to log mood: %w", err)
		}
		logger.Debug("logged mood", "id", m.ID.String()[:8], "mood", m.Mood, "intensity", m.Intensity)

		color.Green("✓ Logged %s", m.Mood)
		fmt.Printf("  %s %d/10 %s\n",
			color.New(color.Faint).Sprint(m.ID.String()[:8]),
			m.Intensity,
			strings.Join(m.Factors, ", "))

		return nil
	},
}

// parseTime accepts the timestamp formats used by --at flags in the
// configured timezone.
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	loc := time.Local
	if engine != nil {
		loc = engine.Location()
	}
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
	}
	for _, f := range formats {
		if t, err := time.ParseInLocation(f, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func init() {
	logCmd.Flags().StringVar(&logAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	logCmd.Flags().StringVarP(&logNote, "note", "n", "", "note for the entry")
	logCmd.Flags().StringSliceVarP(&logFactors, "factor", "f", nil, "factor tag (repeatable)")
	logCmd.Flags().StringVar(&logWeather, "weather", "", "weather condition")
	logCmd.Flags().Float64Var(&logTemp, "temp", 0, "temperature in Celsius")
	logCmd.Flags().IntVar(&logHumidity, "humidity", 0, "relative humidity percent")
	logCmd.Flags().Float64Var(&logSleep, "sleep", 0, "hours slept last night")
	logCmd.Flags().BoolVar(&logExercise, "exercise", false, "exercised today")
	rootCmd.AddCommand(logCmd)
}
