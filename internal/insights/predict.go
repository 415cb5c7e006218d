// ABOUTME: Mood prediction heuristic and early-warning scanner.
// ABOUTME: Threshold rules over recent vs previous windows plus a weekday pattern.
package insights

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/harperreed/mood/internal/models"
)

// Prediction thresholds.
const (
	MinEntriesForPrediction = 7
	PredictionWindow        = 7
	WarningWindow           = 5
	WeekdayConfidence       = 65
	MaintenanceConfidence   = 75
	MinWeekdaySamples       = 2
	HighMoodIntensity       = 7
)

// PredictionKind classifies a prediction.
type PredictionKind string

const (
	PredictionRisk        PredictionKind = "risk"
	PredictionImprovement PredictionKind = "improvement"
	PredictionMaintenance PredictionKind = "maintenance"
)

// Prediction is a heuristic forecast of near-term mood.
type Prediction struct {
	Kind           PredictionKind `json:"kind"`
	Confidence     int            `json:"confidence"`
	Timeframe      string         `json:"timeframe"`
	Factors        []string       `json:"contributing_factors"`
	Description    string         `json:"description"`
	Recommendation string         `json:"recommendation"`
}

// EarlyWarning flags a concerning pattern in the latest entries.
type EarlyWarning struct {
	Title          string   `json:"title"`
	Severity       Severity `json:"severity"`
	Message        string   `json:"message"`
	Recommendation string   `json:"recommendation"`
}

// Predict applies the trend and weekday heuristics to moods.
// It returns nothing when fewer than seven valid entries exist.
func Predict(moods []*models.MoodEntry, now time.Time) []Prediction {
	valid := validMoods(moods)
	if len(valid) < MinEntriesForPrediction {
		return nil
	}

	recent := valid[:PredictionWindow]
	previous := valid[PredictionWindow:min(len(valid), 2*PredictionWindow)]

	recentAvg := meanIntensity(recent)
	previousAvg := recentAvg
	if len(previous) > 0 {
		previousAvg = meanIntensity(previous)
	}
	trend := recentAvg - previousAvg

	var out []Prediction

	if trend < -1.5 && recentAvg < 5 {
		out = append(out, Prediction{
			Kind:       PredictionRisk,
			Confidence: int(math.Round(math.Min(90, math.Abs(trend)*30))),
			Timeframe:  "Next 3-5 days",
			Factors:    windowFactors(recent, func(m *models.MoodEntry) bool { return m.Intensity <= LowMoodIntensity }),
			Description: fmt.Sprintf("Your mood has dropped %.1f points compared to the week before (now averaging %.1f).",
				math.Abs(trend), recentAvg),
			Recommendation: "Plan some extra self-care, keep sleep regular, and reach out to someone you trust.",
		})
	}

	if trend > 1 && recentAvg > 6 {
		out = append(out, Prediction{
			Kind:       PredictionImprovement,
			Confidence: int(math.Round(math.Min(85, trend*25))),
			Timeframe:  "Next week",
			Factors:    windowFactors(recent, func(m *models.MoodEntry) bool { return m.Intensity >= HighMoodIntensity }),
			Description: fmt.Sprintf("Your mood is up %.1f points on the previous week (now averaging %.1f).",
				trend, recentAvg),
			Recommendation: "Keep doing what is working and note what has helped.",
		})
	}

	if math.Abs(trend) < 0.5 && recentAvg >= 5 && recentAvg <= 7 {
		out = append(out, Prediction{
			Kind:           PredictionMaintenance,
			Confidence:     MaintenanceConfidence,
			Timeframe:      "Next week",
			Description:    fmt.Sprintf("Your mood has been steady around %.1f.", recentAvg),
			Recommendation: "Your routine is keeping things stable. Small additions like a short walk can lift it further.",
		})
	}

	if p, ok := weekdayPrediction(valid, now); ok {
		out = append(out, p)
	}

	return out
}

func weekdayPrediction(valid []*models.MoodEntry, now time.Time) (Prediction, bool) {
	loc := now.Location()
	tomorrow := Weekday(now.AddDate(0, 0, 1), loc)

	overall := meanIntensity(valid)
	var sameDay []*models.MoodEntry
	for _, m := range valid {
		if Weekday(m.RecordedAt, loc) == tomorrow {
			sameDay = append(sameDay, m)
		}
	}
	if len(sameDay) < MinWeekdaySamples {
		return Prediction{}, false
	}

	dayAvg := meanIntensity(sameDay)
	diff := dayAvg - overall
	if math.Abs(diff) <= 1 {
		return Prediction{}, false
	}

	p := Prediction{
		Confidence: WeekdayConfidence,
		Timeframe:  fmt.Sprintf("Tomorrow (%s)", tomorrow),
	}
	if diff < 0 {
		p.Kind = PredictionRisk
		p.Description = fmt.Sprintf("%ss tend to be harder for you: mood averages %.1f versus %.1f overall.",
			tomorrow, dayAvg, overall)
		p.Recommendation = fmt.Sprintf("Schedule something restorative for %s.", tomorrow)
	} else {
		p.Kind = PredictionImprovement
		p.Description = fmt.Sprintf("%ss tend to be good days: mood averages %.1f versus %.1f overall.",
			tomorrow, dayAvg, overall)
		p.Recommendation = "Make the most of it with something you enjoy."
	}
	return p, true
}

// windowFactors returns the three most frequent tags among entries matching keep.
func windowFactors(window []*models.MoodEntry, keep func(*models.MoodEntry) bool) []string {
	counts := make(map[string]int)
	for _, m := range window {
		if !keep(m) {
			continue
		}
		for _, f := range normalizedFactors(m.Factors) {
			counts[f]++
		}
	}
	return topKeys(counts, MaxAssociatedFactors)
}

// EarlyWarnings scans the five most recent valid moods for persistent low
// mood and rapid decline. It needs a full window of five entries.
func EarlyWarnings(moods []*models.MoodEntry) []EarlyWarning {
	valid := validMoods(moods)
	if len(valid) < WarningWindow {
		return nil
	}
	window := valid[:WarningWindow]

	var out []EarlyWarning

	low := 0
	for _, m := range window {
		if m.Intensity <= LowMoodIntensity {
			low++
		}
	}
	if low >= 3 {
		out = append(out, EarlyWarning{
			Title:          "Persistent Low Mood",
			Severity:       SeverityHigh,
			Message:        fmt.Sprintf("%d of your last %d check-ins were low (intensity 4 or below).", low, WarningWindow),
			Recommendation: "Consider talking with a friend, counselor or healthcare provider.",
		})
	}

	// window[0] is newest, window[len-1] is oldest.
	drop := window[len(window)-1].Intensity - window[0].Intensity
	if drop >= 3 {
		out = append(out, EarlyWarning{
			Title:          "Rapid Mood Decline",
			Severity:       SeverityMedium,
			Message:        fmt.Sprintf("Your mood fell %d points across your last %d check-ins.", drop, WarningWindow),
			Recommendation: "Check in with yourself about what changed and try a grounding exercise.",
		})
	}

	return out
}

// FormatFactors joins factors for display.
func FormatFactors(factors []string) string {
	if len(factors) == 0 {
		return "-"
	}
	return strings.Join(factors, ", ")
}
