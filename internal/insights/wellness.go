// ABOUTME: Wellness score composer combining five weighted sub-metrics.
// ABOUTME: Produces a 0-100 score with trends, suggestions and a day-keyed history.
package insights

import (
	"math"
	"sort"
	"time"

	"github.com/harperreed/mood/internal/models"
)

// Metric names.
const (
	MetricMoodStability = "Mood Stability"
	MetricConsistency   = "Consistency"
	MetricEngagement    = "Engagement"
	MetricMindfulness   = "Mindfulness Practice"
	MetricReflection    = "Self-Reflection"
)

// Metric weights; they sum to 1.
const (
	WeightMoodStability = 0.30
	WeightConsistency   = 0.25
	WeightEngagement    = 0.20
	WeightMindfulness   = 0.15
	WeightReflection    = 0.10
)

// Scoring constants.
const (
	NeutralMetricValue   = 50.0
	StabilityWindow      = 7
	WeekDays             = 7
	PointsPerSession     = 20
	PointsPerJournal     = 25
	PointsPerFeature     = 5
	MaxFeatureBonus      = 20
	ImprovementThreshold = 70
	StrengthThreshold    = 80
	MaxImprovements      = 3
)

// Engagement level base scores.
const (
	EngagementLowBase    = 40
	EngagementMediumBase = 70
	EngagementHighBase   = 90
)

// Trend is the direction a metric is moving.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// EngagementLevel classifies how actively the app is used.
type EngagementLevel string

const (
	EngagementLow    EngagementLevel = "low"
	EngagementMedium EngagementLevel = "medium"
	EngagementHigh   EngagementLevel = "high"
)

// WellnessMetric is one scored component of the wellness score.
type WellnessMetric struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Weight     float64 `json:"weight"`
	Trend      Trend   `json:"trend"`
	Suggestion string  `json:"suggestion"`
}

// WellnessScore is the weighted composite of all metrics.
type WellnessScore struct {
	Date         string           `json:"date"`
	Overall      int              `json:"overall"`
	Metrics      []WellnessMetric `json:"metrics"`
	Improvements []string         `json:"improvements"`
	Strengths    []string         `json:"strengths"`
	Engagement   EngagementLevel  `json:"engagement"`
	Streak       int              `json:"streak"`
}

// ComposeWellness scores the entries as of now.
func ComposeWellness(entries models.Entries, now time.Time) WellnessScore {
	loc := now.Location()
	window := LastNDays(now, 2*WeekDays)
	thisWeek, lastWeek := window[WeekDays:], window[:WeekDays]

	level, streak := classifyEngagement(entries, now)

	metrics := []WellnessMetric{
		moodStability(entries.Moods),
		consistency(entries.Moods, loc, thisWeek, lastWeek),
		engagement(entries, loc, level, thisWeek, lastWeek),
		mindfulness(entries.Sessions, loc, thisWeek, lastWeek),
		reflection(entries.Journals, loc, thisWeek, lastWeek),
	}

	total := 0.0
	for _, m := range metrics {
		total += m.Value * m.Weight
	}

	return WellnessScore{
		Date:         DayKey(now, loc),
		Overall:      int(clamp(math.Round(total), 0, 100)),
		Metrics:      metrics,
		Improvements: improvements(metrics),
		Strengths:    strengths(metrics),
		Engagement:   level,
		Streak:       streak,
	}
}

func moodStability(moods []*models.MoodEntry) WellnessMetric {
	m := WellnessMetric{
		Name:       MetricMoodStability,
		Weight:     WeightMoodStability,
		Value:      NeutralMetricValue,
		Trend:      TrendStable,
		Suggestion: "Try a daily check-in routine and notice what lifts your mood.",
	}

	var scores []float64
	for _, e := range newestFirst(moods) {
		if v, ok := e.Mood.Score(); ok {
			scores = append(scores, v)
		}
		if len(scores) == StabilityWindow {
			break
		}
	}
	if len(scores) == 0 {
		return m
	}

	m.Value = mean(scores)
	half := len(scores) / 2
	if half > 0 {
		// scores[0] is the newest entry.
		m.Trend = compare(mean(scores[:half]), mean(scores[half:]))
	}
	return m
}

func consistency(moods []*models.MoodEntry, loc *time.Location, thisWeek, lastWeek []string) WellnessMetric {
	m := WellnessMetric{
		Name:       MetricConsistency,
		Weight:     WeightConsistency,
		Value:      NeutralMetricValue,
		Trend:      TrendStable,
		Suggestion: "Log your mood at the same time each day to build a habit.",
	}
	if len(moods) == 0 {
		return m
	}

	days := DaySet(MoodDays(moods, loc))
	current := countDays(days, thisWeek)
	previous := countDays(days, lastWeek)

	m.Value = float64(current) / WeekDays * 100
	m.Trend = compare(float64(current), float64(previous))
	return m
}

// classifyEngagement rates engagement from the all-activity streak and the
// number of active days this week.
func classifyEngagement(entries models.Entries, now time.Time) (EngagementLevel, int) {
	days := ActivityDays(entries, now.Location())
	streak := CurrentStreak(days, now)
	active := countDays(DaySet(days), LastNDays(now, WeekDays))

	switch {
	case streak >= 5 || active >= 6:
		return EngagementHigh, streak
	case streak >= 2 || active >= 3:
		return EngagementMedium, streak
	default:
		return EngagementLow, streak
	}
}

func engagement(entries models.Entries, loc *time.Location, level EngagementLevel, thisWeek, lastWeek []string) WellnessMetric {
	base := EngagementLowBase
	switch level {
	case EngagementHigh:
		base = EngagementHighBase
	case EngagementMedium:
		base = EngagementMediumBase
	}

	bonus := min(MaxFeatureBonus, featuresUsed(entries, loc, thisWeek)*PointsPerFeature)

	days := DaySet(ActivityDays(entries, loc))
	return WellnessMetric{
		Name:       MetricEngagement,
		Weight:     WeightEngagement,
		Value:      clamp(float64(base+bonus), 0, 100),
		Trend:      compare(float64(countDays(days, thisWeek)), float64(countDays(days, lastWeek))),
		Suggestion: "Explore journaling, gratitude notes or a short breathing session.",
	}
}

// featuresUsed counts distinct features (mood, journal, gratitude,
// mindfulness) used during window.
func featuresUsed(entries models.Entries, loc *time.Location, window []string) int {
	set := DaySet(window)
	used := make(map[string]bool)
	for _, m := range entries.Moods {
		if m != nil && set[m.Day(loc)] {
			used["mood"] = true
			break
		}
	}
	for _, j := range entries.Journals {
		if j != nil && set[j.Day(loc)] {
			used[string(j.Kind)] = true
		}
	}
	for _, s := range entries.Sessions {
		if s != nil && set[s.Day(loc)] {
			used["mindfulness"] = true
			break
		}
	}
	return len(used)
}

func mindfulness(sessions []*models.MindfulnessSession, loc *time.Location, thisWeek, lastWeek []string) WellnessMetric {
	var valid []*models.MindfulnessSession
	for _, s := range sessions {
		if s != nil {
			valid = append(valid, s)
		}
	}
	dayOf := func(s *models.MindfulnessSession) string { return s.Day(loc) }
	current := CountInWindow(valid, dayOf, thisWeek)
	previous := CountInWindow(valid, dayOf, lastWeek)

	return WellnessMetric{
		Name:       MetricMindfulness,
		Weight:     WeightMindfulness,
		Value:      math.Min(100, float64(current*PointsPerSession)),
		Trend:      compare(float64(current), float64(previous)),
		Suggestion: "Add a five-minute breathing or meditation session to your day.",
	}
}

func reflection(journals []*models.JournalEntry, loc *time.Location, thisWeek, lastWeek []string) WellnessMetric {
	var valid []*models.JournalEntry
	for _, j := range journals {
		if j != nil && j.Kind == models.JournalReflection {
			valid = append(valid, j)
		}
	}
	dayOf := func(j *models.JournalEntry) string { return j.Day(loc) }
	current := CountInWindow(valid, dayOf, thisWeek)
	previous := CountInWindow(valid, dayOf, lastWeek)

	return WellnessMetric{
		Name:       MetricReflection,
		Weight:     WeightReflection,
		Value:      math.Min(100, float64(current*PointsPerJournal)),
		Trend:      compare(float64(current), float64(previous)),
		Suggestion: "Write a few lines in your journal a couple of times a week.",
	}
}

func improvements(metrics []WellnessMetric) []string {
	var low []WellnessMetric
	for _, m := range metrics {
		if m.Value < ImprovementThreshold {
			low = append(low, m)
		}
	}
	sort.SliceStable(low, func(i, j int) bool {
		return low[i].Value < low[j].Value
	})
	if len(low) > MaxImprovements {
		low = low[:MaxImprovements]
	}

	out := make([]string, 0, len(low))
	for _, m := range low {
		out = append(out, m.Suggestion)
	}
	return out
}

func strengths(metrics []WellnessMetric) []string {
	out := []string{}
	for _, m := range metrics {
		if m.Value >= StrengthThreshold {
			out = append(out, "Strong "+m.Name)
		}
	}
	return out
}

// Snapshot converts a score into its history record.
func (s WellnessScore) Snapshot(recordedAt time.Time) models.WellnessSnapshot {
	metrics := make(map[string]float64, len(s.Metrics))
	for _, m := range s.Metrics {
		metrics[m.Name] = m.Value
	}
	return models.WellnessSnapshot{
		Date:       s.Date,
		Overall:    s.Overall,
		Metrics:    metrics,
		RecordedAt: recordedAt,
	}
}

// AppendHistory adds snap to history, replacing any snapshot for the same day.
// The result is newest-first and holds at most WellnessHistoryLimit days.
func AppendHistory(history []models.WellnessSnapshot, snap models.WellnessSnapshot) []models.WellnessSnapshot {
	out := make([]models.WellnessSnapshot, 0, len(history)+1)
	for _, h := range history {
		if h.Date != snap.Date {
			out = append(out, h)
		}
	}
	out = append(out, snap)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	if len(out) > models.WellnessHistoryLimit {
		out = out[:models.WellnessHistoryLimit]
	}
	return out
}

func countDays(set map[string]bool, window []string) int {
	n := 0
	for _, d := range window {
		if set[d] {
			n++
		}
	}
	return n
}

func compare(current, previous float64) Trend {
	switch {
	case current > previous:
		return TrendUp
	case current < previous:
		return TrendDown
	default:
		return TrendStable
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
