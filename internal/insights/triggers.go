// ABOUTME: Trigger pattern recognizer joining journal keywords with same-day moods.
// ABOUTME: Also mines factor tags from low-intensity mood entries.
package insights

import (
	"sort"
	"strings"
	"time"

	"github.com/harperreed/mood/internal/models"
)

// Trigger recognition thresholds.
const (
	MinMoodsForTriggers    = 5
	MinJournalsForTriggers = 3
	MinTriggerFrequency    = 2
	LowMoodIntensity       = 4
	RecentWindow           = 30 * 24 * time.Hour
	DefaultMoodImpact      = 5.0
	MaxAssociatedFactors   = 3
)

// Severity ranks how concerning a trigger pattern is.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Rank orders severities so that high sorts first.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// TriggerPattern is a recurring category or factor tied to low mood.
type TriggerPattern struct {
	Trigger           string   `json:"trigger"`
	Frequency         int      `json:"frequency"`
	RecentOccurrences int      `json:"recent_occurrences"`
	AverageMoodImpact float64  `json:"average_mood_impact"`
	AssociatedFactors []string `json:"associated_factors"`
	Severity          Severity `json:"severity"`
}

type triggerTally struct {
	frequency int
	recent    int
	impacts   []int
	factors   map[string]int
}

func (t *triggerTally) addFactors(factors []string, exclude string) {
	for _, f := range normalizedFactors(factors) {
		if strings.EqualFold(f, exclude) {
			continue
		}
		t.factors[f]++
	}
}

// RecognizeTriggers finds recurring trigger patterns across journal text and
// low-intensity mood factors. It returns ErrInsufficientData unless there
// are at least five mood entries or three journal entries.
func RecognizeTriggers(journals []*models.JournalEntry, moods []*models.MoodEntry, lexicon Lexicon, now time.Time) ([]TriggerPattern, error) {
	journals = nonNilJournals(journals)
	sorted := newestFirst(moods)
	if len(sorted) < MinMoodsForTriggers && len(journals) < MinJournalsForTriggers {
		return nil, ErrInsufficientData
	}

	loc := now.Location()
	valid := make([]*models.MoodEntry, 0, len(sorted))
	for _, m := range sorted {
		if m.HasValidIntensity() {
			valid = append(valid, m)
		}
	}

	// First valid mood of each day, newest wins.
	byDay := BucketByDate(valid, func(m *models.MoodEntry) string { return m.Day(loc) })
	dayMood := make(map[string]*models.MoodEntry, len(byDay))
	for d, ms := range byDay {
		dayMood[d] = ms[0]
	}

	tallies := make(map[string]*triggerTally)
	tally := func(key string) *triggerTally {
		t, ok := tallies[key]
		if !ok {
			t = &triggerTally{factors: make(map[string]int)}
			tallies[key] = t
		}
		return t
	}
	isRecent := func(at time.Time) bool {
		return now.Sub(at) <= RecentWindow
	}

	for _, j := range journals {
		mood := dayMood[j.Day(loc)]
		for _, category := range lexicon.Match(j.Content) {
			t := tally(category)
			t.frequency++
			if isRecent(j.RecordedAt) {
				t.recent++
			}
			if mood != nil {
				t.impacts = append(t.impacts, mood.Intensity)
				t.addFactors(mood.Factors, category)
			}
		}
	}

	for _, m := range valid {
		if m.Intensity > LowMoodIntensity {
			continue
		}
		for _, f := range normalizedFactors(m.Factors) {
			t := tally(strings.ToLower(f))
			t.frequency++
			if isRecent(m.RecordedAt) {
				t.recent++
			}
			t.impacts = append(t.impacts, m.Intensity)
			t.addFactors(m.Factors, f)
		}
	}

	patterns := make([]TriggerPattern, 0, len(tallies))
	for key, t := range tallies {
		if t.frequency < MinTriggerFrequency {
			continue
		}
		impact := DefaultMoodImpact
		if len(t.impacts) > 0 {
			sum := 0
			for _, v := range t.impacts {
				sum += v
			}
			impact = float64(sum) / float64(len(t.impacts))
		}
		patterns = append(patterns, TriggerPattern{
			Trigger:           key,
			Frequency:         t.frequency,
			RecentOccurrences: t.recent,
			AverageMoodImpact: impact,
			AssociatedFactors: topKeys(t.factors, MaxAssociatedFactors),
			Severity:          classifySeverity(t.frequency, impact),
		})
	}

	sort.Slice(patterns, func(i, j int) bool {
		a, b := patterns[i], patterns[j]
		if a.Severity.Rank() != b.Severity.Rank() {
			return a.Severity.Rank() > b.Severity.Rank()
		}
		if a.Frequency != b.Frequency {
			return a.Frequency > b.Frequency
		}
		return a.Trigger < b.Trigger
	})

	return patterns, nil
}

func classifySeverity(frequency int, impact float64) Severity {
	switch {
	case frequency >= 5 && impact <= 3:
		return SeverityHigh
	case frequency >= 3 && impact <= 4:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// topKeys returns up to n keys by descending count, ties alphabetical.
func topKeys(counts map[string]int, n int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

func nonNilJournals(journals []*models.JournalEntry) []*models.JournalEntry {
	out := make([]*models.JournalEntry, 0, len(journals))
	for _, j := range journals {
		if j != nil {
			out = append(out, j)
		}
	}
	return out
}
