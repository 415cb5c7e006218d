// ABOUTME: Correlation analyzer grouping mood intensity by a discrete dimension.
// ABOUTME: Built-in dimensions cover weather, exercise, sleep buckets and factor tags.
package insights

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/harperreed/mood/internal/models"
)

// Correlation gating thresholds.
const (
	// MinEntriesForCorrelation gates weather, sleep and exercise insights.
	MinEntriesForCorrelation = 5
	// MinFactorSamples gates each group in per-factor analysis.
	MinFactorSamples = 2
	// MinEffectSize is the best-to-worst gap needed to call a difference meaningful.
	MinEffectSize = 1.0
)

// Sleep bucket labels.
const (
	SleepUnder6 = "Under 6 hours"
	Sleep6To8   = "6-8 hours"
	SleepOver8  = "8+ hours"
)

// Exercise group labels.
const (
	Exercised  = "Exercised"
	NoExercise = "No exercise"
)

// Dimension maps a mood entry to the group keys it belongs to.
type Dimension struct {
	Name string
	// Keys returns the entry's groups; nil means the entry does not contribute.
	Keys func(m *models.MoodEntry) []string
	// Order fixes result ordering; empty means sort by average descending.
	Order []string
	// MinSamples is the number of contributing entries required for an insight.
	MinSamples int
	// MinGroupSamples is the size a group needs to be compared.
	MinGroupSamples int
}

// CorrelationResult is the mean intensity of one group.
type CorrelationResult struct {
	Dimension        string  `json:"dimension"`
	Group            string  `json:"group"`
	AverageIntensity float64 `json:"average_intensity"`
	SampleCount      int     `json:"sample_count"`
}

// CorrelationStatus is the gating outcome of an analysis.
type CorrelationStatus string

const (
	StatusInsufficient CorrelationStatus = "insufficient"
	StatusSingleGroup  CorrelationStatus = "single_group"
	StatusNoEffect     CorrelationStatus = "no_effect"
	StatusFound        CorrelationStatus = "found"
)

// CorrelationInsight is a gated, human-readable correlation finding.
type CorrelationInsight struct {
	Dimension string              `json:"dimension"`
	Status    CorrelationStatus   `json:"status"`
	Results   []CorrelationResult `json:"results"`
	Samples   int                 `json:"samples"`
	Gap       float64             `json:"gap,omitempty"`
	Message   string              `json:"message"`
}

// WeatherDimension groups by lowercased weather condition.
func WeatherDimension() Dimension {
	return Dimension{
		Name: "weather",
		Keys: func(m *models.MoodEntry) []string {
			if m.Weather == nil {
				return nil
			}
			cond := strings.ToLower(strings.TrimSpace(m.Weather.Condition))
			if cond == "" {
				return nil
			}
			return []string{cond}
		},
		MinSamples:      MinEntriesForCorrelation,
		MinGroupSamples: 1,
	}
}

// ExerciseDimension groups by the exercise flag. Entries without the flag are skipped.
func ExerciseDimension() Dimension {
	return Dimension{
		Name: "exercise",
		Keys: func(m *models.MoodEntry) []string {
			if m.Exercise == nil {
				return nil
			}
			if *m.Exercise {
				return []string{Exercised}
			}
			return []string{NoExercise}
		},
		Order:           []string{Exercised, NoExercise},
		MinSamples:      MinEntriesForCorrelation,
		MinGroupSamples: 1,
	}
}

// SleepDimension groups by hours slept.
func SleepDimension() Dimension {
	return Dimension{
		Name: "sleep",
		Keys: func(m *models.MoodEntry) []string {
			if m.SleepHours == nil {
				return nil
			}
			return []string{SleepBucket(*m.SleepHours)}
		},
		Order:           []string{SleepUnder6, Sleep6To8, SleepOver8},
		MinSamples:      MinEntriesForCorrelation,
		MinGroupSamples: 1,
	}
}

// SleepBucket classifies hours of sleep.
func SleepBucket(hours float64) string {
	switch {
	case hours < 6:
		return SleepUnder6
	case hours < 8:
		return Sleep6To8
	default:
		return SleepOver8
	}
}

// FactorDimension puts an entry in one group per lowercased factor tag.
func FactorDimension() Dimension {
	return Dimension{
		Name: "factor",
		Keys: func(m *models.MoodEntry) []string {
			keys := normalizedFactors(m.Factors)
			for i := range keys {
				keys[i] = strings.ToLower(keys[i])
			}
			return keys
		},
		MinSamples:      MinFactorSamples,
		MinGroupSamples: MinFactorSamples,
	}
}

// FactorPresence compares entries with and without one tag (case-insensitive).
func FactorPresence(tag string) Dimension {
	with := "With " + tag
	without := "Without " + tag
	return Dimension{
		Name: "factor:" + strings.ToLower(tag),
		Keys: func(m *models.MoodEntry) []string {
			for _, f := range m.Factors {
				if strings.EqualFold(strings.TrimSpace(f), tag) {
					return []string{with}
				}
			}
			return []string{without}
		},
		Order:           []string{with, without},
		MinSamples:      MinEntriesForCorrelation,
		MinGroupSamples: 1,
	}
}

// DimensionByName resolves a built-in dimension.
func DimensionByName(name string) (Dimension, error) {
	switch strings.ToLower(name) {
	case "weather":
		return WeatherDimension(), nil
	case "exercise":
		return ExerciseDimension(), nil
	case "sleep":
		return SleepDimension(), nil
	case "factor", "factors":
		return FactorDimension(), nil
	default:
		return Dimension{}, fmt.Errorf("unknown dimension %q (valid: weather, exercise, sleep, factor)", name)
	}
}

// Correlate returns the mean intensity of every observed group.
// Entries with out-of-range intensity do not contribute.
func Correlate(moods []*models.MoodEntry, dim Dimension) []CorrelationResult {
	results, _ := correlate(moods, dim)
	return results
}

func correlate(moods []*models.MoodEntry, dim Dimension) ([]CorrelationResult, int) {
	sums := make(map[string]int)
	counts := make(map[string]int)
	contributing := 0

	for _, m := range validMoods(moods) {
		keys := dim.Keys(m)
		if len(keys) == 0 {
			continue
		}
		contributing++
		for _, k := range keys {
			sums[k] += m.Intensity
			counts[k]++
		}
	}

	results := make([]CorrelationResult, 0, len(counts))
	for k, n := range counts {
		results = append(results, CorrelationResult{
			Dimension:        dim.Name,
			Group:            k,
			AverageIntensity: float64(sums[k]) / float64(n),
			SampleCount:      n,
		})
	}
	sortResults(results, dim.Order)
	return results, contributing
}

func sortResults(results []CorrelationResult, order []string) {
	if len(order) == 0 {
		sort.Slice(results, func(i, j int) bool {
			if results[i].AverageIntensity != results[j].AverageIntensity {
				return results[i].AverageIntensity > results[j].AverageIntensity
			}
			return results[i].Group < results[j].Group
		})
		return
	}

	rank := make(map[string]int, len(order))
	for i, k := range order {
		rank[k] = i
	}
	sort.Slice(results, func(i, j int) bool {
		ri, iok := rank[results[i].Group]
		rj, jok := rank[results[j].Group]
		switch {
		case iok && jok:
			return ri < rj
		case iok != jok:
			return iok
		default:
			return results[i].Group < results[j].Group
		}
	})
}

// AnalyzeCorrelation correlates moods along dim and decides whether the
// result is strong enough to report.
func AnalyzeCorrelation(moods []*models.MoodEntry, dim Dimension) CorrelationInsight {
	results, contributing := correlate(moods, dim)
	insight := CorrelationInsight{
		Dimension: dim.Name,
		Results:   results,
		Samples:   contributing,
	}

	if contributing < dim.MinSamples {
		insight.Status = StatusInsufficient
		insight.Message = fmt.Sprintf("Need at least %d entries with %s data to spot a pattern (have %d).",
			dim.MinSamples, dim.Name, contributing)
		return insight
	}

	var eligible []CorrelationResult
	for _, r := range results {
		if r.SampleCount >= dim.MinGroupSamples {
			eligible = append(eligible, r)
		}
	}

	switch len(eligible) {
	case 0:
		insight.Status = StatusInsufficient
		insight.Message = fmt.Sprintf("No %s group has %d or more entries yet.", dim.Name, dim.MinGroupSamples)
		return insight
	case 1:
		only := eligible[0]
		insight.Status = StatusSingleGroup
		insight.Message = fmt.Sprintf("Only %q recorded so far: average intensity %.1f across %d entries.",
			only.Group, only.AverageIntensity, only.SampleCount)
		return insight
	}

	best, worst := eligible[0], eligible[0]
	for _, r := range eligible[1:] {
		if r.AverageIntensity > best.AverageIntensity {
			best = r
		}
		if r.AverageIntensity < worst.AverageIntensity {
			worst = r
		}
	}
	insight.Gap = best.AverageIntensity - worst.AverageIntensity

	if insight.Gap < MinEffectSize {
		insight.Status = StatusNoEffect
		insight.Message = fmt.Sprintf("Your mood is about the same across %s groups (%.1f point spread).",
			dim.Name, insight.Gap)
		return insight
	}

	insight.Status = StatusFound
	insight.Message = fmt.Sprintf("Mood averages %.1f with %q versus %.1f with %q, a %.1f point difference.",
		best.AverageIntensity, best.Group, worst.AverageIntensity, worst.Group, math.Round(insight.Gap*10)/10)
	return insight
}

// normalizedFactors trims tags and drops blanks and case-insensitive duplicates.
func normalizedFactors(factors []string) []string {
	seen := make(map[string]bool, len(factors))
	var out []string
	for _, f := range factors {
		f = strings.TrimSpace(f)
		key := strings.ToLower(f)
		if f == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, f)
	}
	return out
}
