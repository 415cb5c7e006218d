// ABOUTME: Calendar-day helpers shared by every analyzer.
// ABOUTME: Day keys, rolling windows, bucketing and newest-first normalization.
package insights

import (
	"sort"
	"time"

	"github.com/harperreed/mood/internal/models"
)

const dayLayout = "2006-01-02"

// DayKey formats t as a calendar day in loc.
func DayKey(t time.Time, loc *time.Location) string {
	return models.DayOf(t, loc)
}

// DaysAgo returns the calendar day k days before now, in now's location.
func DaysAgo(now time.Time, k int) string {
	y, m, d := now.Date()
	// Noon keeps the arithmetic clear of DST transitions.
	return time.Date(y, m, d-k, 12, 0, 0, 0, now.Location()).Format(dayLayout)
}

// LastNDays returns n calendar days ending today, oldest-first.
func LastNDays(now time.Time, n int) []string {
	if n <= 0 {
		return nil
	}
	days := make([]string, n)
	for i := 0; i < n; i++ {
		days[i] = DaysAgo(now, n-1-i)
	}
	return days
}

// DaySet builds a membership set from day strings.
func DaySet(days []string) map[string]bool {
	set := make(map[string]bool, len(days))
	for _, d := range days {
		set[d] = true
	}
	return set
}

// BucketByDate groups items by the day dayOf assigns them, keeping every match.
func BucketByDate[T any](items []T, dayOf func(T) string) map[string][]T {
	buckets := make(map[string][]T)
	for _, item := range items {
		d := dayOf(item)
		buckets[d] = append(buckets[d], item)
	}
	return buckets
}

// CountInWindow counts items whose day falls in window.
func CountInWindow[T any](items []T, dayOf func(T) string, window []string) int {
	set := DaySet(window)
	n := 0
	for _, item := range items {
		if set[dayOf(item)] {
			n++
		}
	}
	return n
}

// Weekday returns the day of week of t in loc.
func Weekday(t time.Time, loc *time.Location) time.Weekday {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Weekday()
}

// MoodDays returns the day of every mood entry.
func MoodDays(moods []*models.MoodEntry, loc *time.Location) []string {
	days := make([]string, 0, len(moods))
	for _, m := range moods {
		if m != nil {
			days = append(days, m.Day(loc))
		}
	}
	return days
}

// ActivityDays returns the day of every mood, journal and mindfulness entry.
func ActivityDays(entries models.Entries, loc *time.Location) []string {
	days := MoodDays(entries.Moods, loc)
	for _, j := range entries.Journals {
		if j != nil {
			days = append(days, j.Day(loc))
		}
	}
	for _, s := range entries.Sessions {
		if s != nil {
			days = append(days, s.Day(loc))
		}
	}
	return days
}

// newestFirst copies moods, drops nils and sorts by RecordedAt descending.
func newestFirst(moods []*models.MoodEntry) []*models.MoodEntry {
	out := make([]*models.MoodEntry, 0, len(moods))
	for _, m := range moods {
		if m != nil {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})
	return out
}

// validMoods returns newest-first moods whose intensity is in range.
func validMoods(moods []*models.MoodEntry) []*models.MoodEntry {
	sorted := newestFirst(moods)
	out := sorted[:0]
	for _, m := range sorted {
		if m.HasValidIntensity() {
			out = append(out, m)
		}
	}
	return out
}

func meanIntensity(moods []*models.MoodEntry) float64 {
	if len(moods) == 0 {
		return 0
	}
	sum := 0
	for _, m := range moods {
		sum += m.Intensity
	}
	return float64(sum) / float64(len(moods))
}
