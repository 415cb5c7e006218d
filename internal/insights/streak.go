// ABOUTME: Streak calculator over distinct calendar days.
// ABOUTME: Current streak scans back from today; longest streak scans sorted days.
package insights

import (
	"sort"
	"time"
)

// StreakSummary describes consecutive-day activity.
type StreakSummary struct {
	Current int    `json:"current"`
	Longest int    `json:"longest"`
	LastDay string `json:"last_day,omitempty"`
}

// CurrentStreak counts consecutive days ending today that appear in days.
// It is zero when today is absent. Duplicate days count once.
func CurrentStreak(days []string, now time.Time) int {
	set := DaySet(days)
	streak := 0
	for set[DaysAgo(now, streak)] {
		streak++
	}
	return streak
}

// LongestStreak returns the longest run of consecutive days anywhere in days.
func LongestStreak(days []string) int {
	sorted := distinctSorted(days)
	if len(sorted) == 0 {
		return 0
	}

	longest, run := 1, 1
	prev, _ := time.Parse(dayLayout, sorted[0])
	for _, d := range sorted[1:] {
		t, err := time.Parse(dayLayout, d)
		if err != nil {
			continue
		}
		if t.Sub(prev) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = t
	}
	return longest
}

// Streaks computes the current and longest streak together.
func Streaks(days []string, now time.Time) StreakSummary {
	sorted := distinctSorted(days)
	s := StreakSummary{
		Current: CurrentStreak(sorted, now),
		Longest: LongestStreak(sorted),
	}
	if len(sorted) > 0 {
		s.LastDay = sorted[len(sorted)-1]
	}
	return s
}

func distinctSorted(days []string) []string {
	set := DaySet(days)
	out := make([]string, 0, len(set))
	for d := range set {
		if d != "" {
			out = append(out, d)
		}
	}
	sort.Strings(out)
	return out
}
