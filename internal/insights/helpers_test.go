// ABOUTME: Shared fixtures for engine tests.
// ABOUTME: Builds mood, journal and session entries relative to a fixed clock.
package insights

import (
	"time"

	"github.com/harperreed/mood/internal/models"
)

// fixedNow is mid-afternoon on Wednesday 2024-01-10 UTC.
var fixedNow = time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)

func daysBefore(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days)
}

func mood(label models.MoodLabel, intensity int, at time.Time, factors ...string) *models.MoodEntry {
	return models.NewMoodEntry(label, intensity).WithRecordedAt(at).WithFactors(factors...)
}

func moodDaysAgo(intensity int, days int, factors ...string) *models.MoodEntry {
	return mood(models.MoodNeutral, intensity, daysBefore(fixedNow, days), factors...)
}

func journal(content string, at time.Time) *models.JournalEntry {
	return models.NewJournalEntry(models.JournalReflection, content).WithRecordedAt(at)
}

func session(at time.Time) *models.MindfulnessSession {
	return models.NewMindfulnessSession(models.PracticeBreathing, 5).WithRecordedAt(at)
}

// intensitySeries builds one mood per day, index 0 today, newest-first.
func intensitySeries(intensities ...int) []*models.MoodEntry {
	out := make([]*models.MoodEntry, len(intensities))
	for i, v := range intensities {
		out[i] = moodDaysAgo(v, i)
	}
	return out
}
