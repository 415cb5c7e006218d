// ABOUTME: WellnessSnapshot model for the day-keyed wellness score history.
// ABOUTME: At most one snapshot per calendar day is kept.
package models

import "time"

// WellnessHistoryLimit caps how many days of history are retained.
const WellnessHistoryLimit = 30

// WellnessSnapshot is a stored wellness score for one calendar day.
type WellnessSnapshot struct {
	Date       string             `json:"date" yaml:"date"`
	Overall    int                `json:"overall" yaml:"overall"`
	Metrics    map[string]float64 `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	RecordedAt time.Time          `json:"recorded_at" yaml:"recorded_at"`
}

// Entries is a point-in-time snapshot of everything the analyzers read.
// Each slice is newest-first.
type Entries struct {
	Moods    []*MoodEntry
	Journals []*JournalEntry
	Sessions []*MindfulnessSession
}
