// ABOUTME: Data migration between mood storage backends.
// ABOUTME: Copies moods, journals, mindfulness sessions and wellness history from source to destination.

package storage

import (
	"fmt"
	"os"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Moods     int
	Journals  int
	Sessions  int
	Snapshots int
}

// MigrateData copies all data from src to dst storage.
// The destination should be empty before calling this function.
func MigrateData(src, dst Repository) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	moods, err := src.ListMoods(0)
	if err != nil {
		return nil, fmt.Errorf("list source moods: %w", err)
	}
	for _, m := range moods {
		if err := dst.CreateMood(m); err != nil {
			return nil, fmt.Errorf("create mood %s: %w", m.ID, err)
		}
		summary.Moods++
	}

	journals, err := src.ListJournals(nil, 0)
	if err != nil {
		return nil, fmt.Errorf("list source journals: %w", err)
	}
	for _, j := range journals {
		if err := dst.CreateJournal(j); err != nil {
			return nil, fmt.Errorf("create journal %s: %w", j.ID, err)
		}
		summary.Journals++
	}

	sessions, err := src.ListSessions(0)
	if err != nil {
		return nil, fmt.Errorf("list source sessions: %w", err)
	}
	for _, s := range sessions {
		if err := dst.CreateSession(s); err != nil {
			return nil, fmt.Errorf("create session %s: %w", s.ID, err)
		}
		summary.Sessions++
	}

	history, err := src.ListWellnessHistory(0)
	if err != nil {
		return nil, fmt.Errorf("list source wellness history: %w", err)
	}
	for i := range history {
		if err := dst.SaveWellnessSnapshot(&history[i]); err != nil {
			return nil, fmt.Errorf("save wellness snapshot %s: %w", history[i].Date, err)
		}
		summary.Snapshots++
	}

	return summary, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or subdirectories.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}
