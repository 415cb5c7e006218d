// ABOUTME: Tests for the concurrent entry loader.
// ABOUTME: Checks every collection is read and context cancellation surfaces.
package storage

import (
	"context"
	"testing"
)

func TestLoadEntries(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repo Repository) {
		seedRepo(t, repo)

		entries, err := LoadEntries(context.Background(), repo)
		if err != nil {
			t.Fatalf("LoadEntries failed: %v", err)
		}
		if len(entries.Moods) != 2 || len(entries.Journals) != 2 || len(entries.Sessions) != 1 {
			t.Errorf("unexpected counts: %d moods, %d journals, %d sessions",
				len(entries.Moods), len(entries.Journals), len(entries.Sessions))
		}
		if !entries.Moods[0].RecordedAt.After(entries.Moods[1].RecordedAt) {
			t.Error("expected moods newest first")
		}
	})
}

func TestLoadEntriesCancelled(t *testing.T) {
	db := setupTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := LoadEntries(ctx, db); err == nil {
		t.Error("expected error from cancelled context")
	}
}
