// ABOUTME: Snapshot loader that reads every collection the analyzers need.
// ABOUTME: Loads moods, journals and sessions concurrently with errgroup.
package storage

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/harperreed/mood/internal/models"
)

// LoadEntries reads all moods, journals and mindfulness sessions from repo
// into one newest-first snapshot.
func LoadEntries(ctx context.Context, repo Repository) (models.Entries, error) {
	var entries models.Entries
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		moods, err := repo.ListMoods(0)
		if err != nil {
			return fmt.Errorf("load moods: %w", err)
		}
		entries.Moods = moods
		return ctx.Err()
	})
	g.Go(func() error {
		journals, err := repo.ListJournals(nil, 0)
		if err != nil {
			return fmt.Errorf("load journals: %w", err)
		}
		entries.Journals = journals
		return ctx.Err()
	})
	g.Go(func() error {
		sessions, err := repo.ListSessions(0)
		if err != nil {
			return fmt.Errorf("load sessions: %w", err)
		}
		entries.Sessions = sessions
		return ctx.Err()
	})

	if err := g.Wait(); err != nil {
		return models.Entries{}, err
	}
	return entries, nil
}
