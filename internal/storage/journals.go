// ABOUTME: Journal and gratitude entry CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for journals.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/harperreed/mood/internal/models"
)

const journalColumns = `id, kind, title, content, recorded_at, created_at`

// CreateJournal stores a new journal entry.
func (d *DB) CreateJournal(j *models.JournalEntry) error {
	query := `INSERT INTO journals (` + journalColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := d.db.Exec(query,
		j.ID.String(),
		string(j.Kind),
		j.Title,
		j.Content,
		formatTime(j.RecordedAt),
		formatTime(j.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create journal: %w", err)
	}
	return nil
}

// GetJournal retrieves a journal entry by ID or ID prefix.
func (d *DB) GetJournal(idOrPrefix string) (*models.JournalEntry, error) {
	id, err := d.resolveID(tableJournals, idOrPrefix)
	if err != nil {
		return nil, err
	}

	j, err := scanJournal(d.db.QueryRow(`SELECT `+journalColumns+` FROM journals WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("not found: %s", idOrPrefix)
	}
	return j, err
}

// ListJournals retrieves journal entries with optional filtering by kind.
// Results are sorted by RecordedAt descending (most recent first).
func (d *DB) ListJournals(kind *models.JournalKind, limit int) ([]*models.JournalEntry, error) {
	var query string
	var args []interface{}

	if kind != nil {
		query = `SELECT ` + journalColumns + ` FROM journals WHERE kind = ? ORDER BY recorded_at DESC`
		args = append(args, string(*kind))
	} else {
		query = `SELECT ` + journalColumns + ` FROM journals ORDER BY recorded_at DESC`
	}
	query, args = limitClause(query, args, limit)

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list journals: %w", err)
	}
	defer rows.Close()

	var journals []*models.JournalEntry
	for rows.Next() {
		j, err := scanJournal(rows)
		if err != nil {
			return nil, err
		}
		journals = append(journals, j)
	}
	return journals, rows.Err()
}

// DeleteJournal removes a journal entry by ID or prefix.
func (d *DB) DeleteJournal(idOrPrefix string) error {
	if err := d.deleteByID(tableJournals, idOrPrefix); err != nil {
		return fmt.Errorf("delete journal: %w", err)
	}
	return nil
}

func scanJournal(row rowScanner) (*models.JournalEntry, error) {
	var j models.JournalEntry
	var idStr, kind, recordedAt, createdAt string
	var title sql.NullString

	if err := row.Scan(&idStr, &kind, &title, &j.Content, &recordedAt, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan journal: %w", err)
	}

	j.ID, _ = uuid.Parse(idStr)
	j.Kind = models.JournalKind(kind)
	j.RecordedAt = parseTime(recordedAt)
	j.CreatedAt = parseTime(createdAt)
	if title.Valid {
		j.Title = &title.String
	}
	return &j, nil
}
