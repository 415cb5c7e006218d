// ABOUTME: Mindfulness session CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for mindfulness sessions.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/harperreed/mood/internal/models"
)

const sessionColumns = `id, practice, duration_minutes, notes, recorded_at, created_at`

// CreateSession stores a new mindfulness session.
func (d *DB) CreateSession(s *models.MindfulnessSession) error {
	query := `INSERT INTO mindfulness_sessions (` + sessionColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := d.db.Exec(query,
		s.ID.String(),
		s.Practice,
		s.DurationMinutes,
		s.Notes,
		formatTime(s.RecordedAt),
		formatTime(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// ListSessions retrieves mindfulness sessions, most recent first.
func (d *DB) ListSessions(limit int) ([]*models.MindfulnessSession, error) {
	query, args := limitClause(`SELECT `+sessionColumns+` FROM mindfulness_sessions ORDER BY recorded_at DESC`, nil, limit)

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.MindfulnessSession
	for rows.Next() {
		var s models.MindfulnessSession
		var idStr, recordedAt, createdAt string
		var notes sql.NullString

		if err := rows.Scan(&idStr, &s.Practice, &s.DurationMinutes, &notes, &recordedAt, &createdAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}

		s.ID, _ = uuid.Parse(idStr)
		s.RecordedAt = parseTime(recordedAt)
		s.CreatedAt = parseTime(createdAt)
		if notes.Valid {
			s.Notes = &notes.String
		}
		sessions = append(sessions, &s)
	}
	return sessions, rows.Err()
}

// DeleteSession removes a mindfulness session by ID or prefix.
func (d *DB) DeleteSession(idOrPrefix string) error {
	if err := d.deleteByID(tableSessions, idOrPrefix); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
