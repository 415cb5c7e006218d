// ABOUTME: Wellness history persistence for SQLite storage.
// ABOUTME: Upserts one snapshot per day and prunes beyond the retention limit.
package storage

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/harperreed/mood/internal/models"
)

// SaveWellnessSnapshot stores s, replacing any snapshot for the same day,
// and keeps only the most recent WellnessHistoryLimit days.
func (d *DB) SaveWellnessSnapshot(s *models.WellnessSnapshot) error {
	metrics, err := json.Marshal(s.Metrics)
	if err != nil {
		return fmt.Errorf("save wellness snapshot: encode metrics: %w", err)
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("save wellness snapshot: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`
		INSERT INTO wellness_history (day, overall, metrics, recorded_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET
			overall = excluded.overall,
			metrics = excluded.metrics,
			recorded_at = excluded.recorded_at
	`, s.Date, s.Overall, string(metrics), formatTime(s.RecordedAt))
	if err != nil {
		return fmt.Errorf("save wellness snapshot: %w", err)
	}

	_, err = tx.Exec(`
		DELETE FROM wellness_history
		WHERE day NOT IN (SELECT day FROM wellness_history ORDER BY day DESC LIMIT ?)
	`, models.WellnessHistoryLimit)
	if err != nil {
		return fmt.Errorf("prune wellness history: %w", err)
	}

	return tx.Commit()
}

// ListWellnessHistory returns stored snapshots, most recent day first.
func (d *DB) ListWellnessHistory(limit int) ([]models.WellnessSnapshot, error) {
	query, args := limitClause(`SELECT day, overall, metrics, recorded_at FROM wellness_history ORDER BY day DESC`, nil, limit)

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list wellness history: %w", err)
	}
	defer rows.Close()

	var history []models.WellnessSnapshot
	for rows.Next() {
		var s models.WellnessSnapshot
		var metrics, recordedAt string
		if err := rows.Scan(&s.Date, &s.Overall, &metrics, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan wellness snapshot: %w", err)
		}
		if err := json.Unmarshal([]byte(metrics), &s.Metrics); err != nil {
			return nil, fmt.Errorf("decode wellness metrics for %s: %w", s.Date, err)
		}
		s.RecordedAt = parseTime(recordedAt)
		history = append(history, s)
	}
	return history, rows.Err()
}

// sortHistory orders snapshots newest day first.
func sortHistory(history []models.WellnessSnapshot) {
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date > history[j].Date
	})
}
