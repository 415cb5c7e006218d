// ABOUTME: Mood entry CRUD operations for SQLite storage.
// ABOUTME: Factors are stored as a JSON array column; weather is flattened into columns.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/harperreed/mood/internal/models"
)

const moodColumns = `id, mood, intensity, factors, note, weather_condition, temperature_c,
	humidity, sleep_hours, exercise, recorded_at, created_at`

// CreateMood stores a new mood entry in the database.
func (d *DB) CreateMood(m *models.MoodEntry) error {
	factors := m.Factors
	if factors == nil {
		factors = []string{}
	}
	factorsJSON, err := json.Marshal(factors)
	if err != nil {
		return fmt.Errorf("create mood: encode factors: %w", err)
	}

	var condition sql.NullString
	var temperature sql.NullFloat64
	var humidity sql.NullInt64
	if m.Weather != nil {
		condition = sql.NullString{String: m.Weather.Condition, Valid: true}
		if m.Weather.TemperatureC != nil {
			temperature = sql.NullFloat64{Float64: *m.Weather.TemperatureC, Valid: true}
		}
		if m.Weather.Humidity != nil {
			humidity = sql.NullInt64{Int64: int64(*m.Weather.Humidity), Valid: true}
		}
	}

	var exercise sql.NullBool
	if m.Exercise != nil {
		exercise = sql.NullBool{Bool: *m.Exercise, Valid: true}
	}

	query := `INSERT INTO moods (` + moodColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = d.db.Exec(query,
		m.ID.String(),
		string(m.Mood),
		m.Intensity,
		string(factorsJSON),
		m.Note,
		condition,
		temperature,
		humidity,
		m.SleepHours,
		exercise,
		formatTime(m.RecordedAt),
		formatTime(m.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create mood: %w", err)
	}
	return nil
}

// GetMood retrieves a mood entry by ID or ID prefix.
func (d *DB) GetMood(idOrPrefix string) (*models.MoodEntry, error) {
	id, err := d.resolveID(tableMoods, idOrPrefix)
	if err != nil {
		return nil, err
	}

	m, err := scanMood(d.db.QueryRow(`SELECT `+moodColumns+` FROM moods WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("not found: %s", idOrPrefix)
	}
	return m, err
}

// ListMoods retrieves mood entries, most recent first.
func (d *DB) ListMoods(limit int) ([]*models.MoodEntry, error) {
	query, args := limitClause(`SELECT `+moodColumns+` FROM moods ORDER BY recorded_at DESC`, nil, limit)

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list moods: %w", err)
	}
	defer rows.Close()

	var moods []*models.MoodEntry
	for rows.Next() {
		m, err := scanMood(rows)
		if err != nil {
			return nil, err
		}
		moods = append(moods, m)
	}
	return moods, rows.Err()
}

// DeleteMood removes a mood entry by ID or prefix.
func (d *DB) DeleteMood(idOrPrefix string) error {
	if err := d.deleteByID(tableMoods, idOrPrefix); err != nil {
		return fmt.Errorf("delete mood: %w", err)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMood(row rowScanner) (*models.MoodEntry, error) {
	var m models.MoodEntry
	var idStr, mood, factorsJSON, recordedAt, createdAt string
	var note, condition sql.NullString
	var temperature, sleep sql.NullFloat64
	var humidity sql.NullInt64
	var exercise sql.NullBool

	err := row.Scan(&idStr, &mood, &m.Intensity, &factorsJSON, &note, &condition, &temperature,
		&humidity, &sleep, &exercise, &recordedAt, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan mood: %w", err)
	}

	m.ID, _ = uuid.Parse(idStr)
	m.Mood = models.MoodLabel(mood)
	m.RecordedAt = parseTime(recordedAt)
	m.CreatedAt = parseTime(createdAt)

	if factorsJSON != "" {
		if err := json.Unmarshal([]byte(factorsJSON), &m.Factors); err != nil {
			return nil, fmt.Errorf("decode factors for %s: %w", idStr, err)
		}
		if len(m.Factors) == 0 {
			m.Factors = nil
		}
	}
	if note.Valid {
		m.Note = &note.String
	}
	if condition.Valid {
		w := &models.Weather{Condition: condition.String}
		if temperature.Valid {
			w.TemperatureC = &temperature.Float64
		}
		if humidity.Valid {
			h := int(humidity.Int64)
			w.Humidity = &h
		}
		m.Weather = w
	}
	if sleep.Valid {
		m.SleepHours = &sleep.Float64
	}
	if exercise.Valid {
		m.Exercise = &exercise.Bool
	}

	return &m, nil
}
