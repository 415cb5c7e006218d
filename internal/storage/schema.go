// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for moods, journals, mindfulness sessions and wellness history.
package storage

// Table names.
const (
	tableMoods    = "moods"
	tableJournals = "journals"
	tableSessions = "mindfulness_sessions"
	tableHistory  = "wellness_history"
)

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS moods (
		id TEXT PRIMARY KEY,
		mood TEXT NOT NULL,
		intensity INTEGER NOT NULL,
		factors TEXT NOT NULL DEFAULT '[]',
		note TEXT,
		weather_condition TEXT,
		temperature_c REAL,
		humidity INTEGER,
		sleep_hours REAL,
		exercise INTEGER,
		recorded_at TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS journals (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		title TEXT,
		content TEXT NOT NULL,
		recorded_at TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS mindfulness_sessions (
		id TEXT PRIMARY KEY,
		practice TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL,
		notes TEXT,
		recorded_at TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS wellness_history (
		day TEXT PRIMARY KEY,
		overall INTEGER NOT NULL,
		metrics TEXT NOT NULL DEFAULT '{}',
		recorded_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_moods_recorded ON moods(recorded_at DESC);
	CREATE INDEX IF NOT EXISTS idx_journals_recorded ON journals(recorded_at DESC);
	CREATE INDEX IF NOT EXISTS idx_journals_kind_recorded ON journals(kind, recorded_at DESC);
	CREATE INDEX IF NOT EXISTS idx_sessions_recorded ON mindfulness_sessions(recorded_at DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
