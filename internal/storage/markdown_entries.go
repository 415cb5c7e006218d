// ABOUTME: Markdown store implementations for moods, journals and mindfulness sessions.
// ABOUTME: Each entry is one file with YAML frontmatter and free text as the body.

package storage

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/harperreed/mood/internal/insights"
	"github.com/harperreed/mood/internal/models"
)

// moodFrontmatter holds the YAML frontmatter of a mood file.
type moodFrontmatter struct {
	ID         string          `yaml:"id"`
	Mood       string          `yaml:"mood"`
	Intensity  int             `yaml:"intensity"`
	Factors    []string        `yaml:"factors,omitempty"`
	Weather    *models.Weather `yaml:"weather,omitempty"`
	SleepHours *float64        `yaml:"sleep_hours,omitempty"`
	Exercise   *bool           `yaml:"exercise,omitempty"`
	RecordedAt string          `yaml:"recorded_at"`
	CreatedAt  string          `yaml:"created_at"`
}

// journalFrontmatter holds the YAML frontmatter of a journal file.
type journalFrontmatter struct {
	ID         string  `yaml:"id"`
	Kind       string  `yaml:"kind"`
	Title      *string `yaml:"title,omitempty"`
	RecordedAt string  `yaml:"recorded_at"`
	CreatedAt  string  `yaml:"created_at"`
}

// sessionFrontmatter holds the YAML frontmatter of a mindfulness file.
type sessionFrontmatter struct {
	ID              string `yaml:"id"`
	Practice        string `yaml:"practice"`
	DurationMinutes int    `yaml:"duration_minutes"`
	RecordedAt      string `yaml:"recorded_at"`
	CreatedAt       string `yaml:"created_at"`
}

func parseTimes(id, recordedAt, createdAt string) (uuid.UUID, time.Time, time.Time, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, fmt.Errorf("parse ID %q: %w", id, err)
	}
	rec, err := parseFrontmatterTime(recordedAt)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, fmt.Errorf("parse recorded_at %q: %w", recordedAt, err)
	}
	created, err := parseFrontmatterTime(createdAt)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	return parsedID, rec, created, nil
}

func readMoodFile(path string) (*models.MoodEntry, error) {
	var fm moodFrontmatter
	body, err := readFrontmatterFile(path, &fm)
	if err != nil {
		return nil, err
	}

	id, rec, created, err := parseTimes(fm.ID, fm.RecordedAt, fm.CreatedAt)
	if err != nil {
		return nil, err
	}

	m := &models.MoodEntry{
		ID:         id,
		Mood:       models.MoodLabel(fm.Mood),
		Intensity:  fm.Intensity,
		Factors:    fm.Factors,
		Weather:    fm.Weather,
		SleepHours: fm.SleepHours,
		Exercise:   fm.Exercise,
		RecordedAt: rec,
		CreatedAt:  created,
	}
	if body != "" {
		m.Note = &body
	}
	return m, nil
}

func readJournalFile(path string) (*models.JournalEntry, error) {
	var fm journalFrontmatter
	body, err := readFrontmatterFile(path, &fm)
	if err != nil {
		return nil, err
	}

	id, rec, created, err := parseTimes(fm.ID, fm.RecordedAt, fm.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &models.JournalEntry{
		ID:         id,
		Kind:       models.JournalKind(fm.Kind),
		Title:      fm.Title,
		Content:    body,
		RecordedAt: rec,
		CreatedAt:  created,
	}, nil
}

func readSessionFile(path string) (*models.MindfulnessSession, error) {
	var fm sessionFrontmatter
	body, err := readFrontmatterFile(path, &fm)
	if err != nil {
		return nil, err
	}

	id, rec, created, err := parseTimes(fm.ID, fm.RecordedAt, fm.CreatedAt)
	if err != nil {
		return nil, err
	}

	s := &models.MindfulnessSession{
		ID:              id,
		Practice:        fm.Practice,
		DurationMinutes: fm.DurationMinutes,
		RecordedAt:      rec,
		CreatedAt:       created,
	}
	if body != "" {
		s.Notes = &body
	}
	return s, nil
}

func moodID(m *models.MoodEntry) uuid.UUID { return m.ID }
func journalID(j *models.JournalEntry) uuid.UUID { return j.ID }
func sessionID(s *models.MindfulnessSession) uuid.UUID { return s.ID }
func moodAt(m *models.MoodEntry) time.Time { return m.RecordedAt }
func journalAt(j *models.JournalEntry) time.Time { return j.RecordedAt }
func sessionAt(s *models.MindfulnessSession) time.Time { return s.RecordedAt }

// --- Repository interface methods ---

// CreateMood stores a new mood entry as a markdown file.
func (s *MarkdownStore) CreateMood(m *models.MoodEntry) error {
	fm := moodFrontmatter{
		ID:         m.ID.String(),
		Mood:       string(m.Mood),
		Intensity:  m.Intensity,
		Factors:    m.Factors,
		Weather:    m.Weather,
		SleepHours: m.SleepHours,
		Exercise:   m.Exercise,
		RecordedAt: formatFrontmatterTime(m.RecordedAt),
		CreatedAt:  formatFrontmatterTime(m.CreatedAt),
	}
	body := ""
	if m.Note != nil {
		body = *m.Note
	}

	path := datedPath(s.moodsDir(), m.RecordedAt, string(m.Mood), m.ID)
	if err := writeFrontmatterFile(path, &fm, body); err != nil {
		return fmt.Errorf("create mood: %w", err)
	}
	return nil
}

// GetMood retrieves a mood entry by ID or ID prefix.
func (s *MarkdownStore) GetMood(idOrPrefix string) (*models.MoodEntry, error) {
	_, m, err := findEntry(s.moodsDir(), idOrPrefix, readMoodFile, moodID)
	return m, err
}

// ListMoods retrieves mood entries, most recent first.
func (s *MarkdownStore) ListMoods(limit int) ([]*models.MoodEntry, error) {
	moods, err := collect(s.moodsDir(), readMoodFile, nil, moodAt, limit)
	if err != nil {
		return nil, fmt.Errorf("list moods: %w", err)
	}
	return moods, nil
}

// DeleteMood removes a mood file by ID or prefix.
func (s *MarkdownStore) DeleteMood(idOrPrefix string) error {
	if err := removeEntry(s.moodsDir(), idOrPrefix, readMoodFile, moodID); err != nil {
		return fmt.Errorf("delete mood: %w", err)
	}
	return nil
}

// CreateJournal stores a new journal entry as a markdown file.
func (s *MarkdownStore) CreateJournal(j *models.JournalEntry) error {
	fm := journalFrontmatter{
		ID:         j.ID.String(),
		Kind:       string(j.Kind),
		Title:      j.Title,
		RecordedAt: formatFrontmatterTime(j.RecordedAt),
		CreatedAt:  formatFrontmatterTime(j.CreatedAt),
	}
	slug := string(j.Kind)
	if j.Title != nil && *j.Title != "" {
		slug = *j.Title
	}

	path := datedPath(s.journalsDir(), j.RecordedAt, slug, j.ID)
	if err := writeFrontmatterFile(path, &fm, j.Content); err != nil {
		return fmt.Errorf("create journal: %w", err)
	}
	return nil
}

// GetJournal retrieves a journal entry by ID or ID prefix.
func (s *MarkdownStore) GetJournal(idOrPrefix string) (*models.JournalEntry, error) {
	_, j, err := findEntry(s.journalsDir(), idOrPrefix, readJournalFile, journalID)
	return j, err
}

// ListJournals retrieves journal entries with optional filtering by kind.
func (s *MarkdownStore) ListJournals(kind *models.JournalKind, limit int) ([]*models.JournalEntry, error) {
	var keep func(*models.JournalEntry) bool
	if kind != nil {
		keep = func(j *models.JournalEntry) bool { return j.Kind == *kind }
	}
	journals, err := collect(s.journalsDir(), readJournalFile, keep, journalAt, limit)
	if err != nil {
		return nil, fmt.Errorf("list journals: %w", err)
	}
	return journals, nil
}

// DeleteJournal removes a journal file by ID or prefix.
func (s *MarkdownStore) DeleteJournal(idOrPrefix string) error {
	if err := removeEntry(s.journalsDir(), idOrPrefix, readJournalFile, journalID); err != nil {
		return fmt.Errorf("delete journal: %w", err)
	}
	return nil
}

// CreateSession stores a new mindfulness session as a markdown file.
func (s *MarkdownStore) CreateSession(ms *models.MindfulnessSession) error {
	fm := sessionFrontmatter{
		ID:              ms.ID.String(),
		Practice:        ms.Practice,
		DurationMinutes: ms.DurationMinutes,
		RecordedAt:      formatFrontmatterTime(ms.RecordedAt),
		CreatedAt:       formatFrontmatterTime(ms.CreatedAt),
	}
	body := ""
	if ms.Notes != nil {
		body = *ms.Notes
	}

	path := datedPath(s.sessionsDir(), ms.RecordedAt, ms.Practice, ms.ID)
	if err := writeFrontmatterFile(path, &fm, body); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// ListSessions retrieves mindfulness sessions, most recent first.
func (s *MarkdownStore) ListSessions(limit int) ([]*models.MindfulnessSession, error) {
	sessions, err := collect(s.sessionsDir(), readSessionFile, nil, sessionAt, limit)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// DeleteSession removes a mindfulness file by ID or prefix.
func (s *MarkdownStore) DeleteSession(idOrPrefix string) error {
	if err := removeEntry(s.sessionsDir(), idOrPrefix, readSessionFile, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// SaveWellnessSnapshot upserts the day's snapshot in wellness-history.yaml.
func (s *MarkdownStore) SaveWellnessSnapshot(snap *models.WellnessSnapshot) error {
	history, err := s.ListWellnessHistory(0)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(insights.AppendHistory(history, *snap))
	if err != nil {
		return fmt.Errorf("save wellness snapshot: %w", err)
	}
	return atomicWrite(s.historyPath(), data)
}

// ListWellnessHistory returns stored snapshots, most recent day first.
func (s *MarkdownStore) ListWellnessHistory(limit int) ([]models.WellnessSnapshot, error) {
	data, err := os.ReadFile(s.historyPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read wellness history: %w", err)
	}

	var history []models.WellnessSnapshot
	if err := yaml.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("parse wellness history: %w", err)
	}
	sortHistory(history)
	if limit > 0 && len(history) > limit {
		history = history[:limit]
	}
	return history, nil
}
