// ABOUTME: Repository interface for mood tracking storage.
// ABOUTME: Defines the contract for moods, journals, mindfulness sessions and wellness history.
package storage

import (
	"github.com/harperreed/mood/internal/models"
)

// Repository defines the storage interface for mood data.
// List operations return records newest-first.
type Repository interface {
	// Mood operations
	CreateMood(m *models.MoodEntry) error
	GetMood(idOrPrefix string) (*models.MoodEntry, error)
	ListMoods(limit int) ([]*models.MoodEntry, error)
	DeleteMood(idOrPrefix string) error

	// Journal operations
	CreateJournal(j *models.JournalEntry) error
	GetJournal(idOrPrefix string) (*models.JournalEntry, error)
	ListJournals(kind *models.JournalKind, limit int) ([]*models.JournalEntry, error)
	DeleteJournal(idOrPrefix string) error

	// Mindfulness operations
	CreateSession(s *models.MindfulnessSession) error
	ListSessions(limit int) ([]*models.MindfulnessSession, error)
	DeleteSession(idOrPrefix string) error

	// Wellness history, one snapshot per day
	SaveWellnessSnapshot(s *models.WellnessSnapshot) error
	ListWellnessHistory(limit int) ([]models.WellnessSnapshot, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
