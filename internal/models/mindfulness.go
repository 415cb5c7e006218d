// ABOUTME: MindfulnessSession model for breathing, meditation and similar practices.
// ABOUTME: Session counts drive the mindfulness wellness metric.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common practice names. Any non-empty practice is accepted.
const (
	PracticeBreathing  = "breathing"
	PracticeMeditation = "meditation"
	PracticeBodyScan   = "body-scan"
	PracticeGrounding  = "grounding"
)

// MindfulnessSession is one completed practice session.
type MindfulnessSession struct {
	ID              uuid.UUID `json:"id" yaml:"id"`
	Practice        string    `json:"practice" yaml:"practice"`
	DurationMinutes int       `json:"duration_minutes" yaml:"duration_minutes"`
	Notes           *string   `json:"notes,omitempty" yaml:"notes,omitempty"`
	RecordedAt      time.Time `json:"recorded_at" yaml:"recorded_at"`
	CreatedAt       time.Time `json:"created_at" yaml:"created_at"`
}

// NewMindfulnessSession creates a session with generated UUID and current timestamp.
func NewMindfulnessSession(practice string, minutes int) *MindfulnessSession {
	now := time.Now()
	return &MindfulnessSession{
		ID:              uuid.New(),
		Practice:        strings.ToLower(strings.TrimSpace(practice)),
		DurationMinutes: minutes,
		RecordedAt:      now,
		CreatedAt:       now,
	}
}

// WithNotes sets notes on the session.
func (s *MindfulnessSession) WithNotes(notes string) *MindfulnessSession {
	s.Notes = &notes
	return s
}

// WithRecordedAt sets a custom recorded_at timestamp.
func (s *MindfulnessSession) WithRecordedAt(t time.Time) *MindfulnessSession {
	s.RecordedAt = t
	return s
}

// Day returns the calendar day of the session in loc as YYYY-MM-DD.
func (s *MindfulnessSession) Day(loc *time.Location) string {
	return DayOf(s.RecordedAt, loc)
}

// Validate checks the session before it is stored.
func (s *MindfulnessSession) Validate() error {
	if s.Practice == "" {
		return fmt.Errorf("practice cannot be empty")
	}
	if s.DurationMinutes < 0 {
		return fmt.Errorf("duration cannot be negative, got %d", s.DurationMinutes)
	}
	return nil
}
