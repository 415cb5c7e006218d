// ABOUTME: JournalEntry model for free-text journaling and gratitude notes.
// ABOUTME: Journal content feeds the trigger lexicon scan.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// JournalKind distinguishes reflective journaling from gratitude notes.
type JournalKind string

const (
	JournalReflection JournalKind = "journal"
	JournalGratitude  JournalKind = "gratitude"
)

// IsValidJournalKind checks if a string is a valid journal kind.
func IsValidJournalKind(s string) bool {
	return s == string(JournalReflection) || s == string(JournalGratitude)
}

// JournalEntry is a dated piece of free text.
type JournalEntry struct {
	ID         uuid.UUID   `json:"id" yaml:"id"`
	Kind       JournalKind `json:"kind" yaml:"kind"`
	Title      *string     `json:"title,omitempty" yaml:"title,omitempty"`
	Content    string      `json:"content" yaml:"content"`
	RecordedAt time.Time   `json:"recorded_at" yaml:"recorded_at"`
	CreatedAt  time.Time   `json:"created_at" yaml:"created_at"`
}

// NewJournalEntry creates a JournalEntry with generated UUID and current timestamp.
func NewJournalEntry(kind JournalKind, content string) *JournalEntry {
	now := time.Now()
	return &JournalEntry{
		ID:         uuid.New(),
		Kind:       kind,
		Content:    content,
		RecordedAt: now,
		CreatedAt:  now,
	}
}

// WithTitle sets the entry title.
func (j *JournalEntry) WithTitle(title string) *JournalEntry {
	j.Title = &title
	return j
}

// WithRecordedAt sets a custom recorded_at timestamp.
func (j *JournalEntry) WithRecordedAt(t time.Time) *JournalEntry {
	j.RecordedAt = t
	return j
}

// Day returns the calendar day of the entry in loc as YYYY-MM-DD.
func (j *JournalEntry) Day(loc *time.Location) string {
	return DayOf(j.RecordedAt, loc)
}

// Validate checks the entry before it is stored.
func (j *JournalEntry) Validate() error {
	if !IsValidJournalKind(string(j.Kind)) {
		return fmt.Errorf("invalid journal kind %q", j.Kind)
	}
	if strings.TrimSpace(j.Content) == "" {
		return fmt.Errorf("journal content cannot be empty")
	}
	return nil
}
