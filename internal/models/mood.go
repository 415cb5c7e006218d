// ABOUTME: MoodEntry model and MoodLabel enum for mood logging.
// ABOUTME: Carries intensity, factor tags, weather, sleep and exercise context.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MoodLabel is the categorical mood a user picks when logging.
type MoodLabel string

const (
	MoodEcstatic MoodLabel = "ecstatic"
	MoodHappy    MoodLabel = "happy"
	MoodNeutral  MoodLabel = "neutral"
	MoodSad      MoodLabel = "sad"
	MoodAngry    MoodLabel = "angry"
)

// AllMoodLabels lists the valid labels from most to least positive.
var AllMoodLabels = []MoodLabel{MoodEcstatic, MoodHappy, MoodNeutral, MoodSad, MoodAngry}

// MoodScores maps each label to its 0-100 stability value.
var MoodScores = map[MoodLabel]float64{
	MoodEcstatic: 100,
	MoodHappy:    80,
	MoodNeutral:  60,
	MoodSad:      30,
	MoodAngry:    20,
}

// Intensity bounds for mood entries.
const (
	MinIntensity = 1
	MaxIntensity = 10
)

// ParseMoodLabel resolves a case-insensitive label name.
func ParseMoodLabel(s string) (MoodLabel, error) {
	label := MoodLabel(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := MoodScores[label]; !ok {
		return "", fmt.Errorf("unknown mood %q (valid: ecstatic, happy, neutral, sad, angry)", s)
	}
	return label, nil
}

// Score returns the stability value for the label and whether it is known.
func (l MoodLabel) Score() (float64, bool) {
	v, ok := MoodScores[l]
	return v, ok
}

// Weather describes conditions at the time a mood was logged.
type Weather struct {
	Condition    string   `json:"condition" yaml:"condition"`
	TemperatureC *float64 `json:"temperature_c,omitempty" yaml:"temperature_c,omitempty"`
	Humidity     *int     `json:"humidity,omitempty" yaml:"humidity,omitempty"`
}

// MoodEntry is a single mood check-in.
type MoodEntry struct {
	ID         uuid.UUID `json:"id" yaml:"id"`
	Mood       MoodLabel `json:"mood" yaml:"mood"`
	Intensity  int       `json:"intensity" yaml:"intensity"`
	Factors    []string  `json:"factors,omitempty" yaml:"factors,omitempty"`
	Note       *string   `json:"note,omitempty" yaml:"note,omitempty"`
	Weather    *Weather  `json:"weather,omitempty" yaml:"weather,omitempty"`
	SleepHours *float64  `json:"sleep_hours,omitempty" yaml:"sleep_hours,omitempty"`
	Exercise   *bool     `json:"exercise,omitempty" yaml:"exercise,omitempty"`
	RecordedAt time.Time `json:"recorded_at" yaml:"recorded_at"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// NewMoodEntry creates a MoodEntry with generated UUID and current timestamp.
func NewMoodEntry(mood MoodLabel, intensity int) *MoodEntry {
	now := time.Now()
	return &MoodEntry{
		ID:         uuid.New(),
		Mood:       mood,
		Intensity:  intensity,
		RecordedAt: now,
		CreatedAt:  now,
	}
}

// WithRecordedAt sets a custom recorded_at timestamp.
func (m *MoodEntry) WithRecordedAt(t time.Time) *MoodEntry {
	m.RecordedAt = t
	return m
}

// WithFactors sets the factor tags, dropping blanks and duplicates.
func (m *MoodEntry) WithFactors(factors ...string) *MoodEntry {
	seen := make(map[string]bool, len(factors))
	m.Factors = m.Factors[:0]
	for _, f := range factors {
		f = strings.TrimSpace(f)
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		m.Factors = append(m.Factors, f)
	}
	return m
}

// WithNote sets a free-form note.
func (m *MoodEntry) WithNote(note string) *MoodEntry {
	m.Note = &note
	return m
}

// WithWeather sets the weather condition.
func (m *MoodEntry) WithWeather(w Weather) *MoodEntry {
	m.Weather = &w
	return m
}

// WithSleep sets hours slept the night before.
func (m *MoodEntry) WithSleep(hours float64) *MoodEntry {
	m.SleepHours = &hours
	return m
}

// WithExercise records whether the user exercised that day.
func (m *MoodEntry) WithExercise(exercised bool) *MoodEntry {
	m.Exercise = &exercised
	return m
}

// Day returns the calendar day of the entry in loc as YYYY-MM-DD.
func (m *MoodEntry) Day(loc *time.Location) string {
	return DayOf(m.RecordedAt, loc)
}

// HasValidIntensity reports whether intensity is within 1-10.
func (m *MoodEntry) HasValidIntensity() bool {
	return m.Intensity >= MinIntensity && m.Intensity <= MaxIntensity
}

// Validate checks the entry before it is stored.
func (m *MoodEntry) Validate() error {
	if _, ok := m.Mood.Score(); !ok {
		return fmt.Errorf("invalid mood %q", m.Mood)
	}
	if !m.HasValidIntensity() {
		return fmt.Errorf("intensity must be between %d and %d, got %d", MinIntensity, MaxIntensity, m.Intensity)
	}
	if m.SleepHours != nil && (*m.SleepHours < 0 || *m.SleepHours > 24) {
		return fmt.Errorf("sleep hours must be between 0 and 24, got %.1f", *m.SleepHours)
	}
	if m.Weather != nil && m.Weather.Humidity != nil && (*m.Weather.Humidity < 0 || *m.Weather.Humidity > 100) {
		return fmt.Errorf("humidity must be between 0 and 100, got %d", *m.Weather.Humidity)
	}
	return nil
}

// DayOf formats t as a YYYY-MM-DD calendar day in loc.
// A nil loc means the time's own location.
func DayOf(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format("2006-01-02")
}
