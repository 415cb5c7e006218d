// ABOUTME: Flat JSON views of stored entries returned by tools and resources.
// ABOUTME: IDs and timestamps are rendered as strings in the engine's timezone.
package mcp

import (
	"time"

	"github.com/harperreed/mood/internal/models"
)

type moodView struct {
	ID         string          `json:"id"`
	Mood       string          `json:"mood"`
	Intensity  int             `json:"intensity"`
	Factors    []string        `json:"factors,omitempty"`
	Note       string          `json:"note,omitempty"`
	Weather    *models.Weather `json:"weather,omitempty"`
	SleepHours *float64        `json:"sleep_hours,omitempty"`
	Exercise   *bool           `json:"exercise,omitempty"`
	RecordedAt string          `json:"recorded_at"`
}

type journalView struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	Title      string `json:"title,omitempty"`
	Content    string `json:"content"`
	RecordedAt string `json:"recorded_at"`
}

type sessionView struct {
	ID              string `json:"id"`
	Practice        string `json:"practice"`
	DurationMinutes int    `json:"duration_minutes"`
	Notes           string `json:"notes,omitempty"`
	RecordedAt      string `json:"recorded_at"`
}

func stamp(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(time.RFC3339)
}

func moodViews(moods []*models.MoodEntry, loc *time.Location) []moodView {
	out := make([]moodView, 0, len(moods))
	for _, m := range moods {
		v := moodView{
			ID:         m.ID.String(),
			Mood:       string(m.Mood),
			Intensity:  m.Intensity,
			Factors:    m.Factors,
			Weather:    m.Weather,
			SleepHours: m.SleepHours,
			Exercise:   m.Exercise,
			RecordedAt: stamp(m.RecordedAt, loc),
		}
		if m.Note != nil {
			v.Note = *m.Note
		}
		out = append(out, v)
	}
	return out
}

func journalViews(journals []*models.JournalEntry, loc *time.Location) []journalView {
	out := make([]journalView, 0, len(journals))
	for _, j := range journals {
		v := journalView{
			ID:         j.ID.String(),
			Kind:       string(j.Kind),
			Content:    j.Content,
			RecordedAt: stamp(j.RecordedAt, loc),
		}
		if j.Title != nil {
			v.Title = *j.Title
		}
		out = append(out, v)
	}
	return out
}

func sessionViews(sessions []*models.MindfulnessSession, loc *time.Location) []sessionView {
	out := make([]sessionView, 0, len(sessions))
	for _, s := range sessions {
		v := sessionView{
			ID:              s.ID.String(),
			Practice:        s.Practice,
			DurationMinutes: s.DurationMinutes,
			RecordedAt:      stamp(s.RecordedAt, loc),
		}
		if s.Notes != nil {
			v.Notes = *s.Notes
		}
		out = append(out, v)
	}
	return out
}
