// ABOUTME: Export and import functionality for mood data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats over any Repository.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harperreed/mood/internal/models"
)

// ExportVersion is the current export format version.
const ExportVersion = "1.0"

// ExportData represents the full export format for mood data.
type ExportData struct {
	Version         string                       `json:"version" yaml:"version"`
	ExportedAt      time.Time                    `json:"exported_at" yaml:"exported_at"`
	Tool            string                       `json:"tool" yaml:"tool"`
	Moods           []*models.MoodEntry          `json:"moods" yaml:"moods"`
	Journals        []*models.JournalEntry       `json:"journals" yaml:"journals"`
	Sessions        []*models.MindfulnessSession `json:"mindfulness_sessions" yaml:"mindfulness_sessions"`
	WellnessHistory []models.WellnessSnapshot    `json:"wellness_history,omitempty" yaml:"wellness_history,omitempty"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	return collectExportData(d)
}

// ImportData imports data from an export file.
func (d *DB) ImportData(data *ExportData) error {
	return importExportData(d, data)
}

func collectExportData(repo Repository) (*ExportData, error) {
	moods, err := repo.ListMoods(0)
	if err != nil {
		return nil, err
	}
	journals, err := repo.ListJournals(nil, 0)
	if err != nil {
		return nil, err
	}
	sessions, err := repo.ListSessions(0)
	if err != nil {
		return nil, err
	}
	history, err := repo.ListWellnessHistory(0)
	if err != nil {
		return nil, err
	}

	return &ExportData{
		Version:         ExportVersion,
		ExportedAt:      time.Now(),
		Tool:            "mood",
		Moods:           moods,
		Journals:        journals,
		Sessions:        sessions,
		WellnessHistory: history,
	}, nil
}

func importExportData(repo Repository, data *ExportData) error {
	for _, m := range data.Moods {
		if err := repo.CreateMood(m); err != nil {
			return fmt.Errorf("import mood: %w", err)
		}
	}
	for _, j := range data.Journals {
		if err := repo.CreateJournal(j); err != nil {
			return fmt.Errorf("import journal: %w", err)
		}
	}
	for _, s := range data.Sessions {
		if err := repo.CreateSession(s); err != nil {
			return fmt.Errorf("import session: %w", err)
		}
	}
	for i := range data.WellnessHistory {
		if err := repo.SaveWellnessSnapshot(&data.WellnessHistory[i]); err != nil {
			return fmt.Errorf("import wellness snapshot: %w", err)
		}
	}
	return nil
}

// ExportJSON exports all data as JSON.
func ExportJSON(repo Repository) ([]byte, error) {
	data, err := repo.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func ExportYAML(repo Repository) ([]byte, error) {
	data, err := repo.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ImportJSON imports data from JSON bytes.
func ImportJSON(repo Repository, raw []byte) (*ExportData, error) {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return &data, repo.ImportData(&data)
}

// ImportYAML imports data from YAML bytes.
func ImportYAML(repo Repository, raw []byte) (*ExportData, error) {
	var data ExportData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal YAML: %w", err)
	}
	return &data, repo.ImportData(&data)
}

// ExportMarkdown renders entries recorded at or after since (all when nil)
// as a Markdown report with times shown in loc.
//
//nolint:gocognit,gocyclo // Linear section-by-section rendering.
func ExportMarkdown(repo Repository, since *time.Time, loc *time.Location) (string, error) {
	data, err := repo.GetAllData()
	if err != nil {
		return "", err
	}
	if loc == nil {
		loc = time.Local
	}
	include := func(t time.Time) bool {
		return since == nil || !t.Before(*since)
	}
	stamp := func(t time.Time) string {
		return t.In(loc).Format("2006-01-02 15:04")
	}

	var sb strings.Builder
	now := time.Now().In(loc)

	sb.WriteString(fmt.Sprintf("# Mood Export - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	sb.WriteString("## Moods\n\n")
	sb.WriteString("| Date | Mood | Intensity | Factors | Note |\n")
	sb.WriteString("|------|------|-----------|---------|------|\n")
	for _, m := range data.Moods {
		if !include(m.RecordedAt) {
			continue
		}
		note := ""
		if m.Note != nil {
			note = escapeCell(*m.Note)
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %d | %s | %s |\n",
			stamp(m.RecordedAt), m.Mood, m.Intensity, escapeCell(strings.Join(m.Factors, ", ")), note))
	}
	sb.WriteString("\n")

	for _, kind := range []models.JournalKind{models.JournalReflection, models.JournalGratitude} {
		heading := "Journal"
		if kind == models.JournalGratitude {
			heading = "Gratitude"
		}
		wrote := false
		for _, j := range data.Journals {
			if j.Kind != kind || !include(j.RecordedAt) {
				continue
			}
			if !wrote {
				sb.WriteString(fmt.Sprintf("## %s\n\n", heading))
				wrote = true
			}
			title := stamp(j.RecordedAt)
			if j.Title != nil && *j.Title != "" {
				title += " - " + *j.Title
			}
			sb.WriteString(fmt.Sprintf("### %s\n\n%s\n\n", title, strings.TrimSpace(j.Content)))
		}
	}

	var sessions []*models.MindfulnessSession
	for _, s := range data.Sessions {
		if include(s.RecordedAt) {
			sessions = append(sessions, s)
		}
	}
	if len(sessions) > 0 {
		sb.WriteString("## Mindfulness\n\n")
		sb.WriteString("| Date | Practice | Duration | Notes |\n")
		sb.WriteString("|------|----------|----------|-------|\n")
		for _, s := range sessions {
			notes := ""
			if s.Notes != nil {
				notes = escapeCell(*s.Notes)
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %d min | %s |\n",
				stamp(s.RecordedAt), s.Practice, s.DurationMinutes, notes))
		}
		sb.WriteString("\n")
	}

	if len(data.WellnessHistory) > 0 {
		sb.WriteString("## Wellness History\n\n")
		sb.WriteString("| Date | Score |\n")
		sb.WriteString("|------|-------|\n")
		for _, h := range data.WellnessHistory {
			sb.WriteString(fmt.Sprintf("| %s | %d |\n", h.Date, h.Overall))
		}
	}

	return sb.String(), nil
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
