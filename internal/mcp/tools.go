// ABOUTME: MCP tool implementations for mood, journal and mindfulness entries.
// ABOUTME: Provides create, list and delete operations over the Repository.
package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/mood/internal/models"
)

const defaultListLimit = 20

func (s *Server) registerTools() {
	// log_mood
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_mood",
		Description: "Record a mood check-in with intensity and optional factors, weather, sleep and exercise",
	}, s.handleLogMood)

	// list_moods
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_moods",
		Description: "List recent mood entries, newest first",
	}, s.handleListMoods)

	// delete_mood
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_mood",
		Description: "Delete a mood entry by ID or ID prefix",
	}, s.handleDeleteMood)

	// add_journal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_journal",
		Description: "Write a journal or gratitude entry",
	}, s.handleAddJournal)

	// list_journals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_journals",
		Description: "List recent journal entries, optionally filtered by kind",
	}, s.handleListJournals)

	// delete_journal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_journal",
		Description: "Delete a journal entry by ID or ID prefix",
	}, s.handleDeleteJournal)

	// add_mindfulness
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_mindfulness",
		Description: "Record a completed mindfulness session (breathing, meditation, body-scan, grounding)",
	}, s.handleAddMindfulness)

	// list_mindfulness
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_mindfulness",
		Description: "List recent mindfulness sessions",
	}, s.handleListMindfulness)
}

// Tool input/output types

type logMoodInput struct {
	Mood         string   `json:"mood" jsonschema:"Mood label: ecstatic, happy, neutral, sad or angry"`
	Intensity    int      `json:"intensity" jsonschema:"Intensity from 1 (barely) to 10 (overwhelming)"`
	Factors      []string `json:"factors,omitempty" jsonschema:"Free-form factor tags such as work, friends, caffeine"`
	Note         string   `json:"note,omitempty" jsonschema:"Optional note"`
	Weather      string   `json:"weather,omitempty" jsonschema:"Weather condition such as sunny, rainy, cloudy"`
	TemperatureC *float64 `json:"temperature_c,omitempty" jsonschema:"Temperature in Celsius"`
	Humidity     *int     `json:"humidity,omitempty" jsonschema:"Relative humidity percent"`
	SleepHours   *float64 `json:"sleep_hours,omitempty" jsonschema:"Hours slept the night before"`
	Exercise     *bool    `json:"exercise,omitempty" jsonschema:"Whether you exercised today"`
	RecordedAt   string   `json:"recorded_at,omitempty" jsonschema:"Timestamp (ISO 8601 or YYYY-MM-DD HH:MM), defaults to now"`
}

type moodOutput struct {
	ID        string `json:"id"`
	Mood      string `json:"mood"`
	Intensity int    `json:"intensity"`
	Message   string `json:"message"`
}

type listInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type listMoodsOutput struct {
	Moods   []moodView `json:"moods"`
	Count   int        `json:"count"`
	Message string     `json:"message,omitempty"`
}

type deleteInput struct {
	ID string `json:"id" jsonschema:"Entry ID or prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type addJournalInput struct {
	Kind       string `json:"kind,omitempty" jsonschema:"Entry kind: journal (default) or gratitude"`
	Content    string `json:"content" jsonschema:"Entry text"`
	Title      string `json:"title,omitempty" jsonschema:"Optional title"`
	RecordedAt string `json:"recorded_at,omitempty" jsonschema:"Timestamp (ISO 8601 or YYYY-MM-DD HH:MM), defaults to now"`
}

type journalOutput struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type listJournalsInput struct {
	Kind  string `json:"kind,omitempty" jsonschema:"Filter by kind: journal or gratitude"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type listJournalsOutput struct {
	Journals []journalView `json:"journals"`
	Count    int           `json:"count"`
	Message  string        `json:"message,omitempty"`
}

type addMindfulnessInput struct {
	Practice        string `json:"practice" jsonschema:"Practice name such as breathing, meditation, body-scan, grounding"`
	DurationMinutes int    `json:"duration_minutes,omitempty" jsonschema:"Duration in minutes"`
	Notes           string `json:"notes,omitempty" jsonschema:"Optional notes"`
	RecordedAt      string `json:"recorded_at,omitempty" jsonschema:"Timestamp (ISO 8601 or YYYY-MM-DD HH:MM), defaults to now"`
}

type mindfulnessOutput struct {
	ID       string `json:"id"`
	Practice string `json:"practice"`
	Message  string `json:"message"`
}

type listMindfulnessOutput struct {
	Sessions []sessionView `json:"sessions"`
	Count    int           `json:"count"`
	Message  string        `json:"message,omitempty"`
}

// parseRecordedAt accepts RFC 3339 or "YYYY-MM-DD HH:MM" in the engine's timezone.
func (s *Server) parseRecordedAt(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", value, s.engine.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid recorded_at %q: use ISO 8601 or YYYY-MM-DD HH:MM", value)
	}
	return t, nil
}

// Tool handlers

func (s *Server) handleLogMood(ctx context.Context, req *mcp.CallToolRequest, input logMoodInput) (*mcp.CallToolResult, moodOutput, error) {
	label, err := models.ParseMoodLabel(input.Mood)
	if err != nil {
		return nil, moodOutput{}, err
	}

	m := models.NewMoodEntry(label, input.Intensity).WithFactors(input.Factors...)
	if input.RecordedAt != "" {
		t, err := s.parseRecordedAt(input.RecordedAt)
		if err != nil {
			return nil, moodOutput{}, err
		}
		m.WithRecordedAt(t)
	}
	if input.Note != "" {
		m.WithNote(input.Note)
	}
	if input.Weather != "" || input.TemperatureC != nil || input.Humidity != nil {
		m.WithWeather(models.Weather{
			Condition:    input.Weather,
			TemperatureC: input.TemperatureC,
			Humidity:     input.Humidity,
		})
	}
	if input.SleepHours != nil {
		m.WithSleep(*input.SleepHours)
	}
	if input.Exercise != nil {
		m.WithExercise(*input.Exercise)
	}

	if err := m.Validate(); err != nil {
		return nil, moodOutput{}, err
	}
	if err := s.repo.CreateMood(m); err != nil {
		return nil, moodOutput{}, fmt.Errorf("failed to log mood: %w", err)
	}
	s.logger.Debug("logged mood", "id", m.ID.String()[:8], "mood", m.Mood, "intensity", m.Intensity)

	return nil, moodOutput{
		ID:        m.ID.String()[:8],
		Mood:      string(m.Mood),
		Intensity: m.Intensity,
		Message:   fmt.Sprintf("Logged %s (%d/10) (ID: %s)", m.Mood, m.Intensity, m.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListMoods(ctx context.Context, req *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, listMoodsOutput, error) {
	if input.Limit <= 0 {
		input.Limit = defaultListLimit
	}

	moods, err := s.repo.ListMoods(input.Limit)
	if err != nil {
		return nil, listMoodsOutput{}, fmt.Errorf("failed to list moods: %w", err)
	}

	out := listMoodsOutput{Moods: moodViews(moods, s.engine.Location()), Count: len(moods)}
	if len(moods) == 0 {
		out.Message = "No moods found."
	}
	return nil, out, nil
}

func (s *Server) handleDeleteMood(ctx context.Context, req *mcp.CallToolRequest, input deleteInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteMood(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete mood: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted mood: %s", input.ID),
	}, nil
}

func (s *Server) handleAddJournal(ctx context.Context, req *mcp.CallToolRequest, input addJournalInput) (*mcp.CallToolResult, journalOutput, error) {
	kind := models.JournalReflection
	if input.Kind != "" {
		if !models.IsValidJournalKind(strings.ToLower(input.Kind)) {
			return nil, journalOutput{}, fmt.Errorf("unknown journal kind: %s", input.Kind)
		}
		kind = models.JournalKind(strings.ToLower(input.Kind))
	}

	j := models.NewJournalEntry(kind, input.Content)
	if input.Title != "" {
		j.WithTitle(input.Title)
	}
	if input.RecordedAt != "" {
		t, err := s.parseRecordedAt(input.RecordedAt)
		if err != nil {
			return nil, journalOutput{}, err
		}
		j.WithRecordedAt(t)
	}

	if err := j.Validate(); err != nil {
		return nil, journalOutput{}, err
	}
	if err := s.repo.CreateJournal(j); err != nil {
		return nil, journalOutput{}, fmt.Errorf("failed to add journal: %w", err)
	}

	return nil, journalOutput{
		ID:      j.ID.String()[:8],
		Kind:    string(j.Kind),
		Message: fmt.Sprintf("Saved %s entry (ID: %s)", j.Kind, j.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListJournals(ctx context.Context, req *mcp.CallToolRequest, input listJournalsInput) (*mcp.CallToolResult, listJournalsOutput, error) {
	if input.Limit <= 0 {
		input.Limit = defaultListLimit
	}

	var kind *models.JournalKind
	if input.Kind != "" {
		if !models.IsValidJournalKind(strings.ToLower(input.Kind)) {
			return nil, listJournalsOutput{}, fmt.Errorf("unknown journal kind: %s", input.Kind)
		}
		k := models.JournalKind(strings.ToLower(input.Kind))
		kind = &k
	}

	journals, err := s.repo.ListJournals(kind, input.Limit)
	if err != nil {
		return nil, listJournalsOutput{}, fmt.Errorf("failed to list journals: %w", err)
	}

	out := listJournalsOutput{Journals: journalViews(journals, s.engine.Location()), Count: len(journals)}
	if len(journals) == 0 {
		out.Message = "No journal entries found."
	}
	return nil, out, nil
}

func (s *Server) handleDeleteJournal(ctx context.Context, req *mcp.CallToolRequest, input deleteInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteJournal(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete journal: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted journal entry: %s", input.ID),
	}, nil
}

func (s *Server) handleAddMindfulness(ctx context.Context, req *mcp.CallToolRequest, input addMindfulnessInput) (*mcp.CallToolResult, mindfulnessOutput, error) {
	session := models.NewMindfulnessSession(input.Practice, input.DurationMinutes)
	if input.Notes != "" {
		session.WithNotes(input.Notes)
	}
	if input.RecordedAt != "" {
		t, err := s.parseRecordedAt(input.RecordedAt)
		if err != nil {
			return nil, mindfulnessOutput{}, err
		}
		session.WithRecordedAt(t)
	}

	if err := session.Validate(); err != nil {
		return nil, mindfulnessOutput{}, err
	}
	if err := s.repo.CreateSession(session); err != nil {
		return nil, mindfulnessOutput{}, fmt.Errorf("failed to add session: %w", err)
	}

	return nil, mindfulnessOutput{
		ID:       session.ID.String()[:8],
		Practice: session.Practice,
		Message:  fmt.Sprintf("Recorded %s session (ID: %s)", session.Practice, session.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListMindfulness(ctx context.Context, req *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, listMindfulnessOutput, error) {
	if input.Limit <= 0 {
		input.Limit = defaultListLimit
	}

	sessions, err := s.repo.ListSessions(input.Limit)
	if err != nil {
		return nil, listMindfulnessOutput{}, fmt.Errorf("failed to list sessions: %w", err)
	}

	out := listMindfulnessOutput{Sessions: sessionViews(sessions, s.engine.Location()), Count: len(sessions)}
	if len(sessions) == 0 {
		out.Message = "No mindfulness sessions found."
	}
	return nil, out, nil
}
