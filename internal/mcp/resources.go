// ABOUTME: MCP resource implementations for the mood tracker.
// ABOUTME: Provides mood://recent, mood://today, and mood://wellness resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/mood/internal/models"
)

const (
	recentURI   = "mood://recent"
	todayURI    = "mood://today"
	wellnessURI = "mood://wellness"
)

func (s *Server) registerResources() {
	// mood://recent - Last 10 moods plus recent journals and sessions
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         recentURI,
		Name:        "Recent Mood Entries",
		Description: "Last 10 moods, 5 journal entries and 5 mindfulness sessions",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// mood://today - Everything logged today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         todayURI,
		Name:        "Today's Entries",
		Description: "All moods, journal entries and mindfulness sessions logged today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// mood://wellness - Dashboard with score, streaks and warnings
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         wellnessURI,
		Name:        "Wellness Dashboard",
		Description: "Current wellness score, streaks, early warnings and recent score history",
		MIMEType:    "application/json",
	}, s.handleWellnessResource)
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	moods, err := s.repo.ListMoods(10)
	if err != nil {
		return nil, fmt.Errorf("failed to list moods: %w", err)
	}
	journals, err := s.repo.ListJournals(nil, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to list journals: %w", err)
	}
	sessions, err := s.repo.ListSessions(5)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	loc := s.engine.Location()
	return jsonResource(recentURI, map[string]interface{}{
		"moods":    moodViews(moods, loc),
		"journals": journalViews(journals, loc),
		"sessions": sessionViews(sessions, loc),
	})
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	entries, err := s.loadEntries(ctx)
	if err != nil {
		return nil, err
	}

	loc := s.engine.Location()
	today := models.DayOf(s.engine.Now(), loc)

	var moods []*models.MoodEntry
	for _, m := range entries.Moods {
		if m.Day(loc) == today {
			moods = append(moods, m)
		}
	}
	var journals []*models.JournalEntry
	for _, j := range entries.Journals {
		if j.Day(loc) == today {
			journals = append(journals, j)
		}
	}
	var sessions []*models.MindfulnessSession
	for _, ms := range entries.Sessions {
		if ms.Day(loc) == today {
			sessions = append(sessions, ms)
		}
	}

	return jsonResource(todayURI, map[string]interface{}{
		"date":     today,
		"moods":    moodViews(moods, loc),
		"journals": journalViews(journals, loc),
		"sessions": sessionViews(sessions, loc),
		"counts": map[string]int{
			"moods":    len(moods),
			"journals": len(journals),
			"sessions": len(sessions),
		},
	})
}

func (s *Server) handleWellnessResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	entries, err := s.loadEntries(ctx)
	if err != nil {
		return nil, err
	}
	history, err := s.repo.ListWellnessHistory(7)
	if err != nil {
		return nil, fmt.Errorf("failed to list wellness history: %w", err)
	}

	recent := make([]historyEntry, 0, len(history))
	for _, h := range history {
		recent = append(recent, historyEntry{Date: h.Date, Overall: h.Overall})
	}

	return jsonResource(wellnessURI, map[string]interface{}{
		"score":           s.engine.Wellness(entries),
		"mood_streak":     s.engine.Streak(entries.Moods),
		"activity_streak": s.engine.ActivityStreak(entries),
		"warnings":        s.engine.EarlyWarnings(entries.Moods),
		"history":         recent,
	})
}
