// ABOUTME: MCP tools exposing the behavioral pattern and wellness engine.
// ABOUTME: Streaks, correlations, triggers, predictions and wellness scoring.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/mood/internal/insights"
)

func (s *Server) registerInsightTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_streak",
		Description: "Current and longest consecutive-day streaks for mood logging and any activity",
	}, s.handleGetStreak)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_correlations",
		Description: "Average mood intensity grouped by weather, exercise, sleep or factor",
	}, s.handleGetCorrelations)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_triggers",
		Description: "Recurring triggers found in journal text and low-mood factors",
	}, s.handleGetTriggers)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_predictions",
		Description: "Short-term mood predictions and early warnings from recent entries",
	}, s.handleGetPredictions)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_wellness_score",
		Description: "Weighted 0-100 wellness score with per-metric trends and suggestions",
	}, s.handleGetWellnessScore)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_wellness_history",
		Description: "Saved daily wellness scores, newest first",
	}, s.handleGetWellnessHistory)
}

type emptyInput struct{}

type streakOutput struct {
	Mood     insights.StreakSummary `json:"mood"`
	Activity insights.StreakSummary `json:"activity"`
	Message  string                 `json:"message"`
}

type correlationsInput struct {
	Dimension string `json:"dimension,omitempty" jsonschema:"One of weather, exercise, sleep, factor or all (default all)"`
	Factor    string `json:"factor,omitempty" jsonschema:"Compare days with and without this factor tag instead"`
}

type correlationsOutput struct {
	Insights []insights.CorrelationInsight `json:"insights"`
}

type triggersOutput struct {
	Triggers []insights.TriggerPattern `json:"triggers"`
	Message  string                    `json:"message,omitempty"`
}

type predictionsOutput struct {
	Predictions []insights.Prediction   `json:"predictions"`
	Warnings    []insights.EarlyWarning `json:"warnings"`
	Message     string                  `json:"message,omitempty"`
}

type wellnessInput struct {
	Save bool `json:"save,omitempty" jsonschema:"Store the score as today's history snapshot"`
}

type wellnessOutput struct {
	Score insights.WellnessScore `json:"score"`
	Saved bool                   `json:"saved"`
}

type historyEntry struct {
	Date    string             `json:"date"`
	Overall int                `json:"overall"`
	Metrics map[string]float64 `json:"metrics,omitempty"`
}

type historyOutput struct {
	History []historyEntry `json:"history"`
	Count   int            `json:"count"`
}

func (s *Server) handleGetStreak(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, streakOutput, error) {
	entries, err := s.loadEntries(ctx)
	if err != nil {
		return nil, streakOutput{}, err
	}

	mood := s.engine.Streak(entries.Moods)
	activity := s.engine.ActivityStreak(entries)
	return nil, streakOutput{
		Mood:     mood,
		Activity: activity,
		Message:  fmt.Sprintf("Mood streak: %d day(s), longest %d", mood.Current, mood.Longest),
	}, nil
}

func (s *Server) handleGetCorrelations(ctx context.Context, req *mcp.CallToolRequest, input correlationsInput) (*mcp.CallToolResult, correlationsOutput, error) {
	var dims []insights.Dimension
	switch {
	case input.Factor != "":
		dims = append(dims, insights.FactorPresence(input.Factor))
	case input.Dimension == "" || strings.EqualFold(input.Dimension, "all"):
		dims = append(dims,
			insights.WeatherDimension(),
			insights.ExerciseDimension(),
			insights.SleepDimension(),
			insights.FactorDimension(),
		)
	default:
		dim, err := insights.DimensionByName(input.Dimension)
		if err != nil {
			return nil, correlationsOutput{}, err
		}
		dims = append(dims, dim)
	}

	moods, err := s.repo.ListMoods(0)
	if err != nil {
		return nil, correlationsOutput{}, fmt.Errorf("failed to list moods: %w", err)
	}

	out := correlationsOutput{Insights: make([]insights.CorrelationInsight, 0, len(dims))}
	for _, dim := range dims {
		out.Insights = append(out.Insights, s.engine.Correlate(moods, dim))
	}
	return nil, out, nil
}

func (s *Server) handleGetTriggers(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, triggersOutput, error) {
	entries, err := s.loadEntries(ctx)
	if err != nil {
		return nil, triggersOutput{}, err
	}

	triggers, err := s.engine.Triggers(entries.Journals, entries.Moods)
	if errors.Is(err, insights.ErrInsufficientData) {
		return nil, triggersOutput{
			Triggers: []insights.TriggerPattern{},
			Message: fmt.Sprintf("Need at least %d moods or %d journal entries to find triggers.",
				insights.MinMoodsForTriggers, insights.MinJournalsForTriggers),
		}, nil
	}
	if err != nil {
		return nil, triggersOutput{}, fmt.Errorf("failed to analyze triggers: %w", err)
	}

	out := triggersOutput{Triggers: triggers}
	if len(triggers) == 0 {
		out.Triggers = []insights.TriggerPattern{}
		out.Message = "No recurring triggers found."
	}
	return nil, out, nil
}

func (s *Server) handleGetPredictions(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, predictionsOutput, error) {
	moods, err := s.repo.ListMoods(0)
	if err != nil {
		return nil, predictionsOutput{}, fmt.Errorf("failed to list moods: %w", err)
	}

	out := predictionsOutput{
		Predictions: s.engine.Predict(moods),
		Warnings:    s.engine.EarlyWarnings(moods),
	}
	if out.Predictions == nil {
		out.Predictions = []insights.Prediction{}
		out.Message = fmt.Sprintf("Need at least %d mood entries for predictions.", insights.MinEntriesForPrediction)
	}
	if out.Warnings == nil {
		out.Warnings = []insights.EarlyWarning{}
	}
	return nil, out, nil
}

func (s *Server) handleGetWellnessScore(ctx context.Context, req *mcp.CallToolRequest, input wellnessInput) (*mcp.CallToolResult, wellnessOutput, error) {
	entries, err := s.loadEntries(ctx)
	if err != nil {
		return nil, wellnessOutput{}, err
	}

	score := s.engine.Wellness(entries)
	if input.Save {
		snap := score.Snapshot(s.engine.Now())
		if err := s.repo.SaveWellnessSnapshot(&snap); err != nil {
			return nil, wellnessOutput{}, fmt.Errorf("failed to save wellness snapshot: %w", err)
		}
		s.logger.Debug("saved wellness snapshot", "date", snap.Date, "overall", snap.Overall)
	}

	return nil, wellnessOutput{Score: score, Saved: input.Save}, nil
}

func (s *Server) handleGetWellnessHistory(ctx context.Context, req *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, historyOutput, error) {
	history, err := s.repo.ListWellnessHistory(input.Limit)
	if err != nil {
		return nil, historyOutput{}, fmt.Errorf("failed to list wellness history: %w", err)
	}

	out := historyOutput{History: make([]historyEntry, 0, len(history)), Count: len(history)}
	for _, h := range history {
		out.History = append(out.History, historyEntry{Date: h.Date, Overall: h.Overall, Metrics: h.Metrics})
	}
	return nil, out, nil
}
