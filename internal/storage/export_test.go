// ABOUTME: Tests for export and import functionality.
// ABOUTME: Verifies JSON, YAML and Markdown output and JSON/YAML round-trips.
package storage

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harperreed/mood/internal/models"
)

func seedRepo(t *testing.T, repo Repository) {
	t.Helper()

	moods := []*models.MoodEntry{
		models.NewMoodEntry(models.MoodHappy, 8).WithRecordedAt(at(8, 9)).WithFactors("friends").WithNote("park | picnic"),
		models.NewMoodEntry(models.MoodSad, 3).WithRecordedAt(at(9, 21)).WithFactors("work").WithSleep(5),
	}
	for _, m := range moods {
		if err := repo.CreateMood(m); err != nil {
			t.Fatalf("CreateMood failed: %v", err)
		}
	}
	if err := repo.CreateJournal(models.NewJournalEntry(models.JournalReflection, "Deadline stress again").
		WithTitle("Rough one").WithRecordedAt(at(9, 22))); err != nil {
		t.Fatalf("CreateJournal failed: %v", err)
	}
	if err := repo.CreateJournal(models.NewJournalEntry(models.JournalGratitude, "Sunshine").
		WithRecordedAt(at(8, 10))); err != nil {
		t.Fatalf("CreateJournal failed: %v", err)
	}
	if err := repo.CreateSession(models.NewMindfulnessSession("meditation", 10).WithRecordedAt(at(9, 7))); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if err := repo.SaveWellnessSnapshot(&models.WellnessSnapshot{
		Date: "2024-01-09", Overall: 61, RecordedAt: at(9, 23),
	}); err != nil {
		t.Fatalf("SaveWellnessSnapshot failed: %v", err)
	}
}

func TestExportJSON(t *testing.T) {
	db := setupTestDB(t)
	seedRepo(t, db)

	raw, err := ExportJSON(db)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("exported JSON is invalid: %v", err)
	}
	if data.Version != ExportVersion || data.Tool != "mood" {
		t.Errorf("header = %s/%s, want %s/mood", data.Version, data.Tool, ExportVersion)
	}
	if len(data.Moods) != 2 || len(data.Journals) != 2 || len(data.Sessions) != 1 || len(data.WellnessHistory) != 1 {
		t.Errorf("unexpected counts: %d moods, %d journals, %d sessions, %d snapshots",
			len(data.Moods), len(data.Journals), len(data.Sessions), len(data.WellnessHistory))
	}
	if !strings.Contains(string(raw), `"mindfulness_sessions"`) {
		t.Error("expected mindfulness_sessions key in JSON export")
	}
}

func TestExportYAML(t *testing.T) {
	store := setupTestMarkdownStore(t)
	seedRepo(t, store)

	raw, err := ExportYAML(store)
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}

	var data ExportData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		t.Fatalf("exported YAML is invalid: %v", err)
	}
	if len(data.Moods) != 2 {
		t.Fatalf("expected 2 moods, got %d", len(data.Moods))
	}
	if data.Moods[0].Mood != models.MoodSad {
		t.Errorf("expected newest mood first, got %s", data.Moods[0].Mood)
	}
}

func TestImportJSONRoundTrip(t *testing.T) {
	src := setupTestDB(t)
	seedRepo(t, src)

	raw, err := ExportJSON(src)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	dst := setupTestMarkdownStore(t)
	data, err := ImportJSON(dst, raw)
	if err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}
	if len(data.Moods) != 2 {
		t.Errorf("expected 2 imported moods, got %d", len(data.Moods))
	}

	moods, _ := dst.ListMoods(0)
	if len(moods) != 2 {
		t.Fatalf("expected 2 moods in destination, got %d", len(moods))
	}
	if moods[0].SleepHours == nil || *moods[0].SleepHours != 5 {
		t.Errorf("sleep hours lost in import: %v", moods[0].SleepHours)
	}
	history, _ := dst.ListWellnessHistory(0)
	if len(history) != 1 || history[0].Overall != 61 {
		t.Errorf("wellness history not imported: %+v", history)
	}
}

func TestImportYAMLRoundTrip(t *testing.T) {
	src := setupTestMarkdownStore(t)
	seedRepo(t, src)

	raw, err := ExportYAML(src)
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}

	dst := setupTestDB(t)
	if _, err := ImportYAML(dst, raw); err != nil {
		t.Fatalf("ImportYAML failed: %v", err)
	}

	journals, _ := dst.ListJournals(nil, 0)
	if len(journals) != 2 {
		t.Fatalf("expected 2 journals, got %d", len(journals))
	}
	if journals[0].Title == nil || *journals[0].Title != "Rough one" {
		t.Errorf("journal title lost in import: %v", journals[0].Title)
	}
}

func TestImportJSONInvalid(t *testing.T) {
	db := setupTestDB(t)
	if _, err := ImportJSON(db, []byte("{not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestExportMarkdown(t *testing.T) {
	db := setupTestDB(t)
	seedRepo(t, db)

	out, err := ExportMarkdown(db, nil, time.UTC)
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}

	for _, want := range []string{
		"# Mood Export",
		"## Moods",
		"| 2024-01-09 21:00 | sad | 3 | work |  |",
		`park \| picnic`,
		"## Journal",
		"### 2024-01-09 22:00 - Rough one",
		"## Gratitude",
		"## Mindfulness",
		"| 2024-01-09 07:00 | meditation | 10 min |  |",
		"## Wellness History",
		"| 2024-01-09 | 61 |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown export missing %q", want)
		}
	}
}

func TestExportMarkdownSince(t *testing.T) {
	db := setupTestDB(t)
	seedRepo(t, db)

	since := at(9, 0)
	out, err := ExportMarkdown(db, &since, time.UTC)
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}
	if strings.Contains(out, "happy") {
		t.Error("expected entries before since to be excluded")
	}
	if strings.Contains(out, "## Gratitude") {
		t.Error("expected gratitude section to be omitted when empty")
	}
	if !strings.Contains(out, "sad") {
		t.Error("expected entries after since to be included")
	}
}
