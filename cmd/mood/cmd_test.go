// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Tests parseTime, truncate, padRight, command flags, and end-to-end commands against a temp store.
package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/harperreed/mood/internal/models"
	"github.com/harperreed/mood/internal/storage"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "date and time with space",
			input:   "2025-01-31 08:30",
			wantErr: false,
		},
		{
			name:    "date and time with T",
			input:   "2025-01-31T08:30",
			wantErr: false,
		},
		{
			name:    "date only",
			input:   "2025-01-31",
			wantErr: false,
		},
		{
			name:    "RFC3339",
			input:   "2025-01-31T08:30:00Z",
			wantErr: false,
		},
		{
			name:    "RFC3339 with offset",
			input:   "2025-01-31T08:30:00+05:00",
			wantErr: false,
		},
		{
			name:    "invalid format",
			input:   "31-01-2025",
			wantErr: true,
		},
		{
			name:    "invalid random string",
			input:   "not a date",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseTime(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseTime(%q) expected error, got nil", tt.input)
				}
				return
			}

			if err != nil {
				t.Errorf("parseTime(%q) unexpected error: %v", tt.input, err)
				return
			}

			if result.IsZero() {
				t.Errorf("parseTime(%q) returned zero time", tt.input)
			}
		})
	}
}

func TestParseTimeValues(t *testing.T) {
	result, err := parseTime("2025-06-15")
	if err != nil {
		t.Fatalf("parseTime failed: %v", err)
	}

	if result.Year() != 2025 || result.Month() != time.June || result.Day() != 15 {
		t.Errorf("parseTime returned wrong date: got %v", result)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short string no truncation", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"needs truncation", "hello world this is a long string", 10, "hello w..."},
		{"truncate at boundary", "abcdefghij", 6, "abc..."},
		{"empty string", "", 10, ""},
		{"very short maxLen", "hello", 3, "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input  string
		length int
		want   string
	}{
		{"abc", 6, "abc   "},
		{"abcdef", 6, "abcdef"},
		{"abcdefgh", 6, "abcdefgh"},
		{"", 3, "   "},
	}

	for _, tt := range tests {
		if got := padRight(tt.input, tt.length); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
		}
	}
}

func TestCapitalize(t *testing.T) {
	if got := capitalize("sleep"); got != "Sleep" {
		t.Errorf("capitalize(sleep) = %q", got)
	}
	if got := capitalize("factor:work"); got != "Factor:work" {
		t.Errorf("capitalize(factor:work) = %q", got)
	}
	if got := capitalize(""); got != "" {
		t.Errorf("capitalize(\"\") = %q", got)
	}
}

func TestDayCount(t *testing.T) {
	if got := dayCount(1); got != "1 day" {
		t.Errorf("dayCount(1) = %q", got)
	}
	if got := dayCount(0); got != "0 days" {
		t.Errorf("dayCount(0) = %q", got)
	}
	if got := dayCount(12); got != "12 days" {
		t.Errorf("dayCount(12) = %q", got)
	}
}

func TestRootCmdFlags(t *testing.T) {
	if rootCmd.Use != "mood" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "mood")
	}

	if rootCmd.Short == "" {
		t.Error("Expected rootCmd.Short to be non-empty")
	}
	if rootCmd.Long == "" {
		t.Error("Expected rootCmd.Long to be non-empty")
	}
}

func TestLogCmdFlags(t *testing.T) {
	for _, name := range []string{"at", "note", "factor", "weather", "temp", "humidity", "sleep", "exercise"} {
		if logCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected --%s flag on log command", name)
		}
	}

	if f := logCmd.Flags().Lookup("factor"); f != nil && f.Shorthand != "f" {
		t.Errorf("Expected --factor shorthand f, got %q", f.Shorthand)
	}
}

func TestListCmdFlags(t *testing.T) {
	limitFlag := listCmd.Flags().Lookup("limit")
	if limitFlag == nil {
		t.Fatal("Expected --limit flag on list command")
	}

	if limitFlag.DefValue != "20" {
		t.Errorf("Expected default limit 20, got %s", limitFlag.DefValue)
	}
}

func TestCommandAliases(t *testing.T) {
	tests := []struct {
		cmd     *cobra.Command
		aliases []string
	}{
		{logCmd, []string{"add", "a"}},
		{listCmd, []string{"ls", "l"}},
		{deleteCmd, []string{"del", "rm"}},
		{journalCmd, []string{"j"}},
		{mindfulCmd, []string{"m"}},
		{insightsCmd, []string{"i"}},
	}

	for _, tt := range tests {
		have := make(map[string]bool)
		for _, a := range tt.cmd.Aliases {
			have[a] = true
		}
		for _, a := range tt.aliases {
			if !have[a] {
				t.Errorf("Expected %s to have alias %q", tt.cmd.Name(), a)
			}
		}
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	tests := []struct {
		parent *cobra.Command
		want   []string
	}{
		{rootCmd, []string{"log", "list", "delete", "journal", "mindful", "insights", "export", "import", "migrate", "mcp", "install-skill"}},
		{journalCmd, []string{"add", "list", "show", "delete"}},
		{mindfulCmd, []string{"add", "list", "delete"}},
		{insightsCmd, []string{"streak", "correlate", "triggers", "predict", "warnings", "score", "history"}},
	}

	for _, tt := range tests {
		names := make(map[string]bool)
		for _, c := range tt.parent.Commands() {
			names[c.Name()] = true
		}
		for _, want := range tt.want {
			if !names[want] {
				t.Errorf("Expected %s to have subcommand %q", tt.parent.Name(), want)
			}
		}
	}
}

func TestExportCmdValidArgs(t *testing.T) {
	want := map[string]bool{"json": true, "yaml": true, "markdown": true}
	if len(exportCmd.ValidArgs) != len(want) {
		t.Fatalf("Expected %d valid args, got %v", len(want), exportCmd.ValidArgs)
	}
	for _, a := range exportCmd.ValidArgs {
		if !want[a] {
			t.Errorf("Unexpected export format %q", a)
		}
	}
}

// resetFlags restores every flag in the command tree to its default so
// state from a previous Execute does not leak into the next one.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// setupTestCLI sets up a test database for CLI testing.
// It sets XDG_DATA_HOME and XDG_CONFIG_HOME to redirect storage and config to a temp directory.
func setupTestCLI(t *testing.T) *storage.DB {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "mood-cli-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	t.Setenv("XDG_DATA_HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("MOOD_TIMEZONE", "UTC")
	t.Setenv("MOOD_BACKEND", "")
	t.Setenv("MOOD_DATA_DIR", "")

	// Pre-open the database to create the schema
	dbPath := filepath.Join(tmpDir, "mood", "mood.db")
	testDB, err := storage.Open(dbPath)
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		t.Fatalf("Failed to open database: %v", err)
	}

	resetFlags(rootCmd)

	t.Cleanup(func() {
		_ = closeRuntime()
		_ = testDB.Close()
		_ = os.RemoveAll(tmpDir)
		resetFlags(rootCmd)
	})

	return testDB
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	resetFlags(rootCmd)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func seedMood(t *testing.T, db *storage.DB, label models.MoodLabel, intensity int, at time.Time, factors ...string) *models.MoodEntry {
	t.Helper()
	m := models.NewMoodEntry(label, intensity).WithFactors(factors...).WithRecordedAt(at)
	if err := db.CreateMood(m); err != nil {
		t.Fatalf("CreateMood failed: %v", err)
	}
	return m
}

func TestLogCmdWithDB(t *testing.T) {
	testDB := setupTestCLI(t)

	if err := run(t, "log", "happy", "7"); err != nil {
		t.Fatalf("log command failed: %v", err)
	}

	moods, err := testDB.ListMoods(0)
	if err != nil {
		t.Fatalf("ListMoods failed: %v", err)
	}
	if len(moods) != 1 {
		t.Fatalf("Expected 1 mood, got %d", len(moods))
	}
	if moods[0].Mood != models.MoodHappy || moods[0].Intensity != 7 {
		t.Errorf("Expected happy 7, got %s %d", moods[0].Mood, moods[0].Intensity)
	}
	if moods[0].SleepHours != nil || moods[0].Exercise != nil || moods[0].Weather != nil {
		t.Error("Expected optional context to be unset")
	}
}

func TestLogCmdWithContext(t *testing.T) {
	testDB := setupTestCLI(t)

	err := run(t, "log", "Sad", "3",
		"-f", "work", "-f", "deadline",
		"--note", "long day",
		"--weather", "rainy", "--temp", "12.5",
		"--sleep", "5.5",
		"--exercise=false",
		"--at", "2024-03-05 21:15")
	if err != nil {
		t.Fatalf("log command failed: %v", err)
	}

	moods, err := testDB.ListMoods(0)
	if err != nil {
		t.Fatalf("ListMoods failed: %v", err)
	}
	if len(moods) != 1 {
		t.Fatalf("Expected 1 mood, got %d", len(moods))
	}
	m := moods[0]

	if m.Mood != models.MoodSad {
		t.Errorf("Expected sad, got %s", m.Mood)
	}
	if strings.Join(m.Factors, ",") != "work,deadline" {
		t.Errorf("Expected factors work,deadline, got %v", m.Factors)
	}
	if m.Note == nil || *m.Note != "long day" {
		t.Error("Note not set correctly")
	}
	if m.Weather == nil || m.Weather.Condition != "rainy" || m.Weather.TemperatureC == nil || *m.Weather.TemperatureC != 12.5 {
		t.Errorf("Weather not set correctly: %+v", m.Weather)
	}
	if m.Weather != nil && m.Weather.Humidity != nil {
		t.Error("Expected humidity to be unset")
	}
	if m.SleepHours == nil || *m.SleepHours != 5.5 {
		t.Error("Sleep not set correctly")
	}
	if m.Exercise == nil || *m.Exercise {
		t.Error("Expected exercise to be recorded as false")
	}
	want := time.Date(2024, 3, 5, 21, 15, 0, 0, time.UTC)
	if !m.RecordedAt.Equal(want) {
		t.Errorf("Expected recorded_at %v, got %v", want, m.RecordedAt)
	}
}

func TestLogCmdFlagsDoNotLeak(t *testing.T) {
	testDB := setupTestCLI(t)

	if err := run(t, "log", "happy", "8", "--sleep", "8", "-f", "friends"); err != nil {
		t.Fatalf("first log failed: %v", err)
	}
	if err := run(t, "log", "neutral", "5"); err != nil {
		t.Fatalf("second log failed: %v", err)
	}

	moods, err := testDB.ListMoods(0)
	if err != nil {
		t.Fatalf("ListMoods failed: %v", err)
	}
	for _, m := range moods {
		if m.Mood == models.MoodNeutral {
			if m.SleepHours != nil {
				t.Error("Expected sleep from previous run not to leak")
			}
			if len(m.Factors) != 0 {
				t.Errorf("Expected no factors, got %v", m.Factors)
			}
		}
	}
}

func TestLogCmdInvalidInput(t *testing.T) {
	setupTestCLI(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown mood", []string{"log", "elated", "5"}},
		{"intensity too high", []string{"log", "happy", "11"}},
		{"intensity zero", []string{"log", "happy", "0"}},
		{"intensity not a number", []string{"log", "happy", "lots"}},
		{"bad timestamp", []string{"log", "happy", "5", "--at", "yesterday"}},
		{"negative sleep", []string{"log", "happy", "5", "--sleep", "-2"}},
		{"missing intensity", []string{"log", "happy"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(t, tt.args...); err == nil {
				t.Errorf("Expected error for %v", tt.args)
			}
		})
	}
}

func TestListCmdWithDB(t *testing.T) {
	testDB := setupTestCLI(t)

	note := "picnic in the park with everyone from the old office"
	m := models.NewMoodEntry(models.MoodHappy, 8).WithNote(note)
	if err := testDB.CreateMood(m); err != nil {
		t.Fatalf("CreateMood failed: %v", err)
	}

	if err := run(t, "list"); err != nil {
		t.Errorf("list command failed: %v", err)
	}
	if err := run(t, "ls", "-n", "1"); err != nil {
		t.Errorf("list with limit failed: %v", err)
	}
}

func TestListCmdEmptyDB(t *testing.T) {
	setupTestCLI(t)

	if err := run(t, "list"); err != nil {
		t.Errorf("list command on empty db failed: %v", err)
	}
}

func TestDeleteCmdWithDB(t *testing.T) {
	testDB := setupTestCLI(t)

	m := seedMood(t, testDB, models.MoodAngry, 6, time.Now())

	if err := run(t, "delete", m.ID.String()[:8]); err != nil {
		t.Fatalf("delete command failed: %v", err)
	}

	if _, err := testDB.GetMood(m.ID.String()); err == nil {
		t.Error("Expected mood to be deleted")
	}
}

func TestDeleteCmdNotFound(t *testing.T) {
	setupTestCLI(t)

	if err := run(t, "delete", "deadbeef"); err == nil {
		t.Error("Expected error deleting a missing mood")
	}
}

func TestJournalAddAndList(t *testing.T) {
	testDB := setupTestCLI(t)

	if err := run(t, "journal", "add", "Work", "was", "stressful", "today", "--title", "Monday"); err != nil {
		t.Fatalf("journal add failed: %v", err)
	}
	if err := run(t, "j", "add", "-g", "Coffee with Sam"); err != nil {
		t.Fatalf("gratitude add failed: %v", err)
	}

	journals, err := testDB.ListJournals(nil, 0)
	if err != nil {
		t.Fatalf("ListJournals failed: %v", err)
	}
	if len(journals) != 2 {
		t.Fatalf("Expected 2 journal entries, got %d", len(journals))
	}

	kinds := map[models.JournalKind]*models.JournalEntry{}
	for _, j := range journals {
		kinds[j.Kind] = j
	}
	reflection := kinds[models.JournalReflection]
	if reflection == nil || reflection.Content != "Work was stressful today" {
		t.Fatalf("Expected reflection content to be joined from args, got %+v", reflection)
	}
	if reflection.Title == nil || *reflection.Title != "Monday" {
		t.Error("Expected title Monday")
	}
	if kinds[models.JournalGratitude] == nil {
		t.Error("Expected a gratitude entry")
	}

	if err := run(t, "journal", "list", "--kind", "gratitude"); err != nil {
		t.Errorf("journal list failed: %v", err)
	}
	if err := run(t, "journal", "list", "--kind", "dream"); err == nil {
		t.Error("Expected error for unknown journal kind")
	}
	if err := run(t, "journal", "show", reflection.ID.String()[:8]); err != nil {
		t.Errorf("journal show failed: %v", err)
	}
}

func TestJournalDelete(t *testing.T) {
	testDB := setupTestCLI(t)

	j := models.NewJournalEntry(models.JournalReflection, "Tired")
	if err := testDB.CreateJournal(j); err != nil {
		t.Fatalf("CreateJournal failed: %v", err)
	}

	if err := run(t, "journal", "rm", j.ID.String()[:8]); err != nil {
		t.Fatalf("journal delete failed: %v", err)
	}
	if _, err := testDB.GetJournal(j.ID.String()); err == nil {
		t.Error("Expected journal entry to be deleted")
	}
	if err := run(t, "journal", "show", j.ID.String()[:8]); err == nil {
		t.Error("Expected error showing a deleted entry")
	}
}

func TestMindfulAddListDelete(t *testing.T) {
	testDB := setupTestCLI(t)

	if err := run(t, "mindful", "add", "Breathing", "5", "--notes", "box breathing"); err != nil {
		t.Fatalf("mindful add failed: %v", err)
	}

	sessions, err := testDB.ListSessions(0)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("Expected 1 session, got %d", len(sessions))
	}
	s := sessions[0]
	if s.Practice != "breathing" || s.DurationMinutes != 5 {
		t.Errorf("Expected breathing 5 min, got %s %d", s.Practice, s.DurationMinutes)
	}
	if s.Notes == nil || *s.Notes != "box breathing" {
		t.Error("Notes not set correctly")
	}

	if err := run(t, "m", "list"); err != nil {
		t.Errorf("mindful list failed: %v", err)
	}
	if err := run(t, "mindful", "delete", s.ID.String()[:8]); err != nil {
		t.Fatalf("mindful delete failed: %v", err)
	}

	sessions, err = testDB.ListSessions(0)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("Expected session to be deleted, got %d", len(sessions))
	}
}

func TestMindfulAddInvalidMinutes(t *testing.T) {
	setupTestCLI(t)

	if err := run(t, "mindful", "add", "meditation", "ten"); err == nil {
		t.Error("Expected error for non-numeric minutes")
	}
}

func TestInsightsCommandsEmptyDB(t *testing.T) {
	setupTestCLI(t)

	for _, args := range [][]string{
		{"insights", "streak"},
		{"insights", "correlate"},
		{"insights", "triggers"},
		{"insights", "predict"},
		{"insights", "warnings"},
		{"insights", "score"},
		{"insights", "history"},
	} {
		if err := run(t, args...); err != nil {
			t.Errorf("%v failed on empty db: %v", args, err)
		}
	}
}

func TestInsightsCommandsWithData(t *testing.T) {
	testDB := setupTestCLI(t)

	now := time.Now()
	for i := 0; i < 10; i++ {
		intensity := 7
		factors := []string{"friends"}
		if i%3 == 0 {
			intensity = 3
			factors = []string{"work", "deadline"}
		}
		seedMood(t, testDB, models.MoodNeutral, intensity, now.AddDate(0, 0, -i), factors...)
	}
	j := models.NewJournalEntry(models.JournalReflection, "Work deadline stress again")
	if err := testDB.CreateJournal(j); err != nil {
		t.Fatalf("CreateJournal failed: %v", err)
	}

	for _, args := range [][]string{
		{"insights", "streak"},
		{"insights", "correlate"},
		{"insights", "correlate", "factor"},
		{"insights", "correlate", "--factor", "work"},
		{"insights", "triggers"},
		{"insights", "predict"},
		{"insights", "warnings"},
		{"insights", "score"},
	} {
		if err := run(t, args...); err != nil {
			t.Errorf("%v failed: %v", args, err)
		}
	}
}

func TestInsightsCorrelateUnknownDimension(t *testing.T) {
	setupTestCLI(t)

	if err := run(t, "insights", "correlate", "moon"); err == nil {
		t.Error("Expected error for unknown dimension")
	}
}

// captureOutput runs fn with stdout and color output redirected to a buffer.
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe failed: %v", err)
	}
	origStdout, origColor := os.Stdout, color.Output
	os.Stdout, color.Output = w, w
	defer func() { os.Stdout, color.Output = origStdout, origColor }()

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	runErr := fn()
	_ = w.Close()
	return <-done, runErr
}

func TestInsightsWarningsSkipsInvalidNewest(t *testing.T) {
	testDB := setupTestCLI(t)

	now := time.Now()
	for i := 1; i <= 5; i++ {
		seedMood(t, testDB, models.MoodSad, 2, now.Add(-time.Duration(i)*time.Hour))
	}
	seedMood(t, testDB, models.MoodSad, 0, now)

	out, err := captureOutput(t, func() error {
		return run(t, "insights", "warnings")
	})
	if err != nil {
		t.Fatalf("warnings failed: %v", err)
	}
	if strings.Contains(out, "No warning signs") {
		t.Errorf("Expected a warning despite an invalid newest entry, got:\n%s", out)
	}
	if !strings.Contains(out, "Persistent Low Mood") {
		t.Errorf("Expected Persistent Low Mood warning, got:\n%s", out)
	}
}

func TestInsightsTriggersDelay(t *testing.T) {
	setupTestCLI(t)

	start := time.Now()
	if err := run(t, "insights", "triggers", "--delay", "50ms"); err != nil {
		t.Fatalf("triggers with delay failed: %v", err)
	}
	if time.Since(start) < 50*time.Millisecond {
		t.Error("Expected triggers to wait for --delay")
	}
}

func TestInsightsScoreSave(t *testing.T) {
	testDB := setupTestCLI(t)

	seedMood(t, testDB, models.MoodHappy, 8, time.Now())

	if err := run(t, "insights", "score", "--save"); err != nil {
		t.Fatalf("score --save failed: %v", err)
	}
	// Saving twice on the same day keeps one snapshot.
	if err := run(t, "insights", "score", "--save"); err != nil {
		t.Fatalf("second score --save failed: %v", err)
	}

	history, err := testDB.ListWellnessHistory(0)
	if err != nil {
		t.Fatalf("ListWellnessHistory failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("Expected 1 snapshot, got %d", len(history))
	}
	if history[0].Date != time.Now().UTC().Format("2006-01-02") {
		t.Errorf("Expected snapshot for today, got %s", history[0].Date)
	}

	if err := run(t, "insights", "history", "-n", "5"); err != nil {
		t.Errorf("history failed: %v", err)
	}
}

func TestExportCmdFormats(t *testing.T) {
	testDB := setupTestCLI(t)

	seedMood(t, testDB, models.MoodHappy, 8, time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC), "friends")

	for _, format := range []string{"json", "yaml", "markdown"} {
		if err := run(t, "export", format); err != nil {
			t.Errorf("export %s failed: %v", format, err)
		}
	}
	if err := run(t, "export", "markdown", "--since", "2024-01-01"); err != nil {
		t.Errorf("export markdown --since failed: %v", err)
	}
}

func TestExportInvalidInput(t *testing.T) {
	setupTestCLI(t)

	if err := run(t, "export", "csv"); err == nil {
		t.Error("Expected error for invalid export format")
	}
	if err := run(t, "export", "markdown", "--since", "01/02/2024"); err == nil {
		t.Error("Expected error for invalid --since date")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	testDB := setupTestCLI(t)

	seedMood(t, testDB, models.MoodSad, 3, time.Date(2024, 1, 9, 21, 0, 0, 0, time.UTC), "work")
	j := models.NewJournalEntry(models.JournalGratitude, "Sunny walk")
	if err := testDB.CreateJournal(j); err != nil {
		t.Fatalf("CreateJournal failed: %v", err)
	}

	for _, ext := range []string{"json", "yaml"} {
		t.Run(ext, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), "backup."+ext)
			if err := run(t, "export", ext, "-o", file); err != nil {
				t.Fatalf("export failed: %v", err)
			}
			if _, err := os.Stat(file); err != nil {
				t.Fatalf("Expected export file to exist: %v", err)
			}

			// Importing into the same store collides on IDs.
			if err := run(t, "import", file); err == nil {
				t.Error("Expected duplicate import to fail")
			}
		})
	}

	file := filepath.Join(t.TempDir(), "backup.json")
	if err := run(t, "export", "json", "-o", file); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if err := testDB.DeleteMood(mustFirstMood(t, testDB).ID.String()); err != nil {
		t.Fatalf("DeleteMood failed: %v", err)
	}
	if err := testDB.DeleteJournal(j.ID.String()); err != nil {
		t.Fatalf("DeleteJournal failed: %v", err)
	}

	if err := run(t, "import", file); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	moods, err := testDB.ListMoods(0)
	if err != nil {
		t.Fatalf("ListMoods failed: %v", err)
	}
	if len(moods) != 1 || moods[0].Intensity != 3 {
		t.Errorf("Expected restored sad 3 mood, got %d moods", len(moods))
	}
	if _, err := testDB.GetJournal(j.ID.String()); err != nil {
		t.Errorf("Expected journal to be restored: %v", err)
	}
}

func mustFirstMood(t *testing.T, db *storage.DB) *models.MoodEntry {
	t.Helper()
	moods, err := db.ListMoods(1)
	if err != nil || len(moods) == 0 {
		t.Fatalf("Expected a mood: %v", err)
	}
	return moods[0]
}

func TestImportCmdErrors(t *testing.T) {
	setupTestCLI(t)

	if err := run(t, "import", filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := run(t, "import", bad); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestMigrateCmdToMarkdown(t *testing.T) {
	testDB := setupTestCLI(t)

	seedMood(t, testDB, models.MoodHappy, 7, time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC), "friends")
	seedMood(t, testDB, models.MoodSad, 2, time.Date(2024, 1, 9, 9, 0, 0, 0, time.UTC))
	snap := models.WellnessSnapshot{Date: "2024-01-09", Overall: 55, RecordedAt: time.Now()}
	if err := testDB.SaveWellnessSnapshot(&snap); err != nil {
		t.Fatalf("SaveWellnessSnapshot failed: %v", err)
	}

	dest := filepath.Join(t.TempDir(), "notes")

	if err := run(t, "migrate", "--to", "markdown", "--data-dir", dest, "--dry-run"); err != nil {
		t.Fatalf("migrate --dry-run failed: %v", err)
	}
	if nonEmpty, _ := storage.IsDirNonEmpty(dest); nonEmpty {
		t.Fatal("Expected dry run to leave destination untouched")
	}

	if err := run(t, "migrate", "--to", "markdown", "--data-dir", dest); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	md, err := storage.NewMarkdownStore(dest)
	if err != nil {
		t.Fatalf("NewMarkdownStore failed: %v", err)
	}
	defer func() { _ = md.Close() }()

	moods, err := md.ListMoods(0)
	if err != nil {
		t.Fatalf("ListMoods failed: %v", err)
	}
	if len(moods) != 2 {
		t.Errorf("Expected 2 migrated moods, got %d", len(moods))
	}
	history, err := md.ListWellnessHistory(0)
	if err != nil {
		t.Fatalf("ListWellnessHistory failed: %v", err)
	}
	if len(history) != 1 || history[0].Overall != 55 {
		t.Errorf("Expected migrated snapshot, got %+v", history)
	}

	// A second run refuses the now non-empty destination.
	if err := run(t, "migrate", "--to", "markdown", "--data-dir", dest); err == nil {
		t.Error("Expected error migrating into a non-empty directory")
	}
}

func TestMigrateCmdUseSwitchesBackend(t *testing.T) {
	setupTestCLI(t)

	dest := filepath.Join(t.TempDir(), "notes")
	if err := run(t, "migrate", "--to", "markdown", "--data-dir", dest, "--use"); err != nil {
		t.Fatalf("migrate --use failed: %v", err)
	}

	// The next command runs against the markdown store.
	if err := run(t, "log", "happy", "6"); err != nil {
		t.Fatalf("log after migrate failed: %v", err)
	}
	nonEmpty, err := storage.IsDirNonEmpty(filepath.Join(dest, "moods"))
	if err != nil {
		t.Fatalf("IsDirNonEmpty failed: %v", err)
	}
	if !nonEmpty {
		t.Error("Expected the new mood in the markdown store after --use")
	}
}

func TestMigrateCmdInvalidFlags(t *testing.T) {
	setupTestCLI(t)

	if err := run(t, "migrate", "--to", "postgres", "--data-dir", t.TempDir()); err == nil {
		t.Error("Expected error for unknown backend")
	}
	if err := run(t, "migrate", "--to", "markdown"); err == nil {
		t.Error("Expected error when --data-dir is missing")
	}
}

func TestUnknownTimezoneFails(t *testing.T) {
	setupTestCLI(t)
	t.Setenv("MOOD_TIMEZONE", "Mars/Olympus")

	if err := run(t, "list"); err == nil {
		t.Error("Expected error for unknown timezone")
	}
}

func TestMarkdownBackendViaEnv(t *testing.T) {
	setupTestCLI(t)
	dir := t.TempDir()
	t.Setenv("MOOD_BACKEND", "markdown")
	t.Setenv("MOOD_DATA_DIR", dir)

	if err := run(t, "log", "ecstatic", "10", "-f", "promotion"); err != nil {
		t.Fatalf("log with markdown backend failed: %v", err)
	}

	nonEmpty, err := storage.IsDirNonEmpty(filepath.Join(dir, "moods"))
	if err != nil {
		t.Fatalf("IsDirNonEmpty failed: %v", err)
	}
	if !nonEmpty {
		t.Error("Expected a mood file in the markdown store")
	}
}

func TestMcpCmdExists(t *testing.T) {
	if mcpCmd.Use != "mcp" {
		t.Errorf("mcpCmd.Use = %q, want mcp", mcpCmd.Use)
	}
	for _, tool := range []string{"log_mood", "get_wellness_score", "mood://wellness"} {
		if !strings.Contains(mcpCmd.Long, tool) {
			t.Errorf("Expected mcp help to mention %s", tool)
		}
	}
}
