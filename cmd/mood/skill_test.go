// ABOUTME: Tests for the install-skill command.
// ABOUTME: Validates skill installation, confirmation handling, and embedded content.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestSkillFSReadEmbeddedContent verifies the embedded filesystem can read
// the SKILL.md file correctly.
func TestSkillFSReadEmbeddedContent(t *testing.T) {
	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("Failed to read embedded skill/SKILL.md: %v", err)
	}

	contentStr := string(content)

	if !strings.HasPrefix(contentStr, "---") {
		t.Error("Expected SKILL.md to start with YAML frontmatter (---)")
	}
	if !strings.Contains(contentStr, "name: mood") {
		t.Error("Expected frontmatter to contain 'name: mood'")
	}
	if !strings.Contains(contentStr, "description:") {
		t.Error("Expected frontmatter to contain 'description:'")
	}
}

// TestSkillEmbeddedContentReferencesTools verifies every MCP tool is documented.
func TestSkillEmbeddedContentReferencesTools(t *testing.T) {
	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("Failed to read embedded skill: %v", err)
	}

	expectedTools := []string{
		"mcp__mood__log_mood",
		"mcp__mood__list_moods",
		"mcp__mood__delete_mood",
		"mcp__mood__add_journal",
		"mcp__mood__list_journals",
		"mcp__mood__delete_journal",
		"mcp__mood__add_mindfulness",
		"mcp__mood__list_mindfulness",
		"mcp__mood__get_streak",
		"mcp__mood__get_correlations",
		"mcp__mood__get_triggers",
		"mcp__mood__get_predictions",
		"mcp__mood__get_wellness_score",
		"mcp__mood__get_wellness_history",
	}

	contentStr := string(content)
	for _, tool := range expectedTools {
		if !strings.Contains(contentStr, tool) {
			t.Errorf("Expected embedded SKILL.md to reference %q", tool)
		}
	}

	for _, mood := range []string{"ecstatic", "happy", "neutral", "sad", "angry"} {
		if !strings.Contains(contentStr, mood) {
			t.Errorf("Expected embedded SKILL.md to document mood %q", mood)
		}
	}
}

func TestSkillPath(t *testing.T) {
	got := skillPath("/home/someone")
	want := filepath.Join("/home/someone", ".claude", "skills", "mood", "SKILL.md")
	if got != want {
		t.Errorf("skillPath = %q, want %q", got, want)
	}
}

func TestInstallSkillFunction(t *testing.T) {
	tmpHome := t.TempDir()

	skillSkipConfirm = true
	defer func() { skillSkipConfirm = false }()

	if err := installSkill(tmpHome, strings.NewReader("")); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}

	path := skillPath(tmpHome)
	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected skill file to be created: %v", err)
	}

	embedded, _ := skillFS.ReadFile("skill/SKILL.md")
	if string(written) != string(embedded) {
		t.Error("Installed skill does not match embedded content")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat skill file: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected file mode 0600, got %v", info.Mode().Perm())
	}
}

func TestInstallSkillOverwrite(t *testing.T) {
	tmpHome := t.TempDir()

	path := skillPath(tmpHome)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatalf("Failed to create skill directory: %v", err)
	}
	if err := os.WriteFile(path, []byte("# Old Skill\nstale content"), 0600); err != nil {
		t.Fatalf("Failed to write old skill file: %v", err)
	}

	skillSkipConfirm = true
	defer func() { skillSkipConfirm = false }()

	if err := installSkill(tmpHome, strings.NewReader("")); err != nil {
		t.Fatalf("installSkill overwrite failed: %v", err)
	}

	content, _ := os.ReadFile(path)
	if strings.Contains(string(content), "stale content") {
		t.Error("Expected skill file to be overwritten")
	}
}

func TestInstallSkillConfirmation(t *testing.T) {
	tests := []struct {
		name      string
		answer    string
		installed bool
	}{
		{"yes", "y\n", true},
		{"full yes", "YES\n", true},
		{"no", "n\n", false},
		{"empty", "\n", false},
		{"eof", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpHome := t.TempDir()
			skillSkipConfirm = false

			if err := installSkill(tmpHome, strings.NewReader(tt.answer)); err != nil {
				t.Fatalf("installSkill failed: %v", err)
			}

			_, err := os.Stat(skillPath(tmpHome))
			if tt.installed && err != nil {
				t.Errorf("Expected skill to be installed: %v", err)
			}
			if !tt.installed && err == nil {
				t.Error("Expected installation to be canceled")
			}
		})
	}
}

// TestSkillSkipConfirmFlag verifies the flag exists and has correct defaults.
func TestSkillSkipConfirmFlag(t *testing.T) {
	flag := installSkillCmd.Flags().Lookup("yes")
	if flag == nil {
		t.Fatal("Expected --yes flag to be defined")
	}
	if flag.Shorthand != "y" {
		t.Errorf("Expected shorthand 'y', got %q", flag.Shorthand)
	}
	if flag.DefValue != "false" {
		t.Errorf("Expected default value 'false', got %q", flag.DefValue)
	}
}
