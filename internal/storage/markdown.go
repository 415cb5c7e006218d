// ABOUTME: Core MarkdownStore struct and helpers for file-based mood data storage.
// ABOUTME: Provides constructor, path helpers, and generic walk/find over entry files.

package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// MarkdownStore provides file-based storage for mood data using markdown files.
type MarkdownStore struct {
	dataDir string
}

// Compile-time check that MarkdownStore implements Repository.
var _ Repository = (*MarkdownStore)(nil)

// NewMarkdownStore creates a new markdown-backed store rooted at dataDir.
func NewMarkdownStore(dataDir string) (*MarkdownStore, error) {
	if err := os.MkdirAll(dataDir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &MarkdownStore{dataDir: dataDir}, nil
}

// Close releases resources. For MarkdownStore this is a no-op.
func (s *MarkdownStore) Close() error {
	return nil
}

func (s *MarkdownStore) moodsDir() string { return filepath.Join(s.dataDir, "moods") }
func (s *MarkdownStore) journalsDir() string { return filepath.Join(s.dataDir, "journal") }
func (s *MarkdownStore) sessionsDir() string { return filepath.Join(s.dataDir, "mindfulness") }
func (s *MarkdownStore) historyPath() string { return filepath.Join(s.dataDir, "wellness-history.yaml") }

// datedPath builds <dir>/YYYY/MM/YYYY-MM-DD-<slug>-<id_prefix>.md.
func datedPath(dir string, at time.Time, slug string, id uuid.UUID) string {
	at = at.UTC()
	return filepath.Join(dir, at.Format("2006"), at.Format("01"),
		fmt.Sprintf("%s-%s-%s.md", at.Format("2006-01-02"), slugify(slug), id.String()[:8]))
}

// readFrontmatterFile reads path and decodes its header into fm, returning the trimmed body.
func readFrontmatterFile(path string, fm interface{}) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	header, body := parseFrontmatter(string(data))
	if header == "" {
		return "", fmt.Errorf("no frontmatter in %s", path)
	}
	if err := yaml.Unmarshal([]byte(header), fm); err != nil {
		return "", fmt.Errorf("parse frontmatter in %s: %w", path, err)
	}
	return strings.TrimSpace(body), nil
}

// writeFrontmatterFile renders fm with body and writes it atomically.
func writeFrontmatterFile(path string, fm interface{}, body string) error {
	if body != "" {
		body = "\n" + body + "\n"
	}
	content, err := renderFrontmatter(fm, body)
	if err != nil {
		return err
	}
	return atomicWrite(path, []byte(content))
}

// walkEntries reads every .md file under dir and calls fn for each decoded entry.
func walkEntries[T any](dir string, read func(path string) (T, error), fn func(path string, v T) error) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}

	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}

		v, err := read(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		return fn(path, v)
	})
}

// findEntry locates the single entry under dir whose ID matches idOrPrefix.
func findEntry[T any](dir, idOrPrefix string, read func(path string) (T, error), idOf func(T) uuid.UUID) (string, T, error) {
	var zero T
	if idOrPrefix == "" {
		return "", zero, fmt.Errorf("not found: empty id")
	}
	full := isFullUUID(idOrPrefix)

	var foundPath string
	var found T
	matches := 0

	err := walkEntries(dir, read, func(path string, v T) error {
		id := idOf(v).String()
		switch {
		case full && id == idOrPrefix:
			foundPath, found, matches = path, v, 1
			return filepath.SkipAll
		case !full && strings.HasPrefix(id, idOrPrefix):
			foundPath, found = path, v
			matches++
		}
		return nil
	})
	if err != nil {
		return "", zero, err
	}

	if matches == 0 {
		return "", zero, fmt.Errorf("not found: %s", idOrPrefix)
	}
	if matches > 1 {
		return "", zero, fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}
	return foundPath, found, nil
}

// collect walks dir into a slice sorted newest-first and trimmed to limit.
func collect[T any](dir string, read func(path string) (T, error), keep func(T) bool, at func(T) time.Time, limit int) ([]T, error) {
	var out []T
	err := walkEntries(dir, read, func(_ string, v T) error {
		if keep == nil || keep(v) {
			out = append(out, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		return at(out[i]).After(at(out[j]))
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// removeEntry deletes the file holding the entry matching idOrPrefix.
func removeEntry[T any](dir, idOrPrefix string, read func(path string) (T, error), idOf func(T) uuid.UUID) error {
	path, _, err := findEntry(dir, idOrPrefix, read, idOf)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

// GetAllData retrieves all data for export.
func (s *MarkdownStore) GetAllData() (*ExportData, error) {
	return collectExportData(s)
}

// ImportData imports data from an export format.
func (s *MarkdownStore) ImportData(data *ExportData) error {
	return importExportData(s, data)
}
