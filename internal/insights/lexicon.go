// ABOUTME: Trigger keyword lexicon mapping categories to lowercase substrings.
// ABOUTME: Ships a default table and parses replacements from YAML.
package insights

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lexicon maps a trigger category to the substrings that signal it.
type Lexicon map[string][]string

// DefaultLexicon returns the built-in English trigger vocabulary.
func DefaultLexicon() Lexicon {
	return Lexicon{
		"stress":        {"stress", "stressed", "pressure", "overwhelmed", "anxious", "worry"},
		"work":          {"work", "job", "boss", "deadline", "meeting", "office", "project"},
		"relationships": {"partner", "relationship", "boyfriend", "girlfriend", "husband", "wife", "argument", "fight"},
		"health":        {"sick", "pain", "tired", "exhausted", "headache", "doctor"},
		"money":         {"money", "bills", "debt", "rent", "expensive", "budget", "financial"},
		"social":        {"lonely", "alone", "isolated", "party", "friends", "people"},
		"change":        {"change", "moving", "transition", "uncertain", "different"},
	}
}

// ParseLexicon reads a YAML mapping of category to keyword list.
// Categories and keywords are lowercased; empty entries are dropped.
func ParseLexicon(data []byte) (Lexicon, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}

	lex := make(Lexicon, len(raw))
	for category, words := range raw {
		category = strings.ToLower(strings.TrimSpace(category))
		if category == "" {
			continue
		}
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w != "" {
				lex[category] = append(lex[category], w)
			}
		}
	}
	if len(lex) == 0 {
		return nil, fmt.Errorf("parse lexicon: no categories defined")
	}
	return lex, nil
}

// Categories returns the category names in sorted order.
func (l Lexicon) Categories() []string {
	out := make([]string, 0, len(l))
	for c := range l {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Match returns every category with a keyword contained in text, sorted.
func (l Lexicon) Match(text string) []string {
	lower := strings.ToLower(text)
	var hits []string
	for _, c := range l.Categories() {
		for _, kw := range l[c] {
			if kw != "" && strings.Contains(lower, kw) {
				hits = append(hits, c)
				break
			}
		}
	}
	return hits
}
