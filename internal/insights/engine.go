// ABOUTME: Behavioral pattern and wellness scoring engine entry point.
// ABOUTME: Engine binds a clock, timezone and trigger lexicon to the pure analyzers.

// Package insights derives streaks, correlations, trigger patterns,
// predictions and a composite wellness score from mood, journal and
// mindfulness entries. Every analyzer is a pure function of its inputs and
// an explicit "now"; calendar days are computed in now's location.
package insights

import (
	"errors"
	"time"

	"github.com/harperreed/mood/internal/models"
)

// ErrInsufficientData is returned when an analyzer declines to run on too little input.
var ErrInsufficientData = errors.New("not enough data")

// Engine runs the analyzers against a configurable clock and timezone.
type Engine struct {
	now     func() time.Time
	loc     *time.Location
	lexicon Lexicon
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithLocation sets the timezone that defines calendar days.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// WithLexicon replaces the default trigger lexicon.
func WithLexicon(lex Lexicon) Option {
	return func(e *Engine) {
		if len(lex) > 0 {
			e.lexicon = lex
		}
	}
}

// NewEngine creates an Engine using the system clock, local time and default lexicon.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now:     time.Now,
		loc:     time.Local,
		lexicon: DefaultLexicon(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Now returns the current time in the engine's timezone.
func (e *Engine) Now() time.Time {
	return e.now().In(e.loc)
}

// Location returns the timezone used for day bucketing.
func (e *Engine) Location() *time.Location {
	return e.loc
}

// Lexicon returns the trigger lexicon in use.
func (e *Engine) Lexicon() Lexicon {
	return e.lexicon
}

// Streak summarizes consecutive days with at least one mood entry.
func (e *Engine) Streak(moods []*models.MoodEntry) StreakSummary {
	now := e.Now()
	return Streaks(MoodDays(moods, now.Location()), now)
}

// ActivityStreak summarizes consecutive days with any kind of entry.
func (e *Engine) ActivityStreak(entries models.Entries) StreakSummary {
	now := e.Now()
	return Streaks(ActivityDays(entries, now.Location()), now)
}

// Correlate groups moods along dim and gates the result into an insight.
func (e *Engine) Correlate(moods []*models.MoodEntry, dim Dimension) CorrelationInsight {
	return AnalyzeCorrelation(moods, dim)
}

// Triggers recognizes recurring trigger patterns.
func (e *Engine) Triggers(journals []*models.JournalEntry, moods []*models.MoodEntry) ([]TriggerPattern, error) {
	return RecognizeTriggers(journals, moods, e.lexicon, e.Now())
}

// Predict runs the mood prediction heuristic.
func (e *Engine) Predict(moods []*models.MoodEntry) []Prediction {
	return Predict(moods, e.Now())
}

// EarlyWarnings scans the most recent moods for warning signs.
func (e *Engine) EarlyWarnings(moods []*models.MoodEntry) []EarlyWarning {
	return EarlyWarnings(moods)
}

// Wellness composes the weighted wellness score.
func (e *Engine) Wellness(entries models.Entries) WellnessScore {
	return ComposeWellness(entries, e.Now())
}
