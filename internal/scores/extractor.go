// Package scores turns the free-text rating produced by the interviewer chat
// into a structured ScoreSet.
package scores

import (
	"regexp"
	"strconv"
)

// PassThreshold is the minimum overall score of a passed interview.
const PassThreshold = 70

// ScoreSet holds the three percentages of one completed interview.
type ScoreSet struct {
	Overall       int `json:"overall"`
	Technical     int `json:"technical"`
	Communication int `json:"communication"`
}

// Passed reports whether the overall score clears PassThreshold.
func (s ScoreSet) Passed() bool {
	return s.Overall >= PassThreshold
}

// Defaults is used field by field when a rating does not mention a score.
var Defaults = ScoreSet{
	Overall:       68,
	Technical:     65,
	Communication: 70,
}

// Extractor parses a rating message. Implementations never fail; missing
// fields fall back to defaults.
type Extractor interface {
	Extract(text string) ScoreSet
}

// PatternExtractor matches ordered regular expressions per field and keeps
// the first hit.
type PatternExtractor struct {
	defaults      ScoreSet
	overall       []*regexp.Regexp
	technical     []*regexp.Regexp
	communication []*regexp.Regexp
}

var (
	overallPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Overall Score:\s*(\d+)%`),
		regexp.MustCompile(`(?i)Your score is (\d+)%`),
		regexp.MustCompile(`(?i)Overall:\s*(\d+)%`),
		regexp.MustCompile(`(?i)Total Score:\s*(\d+)%`),
	}
	technicalPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Technical Skills:\s*(\d+)%`),
		regexp.MustCompile(`(?i)Technical:\s*(\d+)%`),
		regexp.MustCompile(`(?i)Technical Score:\s*(\d+)%`),
	}
	communicationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Communication Skills:\s*(\d+)%`),
		regexp.MustCompile(`(?i)Communication:\s*(\d+)%`),
		regexp.MustCompile(`(?i)Communication Score:\s*(\d+)%`),
	}
)

// Option configures a PatternExtractor.
type Option func(*PatternExtractor)

// WithDefaults overrides the fallback ScoreSet.
func WithDefaults(d ScoreSet) Option {
	return func(e *PatternExtractor) {
		e.defaults = Clamp(d)
	}
}

// NewPatternExtractor returns an extractor using the built-in rating patterns.
func NewPatternExtractor(opts ...Option) *PatternExtractor {
	e := &PatternExtractor{
		defaults:      Defaults,
		overall:       overallPatterns,
		technical:     technicalPatterns,
		communication: communicationPatterns,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract implements Extractor.
func (e *PatternExtractor) Extract(text string) ScoreSet {
	return ScoreSet{
		Overall:       firstMatch(text, e.overall, e.defaults.Overall),
		Technical:     firstMatch(text, e.technical, e.defaults.Technical),
		Communication: firstMatch(text, e.communication, e.defaults.Communication),
	}
}

var defaultExtractor = NewPatternExtractor()

// Extract parses text with the default PatternExtractor.
func Extract(text string) ScoreSet {
	return defaultExtractor.Extract(text)
}

// firstMatch stops at the first pattern that matches, even when its digits
// cannot be parsed.
func firstMatch(text string, patterns []*regexp.Regexp, fallback int) int {
	for _, p := range patterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, err := strconv.Atoi(m[1])
		if err != nil {
			return fallback
		}
		return clampPercent(v)
	}
	return fallback
}

// Clamp bounds every field of s to [0,100].
func Clamp(s ScoreSet) ScoreSet {
	return ScoreSet{
		Overall:       clampPercent(s.Overall),
		Technical:     clampPercent(s.Technical),
		Communication: clampPercent(s.Communication),
	}
}

func clampPercent(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
