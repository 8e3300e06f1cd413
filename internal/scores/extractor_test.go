package scores

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		expected ScoreSet
	}{
		{
			name:     "all three labelled",
			text:     "Technical Skills: 82%\nCommunication Skills: 74%\nOverall Score: 79%",
			expected: ScoreSet{Overall: 79, Technical: 82, Communication: 74},
		},
		{
			name:     "no recognizable pattern",
			text:     "Thanks for your time, that was a great conversation.",
			expected: Defaults,
		},
		{
			name:     "empty text",
			text:     "",
			expected: Defaults,
		},
		{
			name:     "your score is form",
			text:     "Your score is 85%. Technical: 90% and Communication: 80%.",
			expected: ScoreSet{Overall: 85, Technical: 90, Communication: 80},
		},
		{
			name:     "case insensitive",
			text:     "OVERALL SCORE: 55%\ntechnical skills: 40%\ncommunication skills:61%",
			expected: ScoreSet{Overall: 55, Technical: 40, Communication: 61},
		},
		{
			name:     "score suffix labels",
			text:     "Technical Score: 77%\nCommunication Score: 66%\nTotal Score: 71%",
			expected: ScoreSet{Overall: 71, Technical: 77, Communication: 66},
		},
		{
			name:     "only overall present",
			text:     "Overall: 92%",
			expected: ScoreSet{Overall: 92, Technical: Defaults.Technical, Communication: Defaults.Communication},
		},
		{
			name:     "first pattern wins over later ones",
			text:     "Total Score: 10%\nOverall Score: 90%",
			expected: ScoreSet{Overall: 90, Technical: Defaults.Technical, Communication: Defaults.Communication},
		},
		{
			name:     "values above 100 are clamped",
			text:     "Overall Score: 150%\nTechnical Skills: 101%",
			expected: ScoreSet{Overall: 100, Technical: 100, Communication: Defaults.Communication},
		},
		{
			name:     "overflowing digits fall back to default",
			text:     "Overall Score: 999999999999999999999999%",
			expected: Defaults,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Extract(tc.text))
		})
	}
}

func TestWithDefaults(t *testing.T) {
	e := NewPatternExtractor(WithDefaults(ScoreSet{Overall: 70, Technical: 60, Communication: 70}))

	got := e.Extract("Technical Skills: 88%")

	assert.Equal(t, ScoreSet{Overall: 70, Technical: 88, Communication: 70}, got)
}

func TestWithDefaultsClamps(t *testing.T) {
	e := NewPatternExtractor(WithDefaults(ScoreSet{Overall: 120, Technical: -5, Communication: 50}))

	assert.Equal(t, ScoreSet{Overall: 100, Technical: 0, Communication: 50}, e.Extract(""))
}

func TestPassed(t *testing.T) {
	assert.True(t, ScoreSet{Overall: 70}.Passed())
	assert.True(t, ScoreSet{Overall: 100}.Passed())
	assert.False(t, ScoreSet{Overall: 69}.Passed())
	assert.False(t, Defaults.Passed())
}
