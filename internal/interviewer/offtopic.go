package interviewer

import (
	"regexp"
	"strings"
)

// OffTopicReply is returned verbatim for questions unrelated to the interview.
const OffTopicReply = "That's not relevant to the interview, please respond accordingly."

var offTopicPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bweather\b`),
	regexp.MustCompile(`(?i)\bjokes?\b`),
	regexp.MustCompile(`(?i)\bfavou?rite\s+(food|dish|meal|movie|film|music|song|band|colou?r)\b`),
	regexp.MustCompile(`(?i)\bdo you like\s+(pizza|food|movies|music)\b`),
	regexp.MustCompile(`(?i)\bwhat\s+time\s+is\s+it\b`),
	regexp.MustCompile(`(?i)\bwhat'?s\s+the\s+time\b`),
	regexp.MustCompile(`(?i)\bcan you sing\b|\bsing\s+(me\s+)?a\s+song\b`),
	regexp.MustCompile(`(?i)\bwhat\s+colou?r\b`),
}

// IsOffTopic reports whether message matches one of the fixed off-topic
// questions.
func IsOffTopic(message string) bool {
	message = strings.TrimSpace(message)
	if message == "" {
		return false
	}
	for _, p := range offTopicPatterns {
		if p.MatchString(message) {
			return true
		}
	}
	return false
}
