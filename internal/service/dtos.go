package service

import (
	"github.com/godilite/interview-coach/internal/chat"
	"github.com/godilite/interview-coach/internal/scores"
)

// Profile is what the dashboard shows for a user.
type Profile struct {
	Stats        Stats    `json:"stats"`
	AverageScore int      `json:"averageScore"`
	Achievements []string `json:"achievements"`
}

type TurnRequest struct {
	UserID        string
	Message       string
	History       []chat.Message
	QuestionCount int
	InterviewType string
	DevField      string
}

// TurnResult is one interviewer reply. Scores is set only when the turn
// carried a rating.
type TurnResult struct {
	Reply         string
	Rating        string
	History       []chat.Message
	QuestionCount int
	Scores        *scores.ScoreSet
	Passed        bool
	StatsSaved    bool
}

type RecordResult struct {
	Stats  Stats `json:"stats"`
	Passed bool  `json:"passed"`
}
