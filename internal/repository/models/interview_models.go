package models

import "time"

// InterviewResult is one row of the interview results log.
type InterviewResult struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	InterviewType string    `json:"interviewType"`
	DevField      string    `json:"devField,omitempty"`
	Overall       int       `json:"overall"`
	Technical     int       `json:"technical"`
	Communication int       `json:"communication"`
	Passed        bool      `json:"passed"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TypeBreakdown aggregates the results log per interview type.
type TypeBreakdown struct {
	InterviewType        string
	TotalInterviews      int64
	PassedInterviews     int64
	AverageOverall       float64
	AverageTechnical     float64
	AverageCommunication float64
	LastInterviewAt      time.Time
}
