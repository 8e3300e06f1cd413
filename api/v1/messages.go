package v1

import "google.golang.org/protobuf/types/known/timestamppb"

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ScoreSet struct {
	Overall       int32 `json:"overall"`
	Technical     int32 `json:"technical"`
	Communication int32 `json:"communication"`
}

type Stats struct {
	TotalInterviews    int32            `json:"total_interviews"`
	PassedInterviews   int32            `json:"passed_interviews"`
	FailedInterviews   int32            `json:"failed_interviews"`
	PerformanceHistory []int32          `json:"performance_history"`
	SoftSkills         map[string]int32 `json:"soft_skills"`
	HardSkills         map[string]int32 `json:"hard_skills"`
}

type StartInterviewRequest struct {
	UserId string `json:"user_id"`
}

type StartInterviewResponse struct {
	ConversationId      string         `json:"conversation_id"`
	Message             string         `json:"message"`
	ConversationHistory []*ChatMessage `json:"conversation_history"`
}

type SendMessageRequest struct {
	UserId              string         `json:"user_id"`
	Message             string         `json:"message"`
	ConversationHistory []*ChatMessage `json:"conversation_history"`
	QuestionCount       int32          `json:"question_count"`
	InterviewType       string         `json:"interview_type"`
	DevField            string         `json:"dev_field"`
}

type SendMessageResponse struct {
	Message             string         `json:"message"`
	Rating              string         `json:"rating,omitempty"`
	ConversationHistory []*ChatMessage `json:"conversation_history"`
	QuestionCount       int32          `json:"question_count"`
	Scores              *ScoreSet      `json:"scores,omitempty"`
	Passed              bool           `json:"passed"`
	StatsSaved          bool           `json:"stats_saved"`
}

type ExtractScoresRequest struct {
	Text string `json:"text"`
}

type ExtractScoresResponse struct {
	Scores *ScoreSet `json:"scores"`
	Passed bool      `json:"passed"`
}

type RecordInterviewRequest struct {
	UserId        string    `json:"user_id"`
	Scores        *ScoreSet `json:"scores"`
	InterviewType string    `json:"interview_type"`
	DevField      string    `json:"dev_field"`
}

type RecordInterviewResponse struct {
	Stats  *Stats `json:"stats"`
	Passed bool   `json:"passed"`
}

type GetProfileRequest struct {
	UserId string `json:"user_id"`
}

type ProfileResponse struct {
	Stats        *Stats   `json:"stats"`
	AverageScore int32    `json:"average_score"`
	Achievements []string `json:"achievements"`
}

// InterviewBreakdownRequest selects a user's results log within a time window.
type InterviewBreakdownRequest struct {
	UserId    string                 `json:"user_id"`
	StartDate *timestamppb.Timestamp `json:"start_date"`
	EndDate   *timestamppb.Timestamp `json:"end_date"`
}

type TypeBreakdown struct {
	InterviewType        string                 `json:"interview_type"`
	TotalInterviews      int64                  `json:"total_interviews"`
	PassedInterviews     int64                  `json:"passed_interviews"`
	AverageOverall       float64                `json:"average_overall"`
	AverageTechnical     float64                `json:"average_technical"`
	AverageCommunication float64                `json:"average_communication"`
	LastInterviewAt      *timestamppb.Timestamp `json:"last_interview_at,omitempty"`
}

type InterviewBreakdownResponse struct {
	Breakdown []*TypeBreakdown `json:"breakdown"`
}

func (x *InterviewBreakdownRequest) GetStartDate() *timestamppb.Timestamp {
	if x != nil {
		return x.StartDate
	}
	return nil
}

func (x *InterviewBreakdownRequest) GetEndDate() *timestamppb.Timestamp {
	if x != nil {
		return x.EndDate
	}
	return nil
}
