package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/godilite/interview-coach/internal/chat"
	"github.com/godilite/interview-coach/internal/repository/models"
	"github.com/godilite/interview-coach/internal/service"
)

// MockInterviewService is a mock implementation of the InterviewService interface
// for testing the handler layer. It uses function-based mocking for flexibility.
type MockInterviewService struct {
	StartInterviewFunc        func(ctx context.Context) (chat.StartResponse, error)
	SendMessageFunc           func(ctx context.Context, req service.TurnRequest) (service.TurnResult, error)
	RecordOutcomeFunc         func(ctx context.Context, userID string, outcome service.InterviewOutcome) (service.RecordResult, error)
	GetProfileFunc            func(ctx context.Context, userID string) service.Profile
	GetInterviewBreakdownFunc func(ctx context.Context, userID string, start, end time.Time) ([]models.TypeBreakdown, error)
}

// StartInterview implements the InterviewService interface
func (m *MockInterviewService) StartInterview(ctx context.Context) (chat.StartResponse, error) {
	if m.StartInterviewFunc != nil {
		return m.StartInterviewFunc(ctx)
	}
	return chat.StartResponse{}, errors.New("StartInterviewFunc not implemented")
}

// SendMessage implements the InterviewService interface
func (m *MockInterviewService) SendMessage(ctx context.Context, req service.TurnRequest) (service.TurnResult, error) {
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(ctx, req)
	}
	return service.TurnResult{}, errors.New("SendMessageFunc not implemented")
}

// RecordOutcome implements the InterviewService interface
func (m *MockInterviewService) RecordOutcome(ctx context.Context, userID string, outcome service.InterviewOutcome) (service.RecordResult, error) {
	if m.RecordOutcomeFunc != nil {
		return m.RecordOutcomeFunc(ctx, userID, outcome)
	}
	return service.RecordResult{}, errors.New("RecordOutcomeFunc not implemented")
}

// GetProfile implements the InterviewService interface
func (m *MockInterviewService) GetProfile(ctx context.Context, userID string) service.Profile {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	return service.Profile{Stats: service.NewStats(), Achievements: []string{service.AchievementNewUser}}
}

// GetInterviewBreakdown implements the InterviewService interface
func (m *MockInterviewService) GetInterviewBreakdown(ctx context.Context, userID string, start, end time.Time) ([]models.TypeBreakdown, error) {
	if m.GetInterviewBreakdownFunc != nil {
		return m.GetInterviewBreakdownFunc(ctx, userID, start, end)
	}
	return nil, errors.New("GetInterviewBreakdownFunc not implemented")
}
