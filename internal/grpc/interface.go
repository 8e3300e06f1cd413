package grpc

import (
	"context"
	"time"

	"github.com/godilite/interview-coach/internal/chat"
	"github.com/godilite/interview-coach/internal/repository/models"
	"github.com/godilite/interview-coach/internal/service"
)

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type InterviewService interface {
	StartInterview(ctx context.Context) (chat.StartResponse, error)
	SendMessage(ctx context.Context, req service.TurnRequest) (service.TurnResult, error)
	RecordOutcome(ctx context.Context, userID string, outcome service.InterviewOutcome) (service.RecordResult, error)
	GetProfile(ctx context.Context, userID string) service.Profile
	GetInterviewBreakdown(ctx context.Context, userID string, start, end time.Time) ([]models.TypeBreakdown, error)
}
