package service

import (
	"context"
	"time"

	"github.com/godilite/interview-coach/internal/repository/models"
)

// StatsStore persists the serialized per-user Stats blob. Get reports a
// missing key with found=false and a nil error.
type StatsStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// ResultsRepository defines the database operations on the interview results log.
type ResultsRepository interface {
	InsertResult(ctx context.Context, res models.InterviewResult) error
	GetTypeBreakdown(ctx context.Context, userID string, start, end time.Time) ([]models.TypeBreakdown, error)
	ListRecentResults(ctx context.Context, userID string, limit int) ([]models.InterviewResult, error)
}
