package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/godilite/interview-coach/internal/repository/models"
)

// MockStatsStore is a mock implementation of the StatsStore interface
// for testing the service layer.
type MockStatsStore struct {
	GetFunc func(ctx context.Context, key string) (string, bool, error)
	SetFunc func(ctx context.Context, key, value string) error
}

// Get implements the StatsStore interface
func (m *MockStatsStore) Get(ctx context.Context, key string) (string, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return "", false, nil
}

// Set implements the StatsStore interface
func (m *MockStatsStore) Set(ctx context.Context, key, value string) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value)
	}
	return errors.New("SetFunc not implemented")
}

// MockResultsRepository is a mock implementation of the ResultsRepository interface.
type MockResultsRepository struct {
	InsertResultFunc      func(ctx context.Context, res models.InterviewResult) error
	GetTypeBreakdownFunc  func(ctx context.Context, userID string, start, end time.Time) ([]models.TypeBreakdown, error)
	ListRecentResultsFunc func(ctx context.Context, userID string, limit int) ([]models.InterviewResult, error)
}

// InsertResult implements the ResultsRepository interface
func (m *MockResultsRepository) InsertResult(ctx context.Context, res models.InterviewResult) error {
	if m.InsertResultFunc != nil {
		return m.InsertResultFunc(ctx, res)
	}
	return nil
}

// GetTypeBreakdown implements the ResultsRepository interface
func (m *MockResultsRepository) GetTypeBreakdown(ctx context.Context, userID string, start, end time.Time) ([]models.TypeBreakdown, error) {
	if m.GetTypeBreakdownFunc != nil {
		return m.GetTypeBreakdownFunc(ctx, userID, start, end)
	}
	return nil, errors.New("GetTypeBreakdownFunc not implemented")
}

// ListRecentResults implements the ResultsRepository interface
func (m *MockResultsRepository) ListRecentResults(ctx context.Context, userID string, limit int) ([]models.InterviewResult, error) {
	if m.ListRecentResultsFunc != nil {
		return m.ListRecentResultsFunc(ctx, userID, limit)
	}
	return nil, errors.New("ListRecentResultsFunc not implemented")
}

// MemoryStatsStore is an in-memory StatsStore.
type MemoryStatsStore struct {
	Data map[string]string
}

func NewMemoryStatsStore() *MemoryStatsStore {
	return &MemoryStatsStore{Data: make(map[string]string)}
}

func (m *MemoryStatsStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.Data[key]
	return v, ok, nil
}

func (m *MemoryStatsStore) Set(_ context.Context, key, value string) error {
	m.Data[key] = value
	return nil
}
