package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godilite/interview-coach/internal/repository/models"
)

var errDB = errors.New("database is locked")

func newMockRepo(t *testing.T) (*InterviewStatsRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewInterviewStatsRepository(db)
	repo.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	return repo, mock
}

func TestInterviewStatsRepository_Get_Error(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT value FROM kv_store").
		WithArgs("interviewStats").
		WillReturnError(errDB)

	_, found, err := repo.Get(context.Background(), "interviewStats")

	require.Error(t, err)
	assert.ErrorIs(t, err, errDB)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInterviewStatsRepository_Set(t *testing.T) {
	t.Run("stamps updated_at", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectExec("INSERT INTO kv_store").
			WithArgs("interviewStats", "{}", "2025-01-02T03:04:05.000Z").
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.Set(context.Background(), "interviewStats", "{}"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectExec("INSERT INTO kv_store").WillReturnError(errDB)

		err := repo.Set(context.Background(), "interviewStats", "{}")

		assert.ErrorIs(t, err, errDB)
		assert.Contains(t, err.Error(), "exec Set")
	})
}

func TestInterviewStatsRepository_InsertResult_DefaultsCreatedAt(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("INSERT INTO interview_results").
		WithArgs("id-1", "u1", "Technical", "Backend", 80, 75, 70, true, "2025-01-02T03:04:05.000Z").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.InsertResult(context.Background(), models.InterviewResult{
		ID: "id-1", UserID: "u1", InterviewType: "Technical", DevField: "Backend",
		Overall: 80, Technical: 75, Communication: 70, Passed: true,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInterviewStatsRepository_GetTypeBreakdown_Errors(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	t.Run("query error", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("FROM interview_results").WillReturnError(errDB)

		_, err := repo.GetTypeBreakdown(context.Background(), "u1", start, end)

		assert.ErrorIs(t, err, errDB)
	})

	t.Run("bad timestamp", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		rows := sqlmock.NewRows([]string{"interview_type", "total", "passed", "avg_overall", "avg_technical", "avg_communication", "last_at"}).
			AddRow("Technical", 1, 1, 80.0, 80.0, 80.0, "yesterday")
		mock.ExpectQuery("FROM interview_results").
			WithArgs("u1", "2025-01-01T00:00:00.000Z", "2025-01-02T00:00:00.000Z").
			WillReturnRows(rows)

		_, err := repo.GetTypeBreakdown(context.Background(), "u1", start, end)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse GetTypeBreakdown last_at")
	})

	t.Run("row iteration error", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		rows := sqlmock.NewRows([]string{"interview_type", "total", "passed", "avg_overall", "avg_technical", "avg_communication", "last_at"}).
			AddRow("Technical", 1, 1, 80.0, 80.0, 80.0, "2025-01-01T10:00:00.000Z").
			RowError(0, errDB)
		mock.ExpectQuery("FROM interview_results").WillReturnRows(rows)

		_, err := repo.GetTypeBreakdown(context.Background(), "u1", start, end)

		assert.ErrorIs(t, err, errDB)
	})
}

func TestInterviewStatsRepository_ListRecentResults_DefaultLimit(t *testing.T) {
	repo, mock := newMockRepo(t)
	rows := sqlmock.NewRows([]string{"id", "user_id", "interview_type", "dev_field", "overall", "technical", "communication", "passed", "created_at"})
	mock.ExpectQuery("FROM interview_results").
		WithArgs("u1", 10).
		WillReturnRows(rows)

	results, err := repo.ListRecentResults(context.Background(), "u1", 0)

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NoError(t, mock.ExpectationsWereMet())
}
