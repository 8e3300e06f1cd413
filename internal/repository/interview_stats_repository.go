package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/godilite/interview-coach/internal/repository/models"
)

// timeLayout is fixed width so stored timestamps compare correctly as text.
const timeLayout = "2006-01-02T15:04:05.000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// InterviewStatsRepository stores the per-user statistics blob in a
// key-value table and appends every recorded outcome to a results log.
type InterviewStatsRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewInterviewStatsRepository(db *sql.DB) *InterviewStatsRepository {
	return &InterviewStatsRepository{db: db, now: time.Now}
}

// Get returns the value stored under key. A missing key is reported with
// found=false and a nil error.
func (r *InterviewStatsRepository) Get(ctx context.Context, key string) (string, bool, error) {
	const query = `SELECT value FROM kv_store WHERE key = ?`

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("query Get: %w", err)
	}
	return value, true, nil
}

// Set upserts value under key.
func (r *InterviewStatsRepository) Set(ctx context.Context, key, value string) error {
	const query = `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, key, value, formatTime(r.now())); err != nil {
		return fmt.Errorf("exec Set: %w", err)
	}
	return nil
}

// InsertResult appends one outcome to the results log.
func (r *InterviewStatsRepository) InsertResult(ctx context.Context, res models.InterviewResult) error {
	const query = `
		INSERT INTO interview_results (
			id, user_id, interview_type, dev_field,
			overall, technical, communication, passed, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := res.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now()
	}

	_, err := r.db.ExecContext(ctx, query,
		res.ID, res.UserID, res.InterviewType, res.DevField,
		res.Overall, res.Technical, res.Communication, res.Passed,
		formatTime(createdAt))
	if err != nil {
		return fmt.Errorf("exec InsertResult: %w", err)
	}
	return nil
}

// GetTypeBreakdown aggregates a user's results per interview type within
// [start, end].
func (r *InterviewStatsRepository) GetTypeBreakdown(ctx context.Context, userID string, start, end time.Time) ([]models.TypeBreakdown, error) {
	const query = `
		SELECT
			interview_type,
			COUNT(id) AS total,
			SUM(CASE WHEN passed THEN 1 ELSE 0 END) AS passed,
			AVG(CAST(overall AS REAL)) AS avg_overall,
			AVG(CAST(technical AS REAL)) AS avg_technical,
			AVG(CAST(communication AS REAL)) AS avg_communication,
			MAX(created_at) AS last_at
		FROM interview_results
		WHERE user_id = ? AND created_at >= ? AND created_at <= ?
		GROUP BY interview_type
		ORDER BY interview_type
	`

	rows, err := r.db.QueryContext(ctx, query, userID, formatTime(start), formatTime(end))
	if err != nil {
		return nil, fmt.Errorf("query GetTypeBreakdown: %w", err)
	}
	defer rows.Close()

	var results []models.TypeBreakdown
	for rows.Next() {
		var (
			b      models.TypeBreakdown
			lastAt string
		)
		if err := rows.Scan(&b.InterviewType, &b.TotalInterviews, &b.PassedInterviews,
			&b.AverageOverall, &b.AverageTechnical, &b.AverageCommunication, &lastAt); err != nil {
			return nil, fmt.Errorf("scan GetTypeBreakdown row: %w", err)
		}
		if b.LastInterviewAt, err = time.Parse(timeLayout, lastAt); err != nil {
			return nil, fmt.Errorf("parse GetTypeBreakdown last_at %q: %w", lastAt, err)
		}
		results = append(results, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate GetTypeBreakdown: %w", err)
	}
	return results, nil
}

// ListRecentResults returns up to limit of a user's results, newest first.
func (r *InterviewStatsRepository) ListRecentResults(ctx context.Context, userID string, limit int) ([]models.InterviewResult, error) {
	const query = `
		SELECT id, user_id, interview_type, dev_field,
			overall, technical, communication, passed, created_at
		FROM interview_results
		WHERE user_id = ?
		ORDER BY created_at DESC, id
		LIMIT ?
	`

	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query ListRecentResults: %w", err)
	}
	defer rows.Close()

	var results []models.InterviewResult
	for rows.Next() {
		var (
			res       models.InterviewResult
			createdAt string
		)
		if err := rows.Scan(&res.ID, &res.UserID, &res.InterviewType, &res.DevField,
			&res.Overall, &res.Technical, &res.Communication, &res.Passed, &createdAt); err != nil {
			return nil, fmt.Errorf("scan ListRecentResults row: %w", err)
		}
		if res.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("parse ListRecentResults created_at %q: %w", createdAt, err)
		}
		results = append(results, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ListRecentResults: %w", err)
	}
	return results, nil
}
