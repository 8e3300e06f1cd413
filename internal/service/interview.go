package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/godilite/interview-coach/internal/chat"
	"github.com/godilite/interview-coach/internal/repository/models"
	"github.com/godilite/interview-coach/internal/scores"
)

const (
	dbTimeout = 1 * time.Second

	statsKeyPrefix = "interviewStats"
)

// InterviewService runs interview turns and keeps per-user statistics.
type InterviewService struct {
	stats     StatsStore
	results   ResultsRepository
	chat      chat.Service
	extractor scores.Extractor
	logger    *zap.Logger

	newID func() string
	now   func() time.Time
}

// NewInterviewService creates a new InterviewService instance. chatSvc may
// be nil for callers that only record and read statistics.
func NewInterviewService(stats StatsStore, results ResultsRepository, chatSvc chat.Service, extractor scores.Extractor, logger *zap.Logger) *InterviewService {
	if stats == nil {
		panic("stats store must not be nil")
	}
	if results == nil {
		panic("results repository must not be nil")
	}
	if extractor == nil {
		extractor = scores.NewPatternExtractor()
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &InterviewService{
		stats:     stats,
		results:   results,
		chat:      chatSvc,
		extractor: extractor,
		logger:    logger.Named("interview-service"),
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

func statsKey(userID string) string {
	if userID == "" {
		return statsKeyPrefix
	}
	return statsKeyPrefix + ":" + userID
}

// LoadStats returns the user's repaired statistics. It never fails: a
// missing, unreadable or corrupt blob yields zero statistics.
func (s *InterviewService) LoadStats(ctx context.Context, userID string) Stats {
	if prior := s.loadPrior(ctx, userID); prior != nil {
		return prior.Repair()
	}
	return NewStats()
}

func (s *InterviewService) loadPrior(ctx context.Context, userID string) *Stats {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	raw, found, err := s.stats.Get(dbCtx, statsKey(userID))
	if err != nil {
		s.logger.Warn("failed to read stats, starting from zero",
			zap.String("user_id", userID), zap.Error(err))
		return nil
	}
	if !found {
		return nil
	}

	var prior Stats
	if err := json.Unmarshal([]byte(raw), &prior); err != nil {
		s.logger.Warn("failed to parse stats, starting from zero",
			zap.String("user_id", userID), zap.Error(err))
		return nil
	}
	return &prior
}

// RecordOutcome folds outcome into the user's stored statistics and persists
// them. On a write failure the computed statistics are still returned along
// with an error wrapping ErrStorageFailure.
func (s *InterviewService) RecordOutcome(ctx context.Context, userID string, outcome InterviewOutcome) (RecordResult, error) {
	outcome = outcome.normalized()
	stats := RecordInterview(outcome, s.loadPrior(ctx, userID))
	result := RecordResult{Stats: stats, Passed: outcome.Passed()}

	raw, err := json.Marshal(stats)
	if err != nil {
		return result, fmt.Errorf("%w: encode stats: %v", ErrStorageFailure, err)
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if err := s.stats.Set(dbCtx, statsKey(userID), string(raw)); err != nil {
		return result, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	row := models.InterviewResult{
		ID:            s.newID(),
		UserID:        userID,
		InterviewType: string(outcome.InterviewType),
		DevField:      string(outcome.DevField),
		Overall:       outcome.Scores.Overall,
		Technical:     outcome.Scores.Technical,
		Communication: outcome.Scores.Communication,
		Passed:        result.Passed,
		CreatedAt:     s.now(),
	}
	if err := s.results.InsertResult(dbCtx, row); err != nil {
		s.logger.Error("failed to append interview result",
			zap.String("user_id", userID), zap.Error(err))
	}

	s.logger.Info("recorded interview",
		zap.String("user_id", userID),
		zap.String("interview_type", row.InterviewType),
		zap.String("dev_field", row.DevField),
		zap.Int("overall", row.Overall),
		zap.Bool("passed", row.Passed),
		zap.Int("total_interviews", stats.TotalInterviews))

	return result, nil
}

// StartInterview opens a conversation with the interviewer.
func (s *InterviewService) StartInterview(ctx context.Context) (chat.StartResponse, error) {
	if s.chat == nil {
		return chat.StartResponse{}, ErrChatUnavailable
	}
	resp, err := s.chat.StartChat(ctx)
	if err != nil {
		s.logger.Error("failed to start chat", zap.Error(err))
		return chat.StartResponse{}, fmt.Errorf("%w: %w", ErrChatUnavailable, err)
	}
	return resp, nil
}

// SendMessage runs one chat turn. When the interviewer returns a rating the
// scores are extracted and recorded; a recording failure is logged and
// reported through TurnResult.StatsSaved rather than as an error.
func (s *InterviewService) SendMessage(ctx context.Context, req TurnRequest) (TurnResult, error) {
	interviewType, err := ParseInterviewType(req.InterviewType)
	if err != nil {
		return TurnResult{}, err
	}
	devField, err := ParseDevField(req.DevField)
	if err != nil {
		return TurnResult{}, err
	}
	if s.chat == nil {
		return TurnResult{}, ErrChatUnavailable
	}

	resp, err := s.chat.Chat(ctx, chat.Request{
		ConversationHistory: req.History,
		Message:             req.Message,
		QuestionCount:       req.QuestionCount,
	})
	if err != nil {
		s.logger.Error("chat turn failed", zap.String("user_id", req.UserID), zap.Error(err))
		return TurnResult{}, fmt.Errorf("%w: %w", ErrChatUnavailable, err)
	}

	result := TurnResult{
		Reply:         resp.Message,
		Rating:        resp.Rating,
		History:       resp.ConversationHistory,
		QuestionCount: resp.QuestionCount,
	}
	if resp.Rating == "" {
		return result, nil
	}

	extracted := s.extractor.Extract(resp.Rating)
	result.Scores = &extracted
	result.Passed = extracted.Passed()

	_, err = s.RecordOutcome(ctx, req.UserID, InterviewOutcome{
		Scores:        extracted,
		InterviewType: interviewType,
		DevField:      devField,
	})
	if err != nil {
		s.logger.Error("failed to save stats after rating",
			zap.String("user_id", req.UserID), zap.Error(err))
		return result, nil
	}
	result.StatsSaved = true
	return result, nil
}

// GetProfile returns the user's statistics with derived display values.
func (s *InterviewService) GetProfile(ctx context.Context, userID string) Profile {
	stats := s.LoadStats(ctx, userID)
	return Profile{
		Stats:        stats,
		AverageScore: AverageScore(stats.PerformanceHistory),
		Achievements: DeriveAchievements(stats),
	}
}

// GetInterviewBreakdown summarizes the results log per interview type.
func (s *InterviewService) GetInterviewBreakdown(ctx context.Context, userID string, start, end time.Time) ([]models.TypeBreakdown, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := s.results.GetTypeBreakdown(dbCtx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	s.logger.Info("fetched interview breakdown",
		zap.String("user_id", userID),
		zap.Int("types", len(rows)),
		zap.Time("start", start),
		zap.Time("end", end))

	return rows, nil
}

// ListRecentResults returns the newest entries of the user's results log.
func (s *InterviewService) ListRecentResults(ctx context.Context, userID string, limit int) ([]models.InterviewResult, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := s.results.ListRecentResults(dbCtx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	return rows, nil
}
