package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/godilite/interview-coach/api/v1"
	"github.com/godilite/interview-coach/internal/chat"
	"github.com/godilite/interview-coach/internal/repository/models"
	"github.com/godilite/interview-coach/internal/scores"
	"github.com/godilite/interview-coach/internal/service"
)

const (
	defaultCacheDuration = 10 * time.Minute
	defaultGRPCTimeout   = 10 * time.Second
	chatGRPCTimeout      = 90 * time.Second
)

// ChatErrorMessage is what clients show inline when the interviewer is unreachable.
const ChatErrorMessage = "Sorry, there was an error communicating with the server."

type CacheKeyType string

const (
	cacheKeyProfile    CacheKeyType = "grpc:profile"
	cacheKeyBreakdown  CacheKeyType = "grpc:interview_breakdown"
	cacheKeyGeneration CacheKeyType = "grpc:generation"
)

type GRPCHandlers struct {
	pb.UnimplementedInterviewCoachServer
	interviews InterviewService
	extractor  scores.Extractor
	cache      Cacher
	validate   *validator.Validate
	logger     *zap.Logger
	sfGroup    singleflight.Group
	cacheTTL   time.Duration

	newGeneration func() string
}

// NewGRPCHandlers initializes the gRPC handlers.
func NewGRPCHandlers(interviews InterviewService, extractor scores.Extractor, cache Cacher, logger *zap.Logger, ttl time.Duration) *GRPCHandlers {
	if interviews == nil {
		panic("nil InterviewService provided to NewGRPCHandlers")
	}
	if cache == nil {
		panic("nil Cacher provided to NewGRPCHandlers")
	}
	if extractor == nil {
		extractor = scores.NewPatternExtractor()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	return &GRPCHandlers{
		interviews: interviews,
		extractor:  extractor,
		cache:      cache,
		validate:   newValidator(),
		logger:     logger.Named("grpc-handler"),
		cacheTTL:   ttl,

		newGeneration: uuid.NewString,
	}
}

func profileKey(userID, gen string) string {
	return fmt.Sprintf("%s:%s:%s", cacheKeyProfile, userID, gen)
}

// normalizeKey builds a per-day window key. It matches the query only for
// windows already widened by dayWindow.
func normalizeKey(prefix CacheKeyType, userID, gen string, start, end time.Time) string {
	s := start.UTC().Truncate(24 * time.Hour).Format("2006-01-02")
	e := end.UTC().Truncate(24 * time.Hour).Format("2006-01-02")
	return fmt.Sprintf("%s:%s:%s:%s:%s", prefix, userID, gen, s, e)
}

// dayWindow widens [start, end] to whole UTC days: from the start day's
// midnight to the last millisecond of the end day.
func dayWindow(start, end time.Time) (time.Time, time.Time) {
	s := start.UTC().Truncate(24 * time.Hour)
	e := end.UTC().Truncate(24 * time.Hour).Add(24*time.Hour - time.Millisecond)
	return s, e
}

// cachedRead serves fn through the cache under a key built from the user's
// current generation, or calls fn directly when the generation is unknown.
func cachedRead[T any](ctx context.Context, s *GRPCHandlers, userID string, key func(gen string) string, fn FetchFunc[T]) (T, error) {
	gen, ok := readGeneration(ctx, s.cache, s.logger, userID)
	if !ok {
		return fn(ctx)
	}
	return FindAndCache(ctx, s.cache, &s.sfGroup, key(gen), s.cacheTTL, s.logger, fn)
}

// publishWrite makes the user's cached reads stale after a persisted write.
func (s *GRPCHandlers) publishWrite(ctx context.Context, userID string) {
	bumpGeneration(ctx, s.cache, s.logger, userID, s.newGeneration())
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case errors.Is(err, service.ErrInvalidOutcome):
		s.logger.Info("invalid request", zap.String("op", op), zap.Error(err))
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrChatUnavailable):
		s.logger.Error("chat service unavailable", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Unavailable, ChatErrorMessage)
	case errors.Is(err, service.ErrStorageFailure):
		s.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Internal, "database error")
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (s *GRPCHandlers) StartInterview(ctx context.Context, req *pb.StartInterviewRequest) (*pb.StartInterviewResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, chatGRPCTimeout)
	defer cancel()

	resp, err := s.interviews.StartInterview(ctx)
	if err != nil {
		return nil, s.handleError(ctx, "StartInterview", err)
	}

	return &pb.StartInterviewResponse{
		ConversationId:      resp.ConversationID,
		Message:             resp.Message,
		ConversationHistory: toPBMessages(resp.ConversationHistory),
	}, nil
}

func (s *GRPCHandlers) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	if err := s.validateSendMessage(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, chatGRPCTimeout)
	defer cancel()

	turn, err := s.interviews.SendMessage(ctx, service.TurnRequest{
		UserID:        req.UserId,
		Message:       req.Message,
		History:       fromPBMessages(req.ConversationHistory),
		QuestionCount: int(req.QuestionCount),
		InterviewType: req.InterviewType,
		DevField:      req.DevField,
	})
	if err != nil {
		return nil, s.handleError(ctx, "SendMessage", err)
	}

	if turn.StatsSaved {
		s.publishWrite(ctx, req.UserId)
	}

	resp := &pb.SendMessageResponse{
		Message:             turn.Reply,
		Rating:              turn.Rating,
		ConversationHistory: toPBMessages(turn.History),
		QuestionCount:       int32(turn.QuestionCount),
		Passed:              turn.Passed,
		StatsSaved:          turn.StatsSaved,
	}
	if turn.Scores != nil {
		resp.Scores = toPBScores(*turn.Scores)
	}
	return resp, nil
}

func (s *GRPCHandlers) ExtractScores(_ context.Context, req *pb.ExtractScoresRequest) (*pb.ExtractScoresResponse, error) {
	extracted := s.extractor.Extract(req.Text)
	return &pb.ExtractScoresResponse{
		Scores: toPBScores(extracted),
		Passed: extracted.Passed(),
	}, nil
}

func (s *GRPCHandlers) RecordInterview(ctx context.Context, req *pb.RecordInterviewRequest) (*pb.RecordInterviewResponse, error) {
	if err := s.validateRecordInterview(req); err != nil {
		return nil, err
	}
	interviewType, err := service.ParseInterviewType(req.InterviewType)
	if err != nil {
		return nil, s.handleError(ctx, "RecordInterview", err)
	}
	devField, err := service.ParseDevField(req.DevField)
	if err != nil {
		return nil, s.handleError(ctx, "RecordInterview", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	result, err := s.interviews.RecordOutcome(ctx, req.UserId, service.InterviewOutcome{
		Scores: scores.ScoreSet{
			Overall:       int(req.Scores.Overall),
			Technical:     int(req.Scores.Technical),
			Communication: int(req.Scores.Communication),
		},
		InterviewType: interviewType,
		DevField:      devField,
	})
	if err != nil {
		return nil, s.handleError(ctx, "RecordInterview", err)
	}

	s.publishWrite(ctx, req.UserId)

	return &pb.RecordInterviewResponse{
		Stats:  toPBStats(result.Stats),
		Passed: result.Passed,
	}, nil
}

func (s *GRPCHandlers) GetProfile(ctx context.Context, req *pb.GetProfileRequest) (*pb.ProfileResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	key := func(gen string) string { return profileKey(req.UserId, gen) }
	profile, err := cachedRead(ctx, s, req.UserId, key, func(fetchCtx context.Context) (service.Profile, error) {
		return s.interviews.GetProfile(fetchCtx, req.UserId), nil
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetProfile", err)
	}

	return &pb.ProfileResponse{
		Stats:        toPBStats(profile.Stats),
		AverageScore: int32(profile.AverageScore),
		Achievements: profile.Achievements,
	}, nil
}

func (s *GRPCHandlers) GetInterviewBreakdown(ctx context.Context, req *pb.InterviewBreakdownRequest) (*pb.InterviewBreakdownResponse, error) {
	start, end, err := s.parseAndValidate(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	key := func(gen string) string { return normalizeKey(cacheKeyBreakdown, req.UserId, gen, start, end) }
	rows, err := cachedRead(ctx, s, req.UserId, key, func(fetchCtx context.Context) ([]models.TypeBreakdown, error) {
		return s.interviews.GetInterviewBreakdown(fetchCtx, req.UserId, start, end)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetInterviewBreakdown", err)
	}

	return &pb.InterviewBreakdownResponse{Breakdown: s.mapToProtoBreakdown(rows)}, nil
}

func (s *GRPCHandlers) mapToProtoBreakdown(rows []models.TypeBreakdown) []*pb.TypeBreakdown {
	out := make([]*pb.TypeBreakdown, len(rows))
	for i, r := range rows {
		out[i] = &pb.TypeBreakdown{
			InterviewType:        r.InterviewType,
			TotalInterviews:      r.TotalInterviews,
			PassedInterviews:     r.PassedInterviews,
			AverageOverall:       r.AverageOverall,
			AverageTechnical:     r.AverageTechnical,
			AverageCommunication: r.AverageCommunication,
		}
		if !r.LastInterviewAt.IsZero() {
			out[i].LastInterviewAt = timestamppb.New(r.LastInterviewAt)
		}
	}
	return out
}

func toPBScores(s scores.ScoreSet) *pb.ScoreSet {
	return &pb.ScoreSet{
		Overall:       int32(s.Overall),
		Technical:     int32(s.Technical),
		Communication: int32(s.Communication),
	}
}

func toPBStats(s service.Stats) *pb.Stats {
	history := make([]int32, len(s.PerformanceHistory))
	for i, v := range s.PerformanceHistory {
		history[i] = int32(v)
	}
	return &pb.Stats{
		TotalInterviews:    int32(s.TotalInterviews),
		PassedInterviews:   int32(s.PassedInterviews),
		FailedInterviews:   int32(s.FailedInterviews),
		PerformanceHistory: history,
		SoftSkills:         toPBSkills(s.SoftSkills),
		HardSkills:         toPBSkills(s.HardSkills),
	}
}

func toPBSkills(m map[string]int) map[string]int32 {
	out := make(map[string]int32, len(m))
	for k, v := range m {
		out[k] = int32(v)
	}
	return out
}

func toPBMessages(msgs []chat.Message) []*pb.ChatMessage {
	out := make([]*pb.ChatMessage, len(msgs))
	for i, m := range msgs {
		out[i] = &pb.ChatMessage{Role: m.Role, Content: m.Content}
	}
	return out
}

func fromPBMessages(msgs []*pb.ChatMessage) []chat.Message {
	out := make([]chat.Message, 0, len(msgs))
	for _, m := range msgs {
		if m == nil {
			continue
		}
		out = append(out, chat.Message{Role: m.Role, Content: m.Content})
	}
	return out
}
