package grpc

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/singleflight"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/godilite/interview-coach/api/v1"
	"github.com/godilite/interview-coach/internal/grpc/mocks"
	"github.com/godilite/interview-coach/internal/repository/models"
	"github.com/godilite/interview-coach/internal/service"
)

// slowSetCache delays every write, so cache writes overlap later requests.
type slowSetCache struct {
	*mocks.InMemoryCache
	delay time.Duration
}

func (c *slowSetCache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	time.Sleep(c.delay)
	return c.InMemoryCache.Set(ctx, key, value, expiration)
}

// recordingService keeps outcomes in memory and answers profile and
// breakdown reads from them.
type recordingService struct {
	mocks.MockInterviewService

	mu       sync.Mutex
	recorded []time.Time
	now      time.Time
}

func newRecordingService(now time.Time) *recordingService {
	s := &recordingService{now: now}
	s.RecordOutcomeFunc = func(ctx context.Context, userID string, o service.InterviewOutcome) (service.RecordResult, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.recorded = append(s.recorded, s.now)
		return service.RecordResult{Stats: service.NewStats(), Passed: o.Passed()}, nil
	}
	s.GetProfileFunc = func(ctx context.Context, userID string) service.Profile {
		s.mu.Lock()
		defer s.mu.Unlock()
		stats := service.NewStats()
		stats.TotalInterviews = len(s.recorded)
		return service.Profile{Stats: stats}
	}
	s.GetInterviewBreakdownFunc = func(ctx context.Context, userID string, start, end time.Time) ([]models.TypeBreakdown, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		var n int64
		for _, at := range s.recorded {
			if !at.Before(start) && !at.After(end) {
				n++
			}
		}
		if n == 0 {
			return nil, nil
		}
		return []models.TypeBreakdown{{InterviewType: "Technical", TotalInterviews: n}}, nil
	}
	return s
}

func recordReq(userID string) *pb.RecordInterviewRequest {
	return &pb.RecordInterviewRequest{
		UserId: userID,
		Scores: &pb.ScoreSet{Overall: 80, Technical: 80, Communication: 80},
	}
}

func breakdownReq(userID string, start, end time.Time) *pb.InterviewBreakdownRequest {
	return &pb.InterviewBreakdownRequest{
		UserId:    userID,
		StartDate: timestamppb.New(start),
		EndDate:   timestamppb.New(end),
	}
}

func TestGetInterviewBreakdown_WindowsInOneDayAgree(t *testing.T) {
	day := time.Date(2025, 5, 6, 0, 0, 0, 0, time.UTC)
	svc := newRecordingService(day.Add(10 * time.Hour))
	handlers := newTestHandlers(svc, mocks.NewInMemoryCache())
	ctx := context.Background()

	_, err := handlers.RecordInterview(ctx, recordReq("alice"))
	require.NoError(t, err)

	narrow, err := handlers.GetInterviewBreakdown(ctx, breakdownReq("alice", day, day))
	require.NoError(t, err)
	full, err := handlers.GetInterviewBreakdown(ctx, breakdownReq("alice", day, day.Add(24*time.Hour-time.Second)))
	require.NoError(t, err)

	require.Len(t, narrow.Breakdown, 1)
	require.Len(t, full.Breakdown, 1)
	assert.Equal(t, int64(1), full.Breakdown[0].TotalInterviews)
}

func TestRecordInterview_RefreshesCachedBreakdown(t *testing.T) {
	day := time.Date(2025, 5, 6, 0, 0, 0, 0, time.UTC)
	svc := newRecordingService(day.Add(9 * time.Hour))
	cache := mocks.NewInMemoryCache()
	handlers := newTestHandlers(svc, cache)
	ctx := context.Background()
	req := breakdownReq("alice", day, day)

	before, err := handlers.GetInterviewBreakdown(ctx, req)
	require.NoError(t, err)
	assert.Empty(t, before.Breakdown)
	require.True(t, cache.Has(normalizeKey(cacheKeyBreakdown, "alice", initialGeneration, day, day)))

	_, err = handlers.RecordInterview(ctx, recordReq("alice"))
	require.NoError(t, err)

	after, err := handlers.GetInterviewBreakdown(ctx, req)
	require.NoError(t, err)
	require.Len(t, after.Breakdown, 1)
	assert.Equal(t, int64(1), after.Breakdown[0].TotalInterviews)
}

func TestRecordInterview_SlowCacheWriteDoesNotResurrectProfile(t *testing.T) {
	svc := newRecordingService(time.Now())
	cache := &slowSetCache{InMemoryCache: mocks.NewInMemoryCache(), delay: 100 * time.Millisecond}
	handlers := newTestHandlers(svc, cache)
	ctx := context.Background()

	first, err := handlers.GetProfile(ctx, &pb.GetProfileRequest{UserId: "bob"})
	require.NoError(t, err)
	assert.Equal(t, int32(0), first.Stats.TotalInterviews)

	_, err = handlers.RecordInterview(ctx, recordReq("bob"))
	require.NoError(t, err)
	time.Sleep(200 * time.Millisecond)

	second, err := handlers.GetProfile(ctx, &pb.GetProfileRequest{UserId: "bob"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), second.Stats.TotalInterviews)
}

func TestFindAndCache_StoresBeforeReturning(t *testing.T) {
	cache := &slowSetCache{InMemoryCache: mocks.NewInMemoryCache(), delay: 50 * time.Millisecond}
	var sf singleflight.Group

	v, err := FindAndCache(context.Background(), cache, &sf, "k", time.Minute, nil, func(context.Context) (int, error) {
		return 7, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.True(t, cache.Has("k"))
}

func TestGetProfile_BypassesCacheWhenGenerationUnreadable(t *testing.T) {
	cache := &mocks.MockCacher{
		GetFunc: func(ctx context.Context, key string, dest any) error {
			return errors.New("connection refused")
		},
		SetFunc: func(ctx context.Context, key string, value any, expiration time.Duration) error {
			t.Fatalf("unexpected cache write to %q", key)
			return nil
		},
	}
	calls := 0
	svc := &mocks.MockInterviewService{
		GetProfileFunc: func(ctx context.Context, userID string) service.Profile {
			calls++
			return service.Profile{Stats: service.NewStats(), AverageScore: 64}
		},
	}
	handlers := newTestHandlers(svc, cache)

	resp, err := handlers.GetProfile(context.Background(), &pb.GetProfileRequest{UserId: "erin"})

	require.NoError(t, err)
	assert.Equal(t, int32(64), resp.AverageScore)
	assert.Equal(t, 1, calls)
}

func TestRecordInterview_GenerationWriteFailureDoesNotFailRecord(t *testing.T) {
	cache := &mocks.MockCacher{
		SetFunc: func(ctx context.Context, key string, value any, expiration time.Duration) error {
			return errors.New("read-only replica")
		},
	}
	handlers := newTestHandlers(newRecordingService(time.Now()), cache)

	resp, err := handlers.RecordInterview(context.Background(), recordReq("frank"))

	require.NoError(t, err)
	assert.True(t, resp.Passed)
}
