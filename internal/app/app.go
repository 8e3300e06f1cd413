package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	pb "github.com/godilite/interview-coach/api/v1"
	"github.com/godilite/interview-coach/internal/chat"
	"github.com/godilite/interview-coach/internal/config"
	handler "github.com/godilite/interview-coach/internal/grpc"
	"github.com/godilite/interview-coach/internal/interviewer"
	"github.com/godilite/interview-coach/internal/repository"
	"github.com/godilite/interview-coach/internal/scores"
	"github.com/godilite/interview-coach/internal/service"
	"github.com/godilite/interview-coach/pkg/cache"
	dbbuilder "github.com/godilite/interview-coach/pkg/database"
	grpcsrv "github.com/godilite/interview-coach/pkg/grpc/server"
)

const serviceName = "interview.v1.InterviewCoach"

type App struct {
	logger     *zap.Logger
	dbPool     *sql.DB
	cache      *cache.Cache
	chatCloser io.Closer
	grpcServer *grpcsrv.Server
}

// OpenDatabase opens the configured database and applies migrations,
// logging migration progress to logger.
func OpenDatabase(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*sql.DB, error) {
	dbPool, err := dbbuilder.New(ctx,
		dbbuilder.WithDriver(cfg.DBDriver),
		dbbuilder.WithDataSource(cfg.DBPath),
		dbbuilder.WithMaxOpenConns(cfg.DBMaxOpenConns),
	)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	if err := repository.RunMigrations(ctx, dbPool, cfg.DBDriver, repository.WithMigrationLogger(logger)); err != nil {
		dbPool.Close()
		return nil, err
	}
	return dbPool, nil
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	dbPool, err := OpenDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Database pool initialized", zap.String("path", cfg.DBPath))

	cacheClient, err := cache.New(ctx,
		cache.WithAddress(cfg.RedisAddr),
		cache.WithPassword(cfg.RedisPassword),
		cache.WithDB(cfg.RedisDB),
		cache.WithKeyPrefix(cfg.RedisKeyPrefix),
	)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("cache init failed: %w", err)
	}
	logger.Info("Cache client initialized", zap.String("addr", cfg.RedisAddr))

	repo := repository.NewInterviewStatsRepository(dbPool)

	var stats service.StatsStore = repo
	if cfg.StatsStore == config.StatsStoreRedis {
		stats = cache.NewStringStore(cacheClient)
	}
	logger.Info("Stats store selected", zap.String("store", cfg.StatsStore))

	chatSvc, chatCloser, err := NewChatService(ctx, cfg, logger)
	if err != nil {
		cacheClient.Close()
		dbPool.Close()
		return nil, err
	}

	extractor := scores.NewPatternExtractor()
	interviewService := service.NewInterviewService(stats, repo, chatSvc, extractor, logger)

	grpcHandlers := handler.NewGRPCHandlers(interviewService, extractor, cacheClient, logger, cfg.CacheTTL)

	grpcServer, err := grpcsrv.New(
		grpcsrv.WithPort(cfg.GRPCPort),
		grpcsrv.WithLogger(logger),
		grpcsrv.WithReflection(cfg.GRPCReflectionEnabled),
		grpcsrv.WithLogging(cfg.GRPCLoggingEnabled),
	)
	if err != nil {
		if chatCloser != nil {
			chatCloser.Close()
		}
		cacheClient.Close()
		dbPool.Close()
		return nil, fmt.Errorf("failed to create gRPC server: %w", err)
	}

	grpcServer.RegisterServiceWithHealth(serviceName, func(s *grpc.Server) {
		pb.RegisterInterviewCoachServer(s, grpcHandlers)
	})

	return &App{
		logger:     logger,
		dbPool:     dbPool,
		cache:      cacheClient,
		chatCloser: chatCloser,
		grpcServer: grpcServer,
	}, nil
}

// NewChatService picks the chat backend: the external chat API when
// CHAT_API_URL is set, else the embedded Gemini interviewer when
// GEMINI_API_KEY is set. With neither, it returns a nil service and chat
// RPCs report Unavailable. The returned closer may be nil.
func NewChatService(ctx context.Context, cfg *config.Config, logger *zap.Logger) (chat.Service, io.Closer, error) {
	switch {
	case cfg.ChatAPIURL != "":
		client, err := chat.NewHTTPClient(cfg.ChatAPIURL,
			chat.WithTimeout(cfg.ChatTimeout),
			chat.WithLogger(logger),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("chat client init failed: %w", err)
		}
		logger.Info("Using external chat API", zap.String("url", cfg.ChatAPIURL))
		return client, nil, nil

	case cfg.GeminiAPIKey != "":
		model, err := interviewer.NewGeminiModel(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, nil, fmt.Errorf("interviewer model init failed: %w", err)
		}
		iv, err := interviewer.New(model,
			interviewer.WithRatingAfter(cfg.RatingAfterQuestions),
			interviewer.WithLogger(logger),
		)
		if err != nil {
			model.Close()
			return nil, nil, err
		}
		logger.Info("Using embedded interviewer", zap.String("model", cfg.GeminiModel))
		return iv, model, nil

	default:
		logger.Warn("no chat backend configured; chat RPCs are unavailable")
		return nil, nil, nil
	}
}

// Run starts the application and blocks until a shutdown signal is received.
func (a *App) Run() error {
	a.logger.Info("application starting")

	a.grpcServer.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info("application shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.grpcServer.Shutdown(ctx); err != nil {
		a.logger.Warn("gRPC shutdown error", zap.Error(err))
	}

	if a.chatCloser != nil {
		if err := a.chatCloser.Close(); err != nil {
			a.logger.Error("chat backend shutdown error", zap.Error(err))
		}
	}
	if err := a.cache.Close(); err != nil {
		a.logger.Error("cache shutdown error", zap.Error(err))
	}
	if err := a.dbPool.Close(); err != nil {
		a.logger.Error("database shutdown error", zap.Error(err))
	}

	select {
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			a.logger.Warn("shutdown completed but deadline exceeded")
		}
	default:
		a.logger.Info("graceful shutdown completed successfully")
	}

	_ = a.logger.Sync()
	return nil
}
