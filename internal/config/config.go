package config

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Stats store backends selectable with STATS_STORE.
const (
	StatsStoreSQLite = "sqlite"
	StatsStoreRedis  = "redis"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv                string
	DBPath                string
	DBDriver              string
	DBMaxOpenConns        int
	RedisAddr             string
	RedisPassword         string
	RedisDB               int
	RedisKeyPrefix        string
	GRPCPort              int
	GRPCReflectionEnabled bool
	GRPCLoggingEnabled    bool
	CacheTTL              time.Duration
	StatsStore            string

	ChatAPIURL           string
	ChatTimeout          time.Duration
	GeminiAPIKey         string
	GeminiModel          string
	RatingAfterQuestions int
}

// LoadFromEnv loads configuration from environment variables. Unparseable
// values fall back to their defaults.
func LoadFromEnv() *Config {
	store := getEnv("STATS_STORE", StatsStoreSQLite)
	if store != StatsStoreRedis {
		store = StatsStoreSQLite
	}

	return &Config{
		AppEnv:                getEnv("APP_ENV", "development"),
		DBPath:                getEnv("DB_PATH", "./data/interview-coach.db"),
		DBDriver:              getEnv("DB_DRIVER", "sqlite3"),
		DBMaxOpenConns:        getInt("DB_MAX_OPEN_CONNS", 1),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:         getEnv("REDIS_PASSWORD", ""),
		RedisDB:               getInt("REDIS_DB", 0),
		RedisKeyPrefix:        getEnv("REDIS_KEY_PREFIX", ""),
		GRPCPort:              getInt("GRPC_PORT", 50051),
		GRPCReflectionEnabled: getBool("GRPC_REFLECTION_ENABLED", false),
		GRPCLoggingEnabled:    getBool("GRPC_LOGGING_ENABLED", true),
		CacheTTL:              getDuration("CACHE_TTL", 10*time.Minute),
		StatsStore:            store,
		ChatAPIURL:            getEnv("CHAT_API_URL", ""),
		ChatTimeout:           getDuration("CHAT_TIMEOUT", 60*time.Second),
		GeminiAPIKey:          getEnv("GEMINI_API_KEY", ""),
		GeminiModel:           getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		RatingAfterQuestions:  getInt("RATING_AFTER_QUESTIONS", 3),
	}
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
