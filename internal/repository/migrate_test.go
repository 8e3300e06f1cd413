package repository_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/godilite/interview-coach/internal/repository"
)

func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunMigrations_LogsThroughZap(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	err := repository.RunMigrations(context.Background(), openMemoryDB(t), "sqlite3",
		repository.WithMigrationLogger(zap.New(core)))
	require.NoError(t, err)

	entries := logs.All()
	require.NotEmpty(t, entries)
	assert.NotZero(t, logs.FilterMessageSnippet("OK").Len())
	for _, e := range entries {
		assert.Equal(t, "migrate", e.LoggerName)
	}
}

func TestRunMigrations_SilentByDefault(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	require.NoError(t, repository.RunMigrations(context.Background(), openMemoryDB(t), "sqlite3",
		repository.WithMigrationLogger(zap.New(core))))
	logs.TakeAll()

	// A later run without the option must not reuse the previous logger.
	require.NoError(t, repository.RunMigrations(context.Background(), openMemoryDB(t), "sqlite3"))
	assert.Zero(t, logs.Len())
}

func TestRunMigrations_NilDatabase(t *testing.T) {
	err := repository.RunMigrations(context.Background(), nil, "sqlite3")
	assert.ErrorContains(t, err, "nil database")
}

func TestRunMigrations_UnknownDialect(t *testing.T) {
	err := repository.RunMigrations(context.Background(), openMemoryDB(t), "oracle")
	assert.ErrorContains(t, err, "set migration dialect")
}
