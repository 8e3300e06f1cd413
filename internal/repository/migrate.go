package repository

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

type migrateOptions struct {
	logger *zap.Logger
}

type MigrateOption func(*migrateOptions)

// WithMigrationLogger routes goose output through logger. Without it goose
// output is discarded.
func WithMigrationLogger(logger *zap.Logger) MigrateOption {
	return func(o *migrateOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// gooseLogger adapts zap to goose.Logger.
type gooseLogger struct {
	sugar *zap.SugaredLogger
}

func newGooseLogger(logger *zap.Logger) *gooseLogger {
	return &gooseLogger{sugar: logger.WithOptions(zap.AddCallerSkip(1)).Sugar().Named("migrate")}
}

// goose terminates its messages with a newline.
func (l *gooseLogger) Printf(format string, v ...any) {
	l.sugar.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *gooseLogger) Fatalf(format string, v ...any) {
	l.sugar.Fatal(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// RunMigrations applies the embedded SQL migrations. dialect is a goose
// dialect name such as "sqlite3".
func RunMigrations(ctx context.Context, db *sql.DB, dialect string, opts ...MigrateOption) error {
	if db == nil {
		return fmt.Errorf("run migrations: nil database")
	}

	o := &migrateOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}

	goose.SetLogger(newGooseLogger(o.logger))
	goose.SetBaseFS(migrationFiles)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
