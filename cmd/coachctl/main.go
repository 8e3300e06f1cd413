// Package main implements coachctl, an offline tool over the interview
// coach database: score extraction, recording outcomes and reading profiles.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/godilite/interview-coach/internal/app"
	"github.com/godilite/interview-coach/internal/config"
	"github.com/godilite/interview-coach/internal/repository"
	"github.com/godilite/interview-coach/internal/service"
)

var rootCmd = &cobra.Command{
	Use:           "coachctl",
	Short:         "Interview coach command line tool",
	Long:          "coachctl extracts scores from interviewer ratings and records or inspects interview statistics stored in the coach database.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	dbPath  string
	userID  string
	verbose bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the SQLite database (defaults to DB_PATH)")
	rootCmd.PersistentFlags().StringVarP(&userID, "user", "u", "", "User id; empty means the single-user stats key")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log to stderr")
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func loadConfig() *config.Config {
	cfg := config.LoadFromEnv()
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	return cfg
}

// openService opens the migrated database and builds a service without a
// chat backend. The caller closes the returned database.
func openService(ctx context.Context) (*service.InterviewService, *sql.DB, error) {
	logger := newLogger()
	db, err := app.OpenDatabase(ctx, loadConfig(), logger)
	if err != nil {
		return nil, nil, err
	}
	repo := repository.NewInterviewStatsRepository(db)
	return service.NewInterviewService(repo, repo, nil, nil, logger), db, nil
}

func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
