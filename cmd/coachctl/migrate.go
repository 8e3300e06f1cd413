package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/godilite/interview-coach/internal/app"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	db, err := app.OpenDatabase(cmd.Context(), cfg, newLogger())
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "migrations applied to %s\n", cfg.DBPath)
	return err
}
