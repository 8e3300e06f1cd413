package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List a user's most recent interview results",
	RunE:  runHistory,
}

var historyLimit int

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Maximum number of results")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	svc, db, err := openService(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	results, err := svc.ListRecentResults(ctx, userID, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list results: %w", err)
	}
	return writeJSON(cmd.OutOrStdout(), results)
}
