package main

import (
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Print a user's stats, average score and achievements",
	RunE:  runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	svc, db, err := openService(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	return writeJSON(cmd.OutOrStdout(), svc.GetProfile(ctx, userID))
}
