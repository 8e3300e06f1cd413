package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/godilite/interview-coach/internal/scores"
	"github.com/godilite/interview-coach/internal/service"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a completed interview",
	Long:  "Aggregates one interview outcome into the user's stats and appends it to the results log.",
	RunE:  runRecord,
}

var (
	recordOverall       int
	recordTechnical     int
	recordCommunication int
	recordType          string
	recordDevField      string
)

func init() {
	recordCmd.Flags().IntVar(&recordOverall, "overall", scores.Defaults.Overall, "Overall score (0-100)")
	recordCmd.Flags().IntVar(&recordTechnical, "technical", scores.Defaults.Technical, "Technical score (0-100)")
	recordCmd.Flags().IntVar(&recordCommunication, "communication", scores.Defaults.Communication, "Communication score (0-100)")
	recordCmd.Flags().StringVar(&recordType, "type", "", `Interview type: "Technical", "Behavioral" or "Technical & Behavioral" (default Technical)`)
	recordCmd.Flags().StringVar(&recordDevField, "dev-field", "", "Developer field: Frontend, Backend, Fullstack or Mobile")
	rootCmd.AddCommand(recordCmd)
}

func runRecord(cmd *cobra.Command, _ []string) error {
	interviewType, err := service.ParseInterviewType(recordType)
	if err != nil {
		return err
	}
	devField, err := service.ParseDevField(recordDevField)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	svc, db, err := openService(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	result, err := svc.RecordOutcome(ctx, userID, service.InterviewOutcome{
		Scores: scores.Clamp(scores.ScoreSet{
			Overall:       recordOverall,
			Technical:     recordTechnical,
			Communication: recordCommunication,
		}),
		InterviewType: interviewType,
		DevField:      devField,
	})
	if err != nil {
		return fmt.Errorf("failed to record interview: %w", err)
	}
	return writeJSON(cmd.OutOrStdout(), result)
}
