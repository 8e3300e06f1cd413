package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/godilite/interview-coach/internal/scores"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract scores from a rating message",
	Long:  "Parses an interviewer rating (from --text or stdin) into overall, technical and communication scores. Missing scores fall back to defaults.",
	RunE:  runExtract,
}

var extractText string

type extractOutput struct {
	scores.ScoreSet
	Passed bool `json:"passed"`
}

func init() {
	extractCmd.Flags().StringVarP(&extractText, "text", "t", "", "Rating text; read from stdin when empty")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	text := extractText
	if text == "" {
		in, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(in)
	}

	s := scores.Extract(text)
	return writeJSON(cmd.OutOrStdout(), extractOutput{ScoreSet: s, Passed: s.Passed()})
}
