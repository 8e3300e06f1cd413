package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godilite/interview-coach/internal/repository/models"
	"github.com/godilite/interview-coach/internal/service"
)

// run executes coachctl in-process. Flag variables are package globals, so
// they are reset before every run.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	dbPath, userID, verbose = "", "", false
	extractText = ""
	recordType, recordDevField = "", ""
	historyLimit = 10

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestExtractCommand(t *testing.T) {
	t.Run("from flag", func(t *testing.T) {
		out, err := run(t, "", "extract", "--text", "Technical Skills: 82%\nOverall Score: 79%")
		require.NoError(t, err)

		var got extractOutput
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, 79, got.Overall)
		assert.Equal(t, 82, got.Technical)
		assert.Equal(t, 70, got.Communication)
		assert.True(t, got.Passed)
	})

	t.Run("from stdin", func(t *testing.T) {
		out, err := run(t, "Your score is 40%", "extract")
		require.NoError(t, err)

		var got extractOutput
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, 40, got.Overall)
		assert.False(t, got.Passed)
	})
}

func TestRecordProfileHistory(t *testing.T) {
	db := filepath.Join(t.TempDir(), "coach.db")

	out, err := run(t, "", "migrate", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "migrations applied")

	for i := 0; i < 2; i++ {
		out, err = run(t, "", "record", "--db", db, "--user", "alice",
			"--overall", "92", "--technical", "90", "--communication", "88", "--type", "Behavioral")
		require.NoError(t, err)
	}
	var recorded service.RecordResult
	require.NoError(t, json.Unmarshal([]byte(out), &recorded))
	assert.True(t, recorded.Passed)
	assert.Equal(t, 2, recorded.Stats.TotalInterviews)

	out, err = run(t, "", "profile", "--db", db, "--user", "alice")
	require.NoError(t, err)
	var profile service.Profile
	require.NoError(t, json.Unmarshal([]byte(out), &profile))
	assert.Equal(t, 2, profile.Stats.PassedInterviews)
	assert.Equal(t, 92, profile.AverageScore)
	assert.Equal(t, []string{service.AchievementNewUser, service.AchievementHighPerformer, service.AchievementInterviewMaster}, profile.Achievements)

	out, err = run(t, "", "history", "--db", db, "--user", "alice", "--limit", "1")
	require.NoError(t, err)
	var results []models.InterviewResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "Behavioral", results[0].InterviewType)
	assert.Equal(t, 92, results[0].Overall)

	out, err = run(t, "", "profile", "--db", db, "--user", "bob")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &profile))
	assert.Zero(t, profile.Stats.TotalInterviews)
}

func TestRecordCommand_RejectsUnknownType(t *testing.T) {
	_, err := run(t, "", "record", "--db", filepath.Join(t.TempDir(), "coach.db"), "--type", "Pairing")

	assert.ErrorIs(t, err, service.ErrInvalidOutcome)
}
