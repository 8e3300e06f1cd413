package service

import "math"

// Achievement tags, in the order they are reported.
const (
	AchievementNewUser            = "New User"
	AchievementRegularInterviewer = "Regular Interviewer"
	AchievementInterviewPro       = "Interview Pro"
	AchievementSuccessStreak      = "Success Streak"
	AchievementHighPerformer      = "High Performer"
	AchievementInterviewMaster    = "Interview Master"
)

// AverageScore is the rounded mean of the strictly positive history entries.
// Zero entries are placeholders and do not count.
func AverageScore(history []int) int {
	sum, n := 0, 0
	for _, v := range history {
		if v > 0 {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return int(math.Floor(float64(sum)/float64(n) + 0.5))
}

// DeriveAchievements computes the achievement tags of stats. Rules are
// independent; "New User" is always first.
func DeriveAchievements(stats Stats) []string {
	avg := AverageScore(stats.PerformanceHistory)

	out := []string{AchievementNewUser}
	if stats.TotalInterviews >= 5 {
		out = append(out, AchievementRegularInterviewer)
	}
	if stats.TotalInterviews >= 10 {
		out = append(out, AchievementInterviewPro)
	}
	if stats.PassedInterviews >= 5 {
		out = append(out, AchievementSuccessStreak)
	}
	if avg >= 80 {
		out = append(out, AchievementHighPerformer)
	}
	if avg >= 90 {
		out = append(out, AchievementInterviewMaster)
	}
	return out
}
