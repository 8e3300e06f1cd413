package service

import (
	"math"

	"github.com/godilite/interview-coach/internal/scores"
)

// skillWeight is one weighted contribution to a skill.
type skillWeight struct {
	skill  string
	source func(o InterviewOutcome) int
	weight float64
}

func overall(o InterviewOutcome) int       { return o.Scores.Overall }
func technical(o InterviewOutcome) int     { return o.Scores.Technical }
func communication(o InterviewOutcome) int { return o.Scores.Communication }

var (
	baseSoftWeights = []skillWeight{
		{SkillCommunication, communication, 1.0},
		{SkillProblemSolving, overall, 0.4},
	}
	behavioralSoftWeights = []skillWeight{
		{SkillTeamwork, communication, 0.5},
		{SkillAdaptability, communication, 0.4},
		{SkillEmotionalIntelligence, communication, 0.4},
	}
	technicalSoftWeights = []skillWeight{
		{SkillTeamwork, overall, 0.2},
		{SkillAdaptability, overall, 0.2},
		{SkillEmotionalIntelligence, communication, 0.3},
	}

	// Mobile has no field-specific skill.
	hardWeightsByField = map[DevField][]skillWeight{
		FieldFrontend: {
			{SkillJavaScript, technical, 0.5},
			{SkillReact, technical, 0.5},
		},
		FieldBackend: {
			{SkillNodeJS, technical, 0.5},
			{SkillSQL, technical, 0.5},
		},
		FieldFullstack: {
			{SkillJavaScript, technical, 0.4},
			{SkillReact, technical, 0.3},
			{SkillNodeJS, technical, 0.3},
			{SkillSQL, technical, 0.3},
		},
	}
	systemDesignWeight = skillWeight{SkillSystemDesign, technical, 0.3}
)

// RecordInterview folds one outcome into prior statistics and returns the
// result. prior may be nil or malformed; it is never modified.
func RecordInterview(outcome InterviewOutcome, prior *Stats) Stats {
	outcome = outcome.normalized()

	var stats Stats
	if prior == nil {
		stats = NewStats()
	} else {
		stats = prior.Repair()
	}

	stats.TotalInterviews++
	if outcome.Passed() {
		stats.PassedInterviews++
	} else {
		stats.FailedInterviews++
	}

	stats.PerformanceHistory = append(stats.PerformanceHistory, outcome.Scores.Overall)
	if n := len(stats.PerformanceHistory); n > MaxHistory {
		stats.PerformanceHistory = stats.PerformanceHistory[n-MaxHistory:]
	}

	applyWeights(stats.SoftSkills, outcome, baseSoftWeights)
	if outcome.InterviewType.coversBehavioral() {
		applyWeights(stats.SoftSkills, outcome, behavioralSoftWeights)
	} else {
		applyWeights(stats.SoftSkills, outcome, technicalSoftWeights)
	}

	if outcome.InterviewType.coversTechnical() {
		applyWeights(stats.HardSkills, outcome, hardWeightsByField[outcome.DevField])
		applyWeights(stats.HardSkills, outcome, []skillWeight{systemDesignWeight})
	}

	return stats
}

func (o InterviewOutcome) normalized() InterviewOutcome {
	o.Scores = scores.Clamp(o.Scores)
	if o.InterviewType == "" {
		o.InterviewType = InterviewTechnical
	}
	if o.DevField == "" {
		o.DevField = FieldFrontend
	}
	return o
}

func applyWeights(skills map[string]int, o InterviewOutcome, weights []skillWeight) {
	for _, w := range weights {
		skills[w.skill] = smooth(skills[w.skill], float64(w.source(o))*w.weight)
	}
}

// smooth halves the distance between old and contribution:
// min(100, round((old + contribution) / 2)), rounding halves up.
func smooth(old int, contribution float64) int {
	v := math.Floor((float64(old)+contribution)/2 + 0.5)
	return clampSkill(int(v))
}

func clampSkill(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
