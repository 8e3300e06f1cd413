package service

import (
	"fmt"

	"github.com/godilite/interview-coach/internal/scores"
)

// MaxHistory bounds Stats.PerformanceHistory.
const MaxHistory = 10

// InterviewType is the kind of interview the user picked before starting.
type InterviewType string

const (
	InterviewTechnical              InterviewType = "Technical"
	InterviewBehavioral             InterviewType = "Behavioral"
	InterviewTechnicalAndBehavioral InterviewType = "Technical & Behavioral"
)

// DevField is the declared specialization that gates hard-skill updates.
type DevField string

const (
	FieldFrontend  DevField = "Frontend"
	FieldBackend   DevField = "Backend"
	FieldFullstack DevField = "Fullstack"
	FieldMobile    DevField = "Mobile"
)

// ParseInterviewType maps an empty value to Technical and rejects unknown ones.
func ParseInterviewType(s string) (InterviewType, error) {
	switch t := InterviewType(s); t {
	case "":
		return InterviewTechnical, nil
	case InterviewTechnical, InterviewBehavioral, InterviewTechnicalAndBehavioral:
		return t, nil
	default:
		return "", fmt.Errorf("%w: unknown interview type %q", ErrInvalidOutcome, s)
	}
}

// ParseDevField maps an empty value to Frontend and rejects unknown ones.
func ParseDevField(s string) (DevField, error) {
	switch f := DevField(s); f {
	case "":
		return FieldFrontend, nil
	case FieldFrontend, FieldBackend, FieldFullstack, FieldMobile:
		return f, nil
	default:
		return "", fmt.Errorf("%w: unknown dev field %q", ErrInvalidOutcome, s)
	}
}

func (t InterviewType) coversBehavioral() bool {
	return t == InterviewBehavioral || t == InterviewTechnicalAndBehavioral
}

func (t InterviewType) coversTechnical() bool {
	return t == InterviewTechnical || t == InterviewTechnicalAndBehavioral
}

// Soft skill keys.
const (
	SkillCommunication         = "Communication"
	SkillProblemSolving        = "Problem Solving"
	SkillTeamwork              = "Teamwork and Collaboration"
	SkillAdaptability          = "Adaptability"
	SkillEmotionalIntelligence = "Emotional Intelligence"
)

// Hard skill keys.
const (
	SkillJavaScript   = "JavaScript"
	SkillReact        = "React"
	SkillNodeJS       = "Node.js"
	SkillSQL          = "SQL"
	SkillSystemDesign = "System Design"
)

// SoftSkillNames lists the soft skills in display order.
var SoftSkillNames = []string{
	SkillCommunication,
	SkillProblemSolving,
	SkillTeamwork,
	SkillAdaptability,
	SkillEmotionalIntelligence,
}

// HardSkillNames lists the hard skills in display order.
var HardSkillNames = []string{
	SkillJavaScript,
	SkillReact,
	SkillNodeJS,
	SkillSQL,
	SkillSystemDesign,
}

// InterviewOutcome is the result of one finished interview session.
type InterviewOutcome struct {
	Scores        scores.ScoreSet
	InterviewType InterviewType
	DevField      DevField
}

// Passed is derived from the overall score.
func (o InterviewOutcome) Passed() bool {
	return o.Scores.Passed()
}

// Stats is the persisted per-user statistics blob. JSON keys match the blob
// written by the mobile client.
type Stats struct {
	TotalInterviews    int            `json:"totalInterviews"`
	PassedInterviews   int            `json:"passedInterviews"`
	FailedInterviews   int            `json:"failedInterviews"`
	PerformanceHistory []int          `json:"performanceHistory"`
	SoftSkills         map[string]int `json:"softSkills"`
	HardSkills         map[string]int `json:"hardSkills"`
}

// NewStats returns the zero-valued statistics of a user with no interviews.
func NewStats() Stats {
	return Stats{
		PerformanceHistory: []int{},
		SoftSkills:         zeroSkills(SoftSkillNames),
		HardSkills:         zeroSkills(HardSkillNames),
	}
}

func zeroSkills(names []string) map[string]int {
	m := make(map[string]int, len(names))
	for _, n := range names {
		m[n] = 0
	}
	return m
}

// Clone returns a deep copy of s.
func (s Stats) Clone() Stats {
	out := s
	out.PerformanceHistory = append([]int(nil), s.PerformanceHistory...)
	out.SoftSkills = copySkills(s.SoftSkills)
	out.HardSkills = copySkills(s.HardSkills)
	return out
}

func copySkills(m map[string]int) map[string]int {
	if m == nil {
		return nil
	}
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Repair returns a copy of s with every fixed skill key present, values and
// history entries in [0,100], history trimmed to MaxHistory and counters
// consistent.
func (s Stats) Repair() Stats {
	out := s.Clone()

	if out.PerformanceHistory == nil {
		out.PerformanceHistory = []int{}
	}
	for i, v := range out.PerformanceHistory {
		out.PerformanceHistory[i] = clampSkill(v)
	}
	if n := len(out.PerformanceHistory); n > MaxHistory {
		out.PerformanceHistory = out.PerformanceHistory[n-MaxHistory:]
	}

	out.SoftSkills = repairSkills(out.SoftSkills, SoftSkillNames)
	out.HardSkills = repairSkills(out.HardSkills, HardSkillNames)

	if out.PassedInterviews < 0 {
		out.PassedInterviews = 0
	}
	if out.FailedInterviews < 0 {
		out.FailedInterviews = 0
	}
	out.TotalInterviews = out.PassedInterviews + out.FailedInterviews

	return out
}

func repairSkills(m map[string]int, names []string) map[string]int {
	if m == nil {
		m = make(map[string]int, len(names))
	}
	for _, n := range names {
		m[n] = clampSkill(m[n])
	}
	return m
}
