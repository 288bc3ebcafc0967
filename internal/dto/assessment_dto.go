package dto

import (
	"encoding/json"

	"github.com/noah-isme/skills-assessment-api/internal/models"
)

// Defaults applied to an assessment generation request.
const (
	DefaultJobRole           = "Software Developer"
	DefaultAssessmentType    = "multiple_choice"
	DefaultDifficulty        = "intermediate"
	DefaultNumberOfQuestions = "5"
)

// GenerateAssessmentRequest describes the assessment the model should write.
type GenerateAssessmentRequest struct {
	JobRole           string      `json:"jobRole" validate:"omitempty,max=200"`
	Type              string      `json:"type" validate:"omitempty,max=50"`
	Difficulty        string      `json:"difficulty" validate:"omitempty,max=50"`
	NumberOfQuestions models.Text `json:"numberOfQuestions" validate:"omitempty,max=10"`
}

// WithDefaults fills every empty field.
func (r GenerateAssessmentRequest) WithDefaults() GenerateAssessmentRequest {
	if r.JobRole == "" {
		r.JobRole = DefaultJobRole
	}
	if r.Type == "" {
		r.Type = DefaultAssessmentType
	}
	if r.Difficulty == "" {
		r.Difficulty = DefaultDifficulty
	}
	if r.NumberOfQuestions == "" {
		r.NumberOfQuestions = DefaultNumberOfQuestions
	}
	return r
}

// Assessment is the record the generator is asked to produce. The generate endpoint returns the
// model's object verbatim; this type documents and checks its shape.
type Assessment struct {
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	JobRole      string            `json:"jobRole"`
	Type         string            `json:"type"`
	Difficulty   string            `json:"difficulty"`
	Questions    []models.Question `json:"questions"`
	TimeLimit    float64           `json:"timeLimit"`
	PassingScore float64           `json:"passingScore"`
}

// EvaluateSubmissionRequest carries an answer key and the candidate's answers.
type EvaluateSubmissionRequest struct {
	Questions    []models.Question      `json:"questions"`
	Answers      map[string]models.Text `json:"answers"`
	PassingScore *float64               `json:"passingScore"`
}

// ViolationReportRequest lists proctoring events for one assignment. Violations are opaque to
// the service apart from an optional "severity" field.
type ViolationReportRequest struct {
	AssignmentID models.Text       `json:"assignmentId"`
	Violations   []json.RawMessage `json:"violations"`
}

// ViolationReport is the summary returned by the violation report endpoint.
type ViolationReport struct {
	Summary           string            `json:"summary"`
	SeverityBreakdown SeverityBreakdown `json:"severityBreakdown"`
	Recommendations   []string          `json:"recommendations"`
	Confidence        string            `json:"confidence"`
}

// SeverityBreakdown counts violations per severity.
type SeverityBreakdown struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// AnalyzeCandidateRequest bundles one candidate's attempt for analysis.
type AnalyzeCandidateRequest struct {
	Assessment     models.Record `json:"assessment"`
	Submission     models.Record `json:"submission"`
	Candidate      models.Record `json:"candidate"`
	JobDescription string        `json:"jobDescription" validate:"max=20000"`
}

// CandidateAnalysis is the rule-based analysis response.
type CandidateAnalysis struct {
	SkillsMatch         float64           `json:"skillsMatch"`
	OverallScore        interface{}       `json:"overallScore"`
	TimeEfficiency      float64           `json:"timeEfficiency"`
	OverallAssessment   string            `json:"overallAssessment"`
	Strengths           []string          `json:"strengths"`
	AreasForImprovement []string          `json:"areasForImprovement"`
	Recommendation      string            `json:"recommendation"`
	Tier                string            `json:"tier"`
	AnalysisDate        string            `json:"analysisDate"`
	AssessmentDetails   AssessmentDetails `json:"assessmentDetails"`
}

// AssessmentDetails echoes the descriptive fields of the analysed assessment.
type AssessmentDetails struct {
	Title      string `json:"title"`
	Difficulty string `json:"difficulty"`
	JobRole    string `json:"jobRole"`
}

