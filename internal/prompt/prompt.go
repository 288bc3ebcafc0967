// Package prompt renders the natural-language prompts sent to the chat model. Each prompt embeds
// the JSON shape the model is asked to return.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/noah-isme/skills-assessment-api/internal/models"
)

// AssessmentParams describes the assessment to generate.
type AssessmentParams struct {
	JobRole           string
	Type              string
	Difficulty        string
	NumberOfQuestions string
}

// GenerateAssessment asks for a full assessment record with an answer key.
func GenerateAssessment(p AssessmentParams) string {
	return fmt.Sprintf(`Create a %[1]s assessment for a %[2]s position with %[3]s difficulty level.
Generate %[4]s questions.

The assessment should include:
- Clear instructions
- Relevant questions for the role
- Appropriate difficulty level
- Answer key or evaluation criteria

Return the response as a JSON object with this structure:
{
    "title": "Assessment title",
    "description": "Assessment description",
    "jobRole": "%[2]s",
    "type": "%[1]s",
    "difficulty": "%[3]s",
    "questions": [
        {
            "id": "q1",
            "question": "Question text",
            "type": "multiple_choice",
            "options": ["Option1", "Option2", "Option3", "Option4"],
            "correctAnswer": "0",
            "codeTemplate": "",
            "testCases": []
        }
    ],
    "timeLimit": 30,
    "passingScore": 70
}
`, p.Type, p.JobRole, p.Difficulty, p.NumberOfQuestions)
}

// ViolationParams carries the proctoring events recorded for one assignment.
type ViolationParams struct {
	AssignmentID string
	Violations   []json.RawMessage
}

// ViolationReport asks for a severity breakdown and recommendations.
func ViolationReport(p ViolationParams) (string, error) {
	violations := p.Violations
	if violations == nil {
		violations = []json.RawMessage{}
	}

	listing, err := json.MarshalIndent(violations, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode violations: %w", err)
	}

	return fmt.Sprintf(`Analyze these proctoring violations for an assessment and generate a comprehensive report:

Assignment ID: %s
Total Violations: %d

Violations:
%s

Provide a JSON response with this structure:
{
    "summary": "Brief summary of the findings",
    "severityBreakdown": {
        "low": 0,
        "medium": 0,
        "high": 0
    },
    "recommendations": [
        "Recommendation 1",
        "Recommendation 2"
    ],
    "confidence": "high|medium|low"
}

Analyze patterns, frequency, and severity of violations to provide meaningful insights.
`, p.AssignmentID, len(violations), listing), nil
}

// CandidateParams gathers the records describing one candidate's attempt.
type CandidateParams struct {
	Candidate      models.Record
	Assessment     models.Record
	Submission     models.Record
	JobDescription string
}

// CandidateAnalysis asks for a hiring-oriented evaluation of a submission.
func CandidateAnalysis(p CandidateParams) string {
	score := p.Submission.String("score", "0")

	var b strings.Builder
	b.WriteString("Analyze this candidate's assessment performance and provide a comprehensive evaluation:\n\n")
	fmt.Fprintf(&b, "Candidate: %s (%s)\n", p.Candidate.String("name", "Unknown"), p.Candidate.String("email", "No email"))
	fmt.Fprintf(&b, "Assessment: %s - %s\n", p.Assessment.String("title", "Unknown"), p.Assessment.String("jobRole", "No role"))
	fmt.Fprintf(&b, "Score: %s%% (Passing: %s%%)\n", score, p.Assessment.String("passingScore", "70"))
	fmt.Fprintf(&b, "Time Spent: %s minutes\n", p.Submission.String("timeSpent", "N/A"))
	fmt.Fprintf(&b, "Violations: %s\n\n", p.Submission.String("violations", "0"))
	fmt.Fprintf(&b, "Job Description: %s\n\n", p.JobDescription)
	b.WriteString("Provide a JSON response with this structure:\n")
	b.WriteString("{\n")
	b.WriteString("    \"skillsMatch\": 85,\n")
	fmt.Fprintf(&b, "    \"overallScore\": %s,\n", score)
	b.WriteString("    \"overallAssessment\": \"Overall assessment summary\",\n")
	b.WriteString("    \"strengths\": [\"Strength 1\", \"Strength 2\"],\n")
	b.WriteString("    \"areasForImprovement\": [\"Area 1\", \"Area 2\"],\n")
	b.WriteString("    \"recommendation\": \"Final recommendation for hiring\"\n")
	b.WriteString("}\n\n")
	b.WriteString("Analyze the candidate's performance, skills match with the job requirements, and provide\n")
	b.WriteString("actionable insights for the hiring team.\n")
	return b.String()
}
