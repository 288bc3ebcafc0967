package dto

import "github.com/noah-isme/skills-assessment-api/internal/models"

// Assessment email kinds.
const (
	EmailTypeAssigned  = "assigned"
	EmailTypeCompleted = "completed"
)

// SendAssessmentEmailRequest asks for an invitation or completion email. An empty Type means
// EmailTypeAssigned; any other value than assigned selects the completion email.
type SendAssessmentEmailRequest struct {
	Assessment     models.Record `json:"assessment"`
	CandidateEmail string        `json:"candidateEmail"`
	Type           string        `json:"type"`
	Duration       string        `json:"duration"`
}

// SendResultEmailRequest asks for a pass or fail results email.
type SendResultEmailRequest struct {
	Assessment models.Record `json:"assessment"`
	Submission models.Record `json:"submission"`
	Candidate  models.Record `json:"candidate"`
}

// EmailResponse reports the outcome of an email request.
type EmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
