package dto

import "github.com/noah-isme/skills-assessment-api/internal/models"

// ExportSubmissionsRequest lists the submissions of one assessment to be exported as a
// spreadsheet. Each submission may embed a "candidate" object with name and email.
type ExportSubmissionsRequest struct {
	Assessment  models.Record   `json:"assessment"`
	Submissions []models.Record `json:"submissions" validate:"required,min=1"`
}
