package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/skills-assessment-api/internal/config"
	"github.com/noah-isme/skills-assessment-api/internal/utils"
)

// HealthResponse represents the payload returned by the health endpoint.
type HealthResponse struct {
	Status          string            `json:"status"`
	Message         string            `json:"message"`
	Services        map[string]string `json:"services"`
	EmailConfigured bool              `json:"email_configured"`
	SMTPServer      string            `json:"smtp_server"`
	SMTPPort        int               `json:"smtp_port"`
	LLMProvider     string            `json:"llm_provider"`
	AnalysisMode    string            `json:"analysis_mode"`
	ViolationsMode  string            `json:"violation_report_mode"`
	Timestamp       time.Time         `json:"timestamp"`
}

// HealthCheck returns a handler that reports which capabilities are usable.
func HealthCheck(cfg config.Config) fiber.Handler {
	emailStatus := "inactive"
	if cfg.EmailConfigured() {
		emailStatus = "active"
	}

	return func(c *fiber.Ctx) error {
		payload := HealthResponse{
			Status:  "ok",
			Message: "Backend is running",
			Services: map[string]string{
				"ai_generation":       "active",
				"email_service":       emailStatus,
				"violation_reporting": "active",
				"candidate_analysis":  "active",
			},
			EmailConfigured: cfg.EmailConfigured(),
			SMTPServer:      cfg.SMTPHost,
			SMTPPort:        cfg.SMTPPort,
			LLMProvider:     cfg.LLMProvider,
			AnalysisMode:    cfg.AnalysisMode,
			ViolationsMode:  cfg.ViolationsMode,
			Timestamp:       time.Now().UTC(),
		}

		return utils.SendJSON(c, fiber.StatusOK, payload)
	}
}
