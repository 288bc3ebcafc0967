package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/skills-assessment-api/internal/config"
	"github.com/noah-isme/skills-assessment-api/internal/handler"
	"github.com/noah-isme/skills-assessment-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AssessmentHandler *handler.AssessmentHandler
	AnalysisHandler   *handler.AnalysisHandler
	EmailHandler      *handler.EmailHandler
	ExportHandler     *handler.ExportHandler
}

// Register wires the HTTP routes into the fiber application. Routes live at the root path, where
// the frontend expects them. Unmatched requests fall through to handler.NotFound.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})

	api.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	if deps.AssessmentHandler != nil {
		deps.AssessmentHandler.Register(api)
	}
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.Register(api)
	}
	if deps.EmailHandler != nil {
		deps.EmailHandler.Register(api)
	}
	if deps.ExportHandler != nil {
		deps.ExportHandler.Register(api)
	}

	app.Use(handler.NotFound)
}
