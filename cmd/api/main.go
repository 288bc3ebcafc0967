package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/skills-assessment-api/internal/config"
	"github.com/noah-isme/skills-assessment-api/internal/handler"
	"github.com/noah-isme/skills-assessment-api/internal/middleware"
	"github.com/noah-isme/skills-assessment-api/internal/router"
	"github.com/noah-isme/skills-assessment-api/internal/service"
	"github.com/noah-isme/skills-assessment-api/internal/templates"
	"github.com/noah-isme/skills-assessment-api/pkg/ai"
	"github.com/noah-isme/skills-assessment-api/pkg/mailer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("app", cfg.AppName).Logger()

	completer, closeCompleter, err := newCompleter(cfg, logger)
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}
	defer closeCompleter()

	validate := validator.New(validator.WithRequiredStructEnabled())
	extractor := ai.BraceSpan{}

	smtp := mailer.NewSMTPMailer(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		Timeout:  cfg.SMTPTimeout,
		Logger:   logger,
	})
	if !smtp.Configured() {
		logger.Warn().Msg("EMAIL_USER and EMAIL_PASSWORD not set, email endpoints will report failure")
	}

	var reporter service.ViolationReporter
	switch cfg.ViolationsMode {
	case config.ModeRuleBased:
		reporter = service.NewRuleBasedViolationReporter(logger)
	default:
		reporter = service.NewLLMViolationReporter(completer, extractor, logger)
	}

	var analyzer service.CandidateAnalyzer
	switch cfg.AnalysisMode {
	case config.ModeLLM:
		analyzer = service.NewLLMAnalyzer(completer, extractor, validate, logger)
	default:
		analyzer = service.NewRuleBasedAnalyzer(validate, logger)
	}

	assessmentService := service.NewAssessmentService(completer, extractor, validate, logger)
	emailService := service.NewEmailService(smtp, templates.NewRenderer(cfg.EmailEscapeHTML), validate, logger)
	exportService := service.NewExportService(validate, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
		ErrorHandler: handler.ErrorHandler(logger),
	})

	middleware.Register(app, middleware.Config{
		Logger:       &logger,
		AllowOrigins: cfg.CORSOrigins,
		AccessLog:    cfg.AppEnv == "development",
	})
	router.Register(app, cfg, router.Dependencies{
		AssessmentHandler: handler.NewAssessmentHandler(assessmentService, logger),
		AnalysisHandler:   handler.NewAnalysisHandler(reporter, analyzer, logger),
		EmailHandler:      handler.NewEmailHandler(emailService, logger),
		ExportHandler:     handler.NewExportHandler(exportService, logger),
	})

	logger.Info().
		Str("address", cfg.HTTPAddress()).
		Str("llm_provider", completer.Provider()).
		Str("analysis_mode", cfg.AnalysisMode).
		Str("violation_report_mode", cfg.ViolationsMode).
		Bool("email_configured", smtp.Configured()).
		Msg("starting server")

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app, logger)
}

// newCompleter builds the configured model backend. The returned func releases it.
func newCompleter(cfg config.Config, logger zerolog.Logger) (ai.Completer, func(), error) {
	switch cfg.LLMProvider {
	case config.ProviderVertexAI:
		client, err := ai.NewVertexClient(context.Background(), ai.VertexConfig{
			ProjectID:       cfg.VertexProject,
			Location:        cfg.VertexLocation,
			Model:           cfg.VertexModel,
			CredentialsFile: cfg.VertexCredentialsFile,
			Timeout:         cfg.LLMTimeout,
			Logger:          logger,
		})
		if err != nil {
			return nil, nil, err
		}
		return client, func() {
			if err := client.Close(); err != nil {
				logger.Warn().Err(err).Msg("failed to close vertex client")
			}
		}, nil
	default:
		client, err := ai.NewOpenAIClient(ai.OpenAIConfig{
			APIKey:  cfg.LLMAPIKey,
			BaseURL: cfg.LLMBaseURL,
			Model:   cfg.LLMModel,
			Timeout: cfg.LLMTimeout,
			Logger:  logger,
		})
		if err != nil {
			return nil, nil, err
		}
		return client, func() {}, nil
	}
}

func waitForShutdown(app *fiber.App, logger zerolog.Logger) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	logger.Info().Msg("server stopped")
}
