package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/skills-assessment-api/internal/dto"
	"github.com/noah-isme/skills-assessment-api/internal/service"
	"github.com/noah-isme/skills-assessment-api/internal/utils"
)

// AnalysisHandler exposes the violation report and candidate analysis endpoints. Which variant
// answers is decided when the services are constructed.
type AnalysisHandler struct {
	reporter service.ViolationReporter
	analyzer service.CandidateAnalyzer
	logger   zerolog.Logger
}

// NewAnalysisHandler constructs an analysis handler.
func NewAnalysisHandler(reporter service.ViolationReporter, analyzer service.CandidateAnalyzer, logger zerolog.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		reporter: reporter,
		analyzer: analyzer,
		logger:   logger.With().Str("component", "analysis_handler").Logger(),
	}
}

// Register wires analysis routes.
func (h *AnalysisHandler) Register(router fiber.Router) {
	router.Post("/generate-violation-report", h.violationReport)
	router.Post("/analyze-candidate", h.analyzeCandidate)
}

func (h *AnalysisHandler) violationReport(c *fiber.Ctx) error {
	var payload dto.ViolationReportRequest
	if err := decodeBody(c, &payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	report, err := h.reporter.Report(c.UserContext(), payload)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("violation report failed")
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SendRawJSON(c, fiber.StatusOK, report)
}

func (h *AnalysisHandler) analyzeCandidate(c *fiber.Ctx) error {
	var payload dto.AnalyzeCandidateRequest
	if err := decodeBody(c, &payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	analysis, err := h.analyzer.Analyze(c.UserContext(), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err))
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("candidate analysis failed")
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SendRawJSON(c, fiber.StatusOK, analysis)
}
