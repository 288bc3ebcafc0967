package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/skills-assessment-api/internal/dto"
	"github.com/noah-isme/skills-assessment-api/internal/service"
	"github.com/noah-isme/skills-assessment-api/internal/utils"
)

// AssessmentHandler exposes assessment generation and submission scoring.
type AssessmentHandler struct {
	service service.AssessmentService
	logger  zerolog.Logger
}

// NewAssessmentHandler constructs an assessment handler.
func NewAssessmentHandler(service service.AssessmentService, logger zerolog.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		service: service,
		logger:  logger.With().Str("component", "assessment_handler").Logger(),
	}
}

// Register wires assessment routes.
func (h *AssessmentHandler) Register(router fiber.Router) {
	router.Post("/generate-assessment", h.generate)
	router.Post("/evaluate-submission", h.evaluate)
}

func (h *AssessmentHandler) generate(c *fiber.Ctx) error {
	var payload dto.GenerateAssessmentRequest
	if err := decodeBody(c, &payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	assessment, err := h.service.Generate(c.UserContext(), payload)
	if err != nil {
		return h.fail(c, err, "assessment generation failed")
	}

	return utils.SendRawJSON(c, fiber.StatusOK, assessment)
}

func (h *AssessmentHandler) evaluate(c *fiber.Ctx) error {
	var payload dto.EvaluateSubmissionRequest
	if err := decodeBody(c, &payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := h.service.Evaluate(c.UserContext(), payload)
	if err != nil {
		return h.fail(c, err, "submission evaluation failed")
	}

	return utils.SendJSON(c, fiber.StatusOK, result)
}

// fail maps validation errors to 400 and everything else to 500 carrying the error text.
func (h *AssessmentHandler) fail(c *fiber.Ctx, err error, msg string) error {
	if isValidationError(err) {
		return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err))
	}
	requestLogger(h.logger, c).Error().Err(err).Msg(msg)
	return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
}
