package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/skills-assessment-api/internal/dto"
	"github.com/noah-isme/skills-assessment-api/internal/service"
	"github.com/noah-isme/skills-assessment-api/internal/utils"
)

// EmailHandler exposes the candidate email endpoints. Delivery failures are answered with 200
// and success=false.
type EmailHandler struct {
	service service.EmailService
	logger  zerolog.Logger
}

// NewEmailHandler constructs an email handler.
func NewEmailHandler(service service.EmailService, logger zerolog.Logger) *EmailHandler {
	return &EmailHandler{
		service: service,
		logger:  logger.With().Str("component", "email_handler").Logger(),
	}
}

// Register wires email routes.
func (h *EmailHandler) Register(router fiber.Router) {
	router.Post("/send-assessment-email", h.sendAssessmentEmail)
	router.Post("/send-result-email", h.sendResultEmail)
}

func (h *EmailHandler) sendAssessmentEmail(c *fiber.Ctx) error {
	var payload dto.SendAssessmentEmailRequest
	if err := decodeBody(c, &payload); err != nil {
		return utils.SendEmailFailure(c, fiber.StatusBadRequest, err.Error())
	}

	response, err := h.service.SendAssessmentEmail(c.UserContext(), payload)
	if err != nil {
		return h.fail(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, response)
}

func (h *EmailHandler) sendResultEmail(c *fiber.Ctx) error {
	var payload dto.SendResultEmailRequest
	if err := decodeBody(c, &payload); err != nil {
		return utils.SendEmailFailure(c, fiber.StatusBadRequest, err.Error())
	}

	response, err := h.service.SendResultEmail(c.UserContext(), payload)
	if err != nil {
		return h.fail(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, response)
}

func (h *EmailHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrCandidateEmailRequired):
		return utils.SendEmailFailure(c, fiber.StatusBadRequest, "Candidate email is required")
	case errors.Is(err, service.ErrAssessmentRequired):
		return utils.SendEmailFailure(c, fiber.StatusBadRequest, "Assessment data is required")
	case isValidationError(err):
		return utils.SendEmailFailure(c, fiber.StatusBadRequest, validationMessage(err))
	default:
		requestLogger(h.logger, c).Error().Err(err).Msg("email request failed")
		return utils.SendEmailFailure(c, fiber.StatusInternalServerError, "Server error: "+err.Error())
	}
}
