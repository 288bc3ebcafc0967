package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/skills-assessment-api/internal/dto"
	"github.com/noah-isme/skills-assessment-api/internal/observability"
	"github.com/noah-isme/skills-assessment-api/internal/templates"
	"github.com/noah-isme/skills-assessment-api/pkg/mailer"
)

var (
	// ErrCandidateEmailRequired indicates the recipient address is missing.
	ErrCandidateEmailRequired = errors.New("candidate email is required")
	// ErrAssessmentRequired indicates the assessment record is missing or empty.
	ErrAssessmentRequired = errors.New("assessment data is required")
)

const (
	emailSentMessage     = "Email sent successfully"
	emailNotConfigured   = "Email configuration not set. Please configure EMAIL_USER and EMAIL_PASSWORD."
	outcomeSent          = "sent"
	outcomeNotConfigured = "not_configured"
)

// EmailService renders and delivers candidate emails. Delivery failures are reported in the
// response rather than as errors; errors are reserved for invalid input and rendering faults.
type EmailService interface {
	SendAssessmentEmail(ctx context.Context, req dto.SendAssessmentEmailRequest) (dto.EmailResponse, error)
	SendResultEmail(ctx context.Context, req dto.SendResultEmailRequest) (dto.EmailResponse, error)
	Configured() bool
}

type emailService struct {
	mailer    mailer.Mailer
	renderer  *templates.Renderer
	validator *validator.Validate
	tracer    trace.Tracer
	logger    zerolog.Logger
}

// NewEmailService builds the email service.
func NewEmailService(m mailer.Mailer, renderer *templates.Renderer, validate *validator.Validate, logger zerolog.Logger) EmailService {
	return &emailService{
		mailer:    m,
		renderer:  renderer,
		validator: validate,
		tracer:    otel.Tracer("github.com/noah-isme/skills-assessment-api/internal/service/email"),
		logger:    logger.With().Str("component", "email_service").Logger(),
	}
}

func (s *emailService) Configured() bool {
	return s.mailer.Configured()
}

func (s *emailService) SendAssessmentEmail(ctx context.Context, req dto.SendAssessmentEmailRequest) (dto.EmailResponse, error) {
	if strings.TrimSpace(req.CandidateEmail) == "" {
		return dto.EmailResponse{}, ErrCandidateEmailRequired
	}
	if len(req.Assessment) == 0 {
		return dto.EmailResponse{}, ErrAssessmentRequired
	}
	if err := s.validator.Struct(req); err != nil {
		return dto.EmailResponse{}, err
	}

	var (
		msg      templates.Message
		err      error
		template = "invitation"
	)
	if req.Type != "" && req.Type != dto.EmailTypeAssigned {
		template = "completion"
		msg, err = s.renderer.Completion(req.Assessment, req.Duration)
	} else {
		msg, err = s.renderer.Invitation(req.Assessment)
	}
	if err != nil {
		return dto.EmailResponse{}, err
	}

	return s.deliver(ctx, template, req.CandidateEmail, msg), nil
}

func (s *emailService) SendResultEmail(ctx context.Context, req dto.SendResultEmailRequest) (dto.EmailResponse, error) {
	recipient := strings.TrimSpace(req.Candidate.String("email", ""))
	if recipient == "" {
		return dto.EmailResponse{}, ErrCandidateEmailRequired
	}

	msg, err := s.renderer.Result(req.Assessment, req.Submission, req.Candidate)
	if err != nil {
		return dto.EmailResponse{}, err
	}

	return s.deliver(ctx, "result", recipient, msg), nil
}

func (s *emailService) deliver(ctx context.Context, template, to string, msg templates.Message) dto.EmailResponse {
	ctx, span := s.tracer.Start(ctx, "email.deliver", trace.WithAttributes(
		attribute.String("template", template),
	))
	defer span.End()

	logger := s.logger.With().Str("template", template).Str("recipient", maskEmailAddress(to)).Logger()

	if !s.mailer.Configured() {
		observability.EmailSends().WithLabelValues(template, outcomeNotConfigured).Inc()
		span.SetStatus(codes.Error, outcomeNotConfigured)
		logger.Warn().Msg("email not sent: smtp credentials missing")
		return dto.EmailResponse{Success: false, Error: emailNotConfigured}
	}

	err := s.mailer.Send(ctx, mailer.Email{
		To:      to,
		Subject: msg.Subject,
		Plain:   msg.Plain,
		HTML:    msg.HTML,
	})
	if err != nil {
		failure := mailer.Classify(err)
		observability.EmailSends().WithLabelValues(template, string(failure.Class)).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, failure.Message)
		logger.Error().Err(err).Str("class", string(failure.Class)).Msg("email delivery failed")
		return dto.EmailResponse{Success: false, Error: failure.Message}
	}

	observability.EmailSends().WithLabelValues(template, outcomeSent).Inc()
	logger.Info().Msg("email sent")
	return dto.EmailResponse{Success: true, Message: emailSentMessage}
}
