package service

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/skills-assessment-api/internal/dto"
	"github.com/noah-isme/skills-assessment-api/internal/models"
	"github.com/noah-isme/skills-assessment-api/internal/prompt"
	"github.com/noah-isme/skills-assessment-api/internal/scoring"
	"github.com/noah-isme/skills-assessment-api/pkg/ai"
)

// AssessmentService generates assessments and scores submissions against them.
type AssessmentService interface {
	Generate(ctx context.Context, req dto.GenerateAssessmentRequest) (json.RawMessage, error)
	Evaluate(ctx context.Context, req dto.EvaluateSubmissionRequest) (models.EvaluationResult, error)
}

type assessmentService struct {
	model     modelCall
	validator *validator.Validate
	tracer    trace.Tracer
	logger    zerolog.Logger
}

// NewAssessmentService builds the assessment service. A nil extractor selects ai.BraceSpan.
func NewAssessmentService(completer ai.Completer, extractor ai.Extractor, validate *validator.Validate, logger zerolog.Logger) AssessmentService {
	logger = logger.With().Str("component", "assessment_service").Logger()
	return &assessmentService{
		model:     newModelCall(completer, extractor, logger),
		validator: validate,
		tracer:    otel.Tracer("github.com/noah-isme/skills-assessment-api/internal/service/assessment"),
		logger:    logger,
	}
}

func (s *assessmentService) Generate(ctx context.Context, req dto.GenerateAssessmentRequest) (json.RawMessage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	req = req.WithDefaults()

	ctx, span := s.tracer.Start(ctx, "assessment.generate", trace.WithAttributes(
		attribute.String("job_role", req.JobRole),
		attribute.String("difficulty", req.Difficulty),
	))
	defer span.End()

	text := prompt.GenerateAssessment(prompt.AssessmentParams{
		JobRole:           req.JobRole,
		Type:              req.Type,
		Difficulty:        req.Difficulty,
		NumberOfQuestions: req.NumberOfQuestions.String(),
	})

	payload, err := s.model.run(ctx, ai.CompletionRequest{
		Operation:   OperationGenerateAssessment,
		Prompt:      text,
		Temperature: 0.7,
		MaxTokens:   4000,
	}, "Failed to generate valid assessment format")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	s.logger.Info().Str("job_role", req.JobRole).Str("type", req.Type).Msg("assessment generated")
	return payload, nil
}

func (s *assessmentService) Evaluate(ctx context.Context, req dto.EvaluateSubmissionRequest) (models.EvaluationResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.EvaluationResult{}, err
	}

	passing := scoring.DefaultPassingScore
	if req.PassingScore != nil {
		passing = *req.PassingScore
	}

	result, err := scoring.Evaluate(req.Questions, req.Answers, passing)
	if err != nil {
		s.logger.Warn().Err(err).Msg("submission rejected")
		return models.EvaluationResult{}, err
	}

	s.logger.Info().
		Int("score", result.Score).
		Int("total_questions", result.TotalQuestions).
		Bool("passed", result.Passed).
		Msg("submission evaluated")
	return result, nil
}
