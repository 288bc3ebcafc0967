package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"

	"github.com/noah-isme/skills-assessment-api/internal/observability"
	"github.com/noah-isme/skills-assessment-api/pkg/ai"
)

// Operation names used for metrics, traces and logs.
const (
	OperationGenerateAssessment = "generate_assessment"
	OperationViolationReport    = "violation_report"
	OperationCandidateAnalysis  = "candidate_analysis"
)

// GenerationError reports a model reply that did not contain a JSON object. Message is the text
// returned to API clients.
type GenerationError struct {
	Operation string
	Message   string
	Err       error
}

func (e *GenerationError) Error() string {
	return e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// modelCall performs one completion and extracts the JSON object from the reply.
type modelCall struct {
	completer ai.Completer
	extractor ai.Extractor
	logger    zerolog.Logger
}

func newModelCall(completer ai.Completer, extractor ai.Extractor, logger zerolog.Logger) modelCall {
	if extractor == nil {
		extractor = ai.BraceSpan{}
	}
	return modelCall{completer: completer, extractor: extractor, logger: logger}
}

// run returns the extracted object verbatim. notFound is the client message used when the
// reply holds no object at all; a malformed object surfaces as *ai.MalformedJSONError.
func (m modelCall) run(ctx context.Context, req ai.CompletionRequest, notFound string) (json.RawMessage, error) {
	raw, err := m.completer.Complete(ctx, req)
	if err != nil {
		m.logger.Error().Err(err).Str("operation", req.Operation).Msg("model call failed")
		return nil, err
	}

	payload, err := m.extractor.Extract(raw)
	if err == nil {
		return payload, nil
	}

	var malformed *ai.MalformedJSONError
	switch {
	case errors.Is(err, ai.ErrNoJSONFound):
		observability.ExtractionFailures().WithLabelValues(req.Operation, "no_json").Inc()
		m.logger.Warn().Str("operation", req.Operation).Int("reply_length", len(raw)).Msg("model reply contained no json object")
		return nil, &GenerationError{Operation: req.Operation, Message: notFound, Err: err}
	case errors.As(err, &malformed):
		observability.ExtractionFailures().WithLabelValues(req.Operation, "malformed").Inc()
		m.logger.Warn().Str("operation", req.Operation).Str("detail", malformed.Detail).Msg("model reply contained malformed json")
		return nil, err
	default:
		return nil, err
	}
}
