package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/noah-isme/skills-assessment-api/internal/dto"
	"github.com/noah-isme/skills-assessment-api/internal/models"
	"github.com/noah-isme/skills-assessment-api/internal/prompt"
	"github.com/noah-isme/skills-assessment-api/pkg/ai"
)

// ViolationReporter summarises the proctoring events of an assignment.
type ViolationReporter interface {
	Report(ctx context.Context, req dto.ViolationReportRequest) (json.RawMessage, error)
}

type llmViolationReporter struct {
	model  modelCall
	logger zerolog.Logger
}

// NewLLMViolationReporter asks the model for the report and returns its object verbatim.
func NewLLMViolationReporter(completer ai.Completer, extractor ai.Extractor, logger zerolog.Logger) ViolationReporter {
	logger = logger.With().Str("component", "violation_reporter").Str("mode", "llm").Logger()
	return &llmViolationReporter{
		model:  newModelCall(completer, extractor, logger),
		logger: logger,
	}
}

func (r *llmViolationReporter) Report(ctx context.Context, req dto.ViolationReportRequest) (json.RawMessage, error) {
	text, err := prompt.ViolationReport(prompt.ViolationParams{
		AssignmentID: req.AssignmentID.String(),
		Violations:   req.Violations,
	})
	if err != nil {
		return nil, err
	}

	payload, err := r.model.run(ctx, ai.CompletionRequest{
		Operation:   OperationViolationReport,
		Prompt:      text,
		Temperature: 0.3,
		MaxTokens:   1000,
	}, "Failed to generate valid report format")
	if err != nil {
		return nil, err
	}

	r.logger.Info().Str("assignment_id", req.AssignmentID.String()).Int("violations", len(req.Violations)).Msg("violation report generated")
	return payload, nil
}

type ruleBasedViolationReporter struct {
	logger zerolog.Logger
}

// NewRuleBasedViolationReporter counts severities locally without calling the model.
func NewRuleBasedViolationReporter(logger zerolog.Logger) ViolationReporter {
	return &ruleBasedViolationReporter{
		logger: logger.With().Str("component", "violation_reporter").Str("mode", "rule_based").Logger(),
	}
}

func (r *ruleBasedViolationReporter) Report(_ context.Context, req dto.ViolationReportRequest) (json.RawMessage, error) {
	report := SummarizeViolations(req.Violations)

	payload, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("encode violation report: %w", err)
	}

	r.logger.Info().Str("assignment_id", req.AssignmentID.String()).Int("violations", len(req.Violations)).Msg("violation report generated")
	return payload, nil
}

// SummarizeViolations builds the local report. Only the exact severities "low", "medium" and
// "high" are counted; entries that are not objects count towards the total only.
func SummarizeViolations(violations []json.RawMessage) dto.ViolationReport {
	var breakdown dto.SeverityBreakdown
	for _, raw := range violations {
		var entry struct {
			Severity models.Text `json:"severity"`
		}
		if err := json.Unmarshal(raw, &entry); err != nil {
			continue
		}
		switch entry.Severity {
		case "low":
			breakdown.Low++
		case "medium":
			breakdown.Medium++
		case "high":
			breakdown.High++
		}
	}

	report := dto.ViolationReport{
		Summary:           fmt.Sprintf("Found %d violations during assessment", len(violations)),
		SeverityBreakdown: breakdown,
		Recommendations: []string{
			"No significant violations detected",
			"Assessment appears to have been completed under normal conditions",
		},
		Confidence: "high",
	}

	if len(violations) > 0 {
		report.Recommendations = []string{
			"Review the assessment for potential cheating",
			"Consider additional verification for this candidate",
		}
		report.Confidence = "medium"
	}

	return report
}
