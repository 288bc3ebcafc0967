package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/skills-assessment-api/internal/dto"
	"github.com/noah-isme/skills-assessment-api/internal/prompt"
	"github.com/noah-isme/skills-assessment-api/internal/scoring"
	"github.com/noah-isme/skills-assessment-api/pkg/ai"
)

// Defaults used by the rule-based analyzer when the records omit a field.
const (
	defaultTimeLimitMinutes = 30
	defaultTimeSpentMinutes = 30
)

// CandidateAnalyzer evaluates one candidate's attempt. The response shape depends on the variant.
type CandidateAnalyzer interface {
	Analyze(ctx context.Context, req dto.AnalyzeCandidateRequest) (json.RawMessage, error)
}

type ruleBasedAnalyzer struct {
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewRuleBasedAnalyzer applies the local score and time rule table.
func NewRuleBasedAnalyzer(validate *validator.Validate, logger zerolog.Logger) CandidateAnalyzer {
	return &ruleBasedAnalyzer{
		validator: validate,
		logger:    logger.With().Str("component", "candidate_analyzer").Str("mode", "rule_based").Logger(),
		now:       time.Now,
	}
}

func (a *ruleBasedAnalyzer) Analyze(_ context.Context, req dto.AnalyzeCandidateRequest) (json.RawMessage, error) {
	if err := a.validator.Struct(req); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(a.build(req))
	if err != nil {
		return nil, fmt.Errorf("encode analysis: %w", err)
	}
	return payload, nil
}

func (a *ruleBasedAnalyzer) build(req dto.AnalyzeCandidateRequest) dto.CandidateAnalysis {
	score := req.Submission.Float("score", 0)
	result := scoring.Analyze(
		score,
		req.Assessment.Float("timeLimit", defaultTimeLimitMinutes),
		req.Submission.Float("timeSpent", defaultTimeSpentMinutes),
	)

	efficiency := roundTenth(result.TimeEfficiency)
	analysis := dto.CandidateAnalysis{
		SkillsMatch:         roundTenth(result.SkillsMatch),
		OverallScore:        req.Submission.Value("score", 0),
		TimeEfficiency:      efficiency,
		OverallAssessment:   fmt.Sprintf("Candidate scored %s%% with %.1f%% time efficiency", req.Submission.String("score", "0"), efficiency),
		Strengths:           result.Strengths,
		AreasForImprovement: result.AreasForImprovement,
		Recommendation:      result.Recommendation,
		Tier:                string(result.Tier),
		AnalysisDate:        a.now().Format(time.RFC3339),
		AssessmentDetails: dto.AssessmentDetails{
			Title:      req.Assessment.String("title", "N/A"),
			Difficulty: req.Assessment.String("difficulty", "N/A"),
			JobRole:    req.Assessment.String("jobRole", "N/A"),
		},
	}

	a.logger.Info().
		Float64("score", score).
		Str("tier", analysis.Tier).
		Float64("skills_match", analysis.SkillsMatch).
		Msg("candidate analysed")
	return analysis
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

type llmAnalyzer struct {
	model     modelCall
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewLLMAnalyzer asks the model for the analysis and returns its object verbatim.
func NewLLMAnalyzer(completer ai.Completer, extractor ai.Extractor, validate *validator.Validate, logger zerolog.Logger) CandidateAnalyzer {
	logger = logger.With().Str("component", "candidate_analyzer").Str("mode", "llm").Logger()
	return &llmAnalyzer{
		model:     newModelCall(completer, extractor, logger),
		validator: validate,
		logger:    logger,
	}
}

func (a *llmAnalyzer) Analyze(ctx context.Context, req dto.AnalyzeCandidateRequest) (json.RawMessage, error) {
	if err := a.validator.Struct(req); err != nil {
		return nil, err
	}

	text := prompt.CandidateAnalysis(prompt.CandidateParams{
		Candidate:      req.Candidate,
		Assessment:     req.Assessment,
		Submission:     req.Submission,
		JobDescription: req.JobDescription,
	})

	payload, err := a.model.run(ctx, ai.CompletionRequest{
		Operation:   OperationCandidateAnalysis,
		Prompt:      text,
		Temperature: 0.3,
		MaxTokens:   1500,
	}, "Failed to generate valid analysis format")
	if err != nil {
		return nil, err
	}

	a.logger.Info().Str("candidate", maskEmailAddress(req.Candidate.String("email", ""))).Msg("candidate analysed")
	return payload, nil
}
