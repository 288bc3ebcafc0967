package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/skills-assessment-api/internal/dto"
	"github.com/noah-isme/skills-assessment-api/internal/models"
	"github.com/noah-isme/skills-assessment-api/internal/scoring"
	"github.com/noah-isme/skills-assessment-api/pkg/ai"
)

const generatedAssessment = `Here is your assessment:
{
  "title": "Backend Engineer Assessment",
  "description": "Checks API design knowledge",
  "jobRole": "Backend Engineer",
  "type": "multiple_choice",
  "difficulty": "advanced",
  "questions": [
    {"id": "q1", "question": "What does REST stand for?", "type": "multiple_choice",
     "options": ["A", "B", "C", "D"], "correctAnswer": "0", "codeTemplate": "", "testCases": []}
  ],
  "timeLimit": 30,
  "passingScore": 70
}
Good luck!`

func TestAssessmentServiceGenerateAppliesDefaults(t *testing.T) {
	completer := &completerStub{reply: `{"title":"x"}`}
	svc := NewAssessmentService(completer, nil, validator.New(), testLogger())

	payload, err := svc.Generate(context.Background(), dto.GenerateAssessmentRequest{})
	require.NoError(t, err)
	require.JSONEq(t, `{"title":"x"}`, string(payload))

	require.Len(t, completer.requests, 1)
	req := completer.requests[0]
	require.Equal(t, OperationGenerateAssessment, req.Operation)
	require.InDelta(t, 0.7, req.Temperature, 1e-6)
	require.Equal(t, 4000, req.MaxTokens)
	require.Contains(t, req.Prompt, "Create a multiple_choice assessment for a Software Developer position with intermediate difficulty level.")
	require.Contains(t, req.Prompt, "Generate 5 questions.")
}

func TestAssessmentServiceGenerateRoundTrip(t *testing.T) {
	svc := NewAssessmentService(&completerStub{reply: generatedAssessment}, nil, validator.New(), testLogger())

	payload, err := svc.Generate(context.Background(), dto.GenerateAssessmentRequest{
		JobRole:           "Backend Engineer",
		Difficulty:        "advanced",
		NumberOfQuestions: "1",
	})
	require.NoError(t, err)

	var assessment dto.Assessment
	require.NoError(t, json.Unmarshal(payload, &assessment))
	require.Equal(t, "Backend Engineer Assessment", assessment.Title)
	require.Equal(t, "advanced", assessment.Difficulty)
	require.Equal(t, float64(30), assessment.TimeLimit)
	require.Equal(t, float64(70), assessment.PassingScore)
	require.Len(t, assessment.Questions, 1)
	require.NotNil(t, assessment.Questions[0].ID)
	require.Equal(t, models.Text("q1"), *assessment.Questions[0].ID)
	var options []string
	require.NoError(t, json.Unmarshal(assessment.Questions[0].Options, &options))
	require.Len(t, options, 4)
	require.Equal(t, models.Text("0"), assessment.Questions[0].CorrectAnswer)
}

func TestAssessmentServiceGenerateNoJSON(t *testing.T) {
	svc := NewAssessmentService(&completerStub{reply: "I cannot help with that."}, nil, validator.New(), testLogger())

	_, err := svc.Generate(context.Background(), dto.GenerateAssessmentRequest{})
	require.ErrorIs(t, err, ai.ErrNoJSONFound)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	require.Equal(t, "Failed to generate valid assessment format", genErr.Error())
	require.Equal(t, OperationGenerateAssessment, genErr.Operation)
}

func TestAssessmentServiceGenerateMalformed(t *testing.T) {
	svc := NewAssessmentService(&completerStub{reply: `{"title": "x",}`}, nil, validator.New(), testLogger())

	_, err := svc.Generate(context.Background(), dto.GenerateAssessmentRequest{})

	var malformed *ai.MalformedJSONError
	require.ErrorAs(t, err, &malformed)
	require.Contains(t, err.Error(), "Failed to parse AI response: ")
}

func TestAssessmentServiceGenerateUpstreamFailure(t *testing.T) {
	upstream := &ai.UpstreamError{Provider: "stub", Err: errors.New("rate limited")}
	svc := NewAssessmentService(&completerStub{err: upstream}, nil, validator.New(), testLogger())

	_, err := svc.Generate(context.Background(), dto.GenerateAssessmentRequest{})
	require.ErrorIs(t, err, upstream)
}

func TestAssessmentServiceGenerateValidation(t *testing.T) {
	completer := &completerStub{}
	svc := NewAssessmentService(completer, nil, validator.New(), testLogger())

	_, err := svc.Generate(context.Background(), dto.GenerateAssessmentRequest{NumberOfQuestions: "12345678901"})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	require.Empty(t, completer.requests)
}

func TestAssessmentServiceEvaluate(t *testing.T) {
	svc := NewAssessmentService(&completerStub{}, nil, validator.New(), testLogger())

	q1, q2 := models.Text("q1"), models.Text("q2")
	result, err := svc.Evaluate(context.Background(), dto.EvaluateSubmissionRequest{
		Questions: []models.Question{
			{ID: &q1, CorrectAnswer: "0"},
			{ID: &q2, CorrectAnswer: "1"},
		},
		Answers: map[string]models.Text{"q1": "0", "q2": "1"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, result.Score)
	require.Equal(t, float64(100), result.Percentage)
	require.True(t, result.Passed)
}

func TestAssessmentServiceEvaluateCustomPassingScore(t *testing.T) {
	svc := NewAssessmentService(&completerStub{}, nil, validator.New(), testLogger())

	q1, q2 := models.Text("q1"), models.Text("q2")
	passing := 50.0
	result, err := svc.Evaluate(context.Background(), dto.EvaluateSubmissionRequest{
		Questions:    []models.Question{{ID: &q1, CorrectAnswer: "0"}, {ID: &q2, CorrectAnswer: "1"}},
		Answers:      map[string]models.Text{"q1": "0"},
		PassingScore: &passing,
	})
	require.NoError(t, err)
	require.Equal(t, float64(50), result.Percentage)
	require.True(t, result.Passed)
}

func TestAssessmentServiceEvaluateMissingID(t *testing.T) {
	svc := NewAssessmentService(&completerStub{}, nil, validator.New(), testLogger())

	_, err := svc.Evaluate(context.Background(), dto.EvaluateSubmissionRequest{
		Questions: []models.Question{{CorrectAnswer: "0"}},
	})
	require.ErrorIs(t, err, scoring.ErrMalformedInput)
}

func TestAssessmentServiceEvaluateRejectsPassingScoreOutOfRange(t *testing.T) {
	svc := NewAssessmentService(&completerStub{}, nil, validator.New(), testLogger())

	passing := 150.0
	_, err := svc.Evaluate(context.Background(), dto.EvaluateSubmissionRequest{PassingScore: &passing})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
}
