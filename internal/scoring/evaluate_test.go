package scoring

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/skills-assessment-api/internal/models"
)

func textPtr(value string) *models.Text {
	t := models.Text(value)
	return &t
}

func TestEvaluatePartialSubmission(t *testing.T) {
	questions := []models.Question{
		{ID: textPtr("q1"), CorrectAnswer: "0"},
		{ID: textPtr("q2"), CorrectAnswer: "1"},
	}
	answers := map[string]models.Text{"q1": "0"}

	result, err := Evaluate(questions, answers, DefaultPassingScore)
	require.NoError(t, err)

	require.Equal(t, 1, result.Score)
	require.Equal(t, 2, result.TotalQuestions)
	require.Equal(t, 50.0, result.Percentage)
	require.False(t, result.Passed)
	require.Equal(t, []models.QuestionResult{
		{QuestionID: "q1", Correct: true, Feedback: "Correct answer"},
		{QuestionID: "q2", Correct: false, Feedback: "Expected: 1, Got: "},
	}, result.Results)
}

func TestEvaluateEmptyQuestions(t *testing.T) {
	result, err := Evaluate(nil, nil, DefaultPassingScore)
	require.NoError(t, err)
	require.Equal(t, 0.0, result.Percentage)
	require.False(t, result.Passed)
	require.NotNil(t, result.Results)
	require.Empty(t, result.Results)

	result, err = Evaluate([]models.Question{}, nil, 0)
	require.NoError(t, err)
	require.True(t, result.Passed, "0 >= 0 passes")
}

func TestEvaluateAllCorrect(t *testing.T) {
	questions := []models.Question{
		{ID: textPtr("a"), CorrectAnswer: "2"},
		{ID: textPtr("b"), CorrectAnswer: "Paris"},
		{ID: textPtr("c"), CorrectAnswer: ""},
	}
	answers := map[string]models.Text{"a": "2", "b": "Paris"}

	result, err := Evaluate(questions, answers, DefaultPassingScore)
	require.NoError(t, err)
	require.Equal(t, result.TotalQuestions, result.Score)
	require.Equal(t, 100.0, result.Percentage)
	require.True(t, result.Passed)
}

func TestEvaluateIsCaseAndWhitespaceSensitive(t *testing.T) {
	questions := []models.Question{
		{ID: textPtr("q1"), CorrectAnswer: "Paris"},
		{ID: textPtr("q2"), CorrectAnswer: "Paris"},
	}
	answers := map[string]models.Text{"q1": "paris", "q2": " Paris"}

	result, err := Evaluate(questions, answers, DefaultPassingScore)
	require.NoError(t, err)
	require.Equal(t, 0, result.Score)
	require.Equal(t, "Expected: Paris, Got: paris", result.Results[0].Feedback)
	require.Equal(t, "Expected: Paris, Got:  Paris", result.Results[1].Feedback)
}

func TestEvaluateMissingIDFailsBatch(t *testing.T) {
	questions := []models.Question{
		{ID: textPtr("q1"), CorrectAnswer: "0"},
		{CorrectAnswer: "1"},
	}

	_, err := Evaluate(questions, map[string]models.Text{"q1": "0"}, DefaultPassingScore)
	require.ErrorIs(t, err, ErrMalformedInput)
	require.Contains(t, err.Error(), "question 1")
}

func TestEvaluateCoercesNonStringValues(t *testing.T) {
	var payload struct {
		Questions []models.Question      `json:"questions"`
		Answers   map[string]models.Text `json:"answers"`
	}
	body := `{
		"questions": [
			{"id": 1, "correctAnswer": 2},
			{"id": "q2", "correctAnswer": true},
			{"id": "q3"}
		],
		"answers": {"1": "2", "q2": "true", "q3": null}
	}`
	require.NoError(t, json.Unmarshal([]byte(body), &payload))

	result, err := Evaluate(payload.Questions, payload.Answers, DefaultPassingScore)
	require.NoError(t, err)
	require.Equal(t, 3, result.Score)
	require.Equal(t, "1", result.Results[0].QuestionID)
}

func TestEvaluateIgnoresShapeOfNonScoringFields(t *testing.T) {
	var payload struct {
		Questions []models.Question      `json:"questions"`
		Answers   map[string]models.Text `json:"answers"`
	}
	body := `{
		"questions": [
			{"id": "q1", "correctAnswer": "a", "options": "A|B"},
			{"id": "q2", "correctAnswer": "b", "testCases": "none", "options": {"a": 1}}
		],
		"answers": {"q1": "a", "q2": "b"}
	}`
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	require.JSONEq(t, `"A|B"`, string(payload.Questions[0].Options))

	result, err := Evaluate(payload.Questions, payload.Answers, DefaultPassingScore)
	require.NoError(t, err)
	require.Equal(t, 2, result.Score)
	require.True(t, result.Passed)
}

func TestEvaluatePassingScoreAboveHundred(t *testing.T) {
	questions := []models.Question{{ID: textPtr("q1"), CorrectAnswer: "0"}}

	result, err := Evaluate(questions, map[string]models.Text{"q1": "0"}, 150)
	require.NoError(t, err)
	require.Equal(t, 100.0, result.Percentage)
	require.False(t, result.Passed)
}

func TestEvaluateCustomPassingScore(t *testing.T) {
	questions := []models.Question{
		{ID: textPtr("q1"), CorrectAnswer: "0"},
		{ID: textPtr("q2"), CorrectAnswer: "1"},
	}
	answers := map[string]models.Text{"q1": "0"}

	result, err := Evaluate(questions, answers, 50)
	require.NoError(t, err)
	require.True(t, result.Passed)
}

func TestEvaluateIsIdempotent(t *testing.T) {
	questions := []models.Question{
		{ID: textPtr("q1"), CorrectAnswer: "0"},
		{ID: textPtr("q2"), CorrectAnswer: "1"},
		{ID: textPtr("q3"), CorrectAnswer: "2"},
	}
	answers := map[string]models.Text{"q1": "0", "q3": "1"}

	first, err := Evaluate(questions, answers, DefaultPassingScore)
	require.NoError(t, err)
	second, err := Evaluate(questions, answers, DefaultPassingScore)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	require.Equal(t, firstJSON, secondJSON)
}
