package scoring

import (
	"errors"
	"fmt"

	"github.com/noah-isme/skills-assessment-api/internal/models"
)

// DefaultPassingScore applies when a submission does not carry its own threshold.
const DefaultPassingScore = 70.0

const correctFeedback = "Correct answer"

// ErrMalformedInput indicates a question without an id; the whole submission is rejected.
var ErrMalformedInput = errors.New("malformed input")

// Evaluate grades answers against questions by exact string comparison.
func Evaluate(questions []models.Question, answers map[string]models.Text, passingScore float64) (models.EvaluationResult, error) {
	results := make([]models.QuestionResult, 0, len(questions))
	score := 0

	for i, question := range questions {
		if question.ID == nil {
			return models.EvaluationResult{}, fmt.Errorf("%w: question %d has no id", ErrMalformedInput, i)
		}

		id := question.ID.String()
		expected := question.CorrectAnswer.String()
		got := answers[id].String()

		if got == expected {
			score++
			results = append(results, models.QuestionResult{QuestionID: id, Correct: true, Feedback: correctFeedback})
			continue
		}

		results = append(results, models.QuestionResult{
			QuestionID: id,
			Correct:    false,
			Feedback:   fmt.Sprintf("Expected: %s, Got: %s", expected, got),
		})
	}

	total := len(questions)
	percentage := 0.0
	if total > 0 {
		percentage = (float64(score) / float64(total)) * 100
	}

	return models.EvaluationResult{
		Score:          score,
		TotalQuestions: total,
		Percentage:     percentage,
		Passed:         percentage >= passingScore,
		Results:        results,
	}, nil
}
