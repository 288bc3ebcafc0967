package models

import (
	"bytes"
	"encoding/json"
)

// Text is a JSON scalar coerced to its string form. Model output and client payloads are not
// strict about types, so numbers, booleans and null are accepted wherever a string is expected.
type Text string

// String returns the coerced value.
func (t Text) String() string {
	return string(t)
}

// UnmarshalJSON accepts any JSON value. Strings are kept verbatim, null becomes empty and every
// other value keeps its compact JSON text.
func (t *Text) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0, bytes.Equal(trimmed, []byte("null")):
		*t = ""
		return nil
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return err
	}
	*t = Text(buf.String())
	return nil
}

// Question is a single generated assessment question. Only ID and CorrectAnswer take part in
// scoring; Options and TestCases are kept as raw JSON whatever their shape.
type Question struct {
	ID            *Text           `json:"id"`
	Question      Text            `json:"question"`
	Type          Text            `json:"type"`
	Options       json.RawMessage `json:"options,omitempty"`
	CorrectAnswer Text            `json:"correctAnswer"`
	CodeTemplate  Text            `json:"codeTemplate"`
	TestCases     json.RawMessage `json:"testCases,omitempty"`
}

// QuestionResult is the outcome for one question of a submission.
type QuestionResult struct {
	QuestionID string `json:"questionId"`
	Correct    bool   `json:"correct"`
	Feedback   string `json:"feedback"`
}

// EvaluationResult aggregates the per-question outcomes of a submission.
type EvaluationResult struct {
	Score          int              `json:"score"`
	TotalQuestions int              `json:"totalQuestions"`
	Percentage     float64          `json:"percentage"`
	Passed         bool             `json:"passed"`
	Results        []QuestionResult `json:"results"`
}
