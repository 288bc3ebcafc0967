package ai

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSONFound indicates the model output contains no "{" or no "}" after it.
var ErrNoJSONFound = errors.New("no json object found in model output")

// MalformedJSONError indicates a brace-delimited span was found but is not valid JSON.
type MalformedJSONError struct {
	Detail string
	Err    error
}

func (e *MalformedJSONError) Error() string {
	return "Failed to parse AI response: " + e.Detail
}

func (e *MalformedJSONError) Unwrap() error {
	return e.Err
}

// Extractor locates the JSON object embedded in free-form model output.
type Extractor interface {
	Extract(raw string) (json.RawMessage, error)
}

// BraceSpan takes everything from the first "{" to the last "}" inclusive. It is not a balanced
// scanner: a reply with two objects, or a stray "}" after the object, yields MalformedJSONError.
type BraceSpan struct{}

// Extract implements Extractor.
func (BraceSpan) Extract(raw string) (json.RawMessage, error) {
	start := strings.Index(raw, "{")
	if start == -1 {
		return nil, ErrNoJSONFound
	}

	end := strings.LastIndex(raw, "}")
	if end < start {
		return nil, ErrNoJSONFound
	}

	span := raw[start : end+1]

	var probe interface{}
	if err := json.Unmarshal([]byte(span), &probe); err != nil {
		return nil, &MalformedJSONError{Detail: err.Error(), Err: err}
	}

	return json.RawMessage(span), nil
}
