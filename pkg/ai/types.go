package ai

import (
	"context"
	"fmt"
)

// CompletionRequest is a single-turn prompt sent to a chat model.
type CompletionRequest struct {
	// Operation labels the call in metrics, traces and logs.
	Operation   string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// Completer returns the text completion for a prompt. Implementations perform exactly one
// upstream call per invocation and never retry.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	Provider() string
}

// UpstreamError wraps failures of the model provider (network, auth, quota, empty reply).
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
