package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Model       string  `json:"model"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float32 `json:"temperature"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newChatServer(t *testing.T, status int, body string, captured *capturedRequest) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if captured != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestOpenAIClientComplete(t *testing.T) {
	var captured capturedRequest
	server := newChatServer(t, http.StatusOK, `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"created": 1700000000,
		"model": "llama-3.3-70b-versatile",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "Here: {\"ok\": true}"}, "finish_reason": "stop"}],
		"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
	}`, &captured)

	client, err := NewOpenAIClient(OpenAIConfig{
		APIKey:  "test-key",
		BaseURL: server.URL + "/v1",
		Timeout: 5 * time.Second,
		Logger:  zerolog.Nop(),
	})
	require.NoError(t, err)

	content, err := client.Complete(context.Background(), CompletionRequest{
		Operation:   "test",
		Prompt:      "generate something",
		Temperature: 0.7,
		MaxTokens:   4000,
	})
	require.NoError(t, err)
	require.Equal(t, `Here: {"ok": true}`, content)

	require.Equal(t, DefaultGroqModel, captured.Model)
	require.Equal(t, 4000, captured.MaxTokens)
	require.InDelta(t, 0.7, captured.Temperature, 1e-6)
	require.Len(t, captured.Messages, 1)
	require.Equal(t, "user", captured.Messages[0].Role)
	require.Equal(t, "generate something", captured.Messages[0].Content)
}

func TestOpenAIClientUpstreamError(t *testing.T) {
	server := newChatServer(t, http.StatusUnauthorized, `{"error": {"message": "Invalid API Key", "type": "invalid_request_error"}}`, nil)

	client, err := NewOpenAIClient(OpenAIConfig{APIKey: "test-key", BaseURL: server.URL + "/v1"})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), CompletionRequest{Operation: "test", Prompt: "hi"})
	require.Error(t, err)

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	require.Equal(t, "openai", upstream.Provider)
	require.Contains(t, err.Error(), "Invalid API Key")
}

func TestOpenAIClientNoChoices(t *testing.T) {
	server := newChatServer(t, http.StatusOK, `{"id": "x", "object": "chat.completion", "choices": []}`, nil)

	client, err := NewOpenAIClient(OpenAIConfig{APIKey: "test-key", BaseURL: server.URL + "/v1"})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), CompletionRequest{Operation: "test", Prompt: "hi"})
	require.ErrorContains(t, err, "no choices returned from model")
}

func TestNewOpenAIClientRequiresKey(t *testing.T) {
	_, err := NewOpenAIClient(OpenAIConfig{})
	require.Error(t, err)
}
