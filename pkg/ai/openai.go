package ai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultGroqBaseURL is Groq's OpenAI-compatible endpoint.
	DefaultGroqBaseURL = "https://api.groq.com/openai/v1"
	// DefaultGroqModel is the model the assessment prompts were tuned against.
	DefaultGroqModel = "llama-3.3-70b-versatile"
	defaultTimeout   = 60 * time.Second
)

var (
	completionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "skills",
		Subsystem: "ai",
		Name:      "completion_duration_seconds",
		Help:      "Duration of chat completion requests",
	}, []string{"provider", "model", "operation"})

	completionFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "skills",
		Subsystem: "ai",
		Name:      "completion_failures_total",
		Help:      "Number of failed chat completion requests",
	}, []string{"provider", "model", "operation"})
)

// OpenAIConfig defines configuration options for an OpenAI-compatible chat API.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	Logger  zerolog.Logger
}

// OpenAIClient implements Completer against the OpenAI chat completion protocol. Groq speaks the
// same protocol, so BaseURL selects the vendor.
type OpenAIClient struct {
	client *openai.Client
	cfg    OpenAIConfig
	tracer trace.Tracer
	logger zerolog.Logger
}

// NewOpenAIClient builds a new client using the provided configuration.
func NewOpenAIClient(cfg OpenAIConfig) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm api key is required")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultGroqBaseURL
	}

	if cfg.Model == "" {
		cfg.Model = DefaultGroqModel
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	tracer := otel.Tracer("github.com/noah-isme/skills-assessment-api/pkg/ai/openai")
	logger := cfg.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = zerolog.Nop()
	}

	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = cfg.BaseURL
	config.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	client := openai.NewClientWithConfig(config)

	return &OpenAIClient{
		client: client,
		cfg:    cfg,
		tracer: tracer,
		logger: logger.With().Str("component", "openai_client").Logger(),
	}, nil
}

// Provider identifies the backend in health output.
func (c *OpenAIClient) Provider() string {
	return "openai"
}

// Complete sends the prompt as a single user message and returns the first choice.
func (c *OpenAIClient) Complete(parent context.Context, req CompletionRequest) (string, error) {
	ctx, span := c.tracer.Start(parent, "openai.complete", trace.WithAttributes(
		attribute.String("model", c.cfg.Model),
		attribute.String("operation", req.Operation),
	))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	start := time.Now()
	request := openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.Prompt,
			},
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, request)
	completionDuration.WithLabelValues(c.Provider(), c.cfg.Model, req.Operation).Observe(time.Since(start).Seconds())
	if err != nil {
		return "", c.fail(span, req.Operation, err)
	}

	if len(resp.Choices) == 0 {
		return "", c.fail(span, req.Operation, fmt.Errorf("no choices returned from model"))
	}

	content := resp.Choices[0].Message.Content
	c.logger.Debug().
		Str("operation", req.Operation).
		Int("prompt_tokens", resp.Usage.PromptTokens).
		Int("completion_tokens", resp.Usage.CompletionTokens).
		Str("content", content).
		Msg("model response received")

	return content, nil
}

func (c *OpenAIClient) fail(span trace.Span, operation string, err error) error {
	completionFailures.WithLabelValues(c.Provider(), c.cfg.Model, operation).Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return &UpstreamError{Provider: c.Provider(), Err: err}
}
