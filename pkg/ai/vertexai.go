package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/vertexai/genai"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/api/option"
)

var errNoCandidates = errors.New("no response candidates returned")

// VertexConfig configures the Vertex AI Gemini backend.
type VertexConfig struct {
	ProjectID       string
	Location        string
	Model           string
	CredentialsFile string
	Timeout         time.Duration
	Logger          zerolog.Logger
}

// VertexClient implements Completer on top of the Vertex AI Gemini API.
type VertexClient struct {
	client *genai.Client
	cfg    VertexConfig
	tracer trace.Tracer
	logger zerolog.Logger
}

// NewVertexClient creates a Vertex AI client. Credentials fall back to the application default.
func NewVertexClient(ctx context.Context, cfg VertexConfig) (*VertexClient, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("vertex ai project id is required")
	}
	if cfg.Location == "" {
		cfg.Location = "us-central1"
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-1.5-flash"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}

	return &VertexClient{
		client: client,
		cfg:    cfg,
		tracer: otel.Tracer("github.com/noah-isme/skills-assessment-api/pkg/ai/vertexai"),
		logger: cfg.Logger.With().Str("component", "vertex_client").Logger(),
	}, nil
}

// Provider identifies the backend in health output.
func (v *VertexClient) Provider() string {
	return "vertexai"
}

// Complete sends the prompt to Gemini and joins the text parts of the first candidate.
func (v *VertexClient) Complete(parent context.Context, req CompletionRequest) (string, error) {
	ctx, span := v.tracer.Start(parent, "vertexai.complete", trace.WithAttributes(
		attribute.String("model", v.cfg.Model),
		attribute.String("operation", req.Operation),
	))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, v.cfg.Timeout)
	defer cancel()

	model := v.client.GenerativeModel(v.cfg.Model)
	model.SetTemperature(req.Temperature)
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}

	start := time.Now()
	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	completionDuration.WithLabelValues(v.Provider(), v.cfg.Model, req.Operation).Observe(time.Since(start).Seconds())
	if err != nil {
		return "", v.fail(span, req.Operation, fmt.Errorf("failed to generate content: %w", err))
	}

	content, err := candidateText(resp)
	if err != nil {
		return "", v.fail(span, req.Operation, err)
	}

	v.logger.Debug().Str("operation", req.Operation).Str("content", content).Msg("model response received")
	return content, nil
}

// Close releases the underlying gRPC connection.
func (v *VertexClient) Close() error {
	return v.client.Close()
}

func (v *VertexClient) fail(span trace.Span, operation string, err error) error {
	completionFailures.WithLabelValues(v.Provider(), v.cfg.Model, operation).Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return &UpstreamError{Provider: v.Provider(), Err: err}
}

// candidateText joins the text parts of the first candidate; other part kinds are skipped.
func candidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return "", errNoCandidates
	}

	var builder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			builder.WriteString(string(text))
		}
	}
	return builder.String(), nil
}
