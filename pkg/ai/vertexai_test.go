package ai

import (
	"context"
	"testing"

	"cloud.google.com/go/vertexai/genai"
	"github.com/stretchr/testify/require"
)

func TestCandidateTextJoinsTextParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: "model", Parts: []genai.Part{
				genai.Text(`Here you go: {"title":`),
				genai.Blob{MIMEType: "image/png", Data: []byte{0x1}},
				genai.Text(` "Go"}`),
			}}},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("ignored")}}},
		},
	}

	text, err := candidateText(resp)
	require.NoError(t, err)
	require.Equal(t, `Here you go: {"title": "Go"}`, text)
}

func TestCandidateTextWithoutCandidates(t *testing.T) {
	cases := map[string]*genai.GenerateContentResponse{
		"nil response":  nil,
		"no candidates": {},
		"nil content":   {Candidates: []*genai.Candidate{{}}},
	}

	for name, resp := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := candidateText(resp)
			require.ErrorIs(t, err, errNoCandidates)
		})
	}
}

func TestCandidateTextEmptyParts(t *testing.T) {
	text, err := candidateText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
	})
	require.NoError(t, err)
	require.Empty(t, text)
}

func TestNewVertexClientRequiresProject(t *testing.T) {
	_, err := NewVertexClient(context.Background(), VertexConfig{})
	require.EqualError(t, err, "vertex ai project id is required")
}
