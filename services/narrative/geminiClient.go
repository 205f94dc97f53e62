// File: services/narrative/geminiClient.go
package narrative

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient is a TextGenerator backed by Google Gemini.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient connects to Gemini with the given API key and model name.
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, modelName: modelName}, nil
}

func (g *GeminiClient) GenerateContent(ctx context.Context, system, prompt string) (string, error) {
	// Model handles are cheap; a fresh one per call keeps the system
	// instruction off shared state.
	model := g.client.GenerativeModel(g.modelName)
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}
