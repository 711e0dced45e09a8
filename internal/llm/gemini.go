// Package llm wraps the external generative model behind a small interface
// so the suggestion service can be tested without network access.
package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// TextGenerator produces free-form text for a prompt under a fixed system
// instruction. The call blocks until the model answers or fails; there is no
// retry.
type TextGenerator interface {
	GenerateContent(ctx context.Context, system, prompt string) (string, error)
}

// Generation parameters are fixed constants, not user-configurable.
const (
	geminiModel     = "gemini-2.0-flash-exp"
	temperature     = 0.7
	topP            = 0.8
	topK            = 40
	maxOutputTokens = 2048
)

// GeminiClient is a TextGenerator backed by the Google Gemini API.
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient creates a new Gemini API client.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

// GenerateContent sends the prompt to the Gemini model and returns the raw
// generated text.
func (c *GeminiClient) GenerateContent(ctx context.Context, system, prompt string) (string, error) {
	model := c.client.GenerativeModel(geminiModel)
	model.SetTemperature(temperature)
	model.SetTopP(topP)
	model.SetTopK(topK)
	model.SetMaxOutputTokens(maxOutputTokens)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(system)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("generated content is not text")
	}

	return string(text), nil
}

// Close closes the underlying Gemini client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}
