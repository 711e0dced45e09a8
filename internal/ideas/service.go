// Package ideas proxies meal-suggestion prompts to the generative model and
// normalizes its free-form output into validated suggestions. Nothing here is
// persisted; results are only returned.
package ideas

import (
	"context"
	"fmt"

	"mealmate/internal/apperr"
	"mealmate/internal/llm"
)

// DefaultCount is used when the client does not ask for a specific number of
// suggestions.
const DefaultCount = 3

const systemInstruction = `You are a creative chef who generates meal ideas. The user will provide their preferences.

You must return a valid JSON array of exactly %d meal objects. Each object must have these exact keys:
1. "name" (string): The name of the meal
2. "notes" (string): A brief, enticing description of the meal
3. "ingredients" (array): Each object in this array must have "name" (string) and "quantity" (string)

Example format:
[
    {
        "name": "Meal Name",
        "notes": "Description of the meal",
        "ingredients": [
            {"name": "Ingredient 1", "quantity": "100g"},
            {"name": "Ingredient 2", "quantity": "2 pieces"}
        ]
    }
]

Do not include any other text, explanations, or markdown formatting outside of the JSON array.
Ensure the response is valid JSON that can be parsed directly.`

// Service delegates to the external generative model. A nil generator means
// the upstream credential is missing and every Generate call fails with a
// config error.
type Service struct {
	gen llm.TextGenerator
}

func NewService(gen llm.TextGenerator) *Service {
	return &Service{gen: gen}
}

// Configured reports whether an upstream model credential is available.
func (s *Service) Configured() bool {
	return s.gen != nil
}

// Generate asks the model for count meal suggestions matching prompt.
// Validation happens before any external call is made.
func (s *Service) Generate(ctx context.Context, prompt string, count int) ([]Suggestion, error) {
	if s.gen == nil {
		return nil, apperr.Config("AI service is not configured. Please contact administrator.")
	}
	if prompt == "" {
		return nil, apperr.Validation("Prompt is required")
	}
	if count < 1 || count > 10 {
		return nil, apperr.Validation("Count must be between 1 and 10")
	}

	system := fmt.Sprintf(systemInstruction, count)
	userPrompt := fmt.Sprintf("Generate %d meal ideas based on this request: \"%s\"", count, prompt)

	raw, err := s.gen.GenerateContent(ctx, system, userPrompt)
	if err != nil {
		return nil, apperr.Internal("Failed to generate meal ideas", err)
	}

	return Normalize(raw)
}
