package ideas

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"mealmate/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator records calls and plays back a canned response.
type stubGenerator struct {
	response string
	err      error
	calls    int
	prompt   string
	system   string
}

func (s *stubGenerator) GenerateContent(_ context.Context, system, prompt string) (string, error) {
	s.calls++
	s.system = system
	s.prompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestGenerateUnconfigured(t *testing.T) {
	svc := NewService(nil)

	assert.False(t, svc.Configured())

	_, err := svc.Generate(context.Background(), "dinner ideas", 3)
	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, apperr.KindConfig, e.Kind)
	assert.Equal(t, "AI service is not configured. Please contact administrator.", e.Message)
}

func TestGenerateEmptyPrompt(t *testing.T) {
	gen := &stubGenerator{}
	svc := NewService(gen)

	_, err := svc.Generate(context.Background(), "", 3)
	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, apperr.KindValidation, e.Kind)
	assert.Equal(t, "Prompt is required", e.Message)
	assert.Zero(t, gen.calls)
}

func TestGenerateCountBounds(t *testing.T) {
	gen := &stubGenerator{}
	svc := NewService(gen)

	for _, count := range []int{0, -1, 11} {
		_, err := svc.Generate(context.Background(), "dinner", count)
		var e *apperr.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, apperr.KindValidation, e.Kind)
		assert.Equal(t, "Count must be between 1 and 10", e.Message)
	}
	assert.Zero(t, gen.calls, "invalid input must never reach the model")
}

func TestGenerateSuccess(t *testing.T) {
	gen := &stubGenerator{
		response: "```json\n[{\"name\": \"Tacos\", \"notes\": \"quick\", \"ingredients\": [{\"name\": \"tortilla\", \"quantity\": \"4\"}]}]\n```",
	}
	svc := NewService(gen)

	meals, err := svc.Generate(context.Background(), "mexican dinner", 1)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "Tacos", meals[0].Name)

	assert.Equal(t, 1, gen.calls)
	assert.Contains(t, gen.prompt, `Generate 1 meal ideas based on this request: "mexican dinner"`)
	assert.Contains(t, gen.system, fmt.Sprintf("exactly %d meal objects", 1))
}

func TestGenerateModelFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("upstream timeout")}
	svc := NewService(gen)

	_, err := svc.Generate(context.Background(), "dinner", 3)
	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, apperr.KindInternal, e.Kind)
	assert.Equal(t, "Failed to generate meal ideas", e.Message)
}
