package ideas

import (
	"testing"

	"mealmate/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFencedOutput(t *testing.T) {
	raw := "```json\n[{\"name\": \"A\", \"notes\": \"n\", \"ingredients\": [{\"name\": \"x\", \"quantity\": \"1\"}]}]\n```"

	meals, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "A", meals[0].Name)
	assert.Equal(t, "n", meals[0].Notes)
	require.Len(t, meals[0].Ingredients, 1)
	assert.Equal(t, "x", meals[0].Ingredients[0].Name)
	assert.Equal(t, "1", meals[0].Ingredients[0].Quantity)
}

func TestNormalizeBareFence(t *testing.T) {
	raw := "```\n[{\"name\": \"A\", \"notes\": \"n\", \"ingredients\": []}]\n```"

	meals, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, []Ingredient{}, meals[0].Ingredients)
}

func TestNormalizeInvalidJSON(t *testing.T) {
	_, err := Normalize("this is not json")

	require.Error(t, err)
	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, apperr.KindUpstreamFormat, e.Kind)
	assert.Equal(t, "Failed to parse AI response", e.Message)
	assert.Contains(t, e.Details, "Invalid JSON")
	assert.Equal(t, "this is not json", e.Raw)
}

func TestNormalizeNonArray(t *testing.T) {
	_, err := Normalize(`{"name": "A"}`)

	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, apperr.KindUpstreamFormat, e.Kind)
	assert.Equal(t, "Invalid AI response format", e.Message)
	assert.Equal(t, "Expected array of meals", e.Details)
	assert.Empty(t, e.Raw)
}

func TestNormalizeDropsIncompleteMeals(t *testing.T) {
	raw := `[
		{"name": "A"},
		{"name": "B", "notes": "ok", "ingredients": "not a list"},
		{"name": "C", "notes": "ok", "ingredients": [{"name": "x", "quantity": "1"}, {"name": "no quantity"}]},
		"just a string"
	]`

	meals, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "C", meals[0].Name)
	require.Len(t, meals[0].Ingredients, 1)
	assert.Equal(t, "x", meals[0].Ingredients[0].Name)
}

func TestNormalizeNothingSurvives(t *testing.T) {
	_, err := Normalize(`[{"name": "A"}]`)

	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, apperr.KindUpstreamFormat, e.Kind)
	assert.Equal(t, "No valid meals generated", e.Message)
	assert.Equal(t, "AI response did not contain valid meal data", e.Details)
}

func TestNormalizeCoercesNonStringValues(t *testing.T) {
	raw := `[{"name": 42, "notes": true, "ingredients": [{"name": "x", "quantity": 2}]}]`

	meals, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, "42", meals[0].Name)
	assert.Equal(t, "true", meals[0].Notes)
	assert.Equal(t, "2", meals[0].Ingredients[0].Quantity)
}

func TestNormalizeDeterministic(t *testing.T) {
	raw := `[{"name": "A", "notes": "n", "ingredients": []}]`

	first, err := Normalize(raw)
	require.NoError(t, err)
	second, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
