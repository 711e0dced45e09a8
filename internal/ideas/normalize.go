package ideas

import (
	"encoding/json"
	"fmt"
	"strings"

	"mealmate/internal/apperr"
)

// Ingredient is one entry of a suggested meal's ingredient list.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// Suggestion is a validated meal suggestion distilled from model output.
type Suggestion struct {
	Name        string       `json:"name"`
	Notes       string       `json:"notes"`
	Ingredients []Ingredient `json:"ingredients"`
}

// Normalize turns raw model output into validated suggestions. It is a pure
// function of its input: the same text always normalizes the same way.
//
// Pipeline: trim, strip a fenced-code wrapper, trim again, parse as JSON,
// require an array, then keep only elements that are records carrying name,
// notes and an ingredients list. Ingredient sub-records need both name and
// quantity; both are coerced to text. Anything else is dropped silently.
func Normalize(raw string) ([]Suggestion, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, apperr.UpstreamFormat("Failed to parse AI response", "Invalid JSON: "+err.Error(), text)
	}

	list, ok := parsed.([]any)
	if !ok {
		return nil, apperr.UpstreamFormat("Invalid AI response format", "Expected array of meals", "")
	}

	var meals []Suggestion
	for _, element := range list {
		record, ok := element.(map[string]any)
		if !ok {
			continue
		}
		name, hasName := record["name"]
		notes, hasNotes := record["notes"]
		rawIngredients, hasIngredients := record["ingredients"]
		if !hasName || !hasNotes || !hasIngredients {
			continue
		}
		ingredientList, ok := rawIngredients.([]any)
		if !ok {
			continue
		}

		ingredients := []Ingredient{}
		for _, entry := range ingredientList {
			sub, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			ingName, hasIngName := sub["name"]
			ingQty, hasIngQty := sub["quantity"]
			if !hasIngName || !hasIngQty {
				continue
			}
			ingredients = append(ingredients, Ingredient{
				Name:     coerceText(ingName),
				Quantity: coerceText(ingQty),
			})
		}

		meals = append(meals, Suggestion{
			Name:        coerceText(name),
			Notes:       coerceText(notes),
			Ingredients: ingredients,
		})
	}

	if len(meals) == 0 {
		return nil, apperr.UpstreamFormat("No valid meals generated", "AI response did not contain valid meal data", "")
	}
	return meals, nil
}

func coerceText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
