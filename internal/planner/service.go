// Package planner manages the weekly meal plan: one optional meal per day of
// the week, each with a free-form ingredient list.
package planner

import (
	"errors"

	"mealmate/internal/apperr"
	"mealmate/internal/domain"
	"mealmate/internal/store"
)

// IngredientInput is a client-supplied ingredient entry. Entries missing a
// name or quantity are dropped silently rather than rejected.
type IngredientInput struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// MealUpdate carries the fields of an update request. Nil means the key was
// absent. DayOfWeek and Name only apply when non-empty; Notes applies
// whenever the key is present, empty string included; a present Ingredients
// replaces the stored set wholesale. This asymmetry is deliberate and pinned
// by tests.
type MealUpdate struct {
	DayOfWeek   *string
	Name        *string
	Notes       *string
	Ingredients *[]IngredientInput
}

type Service struct {
	meals store.MealStore
}

func NewService(meals store.MealStore) *Service {
	return &Service{meals: meals}
}

// List returns all of the user's meals with their ingredients.
func (s *Service) List(userID uint) ([]domain.Meal, error) {
	meals, err := s.meals.ListByUser(userID)
	if err != nil {
		return nil, apperr.Internal("Failed to fetch meal plan", err)
	}
	return meals, nil
}

// Add creates a meal for a day the user has not planned yet.
func (s *Service) Add(userID uint, day, name, notes string, ingredients []IngredientInput) (*domain.Meal, error) {
	if day == "" || name == "" {
		return nil, apperr.Validation("Day of week and meal name are required")
	}
	if !domain.IsValidDay(day) {
		return nil, apperr.Validation("Invalid day of week")
	}

	if _, err := s.meals.FindByDay(userID, day); err == nil {
		return nil, apperr.Conflict("Meal already exists for this day")
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, apperr.Internal("Failed to add meal", err)
	}

	meal := &domain.Meal{
		UserID:      userID,
		DayOfWeek:   day,
		Name:        name,
		Notes:       notes,
		Ingredients: wellFormed(ingredients),
	}
	if err := s.meals.Create(meal); err != nil {
		return nil, apperr.Internal("Failed to add meal", err)
	}
	return meal, nil
}

// Update overwrites the fields present in upd and refreshes the updated
// timestamp.
func (s *Service) Update(userID, mealID uint, upd MealUpdate) (*domain.Meal, error) {
	meal, err := s.meals.FindByID(userID, mealID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("Meal not found")
		}
		return nil, apperr.Internal("Failed to update meal", err)
	}

	if upd.DayOfWeek != nil && *upd.DayOfWeek != "" {
		if !domain.IsValidDay(*upd.DayOfWeek) {
			return nil, apperr.Validation("Invalid day of week")
		}
		meal.DayOfWeek = *upd.DayOfWeek
	}
	if upd.Name != nil && *upd.Name != "" {
		meal.Name = *upd.Name
	}
	if upd.Notes != nil {
		meal.Notes = *upd.Notes
	}
	replace := upd.Ingredients != nil
	if replace {
		meal.Ingredients = wellFormed(*upd.Ingredients)
	}

	if err := s.meals.Update(meal, replace); err != nil {
		return nil, apperr.Internal("Failed to update meal", err)
	}
	return meal, nil
}

// Delete removes the meal and all of its ingredients.
func (s *Service) Delete(userID, mealID uint) error {
	meal, err := s.meals.FindByID(userID, mealID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("Meal not found")
		}
		return apperr.Internal("Failed to delete meal", err)
	}
	if err := s.meals.Delete(meal); err != nil {
		return apperr.Internal("Failed to delete meal", err)
	}
	return nil
}

func wellFormed(inputs []IngredientInput) []domain.Ingredient {
	out := []domain.Ingredient{}
	for _, in := range inputs {
		if in.Name == "" || in.Quantity == "" {
			continue
		}
		out = append(out, domain.Ingredient{Name: in.Name, Quantity: in.Quantity})
	}
	return out
}
