package store

import (
	"testing"
	"time"

	"mealmate/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryDeleteUserCascades(t *testing.T) {
	mem := NewMemory()

	alice := &domain.User{Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, mem.Create(alice))
	bob := &domain.User{Email: "bob@example.com", PasswordHash: "x"}
	require.NoError(t, mem.Create(bob))

	meals := mem.Meals()
	require.NoError(t, meals.Create(&domain.Meal{UserID: alice.ID, DayOfWeek: "Monday", Name: "Pasta"}))
	require.NoError(t, meals.Create(&domain.Meal{UserID: bob.ID, DayOfWeek: "Monday", Name: "Soup"}))

	groceries := mem.Groceries()
	require.NoError(t, groceries.Create(&domain.GroceryItem{UserID: alice.ID, Name: "milk", Quantity: "1L"}))

	require.NoError(t, mem.DeleteUser(alice.ID))

	_, err := mem.FindByID(alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	aliceMeals, err := meals.ListByUser(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, aliceMeals)

	aliceItems, err := groceries.ListByUser(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, aliceItems)

	// Bob's data is untouched.
	bobMeals, err := meals.ListByUser(bob.ID)
	require.NoError(t, err)
	assert.Len(t, bobMeals, 1)

	assert.ErrorIs(t, mem.DeleteUser(alice.ID), ErrNotFound)
}

func TestMemoryGroceryOrdering(t *testing.T) {
	mem := NewMemory()
	groceries := mem.Groceries()

	first := &domain.GroceryItem{UserID: 1, Name: "milk", Quantity: "1L"}
	require.NoError(t, groceries.Create(first))
	second := &domain.GroceryItem{UserID: 1, Name: "eggs", Quantity: "12"}
	require.NoError(t, groceries.Create(second))

	items, err := groceries.ListByUser(1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	// Newest first; ties on CreatedAt fall back to descending id.
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, first.ID, items[1].ID)
}

func TestMemoryMealCopiesAreIsolated(t *testing.T) {
	mem := NewMemory()
	meals := mem.Meals()

	meal := &domain.Meal{
		UserID:    1,
		DayOfWeek: "Monday",
		Name:      "Pasta",
		Ingredients: []domain.Ingredient{
			{Name: "pasta", Quantity: "200g"},
		},
	}
	require.NoError(t, meals.Create(meal))
	assert.False(t, meal.CreatedAt.IsZero())
	assert.False(t, meal.UpdatedAt.Before(meal.CreatedAt))

	fetched, err := meals.FindByID(1, meal.ID)
	require.NoError(t, err)
	fetched.Ingredients[0].Name = "mutated"

	again, err := meals.FindByID(1, meal.ID)
	require.NoError(t, err)
	assert.Equal(t, "pasta", again.Ingredients[0].Name)
}

func TestMemoryUpdatePreservesIngredientsWithoutReplace(t *testing.T) {
	mem := NewMemory()
	meals := mem.Meals()

	meal := &domain.Meal{
		UserID:    1,
		DayOfWeek: "Monday",
		Name:      "Pasta",
		Ingredients: []domain.Ingredient{
			{Name: "pasta", Quantity: "200g"},
		},
	}
	require.NoError(t, meals.Create(meal))
	created := meal.UpdatedAt

	time.Sleep(time.Millisecond)
	meal.Name = "Lasagna"
	meal.Ingredients = nil
	require.NoError(t, meals.Update(meal, false))

	fetched, err := meals.FindByID(1, meal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lasagna", fetched.Name)
	require.Len(t, fetched.Ingredients, 1)
	assert.True(t, fetched.UpdatedAt.After(created))
}
