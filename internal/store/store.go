// Package store provides per-entity repositories. Every query and mutation on
// meals and grocery items is scoped to an owning user id; an id that exists
// but belongs to another user is reported as ErrNotFound.
package store

import (
	"errors"

	"mealmate/internal/domain"
)

// ErrNotFound is returned when a record is absent or not owned by the caller.
var ErrNotFound = errors.New("record not found")

// UserStore persists user accounts.
type UserStore interface {
	Create(user *domain.User) error
	FindByEmail(email string) (*domain.User, error)
	FindByID(id uint) (*domain.User, error)
}

// MealStore persists meals and their ingredients. Create, Update and Delete
// each run in a single all-or-nothing transaction; ingredient cascades are
// explicit (children first, then the meal).
type MealStore interface {
	ListByUser(userID uint) ([]domain.Meal, error)
	FindByID(userID, mealID uint) (*domain.Meal, error)
	FindByDay(userID uint, day string) (*domain.Meal, error)
	Create(meal *domain.Meal) error
	// Update saves the meal's fields. When replaceIngredients is true the
	// stored ingredient set is replaced wholesale with meal.Ingredients,
	// which may be empty.
	Update(meal *domain.Meal, replaceIngredients bool) error
	Delete(meal *domain.Meal) error
}

// GroceryStore persists grocery items.
type GroceryStore interface {
	// ListByUser returns the user's items, most recently created first.
	ListByUser(userID uint) ([]domain.GroceryItem, error)
	FindByID(userID, itemID uint) (*domain.GroceryItem, error)
	Create(item *domain.GroceryItem) error
	Update(item *domain.GroceryItem) error
	Delete(item *domain.GroceryItem) error
	// DeletePurchased removes all of the user's purchased items and returns
	// how many were deleted.
	DeletePurchased(userID uint) (int64, error)
}
