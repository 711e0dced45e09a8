// Package grocery manages the per-user shopping list.
package grocery

import (
	"errors"
	"strings"

	"mealmate/internal/apperr"
	"mealmate/internal/domain"
	"mealmate/internal/store"
)

// ItemUpdate carries the fields of an update request. Nil means the key was
// absent. Purchased applies on presence; Name and Quantity only apply when
// non-empty (they are trimmed before storage).
type ItemUpdate struct {
	Purchased *bool
	Name      *string
	Quantity  *string
}

type Service struct {
	items store.GroceryStore
}

func NewService(items store.GroceryStore) *Service {
	return &Service{items: items}
}

// List returns the user's items, most recently created first.
func (s *Service) List(userID uint) ([]domain.GroceryItem, error) {
	items, err := s.items.ListByUser(userID)
	if err != nil {
		return nil, apperr.Internal("Failed to fetch grocery list", err)
	}
	return items, nil
}

// Add creates an unpurchased item. Name and quantity must be non-empty after
// trimming.
func (s *Service) Add(userID uint, name, quantity string) (*domain.GroceryItem, error) {
	name = strings.TrimSpace(name)
	quantity = strings.TrimSpace(quantity)
	if name == "" || quantity == "" {
		return nil, apperr.Validation("Item name and quantity are required")
	}

	item := &domain.GroceryItem{
		UserID:    userID,
		Name:      name,
		Quantity:  quantity,
		Purchased: false,
	}
	if err := s.items.Create(item); err != nil {
		return nil, apperr.Internal("Failed to add grocery item", err)
	}
	return item, nil
}

// Update overwrites the fields present in upd and refreshes the updated
// timestamp.
func (s *Service) Update(userID, itemID uint, upd ItemUpdate) (*domain.GroceryItem, error) {
	item, err := s.items.FindByID(userID, itemID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("Grocery item not found")
		}
		return nil, apperr.Internal("Failed to update grocery item", err)
	}

	if upd.Purchased != nil {
		item.Purchased = *upd.Purchased
	}
	if upd.Name != nil && *upd.Name != "" {
		item.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Quantity != nil && *upd.Quantity != "" {
		item.Quantity = strings.TrimSpace(*upd.Quantity)
	}

	if err := s.items.Update(item); err != nil {
		return nil, apperr.Internal("Failed to update grocery item", err)
	}
	return item, nil
}

// Delete removes a single item.
func (s *Service) Delete(userID, itemID uint) error {
	item, err := s.items.FindByID(userID, itemID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("Grocery item not found")
		}
		return apperr.Internal("Failed to delete grocery item", err)
	}
	if err := s.items.Delete(item); err != nil {
		return apperr.Internal("Failed to delete grocery item", err)
	}
	return nil
}

// ClearPurchased deletes every purchased item and reports how many went.
// Calling it again right away deletes nothing and returns zero.
func (s *Service) ClearPurchased(userID uint) (int64, error) {
	deleted, err := s.items.DeletePurchased(userID)
	if err != nil {
		return 0, apperr.Internal("Failed to clear purchased items", err)
	}
	return deleted, nil
}
