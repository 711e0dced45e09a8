package store

import (
	"sort"
	"sync"
	"time"

	"mealmate/internal/domain"
)

// Memory is an in-process implementation of all three repositories, used by
// service and handler tests in place of MySQL. It mirrors the GORM stores'
// observable behavior: id assignment, timestamps, ownership scoping and
// ingredient cascades.
type Memory struct {
	mu     sync.Mutex
	nextID uint

	users map[uint]domain.User
	meals map[uint]domain.Meal
	items map[uint]domain.GroceryItem
}

func NewMemory() *Memory {
	return &Memory{
		users: make(map[uint]domain.User),
		meals: make(map[uint]domain.Meal),
		items: make(map[uint]domain.GroceryItem),
	}
}

func (m *Memory) id() uint {
	m.nextID++
	return m.nextID
}

// UserStore

func (m *Memory) Create(user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = m.id()
	user.CreatedAt = time.Now()
	m.users[user.ID] = *user
	return nil
}

func (m *Memory) FindByEmail(email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) FindByID(id uint) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	user := u
	return &user, nil
}

// DeleteUser removes a user and cascades to their meals and grocery items,
// matching the schema's declared cascade.
func (m *Memory) DeleteUser(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return ErrNotFound
	}
	delete(m.users, id)
	for mealID, meal := range m.meals {
		if meal.UserID == id {
			delete(m.meals, mealID)
		}
	}
	for itemID, item := range m.items {
		if item.UserID == id {
			delete(m.items, itemID)
		}
	}
	return nil
}

// Meals returns a separate view so the two stores can be passed independently.
func (m *Memory) Meals() *MemoryMealStore { return &MemoryMealStore{m} }

// Groceries returns the grocery-item view of the same backing maps.
func (m *Memory) Groceries() *MemoryGroceryStore { return &MemoryGroceryStore{m} }

// MemoryMealStore implements MealStore over Memory.
type MemoryMealStore struct {
	m *Memory
}

func copyMeal(meal domain.Meal) domain.Meal {
	out := meal
	out.Ingredients = make([]domain.Ingredient, len(meal.Ingredients))
	copy(out.Ingredients, meal.Ingredients)
	return out
}

func (s *MemoryMealStore) ListByUser(userID uint) ([]domain.Meal, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	meals := []domain.Meal{}
	for _, meal := range s.m.meals {
		if meal.UserID == userID {
			meals = append(meals, copyMeal(meal))
		}
	}
	sort.Slice(meals, func(i, j int) bool { return meals[i].ID < meals[j].ID })
	return meals, nil
}

func (s *MemoryMealStore) FindByID(userID, mealID uint) (*domain.Meal, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	meal, ok := s.m.meals[mealID]
	if !ok || meal.UserID != userID {
		return nil, ErrNotFound
	}
	out := copyMeal(meal)
	return &out, nil
}

func (s *MemoryMealStore) FindByDay(userID uint, day string) (*domain.Meal, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, meal := range s.m.meals {
		if meal.UserID == userID && meal.DayOfWeek == day {
			out := copyMeal(meal)
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryMealStore) Create(meal *domain.Meal) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	meal.ID = s.m.id()
	now := time.Now()
	meal.CreatedAt = now
	meal.UpdatedAt = now
	if meal.Ingredients == nil {
		meal.Ingredients = []domain.Ingredient{}
	}
	for i := range meal.Ingredients {
		meal.Ingredients[i].ID = s.m.id()
		meal.Ingredients[i].MealID = meal.ID
	}
	s.m.meals[meal.ID] = copyMeal(*meal)
	return nil
}

func (s *MemoryMealStore) Update(meal *domain.Meal, replaceIngredients bool) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	stored, ok := s.m.meals[meal.ID]
	if !ok {
		return ErrNotFound
	}
	meal.UpdatedAt = time.Now()
	if replaceIngredients {
		for i := range meal.Ingredients {
			meal.Ingredients[i].ID = s.m.id()
			meal.Ingredients[i].MealID = meal.ID
		}
	} else {
		meal.Ingredients = stored.Ingredients
	}
	s.m.meals[meal.ID] = copyMeal(*meal)
	return nil
}

func (s *MemoryMealStore) Delete(meal *domain.Meal) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.meals[meal.ID]; !ok {
		return ErrNotFound
	}
	delete(s.m.meals, meal.ID)
	return nil
}

// MemoryGroceryStore implements GroceryStore over Memory.
type MemoryGroceryStore struct {
	m *Memory
}

func (s *MemoryGroceryStore) ListByUser(userID uint) ([]domain.GroceryItem, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	items := []domain.GroceryItem{}
	for _, item := range s.m.items {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID > items[j].ID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *MemoryGroceryStore) FindByID(userID, itemID uint) (*domain.GroceryItem, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	item, ok := s.m.items[itemID]
	if !ok || item.UserID != userID {
		return nil, ErrNotFound
	}
	out := item
	return &out, nil
}

func (s *MemoryGroceryStore) Create(item *domain.GroceryItem) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	item.ID = s.m.id()
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	s.m.items[item.ID] = *item
	return nil
}

func (s *MemoryGroceryStore) Update(item *domain.GroceryItem) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.items[item.ID]; !ok {
		return ErrNotFound
	}
	item.UpdatedAt = time.Now()
	s.m.items[item.ID] = *item
	return nil
}

func (s *MemoryGroceryStore) Delete(item *domain.GroceryItem) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.items[item.ID]; !ok {
		return ErrNotFound
	}
	delete(s.m.items, item.ID)
	return nil
}

func (s *MemoryGroceryStore) DeletePurchased(userID uint) (int64, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var deleted int64
	for id, item := range s.m.items {
		if item.UserID == userID && item.Purchased {
			delete(s.m.items, id)
			deleted++
		}
	}
	return deleted, nil
}
