package store

import (
	"errors"

	"mealmate/internal/domain"

	"gorm.io/gorm"
)

// GormUserStore is the MySQL-backed UserStore.
type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) Create(user *domain.User) error {
	return s.db.Create(user).Error
}

func (s *GormUserStore) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormUserStore) FindByID(id uint) (*domain.User, error) {
	var user domain.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// GormMealStore is the MySQL-backed MealStore.
type GormMealStore struct {
	db *gorm.DB
}

func NewGormMealStore(db *gorm.DB) *GormMealStore {
	return &GormMealStore{db: db}
}

func (s *GormMealStore) ListByUser(userID uint) ([]domain.Meal, error) {
	var meals []domain.Meal
	if err := s.db.Preload("Ingredients").Where("user_id = ?", userID).Find(&meals).Error; err != nil {
		return nil, err
	}
	for i := range meals {
		if meals[i].Ingredients == nil {
			meals[i].Ingredients = []domain.Ingredient{}
		}
	}
	return meals, nil
}

func (s *GormMealStore) FindByID(userID, mealID uint) (*domain.Meal, error) {
	var meal domain.Meal
	err := s.db.Preload("Ingredients").Where("id = ? AND user_id = ?", mealID, userID).First(&meal).Error
	if err != nil {
		return nil, translate(err)
	}
	if meal.Ingredients == nil {
		meal.Ingredients = []domain.Ingredient{}
	}
	return &meal, nil
}

func (s *GormMealStore) FindByDay(userID uint, day string) (*domain.Meal, error) {
	var meal domain.Meal
	err := s.db.Where("user_id = ? AND day_of_week = ?", userID, day).First(&meal).Error
	if err != nil {
		return nil, translate(err)
	}
	return &meal, nil
}

func (s *GormMealStore) Create(meal *domain.Meal) error {
	// gorm inserts the meal and its ingredient associations in one transaction
	return s.db.Create(meal).Error
}

func (s *GormMealStore) Update(meal *domain.Meal, replaceIngredients bool) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if replaceIngredients {
			if err := tx.Where("meal_id = ?", meal.ID).Delete(&domain.Ingredient{}).Error; err != nil {
				return err
			}
			for i := range meal.Ingredients {
				meal.Ingredients[i].ID = 0
				meal.Ingredients[i].MealID = meal.ID
			}
		}
		if err := tx.Omit("Ingredients").Save(meal).Error; err != nil {
			return err
		}
		if replaceIngredients && len(meal.Ingredients) > 0 {
			if err := tx.Create(&meal.Ingredients).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *GormMealStore) Delete(meal *domain.Meal) error {
	// Explicit cascade: ingredients first, then the meal, atomically
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", meal.ID).Delete(&domain.Ingredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(meal).Error
	})
}

// GormGroceryStore is the MySQL-backed GroceryStore.
type GormGroceryStore struct {
	db *gorm.DB
}

func NewGormGroceryStore(db *gorm.DB) *GormGroceryStore {
	return &GormGroceryStore{db: db}
}

func (s *GormGroceryStore) ListByUser(userID uint) ([]domain.GroceryItem, error) {
	items := []domain.GroceryItem{}
	err := s.db.Where("user_id = ?", userID).Order("created_at desc").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormGroceryStore) FindByID(userID, itemID uint) (*domain.GroceryItem, error) {
	var item domain.GroceryItem
	err := s.db.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (s *GormGroceryStore) Create(item *domain.GroceryItem) error {
	return s.db.Create(item).Error
}

func (s *GormGroceryStore) Update(item *domain.GroceryItem) error {
	return s.db.Save(item).Error
}

func (s *GormGroceryStore) Delete(item *domain.GroceryItem) error {
	return s.db.Delete(item).Error
}

func (s *GormGroceryStore) DeletePurchased(userID uint) (int64, error) {
	res := s.db.Where("user_id = ? AND purchased = ?", userID, true).Delete(&domain.GroceryItem{})
	return res.RowsAffected, res.Error
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
