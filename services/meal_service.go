package services

import (
	"fmt"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

type MealItemRequest struct {
	FoodName string  `json:"food_name"`
	Quantity float64 `json:"quantity"` // grams
}

// snapshotItem copies the catalog food's nutrients into a MealItem so later
// catalog edits don't rewrite logged history.
func snapshotItem(mealID uint, f models.FoodRecord, quantity float64) *models.MealItem {
	return &models.MealItem{
		MealID:      mealID,
		FoodName:    f.Name,
		Quantity:    quantity,
		RefQuantity: f.RefQuantity,
		Calories:    f.Calories,
		Protein:     f.Protein,
		Carbs:       f.Carbs,
		Fat:         f.Fat,
		Fiber:       f.Fiber,
		Sugar:       f.Sugar,
		Sodium:      f.Sodium,
	}
}

func (s *MealService) lookupFood(name string) (models.FoodRecord, error) {
	var f models.FoodRecord
	err := s.db.Where("LOWER(name) = LOWER(?)", name).First(&f).Error
	if err != nil {
		return models.FoodRecord{}, fmt.Errorf("food %q not in catalog", name)
	}
	return f, nil
}

func (s *MealService) AddMeal(
	userID uint,
	mealType string,
	ateAt time.Time,
	items []MealItemRequest,
) (*models.Meal, error) {
	meal := &models.Meal{UserID: userID, Type: mealType, AteAt: ateAt}
	if err := s.db.Create(meal).Error; err != nil {
		return nil, err
	}

	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("quantity for %q must be positive", it.FoodName)
		}
		f, err := s.lookupFood(it.FoodName)
		if err != nil {
			return nil, err
		}
		if err := s.db.Create(snapshotItem(meal.ID, f, it.Quantity)).Error; err != nil {
			return nil, err
		}
	}

	// reload with items
	var populated models.Meal
	if err := s.db.Preload("Items").First(&populated, meal.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

func (s *MealService) UpdateMeal(
	userID, mealID uint,
	mealType string,
	ateAt time.Time,
	items []MealItemRequest,
) (*models.Meal, error) {
	var meal models.Meal
	if err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return nil, err
	}
	meal.Type = mealType
	meal.AteAt = ateAt
	if err := s.db.Save(&meal).Error; err != nil {
		return nil, err
	}

	// replace items wholesale
	if err := s.db.Where("meal_id = ?", meal.ID).Delete(&models.MealItem{}).Error; err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("quantity for %q must be positive", it.FoodName)
		}
		f, err := s.lookupFood(it.FoodName)
		if err != nil {
			return nil, err
		}
		if err := s.db.Create(snapshotItem(meal.ID, f, it.Quantity)).Error; err != nil {
			return nil, err
		}
	}

	var updated models.Meal
	if err := s.db.Preload("Items").First(&updated, meal.ID).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *MealService) DeleteMeal(userID, mealID uint) error {
	// Ownership check before touching items, so a foreign meal id cannot
	// delete another user's rows.
	var meal models.Meal
	if err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return err
	}
	if err := s.db.Where("meal_id = ?", meal.ID).Delete(&models.MealItem{}).Error; err != nil {
		return err
	}
	return s.db.Delete(&meal).Error
}

func (s *MealService) GetMeal(userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
		Preload("Items").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &meal, nil
}

func (s *MealService) ListMeals(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("ate_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) ListMealsByDateRange(userID uint, from, to time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Preload("Items").
		Where("user_id = ? AND ate_at >= ? AND ate_at < ?", userID, from, to).
		Order("ate_at ASC").
		Find(&meals).Error
	return meals, err
}

// EntriesForRange flattens meal rows into the MealEntry values the insight
// functions consume. The item's snapshot becomes the food record, so the
// computation never re-reads the catalog.
func (s *MealService) EntriesForRange(userID uint, from, to time.Time) ([]MealEntry, error) {
	meals, err := s.ListMealsByDateRange(userID, from, to)
	if err != nil {
		return nil, err
	}
	var entries []MealEntry
	for _, m := range meals {
		for _, it := range m.Items {
			entries = append(entries, MealEntry{
				Food: models.FoodRecord{
					Name:        it.FoodName,
					RefQuantity: it.RefQuantity,
					Calories:    it.Calories,
					Protein:     it.Protein,
					Carbs:       it.Carbs,
					Fat:         it.Fat,
					Fiber:       it.Fiber,
					Sugar:       it.Sugar,
					Sodium:      it.Sodium,
				},
				Quantity: it.Quantity,
				MealType: m.Type,
				AteAt:    m.AteAt,
			})
		}
	}
	return entries, nil
}

// EntriesByDay groups a range's entries by their YYYY-MM-DD date for the
// timing analyzer.
func (s *MealService) EntriesByDay(userID uint, from, to time.Time) (map[string][]MealEntry, error) {
	entries, err := s.EntriesForRange(userID, from, to)
	if err != nil {
		return nil, err
	}
	byDay := make(map[string][]MealEntry)
	for _, e := range entries {
		key := e.AteAt.Format("2006-01-02")
		byDay[key] = append(byDay[key], e)
	}
	return byDay, nil
}
