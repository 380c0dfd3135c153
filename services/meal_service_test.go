package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.FoodRecord{},
		&models.Meal{},
		&models.MealItem{},
	))
	return db
}

func seedFood(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&models.FoodRecord{
		Name: "Oatmeal", RefQuantity: 100,
		Calories: 389, Protein: 16.9, Carbs: 66.3, Fat: 6.9,
	}).Error)
}

func TestDeleteMeal_ForeignMealLeavesItemsAlone(t *testing.T) {
	db := newTestDB(t)
	seedFood(t, db)
	svc := NewMealService(db)

	meal, err := svc.AddMeal(1, models.MealBreakfast, time.Now(),
		[]MealItemRequest{{FoodName: "Oatmeal", Quantity: 60}})
	require.NoError(t, err)
	require.Len(t, meal.Items, 1)

	// another user holding the meal id must not be able to delete anything
	err = svc.DeleteMeal(2, meal.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var items int64
	require.NoError(t, db.Model(&models.MealItem{}).
		Where("meal_id = ?", meal.ID).Count(&items).Error)
	assert.Equal(t, int64(1), items)

	kept, err := svc.GetMeal(1, meal.ID)
	require.NoError(t, err)
	assert.Len(t, kept.Items, 1)
}

func TestDeleteMeal_RemovesMealAndItems(t *testing.T) {
	db := newTestDB(t)
	seedFood(t, db)
	svc := NewMealService(db)

	meal, err := svc.AddMeal(1, models.MealLunch, time.Now(),
		[]MealItemRequest{{FoodName: "Oatmeal", Quantity: 50}})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMeal(1, meal.ID))

	_, err = svc.GetMeal(1, meal.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var items int64
	require.NoError(t, db.Model(&models.MealItem{}).
		Where("meal_id = ?", meal.ID).Count(&items).Error)
	assert.Equal(t, int64(0), items)
}
