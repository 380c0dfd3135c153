package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
)

func food(name string, cal, protein, carbs, fat float64) models.FoodRecord {
	return models.FoodRecord{
		Name:        name,
		RefQuantity: 100,
		Calories:    cal,
		Protein:     protein,
		Carbs:       carbs,
		Fat:         fat,
	}
}

func at(day, hour, minute int) time.Time {
	return time.Date(2024, 5, day, hour, minute, 0, 0, time.UTC)
}

func TestAggregate_Empty(t *testing.T) {
	out := Aggregate(nil)
	assert.Equal(t, 0.0, out.Totals.Calories)
	assert.Equal(t, 0.0, out.Totals.Protein)
	assert.Empty(t, out.ByMealType)

	out = Aggregate([]MealEntry{})
	assert.Equal(t, 0.0, out.Totals.Calories)
}

func TestAggregate_ScalesByQuantity(t *testing.T) {
	entries := []MealEntry{
		{Food: food("Rice", 130, 2.7, 28, 0.3), Quantity: 150, MealType: models.MealLunch, AteAt: at(1, 13, 0)},
	}
	out := Aggregate(entries)
	assert.InDelta(t, 195, out.Totals.Calories, 0.001) // 130 * 150/100
	assert.InDelta(t, 4.05, out.Totals.Protein, 0.001)
	assert.InDelta(t, 42, out.Totals.Carbs, 0.001)
}

func TestAggregate_CustomReferenceQuantity(t *testing.T) {
	// an idli is 58 kcal per 30g piece
	idli := models.FoodRecord{Name: "Idli", RefQuantity: 30, Calories: 58, Protein: 1.6, Carbs: 12}
	out := Aggregate([]MealEntry{
		{Food: idli, Quantity: 60, MealType: models.MealBreakfast, AteAt: at(1, 8, 0)},
	})
	assert.InDelta(t, 116, out.Totals.Calories, 0.001) // two pieces
	assert.InDelta(t, 3.2, out.Totals.Protein, 0.001)
}

func TestAggregate_CoalescesBadValues(t *testing.T) {
	bad := models.FoodRecord{Name: "Corrupt", RefQuantity: 100, Calories: 100, Protein: -5}
	out := Aggregate([]MealEntry{
		{Food: bad, Quantity: 100, MealType: models.MealSnack, AteAt: at(1, 16, 0)},
		{Food: food("Egg", 155, 13, 1.1, 11), Quantity: 100, MealType: models.MealSnack, AteAt: at(1, 17, 0)},
	})
	// the corrupt field zeroes out, the rest of the day still computes
	assert.InDelta(t, 255, out.Totals.Calories, 0.001)
	assert.InDelta(t, 13, out.Totals.Protein, 0.001)
}

func TestAggregate_UnknownMealTypeBucketsAsOther(t *testing.T) {
	out := Aggregate([]MealEntry{
		{Food: food("Toast", 120, 4, 22, 1), Quantity: 100, MealType: "brunch", AteAt: at(1, 10, 0)},
	})
	assert.Contains(t, out.ByMealType, models.MealOther)
	assert.InDelta(t, 120, out.ByMealType[models.MealOther].Calories, 0.001)
}

func TestAggregate_TotalsEqualBucketSums(t *testing.T) {
	entries := []MealEntry{
		{Food: food("Oats", 389, 16.9, 66, 6.9), Quantity: 50, MealType: models.MealBreakfast, AteAt: at(1, 8, 0)},
		{Food: food("Chicken", 165, 31, 0, 3.6), Quantity: 200, MealType: models.MealLunch, AteAt: at(1, 13, 0)},
		{Food: food("Apple", 52, 0.3, 14, 0.2), Quantity: 180, MealType: "midnight feast", AteAt: at(1, 23, 30)},
		{Food: food("Rice", 130, 2.7, 28, 0.3), Quantity: 150, MealType: models.MealDinner, AteAt: at(1, 20, 0)},
	}
	out := Aggregate(entries)

	var sum MacroTotals
	for _, bucket := range out.ByMealType {
		sum.add(bucket)
	}
	assert.InDelta(t, out.Totals.Calories, sum.Calories, 0.0001)
	assert.InDelta(t, out.Totals.Protein, sum.Protein, 0.0001)
	assert.InDelta(t, out.Totals.Carbs, sum.Carbs, 0.0001)
	assert.InDelta(t, out.Totals.Fat, sum.Fat, 0.0001)
}

func TestFilterByDate(t *testing.T) {
	entries := []MealEntry{
		{Food: food("A", 100, 0, 0, 0), Quantity: 100, MealType: models.MealLunch, AteAt: at(1, 13, 0)},
		{Food: food("B", 100, 0, 0, 0), Quantity: 100, MealType: models.MealLunch, AteAt: at(2, 13, 0)},
		{Food: food("C", 100, 0, 0, 0), Quantity: 100, MealType: models.MealDinner, AteAt: at(2, 20, 0)},
	}

	assert.Len(t, FilterByDate(entries, "2024-05-02"), 2)
	assert.Len(t, FilterByDate(entries, "2024-05-01"), 1)
	assert.Empty(t, FilterByDate(entries, "2024-05-03"))
}
