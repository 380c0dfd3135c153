package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mealAt(day, hour, minute int) MealEntry {
	return MealEntry{
		Food:     food("Something", 200, 10, 20, 5),
		Quantity: 100,
		MealType: models.MealOther,
		AteAt:    at(day, hour, minute),
	}
}

func TestAnalyzeTiming_InsufficientData(t *testing.T) {
	got := AnalyzeTiming(nil)
	assert.Equal(t, PatternInsufficientData, got.Pattern)
	require.Len(t, got.Suggestions, 1)
	assert.Contains(t, got.Suggestions[0], "Start logging meals")

	got = AnalyzeTiming(map[string][]MealEntry{"2024-05-01": {}})
	assert.Equal(t, PatternInsufficientData, got.Pattern)
}

func TestAnalyzeTiming_EarlyBird(t *testing.T) {
	byDay := map[string][]MealEntry{
		"2024-05-01": {mealAt(1, 7, 0), mealAt(1, 12, 0), mealAt(1, 18, 0)},
		"2024-05-02": {mealAt(2, 7, 30), mealAt(2, 13, 0), mealAt(2, 19, 0)},
	}
	got := AnalyzeTiming(byDay)

	assert.Equal(t, PatternEarlyBird, got.Pattern)
	assert.Equal(t, "07:15", got.AverageFirstMealTime)
	assert.Equal(t, "18:30", got.AverageLastMealTime)
	assert.Equal(t, 3.0, got.MealsPerDay)
	assert.InDelta(t, 5.63, got.AverageGapHours, 0.01)
}

func TestAnalyzeTiming_LateStarter(t *testing.T) {
	byDay := map[string][]MealEntry{
		"2024-05-01": {mealAt(1, 12, 0), mealAt(1, 15, 0), mealAt(1, 19, 0)},
	}
	got := AnalyzeTiming(byDay)
	assert.Equal(t, PatternLateStarter, got.Pattern)
}

func TestAnalyzeTiming_IrregularBetweenThresholds(t *testing.T) {
	byDay := map[string][]MealEntry{
		"2024-05-01": {mealAt(1, 9, 30), mealAt(1, 14, 0), mealAt(1, 20, 0)},
	}
	got := AnalyzeTiming(byDay)
	assert.Equal(t, PatternIrregular, got.Pattern)
}

func TestAnalyzeTiming_Suggestions(t *testing.T) {
	// late last meal, only two meals, 12h gap: three rules fire
	byDay := map[string][]MealEntry{
		"2024-05-01": {mealAt(1, 10, 0), mealAt(1, 22, 0)},
	}
	got := AnalyzeTiming(byDay)

	require.Len(t, got.Suggestions, 3)
	assert.Contains(t, got.Suggestions[0], "last meal")
	assert.Contains(t, got.Suggestions[1], "3 meals")
	assert.Contains(t, got.Suggestions[2], "Long stretches")
}

func TestAnalyzeTiming_CrowdedMeals(t *testing.T) {
	byDay := map[string][]MealEntry{
		"2024-05-01": {
			mealAt(1, 9, 0), mealAt(1, 10, 0), mealAt(1, 11, 0), mealAt(1, 12, 0),
			mealAt(1, 13, 0), mealAt(1, 14, 0), mealAt(1, 15, 0),
		},
	}
	got := AnalyzeTiming(byDay)

	assert.Equal(t, 7.0, got.MealsPerDay)
	assert.Contains(t, got.Suggestions[0], "many small meals")
	assert.Contains(t, got.Suggestions[1], "very close together")
}

func TestAnalyzeTiming_ZeroTimestampsUseTypicalHours(t *testing.T) {
	// entries logged without a time fall back to the typical-hour table
	untimed := func() MealEntry {
		return MealEntry{Food: food("X", 100, 5, 10, 2), Quantity: 100, MealType: models.MealOther}
	}
	byDay := map[string][]MealEntry{
		"2024-05-01": {untimed(), untimed(), untimed()},
	}
	got := AnalyzeTiming(byDay)

	assert.Equal(t, "08:00", got.AverageFirstMealTime) // typical breakfast slot
	assert.Equal(t, "16:00", got.AverageLastMealTime)
	assert.Equal(t, PatternIrregular, got.Pattern) // 8:00 sharp is not before 8
}

func TestAnalyzeTiming_DeterministicAcrossRuns(t *testing.T) {
	byDay := map[string][]MealEntry{
		"2024-05-01": {mealAt(1, 8, 0), mealAt(1, 13, 0)},
		"2024-05-02": {mealAt(2, 9, 0), mealAt(2, 14, 0)},
		"2024-05-03": {mealAt(3, 10, 0), mealAt(3, 15, 0)},
	}
	first := AnalyzeTiming(byDay)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, AnalyzeTiming(byDay))
	}
}

func TestFormatHour(t *testing.T) {
	cases := []struct {
		hour float64
		want string
	}{
		{8, "08:00"},
		{8.5, "08:30"},
		{13.25, "13:15"},
		{7.9999, "08:00"},   // minute rounding carries into the hour
		{23.9999, "00:00"},  // a carry past 23:59 wraps to midnight
		{23.5, "23:30"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatHour(tc.hour), "formatHour(%v)", tc.hour)
	}
}
