package utils

import (
	"errors"
	"math"

	"backend/models"
)

// ErrInvalidProfile is returned by CalculateBMR/CalculateTDEE when weight,
// height or age is missing, zero or negative.
// SuggestDailyCalories catches it and substitutes
// a safe default, so callers only see it when using the low-level functions
// directly.
var ErrInvalidProfile = errors.New("profile is missing weight, height or age")

// activityMultipliers maps activity level strings to their TDEE multiplier.
// Also used to validate profile updates.
var activityMultipliers = map[string]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

const (
	// DefaultDailyCalories is the fallback target when the profile is too
	// incomplete to run Mifflin-St Jeor.
	DefaultDailyCalories = 2000
	// MinDailyCalories floors the weight-loss target; a larger deficit is
	// not considered safe to suggest.
	MinDailyCalories = 1200
	// goalAdjustment is the kcal delta for lose/gain goals (≈1 lb/week).
	goalAdjustment = 500
)

// CalculateBMR computes basal metabolic rate via Mifflin-St Jeor.
// male: 10w + 6.25h − 5a + 5; female/other: 10w + 6.25h − 5a − 161.
func CalculateBMR(p models.Profile) (float64, error) {
	if p.WeightKg <= 0 || p.HeightCm <= 0 || p.Age <= 0 {
		return 0, ErrInvalidProfile
	}
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr, nil
}

// CalculateTDEE multiplies BMR by the activity multiplier. An unknown
// activity level falls back to sedentary rather than failing.
func CalculateTDEE(p models.Profile) (float64, error) {
	bmr, err := CalculateBMR(p)
	if err != nil {
		return 0, err
	}
	mult, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		mult = activityMultipliers[models.ActivitySedentary]
	}
	return bmr * mult, nil
}

// SuggestDailyCalories adjusts TDEE by goal: lose −500 (floored at
// MinDailyCalories), gain +500, maintain unchanged. Incomplete profiles get
// DefaultDailyCalories instead of an error so downstream components never
// special-case missing data.
func SuggestDailyCalories(p models.Profile) int {
	tdee, err := CalculateTDEE(p)
	if err != nil {
		return DefaultDailyCalories
	}
	switch p.Goal {
	case models.GoalLose:
		tdee -= goalAdjustment
		if tdee < MinDailyCalories {
			tdee = MinDailyCalories
		}
	case models.GoalGain:
		tdee += goalAdjustment
	}
	return int(math.Round(tdee))
}

// ValidActivityLevel reports whether s is one of the known activity levels.
func ValidActivityLevel(s string) bool {
	_, ok := activityMultipliers[s]
	return ok
}
