package services

import (
	"math"
	"time"

	"backend/models"
)

// MealEntry is the flattened unit the insight functions consume: one logged
// food with its meal context. The store layer builds these from Meal/MealItem
// rows; the functions here never touch the database.
type MealEntry struct {
	Food     models.FoodRecord `json:"food"`
	Quantity float64           `json:"quantity"` // grams
	MealType string            `json:"meal_type"`
	AteAt    time.Time         `json:"ate_at"`
}

// MacroTotals sums nutrient amounts for a set of entries.
type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

// DayTotals carries the flat sum plus per-meal-type buckets.
// Invariant: Totals equals the sum of every ByMealType bucket.
type DayTotals struct {
	Totals     MacroTotals            `json:"totals"`
	ByMealType map[string]MacroTotals `json:"by_meal_type"`
}

var knownMealTypes = map[string]struct{}{
	models.MealBreakfast: {},
	models.MealLunch:     {},
	models.MealDinner:    {},
	models.MealSnack:     {},
	models.MealOther:     {},
}

// nonneg coalesces negative or non-finite nutrient values to 0 so a single
// corrupt record cannot abort or skew a whole-day computation.
func nonneg(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func scaleFood(f models.FoodRecord, quantity float64) MacroTotals {
	ref := f.RefQuantity
	if ref <= 0 {
		ref = 100
	}
	q := nonneg(quantity)
	factor := q / ref
	return MacroTotals{
		Calories: nonneg(f.Calories) * factor,
		Protein:  nonneg(f.Protein) * factor,
		Carbs:    nonneg(f.Carbs) * factor,
		Fat:      nonneg(f.Fat) * factor,
		Fiber:    nonneg(f.Fiber) * factor,
		Sugar:    nonneg(f.Sugar) * factor,
		Sodium:   nonneg(f.Sodium) * factor,
	}
}

func (t *MacroTotals) add(o MacroTotals) {
	t.Calories += o.Calories
	t.Protein += o.Protein
	t.Carbs += o.Carbs
	t.Fat += o.Fat
	t.Fiber += o.Fiber
	t.Sugar += o.Sugar
	t.Sodium += o.Sodium
}

// Aggregate sums a day's entries into flat totals and per-meal-type buckets.
// Unrecognized meal types land in the "Other" bucket, never dropped. An
// empty list yields zero totals, not an error.
func Aggregate(entries []MealEntry) DayTotals {
	out := DayTotals{ByMealType: make(map[string]MacroTotals)}
	for _, e := range entries {
		contrib := scaleFood(e.Food, e.Quantity)

		mt := e.MealType
		if _, ok := knownMealTypes[mt]; !ok {
			mt = models.MealOther
		}
		bucket := out.ByMealType[mt]
		bucket.add(contrib)
		out.ByMealType[mt] = bucket

		out.Totals.add(contrib)
	}
	return out
}

// FilterByDate selects entries whose timestamp's date component equals
// isoDate (YYYY-MM-DD). Dates are compared as stored, with no timezone
// conversion.
func FilterByDate(entries []MealEntry, isoDate string) []MealEntry {
	out := make([]MealEntry, 0, len(entries))
	for _, e := range entries {
		if e.AteAt.Format("2006-01-02") == isoDate {
			out = append(out, e)
		}
	}
	return out
}
