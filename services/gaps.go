package services

import (
	"math"

	"backend/models"
	"backend/utils"
)

// MacroTargets is the daily target shape, either user-supplied or derived
// from the profile. Values are returned to the caller to persist; nothing
// here writes them back.
type MacroTargets struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Gap describes one macro's shortfall for the day. Gap is clamped at zero:
// eating over target shows up only as PercentConsumed > 100, never as a
// negative gap.
type Gap struct {
	Consumed        float64 `json:"consumed"`
	Target          float64 `json:"target"`
	Gap             float64 `json:"gap"`
	PercentConsumed float64 `json:"percent_consumed"`
}

// Fixed macro splits used when deriving targets from a calorie budget:
// protein 25% of kcal at 4 kcal/g, carbs 45% at 4, fat 30% at 9.
const (
	proteinCalorieShare = 0.25
	carbCalorieShare    = 0.45
	fatCalorieShare     = 0.30

	kcalPerGramProtein = 4.0
	kcalPerGramCarb    = 4.0
	kcalPerGramFat     = 9.0
)

func gapFor(consumed, target float64) Gap {
	g := Gap{Consumed: consumed, Target: target}
	if d := target - consumed; d > 0 {
		g.Gap = d
	}
	if target > 0 {
		g.PercentConsumed = consumed / target * 100
	}
	return g
}

// ComputeGaps compares a day's totals against targets for the four core
// macros. Computed fresh per call; nothing is cached here.
func ComputeGaps(totals MacroTotals, targets MacroTargets) map[string]Gap {
	return map[string]Gap{
		"calories": gapFor(totals.Calories, targets.Calories),
		"protein":  gapFor(totals.Protein, targets.Protein),
		"carbs":    gapFor(totals.Carbs, targets.Carbs),
		"fat":      gapFor(totals.Fat, targets.Fat),
	}
}

// TargetsFromCalories spreads a calorie budget across macros with the fixed
// splits above, rounding grams to whole numbers (2000 kcal → 125/225/67).
func TargetsFromCalories(calories float64) MacroTargets {
	return MacroTargets{
		Calories: calories,
		Protein:  math.Round(calories * proteinCalorieShare / kcalPerGramProtein),
		Carbs:    math.Round(calories * carbCalorieShare / kcalPerGramCarb),
		Fat:      math.Round(calories * fatCalorieShare / kcalPerGramFat),
	}
}

// ResolveTargets picks the day's targets: a custom target with positive
// calories wins verbatim (missing macros stay 0; supplying a complete
// custom target is the caller's job); otherwise targets are derived from
// the profile's suggested calories. A nil profile falls back to the static
// 2000 kcal default split.
func ResolveTargets(p *models.Profile, custom *MacroTargets) MacroTargets {
	if custom != nil && custom.Calories > 0 {
		return *custom
	}
	if p == nil {
		return TargetsFromCalories(utils.DefaultDailyCalories)
	}
	return TargetsFromCalories(float64(utils.SuggestDailyCalories(*p)))
}
