package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"backend/models"
)

// Recommendation is one ranked suggestion with up to two human-readable
// reasons, ordered by which scoring rule fired first.
type Recommendation struct {
	Food    models.FoodRecord `json:"food"`
	Score   float64           `json:"score"`
	Reasons []string          `json:"reasons"`
}

// Scoring weights, tuned by hand against the food catalog. A food must
// beat minScore to surface at all.
const (
	proteinWeight = 30.0 // applied as (protein/25)*30 when protein gap open
	carbWeight    = 20.0 // (carbs/30)*20 when carb gap open
	fatWeight     = 25.0 // (fat/15)*25 when fat gap open and fat moderate
	balanceBonus  = 15.0 // macro profile near 15p/20c/10f per 100g
	densityBonus  = 10.0 // 50-300 kcal: substantial but not heavy
	losePenalty   = 15.0 // calorie-dense food while cutting
	minScore      = 10.0
	defaultLimit  = 5
	maxReasons    = 2
	keywordBonus  = 20.0 // per keyword hit in meal-type matching
	mealTypeTopN  = 5
)

// Recommend scores the catalog against the day's open macro gaps and
// returns the top suggestions. Pure function: empty catalog or all-filtered
// results yield an empty slice, never an error. Ties keep catalog order.
func Recommend(gaps map[string]Gap, catalog []models.FoodRecord, p *models.Profile, limit int) []Recommendation {
	if limit <= 0 {
		limit = defaultLimit
	}

	out := make([]Recommendation, 0, len(catalog))
	for _, f := range catalog {
		score := 0.0
		reasons := []string{}

		if gaps["protein"].Gap > 0 && f.Protein > 10 {
			score += f.Protein / 25 * proteinWeight
			reasons = append(reasons, fmt.Sprintf("High protein (%.0fg per 100g)", f.Protein))
		}
		if gaps["carbs"].Gap > 0 && f.Carbs > 10 {
			score += f.Carbs / 30 * carbWeight
			reasons = append(reasons, fmt.Sprintf("Good carbs (%.0fg per 100g)", f.Carbs))
		}
		if gaps["fat"].Gap > 0 && f.Fat > 5 && f.Fat < 30 {
			score += f.Fat / 15 * fatWeight
			reasons = append(reasons, fmt.Sprintf("Healthy fats (%.0fg per 100g)", f.Fat))
		}
		if math.Abs(f.Protein-15)+math.Abs(f.Carbs-20)+math.Abs(f.Fat-10) < 20 {
			score += balanceBonus
			reasons = append(reasons, "Well-balanced nutrition")
		}
		if f.Calories > 50 && f.Calories < 300 {
			score += densityBonus
		}
		// No floor on the penalty; the score may go negative.
		if p != nil && p.Goal == models.GoalLose && f.Calories > 400 {
			score -= losePenalty
		}

		if score <= minScore {
			continue
		}
		if len(reasons) > maxReasons {
			reasons = reasons[:maxReasons]
		}
		out = append(out, Recommendation{Food: f, Score: score, Reasons: reasons})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// mealPreference describes what a meal slot usually looks like: preferred
// macro shares (of total macro grams), a calorie window, and name keywords.
// Keyword matching on names is coarse but mirrors how the food data is
// actually labeled.
type mealPreference struct {
	protein, carbs, fat float64 // preferred share of macro grams
	minCal, maxCal      float64
	keywords            []string
}

var mealPreferences = map[string]mealPreference{
	models.MealBreakfast: {
		protein: 0.25, carbs: 0.50, fat: 0.25,
		minCal: 200, maxCal: 500,
		keywords: []string{"oat", "egg", "toast", "idli", "dosa", "pancake", "cereal", "yogurt"},
	},
	models.MealLunch: {
		protein: 0.30, carbs: 0.45, fat: 0.25,
		minCal: 400, maxCal: 700,
		keywords: []string{"rice", "salad", "sandwich", "curry", "bowl", "wrap"},
	},
	models.MealDinner: {
		protein: 0.35, carbs: 0.40, fat: 0.25,
		minCal: 300, maxCal: 600,
		keywords: []string{"soup", "grilled", "fish", "chicken", "paneer", "stir fry"},
	},
	models.MealSnack: {
		protein: 0.20, carbs: 0.55, fat: 0.25,
		minCal: 50, maxCal: 250,
		keywords: []string{"nuts", "fruit", "bar", "smoothie", "seeds"},
	},
}

// RecommendForMealType ranks foods that fit a given meal slot: within the
// slot's calorie window OR matching one of its name keywords. Scoring is
// 100 minus the macro-share distance from the slot's preferred profile,
// plus a bonus per keyword hit. Unknown meal types use the Snack table.
func RecommendForMealType(mealType string, gaps map[string]Gap, catalog []models.FoodRecord) []Recommendation {
	pref, ok := mealPreferences[mealType]
	if !ok {
		pref = mealPreferences[models.MealSnack]
	}

	out := make([]Recommendation, 0, len(catalog))
	for _, f := range catalog {
		name := strings.ToLower(f.Name)
		hits := 0
		for _, kw := range pref.keywords {
			if strings.Contains(name, kw) {
				hits++
			}
		}
		inRange := f.Calories >= pref.minCal && f.Calories <= pref.maxCal
		if !inRange && hits == 0 {
			continue
		}

		score := 100.0
		if total := f.Protein + f.Carbs + f.Fat; total > 0 {
			dist := math.Abs(f.Protein/total-pref.protein) +
				math.Abs(f.Carbs/total-pref.carbs) +
				math.Abs(f.Fat/total-pref.fat)
			score = 100 - dist*100
		}
		score += float64(hits) * keywordBonus

		reasons := []string{fmt.Sprintf("Fits a typical %s", strings.ToLower(displayMealType(mealType)))}
		if hits > 0 {
			reasons = append(reasons, "Popular choice for this meal")
		}
		out = append(out, Recommendation{Food: f, Score: score, Reasons: reasons})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > mealTypeTopN {
		out = out[:mealTypeTopN]
	}
	return out
}

func displayMealType(mt string) string {
	if _, ok := mealPreferences[mt]; ok {
		return mt
	}
	return models.MealSnack
}
