package services

import (
	"fmt"
	"math"
	"sort"
)

const (
	PatternEarlyBird        = "early_bird"
	PatternLateStarter      = "late_starter"
	PatternIrregular        = "irregular"
	PatternInsufficientData = "insufficient_data"
)

// TimingProfile summarizes when a user eats across a stretch of days.
type TimingProfile struct {
	AverageFirstMealTime string   `json:"average_first_meal_time"` // HH:MM
	AverageLastMealTime  string   `json:"average_last_meal_time"`  // HH:MM
	MealsPerDay          float64  `json:"meals_per_day"`
	AverageGapHours      float64  `json:"average_gap_hours"`
	Pattern              string   `json:"pattern"`
	Suggestions          []string `json:"suggestions"`
}

// typicalMealHours approximates meal times by position within the day for
// entries logged without a usable timestamp. Analysis degrades gracefully
// to these typical hours instead of dropping the day.
var typicalMealHours = []float64{8, 13, 16, 19, 21}

const maxTimingSuggestions = 3

// AnalyzeTiming derives first/last meal hours, meal frequency and inter-meal
// gaps from meals grouped by day, classifies the eating pattern and emits up
// to three advisory strings. Fewer than one day of data yields the
// insufficient_data profile.
func AnalyzeTiming(mealsByDay map[string][]MealEntry) TimingProfile {
	days := 0
	var firstSum, lastSum float64
	var gapSum float64
	gapCount := 0
	totalMeals := 0

	// Deterministic iteration keeps averages stable across runs.
	dates := make([]string, 0, len(mealsByDay))
	for d := range mealsByDay {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	for _, d := range dates {
		entries := mealsByDay[d]
		if len(entries) == 0 {
			continue
		}
		hours := make([]float64, 0, len(entries))
		for i, e := range entries {
			if e.AteAt.IsZero() {
				idx := i
				if idx >= len(typicalMealHours) {
					idx = len(typicalMealHours) - 1
				}
				hours = append(hours, typicalMealHours[idx])
				continue
			}
			hours = append(hours, float64(e.AteAt.Hour())+float64(e.AteAt.Minute())/60)
		}
		sort.Float64s(hours)

		days++
		totalMeals += len(hours)
		firstSum += hours[0]
		lastSum += hours[len(hours)-1]
		for i := 1; i < len(hours); i++ {
			gapSum += hours[i] - hours[i-1]
			gapCount++
		}
	}

	if days < 1 {
		return TimingProfile{
			Pattern:     PatternInsufficientData,
			Suggestions: []string{"Start logging meals to get timing insights"},
		}
	}

	avgFirst := firstSum / float64(days)
	avgLast := lastSum / float64(days)
	mealsPerDay := float64(totalMeals) / float64(days)
	avgGap := 0.0
	if gapCount > 0 {
		avgGap = gapSum / float64(gapCount)
	}

	// The pattern set has no "regular" member; anything between early and
	// late starters is reported as irregular.
	pattern := PatternIrregular
	if avgFirst < 8 {
		pattern = PatternEarlyBird
	} else if avgFirst > 11 {
		pattern = PatternLateStarter
	}

	suggestions := []string{}
	if avgLast > 21 {
		suggestions = append(suggestions, "Try to finish your last meal before 9 PM to support digestion and sleep")
	}
	if mealsPerDay < 3 {
		suggestions = append(suggestions, "Aim for at least 3 meals a day for steadier energy")
	} else if mealsPerDay > 6 {
		suggestions = append(suggestions, "You log many small meals; consolidating a few may make tracking easier")
	}
	if avgGap > 6 {
		suggestions = append(suggestions, "Long stretches between meals; a planned snack can prevent overeating later")
	} else if avgGap > 0 && avgGap < 2 {
		suggestions = append(suggestions, "Meals are very close together; spacing them out may help appetite regulation")
	}
	if len(suggestions) > maxTimingSuggestions {
		suggestions = suggestions[:maxTimingSuggestions]
	}

	return TimingProfile{
		AverageFirstMealTime: formatHour(avgFirst),
		AverageLastMealTime:  formatHour(avgLast),
		MealsPerDay:          round2(mealsPerDay),
		AverageGapHours:      round2(avgGap),
		Pattern:              pattern,
		Suggestions:          suggestions,
	}
}

func formatHour(h float64) string {
	hh := int(h)
	mm := int(math.Round((h - float64(hh)) * 60))
	if mm == 60 {
		hh, mm = hh+1, 0
	}
	hh %= 24 // a carry out of 23:xx wraps to midnight
	return fmt.Sprintf("%02d:%02d", hh, mm)
}
