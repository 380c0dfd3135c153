package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeGaps(t *testing.T) {
	totals := MacroTotals{Calories: 1500, Protein: 80, Carbs: 300, Fat: 40}
	targets := MacroTargets{Calories: 2000, Protein: 125, Carbs: 225, Fat: 67}

	gaps := ComputeGaps(totals, targets)

	assert.InDelta(t, 500, gaps["calories"].Gap, 0.001)
	assert.InDelta(t, 75, gaps["calories"].PercentConsumed, 0.001)
	assert.InDelta(t, 45, gaps["protein"].Gap, 0.001)

	// over target: gap clamps to zero, percent goes past 100
	assert.Equal(t, 0.0, gaps["carbs"].Gap)
	assert.InDelta(t, 133.33, gaps["carbs"].PercentConsumed, 0.01)
}

func TestComputeGaps_NeverNegative(t *testing.T) {
	pairs := []struct{ consumed, target float64 }{
		{0, 0}, {100, 0}, {0, 100}, {250, 200}, {200, 200}, {5000, 1},
	}
	for _, p := range pairs {
		gaps := ComputeGaps(
			MacroTotals{Calories: p.consumed, Protein: p.consumed, Carbs: p.consumed, Fat: p.consumed},
			MacroTargets{Calories: p.target, Protein: p.target, Carbs: p.target, Fat: p.target},
		)
		for macro, g := range gaps {
			assert.GreaterOrEqual(t, g.Gap, 0.0, "%s consumed=%v target=%v", macro, p.consumed, p.target)
		}
	}
}

func TestComputeGaps_ZeroTargetPercent(t *testing.T) {
	gaps := ComputeGaps(MacroTotals{Protein: 50}, MacroTargets{})
	assert.Equal(t, 0.0, gaps["protein"].PercentConsumed)
}

func TestResolveTargets_CustomWins(t *testing.T) {
	custom := &MacroTargets{Calories: 1800, Protein: 140}
	got := ResolveTargets(nil, custom)
	// used verbatim: unset macros stay 0, caller supplies complete targets
	assert.Equal(t, MacroTargets{Calories: 1800, Protein: 140}, got)
}

func TestResolveTargets_IgnoresEmptyCustom(t *testing.T) {
	p := models.Profile{
		WeightKg: 70, HeightCm: 175, Age: 30,
		Gender:        models.GenderMale,
		ActivityLevel: models.ActivityModerate,
		Goal:          models.GoalMaintain,
	}
	got := ResolveTargets(&p, &MacroTargets{}) // zero calories → not a custom target

	// 2556 kcal split 25/45/30 across 4/4/9 kcal per gram
	assert.Equal(t, 2556.0, got.Calories)
	assert.Equal(t, 160.0, got.Protein)
	assert.Equal(t, 288.0, got.Carbs)
	assert.Equal(t, 85.0, got.Fat)
}

func TestResolveTargets_NilProfileFallback(t *testing.T) {
	got := ResolveTargets(nil, nil)
	assert.Equal(t, MacroTargets{Calories: 2000, Protein: 125, Carbs: 225, Fat: 67}, got)
}

func TestResolveTargets_IncompleteProfileFallback(t *testing.T) {
	p := models.Profile{Gender: models.GenderFemale} // no weight/height/age
	got := ResolveTargets(&p, nil)
	assert.Equal(t, MacroTargets{Calories: 2000, Protein: 125, Carbs: 225, Fat: 67}, got)
}
