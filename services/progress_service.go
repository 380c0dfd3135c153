package services

import (
	"context"
	"math"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type ProgressService struct {
	db      *gorm.DB
	meals   *MealService
	water   *WaterService
	targets *TargetService
}

func NewProgressService(db *gorm.DB, meals *MealService, water *WaterService, targets *TargetService) *ProgressService {
	return &ProgressService{db: db, meals: meals, water: water, targets: targets}
}

// DayProgress is one day's consumption against targets.
type DayProgress struct {
	Date         string                 `json:"date"`
	Totals       MacroTotals            `json:"totals"`
	ByMealType   map[string]MacroTotals `json:"by_meal_type"`
	Targets      MacroTargets           `json:"targets"`
	TargetSource string                 `json:"target_source"` // custom | derived | default
	Gaps         map[string]Gap         `json:"gaps"`
	WaterMl      float64                `json:"water_ml"`
}

// DayProgress fetches the day's meals and water, aggregates them and
// computes gaps against the user's resolved targets. All computation is
// delegated to the pure insight functions; this method only does I/O.
func (s *ProgressService) DayProgress(ctx context.Context, user *models.User, date time.Time) (*DayProgress, error) {
	from := dayStart(date)
	to := from.AddDate(0, 0, 1)

	entries, err := s.meals.EntriesForRange(user.ID, from, to)
	if err != nil {
		return nil, err
	}
	totals := Aggregate(entries)

	targets, source, err := s.targets.Resolve(user)
	if err != nil {
		return nil, err
	}

	waterMl, err := s.water.DailyTotalMl(user.ID, date)
	if err != nil {
		return nil, err
	}

	return &DayProgress{
		Date:         from.Format("2006-01-02"),
		Totals:       totals.Totals,
		ByMealType:   totals.ByMealType,
		Targets:      targets,
		TargetSource: source,
		Gaps:         ComputeGaps(totals.Totals, targets),
		WaterMl:      waterMl,
	}, nil
}

// ---------- Range summary ----------

type MacroAvg struct {
	AvgConsumed float64 `json:"avg_consumed"`
	AvgTarget   float64 `json:"avg_target,omitempty"`
	AvgPercent  float64 `json:"avg_percent,omitempty"`
	Unit        string  `json:"unit,omitempty"`
}

type RangeSummary struct {
	Range struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"range"`

	Macros map[string]MacroAvg `json:"macros"` // calories, protein, carbs, fat
	Micros map[string]MacroAvg `json:"micros"` // fiber, sugar, sodium
	Water  MacroAvg            `json:"water"`

	Metadata struct {
		DaysCounted        int  `json:"days_counted"`
		IncludeMissingDays bool `json:"include_missing_days"`
	} `json:"metadata"`
}

// Summary averages per-day consumption, target and percent-of-target across
// a date range. With includeMissing, days without any log count as zeros;
// otherwise only logged days enter the averages.
func (s *ProgressService) Summary(
	ctx context.Context, user *models.User, from, to time.Time, includeMissing bool,
) (*RangeSummary, error) {

	entries, err := s.meals.EntriesForRange(user.ID, dayStart(from), dayStart(to).AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	byDay := map[string][]MealEntry{}
	for _, e := range entries {
		key := e.AteAt.Format("2006-01-02")
		byDay[key] = append(byDay[key], e)
	}

	targets, _, err := s.targets.Resolve(user)
	if err != nil {
		return nil, err
	}

	var dates []string
	if includeMissing {
		for d := dayStart(from); !d.After(to); d = d.AddDate(0, 0, 1) {
			dates = append(dates, d.Format("2006-01-02"))
		}
	} else {
		for d := dayStart(from); !d.After(to); d = d.AddDate(0, 0, 1) {
			key := d.Format("2006-01-02")
			if len(byDay[key]) > 0 {
				dates = append(dates, key)
			}
		}
	}

	type acc struct{ sum, tsum, psum float64 }
	m := map[string]*acc{
		"calories": {}, "protein": {}, "carbs": {}, "fat": {},
		"fiber": {}, "sugar": {}, "sodium": {},
	}
	var waterSum float64

	for _, key := range dates {
		day := Aggregate(byDay[key]) // zero totals for missing days

		type pair struct {
			k string
			c float64
			t float64
		}
		for _, p := range []pair{
			{"calories", day.Totals.Calories, targets.Calories},
			{"protein", day.Totals.Protein, targets.Protein},
			{"carbs", day.Totals.Carbs, targets.Carbs},
			{"fat", day.Totals.Fat, targets.Fat},
			{"fiber", day.Totals.Fiber, 0},
			{"sugar", day.Totals.Sugar, 0},
			{"sodium", day.Totals.Sodium, 0},
		} {
			m[p.k].sum += p.c
			m[p.k].tsum += p.t
			if p.t > 0 {
				m[p.k].psum += (p.c / p.t) * 100.0
			}
		}

		d, _ := time.ParseInLocation("2006-01-02", key, from.Location())
		w, err := s.water.DailyTotalMl(user.ID, d)
		if err != nil {
			return nil, err
		}
		waterSum += w
	}

	n := len(dates)
	out := &RangeSummary{}
	out.Range.From = dayStart(from).Format("2006-01-02")
	out.Range.To = dayStart(to).Format("2006-01-02")
	out.Metadata.DaysCounted = n
	out.Metadata.IncludeMissingDays = includeMissing

	out.Macros = map[string]MacroAvg{
		"calories": {AvgConsumed: avg(m["calories"].sum, n), AvgTarget: avg(m["calories"].tsum, n), AvgPercent: avg(m["calories"].psum, n), Unit: "kcal"},
		"protein":  {AvgConsumed: avg(m["protein"].sum, n), AvgTarget: avg(m["protein"].tsum, n), AvgPercent: avg(m["protein"].psum, n), Unit: "g"},
		"carbs":    {AvgConsumed: avg(m["carbs"].sum, n), AvgTarget: avg(m["carbs"].tsum, n), AvgPercent: avg(m["carbs"].psum, n), Unit: "g"},
		"fat":      {AvgConsumed: avg(m["fat"].sum, n), AvgTarget: avg(m["fat"].tsum, n), AvgPercent: avg(m["fat"].psum, n), Unit: "g"},
	}
	out.Micros = map[string]MacroAvg{
		"fiber":  {AvgConsumed: avg(m["fiber"].sum, n), Unit: "g"},
		"sugar":  {AvgConsumed: avg(m["sugar"].sum, n), Unit: "g"},
		"sodium": {AvgConsumed: avg(m["sodium"].sum, n), Unit: "mg"},
	}
	out.Water = MacroAvg{AvgConsumed: avg(waterSum, n), Unit: "ml"}

	return out, nil
}

// ---------- internals ----------

func avg(sum float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return round2(sum / float64(n))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
