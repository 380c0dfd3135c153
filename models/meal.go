package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
	MealSnack     = "Snack"
	MealOther     = "Other"
)

// One Meal (breakfast/lunch/…)
type Meal struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Type   string    // Breakfast | Lunch | Dinner | Snack | Other
	AteAt  time.Time // timestamp of the meal
	Items  []MealItem
}

// MealItem stores a nutrition snapshot of the food at log time, so later
// catalog edits don't rewrite history. Nutrients are per RefQuantity grams,
// matching the FoodRecord they were copied from.
type MealItem struct {
	gorm.Model
	MealID uint `gorm:"index"`

	FoodName    string  `gorm:"not null"`
	Quantity    float64 // grams eaten
	RefQuantity float64 `gorm:"default:100"`

	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
	Sugar    float64
	Sodium   float64
}
