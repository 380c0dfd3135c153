package models

import "gorm.io/gorm"

// MacroTarget holds a user's custom daily macro targets. When no row exists
// (or calories is zero) the insight layer derives targets from the profile
// instead.
type MacroTarget struct {
	gorm.Model
	UserID   uint    `gorm:"index;not null"`
	Calories float64 // kcal
	Protein  float64 // g
	Carbs    float64 // g
	Fat      float64 // g
}
