package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

const (
	GoalLose     = "lose"
	GoalMaintain = "maintain"
	GoalGain     = "gain"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string

	// Profile fields consumed by the formula layer
	Gender        string `gorm:"size:16"` // "male" | "female" | "other"
	Birthday      time.Time
	HeightCm      float64
	WeightKg      float64
	ActivityLevel string `gorm:"size:16"` // sedentary … very_active
	Goal          string `gorm:"size:16"` // lose | maintain | gain

	Onboarded bool
	Disabled  bool `gorm:"default:false"`
}

// Profile is the identity-less value object the formula and insight layers
// consume. It is assembled from a User row and never mutated or persisted
// by the computation code.
type Profile struct {
	WeightKg      float64 `json:"weight_kg"`
	HeightCm      float64 `json:"height_cm"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
}

// ProfileAt snapshots the user's profile with age derived at the given time.
// A zero birthday yields age 0, which the formula layer treats as missing.
func (u *User) ProfileAt(now time.Time) Profile {
	age := 0
	if !u.Birthday.IsZero() {
		age = now.Year() - u.Birthday.Year()
		if now.Before(u.Birthday.AddDate(age, 0, 0)) {
			age--
		}
	}
	return Profile{
		WeightKg:      u.WeightKg,
		HeightCm:      u.HeightCm,
		Age:           age,
		Gender:        u.Gender,
		ActivityLevel: u.ActivityLevel,
		Goal:          u.Goal,
	}
}
