package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"
)

type ProfileInput struct {
	FullName      string  `json:"full_name"`
	Birthday      string  `json:"birthday"` // YYYY-MM-DD
	Gender        string  `json:"gender"`
	HeightCm      float64 `json:"height_cm"`
	WeightKg      float64 `json:"weight_kg"`
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	profile := user.ProfileAt(time.Now())
	bmi, bmiOK := utils.CalculateBMI(profile.WeightKg, profile.HeightCm)

	out := map[string]interface{}{
		"id":                 user.ID,
		"email":              user.Email,
		"full_name":          user.FullName,
		"gender":             user.Gender,
		"age":                profile.Age,
		"height_cm":          user.HeightCm,
		"weight_kg":          user.WeightKg,
		"activity_level":     user.ActivityLevel,
		"goal":               user.Goal,
		"onboarded":          user.Onboarded,
		"bmi_class":          utils.ClassifyBMI(bmi, bmiOK),
		"suggested_calories": utils.SuggestDailyCalories(profile),
	}
	if !user.Birthday.IsZero() {
		out["birthday"] = user.Birthday.Format("2006-01-02")
	}
	if bmiOK {
		out["bmi"] = bmi
	}
	return out, nil
}

func UpdateUserProfile(email string, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Birthday != "" {
		if birthday, err := time.Parse("2006-01-02", input.Birthday); err == nil {
			user.Birthday = birthday
		}
	}
	switch input.Gender {
	case models.GenderMale, models.GenderFemale, models.GenderOther:
		user.Gender = input.Gender
	}
	if input.HeightCm > 0 {
		user.HeightCm = input.HeightCm
	}
	if input.WeightKg > 0 {
		user.WeightKg = input.WeightKg
	}
	if utils.ValidActivityLevel(input.ActivityLevel) {
		user.ActivityLevel = input.ActivityLevel
	}
	switch input.Goal {
	case models.GoalLose, models.GoalMaintain, models.GoalGain:
		user.Goal = input.Goal
	}
	user.Onboarded = true

	return config.DB.Save(&user).Error
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
