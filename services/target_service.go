package services

import (
	"errors"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

const (
	TargetSourceCustom  = "custom"
	TargetSourceDerived = "derived"
	TargetSourceDefault = "default"
)

type TargetService struct {
	db *gorm.DB
}

func NewTargetService(db *gorm.DB) *TargetService {
	return &TargetService{db: db}
}

// Get returns the user's custom target row, or nil when none is stored.
func (s *TargetService) Get(userID uint) (*models.MacroTarget, error) {
	var t models.MacroTarget
	err := s.db.Where("user_id = ?", userID).Order("updated_at DESC").First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (s *TargetService) Upsert(userID uint, in MacroTargets) error {
	var t models.MacroTarget
	err := s.db.Where("user_id = ?", userID).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		t = models.MacroTarget{
			UserID:   userID,
			Calories: in.Calories,
			Protein:  in.Protein,
			Carbs:    in.Carbs,
			Fat:      in.Fat,
		}
		return s.db.Create(&t).Error
	}
	if err != nil {
		return err
	}

	t.Calories = in.Calories
	t.Protein = in.Protein
	t.Carbs = in.Carbs
	t.Fat = in.Fat
	return s.db.Save(&t).Error
}

// Resolve picks the effective daily targets for a user: stored custom
// targets win, otherwise targets are derived from the profile, falling back
// to the static default when the profile can't drive the formulas. The
// source tag tells the UI where the numbers came from.
func (s *TargetService) Resolve(user *models.User) (MacroTargets, string, error) {
	row, err := s.Get(user.ID)
	if err != nil {
		return MacroTargets{}, "", err
	}

	var custom *MacroTargets
	if row != nil {
		custom = &MacroTargets{
			Calories: row.Calories,
			Protein:  row.Protein,
			Carbs:    row.Carbs,
			Fat:      row.Fat,
		}
	}

	profile := user.ProfileAt(time.Now())
	resolved := ResolveTargets(&profile, custom)

	source := TargetSourceDerived
	if custom != nil && custom.Calories > 0 {
		source = TargetSourceCustom
	} else if _, err := utils.CalculateBMR(profile); err != nil {
		source = TargetSourceDefault
	}
	return resolved, source, nil
}
