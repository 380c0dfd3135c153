package services

import (
	"encoding/json"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type ExportService struct {
	db *gorm.DB
}

func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{db: db}
}

// ExportBundle is the portable JSON snapshot of a user's data.
type ExportBundle struct {
	ExportedAt time.Time           `json:"exported_at"`
	Profile    models.Profile      `json:"profile"`
	Targets    *MacroTargets       `json:"targets,omitempty"`
	Foods      []models.FoodRecord `json:"foods"`
	Meals      []models.Meal       `json:"meals"`
	Water      []models.WaterEntry `json:"water"`
}

type ImportResult struct {
	Foods   int `json:"foods"`
	Meals   int `json:"meals"`
	Water   int `json:"water"`
	Skipped int `json:"skipped"`
}

func (s *ExportService) Export(user *models.User) (*ExportBundle, error) {
	bundle := &ExportBundle{
		ExportedAt: time.Now().UTC(),
		Profile:    user.ProfileAt(time.Now()),
	}

	var target models.MacroTarget
	if err := s.db.Where("user_id = ?", user.ID).First(&target).Error; err == nil {
		bundle.Targets = &MacroTargets{
			Calories: target.Calories,
			Protein:  target.Protein,
			Carbs:    target.Carbs,
			Fat:      target.Fat,
		}
	}

	if err := s.db.Order("name ASC").Find(&bundle.Foods).Error; err != nil {
		return nil, err
	}
	if err := s.db.Preload("Items").
		Where("user_id = ?", user.ID).
		Order("ate_at ASC").
		Find(&bundle.Meals).Error; err != nil {
		return nil, err
	}
	if err := s.db.
		Where("user_id = ?", user.ID).
		Order("drank_at ASC").
		Find(&bundle.Water).Error; err != nil {
		return nil, err
	}
	return bundle, nil
}

// ExportToS3 serializes the bundle and stores it as an archive object,
// returning the object URL.
func (s *ExportService) ExportToS3(user *models.User) (string, error) {
	bundle, err := s.Export(user)
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(bundle)
	if err != nil {
		return "", err
	}
	return utils.UploadExportArchive(user.ID, data)
}

// Import restores a bundle best-effort: rows that fail basic validation
// (blank food names, non-positive quantities or amounts) are skipped and
// counted rather than aborting the whole import.
func (s *ExportService) Import(user *models.User, bundle *ExportBundle) (*ImportResult, error) {
	res := &ImportResult{}

	for _, f := range bundle.Foods {
		if f.Name == "" {
			res.Skipped++
			continue
		}
		var existing models.FoodRecord
		if err := s.db.Where("LOWER(name) = LOWER(?)", f.Name).First(&existing).Error; err == nil {
			continue // catalog already has it
		}
		row := f
		row.Model = gorm.Model{}
		if err := s.db.Create(&row).Error; err != nil {
			res.Skipped++
			continue
		}
		res.Foods++
	}

	for _, m := range bundle.Meals {
		if len(m.Items) == 0 {
			res.Skipped++
			continue
		}
		meal := models.Meal{UserID: user.ID, Type: m.Type, AteAt: m.AteAt}
		if err := s.db.Create(&meal).Error; err != nil {
			res.Skipped++
			continue
		}
		for _, it := range m.Items {
			if it.FoodName == "" || it.Quantity <= 0 {
				res.Skipped++
				continue
			}
			item := it
			item.Model = gorm.Model{}
			item.MealID = meal.ID
			if err := s.db.Create(&item).Error; err != nil {
				res.Skipped++
			}
		}
		res.Meals++
	}

	for _, w := range bundle.Water {
		if w.AmountMl <= 0 {
			res.Skipped++
			continue
		}
		entry := models.WaterEntry{UserID: user.ID, AmountMl: w.AmountMl, DrankAt: w.DrankAt}
		if err := s.db.Create(&entry).Error; err != nil {
			res.Skipped++
			continue
		}
		res.Water++
	}

	return res, nil
}
