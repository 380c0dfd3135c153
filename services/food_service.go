package services

import (
	"fmt"
	"strings"

	"backend/models"

	"gorm.io/gorm"
)

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

type FoodInput struct {
	Name        string  `json:"name" binding:"required"`
	RefQuantity float64 `json:"ref_quantity"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber"`
	Sugar       float64 `json:"sugar"`
	Sodium      float64 `json:"sodium"`
}

func (in FoodInput) toRecord() models.FoodRecord {
	ref := in.RefQuantity
	if ref <= 0 {
		ref = 100
	}
	return models.FoodRecord{
		Name:        strings.TrimSpace(in.Name),
		RefQuantity: ref,
		Calories:    in.Calories,
		Protein:     in.Protein,
		Carbs:       in.Carbs,
		Fat:         in.Fat,
		Fiber:       in.Fiber,
		Sugar:       in.Sugar,
		Sodium:      in.Sodium,
	}
}

func (s *FoodService) Create(in FoodInput) (*models.FoodRecord, error) {
	f := in.toRecord()
	if f.Name == "" {
		return nil, fmt.Errorf("food name is required")
	}
	// name is the catalog identity, case-insensitive
	var existing models.FoodRecord
	if err := s.db.Where("LOWER(name) = LOWER(?)", f.Name).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("food %q already exists", f.Name)
	}
	if err := s.db.Create(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *FoodService) Update(id uint, in FoodInput) (*models.FoodRecord, error) {
	var f models.FoodRecord
	if err := s.db.First(&f, id).Error; err != nil {
		return nil, err
	}
	updated := in.toRecord()
	updated.Model = f.Model
	if err := s.db.Save(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *FoodService) Delete(id uint) error {
	return s.db.Delete(&models.FoodRecord{}, id).Error
}

func (s *FoodService) GetByName(name string) (*models.FoodRecord, error) {
	var f models.FoodRecord
	if err := s.db.Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name)).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *FoodService) Search(query string) ([]models.FoodRecord, error) {
	var foods []models.FoodRecord
	err := s.db.
		Where("name ILIKE ?", "%"+strings.TrimSpace(query)+"%").
		Order("name ASC").
		Find(&foods).Error
	return foods, err
}

func (s *FoodService) List() ([]models.FoodRecord, error) {
	var foods []models.FoodRecord
	err := s.db.Order("name ASC").Find(&foods).Error
	return foods, err
}
