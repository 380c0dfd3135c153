package services

import (
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type WaterService struct {
	db *gorm.DB
}

func NewWaterService(db *gorm.DB) *WaterService {
	return &WaterService{db: db}
}

func (s *WaterService) Log(userID uint, amountMl float64, drankAt time.Time) (*models.WaterEntry, error) {
	e := &models.WaterEntry{UserID: userID, AmountMl: amountMl, DrankAt: drankAt}
	if err := s.db.Create(e).Error; err != nil {
		return nil, err
	}
	return e, nil
}

func (s *WaterService) Delete(userID, entryID uint) error {
	return s.db.
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.WaterEntry{}).Error
}

func (s *WaterService) ListByDate(userID uint, date time.Time) ([]models.WaterEntry, error) {
	var entries []models.WaterEntry
	err := s.db.
		Where("user_id = ? AND drank_at >= ? AND drank_at < ?",
			userID, dayStart(date), dayStart(date).AddDate(0, 0, 1)).
		Order("drank_at ASC").
		Find(&entries).Error
	return entries, err
}

func (s *WaterService) DailyTotalMl(userID uint, date time.Time) (float64, error) {
	entries, err := s.ListByDate(userID, date)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, e := range entries {
		total += e.AmountMl
	}
	return total, nil
}
