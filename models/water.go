package models

import (
	"time"

	"gorm.io/gorm"
)

type WaterEntry struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	AmountMl float64   // e.g. 250
	DrankAt  time.Time `gorm:"index"`
}
