package models

import "gorm.io/gorm"

// FoodRecord is a catalog entry. Nutrients are stored per RefQuantity grams
// (100 unless the food specifies otherwise, e.g. a 30g piece). Lookups by
// the insight layer use Name case-insensitively; the database id stays an
// opaque implementation detail.
type FoodRecord struct {
	gorm.Model
	Name        string  `gorm:"index;not null" json:"name"`
	RefQuantity float64 `gorm:"default:100" json:"ref_quantity"` // grams the nutrient columns refer to

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"` // mg
}
