package model

import (
	"time"
)

// Classification groups employees under a shared set of daily consumption
// limits and a daily recharge amount. All limits are expressed in whole
// units: counts for the category limits, points for the rest.
type Classification struct {
	ID                       uint   `gorm:"primaryKey"`
	Name                     string `gorm:"uniqueIndex;not null"`
	DailyJuiceLimit          int    `gorm:"not null;default:0"`
	DailyMealLimit           int    `gorm:"not null;default:0"`
	DailySnackLimit          int    `gorm:"not null;default:0"`
	DailyPointLimit          int    `gorm:"not null;default:0"`
	DailyPointRechargeAmount int    `gorm:"not null;default:0"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

func (Classification) TableName() string { return "classifications" }
