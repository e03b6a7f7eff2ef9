package model

import (
	"time"
)

// ProductCategory classifies products for the daily quota buckets.
// The quota engine matches Name case-insensitively against the fixed
// bucket names "beverages", "snacks" and "meals"; any other category is
// exempt from the per-category count limits.
type ProductCategory struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;not null"`
	Color     string `gorm:"not null;default:'#cccccc'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Products []Product `gorm:"foreignKey:ProductCategoryID"`
}

func (ProductCategory) TableName() string { return "product_categories" }
