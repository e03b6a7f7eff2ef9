package model

import (
	"time"
)

// Product is an item sold through machine slots. Prices are whole points.
type Product struct {
	ID                uint   `gorm:"primaryKey"`
	Name              string `gorm:"index;not null"`
	Description       *string
	PricePoints       int  `gorm:"not null"`
	ProductCategoryID uint `gorm:"not null;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	ProductCategory *ProductCategory `gorm:"foreignKey:ProductCategoryID"`
}

func (Product) TableName() string { return "products" }
