package model

import (
	"time"
)

// Slot is one numbered position inside a machine. ProductID is nil while
// the slot is empty; Quantity is the remaining stock count for the loaded
// product.
type Slot struct {
	ID        uint  `gorm:"primaryKey"`
	MachineID uint  `gorm:"not null;uniqueIndex:idx_machine_slot_number"`
	Number    int   `gorm:"not null;uniqueIndex:idx_machine_slot_number"`
	ProductID *uint `gorm:"index"`
	Quantity  int   `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Machine *Machine `gorm:"foreignKey:MachineID"`
	Product *Product `gorm:"foreignKey:ProductID"`
}

func (Slot) TableName() string { return "slots" }
