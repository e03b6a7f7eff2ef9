package model

import (
	"time"
)

// EmployeeStatus is the closed set of employee states.
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeInactive EmployeeStatus = "inactive"
)

func (s EmployeeStatus) Valid() bool {
	return s == EmployeeActive || s == EmployeeInactive
}

// Employee belongs to exactly one Classification and holds the optional
// card foreign key. At most one employee may reference a given card:
// CardService.AssignCard checks both directions before writing, and the
// unique index on card_id makes the losing side of a race fail instead
// of silently double-binding. Postgres treats NULLs as distinct, so
// cardless employees do not collide.
type Employee struct {
	ID               uint           `gorm:"primaryKey"`
	Name             string         `gorm:"not null"`
	Status           EmployeeStatus `gorm:"type:varchar(20);not null;default:'active'"`
	ClassificationID uint           `gorm:"not null;index"`
	CardID           *uint          `gorm:"uniqueIndex"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Classification *Classification `gorm:"foreignKey:ClassificationID"`
	Card           *Card           `gorm:"foreignKey:CardID"`
}

func (Employee) TableName() string { return "employees" }
