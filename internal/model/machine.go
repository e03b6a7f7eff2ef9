package model

import (
	"time"
)

// SlotsPerMachine is the fixed number of slots materialized when a
// machine is created. Slot numbers run 1..SlotsPerMachine.
const SlotsPerMachine = 30

// MachineStatus is the closed set of machine states.
type MachineStatus string

const (
	MachineActive   MachineStatus = "active"
	MachineInactive MachineStatus = "inactive"
)

func (s MachineStatus) Valid() bool {
	return s == MachineActive || s == MachineInactive
}

// Machine is a physical vending machine. Its slots are created together
// with the machine (see MachineService.CreateMachine) and the count never
// changes afterwards.
type Machine struct {
	ID        uint          `gorm:"primaryKey"`
	Name      string        `gorm:"not null"`
	Location  string        `gorm:"not null"`
	Status    MachineStatus `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Slots []Slot `gorm:"foreignKey:MachineID"`
}

func (Machine) TableName() string { return "machines" }
