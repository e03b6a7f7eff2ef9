package model

import (
	"time"
)

// TransactionStatus is the closed set of settlement states.
type TransactionStatus string

const (
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
	TransactionPending   TransactionStatus = "pending"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionCompleted, TransactionFailed, TransactionPending:
		return true
	}
	return false
}

// Transaction is the append-only settlement ledger. Rows are created
// exclusively by PurchaseService and never mutated afterwards. The
// product/slot references are a snapshot of what the slot held at
// purchase time, not a live join.
type Transaction struct {
	ID              uint              `gorm:"primaryKey"`
	Reference       string            `gorm:"type:varchar(36);uniqueIndex;not null"`
	EmployeeID      uint              `gorm:"not null;index:idx_transactions_employee_time"`
	CardID          uint              `gorm:"not null;index"`
	MachineID       uint              `gorm:"not null;index"`
	SlotID          uint              `gorm:"not null"`
	ProductID       uint              `gorm:"not null;index"`
	PointsDeducted  int               `gorm:"not null"`
	TransactionTime time.Time         `gorm:"not null;index:idx_transactions_employee_time"`
	Status          TransactionStatus `gorm:"type:varchar(20);not null"`
	FailureReason   *string
	CreatedAt       time.Time

	Employee *Employee `gorm:"foreignKey:EmployeeID"`
	Card     *Card     `gorm:"foreignKey:CardID"`
	Machine  *Machine  `gorm:"foreignKey:MachineID"`
	Slot     *Slot     `gorm:"foreignKey:SlotID"`
	Product  *Product  `gorm:"foreignKey:ProductID"`
}

func (Transaction) TableName() string { return "transactions" }
