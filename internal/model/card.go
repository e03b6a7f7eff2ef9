package model

import (
	"time"
)

// CardStatus is the closed set of card lifecycle states.
type CardStatus string

const (
	CardActive   CardStatus = "active"
	CardInactive CardStatus = "inactive"
	CardBlocked  CardStatus = "blocked"
)

func (s CardStatus) Valid() bool {
	switch s {
	case CardActive, CardInactive, CardBlocked:
		return true
	}
	return false
}

// Card is a prepaid points card. The employee side owns the foreign key,
// so a card knows its holder only through the Employee association.
type Card struct {
	ID            uint       `gorm:"primaryKey"`
	CardNumber    string     `gorm:"uniqueIndex;not null"`
	PointsBalance int        `gorm:"not null;default:0"`
	Status        CardStatus `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Employee *Employee `gorm:"foreignKey:CardID"`
}

func (Card) TableName() string { return "cards" }
