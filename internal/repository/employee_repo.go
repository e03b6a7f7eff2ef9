package repository

import (
	"context"

	"github.com/angelolorensi/vending-machine-api/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(ctx context.Context, e *model.Employee) error
	FindByID(ctx context.Context, id uint) (*model.Employee, error)
	// FindByCardID returns the employee currently holding the card, or
	// gorm.ErrRecordNotFound when the card is free.
	FindByCardID(ctx context.Context, cardID uint) (*model.Employee, error)
	// SetCard binds a card to the employee, guarded so it only succeeds
	// while the employee is still cardless (compare-and-set).
	SetCard(ctx context.Context, employeeID, cardID uint) error
	// ClearCard removes the employee's card binding, failing when no
	// card was assigned.
	ClearCard(ctx context.Context, employeeID uint) error
	// ListRechargeable returns active employees holding an active card,
	// with card and classification preloaded for the recharge run.
	ListRechargeable(ctx context.Context) ([]model.Employee, error)
}

type employeeRepo struct{ db *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository { return &employeeRepo{db: db} }

func (r *employeeRepo) Create(ctx context.Context, e *model.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *employeeRepo) FindByID(ctx context.Context, id uint) (*model.Employee, error) {
	var e model.Employee
	err := r.db.WithContext(ctx).
		Preload("Card").
		Preload("Classification").
		First(&e, id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepo) FindByCardID(ctx context.Context, cardID uint) (*model.Employee, error) {
	var e model.Employee
	err := r.db.WithContext(ctx).Where("card_id = ?", cardID).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepo) SetCard(ctx context.Context, employeeID, cardID uint) error {
	res := r.db.WithContext(ctx).Model(&model.Employee{}).
		Where("id = ? AND card_id IS NULL", employeeID).
		Update("card_id", cardID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *employeeRepo) ClearCard(ctx context.Context, employeeID uint) error {
	res := r.db.WithContext(ctx).Model(&model.Employee{}).
		Where("id = ? AND card_id IS NOT NULL", employeeID).
		Update("card_id", nil)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *employeeRepo) ListRechargeable(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.WithContext(ctx).
		Preload("Card").
		Preload("Classification").
		Where("status = ? AND card_id IS NOT NULL", model.EmployeeActive).
		Joins("JOIN cards ON cards.id = employees.card_id AND cards.status = ?", model.CardActive).
		Find(&employees).Error
	return employees, err
}
