package repository

import (
	"context"

	"github.com/angelolorensi/vending-machine-api/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CardRepository defines the data access contract for cards.
// Services depend on this interface, not on the concrete GORM
// implementation, enabling clean unit testing via stubs.
type CardRepository interface {
	Create(ctx context.Context, c *model.Card) error
	FindByID(ctx context.Context, id uint) (*model.Card, error)
	// FindByNumber loads the card with its employee and the employee's
	// classification attached.
	FindByNumber(ctx context.Context, number string) (*model.Card, error)

	// Used inside transactions — callers must pass the tx instance.

	// LockByNumberTx loads the card row under FOR UPDATE, serializing
	// concurrent purchases against the same card for the life of the tx.
	LockByNumberTx(tx *gorm.DB, number string) (*model.Card, error)
	// DebitBalanceTx decrements the balance, guarded so it can never go
	// negative even if the caller's balance check raced.
	DebitBalanceTx(tx *gorm.DB, id uint, amount int) error

	// CreditBalance increments the balance outside any caller-managed tx.
	CreditBalance(ctx context.Context, id uint, amount int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type cardRepo struct{ db *gorm.DB }

func NewCardRepository(db *gorm.DB) CardRepository { return &cardRepo{db: db} }

func (r *cardRepo) DB() *gorm.DB { return r.db }

func (r *cardRepo) Create(ctx context.Context, c *model.Card) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cardRepo) FindByID(ctx context.Context, id uint) (*model.Card, error) {
	var c model.Card
	err := r.db.WithContext(ctx).Preload("Employee").First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cardRepo) FindByNumber(ctx context.Context, number string) (*model.Card, error) {
	var c model.Card
	err := r.db.WithContext(ctx).
		Preload("Employee.Classification").
		Where("card_number = ?", number).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cardRepo) LockByNumberTx(tx *gorm.DB, number string) (*model.Card, error) {
	var c model.Card
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("card_number = ?", number).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cardRepo) DebitBalanceTx(tx *gorm.DB, id uint, amount int) error {
	res := tx.Model(&model.Card{}).
		Where("id = ? AND points_balance >= ?", id, amount).
		Update("points_balance", gorm.Expr("points_balance - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cardRepo) CreditBalance(ctx context.Context, id uint, amount int) error {
	return r.db.WithContext(ctx).Model(&model.Card{}).
		Where("id = ?", id).
		Update("points_balance", gorm.Expr("points_balance + ?", amount)).Error
}
