package repository

import (
	"context"
	"time"

	"github.com/angelolorensi/vending-machine-api/internal/dto"
	"github.com/angelolorensi/vending-machine-api/internal/model"

	"gorm.io/gorm"
)

type TransactionRepository interface {
	// CreateTx appends a ledger row inside the caller's transaction.
	CreateTx(ctx context.Context, tx *gorm.DB, t *model.Transaction) error
	FindByID(ctx context.Context, id uint) (*model.Transaction, error)
	// ListCompletedOnDate returns the employee's completed transactions
	// whose transaction_time falls on the calendar day of `day` in its
	// location, product category preloaded. When tx is non-nil the read
	// runs inside that transaction so it observes a consistent snapshot.
	ListCompletedOnDate(ctx context.Context, tx *gorm.DB, employeeID uint, day time.Time) ([]model.Transaction, error)
	List(ctx context.Context, filter dto.TransactionFilter, loc *time.Location) ([]model.Transaction, int64, error)
	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type transactionRepo struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) DB() *gorm.DB { return r.db }

func (r *transactionRepo) CreateTx(ctx context.Context, tx *gorm.DB, t *model.Transaction) error {
	return tx.WithContext(ctx).Create(t).Error
}

func (r *transactionRepo) FindByID(ctx context.Context, id uint) (*model.Transaction, error) {
	var t model.Transaction
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Card").
		Preload("Machine").
		Preload("Slot").
		Preload("Product.ProductCategory").
		First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// dayWindow returns the [start, end) bounds of the calendar day holding t.
func dayWindow(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

func (r *transactionRepo) ListCompletedOnDate(ctx context.Context, tx *gorm.DB, employeeID uint, day time.Time) ([]model.Transaction, error) {
	dbc := r.db
	if tx != nil {
		dbc = tx
	}
	start, end := dayWindow(day)

	var transactions []model.Transaction
	err := dbc.WithContext(ctx).
		Preload("Product.ProductCategory").
		Where("employee_id = ? AND status = ? AND transaction_time >= ? AND transaction_time < ?",
			employeeID, model.TransactionCompleted, start, end).
		Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) List(ctx context.Context, filter dto.TransactionFilter, loc *time.Location) ([]model.Transaction, int64, error) {
	var transactions []model.Transaction
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Transaction{})

	if filter.EmployeeID != 0 {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("status = ?", filter.Status)
	}

	day := time.Now().In(loc)
	if filter.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", filter.Date, loc)
		if err == nil {
			day = parsed
		}
	}
	start, end := dayWindow(day)
	q = q.Where("transaction_time >= ? AND transaction_time < ?", start, end)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Employee").Preload("Product").
		Order("transaction_time DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&transactions).Error

	return transactions, total, err
}
