package repository

import (
	"context"

	"github.com/angelolorensi/vending-machine-api/internal/model"

	"gorm.io/gorm"
)

// MachineRepository covers machines and their slots; slots never exist
// outside a machine, so they share one repository.
type MachineRepository interface {
	// Create inserts the machine together with its pre-built slots.
	Create(ctx context.Context, m *model.Machine) error
	FindByID(ctx context.Context, id uint) (*model.Machine, error)
	FindByIDWithSlots(ctx context.Context, id uint) (*model.Machine, error)
	List(ctx context.Context) ([]model.Machine, error)

	// FindSlot loads the (machine, number) slot with its product and the
	// product's category attached.
	FindSlot(ctx context.Context, machineID uint, number int) (*model.Slot, error)
	ListSlots(ctx context.Context, machineID uint, emptyOnly bool) ([]model.Slot, error)
	UpdateSlot(ctx context.Context, s *model.Slot) error

	// DecrementSlotQuantityTx reduces a slot's stock by one inside the
	// caller's transaction, guarded against going negative.
	DecrementSlotQuantityTx(tx *gorm.DB, slotID uint) error
}

type machineRepo struct{ db *gorm.DB }

func NewMachineRepository(db *gorm.DB) MachineRepository { return &machineRepo{db: db} }

func (r *machineRepo) Create(ctx context.Context, m *model.Machine) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *machineRepo) FindByID(ctx context.Context, id uint) (*model.Machine, error) {
	var m model.Machine
	err := r.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *machineRepo) FindByIDWithSlots(ctx context.Context, id uint) (*model.Machine, error) {
	var m model.Machine
	err := r.db.WithContext(ctx).
		Preload("Slots", func(db *gorm.DB) *gorm.DB { return db.Order("number ASC") }).
		Preload("Slots.Product").
		First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *machineRepo) List(ctx context.Context) ([]model.Machine, error) {
	var machines []model.Machine
	err := r.db.WithContext(ctx).Order("name ASC").Find(&machines).Error
	return machines, err
}

func (r *machineRepo) FindSlot(ctx context.Context, machineID uint, number int) (*model.Slot, error) {
	var s model.Slot
	err := r.db.WithContext(ctx).
		Preload("Product.ProductCategory").
		Where("machine_id = ? AND number = ?", machineID, number).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *machineRepo) ListSlots(ctx context.Context, machineID uint, emptyOnly bool) ([]model.Slot, error) {
	var slots []model.Slot
	q := r.db.WithContext(ctx).Where("machine_id = ?", machineID)
	if emptyOnly {
		q = q.Where("product_id IS NULL")
	}
	err := q.Order("number ASC").Find(&slots).Error
	return slots, err
}

func (r *machineRepo) UpdateSlot(ctx context.Context, s *model.Slot) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *machineRepo) DecrementSlotQuantityTx(tx *gorm.DB, slotID uint) error {
	res := tx.Model(&model.Slot{}).
		Where("id = ? AND quantity > 0", slotID).
		Update("quantity", gorm.Expr("quantity - 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
