package repository

import (
	"context"

	"github.com/angelolorensi/vending-machine-api/internal/model"

	"gorm.io/gorm"
)

type ClassificationRepository interface {
	Create(ctx context.Context, c *model.Classification) error
	FindByID(ctx context.Context, id uint) (*model.Classification, error)
	List(ctx context.Context) ([]model.Classification, error)
}

type classificationRepo struct{ db *gorm.DB }

func NewClassificationRepository(db *gorm.DB) ClassificationRepository {
	return &classificationRepo{db: db}
}

func (r *classificationRepo) Create(ctx context.Context, c *model.Classification) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *classificationRepo) FindByID(ctx context.Context, id uint) (*model.Classification, error) {
	var c model.Classification
	err := r.db.WithContext(ctx).First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *classificationRepo) List(ctx context.Context) ([]model.Classification, error) {
	var classifications []model.Classification
	err := r.db.WithContext(ctx).Order("name ASC").Find(&classifications).Error
	return classifications, err
}
