package service

import (
	"context"

	"github.com/angelolorensi/vending-machine-api/internal/apperror"
	"github.com/angelolorensi/vending-machine-api/internal/model"
	"github.com/angelolorensi/vending-machine-api/internal/repository"
)

type ClassificationService interface {
	GetClassification(ctx context.Context, id uint) (*model.Classification, error)
	ListClassifications(ctx context.Context) ([]model.Classification, error)
}

type classificationService struct {
	repo repository.ClassificationRepository
}

func NewClassificationService(repo repository.ClassificationRepository) ClassificationService {
	return &classificationService{repo: repo}
}

func (s *classificationService) GetClassification(ctx context.Context, id uint) (*model.Classification, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Classification not found")
	}
	return c, nil
}

func (s *classificationService) ListClassifications(ctx context.Context) ([]model.Classification, error) {
	return s.repo.List(ctx)
}
