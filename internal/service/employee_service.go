package service

import (
	"context"

	"github.com/angelolorensi/vending-machine-api/internal/apperror"
	"github.com/angelolorensi/vending-machine-api/internal/dto"
	"github.com/angelolorensi/vending-machine-api/internal/model"
	"github.com/angelolorensi/vending-machine-api/internal/repository"
)

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*model.Employee, error)
	GetEmployee(ctx context.Context, id uint) (*model.Employee, error)
}

type employeeService struct {
	employees       repository.EmployeeRepository
	classifications repository.ClassificationRepository
}

func NewEmployeeService(employees repository.EmployeeRepository, classifications repository.ClassificationRepository) EmployeeService {
	return &employeeService{employees: employees, classifications: classifications}
}

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*model.Employee, error) {
	if _, err := s.classifications.FindByID(ctx, req.ClassificationID); err != nil {
		return nil, apperror.NotFound("Classification not found")
	}
	employee := &model.Employee{
		Name:             req.Name,
		Status:           model.EmployeeActive,
		ClassificationID: req.ClassificationID,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, apperror.Storage("create employee", err)
	}
	return employee, nil
}

func (s *employeeService) GetEmployee(ctx context.Context, id uint) (*model.Employee, error) {
	employee, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Employee not found")
	}
	return employee, nil
}
