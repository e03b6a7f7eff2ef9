package service

import (
	"context"
	"testing"

	"github.com/angelolorensi/vending-machine-api/internal/apperror"
	"github.com/angelolorensi/vending-machine-api/internal/dto"
	"github.com/angelolorensi/vending-machine-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEmployee(t *testing.T) {
	employeeRepo := newStubEmployeeRepo()
	classificationRepo := newStubClassificationRepo()
	classification := &model.Classification{Name: "standard", DailyPointRechargeAmount: 25}
	require.NoError(t, classificationRepo.Create(context.Background(), classification))

	svc := NewEmployeeService(employeeRepo, classificationRepo)

	employee, err := svc.CreateEmployee(context.Background(), dto.CreateEmployeeRequest{
		Name: "Sam Lee", ClassificationID: classification.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, employee.ID)
	assert.Equal(t, model.EmployeeActive, employee.Status)
	assert.Nil(t, employee.CardID)
}

func TestCreateEmployee_UnknownClassification(t *testing.T) {
	svc := NewEmployeeService(newStubEmployeeRepo(), newStubClassificationRepo())

	_, err := svc.CreateEmployee(context.Background(), dto.CreateEmployeeRequest{
		Name: "Sam Lee", ClassificationID: 42,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	assert.EqualError(t, err, "Classification not found")
}

func TestGetEmployee_NotFound(t *testing.T) {
	svc := NewEmployeeService(newStubEmployeeRepo(), newStubClassificationRepo())

	_, err := svc.GetEmployee(context.Background(), 7)
	assert.EqualError(t, err, "Employee not found")
}
