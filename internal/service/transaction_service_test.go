package service

import (
	"context"
	"testing"
	"time"

	"github.com/angelolorensi/vending-machine-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeDailyTransactions_WindowsOneDay(t *testing.T) {
	txRepo := newStubTransactionRepo()
	svc := NewTransactionService(txRepo, time.UTC)
	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	today := completedAt(day.Add(-time.Hour), 10, "Beverages")
	today.EmployeeID = 1
	today.Reference = "ref-today"
	require.NoError(t, txRepo.CreateTx(context.Background(), nil, &today))

	yesterday := completedAt(day.AddDate(0, 0, -1), 10, "Beverages")
	yesterday.EmployeeID = 1
	require.NoError(t, txRepo.CreateTx(context.Background(), nil, &yesterday))

	failed := completedAt(day, 10, "Snacks")
	failed.EmployeeID = 1
	failed.Status = model.TransactionFailed
	require.NoError(t, txRepo.CreateTx(context.Background(), nil, &failed))

	otherEmployee := completedAt(day, 10, "Meals")
	otherEmployee.EmployeeID = 2
	require.NoError(t, txRepo.CreateTx(context.Background(), nil, &otherEmployee))

	items, err := svc.EmployeeDailyTransactions(context.Background(), 1, day)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "ref-today", items[0].Reference)
	assert.Equal(t, 10, items[0].PointsDeducted)
	assert.Equal(t, string(model.TransactionCompleted), items[0].Status)
}
