package service

import (
	"context"
	"time"

	"github.com/angelolorensi/vending-machine-api/internal/apperror"
	"github.com/angelolorensi/vending-machine-api/internal/dto"
	"github.com/angelolorensi/vending-machine-api/internal/model"
	"github.com/angelolorensi/vending-machine-api/internal/repository"
)

type TransactionService interface {
	GetTransaction(ctx context.Context, id uint) (*model.Transaction, error)
	ListTransactions(ctx context.Context, filter dto.TransactionFilter) (*dto.TransactionListResponse, error)
	// EmployeeDailyTransactions returns the employee's completed
	// transactions on the given calendar day.
	EmployeeDailyTransactions(ctx context.Context, employeeID uint, day time.Time) ([]dto.TransactionResponse, error)
}

type transactionService struct {
	repo repository.TransactionRepository
	loc  *time.Location
}

func NewTransactionService(repo repository.TransactionRepository, loc *time.Location) TransactionService {
	return &transactionService{repo: repo, loc: loc}
}

func (s *transactionService) GetTransaction(ctx context.Context, id uint) (*model.Transaction, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Transaction not found")
	}
	return t, nil
}

// ListTransactions returns a paginated listing. Default filter: today's
// completed transactions.
func (s *transactionService) ListTransactions(ctx context.Context, filter dto.TransactionFilter) (*dto.TransactionListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	if filter.Status == "" {
		filter.Status = string(model.TransactionCompleted)
	}

	transactions, total, err := s.repo.List(ctx, filter, s.loc)
	if err != nil {
		return nil, apperror.Storage("list transactions", err)
	}

	items := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		items = append(items, *transactionToResponse(&transactions[i]))
	}
	return &dto.TransactionListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *transactionService) EmployeeDailyTransactions(ctx context.Context, employeeID uint, day time.Time) ([]dto.TransactionResponse, error) {
	transactions, err := s.repo.ListCompletedOnDate(ctx, nil, employeeID, day.In(s.loc))
	if err != nil {
		return nil, apperror.Storage("list daily transactions", err)
	}
	items := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		items = append(items, *transactionToResponse(&transactions[i]))
	}
	return items, nil
}

func transactionToResponse(t *model.Transaction) *dto.TransactionResponse {
	resp := &dto.TransactionResponse{
		ID:              t.ID,
		Reference:       t.Reference,
		EmployeeID:      t.EmployeeID,
		CardID:          t.CardID,
		MachineID:       t.MachineID,
		SlotID:          t.SlotID,
		ProductID:       t.ProductID,
		PointsDeducted:  t.PointsDeducted,
		TransactionTime: t.TransactionTime.Format(time.RFC3339),
		Status:          string(t.Status),
	}
	if t.Employee != nil {
		resp.EmployeeName = t.Employee.Name
	}
	if t.Product != nil {
		resp.ProductName = t.Product.Name
	}
	if t.FailureReason != nil {
		resp.FailureReason = *t.FailureReason
	}
	return resp
}
