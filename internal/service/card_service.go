package service

import (
	"context"

	"github.com/angelolorensi/vending-machine-api/internal/apperror"
	"github.com/angelolorensi/vending-machine-api/internal/dto"
	"github.com/angelolorensi/vending-machine-api/internal/model"
	"github.com/angelolorensi/vending-machine-api/internal/repository"
)

type CardService interface {
	// Verify resolves a card number to an active card bound to an active
	// employee, with the employee and classification attached. Check
	// order: existence, blocked, active, assignment, employee active.
	Verify(ctx context.Context, cardNumber string) (*model.Card, error)
	// Snapshot is Verify flattened into the API read model.
	Snapshot(ctx context.Context, cardNumber string) (*dto.CardSnapshot, error)
	AssignCard(ctx context.Context, cardID, employeeID uint) error
	UnassignCard(ctx context.Context, employeeID uint) error
	CreateCard(ctx context.Context, number string, balance int) (*model.Card, error)
	GetCard(ctx context.Context, id uint) (*model.Card, error)
}

type cardService struct {
	cards     repository.CardRepository
	employees repository.EmployeeRepository
}

func NewCardService(cards repository.CardRepository, employees repository.EmployeeRepository) CardService {
	return &cardService{cards: cards, employees: employees}
}

func (s *cardService) Verify(ctx context.Context, cardNumber string) (*model.Card, error) {
	card, err := s.cards.FindByNumber(ctx, cardNumber)
	if err != nil {
		return nil, apperror.NotFound("Card not found")
	}

	// Blocked takes precedence over the generic not-active check.
	if card.Status == model.CardBlocked {
		return nil, apperror.Blocked("Card is blocked")
	}
	if card.Status != model.CardActive {
		return nil, apperror.NotActive("Card is not active")
	}
	if card.Employee == nil {
		return nil, apperror.Unassigned("Card is not assigned to any employee")
	}
	if card.Employee.Status != model.EmployeeActive {
		return nil, apperror.NotActive("Employee is not active")
	}
	return card, nil
}

func (s *cardService) Snapshot(ctx context.Context, cardNumber string) (*dto.CardSnapshot, error) {
	card, err := s.Verify(ctx, cardNumber)
	if err != nil {
		return nil, err
	}
	snap := &dto.CardSnapshot{
		CardID:        card.ID,
		CardNumber:    card.CardNumber,
		PointsBalance: card.PointsBalance,
		Status:        string(card.Status),
		EmployeeID:    card.Employee.ID,
		EmployeeName:  card.Employee.Name,
	}
	if card.Employee.Classification != nil {
		snap.Classification = card.Employee.Classification.Name
	}
	return snap, nil
}

// AssignCard binds a free card to a cardless employee. Both directions of
// the one-to-one invariant are checked imperatively for friendly errors;
// the write itself is a compare-and-set on the employee's card column,
// and the unique index on card_id rejects a racing assignment of the
// same card whose pre-checks passed on a stale read.
func (s *cardService) AssignCard(ctx context.Context, cardID, employeeID uint) error {
	employee, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return apperror.NotFound("Employee not found")
	}
	if _, err := s.cards.FindByID(ctx, cardID); err != nil {
		return apperror.NotFound("Card not found")
	}

	if employee.CardID != nil {
		return apperror.Conflict("Employee already has a card assigned")
	}
	if _, err := s.employees.FindByCardID(ctx, cardID); err == nil {
		return apperror.Conflict("Card is already assigned to another employee")
	}

	// SetCard fails when the employee gained a card meanwhile or when a
	// concurrent assignment claimed this card first (unique index).
	if err := s.employees.SetCard(ctx, employeeID, cardID); err != nil {
		return apperror.Conflict("Card assignment conflict")
	}
	return nil
}

func (s *cardService) UnassignCard(ctx context.Context, employeeID uint) error {
	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		return apperror.NotFound("Employee not found")
	}
	if err := s.employees.ClearCard(ctx, employeeID); err != nil {
		return apperror.Conflict("Employee does not have a card assigned")
	}
	return nil
}

func (s *cardService) CreateCard(ctx context.Context, number string, balance int) (*model.Card, error) {
	card := &model.Card{
		CardNumber:    number,
		PointsBalance: balance,
		Status:        model.CardActive,
	}
	if err := s.cards.Create(ctx, card); err != nil {
		return nil, apperror.Storage("create card", err)
	}
	return card, nil
}

func (s *cardService) GetCard(ctx context.Context, id uint) (*model.Card, error) {
	card, err := s.cards.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Card not found")
	}
	return card, nil
}
