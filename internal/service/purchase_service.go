package service

import (
	"context"
	"time"

	"github.com/angelolorensi/vending-machine-api/internal/apperror"
	"github.com/angelolorensi/vending-machine-api/internal/dto"
	"github.com/angelolorensi/vending-machine-api/internal/infra"
	"github.com/angelolorensi/vending-machine-api/internal/model"
	"github.com/angelolorensi/vending-machine-api/internal/repository"
	"github.com/angelolorensi/vending-machine-api/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type PurchaseService interface {
	// Purchase runs the full authorization and settlement flow for one
	// vend: card verification, slot resolution, stock, balance and quota
	// checks, then transaction creation and balance debit as one unit.
	Purchase(ctx context.Context, req dto.PurchaseRequest) (*dto.PurchaseReceipt, error)
}

type purchaseService struct {
	cards        CardService
	machines     MachineService
	cardRepo     repository.CardRepository
	machineRepo  repository.MachineRepository
	transactions repository.TransactionRepository
	dispatcher   *worker.Dispatcher
	loc          *time.Location
	now          func() time.Time
}

func NewPurchaseService(
	cards CardService,
	machines MachineService,
	cardRepo repository.CardRepository,
	machineRepo repository.MachineRepository,
	transactions repository.TransactionRepository,
	dispatcher *worker.Dispatcher,
	loc *time.Location,
) PurchaseService {
	return &purchaseService{
		cards:        cards,
		machines:     machines,
		cardRepo:     cardRepo,
		machineRepo:  machineRepo,
		transactions: transactions,
		dispatcher:   dispatcher,
		loc:          loc,
		now:          time.Now,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// Purchase settles one vend.
//
// Pre-flight validation (card, machine, slot, product, stock) runs outside
// the transaction; inside it the card row is locked FOR UPDATE so the
// balance check, quota evaluation, ledger insert and debit see no
// concurrent writer for the same card. Any failure aborts with zero
// state written — failed attempts are not recorded in the ledger.
func (s *purchaseService) Purchase(ctx context.Context, req dto.PurchaseRequest) (*dto.PurchaseReceipt, error) {
	card, err := s.cards.Verify(ctx, req.CardNumber)
	if err != nil {
		return nil, s.reject(err)
	}
	employee := card.Employee
	classification := employee.Classification
	if classification == nil {
		return nil, s.reject(apperror.NotFound("Employee has no classification"))
	}

	machine, slot, product, err := s.machines.ResolveSlot(ctx, req.MachineID, req.SlotNumber)
	if err != nil {
		return nil, s.reject(err)
	}
	if slot.Quantity <= 0 {
		return nil, s.reject(apperror.NotFound("No stock in this slot"))
	}

	if card.PointsBalance < product.PricePoints {
		return nil, s.reject(apperror.InsufficientPoints("Not enough points for this product"))
	}

	asOf := s.now().In(s.loc)
	var (
		tx          model.Transaction
		postBalance int
	)

	txErr := runTx(ctx, s.transactions.DB(), func(dbtx *gorm.DB) error {
		// Re-read the card under lock: the pre-flight balance may be
		// stale by the time we get here.
		locked := card
		if dbtx != nil {
			locked, err = s.cardRepo.LockByNumberTx(dbtx, req.CardNumber)
			if err != nil {
				return apperror.Storage("lock card", err)
			}
		}
		if locked.PointsBalance < product.PricePoints {
			return apperror.InsufficientPoints("Not enough points for this product")
		}
		postBalance = locked.PointsBalance - product.PricePoints

		// Quota reads the day's history inside the same transaction, so
		// the row written below is never counted against its own check.
		history, err := s.transactions.ListCompletedOnDate(ctx, dbtx, employee.ID, asOf)
		if err != nil {
			return apperror.Storage("load daily transactions", err)
		}
		if err := CheckDailyQuota(classification, product, history, asOf); err != nil {
			return err
		}

		tx = model.Transaction{
			Reference:       uuid.NewString(),
			EmployeeID:      employee.ID,
			CardID:          card.ID,
			MachineID:       machine.ID,
			SlotID:          slot.ID,
			ProductID:       product.ID,
			PointsDeducted:  product.PricePoints,
			TransactionTime: asOf,
			Status:          model.TransactionCompleted,
		}
		if err := s.transactions.CreateTx(ctx, dbtx, &tx); err != nil {
			return apperror.Storage("create transaction", err)
		}

		if err := s.cardRepo.DebitBalanceTx(dbtx, card.ID, product.PricePoints); err != nil {
			return apperror.Storage("debit card", err)
		}

		if err := s.machineRepo.DecrementSlotQuantityTx(dbtx, slot.ID); err != nil {
			return apperror.Storage("decrement slot stock", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, s.reject(txErr)
	}

	infra.PurchasesCompleted.Inc()
	infra.PointsSpent.Add(float64(product.PricePoints))
	log.Info().
		Str("card", card.CardNumber).
		Uint("machine_id", machine.ID).
		Int("slot", slot.Number).
		Str("product", product.Name).
		Int("points", product.PricePoints).
		Str("reference", tx.Reference).
		Msg("purchase settled")

	// Last unit vended — alert the operator asynchronously (best-effort).
	if slot.Quantity == 1 && s.dispatcher != nil {
		_ = s.dispatcher.EnqueueRestock(ctx, worker.RestockPayload{
			MachineID:   machine.ID,
			MachineName: machine.Name,
			Location:    machine.Location,
			SlotNumber:  slot.Number,
			ProductID:   product.ID,
			ProductName: product.Name,
		})
	}

	description := ""
	if product.Description != nil {
		description = *product.Description
	}
	return &dto.PurchaseReceipt{
		Product: dto.ProductSnapshot{
			Name:           product.Name,
			Description:    description,
			PointsDeducted: product.PricePoints,
		},
		RemainingBalance: postBalance,
		TransactionID:    tx.ID,
		Reference:        tx.Reference,
	}, nil
}

// reject counts the rejection for metrics and passes the error through.
func (s *purchaseService) reject(err error) error {
	reason := apperror.KindOf(err).String()
	infra.PurchasesRejected.WithLabelValues(reason).Inc()
	return err
}
