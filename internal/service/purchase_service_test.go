package service

import (
	"context"
	"testing"
	"time"

	"github.com/angelolorensi/vending-machine-api/internal/apperror"
	"github.com/angelolorensi/vending-machine-api/internal/dto"
	"github.com/angelolorensi/vending-machine-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type purchaseFixture struct {
	svc          PurchaseService
	cardRepo     *stubCardRepo
	employeeRepo *stubEmployeeRepo
	machineRepo  *stubMachineRepo
	productRepo  *stubProductRepo
	txRepo       *stubTransactionRepo
	machine      *model.Machine
}

func newPurchaseFixture(t *testing.T, now time.Time) *purchaseFixture {
	t.Helper()

	f := &purchaseFixture{
		cardRepo:     newStubCardRepo(),
		employeeRepo: newStubEmployeeRepo(),
		machineRepo:  newStubMachineRepo(),
		productRepo:  newStubProductRepo(),
		txRepo:       newStubTransactionRepo(),
	}

	cardSvc := NewCardService(f.cardRepo, f.employeeRepo)
	machineSvc := NewMachineService(f.machineRepo, f.productRepo)
	svc := NewPurchaseService(cardSvc, machineSvc, f.cardRepo, f.machineRepo, f.txRepo, nil, time.UTC)
	svc.(*purchaseService).now = func() time.Time { return now }
	f.svc = svc

	f.machine = &model.Machine{Name: "Lobby", Location: "HQ floor 1", Status: model.MachineActive}
	require.NoError(t, f.machineRepo.Create(context.Background(), f.machine))
	return f
}

// loadSlot places product in the machine's slot with the given stock.
func (f *purchaseFixture) loadSlot(t *testing.T, number int, product *model.Product, quantity int) *model.Slot {
	t.Helper()
	return f.machineRepo.addSlot(&model.Slot{
		MachineID: f.machine.ID,
		Number:    number,
		ProductID: &product.ID,
		Product:   product,
		Quantity:  quantity,
	})
}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) // a Tuesday

func TestPurchase_HappyPath(t *testing.T) {
	f := newPurchaseFixture(t, testNow)
	classification := seedClassification(50, 2, 2, 1, 25)
	card, employee := seedCardholder(f.cardRepo, f.employeeRepo, "CARD-001", 30, classification)
	product := seedProduct(f.productRepo, "Orange Juice", 10, seedCategory("Beverages"))
	f.loadSlot(t, 3, product, 5)

	receipt, err := f.svc.Purchase(context.Background(), dto.PurchaseRequest{
		CardNumber: "CARD-001",
		MachineID:  f.machine.ID,
		SlotNumber: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Orange Juice", receipt.Product.Name)
	assert.Equal(t, 10, receipt.Product.PointsDeducted)
	assert.Equal(t, 20, receipt.RemainingBalance)
	assert.NotEmpty(t, receipt.Reference)

	// Balance debited, stock decremented, ledger row written.
	assert.Equal(t, 20, card.PointsBalance)
	slot, err := f.machineRepo.FindSlot(context.Background(), f.machine.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, slot.Quantity)

	stored, err := f.txRepo.FindByID(context.Background(), receipt.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, employee.ID, stored.EmployeeID)
	assert.Equal(t, model.TransactionCompleted, stored.Status)
	assert.Equal(t, 10, stored.PointsDeducted)
}

func TestPurchase_BalanceToExactlyZero(t *testing.T) {
	f := newPurchaseFixture(t, testNow)
	classification := seedClassification(50, 2, 2, 1, 25)
	card, _ := seedCardholder(f.cardRepo, f.employeeRepo, "CARD-001", 10, classification)
	product := seedProduct(f.productRepo, "Water", 10, seedCategory("Beverages"))
	f.loadSlot(t, 1, product, 2)

	receipt, err := f.svc.Purchase(context.Background(), dto.PurchaseRequest{
		CardNumber: "CARD-001", MachineID: f.machine.ID, SlotNumber: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, receipt.RemainingBalance)
	assert.Equal(t, 0, card.PointsBalance)
}

func TestPurchase_InsufficientPoints(t *testing.T) {
	f := newPurchaseFixture(t, testNow)
	classification := seedClassification(50, 2, 2, 1, 25)
	card, _ := seedCardholder(f.cardRepo, f.employeeRepo, "CARD-001", 5, classification)
	product := seedProduct(f.productRepo, "Sandwich", 20, seedCategory("Meals"))
	f.loadSlot(t, 2, product, 3)

	_, err := f.svc.Purchase(context.Background(), dto.PurchaseRequest{
		CardNumber: "CARD-001", MachineID: f.machine.ID, SlotNumber: 2,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInsufficientPoints))
	assert.EqualError(t, err, "Not enough points for this product")

	// Nothing was written: balance, stock and ledger untouched.
	assert.Equal(t, 5, card.PointsBalance)
	slot, _ := f.machineRepo.FindSlot(context.Background(), f.machine.ID, 2)
	assert.Equal(t, 3, slot.Quantity)
	assert.Empty(t, f.txRepo.transactions)
}

func TestPurchase_DailyPointLimit(t *testing.T) {
	f := newPurchaseFixture(t, testNow)
	// Limit 15: a prior 10-point purchase plus a 10-point product breaches it.
	classification := seedClassification(15, 5, 5, 5, 25)
	_, employee := seedCardholder(f.cardRepo, f.employeeRepo, "CARD-001", 100, classification)
	product := seedProduct(f.productRepo, "Chips", 10, seedCategory("Snacks"))
	f.loadSlot(t, 4, product, 5)

	prior := completedAt(testNow.Add(-time.Hour), 10, "Meals")
	prior.EmployeeID = employee.ID
	require.NoError(t, f.txRepo.CreateTx(context.Background(), nil, &prior))

	_, err := f.svc.Purchase(context.Background(), dto.PurchaseRequest{
		CardNumber: "CARD-001", MachineID: f.machine.ID, SlotNumber: 4,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindDailyLimitExceeded))
	assert.EqualError(t, err, "Daily point limit would be exceeded")
}

func TestPurchase_SecondBeverageBlocked(t *testing.T) {
	f := newPurchaseFixture(t, testNow)
	classification := seedClassification(100, 1, 5, 5, 25)
	_, employee := seedCardholder(f.cardRepo, f.employeeRepo, "CARD-001", 100, classification)
	product := seedProduct(f.productRepo, "Apple Juice", 10, seedCategory("Beverages"))
	f.loadSlot(t, 5, product, 5)

	prior := completedAt(testNow.Add(-30*time.Minute), 10, "Beverages")
	prior.EmployeeID = employee.ID
	require.NoError(t, f.txRepo.CreateTx(context.Background(), nil, &prior))

	_, err := f.svc.Purchase(context.Background(), dto.PurchaseRequest{
		CardNumber: "CARD-001", MachineID: f.machine.ID, SlotNumber: 5,
	})
	assert.EqualError(t, err, "Daily juice limit exceeded")
}

func TestPurchase_BlockedCardTakesPrecedence(t *testing.T) {
	f := newPurchaseFixture(t, testNow)
	classification := seedClassification(50, 2, 2, 1, 25)
	card, _ := seedCardholder(f.cardRepo, f.employeeRepo, "CARD-001", 100, classification)
	card.Status = model.CardBlocked
	product := seedProduct(f.productRepo, "Water", 10, seedCategory("Beverages"))
	f.loadSlot(t, 1, product, 5)

	_, err := f.svc.Purchase(context.Background(), dto.PurchaseRequest{
		CardNumber: "CARD-001", MachineID: f.machine.ID, SlotNumber: 1,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindBlocked))
	assert.EqualError(t, err, "Card is blocked")
}

func TestPurchase_EmptySlotStock(t *testing.T) {
	f := newPurchaseFixture(t, testNow)
	classification := seedClassification(50, 2, 2, 1, 25)
	seedCardholder(f.cardRepo, f.employeeRepo, "CARD-001", 100, classification)
	product := seedProduct(f.productRepo, "Water", 10, seedCategory("Beverages"))
	f.loadSlot(t, 1, product, 0)

	_, err := f.svc.Purchase(context.Background(), dto.PurchaseRequest{
		CardNumber: "CARD-001", MachineID: f.machine.ID, SlotNumber: 1,
	})
	assert.EqualError(t, err, "No stock in this slot")
}

func TestPurchase_UnknownCardAndMachine(t *testing.T) {
	f := newPurchaseFixture(t, testNow)

	_, err := f.svc.Purchase(context.Background(), dto.PurchaseRequest{
		CardNumber: "NOPE", MachineID: f.machine.ID, SlotNumber: 1,
	})
	assert.EqualError(t, err, "Card not found")

	classification := seedClassification(50, 2, 2, 1, 25)
	seedCardholder(f.cardRepo, f.employeeRepo, "CARD-001", 100, classification)
	_, err = f.svc.Purchase(context.Background(), dto.PurchaseRequest{
		CardNumber: "CARD-001", MachineID: 999, SlotNumber: 1,
	})
	assert.EqualError(t, err, "Machine not found")
}
