package service

import (
	"context"
	"strings"
	"time"

	"github.com/angelolorensi/vending-machine-api/internal/dto"
	"github.com/angelolorensi/vending-machine-api/internal/model"
	"github.com/angelolorensi/vending-machine-api/internal/repository"

	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubCardRepo is an in-memory CardRepository. Tx-suffixed methods accept
// a nil *gorm.DB because services run without a real transaction in tests.
type stubCardRepo struct {
	cards  map[uint]*model.Card
	nextID uint
}

func newStubCardRepo() *stubCardRepo {
	return &stubCardRepo{cards: make(map[uint]*model.Card)}
}

func (r *stubCardRepo) Create(_ context.Context, c *model.Card) error {
	r.nextID++
	c.ID = r.nextID
	r.cards[c.ID] = c
	return nil
}

func (r *stubCardRepo) FindByID(_ context.Context, id uint) (*model.Card, error) {
	c, ok := r.cards[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCardRepo) FindByNumber(_ context.Context, number string) (*model.Card, error) {
	for _, c := range r.cards {
		if c.CardNumber == number {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCardRepo) LockByNumberTx(_ *gorm.DB, number string) (*model.Card, error) {
	return r.FindByNumber(context.Background(), number)
}

func (r *stubCardRepo) DebitBalanceTx(_ *gorm.DB, id uint, amount int) error {
	c, ok := r.cards[id]
	if !ok || c.PointsBalance < amount {
		return gorm.ErrRecordNotFound
	}
	c.PointsBalance -= amount
	return nil
}

func (r *stubCardRepo) CreditBalance(_ context.Context, id uint, amount int) error {
	c, ok := r.cards[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.PointsBalance += amount
	return nil
}

func (r *stubCardRepo) DB() *gorm.DB { return nil }

var _ repository.CardRepository = (*stubCardRepo)(nil)

type stubEmployeeRepo struct {
	employees map[uint]*model.Employee
	nextID    uint
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{employees: make(map[uint]*model.Employee)}
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *model.Employee) error {
	r.nextID++
	e.ID = r.nextID
	r.employees[e.ID] = e
	return nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id uint) (*model.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *stubEmployeeRepo) FindByCardID(_ context.Context, cardID uint) (*model.Employee, error) {
	for _, e := range r.employees {
		if e.CardID != nil && *e.CardID == cardID {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubEmployeeRepo) SetCard(_ context.Context, employeeID, cardID uint) error {
	e, ok := r.employees[employeeID]
	if !ok || e.CardID != nil {
		return gorm.ErrRecordNotFound
	}
	// Mirror the unique index on employees.card_id.
	for _, other := range r.employees {
		if other.CardID != nil && *other.CardID == cardID {
			return gorm.ErrDuplicatedKey
		}
	}
	e.CardID = &cardID
	return nil
}

func (r *stubEmployeeRepo) ClearCard(_ context.Context, employeeID uint) error {
	e, ok := r.employees[employeeID]
	if !ok || e.CardID == nil {
		return gorm.ErrRecordNotFound
	}
	e.CardID = nil
	return nil
}

func (r *stubEmployeeRepo) ListRechargeable(_ context.Context) ([]model.Employee, error) {
	var out []model.Employee
	for _, e := range r.employees {
		if e.Status != model.EmployeeActive || e.Card == nil || e.Card.Status != model.CardActive {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

var _ repository.EmployeeRepository = (*stubEmployeeRepo)(nil)

type stubMachineRepo struct {
	machines map[uint]*model.Machine
	slots    map[uint]*model.Slot
	nextID   uint
}

func newStubMachineRepo() *stubMachineRepo {
	return &stubMachineRepo{
		machines: make(map[uint]*model.Machine),
		slots:    make(map[uint]*model.Slot),
	}
}

func (r *stubMachineRepo) Create(_ context.Context, m *model.Machine) error {
	r.nextID++
	m.ID = r.nextID
	r.machines[m.ID] = m
	for i := range m.Slots {
		r.nextID++
		m.Slots[i].ID = r.nextID
		m.Slots[i].MachineID = m.ID
		r.slots[m.Slots[i].ID] = &m.Slots[i]
	}
	return nil
}

// addSlot registers a slot directly, bypassing machine creation.
func (r *stubMachineRepo) addSlot(s *model.Slot) *model.Slot {
	r.nextID++
	s.ID = r.nextID
	r.slots[s.ID] = s
	return s
}

func (r *stubMachineRepo) FindByID(_ context.Context, id uint) (*model.Machine, error) {
	m, ok := r.machines[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *stubMachineRepo) FindByIDWithSlots(ctx context.Context, id uint) (*model.Machine, error) {
	return r.FindByID(ctx, id)
}

func (r *stubMachineRepo) List(_ context.Context) ([]model.Machine, error) {
	var out []model.Machine
	for _, m := range r.machines {
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubMachineRepo) FindSlot(_ context.Context, machineID uint, number int) (*model.Slot, error) {
	for _, s := range r.slots {
		if s.MachineID == machineID && s.Number == number {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubMachineRepo) ListSlots(_ context.Context, machineID uint, emptyOnly bool) ([]model.Slot, error) {
	var out []model.Slot
	for _, s := range r.slots {
		if s.MachineID != machineID {
			continue
		}
		if emptyOnly && s.ProductID != nil {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubMachineRepo) UpdateSlot(_ context.Context, s *model.Slot) error {
	stored, ok := r.slots[s.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	*stored = *s
	return nil
}

func (r *stubMachineRepo) DecrementSlotQuantityTx(_ *gorm.DB, slotID uint) error {
	s, ok := r.slots[slotID]
	if !ok || s.Quantity <= 0 {
		return gorm.ErrRecordNotFound
	}
	s.Quantity--
	return nil
}

var _ repository.MachineRepository = (*stubMachineRepo)(nil)

type stubProductRepo struct {
	products   map[uint]*model.Product
	categories map[uint]*model.ProductCategory
	nextID     uint
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{
		products:   make(map[uint]*model.Product),
		categories: make(map[uint]*model.ProductCategory),
	}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	r.nextID++
	p.ID = r.nextID
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) ListCategories(_ context.Context) ([]model.ProductCategory, error) {
	var out []model.ProductCategory
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

type stubClassificationRepo struct {
	classifications map[uint]*model.Classification
	nextID          uint
}

func newStubClassificationRepo() *stubClassificationRepo {
	return &stubClassificationRepo{classifications: make(map[uint]*model.Classification)}
}

func (r *stubClassificationRepo) Create(_ context.Context, c *model.Classification) error {
	r.nextID++
	c.ID = r.nextID
	r.classifications[c.ID] = c
	return nil
}

func (r *stubClassificationRepo) FindByID(_ context.Context, id uint) (*model.Classification, error) {
	c, ok := r.classifications[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClassificationRepo) List(_ context.Context) ([]model.Classification, error) {
	var out []model.Classification
	for _, c := range r.classifications {
		out = append(out, *c)
	}
	return out, nil
}

var _ repository.ClassificationRepository = (*stubClassificationRepo)(nil)

type stubTransactionRepo struct {
	transactions map[uint]*model.Transaction
	nextID       uint
}

func newStubTransactionRepo() *stubTransactionRepo {
	return &stubTransactionRepo{transactions: make(map[uint]*model.Transaction)}
}

func (r *stubTransactionRepo) CreateTx(_ context.Context, _ *gorm.DB, t *model.Transaction) error {
	r.nextID++
	t.ID = r.nextID
	r.transactions[t.ID] = t
	return nil
}

func (r *stubTransactionRepo) FindByID(_ context.Context, id uint) (*model.Transaction, error) {
	t, ok := r.transactions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (r *stubTransactionRepo) ListCompletedOnDate(_ context.Context, _ *gorm.DB, employeeID uint, day time.Time) ([]model.Transaction, error) {
	y, m, d := day.Date()
	var out []model.Transaction
	for _, t := range r.transactions {
		if t.EmployeeID != employeeID || t.Status != model.TransactionCompleted {
			continue
		}
		ty, tm, td := t.TransactionTime.In(day.Location()).Date()
		if ty == y && tm == m && td == d {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTransactionRepo) List(_ context.Context, filter dto.TransactionFilter, _ *time.Location) ([]model.Transaction, int64, error) {
	var out []model.Transaction
	for _, t := range r.transactions {
		if filter.EmployeeID != 0 && t.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && filter.Status != "all" && !strings.EqualFold(string(t.Status), filter.Status) {
			continue
		}
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (r *stubTransactionRepo) DB() *gorm.DB { return nil }

var _ repository.TransactionRepository = (*stubTransactionRepo)(nil)

// stubDayGuard records Acquire calls and answers with a fixed verdict.
type stubDayGuard struct {
	allow bool
	calls []string
}

func (g *stubDayGuard) Acquire(_ context.Context, day string) (bool, error) {
	g.calls = append(g.calls, day)
	return g.allow, nil
}

// ── Seed helpers ──────────────────────────────────────────────────────────────

func seedCategory(name string) *model.ProductCategory {
	return &model.ProductCategory{ID: 1, Name: name}
}

func seedProduct(repo *stubProductRepo, name string, price int, category *model.ProductCategory) *model.Product {
	p := &model.Product{
		Name:              name,
		PricePoints:       price,
		ProductCategoryID: category.ID,
		ProductCategory:   category,
	}
	_ = repo.Create(context.Background(), p)
	return p
}

func seedClassification(pointLimit, juiceLimit, snackLimit, mealLimit, recharge int) *model.Classification {
	return &model.Classification{
		ID:                       1,
		Name:                     "standard",
		DailyJuiceLimit:          juiceLimit,
		DailySnackLimit:          snackLimit,
		DailyMealLimit:           mealLimit,
		DailyPointLimit:          pointLimit,
		DailyPointRechargeAmount: recharge,
	}
}

// seedCardholder creates an active card bound to an active employee with
// the given classification and balance.
func seedCardholder(cards *stubCardRepo, employees *stubEmployeeRepo, number string, balance int, classification *model.Classification) (*model.Card, *model.Employee) {
	card := &model.Card{
		CardNumber:    number,
		PointsBalance: balance,
		Status:        model.CardActive,
	}
	_ = cards.Create(context.Background(), card)

	employee := &model.Employee{
		Name:             "Alex Doe",
		Status:           model.EmployeeActive,
		ClassificationID: classification.ID,
		Classification:   classification,
		CardID:           &card.ID,
		Card:             card,
	}
	_ = employees.Create(context.Background(), employee)
	card.Employee = employee
	return card, employee
}
