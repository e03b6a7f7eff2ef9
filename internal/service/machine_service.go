package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/angelolorensi/vending-machine-api/internal/apperror"
	"github.com/angelolorensi/vending-machine-api/internal/dto"
	"github.com/angelolorensi/vending-machine-api/internal/model"
	"github.com/angelolorensi/vending-machine-api/internal/repository"

	"github.com/rs/zerolog/log"
)

const maxFillQuantity = 10

type MachineService interface {
	// ResolveSlot validates the machine is active and the slot holds a
	// product, returning all three records for the settlement snapshot.
	ResolveSlot(ctx context.Context, machineID uint, slotNumber int) (*model.Machine, *model.Slot, *model.Product, error)
	CreateMachine(ctx context.Context, req dto.CreateMachineRequest) (*model.Machine, error)
	GetMachine(ctx context.Context, id uint) (*model.Machine, error)
	ListMachines(ctx context.Context) ([]model.Machine, error)
	// FillSlots loads slots with random products and quantities, across
	// all machines or one, optionally only where the slot is empty.
	FillSlots(ctx context.Context, req dto.FillSlotsRequest) (*dto.FillSlotsSummary, error)
}

type machineService struct {
	machines repository.MachineRepository
	products repository.ProductRepository
	rng      *rand.Rand
}

func NewMachineService(machines repository.MachineRepository, products repository.ProductRepository) MachineService {
	return &machineService{
		machines: machines,
		products: products,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *machineService) ResolveSlot(ctx context.Context, machineID uint, slotNumber int) (*model.Machine, *model.Slot, *model.Product, error) {
	machine, err := s.machines.FindByID(ctx, machineID)
	if err != nil {
		return nil, nil, nil, apperror.NotFound("Machine not found")
	}
	if machine.Status != model.MachineActive {
		return nil, nil, nil, apperror.NotActive("Machine is not active")
	}

	slot, err := s.machines.FindSlot(ctx, machineID, slotNumber)
	if err != nil {
		return nil, nil, nil, apperror.NotFound("Slot not found")
	}
	if slot.ProductID == nil || slot.Product == nil {
		return nil, nil, nil, apperror.NotFound("No product in this slot")
	}
	return machine, slot, slot.Product, nil
}

// CreateMachine registers the machine and materializes its slots,
// numbered 1..SlotsPerMachine and empty, in a single insert.
func (s *machineService) CreateMachine(ctx context.Context, req dto.CreateMachineRequest) (*model.Machine, error) {
	machine := &model.Machine{
		Name:     req.Name,
		Location: req.Location,
		Status:   model.MachineActive,
		Slots:    make([]model.Slot, 0, model.SlotsPerMachine),
	}
	for i := 1; i <= model.SlotsPerMachine; i++ {
		machine.Slots = append(machine.Slots, model.Slot{Number: i})
	}
	if err := s.machines.Create(ctx, machine); err != nil {
		return nil, apperror.Storage("create machine", err)
	}
	return machine, nil
}

func (s *machineService) GetMachine(ctx context.Context, id uint) (*model.Machine, error) {
	machine, err := s.machines.FindByIDWithSlots(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Machine not found")
	}
	return machine, nil
}

func (s *machineService) ListMachines(ctx context.Context) ([]model.Machine, error) {
	return s.machines.List(ctx)
}

func (s *machineService) FillSlots(ctx context.Context, req dto.FillSlotsRequest) (*dto.FillSlotsSummary, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, apperror.Storage("list products", err)
	}
	if len(products) == 0 {
		return nil, apperror.NotFound("No products available to fill slots")
	}

	var machines []model.Machine
	if req.MachineID != 0 {
		m, err := s.machines.FindByID(ctx, req.MachineID)
		if err != nil {
			return nil, apperror.NotFound("Machine not found")
		}
		machines = []model.Machine{*m}
	} else {
		machines, err = s.machines.List(ctx)
		if err != nil {
			return nil, apperror.Storage("list machines", err)
		}
	}

	summary := &dto.FillSlotsSummary{Machines: len(machines)}
	for _, machine := range machines {
		slots, err := s.machines.ListSlots(ctx, machine.ID, req.EmptyOnly)
		if err != nil {
			return nil, apperror.Storage("list slots", err)
		}
		for i := range slots {
			product := products[s.rng.Intn(len(products))]
			slots[i].ProductID = &product.ID
			slots[i].Quantity = 1 + s.rng.Intn(maxFillQuantity)
			if err := s.machines.UpdateSlot(ctx, &slots[i]); err != nil {
				return nil, apperror.Storage("update slot", err)
			}
			summary.SlotsFilled++
		}
		log.Info().
			Str("machine", machine.Name).
			Int("slots", len(slots)).
			Msg("slots filled")
	}
	return summary, nil
}
