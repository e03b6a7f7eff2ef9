package handler

import (
	"net/http"

	"github.com/angelolorensi/vending-machine-api/internal/dto"
	"github.com/angelolorensi/vending-machine-api/internal/model"
	"github.com/angelolorensi/vending-machine-api/internal/service"

	"github.com/gin-gonic/gin"
)

type MachinesHandler struct{ svc service.MachineService }

func NewMachinesHandler(svc service.MachineService) *MachinesHandler {
	return &MachinesHandler{svc: svc}
}

// Create registers a machine and materializes its fixed set of empty
// slots in the same transaction.
func (h *MachinesHandler) Create(c *gin.Context) {
	var req dto.CreateMachineRequest
	if !bindAndValidate(c, &req) {
		return
	}
	machine, err := h.svc.CreateMachine(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, machineToResponse(machine, true))
}

func (h *MachinesHandler) List(c *gin.Context) {
	machines, err := h.svc.ListMachines(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.MachineResponse, 0, len(machines))
	for i := range machines {
		out = append(out, machineToResponse(&machines[i], false))
	}
	c.JSON(http.StatusOK, out)
}

func (h *MachinesHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	machine, err := h.svc.GetMachine(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, machineToResponse(machine, true))
}

// FillSlots restocks slots with random products, across all machines or
// one. The operator endpoint behind the restock alert emails.
func (h *MachinesHandler) FillSlots(c *gin.Context) {
	var req dto.FillSlotsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	summary, err := h.svc.FillSlots(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func machineToResponse(m *model.Machine, withSlots bool) dto.MachineResponse {
	resp := dto.MachineResponse{
		ID:       m.ID,
		Name:     m.Name,
		Location: m.Location,
		Status:   string(m.Status),
	}
	if !withSlots {
		return resp
	}
	resp.Slots = make([]dto.SlotResponse, 0, len(m.Slots))
	for i := range m.Slots {
		s := &m.Slots[i]
		sr := dto.SlotResponse{
			ID:        s.ID,
			Number:    s.Number,
			Quantity:  s.Quantity,
			ProductID: s.ProductID,
		}
		if s.Product != nil {
			sr.ProductName = &s.Product.Name
			sr.PricePoints = &s.Product.PricePoints
		}
		resp.Slots = append(resp.Slots, sr)
	}
	return resp
}
