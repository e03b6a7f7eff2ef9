package dto

// CreateMachineRequest registers a new machine. Its slots are created
// automatically, numbered 1..30 and empty.
type CreateMachineRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
}

// MachineResponse is the machine read model with its slots.
type MachineResponse struct {
	ID       uint           `json:"id"`
	Name     string         `json:"name"`
	Location string         `json:"location"`
	Status   string         `json:"status"`
	Slots    []SlotResponse `json:"slots,omitempty"`
}

// SlotResponse is a slot with its loaded product, if any.
type SlotResponse struct {
	ID          uint    `json:"id"`
	Number      int     `json:"number"`
	Quantity    int     `json:"quantity"`
	ProductID   *uint   `json:"product_id,omitempty"`
	ProductName *string `json:"product_name,omitempty"`
	PricePoints *int    `json:"price_points,omitempty"`
}

// FillSlotsRequest controls the slot filling job. MachineID zero means
// all machines; EmptyOnly restricts the fill to slots without a product.
type FillSlotsRequest struct {
	MachineID uint `json:"machine_id"`
	EmptyOnly bool `json:"empty_only"`
}

// FillSlotsSummary reports how many slots were loaded per machine.
type FillSlotsSummary struct {
	Machines    int `json:"machines"`
	SlotsFilled int `json:"slots_filled"`
}
