package dto

// PurchaseRequest identifies the card making the purchase and the machine
// slot being vended.
type PurchaseRequest struct {
	CardNumber string `json:"card_number" binding:"required"`
	MachineID  uint   `json:"machine_id" binding:"required" validate:"gt=0"`
	SlotNumber int    `json:"slot_number" binding:"required" validate:"gte=1,lte=30"`
}

// PurchaseReceipt is returned after a settled purchase.
type PurchaseReceipt struct {
	Product          ProductSnapshot `json:"product"`
	RemainingBalance int             `json:"remaining_balance"`
	TransactionID    uint            `json:"transaction_id"`
	Reference        string          `json:"reference"`
}

// ProductSnapshot captures the vended product at settlement time.
type ProductSnapshot struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	PointsDeducted int    `json:"points_deducted"`
}
