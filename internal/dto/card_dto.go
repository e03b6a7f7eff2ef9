package dto

// CardSnapshot is the read model returned by card verification: the card
// with its holder and classification flattened for the caller.
type CardSnapshot struct {
	CardID         uint   `json:"card_id"`
	CardNumber     string `json:"card_number"`
	PointsBalance  int    `json:"points_balance"`
	Status         string `json:"status"`
	EmployeeID     uint   `json:"employee_id"`
	EmployeeName   string `json:"employee_name"`
	Classification string `json:"classification"`
}

// AssignCardRequest binds a free card to a cardless employee.
type AssignCardRequest struct {
	EmployeeID uint `json:"employee_id" binding:"required" validate:"gt=0"`
}

// CreateCardRequest registers a new card with an opening balance.
type CreateCardRequest struct {
	CardNumber     string `json:"card_number" binding:"required"`
	InitialBalance int    `json:"initial_balance" validate:"gte=0"`
}

// CardResponse is the plain card read model, without holder details.
type CardResponse struct {
	ID            uint   `json:"id"`
	CardNumber    string `json:"card_number"`
	PointsBalance int    `json:"points_balance"`
	Status        string `json:"status"`
}
