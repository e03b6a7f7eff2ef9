package dto

// TransactionFilter selects transactions for listing. Date uses
// YYYY-MM-DD in the business timezone; empty means today.
type TransactionFilter struct {
	EmployeeID uint   `form:"employee_id"`
	Date       string `form:"date"`
	Status     string `form:"status"`
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
}

// TransactionResponse is the ledger read model.
type TransactionResponse struct {
	ID              uint   `json:"id"`
	Reference       string `json:"reference"`
	EmployeeID      uint   `json:"employee_id"`
	EmployeeName    string `json:"employee_name,omitempty"`
	CardID          uint   `json:"card_id"`
	MachineID       uint   `json:"machine_id"`
	SlotID          uint   `json:"slot_id"`
	ProductID       uint   `json:"product_id"`
	ProductName     string `json:"product_name,omitempty"`
	PointsDeducted  int    `json:"points_deducted"`
	TransactionTime string `json:"transaction_time"`
	Status          string `json:"status"`
	FailureReason   string `json:"failure_reason,omitempty"`
}

// TransactionListResponse is a paginated transaction listing.
type TransactionListResponse struct {
	Data  []TransactionResponse `json:"data"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}
