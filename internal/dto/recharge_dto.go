package dto

// RechargeSummary reports the outcome of one daily recharge run.
type RechargeSummary struct {
	Date      string `json:"date"`
	Employees int    `json:"employees_recharged"`
	Points    int    `json:"points_recharged"`
	// Skipped is true when the run did nothing: non-business day, or the
	// per-day guard found an earlier run for the same date.
	Skipped bool   `json:"skipped"`
	Reason  string `json:"reason,omitempty"`
}
