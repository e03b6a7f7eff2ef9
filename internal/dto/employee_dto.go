package dto

// CreateEmployeeRequest registers a new employee under a classification.
// Employees start active and cardless; a card is bound separately.
type CreateEmployeeRequest struct {
	Name             string `json:"name" binding:"required"`
	ClassificationID uint   `json:"classification_id" binding:"required" validate:"gt=0"`
}
