package handler

import (
	"net/http"

	"github.com/angelolorensi/vending-machine-api/internal/dto"
	"github.com/angelolorensi/vending-machine-api/internal/service"

	"github.com/gin-gonic/gin"
)

type PurchaseHandler struct{ svc service.PurchaseService }

func NewPurchaseHandler(svc service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{svc: svc}
}

// Purchase authorizes and settles a single vend: card verification, slot
// resolution, quota and balance checks, then the ledger write. On success
// the receipt carries the product snapshot and the post-debit balance.
func (h *PurchaseHandler) Purchase(c *gin.Context) {
	var req dto.PurchaseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	receipt, err := h.svc.Purchase(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, receipt)
}
