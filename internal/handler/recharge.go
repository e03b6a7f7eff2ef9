package handler

import (
	"net/http"
	"time"

	"github.com/angelolorensi/vending-machine-api/internal/service"

	"github.com/gin-gonic/gin"
)

type RechargeHandler struct {
	svc service.RechargeService
	loc *time.Location
}

func NewRechargeHandler(svc service.RechargeService, loc *time.Location) *RechargeHandler {
	return &RechargeHandler{svc: svc, loc: loc}
}

// Run triggers the daily recharge for today. The per-day guard makes the
// endpoint idempotent, so a manual trigger after the scheduled run is a
// harmless no-op.
func (h *RechargeHandler) Run(c *gin.Context) {
	summary, err := h.svc.RunDailyRecharge(c.Request.Context(), time.Now().In(h.loc))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
