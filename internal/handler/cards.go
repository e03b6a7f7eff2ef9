package handler

import (
	"net/http"

	"github.com/angelolorensi/vending-machine-api/internal/dto"
	"github.com/angelolorensi/vending-machine-api/internal/model"
	"github.com/angelolorensi/vending-machine-api/internal/service"

	"github.com/gin-gonic/gin"
)

type CardsHandler struct{ svc service.CardService }

func NewCardsHandler(svc service.CardService) *CardsHandler { return &CardsHandler{svc: svc} }

// Verify runs the full card verification chain and returns the holder
// snapshot. Vending terminals call this before showing the balance.
func (h *CardsHandler) Verify(c *gin.Context) {
	snap, err := h.svc.Snapshot(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *CardsHandler) Create(c *gin.Context) {
	var req dto.CreateCardRequest
	if !bindAndValidate(c, &req) {
		return
	}
	card, err := h.svc.CreateCard(c.Request.Context(), req.CardNumber, req.InitialBalance)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cardToResponse(card))
}

func (h *CardsHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	card, err := h.svc.GetCard(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cardToResponse(card))
}

// Assign binds the card to an employee. Both sides must be free: a held
// card cannot be reassigned and an employee cannot hold two cards.
func (h *CardsHandler) Assign(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.AssignCardRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.AssignCard(c.Request.Context(), id, req.EmployeeID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CardsHandler) Unassign(c *gin.Context) {
	id, ok := pathID(c, "employee_id")
	if !ok {
		return
	}
	if err := h.svc.UnassignCard(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func cardToResponse(card *model.Card) dto.CardResponse {
	return dto.CardResponse{
		ID:            card.ID,
		CardNumber:    card.CardNumber,
		PointsBalance: card.PointsBalance,
		Status:        string(card.Status),
	}
}
