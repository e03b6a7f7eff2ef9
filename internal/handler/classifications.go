package handler

import (
	"net/http"

	"github.com/angelolorensi/vending-machine-api/internal/service"

	"github.com/gin-gonic/gin"
)

type ClassificationsHandler struct{ svc service.ClassificationService }

func NewClassificationsHandler(svc service.ClassificationService) *ClassificationsHandler {
	return &ClassificationsHandler{svc: svc}
}

func (h *ClassificationsHandler) List(c *gin.Context) {
	classifications, err := h.svc.ListClassifications(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, classifications)
}

func (h *ClassificationsHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	classification, err := h.svc.GetClassification(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, classification)
}
