package handler

import (
	"net/http"
	"strconv"

	"github.com/angelolorensi/vending-machine-api/internal/apperror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apperror.Envelope("invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apperror.NewValidation(fields))
		return false
	}
	return true
}

// pathID parses a numeric :id path parameter. Writes the 400 response
// itself when the parameter is not a positive integer.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apperror.Envelope("invalid "+name))
		return 0, false
	}
	return uint(id), true
}

// respondError maps a service error to its HTTP status and writes the
// wire envelope. The mapping is the single place where error kinds and
// status codes meet.
func respondError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch apperror.KindOf(err) {
	case apperror.KindNotFound:
		status = http.StatusNotFound
	case apperror.KindBlocked, apperror.KindNotActive, apperror.KindUnassigned:
		status = http.StatusForbidden
	case apperror.KindInsufficientPoints:
		status = http.StatusPaymentRequired
	case apperror.KindDailyLimitExceeded:
		status = http.StatusUnprocessableEntity
	case apperror.KindConflict:
		status = http.StatusConflict
	case apperror.KindStorage:
		status = http.StatusInternalServerError
	}
	c.JSON(status, apperror.EnvelopeFor(err))
}
