package handler

import (
	"net/http"
	"time"

	"github.com/angelolorensi/vending-machine-api/internal/apperror"
	"github.com/angelolorensi/vending-machine-api/internal/dto"
	"github.com/angelolorensi/vending-machine-api/internal/service"

	"github.com/gin-gonic/gin"
)

type EmployeesHandler struct {
	svc          service.EmployeeService
	transactions service.TransactionService
	loc          *time.Location
}

func NewEmployeesHandler(svc service.EmployeeService, transactions service.TransactionService, loc *time.Location) *EmployeesHandler {
	return &EmployeesHandler{svc: svc, transactions: transactions, loc: loc}
}

func (h *EmployeesHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	employee, err := h.svc.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (h *EmployeesHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "employee_id")
	if !ok {
		return
	}
	employee, err := h.svc.GetEmployee(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// DailyTransactions lists the employee's completed transactions on one
// calendar day, defaulting to today in the business timezone. This is
// the same window the quota engine counts.
func (h *EmployeesHandler) DailyTransactions(c *gin.Context) {
	id, ok := pathID(c, "employee_id")
	if !ok {
		return
	}
	day := time.Now().In(h.loc)
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, h.loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, apperror.Envelope("invalid date, expected YYYY-MM-DD"))
			return
		}
		day = parsed
	}
	items, err := h.transactions.EmployeeDailyTransactions(c.Request.Context(), id, day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
