package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/services"
)

// BudgetHandler handles monthly budget requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// BudgetRequest represents the request payload for setting a monthly budget.
type BudgetRequest struct {
	Budget float64 `json:"budget" binding:"required,gt=0"`
	Month  int     `json:"month" binding:"required,calendar_month"`
	Year   int     `json:"year" binding:"required,min=1"`
	Notes  string  `json:"notes" binding:"max=1000"`
}

// SetMonthlyBudget handles creating or replacing the budget for a period
// @Summary     Set monthly budget
// @Description Set the budget for a month/year period. An existing budget for the same period is replaced.
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body BudgetRequest true "Budget details"
// @Success     201 {object} models.MonthlyBudget "Budget created"
// @Success     200 {object} models.MonthlyBudget "Existing budget replaced"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [post]
func (h *BudgetHandler) SetMonthlyBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, replaced, err := h.budgetService.SetMonthlyBudget(userID, req.Budget, req.Month, req.Year, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SET_BUDGET", "monthly_budget", budget.ID, c.ClientIP(),
		map[string]interface{}{"budget": req.Budget, "month": req.Month, "year": req.Year, "replaced": replaced})

	status := http.StatusCreated
	if replaced {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{"budget": budget, "replaced": replaced})
}

// GetUserBudgets handles listing the user's budgets
// @Summary     List budgets
// @Description Get the user's monthly budgets, most recent period first
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.MonthlyBudget "Budgets"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) GetUserBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgets, err := h.budgetService.GetUserBudgets(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}

// GetBudgetStatus handles the period lookup with spending
// @Summary     Look up budget for a period
// @Description Get the budget for a month/year period together with spent and remaining amounts
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month path int true "Month (1-12)"
// @Param       year  path int true "Year"
// @Success     200 {object} services.BudgetStatus "Budget with spending"
// @Failure     400 {object} ErrorResponse "Invalid month or year"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No budget for the period"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/lookup/{month}/{year} [get]
func (h *BudgetHandler) GetBudgetStatus(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month, year, err := parsePeriod(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	status, err := h.budgetService.GetBudgetStatus(userID, month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": status})
}

// UpdateBudget handles updating an existing budget
// @Summary     Update budget
// @Description Replace the fields of an existing monthly budget
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int           true "Budget ID"
// @Param       request body BudgetRequest true "New field values"
// @Success     200 {object} models.MonthlyBudget "Updated budget"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.budgetService.UpdateBudget(userID, budgetID, req.Budget, req.Month, req.Year, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_BUDGET", "monthly_budget", budgetID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// DeleteBudget handles the deletion of a budget
// @Summary     Delete budget
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Budget ID"
// @Success     200 {object} MessageResponse "Budget deleted"
// @Failure     400 {object} ErrorResponse "Invalid budget ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.DeleteBudget(userID, budgetID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_BUDGET", "monthly_budget", budgetID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted successfully"})
}
