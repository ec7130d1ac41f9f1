package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/pagination"
	"budgetbook/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// ExpenseRequest represents the request payload for creating or updating an expense.
type ExpenseRequest struct {
	Title    string  `json:"title" binding:"max=255"`
	Date     string  `json:"date" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Category string  `json:"category" binding:"max=100"`
	Note     string  `json:"note" binding:"max=1000"`
}

func (r ExpenseRequest) toInput() (services.ExpenseInput, error) {
	date, err := parseFlexibleTime(r.Date)
	if err != nil {
		return services.ExpenseInput{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return services.ExpenseInput{
		Title:    r.Title,
		Date:     date,
		Amount:   r.Amount,
		Category: r.Category,
		Note:     r.Note,
	}, nil
}

// CreateExpense handles the creation of a new expense
// @Summary     Create an expense
// @Description Record a new expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ExpenseRequest true "Expense details"
// @Success     201 {object} models.Expense "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.CreateExpense(userID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_EXPENSE", "expense", expense.ID, c.ClientIP(),
		map[string]interface{}{"amount": req.Amount, "category": req.Category})

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// GetUserExpenses handles listing the user's expenses
// @Summary     List expenses
// @Description Get a page of the user's expenses with optional filters. The page size is fixed at 10.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page     query int    false "Page number (default 1)"
// @Param       year     query int    false "Filter by year"
// @Param       month    query int    false "Filter by month (1-12)"
// @Param       day      query int    false "Filter by day of month"
// @Param       category query string false "Case-insensitive category substring"
// @Param       q        query string false "Case-insensitive search over title and note"
// @Param       sort     query string false "Sort field: date (default), amount, or created_at"
// @Success     200 {object} pagination.PageResponse[models.Expense] "Paginated expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) GetUserExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query struct {
		pagination.PageRequest
		Sort string `form:"sort" binding:"omitempty,expense_sort"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter := services.ExpenseFilter{
		Year:     intQuery(c, "year"),
		Month:    intQuery(c, "month"),
		Day:      intQuery(c, "day"),
		Category: c.Query("category"),
		Query:    c.Query("q"),
		Sort:     query.Sort,
	}

	result, err := h.expenseService.GetUserExpenses(userID, query.PageRequest, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetExpenseByID handles the retrieval of a specific expense
// @Summary     Get expense by ID
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Success     200 {object} models.Expense "Expense details"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpenseByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpenseByID(userID, expenseID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// UpdateExpense handles updating an existing expense
// @Summary     Update expense
// @Description Replace every mutable field of an existing expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int            true "Expense ID"
// @Param       request body ExpenseRequest true "New field values"
// @Success     200 {object} models.Expense "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.UpdateExpense(userID, expenseID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_EXPENSE", "expense", expenseID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense handles the deletion of an expense
// @Summary     Delete expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Success     200 {object} MessageResponse "Expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(userID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_EXPENSE", "expense", expenseID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
