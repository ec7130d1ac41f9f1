package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/models"
	"budgetbook/internal/services"
)

// PlanHandler handles plan-related requests.
type PlanHandler struct {
	planService  services.PlanServicer
	auditService services.AuditServicer
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService services.PlanServicer, auditService services.AuditServicer) *PlanHandler {
	return &PlanHandler{planService: planService, auditService: auditService}
}

// PlanRequest represents the request payload for creating or updating a plan.
type PlanRequest struct {
	Title          string  `json:"title" binding:"required,max=255"`
	PlannedExpense float64 `json:"planned_expense" binding:"gte=0"`
	ActualExpense  float64 `json:"actual_expense" binding:"gte=0"`
	Day            *int    `json:"day" binding:"omitempty,min=1,max=31"`
	Month          *int    `json:"month" binding:"omitempty,calendar_month"`
	Year           *int    `json:"year" binding:"omitempty,min=1"`
	Category       string  `json:"category" binding:"max=100"`
	Notes          string  `json:"notes" binding:"max=1000"`
}

func (r PlanRequest) toInput() services.PlanInput {
	return services.PlanInput{
		Title:          r.Title,
		PlannedExpense: r.PlannedExpense,
		ActualExpense:  r.ActualExpense,
		Day:            r.Day,
		Month:          r.Month,
		Year:           r.Year,
		Category:       r.Category,
		Notes:          r.Notes,
	}
}

// CreatePlan handles the creation of a new plan
// @Summary     Create a plan
// @Description Create a new planned expense record
// @Tags        plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body PlanRequest true "Plan details"
// @Success     201 {object} models.Plan "Plan created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	plan, err := h.planService.CreatePlan(userID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_PLAN", "plan", plan.ID, c.ClientIP(),
		map[string]interface{}{"title": req.Title, "planned_expense": req.PlannedExpense})

	c.JSON(http.StatusCreated, gin.H{"plan": plan})
}

// GetUserPlans handles listing the user's plans
// @Summary     List plans
// @Description Get the user's plans, newest first, optionally filtered by category
// @Tags        plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       category query string false "Case-insensitive category substring"
// @Success     200 {array} models.Plan "Plans"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans [get]
func (h *PlanHandler) GetUserPlans(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	plans, err := h.planService.GetUserPlans(userID, c.Query("category"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// FindByDate handles the day/month/year finder
// @Summary     Find plans by date
// @Description Find plans matching an exact day, month, and year
// @Tags        plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       day   query int false "Day of month"
// @Param       month query int false "Month (1-12)"
// @Param       year  query int false "Year"
// @Success     200 {array} models.Plan "Matching plans"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans/find_by_date [get]
func (h *PlanHandler) FindByDate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// Non-numeric values are ignored rather than rejected.
	filter := services.PlanFilter{
		Day:   intQuery(c, "day"),
		Month: intQuery(c, "month"),
		Year:  intQuery(c, "year"),
	}

	plans, err := h.planService.FindPlans(userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// FindByMonthYear handles the month/year finder
// @Summary     Find plans by month and year
// @Tags        plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query int false "Month (1-12)"
// @Param       year  query int false "Year"
// @Success     200 {array} models.Plan "Matching plans"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans/find_by_month_year [get]
func (h *PlanHandler) FindByMonthYear(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter := services.PlanFilter{
		Month: intQuery(c, "month"),
		Year:  intQuery(c, "year"),
	}

	plans, err := h.planService.FindPlans(userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// FindByYear handles the year finder
// @Summary     Find plans by year
// @Tags        plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       year query int false "Year"
// @Success     200 {array} models.Plan "Matching plans"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans/find_by_year [get]
func (h *PlanHandler) FindByYear(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter := services.PlanFilter{Year: intQuery(c, "year")}

	plans, err := h.planService.FindPlans(userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// FindByCategory handles the category finder
// @Summary     Find plans by category
// @Tags        plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       category query string false "Case-insensitive category substring"
// @Success     200 {array} models.Plan "Matching plans"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans/find_by_category [get]
func (h *PlanHandler) FindByCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// A missing or blank category matches nothing.
	category := strings.TrimSpace(c.Query("category"))
	if category == "" {
		c.JSON(http.StatusOK, gin.H{"plans": []models.Plan{}})
		return
	}

	plans, err := h.planService.FindPlans(userID, services.PlanFilter{Category: category})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// GetPlanByID handles the retrieval of a specific plan
// @Summary     Get plan by ID
// @Tags        plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Plan ID"
// @Success     200 {object} models.Plan "Plan details"
// @Failure     400 {object} ErrorResponse "Invalid plan ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Plan not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans/{id} [get]
func (h *PlanHandler) GetPlanByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	planID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	plan, err := h.planService.GetPlanByID(userID, planID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

// UpdatePlan handles updating an existing plan
// @Summary     Update plan
// @Description Replace every mutable field of an existing plan
// @Tags        plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int         true "Plan ID"
// @Param       request body PlanRequest true "New field values"
// @Success     200 {object} models.Plan "Updated plan"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Plan not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans/{id} [put]
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	planID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	plan, err := h.planService.UpdatePlan(userID, planID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_PLAN", "plan", planID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

// DeletePlan handles the deletion of a plan
// @Summary     Delete plan
// @Tags        plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Plan ID"
// @Success     200 {object} MessageResponse "Plan deleted"
// @Failure     400 {object} ErrorResponse "Invalid plan ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Plan not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans/{id} [delete]
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	planID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.planService.DeletePlan(userID, planID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_PLAN", "plan", planID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Plan deleted successfully"})
}
