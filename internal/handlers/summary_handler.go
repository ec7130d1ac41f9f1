package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetbook/internal/services"
)

// SummaryHandler handles the aggregate spending views.
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// GetBudgetSummary handles the spending-vs-budget view for a period
// @Summary     Budget summary
// @Description Get total spending for a period against its budget. Budget and remaining are null when no budget is set.
// @Tags        summary
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month path int true "Month (1-12)"
// @Param       year  path int true "Year"
// @Success     200 {object} services.BudgetSummary "Spending against budget"
// @Failure     400 {object} ErrorResponse "Invalid month or year"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary/budget/{month}/{year} [get]
func (h *SummaryHandler) GetBudgetSummary(c *gin.Context) {
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

	summary, err := h.summaryService.BudgetSummary(userID, month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetCategoryBreakdown handles the per-category spending view
// @Summary     Category breakdown
// @Description Get per-category spending for a period. Category case variants are merged; expenses without a category appear as Uncategorized.
// @Tags        summary
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month path int true "Month (1-12)"
// @Param       year  path int true "Year"
// @Success     200 {array} services.CategorySpend "Per-category spending, highest first"
// @Failure     400 {object} ErrorResponse "Invalid month or year"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary/categories/{month}/{year} [get]
func (h *SummaryHandler) GetCategoryBreakdown(c *gin.Context) {
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

	breakdown, err := h.summaryService.CategoryBreakdown(userID, month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": breakdown})
}

// GetDailyTotals handles the per-day spending view
// @Summary     Daily totals
// @Description Get daily spending totals for the 30-day window starting at the first of the month
// @Tags        summary
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month path int true "Month (1-12)"
// @Param       year  path int true "Year"
// @Success     200 {array} services.DailyTotal "30 daily totals"
// @Failure     400 {object} ErrorResponse "Invalid month or year"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary/daily/{month}/{year} [get]
func (h *SummaryHandler) GetDailyTotals(c *gin.Context) {
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

	totals, err := h.summaryService.DailyTotals(userID, month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"daily": totals})
}
