package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/services"
)

// SettingsHandler handles account settings requests.
type SettingsHandler struct {
	settingsService services.SettingsServicer
	userService     services.UserServicer
	auditService    services.AuditServicer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService services.SettingsServicer, userService services.UserServicer, auditService services.AuditServicer) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, userService: userService, auditService: auditService}
}

// ClearHistoryRequest carries the confirmation text for wiping history.
type ClearHistoryRequest struct {
	Confirmation string `json:"confirmation" binding:"required"`
}

// SettingsResponse pairs the user's profile with their record counts.
type SettingsResponse struct {
	User     UserResponse              `json:"user"`
	Overview services.SettingsOverview `json:"overview"`
}

// GetSettings returns the user's profile and record counts
// @Summary     Get settings
// @Description Get the authenticated user's profile together with per-collection record counts
// @Tags        settings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} SettingsResponse "Profile and counts"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	overview, err := h.settingsService.Overview(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":     userJSON(user),
		"overview": overview,
	})
}

// ClearHistory wipes the user's plans, expenses, and budgets
// @Summary     Clear history
// @Description Delete every plan, expense, and monthly budget owned by the user. Requires the confirmation text DELETE.
// @Tags        settings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ClearHistoryRequest true "Confirmation"
// @Success     200 {object} MessageResponse "History cleared"
// @Failure     400 {object} ErrorResponse "Missing or mismatched confirmation"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings/clear_history [post]
func (h *SettingsHandler) ClearHistory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ClearHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.settingsService.ClearHistory(userID, req.Confirmation); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CLEAR_HISTORY", "user", userID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "History cleared successfully"})
}
