package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tarang07q/NewsPlus/internal/dto"
	"github.com/tarang07q/NewsPlus/internal/middleware"
	"github.com/tarang07q/NewsPlus/internal/services"
	"github.com/tarang07q/NewsPlus/internal/utils"
)

type AlertHandler struct {
	alerts *services.AlertService
}

func NewAlertHandler(alerts *services.AlertService) *AlertHandler {
	return &AlertHandler{alerts: alerts}
}

// GET /api/v1/alerts
func (h *AlertHandler) List(c *gin.Context) {
	email := c.GetString(middleware.ContextEmail)

	settings, err := h.alerts.Settings(c.Request.Context(), email)
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to retrieve alerts: "+err.Error())
		return
	}

	utils.SuccessResponse(c, settings)
}

// POST /api/v1/alerts
func (h *AlertHandler) Add(c *gin.Context) {
	var req dto.AlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Keyword and a valid alert type are required")
		return
	}

	email := c.GetString(middleware.ContextEmail)
	alert, err := h.alerts.Add(c.Request.Context(), email, req.Keyword, req.Type)
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to create alert")
		return
	}

	utils.CreatedResponse(c, gin.H{"message": "Alert created", "alert": alert})
}

// PATCH /api/v1/alerts/:id — toggles the alert's active flag.
func (h *AlertHandler) Toggle(c *gin.Context) {
	email := c.GetString(middleware.ContextEmail)

	alert, err := h.alerts.Toggle(c.Request.Context(), email, c.Param("id"))
	if errors.Is(err, services.ErrAlertNotFound) {
		utils.ErrorResponse(c, 404, "Alert not found")
		return
	}
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to update alert")
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Alert updated", "alert": alert})
}

// DELETE /api/v1/alerts/:id
func (h *AlertHandler) Remove(c *gin.Context) {
	email := c.GetString(middleware.ContextEmail)

	err := h.alerts.Remove(c.Request.Context(), email, c.Param("id"))
	if errors.Is(err, services.ErrAlertNotFound) {
		utils.ErrorResponse(c, 404, "Alert not found")
		return
	}
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to delete alert")
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Alert deleted"})
}

// PUT /api/v1/alerts/enabled
func (h *AlertHandler) SetEnabled(c *gin.Context) {
	var req dto.AlertsEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Enabled flag is required")
		return
	}

	email := c.GetString(middleware.ContextEmail)
	if err := h.alerts.SetEnabled(c.Request.Context(), email, *req.Enabled); err != nil {
		utils.ErrorResponse(c, 500, "Failed to update alert settings")
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Alert settings updated"})
}
