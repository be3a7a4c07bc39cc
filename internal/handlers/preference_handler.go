package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tarang07q/NewsPlus/internal/middleware"
	"github.com/tarang07q/NewsPlus/internal/models"
	"github.com/tarang07q/NewsPlus/internal/services"
	"github.com/tarang07q/NewsPlus/internal/utils"
)

type PreferenceHandler struct {
	preferences *services.PreferenceService
}

func NewPreferenceHandler(preferences *services.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferences: preferences}
}

// GET /api/v1/preferences
func (h *PreferenceHandler) Get(c *gin.Context) {
	email := c.GetString(middleware.ContextEmail)

	prefs, err := h.preferences.Get(c.Request.Context(), email)
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to retrieve preferences: "+err.Error())
		return
	}

	utils.SuccessResponse(c, prefs)
}

// PUT /api/v1/preferences — full replacement, matching the original
// client's save-the-whole-object behavior.
func (h *PreferenceHandler) Update(c *gin.Context) {
	var prefs models.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		utils.ErrorResponse(c, 400, "Invalid preferences payload")
		return
	}

	email := c.GetString(middleware.ContextEmail)
	if err := h.preferences.Update(c.Request.Context(), email, prefs); err != nil {
		utils.ErrorResponse(c, 500, "Failed to save preferences")
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Preferences updated successfully", "preferences": prefs})
}
