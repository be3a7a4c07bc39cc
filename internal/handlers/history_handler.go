package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tarang07q/NewsPlus/internal/dto"
	"github.com/tarang07q/NewsPlus/internal/middleware"
	"github.com/tarang07q/NewsPlus/internal/services"
	"github.com/tarang07q/NewsPlus/internal/utils"
)

type HistoryHandler struct {
	history *services.HistoryService
}

func NewHistoryHandler(history *services.HistoryService) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// GET /api/v1/history
func (h *HistoryHandler) List(c *gin.Context) {
	email := c.GetString(middleware.ContextEmail)

	events, err := h.history.List(c.Request.Context(), email)
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to retrieve reading history: "+err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"history": events, "count": len(events)})
}

// POST /api/v1/history — records that the user viewed an article.
func (h *HistoryHandler) Record(c *gin.Context) {
	var req dto.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Article.URL == "" {
		utils.ErrorResponse(c, 400, "Article data is required")
		return
	}

	email := c.GetString(middleware.ContextEmail)
	event, err := h.history.Record(c.Request.Context(), email, req.Article)
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to record article view")
		return
	}

	utils.CreatedResponse(c, gin.H{"message": "Article recorded", "event": event})
}

// DELETE /api/v1/history?url= — removes one article, or clears the whole
// history when no url is given.
func (h *HistoryHandler) Remove(c *gin.Context) {
	email := c.GetString(middleware.ContextEmail)

	if url := c.Query("url"); url != "" {
		if err := h.history.Remove(c.Request.Context(), email, url); err != nil {
			utils.ErrorResponse(c, 500, "Failed to remove article from history")
			return
		}
		utils.SuccessResponse(c, gin.H{"message": "Article removed from reading history"})
		return
	}

	if err := h.history.Clear(c.Request.Context(), email); err != nil {
		utils.ErrorResponse(c, 500, "Failed to clear reading history")
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "Reading history cleared"})
}

// GET /api/v1/history/stats
func (h *HistoryHandler) Stats(c *gin.Context) {
	email := c.GetString(middleware.ContextEmail)

	readingStats, err := h.history.Stats(c.Request.Context(), email)
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to compute reading stats: "+err.Error())
		return
	}

	utils.SuccessResponse(c, readingStats)
}
