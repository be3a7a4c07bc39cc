package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tarang07q/NewsPlus/internal/dto"
	"github.com/tarang07q/NewsPlus/internal/middleware"
	"github.com/tarang07q/NewsPlus/internal/services"
	"github.com/tarang07q/NewsPlus/internal/utils"
)

type LikeHandler struct {
	likes *services.LikeService
}

func NewLikeHandler(likes *services.LikeService) *LikeHandler {
	return &LikeHandler{likes: likes}
}

// GET /api/v1/likes
func (h *LikeHandler) List(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	likes, err := h.likes.List(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to retrieve likes: "+err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"likes": likes, "count": len(likes)})
}

// POST /api/v1/likes
func (h *LikeHandler) Add(c *gin.Context) {
	var req dto.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Article.URL == "" {
		utils.ErrorResponse(c, 400, "Article data is required")
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	like, created, err := h.likes.Add(c.Request.Context(), userID, req.Article)
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to like article")
		return
	}

	if !created {
		utils.SuccessResponse(c, dto.LikeResponse{Message: "Article already liked", Like: *like})
		return
	}
	utils.CreatedResponse(c, dto.LikeResponse{Message: "Article liked successfully", Like: *like})
}

// DELETE /api/v1/likes
func (h *LikeHandler) Remove(c *gin.Context) {
	var req dto.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Article.URL == "" {
		utils.ErrorResponse(c, 400, "Article URL is required")
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	if err := h.likes.Remove(c.Request.Context(), userID, req.Article.URL); err != nil {
		utils.ErrorResponse(c, 500, "Failed to remove like")
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Like removed successfully"})
}
