package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tarang07q/NewsPlus/internal/dto"
	"github.com/tarang07q/NewsPlus/internal/middleware"
	"github.com/tarang07q/NewsPlus/internal/services"
	"github.com/tarang07q/NewsPlus/internal/utils"
)

type BookmarkHandler struct {
	bookmarks *services.BookmarkService
}

func NewBookmarkHandler(bookmarks *services.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarks: bookmarks}
}

// GET /api/v1/bookmarks
func (h *BookmarkHandler) List(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	bookmarks, err := h.bookmarks.List(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to retrieve bookmarks: "+err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"bookmarks": bookmarks, "count": len(bookmarks)})
}

// POST /api/v1/bookmarks
//
// Adding an already-bookmarked article returns the existing bookmark
// rather than creating a duplicate.
func (h *BookmarkHandler) Add(c *gin.Context) {
	// 1. Parse and validate request
	var req dto.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Article.URL == "" {
		utils.ErrorResponse(c, 400, "Article data is required")
		return
	}

	// 2. Call service layer
	userID := c.GetString(middleware.ContextUserID)
	bookmark, created, err := h.bookmarks.Add(c.Request.Context(), userID, req.Article)
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to bookmark article")
		return
	}

	// 3. Return success response
	if !created {
		utils.SuccessResponse(c, dto.BookmarkResponse{Message: "Article already bookmarked", Bookmark: *bookmark})
		return
	}
	utils.CreatedResponse(c, dto.BookmarkResponse{Message: "Article bookmarked successfully", Bookmark: *bookmark})
}

// DELETE /api/v1/bookmarks
func (h *BookmarkHandler) Remove(c *gin.Context) {
	var req dto.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Article.URL == "" {
		utils.ErrorResponse(c, 400, "Article URL is required")
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	if err := h.bookmarks.Remove(c.Request.Context(), userID, req.Article.URL); err != nil {
		utils.ErrorResponse(c, 500, "Failed to remove bookmark")
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Bookmark removed successfully"})
}
