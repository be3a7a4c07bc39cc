package dto

import "github.com/tarang07q/NewsPlus/internal/models"

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ArticleRequest carries the article payload for bookmark/like/history
// writes. Only the URL is strictly required for identity.
type ArticleRequest struct {
	Article models.Article `json:"article" binding:"required"`
}

type AlertRequest struct {
	Keyword string `json:"keyword" binding:"required"`
	Type    string `json:"type" binding:"required,oneof=keyword source author"`
}

type AlertsEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}
