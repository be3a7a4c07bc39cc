package dto

import "github.com/tarang07q/NewsPlus/internal/models"

type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    models.User `json:"user"`
}

type BookmarkResponse struct {
	Message  string          `json:"message"`
	Bookmark models.Bookmark `json:"bookmark"`
}

type LikeResponse struct {
	Message string      `json:"message"`
	Like    models.Like `json:"like"`
}
