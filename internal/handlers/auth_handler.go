package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tarang07q/NewsPlus/internal/dto"
	"github.com/tarang07q/NewsPlus/internal/services"
	"github.com/tarang07q/NewsPlus/internal/utils"
)

type AuthHandler struct {
	users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	// 1. Parse and validate request
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Missing required fields")
		return
	}

	// 2. Call service layer
	_, err := h.users.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if errors.Is(err, services.ErrValidation) {
		utils.ErrorResponse(c, 400, validationMessage(err))
		return
	}
	if errors.Is(err, services.ErrUserExists) {
		utils.ErrorResponse(c, 409, err.Error())
		return
	}
	if err != nil {
		utils.ErrorResponse(c, 500, "An error occurred during registration")
		return
	}

	// 3. Return success response
	utils.CreatedResponse(c, gin.H{"message": "User registered successfully"})
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Missing required fields")
		return
	}

	session, user, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		utils.ErrorResponse(c, 401, err.Error())
		return
	}
	if err != nil {
		utils.ErrorResponse(c, 500, "An error occurred during login")
		return
	}

	utils.SuccessResponse(c, dto.LoginResponse{
		Message: "Logged in successfully",
		Token:   session.Token,
		User:    *user,
	})
}

// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, _ := strings.CutPrefix(header, "Bearer ")

	if err := h.users.Logout(c.Request.Context(), token); err != nil {
		utils.ErrorResponse(c, 500, "Failed to log out: "+err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Logged out successfully"})
}

// validationMessage strips the ErrValidation sentinel from a joined error,
// leaving the user-facing detail.
func validationMessage(err error) string {
	msg := err.Error()
	msg = strings.ReplaceAll(msg, services.ErrValidation.Error(), "")
	msg = strings.TrimSpace(strings.Trim(msg, "\n"))
	if msg == "" {
		return "Invalid input"
	}
	return msg
}
