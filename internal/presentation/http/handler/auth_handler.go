package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/alavista-lab/cotizador-api/internal/application/service"
	"github.com/alavista-lab/cotizador-api/internal/presentation/http/dto/request"
	"github.com/alavista-lab/cotizador-api/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles user login
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Username: req.Username,
		Password: req.Password,
		Area:     req.Area,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"user": gin.H{
			"id":       output.User.ID,
			"name":     output.User.Name,
			"username": output.User.Username,
			"role":     output.User.Role,
		},
		"area":          output.Area,
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"token_type":    "Bearer",
	})
}

// RefreshToken handles token refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Token refreshed", gin.H{
		"area":          output.Area,
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"token_type":    "Bearer",
	})
}

// Validate confirms the presented token is still valid
func (h *AuthHandler) Validate(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	response.OK(c, "Token is valid", gin.H{
		"valid":   true,
		"user_id": userID,
		"role":    GetUserRole(c),
		"area":    GetUserArea(c),
	})
}

// Profile returns the authenticated user's record
func (h *AuthHandler) Profile(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	user, err := h.authService.GetProfile(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile retrieved", gin.H{
		"id":       user.ID,
		"name":     user.Name,
		"username": user.Username,
		"role":     user.Role,
		"area":     GetUserArea(c),
	})
}

// Areas lists the areas available at login
func (h *AuthHandler) Areas(c *gin.Context) {
	response.OK(c, "Areas retrieved", gin.H{"areas": h.authService.Areas()})
}
