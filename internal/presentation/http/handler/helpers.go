package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/alavista-lab/cotizador-api/internal/domain/entity"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserArea extracts the session area from the Gin context
func GetUserArea(c *gin.Context) string {
	area, exists := c.Get("user_area")
	if !exists {
		return ""
	}
	return area.(string)
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) string {
	role, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	return role.(string)
}

// IsAdmin checks if the authenticated user has the admin role
func IsAdmin(c *gin.Context) bool {
	return GetUserRole(c) == entity.RoleAdmin
}
