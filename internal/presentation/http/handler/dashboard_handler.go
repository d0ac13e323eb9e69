package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/alavista-lab/cotizador-api/internal/application/service"
	"github.com/alavista-lab/cotizador-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard statistics requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats returns aggregate operation counts and the latest saved operations
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard statistics retrieved", stats)
}
