package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/alavista-lab/cotizador-api/internal/application/service"
	"github.com/alavista-lab/cotizador-api/internal/domain/enum"
	"github.com/alavista-lab/cotizador-api/internal/domain/repository"
	"github.com/alavista-lab/cotizador-api/internal/presentation/http/dto/request"
	"github.com/alavista-lab/cotizador-api/internal/presentation/http/dto/response"
	"github.com/alavista-lab/cotizador-api/pkg/pagination"
	"github.com/alavista-lab/cotizador-api/pkg/utils"
)

// OperationHandler handles persisted operation HTTP requests
type OperationHandler struct {
	operationService *service.OperationService
}

// NewOperationHandler creates a new operation handler
func NewOperationHandler(operationService *service.OperationService) *OperationHandler {
	return &OperationHandler{operationService: operationService}
}

// Create persists a new operation owned by the authenticated user
func (h *OperationHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req request.SaveOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	operation, err := h.operationService.Create(c.Request.Context(), *userID, GetUserArea(c), &service.OperationInput{
		Name:     req.Name,
		Date:     req.Date,
		Document: req.Document,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Operation created successfully", operation)
}

// List returns operations newest first, filtered and paginated
func (h *OperationHandler) List(c *gin.Context) {
	var req request.ListOperationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	// "todas" is the dashboard's all-areas sentinel
	area := req.Area
	if area == "todas" {
		area = ""
	}
	filter := repository.OperationFilter{
		Area:   area,
		Search: req.Search,
	}
	if req.Status != "" {
		status, ok := enum.ParseOperationStatus(req.Status)
		if !ok {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		filter.Status = &status
	}

	params := &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage}
	result, err := h.operationService.List(c.Request.Context(), params, filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Operations retrieved successfully", result)
}

// GetByID returns a single operation
func (h *OperationHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid operation ID")
		return
	}

	operation, err := h.operationService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Operation retrieved successfully", operation)
}

// Update overwrites an operation's name, date and document snapshot
func (h *OperationHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid operation ID")
		return
	}

	var req request.SaveOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	operation, err := h.operationService.Update(c.Request.Context(), id, *userID, IsAdmin(c), &service.OperationInput{
		Name:     req.Name,
		Date:     req.Date,
		Document: req.Document,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Operation updated successfully", operation)
}

// UpdateStatus moves an operation through review
func (h *OperationHandler) UpdateStatus(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid operation ID")
		return
	}

	var req request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	operation, err := h.operationService.UpdateStatus(c.Request.Context(), id, req.Status, IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Operation status updated successfully", operation)
}

// Delete removes an operation
func (h *OperationHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid operation ID")
		return
	}

	if err := h.operationService.Delete(c.Request.Context(), id, IsAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Operation deleted successfully", nil)
}
