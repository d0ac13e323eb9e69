package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/alavista-lab/cotizador-api/internal/application/service"
	"github.com/alavista-lab/cotizador-api/internal/domain/entity"
	"github.com/alavista-lab/cotizador-api/internal/presentation/http/dto/request"
	"github.com/alavista-lab/cotizador-api/internal/presentation/http/dto/response"
)

// QuotationHandler handles quotation document HTTP requests
type QuotationHandler struct {
	quotationService *service.QuotationService
	draftService     *service.DraftService
}

// NewQuotationHandler creates a new quotation handler
func NewQuotationHandler(quotationService *service.QuotationService, draftService *service.DraftService) *QuotationHandler {
	return &QuotationHandler{
		quotationService: quotationService,
		draftService:     draftService,
	}
}

// Defaults returns a fresh document pre-loaded with standard content
func (h *QuotationHandler) Defaults(c *gin.Context) {
	response.OK(c, "Defaults retrieved", gin.H{"document": h.quotationService.Defaults()})
}

// Catalog returns the fixed classification lists
func (h *QuotationHandler) Catalog(c *gin.Context) {
	response.OK(c, "Catalog retrieved", h.quotationService.Catalog())
}

// Pricing recomputes line item, service and aggregate totals
func (h *QuotationHandler) Pricing(c *gin.Context) {
	var req request.PricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	doc := entity.QuotationDocument{
		Items:              req.Items,
		AdditionalServices: req.AdditionalServices,
	}
	summary := h.quotationService.ComputePricing(&doc)

	response.OK(c, "Pricing computed", gin.H{
		"items":               doc.Items,
		"additional_services": doc.AdditionalServices,
		"summary":             summary,
	})
}

// Export renders the document to PDF and streams it as a download
func (h *QuotationHandler) Export(c *gin.Context) {
	var req request.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.quotationService.Export(&req.Document)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, result.FileName))
	c.Data(http.StatusOK, "application/pdf", result.Data)
}

// SaveDraft stores the in-progress document for the authenticated user
func (h *QuotationHandler) SaveDraft(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req request.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.draftService.Save(c.Request.Context(), *userID, &req.Document); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Draft saved", gin.H{"document": req.Document})
}

// GetDraft returns the user's in-progress document
func (h *QuotationHandler) GetDraft(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	doc, err := h.draftService.Get(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Draft retrieved", gin.H{"document": doc})
}

// DeleteDraft discards the user's in-progress document
func (h *QuotationHandler) DeleteDraft(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	if err := h.draftService.Delete(c.Request.Context(), *userID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
