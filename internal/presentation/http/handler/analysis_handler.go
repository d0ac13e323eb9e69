package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/alavista-lab/cotizador-api/internal/application/service"
	"github.com/alavista-lab/cotizador-api/internal/presentation/http/dto/request"
	"github.com/alavista-lab/cotizador-api/internal/presentation/http/dto/response"
)

// AnalysisHandler handles text enrichment HTTP requests. These endpoints
// never fail outright: remote errors degrade to locally generated text.
type AnalysisHandler struct {
	enrichmentService *service.EnrichmentService
	quotationService  *service.QuotationService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(enrichmentService *service.EnrichmentService, quotationService *service.QuotationService) *AnalysisHandler {
	return &AnalysisHandler{
		enrichmentService: enrichmentService,
		quotationService:  quotationService,
	}
}

// Structure requests a site structure analysis
func (h *AnalysisHandler) Structure(c *gin.Context) {
	var req request.StructureAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result := h.enrichmentService.AnalyzeStructure(c.Request.Context(), req.URL, req.Sector, req.ServiceType, req.Tier)

	response.OK(c, "Analysis completed", gin.H{
		"success":       result.Success,
		"analysis_text": result.AnalysisText,
	})
}

// Requirements improves requirement wording
func (h *AnalysisHandler) Requirements(c *gin.Context) {
	var req request.ImproveRequirementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	improved := h.enrichmentService.ImproveRequirements(c.Request.Context(), req.Requirements, req.Sector, req.ServiceType)

	response.OK(c, "Requirements improved", gin.H{"improved_text": improved})
}

// Duration expands a duration description into contract wording
func (h *AnalysisHandler) Duration(c *gin.Context) {
	var req request.DurationAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	text := h.enrichmentService.AnalyzeDuration(c.Request.Context(), req.Description)

	response.OK(c, "Duration analyzed", gin.H{"duration_text": text})
}

// ServiceNeed returns the canned intro paragraph for a sector and service
func (h *AnalysisHandler) ServiceNeed(c *gin.Context) {
	var req request.ServiceNeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	text := h.quotationService.ServiceNeed(req.Sector, req.ServiceType)

	response.OK(c, "Service need generated", gin.H{"service_need": text})
}
