package request

import "github.com/alavista-lab/cotizador-api/internal/domain/entity"

// PricingRequest carries the collections the pricing engine recomputes
type PricingRequest struct {
	Items              []entity.LineItem          `json:"items"`
	AdditionalServices []entity.AdditionalService `json:"additional_services"`
}

// ExportRequest carries the full document to render as PDF
type ExportRequest struct {
	Document entity.QuotationDocument `json:"document" binding:"required"`
}

// DraftRequest carries the in-progress document to persist
type DraftRequest struct {
	Document entity.QuotationDocument `json:"document" binding:"required"`
}

// StructureAnalysisRequest asks for a site structure analysis
type StructureAnalysisRequest struct {
	URL         string `json:"url" binding:"required"`
	Sector      string `json:"sector"`
	ServiceType string `json:"service_type"`
	Tier        string `json:"tier"`
}

// ImproveRequirementsRequest asks for requirement text improvement
type ImproveRequirementsRequest struct {
	Requirements string `json:"requirements" binding:"required"`
	Sector       string `json:"sector"`
	ServiceType  string `json:"service_type"`
}

// DurationAnalysisRequest asks for duration contract wording
type DurationAnalysisRequest struct {
	Description string `json:"description" binding:"required"`
}

// ServiceNeedRequest asks for the canned sector and service intro paragraph
type ServiceNeedRequest struct {
	Sector      string `json:"sector" binding:"required"`
	ServiceType string `json:"service_type" binding:"required"`
}
