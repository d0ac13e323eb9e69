package service

import (
	"fmt"
	"time"

	"github.com/alavista-lab/cotizador-api/internal/domain/catalog"
	"github.com/alavista-lab/cotizador-api/internal/domain/entity"
	"github.com/alavista-lab/cotizador-api/internal/domain/pricing"
	"github.com/alavista-lab/cotizador-api/pkg/pdf"
)

// QuotationService builds quotation documents, recomputes their pricing and
// renders the downloadable PDF.
type QuotationService struct {
	renderer *pdf.Renderer
	now      func() time.Time
}

// NewQuotationService creates a new quotation service
func NewQuotationService(renderer *pdf.Renderer) *QuotationService {
	return &QuotationService{
		renderer: renderer,
		now:      time.Now,
	}
}

// Defaults returns a fresh document pre-loaded with the standard feature
// paragraphs, proposal rows and the default project duration.
func (s *QuotationService) Defaults() *entity.QuotationDocument {
	doc := &entity.QuotationDocument{
		Date:            s.now().Format("2006-01-02"),
		ProjectDuration: catalog.DefaultProjectDuration,
	}

	for i, content := range catalog.DefaultFeatures {
		doc.Features = append(doc.Features, entity.Feature{
			ID:      fmt.Sprintf("caracteristica-%d", i+1),
			Content: content,
		})
	}

	for i, description := range catalog.DefaultProposalItems {
		doc.Items = append(doc.Items, entity.LineItem{
			ID:          fmt.Sprintf("item-%d", i+1),
			Description: description,
		})
	}

	return doc
}

// Catalog groups the fixed classification lists the editing UI needs.
type Catalog struct {
	Sectors      []string `json:"sectors"`
	ServiceTypes []string `json:"service_types"`
	Tiers        []string `json:"tiers"`
	CRMOptions   []string `json:"crm_options"`
	Areas        []string `json:"areas"`
}

// Catalog returns the classification lists
func (s *QuotationService) Catalog() Catalog {
	return Catalog{
		Sectors:      catalog.Sectors,
		ServiceTypes: catalog.ServiceTypes,
		Tiers:        catalog.Tiers,
		CRMOptions:   catalog.CRMOptions,
		Areas:        catalog.Areas,
	}
}

// ComputePricing recomputes every line item, additional service and the
// aggregate totals in place and returns the summary.
func (s *QuotationService) ComputePricing(doc *entity.QuotationDocument) pricing.Summary {
	return doc.Recompute()
}

// ServiceNeed returns the canned service-need paragraph for a sector and
// service type combination.
func (s *QuotationService) ServiceNeed(sector, serviceType string) string {
	return catalog.ServiceNeedText(sector, serviceType)
}

// ExportResult is a rendered PDF plus its download name.
type ExportResult struct {
	FileName string
	Data     []byte
}

// Export renders the document to PDF. Totals are recomputed from the raw
// amounts first so a stale payload cannot ship wrong numbers.
func (s *QuotationService) Export(doc *entity.QuotationDocument) (*ExportResult, error) {
	doc.Recompute()

	data, err := s.renderer.Render(doc)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		FileName: pdf.FileName(doc.CompanyName, s.renderer.Now()),
		Data:     data,
	}, nil
}
