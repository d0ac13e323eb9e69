package service

import (
	"context"

	"github.com/alavista-lab/cotizador-api/pkg/analyzer"
	"github.com/alavista-lab/cotizador-api/pkg/textgen"
)

// EnrichmentService fronts the external analysis and text generation
// services. Every operation resolves to usable text even when the remote
// side is down or unconfigured.
type EnrichmentService struct {
	analyzer *analyzer.Client
	textgen  *textgen.Client
}

// NewEnrichmentService creates a new enrichment service
func NewEnrichmentService(analyzerClient *analyzer.Client, textgenClient *textgen.Client) *EnrichmentService {
	return &EnrichmentService{
		analyzer: analyzerClient,
		textgen:  textgenClient,
	}
}

// AnalyzeStructure requests a site structure analysis for the quoted context
func (s *EnrichmentService) AnalyzeStructure(ctx context.Context, url, sector, serviceType, tier string) analyzer.AnalysisResult {
	return s.analyzer.AnalyzeStructure(ctx, analyzer.AnalysisRequest{
		URL:         url,
		Sector:      sector,
		ServiceType: serviceType,
		Tier:        tier,
	})
}

// ImproveRequirements rewrites raw requirement notes into proposal wording
func (s *EnrichmentService) ImproveRequirements(ctx context.Context, requirements, sector, serviceType string) string {
	return s.textgen.ImproveRequirements(ctx, requirements, sector, serviceType)
}

// AnalyzeDuration expands a duration description into contract wording
func (s *EnrichmentService) AnalyzeDuration(ctx context.Context, description string) string {
	return s.textgen.AnalyzeDuration(ctx, description)
}
