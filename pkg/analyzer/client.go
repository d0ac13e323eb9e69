// Package analyzer wraps the external site structure analysis service. The
// service is best effort: callers always get a non-empty analysis text, even
// when the remote call fails or no service is configured.
package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// AnalysisRequest describes the site to analyze and the quoted context.
type AnalysisRequest struct {
	URL         string `json:"url"`
	Sector      string `json:"rubro"`
	ServiceType string `json:"servicio"`
	Tier        string `json:"tipo"`
}

// AnalysisResult carries the analysis text. Success is false when the text
// came from the local fallback instead of the remote service.
type AnalysisResult struct {
	Success      bool   `json:"success"`
	AnalysisText string `json:"analysis_text"`
}

type remoteResponse struct {
	Analisis string `json:"analisis"`
}

// Client calls the analyzer service over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *logrus.Logger
}

// NewClient creates an analyzer client. An empty baseURL disables remote
// calls entirely and every request resolves to the fallback.
func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// AnalyzeStructure requests a structure analysis for the given site. It never
// returns an error: any failure degrades to a locally generated analysis.
func (c *Client) AnalyzeStructure(ctx context.Context, req AnalysisRequest) AnalysisResult {
	if c.baseURL == "" {
		return AnalysisResult{Success: false, AnalysisText: FallbackAnalysis(req)}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return AnalysisResult{Success: false, AnalysisText: FallbackAnalysis(req)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analizar-web", bytes.NewReader(body))
	if err != nil {
		return AnalysisResult{Success: false, AnalysisText: FallbackAnalysis(req)}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		c.logger.WithError(err).WithField("url", req.URL).Warn("structure analysis request failed, using fallback")
		return AnalysisResult{Success: false, AnalysisText: FallbackAnalysis(req)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.WithField("status", resp.StatusCode).Warn("structure analysis returned non-OK status, using fallback")
		return AnalysisResult{Success: false, AnalysisText: FallbackAnalysis(req)}
	}

	var remote remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&remote); err != nil || strings.TrimSpace(remote.Analisis) == "" {
		return AnalysisResult{Success: false, AnalysisText: FallbackAnalysis(req)}
	}

	return AnalysisResult{Success: true, AnalysisText: remote.Analisis}
}

// FallbackAnalysis synthesizes an analysis when the remote service is
// unreachable. The text always references the requested sector and service.
func FallbackAnalysis(req AnalysisRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "ANÁLISIS DE LA PÁGINA WEB: %s\n\n", req.URL)
	fmt.Fprintf(&b, "ANÁLISIS ESPECÍFICO PARA %s - %s:\n\n",
		strings.ToUpper(req.Sector), strings.ToUpper(req.ServiceType))
	fmt.Fprintf(&b, "No se pudo acceder al sitio web para realizar el análisis automático. La evaluación preliminar para el sector %s identifica las siguientes oportunidades de mejora:\n\n",
		strings.ToLower(req.Sector))

	b.WriteString("RECOMENDACIONES PRIORITARIAS:\n")
	for _, rec := range []string{
		"Verificar que el sitio web esté accesible",
		"Implementar funcionalidades específicas del sector",
		"Mejorar la estructura y navegación del sitio",
		"Optimizar para dispositivos móviles",
		"Agregar elementos de confianza y credibilidad",
	} {
		fmt.Fprintf(&b, "• %s\n", rec)
	}

	fmt.Fprintf(&b, "\nUna renovación integral del sitio web, enfocada en las necesidades específicas del sector %s, permitirá aprovechar al máximo el potencial digital del negocio.",
		strings.ToLower(req.Sector))

	return b.String()
}
