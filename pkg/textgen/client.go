// Package textgen wraps the external text generation service used to improve
// requirement wording and to expand project duration descriptions. Both
// operations fall back to locally synthesized text on any failure, so callers
// always receive non-empty output.
package textgen

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

// Client calls the text generation service over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *logrus.Logger
}

// NewClient creates a textgen client. An empty baseURL disables remote calls
// and every request resolves to the local fallback.
func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type improveRequest struct {
	Requirements string `json:"requerimientos"`
	Sector       string `json:"rubro"`
	ServiceType  string `json:"servicio"`
}

type durationRequest struct {
	Description string `json:"descripcion"`
}

type textResponse struct {
	Text string `json:"texto"`
}

func (c *Client) post(ctx context.Context, path string, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("text generation service returned status %d", resp.StatusCode)
	}

	var out textResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if strings.TrimSpace(out.Text) == "" {
		return "", fmt.Errorf("text generation service returned empty text")
	}
	return out.Text, nil
}

// ImproveRequirements rewrites raw requirement notes into proposal-ready
// wording. Transport failures substitute the keyword-based local fallback;
// there is no retry.
func (c *Client) ImproveRequirements(ctx context.Context, requirements, sector, serviceType string) string {
	if c.baseURL != "" {
		text, err := c.post(ctx, "/mejorar-requerimientos", improveRequest{
			Requirements: requirements,
			Sector:       sector,
			ServiceType:  serviceType,
		})
		if err == nil {
			return text
		}
		c.logger.WithError(err).Warn("requirement improvement request failed, using fallback")
	}
	return FallbackImprovement(requirements, sector, serviceType)
}

// AnalyzeDuration expands a free-form duration description into contract
// wording. Falls back to keyword matching on failure.
func (c *Client) AnalyzeDuration(ctx context.Context, description string) string {
	if c.baseURL != "" {
		text, err := c.post(ctx, "/analizar-tiempo", durationRequest{Description: description})
		if err == nil {
			return text
		}
		c.logger.WithError(err).Warn("duration analysis request failed, using fallback")
	}
	return FallbackDuration(description)
}

// FallbackImprovement synthesizes improved requirements from keyword matches
// on the original text.
func FallbackImprovement(requirements, sector, serviceType string) string {
	lowered := strings.ToLower(requirements)

	points := []string{
		fmt.Sprintf("Desarrollo de %s orientado al sector %s, con diseño responsive y navegación intuitiva.",
			strings.ToLower(serviceType), strings.ToLower(sector)),
	}
	if strings.Contains(lowered, "venta") || strings.Contains(lowered, "tienda") || strings.Contains(lowered, "commerce") {
		points = append(points, "Implementación de catálogo de productos con carrito de compras y pasarela de pagos.")
	}
	if strings.Contains(lowered, "seo") || strings.Contains(lowered, "posicionamiento") {
		points = append(points, "Optimización SEO on-page para mejorar el posicionamiento en motores de búsqueda.")
	}
	if strings.Contains(lowered, "crm") || strings.Contains(lowered, "formulario") || strings.Contains(lowered, "contacto") {
		points = append(points, "Integración de formularios de contacto conectados al CRM de la empresa.")
	}
	if strings.Contains(lowered, "móvil") || strings.Contains(lowered, "movil") || strings.Contains(lowered, "app") {
		points = append(points, "Compatibilidad completa con dispositivos móviles bajo un enfoque mobile-first.")
	}

	var b strings.Builder
	b.WriteString("Requerimientos del proyecto:\n")
	for i, point := range points {
		fmt.Fprintf(&b, "%d. %s\n", i+1, point)
	}
	if strings.TrimSpace(requirements) != "" {
		fmt.Fprintf(&b, "\nDetalle proporcionado por el cliente: %s", strings.TrimSpace(requirements))
	}
	return b.String()
}

// FallbackDuration maps duration keywords to canned contract wording.
func FallbackDuration(description string) string {
	lowered := strings.ToLower(description)

	switch {
	case strings.Contains(lowered, "mes") || strings.Contains(lowered, "month"):
		return "El proyecto tiene una duración estimada de 3 meses (90 días calendario), divididos en sprints de 2 semanas cada uno. Se entregarán avances cada 15 días con revisiones y ajustes según el feedback del cliente."
	case strings.Contains(lowered, "semana") || strings.Contains(lowered, "week"):
		return "El proyecto tiene una duración estimada de 8-12 semanas, con entregables semanales y revisiones continuas. Cada fase incluye presentación de avances y ajustes según requerimientos."
	case strings.Contains(lowered, "día") || strings.Contains(lowered, "dia") || strings.Contains(lowered, "day"):
		return "El proyecto tiene una duración estimada de 60-90 días calendario, con entregables quincenales y seguimiento continuo del progreso."
	default:
		return "El proyecto tendrá un tiempo de desarrollo de 3 meses o 90 días calendario, divididos en sprints de 2 semanas cada uno. Se entregarán avances cada 15 días con revisiones y ajustes según el feedback del cliente."
	}
}
